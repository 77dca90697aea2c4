package api

import (
	"net/http"

	"github.com/deveshkun/Rental-Fleet/internal/db"
	"github.com/deveshkun/Rental-Fleet/internal/repository"
	"github.com/deveshkun/Rental-Fleet/internal/utils"

	"github.com/gorilla/mux"
)

type VehicleHandler struct {
	Catalog repository.VehicleCatalog
}

func NewVehicleHandler(catalog repository.VehicleCatalog) *VehicleHandler {
	return &VehicleHandler{Catalog: catalog}
}

func (h *VehicleHandler) ListVehicles(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	if category != "" && !utils.IsKnownCategory(category) {
		http.Error(w, "Invalid category", http.StatusBadRequest)
		return
	}
	vehicles, err := h.Catalog.ListVehicles(category)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	resp := make([]VehicleResponse, 0, len(vehicles))
	for _, v := range vehicles {
		resp = append(resp, vehicleResponse(v))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *VehicleHandler) GetVehicle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	vehicle, err := h.Catalog.GetVehicleByID(id)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	if vehicle == nil {
		http.Error(w, "Vehicle not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, vehicleResponse(*vehicle))
}

func vehicleResponse(v db.Vehicle) VehicleResponse {
	return VehicleResponse{
		ID:           v.ID,
		Name:         v.Name,
		Category:     v.Category,
		Year:         v.Year,
		DailyRate:    v.DailyRate,
		WeeklyRate:   v.WeeklyRate,
		Seats:        v.Seats,
		Transmission: v.Transmission,
		Fuel:         v.Fuel,
		Rating:       v.Rating,
		ReviewCount:  v.ReviewCount,
		Available:    v.Available,
	}
}
