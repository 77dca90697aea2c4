package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/deveshkun/Rental-Fleet/internal/auth"
	"github.com/deveshkun/Rental-Fleet/internal/service"

	"github.com/gorilla/mux"
)

const dateLayout = "2006-01-02"

type BookingSessionHandler struct {
	Service *service.SessionService
}

func NewBookingSessionHandler(svc *service.SessionService) *BookingSessionHandler {
	return &BookingSessionHandler{Service: svc}
}

func (h *BookingSessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	session, err := h.Service.Create(req.VehicleID)
	if err != nil {
		writeServiceError(w, err, "Could not create booking session")
		return
	}
	writeJSON(w, http.StatusCreated, sessionResponse(session))
}

func (h *BookingSessionHandler) SwitchCalendar(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]
	var req SwitchCalendarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	session, err := h.Service.SwitchCalendar(code, service.CalendarSide(req.Side))
	if err != nil {
		writeServiceError(w, err, "Could not switch calendar")
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse(session))
}

func (h *BookingSessionHandler) PickDate(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]
	var req PickDateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	date, err := time.ParseInLocation(dateLayout, req.Date, time.UTC)
	if err != nil {
		http.Error(w, "Invalid date, expected yyyy-mm-dd", http.StatusBadRequest)
		return
	}
	session, err := h.Service.PickDate(code, date)
	if err != nil {
		writeServiceError(w, err, "Could not pick date")
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse(session))
}

func (h *BookingSessionHandler) SetTimes(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]
	var req SetTimesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	session, err := h.Service.SetTimes(code, req.PickupTime, req.DropTime)
	if err != nil {
		writeServiceError(w, err, "Could not set times")
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse(session))
}

func (h *BookingSessionHandler) SetLocation(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]
	var req SetLocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	session, err := h.Service.SetLocation(code, req.Location)
	if err != nil {
		writeServiceError(w, err, "Could not set location")
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse(session))
}

func (h *BookingSessionHandler) SetAddOns(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]
	var req SetAddOnsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	session, err := h.Service.SetAddOns(code, req.Helmet, req.Insurance)
	if err != nil {
		writeServiceError(w, err, "Could not set add-ons")
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse(session))
}

func (h *BookingSessionHandler) ApplyPromo(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]
	var req ApplyPromoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	state, err := h.Service.ApplyPromo(code, req.Code)
	if err != nil {
		writeServiceError(w, err, "Could not apply promo code")
		return
	}
	writeJSON(w, http.StatusOK, state)
}

func (h *BookingSessionHandler) GetQuote(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]
	quote, err := h.Service.Quote(code)
	if err != nil {
		writeServiceError(w, err, "Could not compute quote")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"quote":   quote,
		"display": service.DisplayQuote(quote),
	})
}

func (h *BookingSessionHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]
	email := auth.EmailFromContext(r.Context())
	var req struct {
		Name string `json:"name"`
	}
	if r.Body != nil {
		json.NewDecoder(r.Body).Decode(&req)
	}

	quote, err := h.Service.Confirm(code, req.Name, email)
	if err != nil {
		writeServiceError(w, err, "Could not confirm booking")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Booking Confirmed",
		"quote":   quote,
		"display": service.DisplayQuote(*quote),
	})
}

func sessionResponse(s *service.BookingSession) SessionResponse {
	resp := SessionResponse{
		SessionCode:    s.Code,
		VehicleID:      s.Vehicle.ID,
		VehicleName:    s.Vehicle.Name,
		ActiveCalendar: string(s.Selector.Active),
		PickupTime:     s.PickupTime,
		DropTime:       s.DropTime,
		Location:       s.Location,
		Helmet:         s.AddHelmet,
		Insurance:      s.AddInsurance,
	}
	if s.Selector.Range.From != nil {
		resp.PickupDate = s.Selector.Range.From.Format(dateLayout)
	}
	if s.Selector.Range.To != nil {
		resp.DropDate = s.Selector.Range.To.Format(dateLayout)
	}
	resp.Quote = s.Quote()
	resp.Display = service.DisplayQuote(resp.Quote)
	return resp
}
