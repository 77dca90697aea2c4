package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/deveshkun/Rental-Fleet/internal/db"
	"github.com/deveshkun/Rental-Fleet/internal/utils"
)

// VehicleCatalog is the read-only catalog the quoting flow consumes. The
// engine never writes vehicles; catalog management lives elsewhere.
type VehicleCatalog interface {
	ListVehicles(category string) ([]db.Vehicle, error)
	GetVehicleByID(id string) (*db.Vehicle, error)
}

type vehicleRepository struct {
	db *sql.DB
}

func NewVehicleRepository(database *sql.DB) VehicleCatalog {
	return &vehicleRepository{db: database}
}

const vehicleColumns = `id, name, category, year, daily_rate, weekly_rate, seats, transmission, fuel, rating, review_count, available`

func (r *vehicleRepository) ListVehicles(category string) ([]db.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles`
	var args []interface{}
	if category != "" {
		query += ` WHERE category = $1`
		args = append(args, utils.NormalizeCategory(category))
	}
	query += ` ORDER BY name`

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying vehicles: %w", err)
	}
	defer rows.Close()

	var vehicles []db.Vehicle
	for rows.Next() {
		var v db.Vehicle
		if err := rows.Scan(&v.ID, &v.Name, &v.Category, &v.Year, &v.DailyRate, &v.WeeklyRate,
			&v.Seats, &v.Transmission, &v.Fuel, &v.Rating, &v.ReviewCount, &v.Available); err != nil {
			return nil, fmt.Errorf("error scanning vehicle: %w", err)
		}
		vehicles = append(vehicles, v)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating vehicle rows: %w", err)
	}

	return vehicles, nil
}

func (r *vehicleRepository) GetVehicleByID(id string) (*db.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE id = $1`

	var v db.Vehicle
	err := r.db.QueryRow(query, id).Scan(&v.ID, &v.Name, &v.Category, &v.Year, &v.DailyRate, &v.WeeklyRate,
		&v.Seats, &v.Transmission, &v.Fuel, &v.Rating, &v.ReviewCount, &v.Available)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error querying vehicle %s: %w", id, err)
	}
	return &v, nil
}
