package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vehicleRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "name", "category", "year", "daily_rate", "weekly_rate",
		"seats", "transmission", "fuel", "rating", "review_count", "available",
	})
}

func TestVehicleRepository_ListVehicles(t *testing.T) {
	database, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer database.Close()

	rows := vehicleRows().
		AddRow("IND001", "Maruti Swift", "car", 2024, 1500.0, 280.0, 5, "Manual", "Petrol", 4.8, 412, true).
		AddRow("IND002", "Honda Activa", "scooty", 2024, 400.0, 400.0, 2, "Automatic", "Petrol", 4.9, 560, true)

	mock.ExpectQuery("SELECT (.+) FROM vehicles ORDER BY name").WillReturnRows(rows)

	repo := NewVehicleRepository(database)
	vehicles, err := repo.ListVehicles("")
	require.NoError(t, err)

	require.Len(t, vehicles, 2)
	assert.Equal(t, "Maruti Swift", vehicles[0].Name)
	assert.Equal(t, 1500.0, vehicles[0].DailyRate)
	assert.Equal(t, "scooty", vehicles[1].Category)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVehicleRepository_ListVehiclesByCategory(t *testing.T) {
	database, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer database.Close()

	rows := vehicleRows().
		AddRow("IND002", "Honda Activa", "scooty", 2024, 400.0, 400.0, 2, "Automatic", "Petrol", 4.9, 560, true)

	mock.ExpectQuery("SELECT (.+) FROM vehicles WHERE category = \\$1 ORDER BY name").
		WithArgs("scooty").
		WillReturnRows(rows)

	repo := NewVehicleRepository(database)
	vehicles, err := repo.ListVehicles("Scooty")
	require.NoError(t, err)

	require.Len(t, vehicles, 1)
	assert.Equal(t, "IND002", vehicles[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVehicleRepository_GetVehicleByID(t *testing.T) {
	database, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer database.Close()

	rows := vehicleRows().
		AddRow("IND001", "Maruti Swift", "car", 2024, 1500.0, 280.0, 5, "Manual", "Petrol", 4.8, 412, true)

	mock.ExpectQuery("SELECT (.+) FROM vehicles WHERE id = \\$1").
		WithArgs("IND001").
		WillReturnRows(rows)

	repo := NewVehicleRepository(database)
	vehicle, err := repo.GetVehicleByID("IND001")
	require.NoError(t, err)
	require.NotNil(t, vehicle)
	assert.Equal(t, "Maruti Swift", vehicle.Name)
	assert.True(t, vehicle.Available)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVehicleRepository_GetVehicleByID_NotFound(t *testing.T) {
	database, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer database.Close()

	mock.ExpectQuery("SELECT (.+) FROM vehicles WHERE id = \\$1").
		WithArgs("NOPE").
		WillReturnRows(vehicleRows())

	repo := NewVehicleRepository(database)
	vehicle, err := repo.GetVehicleByID("NOPE")
	require.NoError(t, err)
	assert.Nil(t, vehicle)
	assert.NoError(t, mock.ExpectationsWereMet())
}
