package repository

import (
	"testing"
	"time"

	"github.com/deveshkun/Rental-Fleet/internal/db"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOTPRepository_Save(t *testing.T) {
	database, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer database.Close()

	now := time.Now().UTC()
	otp := &db.EmailOTP{
		Identifier: "dev@example.com",
		Channel:    "email",
		Purpose:    "signup",
		CodeHash:   "$2a$10$hash",
		ExpiresAt:  now.Add(5 * time.Minute),
		CreatedAt:  now,
	}

	mock.ExpectQuery("INSERT INTO email_otps").
		WithArgs(otp.Identifier, otp.Channel, otp.Purpose, otp.CodeHash, otp.ExpiresAt, otp.CreatedAt).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	repo := NewOTPRepository(database)
	require.NoError(t, repo.Save(otp))
	assert.Equal(t, 7, otp.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOTPRepository_LatestActive(t *testing.T) {
	database, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer database.Close()

	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{"id", "identifier", "channel", "purpose", "code_hash", "expires_at", "created_at"}).
		AddRow(3, "dev@example.com", "email", "login", "$2a$10$hash", now.Add(time.Minute), now)

	mock.ExpectQuery("SELECT (.+) FROM email_otps").
		WithArgs("dev@example.com", "login", now).
		WillReturnRows(rows)

	repo := NewOTPRepository(database)
	otp, err := repo.LatestActive("dev@example.com", "login", now)
	require.NoError(t, err)
	require.NotNil(t, otp)
	assert.Equal(t, 3, otp.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOTPRepository_LatestActive_NoneFound(t *testing.T) {
	database, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer database.Close()

	now := time.Now().UTC()
	mock.ExpectQuery("SELECT (.+) FROM email_otps").
		WithArgs("dev@example.com", "login", now).
		WillReturnRows(sqlmock.NewRows([]string{"id", "identifier", "channel", "purpose", "code_hash", "expires_at", "created_at"}))

	repo := NewOTPRepository(database)
	otp, err := repo.LatestActive("dev@example.com", "login", now)
	require.NoError(t, err)
	assert.Nil(t, otp)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJobRepository_DeleteExpiredOTPs(t *testing.T) {
	database, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer database.Close()

	now := time.Now().UTC()
	mock.ExpectExec("DELETE FROM email_otps WHERE expires_at < \\$1").
		WithArgs(now).
		WillReturnResult(sqlmock.NewResult(0, 4))

	repo := NewJobRepository(database)
	deleted, err := repo.DeleteExpiredOTPs(now)
	require.NoError(t, err)
	assert.Equal(t, int64(4), deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}
