package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/deveshkun/Rental-Fleet/internal/db"
)

type OTPRepository interface {
	Save(otp *db.EmailOTP) error
	LatestActive(identifier, purpose string, now time.Time) (*db.EmailOTP, error)
	Delete(id int) error
}

type otpRepository struct {
	db *sql.DB
}

func NewOTPRepository(database *sql.DB) OTPRepository {
	return &otpRepository{db: database}
}

func (r *otpRepository) Save(otp *db.EmailOTP) error {
	query := `
		INSERT INTO email_otps (identifier, channel, purpose, code_hash, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	return r.db.QueryRow(query,
		otp.Identifier,
		otp.Channel,
		otp.Purpose,
		otp.CodeHash,
		otp.ExpiresAt,
		otp.CreatedAt,
	).Scan(&otp.ID)
}

// LatestActive returns the most recent unexpired OTP for the identifier, or
// nil when none exists.
func (r *otpRepository) LatestActive(identifier, purpose string, now time.Time) (*db.EmailOTP, error) {
	query := `
		SELECT id, identifier, channel, purpose, code_hash, expires_at, created_at
		FROM email_otps
		WHERE identifier = $1 AND purpose = $2 AND expires_at > $3
		ORDER BY created_at DESC
		LIMIT 1`

	var otp db.EmailOTP
	err := r.db.QueryRow(query, identifier, purpose, now).Scan(
		&otp.ID, &otp.Identifier, &otp.Channel, &otp.Purpose, &otp.CodeHash, &otp.ExpiresAt, &otp.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error querying OTP for %s: %w", identifier, err)
	}
	return &otp, nil
}

func (r *otpRepository) Delete(id int) error {
	_, err := r.db.Exec(`DELETE FROM email_otps WHERE id = $1`, id)
	return err
}
