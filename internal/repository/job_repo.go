package repository

import (
	"database/sql"
	"fmt"
	"log"
	"time"
)

type JobRepository struct {
	DB *sql.DB
}

func NewJobRepository(db *sql.DB) *JobRepository {
	return &JobRepository{DB: db}
}

// DeleteExpiredOTPs removes OTP rows whose expiry has passed and returns how
// many were deleted.
func (r *JobRepository) DeleteExpiredOTPs(before time.Time) (int64, error) {
	result, err := r.DB.Exec(`DELETE FROM email_otps WHERE expires_at < $1`, before)
	if err != nil {
		return 0, fmt.Errorf("error deleting expired OTPs: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Printf("Could not get rows affected: %v", err)
		return 0, nil
	}
	return rowsAffected, nil
}
