package service

import (
	"fmt"
	"log"
	"time"

	"github.com/deveshkun/Rental-Fleet/internal/repository"
)

const sessionMaxIdle = 30 * time.Minute

type JobService struct {
	Repo     *repository.JobRepository
	Sessions *SessionService
}

func NewJobService(repo *repository.JobRepository, sessions *SessionService) *JobService {
	return &JobService{Repo: repo, Sessions: sessions}
}

// PurgeExpiredOTPs removes OTP rows whose validity window has passed.
func (s *JobService) PurgeExpiredOTPs() error {
	deleted, err := s.Repo.DeleteExpiredOTPs(time.Now().UTC())
	if err != nil {
		return fmt.Errorf("cron job: failed to purge expired OTPs: %w", err)
	}
	if deleted > 0 {
		log.Printf("Cron Job: Purged %d expired OTPs.", deleted)
	}
	return nil
}

// SweepIdleSessions drops abandoned booking sessions along with their
// pending promo timers.
func (s *JobService) SweepIdleSessions() {
	removed := s.Sessions.SweepIdle(sessionMaxIdle)
	if removed > 0 {
		log.Printf("Cron Job: Removed %d idle booking sessions.", removed)
	}
}
