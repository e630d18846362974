package service

import (
	"fmt"
	"log"
	"time"

	"balneario/internal/repository"
)

type JobService struct {
	Repo *repository.JobRepository
}

func NewJobService(repo *repository.JobRepository) *JobService {
	return &JobService{Repo: repo}
}

// CancelStaleUnpaidGroups cancels online bookings whose checkout was never
// completed, so the held resources become bookable again.
func (s *JobService) CancelStaleUnpaidGroups(olderThan time.Duration) error {
	log.Println("Cron Job: Checking for stale unpaid reservation groups...")

	cutoff := time.Now().UTC().Add(-olderThan)
	ids, err := s.Repo.GetStaleUnpaidGroupIDs(cutoff)
	if err != nil {
		return fmt.Errorf("cron job: failed to get stale unpaid groups: %w", err)
	}

	if len(ids) == 0 {
		log.Println("Cron Job: No stale unpaid reservation groups found.")
		return nil
	}

	log.Printf("Cron Job: Found %d stale unpaid groups to cancel. IDs: %v", len(ids), ids)

	if err := s.Repo.CancelGroups(ids); err != nil {
		return fmt.Errorf("cron job: failed to cancel stale unpaid groups: %w", err)
	}

	log.Printf("Cron Job: Successfully cancelled %d reservation groups.", len(ids))
	return nil
}
