package services

import (
	"context"
	"fmt"
	"time"

	"jobportal/internal/models"
	"jobportal/internal/store"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// DigestService periodically notifies every job seeker how many listings
// are currently open for applications.
type DigestService struct {
	JobSeekers    store.Store[models.JobSeeker]
	JobListings   store.Store[models.JobListing]
	Notifications store.Store[models.Notification]

	cron *cron.Cron
}

func NewDigestService(st *store.Stores) *DigestService {
	return &DigestService{
		JobSeekers:    st.JobSeekers,
		JobListings:   st.JobListings,
		Notifications: st.Notifications,
	}
}

// Start schedules the digest run. The schedule is a standard cron
// expression, e.g. "0 8 * * *" for a daily morning digest.
func (s *DigestService) Start(schedule string) error {
	s.cron = cron.New()
	if _, err := s.cron.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		if err := s.Run(ctx); err != nil {
			log.Error().Err(err).Msg("digest run failed")
		}
	}); err != nil {
		return fmt.Errorf("schedule digest: %w", err)
	}
	s.cron.Start()
	log.Info().Str("schedule", schedule).Msg("Job digest scheduled")
	return nil
}

// Stop halts the schedule; a run already in flight finishes.
func (s *DigestService) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

// Run creates one digest notification per job seeker, counting listings
// still open (Pending) for applications.
func (s *DigestService) Run(ctx context.Context) error {
	listings, err := s.JobListings.List(ctx)
	if err != nil {
		return fmt.Errorf("list job listings: %w", err)
	}
	open := 0
	for _, l := range listings {
		if l.ApplicationStatus == models.StatusPending {
			open++
		}
	}

	seekers, err := s.JobSeekers.List(ctx)
	if err != nil {
		return fmt.Errorf("list job seekers: %w", err)
	}
	for _, js := range seekers {
		n := models.Notification{
			UserID:              js.UserID,
			NotificationContent: fmt.Sprintf("%d job listings are open for applications", open),
			NotificationType:    "digest",
		}
		if err := s.Notifications.Create(ctx, &n); err != nil {
			return fmt.Errorf("create digest notification: %w", err)
		}
	}
	log.Info().Int("job_seekers", len(seekers)).Int("open_listings", open).Msg("Digest notifications created")
	return nil
}
