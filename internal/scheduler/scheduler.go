// Package scheduler runs the platform's background jobs on cron schedules.
package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"renthub/internal/services/referral"
)

// Scheduler owns the cron runner.
type Scheduler struct {
	cron      *cron.Cron
	referrals referral.Service
}

// New creates a scheduler around the given services.
func New(referrals referral.Service) *Scheduler {
	return &Scheduler{
		cron:      cron.New(),
		referrals: referrals,
	}
}

// Start registers the jobs and starts the runner.
// Referral credit expiry runs nightly at 03:00 server time.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc("0 3 * * *", s.expireReferralCredits); err != nil {
		return err
	}
	s.cron.Start()
	log.Println("scheduler started")
	return nil
}

// Stop halts the runner and waits for running jobs to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *Scheduler) expireReferralCredits() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	expired, err := s.referrals.ExpireStale(ctx)
	if err != nil {
		log.Printf("referral expiry job failed: %v", err)
		return
	}
	if expired > 0 {
		log.Printf("referral expiry job clawed back %d grants", expired)
	}
}
