package scheduler

import (
	"context"

	"github.com/kevin101681/cascadeconnect-sub011/internal/logger"
	"github.com/kevin101681/cascadeconnect-sub011/internal/repository"
	"github.com/kevin101681/cascadeconnect-sub011/internal/service"

	"github.com/robfig/cron/v3"
)

// Every weekday morning at 8am.
const reviewDigestSpec = "0 8 * * 1-5"

// Scheduler runs periodic background jobs. Its one job today is the review
// digest: counting claims stuck in needs_review and notifying the claims team.
type Scheduler struct {
	cron       *cron.Cron
	claimRepo  *repository.ClaimRepository
	notifier   service.Notifier
	digestSpec string
}

func NewScheduler(claimRepo *repository.ClaimRepository, notifier service.Notifier) *Scheduler {
	return &Scheduler{
		cron:       cron.New(),
		claimRepo:  claimRepo,
		notifier:   notifier,
		digestSpec: reviewDigestSpec,
	}
}

func (s *Scheduler) Start() error {
	_, err := s.cron.AddFunc(s.digestSpec, func() {
		if err := s.RunReviewDigestNow(); err != nil {
			logger.Error().Err(err).Msg("review digest job failed")
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	logger.Info().Str("spec", s.digestSpec).Msg("scheduler started")
	return nil
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
	logger.Info().Msg("scheduler stopped")
}

// RunReviewDigestNow triggers the digest immediately, outside the cron
// schedule. Useful for manual triggering.
func (s *Scheduler) RunReviewDigestNow() error {
	ctx := context.Background()

	pending, err := s.claimRepo.CountClaimsByStatus(ctx, repository.ClaimStatusNeedsReview)
	if err != nil {
		return err
	}

	if pending == 0 {
		logger.Debug().Msg("no claims awaiting review, skipping digest")
		return nil
	}

	return s.notifier.NotifyReviewDigest(ctx, pending)
}

// GetScheduledJobs returns information about scheduled jobs
func (s *Scheduler) GetScheduledJobs() []cron.Entry {
	return s.cron.Entries()
}
