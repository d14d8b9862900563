package service

import (
	"context"

	"github.com/kevin101681/cascadeconnect-sub011/internal/logger"
	"github.com/kevin101681/cascadeconnect-sub011/internal/matching"
	"github.com/kevin101681/cascadeconnect-sub011/internal/repository"
)

// Notifier delivers claim lifecycle notifications. Email and SMS providers
// are external collaborators consumed only through this interface.
type Notifier interface {
	NotifyClaimReceived(ctx context.Context, claim *repository.Claim, match *matching.MatchResult) error
	NotifyReviewDigest(ctx context.Context, pendingReview int64) error
}

// LogNotifier writes notifications to the structured log. It stands in for a
// real delivery provider in development and tests.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) NotifyClaimReceived(_ context.Context, claim *repository.Claim, match *matching.MatchResult) error {
	event := logger.Info().
		Str("claim_id", claim.ID.String()).
		Str("status", claim.Status)
	if match != nil {
		event = event.
			Str("homeowner_id", match.Candidate.ID).
			Float64("similarity", match.Similarity).
			Str("quality", matching.MatchQuality(match.Similarity))
	}
	event.Msg("claim received")
	return nil
}

func (n *LogNotifier) NotifyReviewDigest(_ context.Context, pendingReview int64) error {
	logger.Info().
		Int64("pending_review", pendingReview).
		Msg("claims awaiting manual review")
	return nil
}
