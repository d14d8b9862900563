package service

import (
	"context"
	"strings"

	"github.com/kevin101681/cascadeconnect-sub011/internal/logger"
	"github.com/kevin101681/cascadeconnect-sub011/internal/matching"
	"github.com/kevin101681/cascadeconnect-sub011/internal/repository"

	"github.com/google/uuid"
)

// claimStore is the slice of ClaimRepository the service needs.
type claimStore interface {
	CreateClaim(ctx context.Context, req repository.CreateClaimRequest) (*repository.Claim, error)
	GetClaim(ctx context.Context, id uuid.UUID) (*repository.Claim, error)
	ListClaims(ctx context.Context, params repository.ListClaimsParams) ([]repository.Claim, error)
	UpdateClaimStatus(ctx context.Context, id uuid.UUID, status string) (*repository.Claim, error)
	LinkHomeowner(ctx context.Context, id, homeownerID uuid.UUID, similarity float64) (*repository.Claim, error)
	DeleteClaim(ctx context.Context, id uuid.UUID) error
}

// homeownerMatcher resolves a transcript address to a homeowner candidate.
type homeownerMatcher interface {
	MatchHomeowner(ctx context.Context, address string, opts matching.MatchOptions) (*matching.MatchResult, error)
	DefaultOptions() matching.MatchOptions
}

// IntakeClaimRequest carries a new claim from the intake workflow, including
// the raw address captured from the call transcript.
type IntakeClaimRequest struct {
	Title             string
	Description       *string
	TranscriptAddress string
}

// IntakeResult is the outcome of claim intake: the stored claim and, when
// address resolution found one, the matched homeowner.
type IntakeResult struct {
	Claim *repository.Claim
	Match *matching.MatchResult
}

// ClaimService owns the claim lifecycle, including the intake decision of
// whether a transcript address resolves to a homeowner confidently enough to
// auto-link.
type ClaimService struct {
	claims            claimStore
	matcher           homeownerMatcher
	notifier          Notifier
	autoLinkThreshold float64
}

func NewClaimService(claims claimStore, matcher homeownerMatcher, notifier Notifier, autoLinkThreshold float64) *ClaimService {
	return &ClaimService{
		claims:            claims,
		matcher:           matcher,
		notifier:          notifier,
		autoLinkThreshold: autoLinkThreshold,
	}
}

// IntakeClaim stores a new claim. When a transcript address is present it is
// resolved against the homeowner roster: a match at or above the auto-link
// threshold links the claim immediately, a weaker match (or none) flags it
// for manual review. A candidate-lookup failure aborts intake and surfaces
// as ErrMatchLookup so the caller can retry rather than file an unlinked
// claim.
func (s *ClaimService) IntakeClaim(ctx context.Context, req IntakeClaimRequest) (*IntakeResult, error) {
	create := repository.CreateClaimRequest{
		Title:       req.Title,
		Description: req.Description,
		Status:      repository.ClaimStatusNew,
	}

	var match *matching.MatchResult
	address := strings.TrimSpace(req.TranscriptAddress)
	if address != "" {
		create.TranscriptAddress = &address
		create.Status = repository.ClaimStatusNeedsReview

		var err error
		match, err = s.matcher.MatchHomeowner(ctx, address, s.matcher.DefaultOptions())
		if err != nil {
			return nil, err
		}

		if match != nil {
			create.MatchSimilarity = &match.Similarity
			if match.Similarity >= s.autoLinkThreshold {
				homeownerID, err := uuid.Parse(match.Candidate.ID)
				if err == nil {
					create.HomeownerID = &homeownerID
					create.Status = repository.ClaimStatusLinked
				}
			}
		}
	}

	claim, err := s.claims.CreateClaim(ctx, create)
	if err != nil {
		return nil, err
	}

	if s.notifier != nil {
		if err := s.notifier.NotifyClaimReceived(ctx, claim, match); err != nil {
			logger.Warn().Err(err).Str("claim_id", claim.ID.String()).Msg("claim notification failed")
		}
	}

	return &IntakeResult{Claim: claim, Match: match}, nil
}

// GetClaim retrieves a claim by ID
func (s *ClaimService) GetClaim(ctx context.Context, id uuid.UUID) (*repository.Claim, error) {
	return s.claims.GetClaim(ctx, id)
}

// ListClaims retrieves claims, optionally filtered by status
func (s *ClaimService) ListClaims(ctx context.Context, params repository.ListClaimsParams) ([]repository.Claim, error) {
	return s.claims.ListClaims(ctx, params)
}

// UpdateClaimStatus transitions a claim to the given status
func (s *ClaimService) UpdateClaimStatus(ctx context.Context, id uuid.UUID, status string) (*repository.Claim, error) {
	return s.claims.UpdateClaimStatus(ctx, id, status)
}

// LinkClaim manually links a claim to a homeowner, recording the similarity
// the reviewer saw when approving the link.
func (s *ClaimService) LinkClaim(ctx context.Context, id, homeownerID uuid.UUID, similarity float64) (*repository.Claim, error) {
	return s.claims.LinkHomeowner(ctx, id, homeownerID, similarity)
}

// DeleteClaim permanently deletes a claim
func (s *ClaimService) DeleteClaim(ctx context.Context, id uuid.UUID) error {
	return s.claims.DeleteClaim(ctx, id)
}
