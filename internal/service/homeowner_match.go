package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/kevin101681/cascadeconnect-sub011/internal/cache"
	"github.com/kevin101681/cascadeconnect-sub011/internal/config"
	"github.com/kevin101681/cascadeconnect-sub011/internal/logger"
	"github.com/kevin101681/cascadeconnect-sub011/internal/matching"
	"github.com/kevin101681/cascadeconnect-sub011/internal/repository"
)

// ErrMatchLookup marks a failure to obtain the candidate list. Callers branch
// on it to tell "lookup failed" apart from a legitimate "no match found".
var ErrMatchLookup = errors.New("failed to match homeowner")

// HomeownerLister supplies the candidate records for address matching.
type HomeownerLister interface {
	ListAllHomeowners(ctx context.Context) ([]repository.Homeowner, error)
}

const candidateCacheKey = "homeowners"

// HomeownerMatchService resolves free-text addresses against the homeowner
// roster. It owns the data-access step around the pure matching engine:
// fetching candidates (with an injected TTL cache) and wrapping lookup
// failures.
type HomeownerMatchService struct {
	homeowners HomeownerLister
	candidates *cache.TTL[string, []matching.CandidateAddress]
	defaults   config.MatchingConfig
}

// NewHomeownerMatchService creates a match service with the given candidate
// supplier and service-level defaults.
func NewHomeownerMatchService(homeowners HomeownerLister, cfg config.MatchingConfig) *HomeownerMatchService {
	return &HomeownerMatchService{
		homeowners: homeowners,
		candidates: cache.NewTTL[string, []matching.CandidateAddress](cfg.CandidateCacheTTL),
		defaults:   cfg,
	}
}

// DefaultOptions returns the configured thresholds for claim intake.
func (s *HomeownerMatchService) DefaultOptions() matching.MatchOptions {
	return matching.MatchOptions{
		MinSimilarity: s.defaults.MinSimilarity,
		Limit:         s.defaults.MultiMatchLimit,
	}
}

// MatchHomeowner resolves the query address to the best homeowner candidate,
// or nil when nothing reaches opts.MinSimilarity. A candidate-list failure
// comes back wrapped as ErrMatchLookup.
func (s *HomeownerMatchService) MatchHomeowner(ctx context.Context, address string, opts matching.MatchOptions) (*matching.MatchResult, error) {
	candidates, err := s.candidateAddresses(ctx)
	if err != nil {
		return nil, err
	}

	result := matching.FindBestMatch(candidates, address, opts)
	if result != nil {
		logger.Debug().
			Str("candidate_id", result.Candidate.ID).
			Float64("similarity", result.Similarity).
			Str("quality", matching.MatchQuality(result.Similarity)).
			Msg("resolved homeowner address")
	}
	return result, nil
}

// MatchHomeowners returns the ranked candidates at or above opts.MinSimilarity.
func (s *HomeownerMatchService) MatchHomeowners(ctx context.Context, address string, opts matching.MatchOptions) ([]matching.MatchResult, error) {
	candidates, err := s.candidateAddresses(ctx)
	if err != nil {
		return nil, err
	}
	return matching.FindMatches(candidates, address, opts), nil
}

// InvalidateCandidates drops the cached candidate list. Called after
// homeowner mutations so matches never run against stale addresses for
// longer than one request.
func (s *HomeownerMatchService) InvalidateCandidates() {
	s.candidates.Delete(candidateCacheKey)
}

func (s *HomeownerMatchService) candidateAddresses(ctx context.Context) ([]matching.CandidateAddress, error) {
	if cached, ok := s.candidates.Get(candidateCacheKey); ok {
		return cached, nil
	}

	homeowners, err := s.homeowners.ListAllHomeowners(ctx)
	if err != nil {
		// Deliberately swallow the raw error into the message: callers get a
		// stable, branchable failure instead of a leaked storage error.
		return nil, fmt.Errorf("%w: %v", ErrMatchLookup, err)
	}

	candidates := make([]matching.CandidateAddress, 0, len(homeowners))
	for _, h := range homeowners {
		address := ""
		if h.Address != nil {
			address = *h.Address
		}
		candidates = append(candidates, matching.CandidateAddress{
			ID:      h.ID.String(),
			Name:    h.Name,
			Address: address,
		})
	}

	s.candidates.Set(candidateCacheKey, candidates)
	return candidates, nil
}
