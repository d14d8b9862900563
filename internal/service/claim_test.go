package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kevin101681/cascadeconnect-sub011/internal/matching"
	"github.com/kevin101681/cascadeconnect-sub011/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClaimStore struct {
	created   *repository.CreateClaimRequest
	createErr error
}

func (f *fakeClaimStore) CreateClaim(_ context.Context, req repository.CreateClaimRequest) (*repository.Claim, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = &req
	claim := &repository.Claim{
		ID:                uuid.New(),
		Title:             req.Title,
		Description:       req.Description,
		Status:            req.Status,
		HomeownerID:       req.HomeownerID,
		TranscriptAddress: req.TranscriptAddress,
		MatchSimilarity:   req.MatchSimilarity,
		CreatedAt:         time.Now(),
		UpdatedAt:         time.Now(),
	}
	return claim, nil
}

func (f *fakeClaimStore) GetClaim(_ context.Context, id uuid.UUID) (*repository.Claim, error) {
	return &repository.Claim{ID: id}, nil
}

func (f *fakeClaimStore) ListClaims(_ context.Context, _ repository.ListClaimsParams) ([]repository.Claim, error) {
	return nil, nil
}

func (f *fakeClaimStore) UpdateClaimStatus(_ context.Context, id uuid.UUID, status string) (*repository.Claim, error) {
	return &repository.Claim{ID: id, Status: status}, nil
}

func (f *fakeClaimStore) LinkHomeowner(_ context.Context, id, homeownerID uuid.UUID, similarity float64) (*repository.Claim, error) {
	return &repository.Claim{ID: id, HomeownerID: &homeownerID, MatchSimilarity: &similarity, Status: repository.ClaimStatusLinked}, nil
}

func (f *fakeClaimStore) DeleteClaim(_ context.Context, _ uuid.UUID) error {
	return nil
}

type fakeMatcher struct {
	result *matching.MatchResult
	err    error
}

func (f *fakeMatcher) MatchHomeowner(_ context.Context, _ string, _ matching.MatchOptions) (*matching.MatchResult, error) {
	return f.result, f.err
}

func (f *fakeMatcher) DefaultOptions() matching.MatchOptions {
	return matching.MatchOptions{MinSimilarity: 0.7, Limit: 5}
}

type recordingNotifier struct {
	received int
	err      error
}

func (n *recordingNotifier) NotifyClaimReceived(_ context.Context, _ *repository.Claim, _ *matching.MatchResult) error {
	n.received++
	return n.err
}

func (n *recordingNotifier) NotifyReviewDigest(_ context.Context, _ int64) error {
	return nil
}

func TestIntakeClaimAutoLink(t *testing.T) {
	homeownerID := uuid.New()
	store := &fakeClaimStore{}
	matcher := &fakeMatcher{
		result: &matching.MatchResult{
			Candidate:  matching.CandidateAddress{ID: homeownerID.String(), Name: "Alice Baker", Address: "123 Main St"},
			Similarity: 0.95,
		},
	}
	notifier := &recordingNotifier{}
	svc := NewClaimService(store, matcher, notifier, 0.9)

	result, err := svc.IntakeClaim(context.Background(), IntakeClaimRequest{
		Title:             "Leaking roof",
		TranscriptAddress: "123 Main Street",
	})
	require.NoError(t, err)
	require.NotNil(t, result.Match)

	assert.Equal(t, repository.ClaimStatusLinked, result.Claim.Status)
	require.NotNil(t, result.Claim.HomeownerID)
	assert.Equal(t, homeownerID, *result.Claim.HomeownerID)
	require.NotNil(t, result.Claim.MatchSimilarity)
	assert.InDelta(t, 0.95, *result.Claim.MatchSimilarity, 0.0001)
	assert.Equal(t, 1, notifier.received)
}

func TestIntakeClaimWeakMatchNeedsReview(t *testing.T) {
	store := &fakeClaimStore{}
	matcher := &fakeMatcher{
		result: &matching.MatchResult{
			Candidate:  matching.CandidateAddress{ID: uuid.New().String(), Address: "123 Main Ct"},
			Similarity: 0.82,
		},
	}
	svc := NewClaimService(store, matcher, &recordingNotifier{}, 0.9)

	result, err := svc.IntakeClaim(context.Background(), IntakeClaimRequest{
		Title:             "Cracked foundation",
		TranscriptAddress: "123 Main St",
	})
	require.NoError(t, err)

	assert.Equal(t, repository.ClaimStatusNeedsReview, result.Claim.Status)
	assert.Nil(t, result.Claim.HomeownerID)
	require.NotNil(t, result.Claim.MatchSimilarity, "weak match similarity is still recorded for reviewers")
	assert.InDelta(t, 0.82, *result.Claim.MatchSimilarity, 0.0001)
}

func TestIntakeClaimNoMatchNeedsReview(t *testing.T) {
	store := &fakeClaimStore{}
	svc := NewClaimService(store, &fakeMatcher{}, &recordingNotifier{}, 0.9)

	result, err := svc.IntakeClaim(context.Background(), IntakeClaimRequest{
		Title:             "Water damage",
		TranscriptAddress: "999 Birch Hollow",
	})
	require.NoError(t, err)

	assert.Equal(t, repository.ClaimStatusNeedsReview, result.Claim.Status)
	assert.Nil(t, result.Claim.MatchSimilarity)
	assert.Nil(t, result.Match)
}

func TestIntakeClaimBlankAddress(t *testing.T) {
	store := &fakeClaimStore{}
	// The matcher must not be consulted when there is no address to resolve.
	matcher := &fakeMatcher{err: errors.New("should not be called")}
	svc := NewClaimService(store, matcher, &recordingNotifier{}, 0.9)

	result, err := svc.IntakeClaim(context.Background(), IntakeClaimRequest{
		Title:             "Missing shingles",
		TranscriptAddress: "   ",
	})
	require.NoError(t, err)

	assert.Equal(t, repository.ClaimStatusNew, result.Claim.Status)
	assert.Nil(t, result.Claim.TranscriptAddress)
	assert.Nil(t, result.Match)
}

func TestIntakeClaimLookupFailureAborts(t *testing.T) {
	store := &fakeClaimStore{}
	matcher := &fakeMatcher{err: ErrMatchLookup}
	svc := NewClaimService(store, matcher, &recordingNotifier{}, 0.9)

	result, err := svc.IntakeClaim(context.Background(), IntakeClaimRequest{
		Title:             "Broken window",
		TranscriptAddress: "123 Main St",
	})
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrMatchLookup)
	assert.Nil(t, store.created, "no claim should be filed when candidate lookup fails")
}

func TestIntakeClaimNotifierFailureIsNotFatal(t *testing.T) {
	store := &fakeClaimStore{}
	notifier := &recordingNotifier{err: errors.New("smtp unavailable")}
	svc := NewClaimService(store, &fakeMatcher{}, notifier, 0.9)

	result, err := svc.IntakeClaim(context.Background(), IntakeClaimRequest{Title: "Drafty door"})
	require.NoError(t, err)
	assert.NotNil(t, result.Claim)
	assert.Equal(t, 1, notifier.received)
}
