package service

import (
	"context"

	"github.com/kevin101681/cascadeconnect-sub011/internal/matching"
	"github.com/kevin101681/cascadeconnect-sub011/internal/repository"

	"github.com/google/uuid"
)

// homeownerStore is the slice of HomeownerRepository the service needs.
type homeownerStore interface {
	CreateHomeowner(ctx context.Context, req repository.CreateHomeownerRequest) (*repository.Homeowner, error)
	GetHomeowner(ctx context.Context, id uuid.UUID) (*repository.Homeowner, error)
	ListHomeowners(ctx context.Context, params repository.ListHomeownersParams) ([]repository.Homeowner, error)
	UpdateHomeowner(ctx context.Context, id uuid.UUID, req repository.UpdateHomeownerRequest) (*repository.Homeowner, error)
	SoftDeleteHomeowner(ctx context.Context, id uuid.UUID) error
	CountHomeowners(ctx context.Context) (int64, error)
}

// HomeownerService handles homeowner CRUD. Contact fields are normalized on
// the way in, and every mutation invalidates the match service's candidate
// cache so address resolution sees fresh data.
type HomeownerService struct {
	homeowners homeownerStore
	invalidate func()
}

func NewHomeownerService(homeowners homeownerStore, invalidate func()) *HomeownerService {
	if invalidate == nil {
		invalidate = func() {}
	}
	return &HomeownerService{homeowners: homeowners, invalidate: invalidate}
}

func (s *HomeownerService) CreateHomeowner(ctx context.Context, req repository.CreateHomeownerRequest) (*repository.Homeowner, error) {
	normalizeContact(req.Email, req.Phone)
	homeowner, err := s.homeowners.CreateHomeowner(ctx, req)
	if err != nil {
		return nil, err
	}
	s.invalidate()
	return homeowner, nil
}

func (s *HomeownerService) GetHomeowner(ctx context.Context, id uuid.UUID) (*repository.Homeowner, error) {
	return s.homeowners.GetHomeowner(ctx, id)
}

func (s *HomeownerService) ListHomeowners(ctx context.Context, params repository.ListHomeownersParams) ([]repository.Homeowner, int64, error) {
	homeowners, err := s.homeowners.ListHomeowners(ctx, params)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.homeowners.CountHomeowners(ctx)
	if err != nil {
		return nil, 0, err
	}

	return homeowners, total, nil
}

func (s *HomeownerService) UpdateHomeowner(ctx context.Context, id uuid.UUID, req repository.UpdateHomeownerRequest) (*repository.Homeowner, error) {
	normalizeContact(req.Email, req.Phone)
	homeowner, err := s.homeowners.UpdateHomeowner(ctx, id, req)
	if err != nil {
		return nil, err
	}
	s.invalidate()
	return homeowner, nil
}

func (s *HomeownerService) DeleteHomeowner(ctx context.Context, id uuid.UUID) error {
	if err := s.homeowners.SoftDeleteHomeowner(ctx, id); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

func normalizeContact(email, phone *string) {
	if email != nil {
		*email = matching.NormalizeEmail(*email)
	}
	if phone != nil {
		*phone = matching.NormalizePhone(*phone)
	}
}
