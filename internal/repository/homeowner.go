package repository

import (
	"context"
	"errors"
	"time"

	"github.com/kevin101681/cascadeconnect-sub011/internal/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Homeowner represents a homeowner record
type Homeowner struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Email     *string    `json:"email,omitempty"`
	Phone     *string    `json:"phone,omitempty"`
	Address   *string    `json:"address,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"-"`
}

// CreateHomeownerRequest represents the request to create a homeowner
type CreateHomeownerRequest struct {
	Name    string  `json:"name"`
	Email   *string `json:"email,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Address *string `json:"address,omitempty"`
}

// UpdateHomeownerRequest represents the request to update a homeowner
type UpdateHomeownerRequest struct {
	Name    string  `json:"name"`
	Email   *string `json:"email,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Address *string `json:"address,omitempty"`
}

// ListHomeownersParams represents parameters for listing homeowners
type ListHomeownersParams struct {
	Limit  int32 `json:"limit"`
	Offset int32 `json:"offset"`
}

type HomeownerRepository struct {
	pool *pgxpool.Pool
}

func NewHomeownerRepository(pool *pgxpool.Pool) *HomeownerRepository {
	return &HomeownerRepository{pool: pool}
}

const homeownerColumns = `id, name, email, phone, address, created_at, updated_at`

func scanHomeowner(row pgx.Row) (*Homeowner, error) {
	var h Homeowner
	err := row.Scan(&h.ID, &h.Name, &h.Email, &h.Phone, &h.Address, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, db.ErrNotFound
		}
		return nil, err
	}
	return &h, nil
}

// GetHomeowner retrieves a homeowner by ID
func (r *HomeownerRepository) GetHomeowner(ctx context.Context, id uuid.UUID) (*Homeowner, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+homeownerColumns+` FROM homeowners WHERE id = $1 AND deleted_at IS NULL`, id)
	return scanHomeowner(row)
}

// ListHomeowners retrieves a paginated list of active homeowners
func (r *HomeownerRepository) ListHomeowners(ctx context.Context, params ListHomeownersParams) ([]Homeowner, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+homeownerColumns+` FROM homeowners
		 WHERE deleted_at IS NULL
		 ORDER BY name
		 LIMIT $1 OFFSET $2`, params.Limit, params.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectHomeowners(rows)
}

// ListAllHomeowners retrieves every active homeowner. This is the candidate
// supply for address matching; the matcher itself never touches storage.
func (r *HomeownerRepository) ListAllHomeowners(ctx context.Context) ([]Homeowner, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+homeownerColumns+` FROM homeowners WHERE deleted_at IS NULL ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectHomeowners(rows)
}

func collectHomeowners(rows pgx.Rows) ([]Homeowner, error) {
	var homeowners []Homeowner
	for rows.Next() {
		var h Homeowner
		if err := rows.Scan(&h.ID, &h.Name, &h.Email, &h.Phone, &h.Address, &h.CreatedAt, &h.UpdatedAt); err != nil {
			return nil, err
		}
		homeowners = append(homeowners, h)
	}
	return homeowners, rows.Err()
}

// CreateHomeowner creates a new homeowner
func (r *HomeownerRepository) CreateHomeowner(ctx context.Context, req CreateHomeownerRequest) (*Homeowner, error) {
	row := r.pool.QueryRow(ctx,
		`INSERT INTO homeowners (name, email, phone, address)
		 VALUES ($1, $2, $3, $4)
		 RETURNING `+homeownerColumns,
		req.Name, req.Email, req.Phone, req.Address)
	return scanHomeowner(row)
}

// UpdateHomeowner updates an existing homeowner
func (r *HomeownerRepository) UpdateHomeowner(ctx context.Context, id uuid.UUID, req UpdateHomeownerRequest) (*Homeowner, error) {
	row := r.pool.QueryRow(ctx,
		`UPDATE homeowners
		 SET name = $2, email = $3, phone = $4, address = $5, updated_at = now()
		 WHERE id = $1 AND deleted_at IS NULL
		 RETURNING `+homeownerColumns,
		id, req.Name, req.Email, req.Phone, req.Address)
	return scanHomeowner(row)
}

// SoftDeleteHomeowner soft deletes a homeowner
func (r *HomeownerRepository) SoftDeleteHomeowner(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE homeowners SET deleted_at = now() WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return db.ErrNotFound
	}
	return nil
}

// CountHomeowners returns the total number of active homeowners
func (r *HomeownerRepository) CountHomeowners(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM homeowners WHERE deleted_at IS NULL`).Scan(&count)
	return count, err
}
