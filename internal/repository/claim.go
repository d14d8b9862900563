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

// Claim statuses.
const (
	ClaimStatusNew         = "new"
	ClaimStatusLinked      = "linked"
	ClaimStatusNeedsReview = "needs_review"
	ClaimStatusResolved    = "resolved"
)

// Claim represents a warranty claim
type Claim struct {
	ID                uuid.UUID  `json:"id"`
	HomeownerID       *uuid.UUID `json:"homeowner_id,omitempty"`
	Title             string     `json:"title"`
	Description       *string    `json:"description,omitempty"`
	TranscriptAddress *string    `json:"transcript_address,omitempty"`
	MatchSimilarity   *float64   `json:"match_similarity,omitempty"`
	Status            string     `json:"status"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// CreateClaimRequest represents the request to create a claim
type CreateClaimRequest struct {
	HomeownerID       *uuid.UUID `json:"homeowner_id,omitempty"`
	Title             string     `json:"title"`
	Description       *string    `json:"description,omitempty"`
	TranscriptAddress *string    `json:"transcript_address,omitempty"`
	MatchSimilarity   *float64   `json:"match_similarity,omitempty"`
	Status            string     `json:"status"`
}

// ListClaimsParams represents parameters for listing claims
type ListClaimsParams struct {
	Status string `json:"status"`
	Limit  int32  `json:"limit"`
	Offset int32  `json:"offset"`
}

type ClaimRepository struct {
	pool *pgxpool.Pool
}

func NewClaimRepository(pool *pgxpool.Pool) *ClaimRepository {
	return &ClaimRepository{pool: pool}
}

const claimColumns = `id, homeowner_id, title, description, transcript_address, match_similarity, status, created_at, updated_at`

func scanClaim(row pgx.Row) (*Claim, error) {
	var c Claim
	err := row.Scan(&c.ID, &c.HomeownerID, &c.Title, &c.Description,
		&c.TranscriptAddress, &c.MatchSimilarity, &c.Status, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, db.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

// GetClaim retrieves a claim by ID
func (r *ClaimRepository) GetClaim(ctx context.Context, id uuid.UUID) (*Claim, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+claimColumns+` FROM claims WHERE id = $1`, id)
	return scanClaim(row)
}

// ListClaims retrieves a paginated list of claims, optionally filtered by status
func (r *ClaimRepository) ListClaims(ctx context.Context, params ListClaimsParams) ([]Claim, error) {
	query := `SELECT ` + claimColumns + ` FROM claims`
	args := []any{}
	if params.Status != "" {
		query += ` WHERE status = $1`
		args = append(args, params.Status)
	}
	query += ` ORDER BY created_at DESC`
	if params.Status != "" {
		query += ` LIMIT $2 OFFSET $3`
	} else {
		query += ` LIMIT $1 OFFSET $2`
	}
	args = append(args, params.Limit, params.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var claims []Claim
	for rows.Next() {
		var c Claim
		if err := rows.Scan(&c.ID, &c.HomeownerID, &c.Title, &c.Description,
			&c.TranscriptAddress, &c.MatchSimilarity, &c.Status, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		claims = append(claims, c)
	}
	return claims, rows.Err()
}

// CreateClaim creates a new claim
func (r *ClaimRepository) CreateClaim(ctx context.Context, req CreateClaimRequest) (*Claim, error) {
	row := r.pool.QueryRow(ctx,
		`INSERT INTO claims (homeowner_id, title, description, transcript_address, match_similarity, status)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING `+claimColumns,
		req.HomeownerID, req.Title, req.Description, req.TranscriptAddress, req.MatchSimilarity, req.Status)
	return scanClaim(row)
}

// UpdateClaimStatus updates the status of a claim
func (r *ClaimRepository) UpdateClaimStatus(ctx context.Context, id uuid.UUID, status string) (*Claim, error) {
	row := r.pool.QueryRow(ctx,
		`UPDATE claims SET status = $2, updated_at = now()
		 WHERE id = $1
		 RETURNING `+claimColumns,
		id, status)
	return scanClaim(row)
}

// LinkHomeowner attaches a claim to a homeowner with the similarity that
// justified the link, and marks the claim linked.
func (r *ClaimRepository) LinkHomeowner(ctx context.Context, id, homeownerID uuid.UUID, similarity float64) (*Claim, error) {
	row := r.pool.QueryRow(ctx,
		`UPDATE claims
		 SET homeowner_id = $2, match_similarity = $3, status = $4, updated_at = now()
		 WHERE id = $1
		 RETURNING `+claimColumns,
		id, homeownerID, similarity, ClaimStatusLinked)
	return scanClaim(row)
}

// DeleteClaim permanently deletes a claim
func (r *ClaimRepository) DeleteClaim(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM claims WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return db.ErrNotFound
	}
	return nil
}

// CountClaimsByStatus returns the number of claims in the given status
func (r *ClaimRepository) CountClaimsByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM claims WHERE status = $1`, status).Scan(&count)
	return count, err
}
