package repository

import (
	"context"
	"time"

	"github.com/kevin101681/cascadeconnect-sub011/internal/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ClaimMessage is a single entry in a claim's message thread.
type ClaimMessage struct {
	ID        uuid.UUID `json:"id"`
	ClaimID   uuid.UUID `json:"claim_id"`
	Sender    string    `json:"sender"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateMessageRequest represents the request to add a message to a claim
type CreateMessageRequest struct {
	ClaimID uuid.UUID `json:"claim_id"`
	Sender  string    `json:"sender"`
	Body    string    `json:"body"`
}

type MessageRepository struct {
	pool *pgxpool.Pool
}

func NewMessageRepository(pool *pgxpool.Pool) *MessageRepository {
	return &MessageRepository{pool: pool}
}

// ListMessages retrieves all messages for a claim in chronological order
func (r *MessageRepository) ListMessages(ctx context.Context, claimID uuid.UUID) ([]ClaimMessage, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, claim_id, sender, body, created_at
		 FROM claim_messages
		 WHERE claim_id = $1
		 ORDER BY created_at`, claimID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []ClaimMessage
	for rows.Next() {
		var m ClaimMessage
		if err := rows.Scan(&m.ID, &m.ClaimID, &m.Sender, &m.Body, &m.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

// CreateMessage appends a message to a claim's thread
func (r *MessageRepository) CreateMessage(ctx context.Context, req CreateMessageRequest) (*ClaimMessage, error) {
	row := r.pool.QueryRow(ctx,
		`INSERT INTO claim_messages (claim_id, sender, body)
		 VALUES ($1, $2, $3)
		 RETURNING id, claim_id, sender, body, created_at`,
		req.ClaimID, req.Sender, req.Body)

	var m ClaimMessage
	if err := row.Scan(&m.ID, &m.ClaimID, &m.Sender, &m.Body, &m.CreatedAt); err != nil {
		if err == pgx.ErrNoRows {
			return nil, db.ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}
