package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/james-ralph8555/tarot-daily/internal/models"
)

var ErrFeedbackNotFound = errors.New("feedback not found")

type FeedbackRepository struct {
	pool *pgxpool.Pool
}

func NewFeedbackRepository(pool *pgxpool.Pool) *FeedbackRepository {
	return &FeedbackRepository{pool: pool}
}

// Upsert overwrites any existing feedback for the same (reading, user) pair
// and bumps the timestamp; at most one row ever exists per pair.
func (r *FeedbackRepository) Upsert(ctx context.Context, feedback models.Feedback) error {
	var tags []byte
	if feedback.Tags != nil {
		encoded, err := json.Marshal(feedback.Tags)
		if err != nil {
			return fmt.Errorf("marshal tags: %w", err)
		}
		tags = encoded
	}

	const query = `
		INSERT INTO feedback (reading_id, user_id, thumb, rationale, tags, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (reading_id, user_id)
		DO UPDATE SET thumb = EXCLUDED.thumb,
		              rationale = EXCLUDED.rationale,
		              tags = EXCLUDED.tags,
		              created_at = NOW()
	`

	_, err := r.pool.Exec(ctx, query,
		feedback.ReadingID,
		feedback.UserID,
		feedback.Thumb,
		nullable(feedback.Rationale),
		tags,
	)
	return err
}

func (r *FeedbackRepository) Get(ctx context.Context, readingID, userID string) (models.Feedback, error) {
	const query = `
		SELECT reading_id, user_id, thumb, rationale, tags, created_at
		FROM feedback
		WHERE reading_id = $1 AND user_id = $2
	`

	row := r.pool.QueryRow(ctx, query, readingID, userID)
	var (
		feedback  models.Feedback
		rationale *string
		tags      []byte
	)
	if err := row.Scan(
		&feedback.ReadingID,
		&feedback.UserID,
		&feedback.Thumb,
		&rationale,
		&tags,
		&feedback.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Feedback{}, ErrFeedbackNotFound
		}
		return models.Feedback{}, err
	}

	if rationale != nil {
		feedback.Rationale = *rationale
	}
	if len(tags) > 0 {
		if err := json.Unmarshal(tags, &feedback.Tags); err != nil {
			return models.Feedback{}, fmt.Errorf("unmarshal tags: %w", err)
		}
	}
	feedback.CreatedAt = feedback.CreatedAt.UTC()
	return feedback, nil
}
