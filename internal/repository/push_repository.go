package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/james-ralph8555/tarot-daily/internal/models"
)

type PushRepository struct {
	pool *pgxpool.Pool
}

func NewPushRepository(pool *pgxpool.Pool) *PushRepository {
	return &PushRepository{pool: pool}
}

// Upsert re-binds an endpoint to whichever user registered it most recently;
// browsers reuse endpoints across logins.
func (r *PushRepository) Upsert(ctx context.Context, sub models.PushSubscription) error {
	keys, err := json.Marshal(sub.Keys)
	if err != nil {
		return fmt.Errorf("marshal keys: %w", err)
	}

	const query = `
		INSERT INTO push_subscriptions (endpoint, user_id, expiration_time, keys, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (endpoint)
		DO UPDATE SET user_id = EXCLUDED.user_id,
		              expiration_time = EXCLUDED.expiration_time,
		              keys = EXCLUDED.keys
	`

	_, err = r.pool.Exec(ctx, query, sub.Endpoint, sub.UserID, sub.ExpirationTime, keys)
	return err
}

// SubscribedUserIDs lists distinct users with at least one registered
// endpoint, for the daily reminder job.
func (r *PushRepository) SubscribedUserIDs(ctx context.Context) ([]string, error) {
	const query = `SELECT DISTINCT user_id FROM push_subscriptions`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var userIDs []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		userIDs = append(userIDs, id)
	}
	return userIDs, rows.Err()
}
