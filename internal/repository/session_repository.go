package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/james-ralph8555/tarot-daily/internal/models"
)

var ErrSessionNotFound = errors.New("session not found")

type SessionRepository struct {
	pool *pgxpool.Pool
}

func NewSessionRepository(pool *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{pool: pool}
}

func (r *SessionRepository) Create(ctx context.Context, session models.Session) error {
	const query = `
		INSERT INTO sessions (id, user_id, csrf_token, expires_at, created_at)
		VALUES ($1, $2, $3, $4, NOW())
	`

	_, err := r.pool.Exec(ctx, query,
		session.ID,
		session.UserID,
		session.CsrfToken,
		session.ExpiresAt,
	)
	return err
}

// GetWithUser loads a session joined with its owning user in one round trip.
func (r *SessionRepository) GetWithUser(ctx context.Context, id string) (models.Session, models.User, error) {
	const query = `
		SELECT s.id, s.user_id, s.csrf_token, s.expires_at, s.created_at,
		       u.id, u.email, u.password_hash, u.created_at, u.updated_at
		FROM sessions s
		JOIN users u ON u.id = s.user_id
		WHERE s.id = $1
	`

	row := r.pool.QueryRow(ctx, query, id)
	var (
		session models.Session
		user    models.User
	)
	if err := row.Scan(
		&session.ID,
		&session.UserID,
		&session.CsrfToken,
		&session.ExpiresAt,
		&session.CreatedAt,
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Session{}, models.User{}, ErrSessionNotFound
		}
		return models.Session{}, models.User{}, err
	}
	return session, user, nil
}

// Delete is idempotent: removing an already-absent session is not an error.
func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM sessions WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id)
	return err
}

// UpdateCsrfToken rotates only the anti-forgery token; the session identifier
// and expiry are untouched.
func (r *SessionRepository) UpdateCsrfToken(ctx context.Context, id string, token string) error {
	const query = `UPDATE sessions SET csrf_token = $2 WHERE id = $1`
	cmd, err := r.pool.Exec(ctx, query, id, token)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrSessionNotFound
	}
	return nil
}

// DeleteExpired sweeps sessions whose expiry has passed. Lazy expiry at
// validation time keeps the system correct without this; the sweep just keeps
// the table small.
func (r *SessionRepository) DeleteExpired(ctx context.Context) (int64, error) {
	const query = `DELETE FROM sessions WHERE expires_at <= NOW()`
	cmd, err := r.pool.Exec(ctx, query)
	if err != nil {
		return 0, err
	}
	return cmd.RowsAffected(), nil
}
