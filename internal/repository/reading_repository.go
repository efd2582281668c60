package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/james-ralph8555/tarot-daily/internal/models"
)

var ErrReadingNotFound = errors.New("reading not found")

// InsertResult tags the outcome of a guarded insert. Conflicted means another
// writer already owns the (user, date) slot; the caller re-reads instead of
// failing.
type InsertResult int

const (
	Inserted InsertResult = iota
	Conflicted
)

const uniqueViolationCode = "23505"

type ReadingRepository struct {
	pool *pgxpool.Pool
}

func NewReadingRepository(pool *pgxpool.Pool) *ReadingRepository {
	return &ReadingRepository{pool: pool}
}

const readingColumns = `
	id, user_id, iso_date, spread_type, seed_hmac, intent, cards,
	prompt_version, overview, card_breakdowns, synthesis,
	actionable_reflection, tone, model, created_at
`

// Insert persists a fully assembled reading. The unique constraint on
// (user_id, iso_date) is the only cross-process mutual exclusion in the
// system; a violation is reported as Conflicted, never as an error.
func (r *ReadingRepository) Insert(ctx context.Context, reading models.Reading) (InsertResult, error) {
	cards, err := json.Marshal(reading.Cards)
	if err != nil {
		return Inserted, fmt.Errorf("marshal cards: %w", err)
	}
	breakdowns, err := json.Marshal(reading.CardBreakdowns)
	if err != nil {
		return Inserted, fmt.Errorf("marshal breakdowns: %w", err)
	}

	const query = `
		INSERT INTO readings (` + readingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`

	_, err = r.pool.Exec(ctx, query,
		reading.ID,
		reading.Seed.UserID,
		reading.Seed.ISODate,
		reading.Seed.SpreadType,
		reading.Seed.Hmac,
		nullable(reading.Intent),
		cards,
		reading.PromptVersion,
		reading.Overview,
		breakdowns,
		reading.Synthesis,
		reading.ActionableReflection,
		reading.Tone,
		reading.Model,
		reading.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return Conflicted, nil
		}
		return Inserted, err
	}
	return Inserted, nil
}

func (r *ReadingRepository) FindByUserAndDate(ctx context.Context, userID, isoDate string) (models.Reading, error) {
	const query = `SELECT ` + readingColumns + ` FROM readings WHERE user_id = $1 AND iso_date = $2`
	return scanReading(r.pool.QueryRow(ctx, query, userID, isoDate))
}

func (r *ReadingRepository) GetByID(ctx context.Context, id string) (models.Reading, error) {
	const query = `SELECT ` + readingColumns + ` FROM readings WHERE id = $1`
	return scanReading(r.pool.QueryRow(ctx, query, id))
}

// ListByUser returns up to limit readings newest-first, starting strictly
// before the cursor when one is supplied. The cursor is the created_at of the
// last item in the previous page, in unix milliseconds.
func (r *ReadingRepository) ListByUser(ctx context.Context, userID string, limit int, cursor string) ([]models.Reading, string, error) {
	query := `SELECT ` + readingColumns + ` FROM readings WHERE user_id = $1`
	args := []any{userID}

	if cursor != "" {
		millis, err := strconv.ParseInt(cursor, 10, 64)
		if err != nil {
			return nil, "", fmt.Errorf("parse cursor: %w", err)
		}
		query += ` AND created_at < $2`
		args = append(args, time.UnixMilli(millis).UTC())
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT %d`, limit+1)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, "", err
	}
	defer rows.Close()

	var readings []models.Reading
	for rows.Next() {
		reading, err := scanReading(rows)
		if err != nil {
			return nil, "", err
		}
		readings = append(readings, reading)
	}
	if err := rows.Err(); err != nil {
		return nil, "", err
	}

	nextCursor := ""
	if len(readings) > limit {
		nextCursor = strconv.FormatInt(readings[limit].CreatedAt.UnixMilli(), 10)
		readings = readings[:limit]
	}
	return readings, nextCursor, nil
}

func scanReading(row pgx.Row) (models.Reading, error) {
	var (
		reading    models.Reading
		intent     *string
		cards      []byte
		breakdowns []byte
	)
	if err := row.Scan(
		&reading.ID,
		&reading.Seed.UserID,
		&reading.Seed.ISODate,
		&reading.Seed.SpreadType,
		&reading.Seed.Hmac,
		&intent,
		&cards,
		&reading.PromptVersion,
		&reading.Overview,
		&breakdowns,
		&reading.Synthesis,
		&reading.ActionableReflection,
		&reading.Tone,
		&reading.Model,
		&reading.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Reading{}, ErrReadingNotFound
		}
		return models.Reading{}, err
	}

	if intent != nil {
		reading.Intent = *intent
	}
	if err := json.Unmarshal(cards, &reading.Cards); err != nil {
		return models.Reading{}, fmt.Errorf("unmarshal cards: %w", err)
	}
	if err := json.Unmarshal(breakdowns, &reading.CardBreakdowns); err != nil {
		return models.Reading{}, fmt.Errorf("unmarshal breakdowns: %w", err)
	}
	reading.CreatedAt = reading.CreatedAt.UTC()
	return reading, nil
}

func nullable(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
