package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/james-ralph8555/tarot-daily/internal/config"
	"github.com/james-ralph8555/tarot-daily/internal/generation"
	"github.com/james-ralph8555/tarot-daily/internal/ids"
	"github.com/james-ralph8555/tarot-daily/internal/models"
	"github.com/james-ralph8555/tarot-daily/internal/repository"
	"github.com/james-ralph8555/tarot-daily/internal/tarot"
)

// ErrGenerationFailed wraps transport errors and contract violations from the
// text-generation collaborator. Nothing is persisted when it fires, so the
// caller may retry.
var ErrGenerationFailed = errors.New("generation failed")

const (
	maxIntentLength    = 280
	readingCacheTTL    = 24 * time.Hour
	maxHistoryPageSize = 50
)

// ReadingStore is the persistence boundary for readings. Insert must report
// a uniqueness conflict on (user, date) as Conflicted rather than an error.
type ReadingStore interface {
	FindByUserAndDate(ctx context.Context, userID, isoDate string) (models.Reading, error)
	Insert(ctx context.Context, reading models.Reading) (repository.InsertResult, error)
	ListByUser(ctx context.Context, userID string, limit int, cursor string) ([]models.Reading, string, error)
}

// ReadingService implements fetch-or-create for the day's reading. The
// storage uniqueness constraint is the only mutual exclusion: no per-key
// lock, because a lock would not survive a second process.
type ReadingService struct {
	readings  ReadingStore
	completer generation.Completer
	cache     *redis.Client
	cfg       *config.AppConfig
	log       zerolog.Logger
	now       func() time.Time
}

func NewReadingService(
	readings ReadingStore,
	completer generation.Completer,
	cache *redis.Client,
	cfg *config.AppConfig,
	log zerolog.Logger,
) *ReadingService {
	return &ReadingService{
		readings:  readings,
		completer: completer,
		cache:     cache,
		cfg:       cfg,
		log:       log,
		now:       time.Now,
	}
}

type EnsureInput struct {
	UserID     string
	ISODate    string
	SpreadType tarot.SpreadType
	Intent     string
	Tone       string
}

// Ensure returns the reading for (user, date), generating and persisting it
// exactly once. The lookup in step one is the single source of truth for
// idempotency; concurrent first-time callers converge on one winner via the
// insert-then-read-on-conflict path.
func (s *ReadingService) Ensure(ctx context.Context, input EnsureInput) (models.Reading, bool, error) {
	if input.UserID == "" {
		return models.Reading{}, false, fmt.Errorf("user id is required")
	}
	if runes := []rune(input.Intent); len(runes) > maxIntentLength {
		input.Intent = string(runes[:maxIntentLength])
	}
	if input.Tone == "" {
		input.Tone = s.cfg.Generation.DefaultTone
	}

	if reading, ok := s.lookup(ctx, input.UserID, input.ISODate); ok {
		return reading, false, nil
	}

	reading, err := s.generate(ctx, input)
	if err != nil {
		return models.Reading{}, false, err
	}

	result, err := s.readings.Insert(ctx, reading)
	if err != nil {
		return models.Reading{}, false, fmt.Errorf("persist reading: %w", err)
	}
	if result == repository.Conflicted {
		// A concurrent request won the insert; their content is the
		// reading of record for this day.
		existing, err := s.readings.FindByUserAndDate(ctx, input.UserID, input.ISODate)
		if err != nil {
			return models.Reading{}, false, fmt.Errorf("read after conflict: %w", err)
		}
		s.cacheSet(ctx, existing)
		return existing, false, nil
	}

	s.cacheSet(ctx, reading)
	return reading, true, nil
}

func (s *ReadingService) lookup(ctx context.Context, userID, isoDate string) (models.Reading, bool) {
	if reading, ok := s.cacheGet(ctx, userID, isoDate); ok {
		return reading, true
	}

	reading, err := s.readings.FindByUserAndDate(ctx, userID, isoDate)
	if err != nil {
		if !errors.Is(err, repository.ErrReadingNotFound) {
			s.log.Warn().Err(err).Str("user_id", userID).Msg("reading lookup failed")
		}
		return models.Reading{}, false
	}
	s.cacheSet(ctx, reading)
	return reading, true
}

func (s *ReadingService) generate(ctx context.Context, input EnsureInput) (models.Reading, error) {
	seed := tarot.DeriveSeed(input.UserID, input.ISODate, s.cfg.Security.SeedSecret)
	draws := tarot.GenerateSpread(seed, input.SpreadType)

	messages, err := generation.BuildMessages(generation.PromptInput{
		UserID:     input.UserID,
		ISODate:    input.ISODate,
		SpreadType: input.SpreadType,
		Intent:     input.Intent,
		Tone:       input.Tone,
		Draws:      draws,
	})
	if err != nil {
		return models.Reading{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.Generation.Timeout)
	defer cancel()

	completion, err := s.completer.Complete(ctx, messages)
	if err != nil {
		return models.Reading{}, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	payload, err := generation.ParseReadingPayload(completion.Content, draws)
	if err != nil {
		return models.Reading{}, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	cards := make([]models.CardDraw, 0, len(draws))
	for _, draw := range draws {
		cards = append(cards, models.CardDraw{
			CardID:      draw.Card.ID,
			Orientation: draw.Orientation,
			Position:    draw.Position,
		})
	}

	return models.Reading{
		ID: ids.New(),
		Seed: models.ReadingSeed{
			UserID:     input.UserID,
			ISODate:    input.ISODate,
			SpreadType: input.SpreadType,
			Hmac:       seed,
		},
		Intent:               input.Intent,
		Cards:                cards,
		PromptVersion:        s.cfg.Generation.PromptVersion,
		Overview:             payload.Overview,
		CardBreakdowns:       payload.CardBreakdowns,
		Synthesis:            payload.Synthesis,
		ActionableReflection: payload.ActionableReflection,
		Tone:                 input.Tone,
		Model:                completion.Model,
		CreatedAt:            s.now().UTC(),
	}, nil
}

type History struct {
	Items      []models.Reading `json:"items"`
	NextCursor string           `json:"nextCursor,omitempty"`
}

func (s *ReadingService) History(ctx context.Context, userID string, limit int, cursor string) (History, error) {
	if limit < 1 {
		limit = 10
	}
	if limit > maxHistoryPageSize {
		limit = maxHistoryPageSize
	}

	items, nextCursor, err := s.readings.ListByUser(ctx, userID, limit, cursor)
	if err != nil {
		return History{}, err
	}
	if items == nil {
		items = []models.Reading{}
	}
	return History{Items: items, NextCursor: nextCursor}, nil
}

// Readings are immutable once persisted, so the cache never serves stale
// content. Cache failures only cost a database read.

func (s *ReadingService) cacheKey(userID, isoDate string) string {
	return fmt.Sprintf("reading:%s:%s", userID, isoDate)
}

func (s *ReadingService) cacheGet(ctx context.Context, userID, isoDate string) (models.Reading, bool) {
	if s.cache == nil {
		return models.Reading{}, false
	}
	raw, err := s.cache.Get(ctx, s.cacheKey(userID, isoDate)).Bytes()
	if err != nil {
		return models.Reading{}, false
	}
	var reading models.Reading
	if err := json.Unmarshal(raw, &reading); err != nil {
		return models.Reading{}, false
	}
	return reading, true
}

func (s *ReadingService) cacheSet(ctx context.Context, reading models.Reading) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(reading)
	if err != nil {
		return
	}
	key := s.cacheKey(reading.Seed.UserID, reading.Seed.ISODate)
	if err := s.cache.Set(ctx, key, raw, readingCacheTTL).Err(); err != nil {
		s.log.Debug().Err(err).Str("key", key).Msg("reading cache set failed")
	}
}
