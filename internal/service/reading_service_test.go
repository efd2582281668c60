package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/james-ralph8555/tarot-daily/internal/generation"
	"github.com/james-ralph8555/tarot-daily/internal/models"
	"github.com/james-ralph8555/tarot-daily/internal/repository"
	"github.com/james-ralph8555/tarot-daily/internal/tarot"
)

type fakeReadingStore struct {
	mu       sync.Mutex
	readings map[string]models.Reading
	listErr  error
}

func newFakeReadingStore() *fakeReadingStore {
	return &fakeReadingStore{readings: make(map[string]models.Reading)}
}

func readingKey(userID, isoDate string) string {
	return userID + "|" + isoDate
}

func (f *fakeReadingStore) FindByUserAndDate(_ context.Context, userID, isoDate string) (models.Reading, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	reading, ok := f.readings[readingKey(userID, isoDate)]
	if !ok {
		return models.Reading{}, repository.ErrReadingNotFound
	}
	return reading, nil
}

// Insert mirrors the database unique constraint on (user_id, iso_date): the
// first writer wins, later writers see Conflicted.
func (f *fakeReadingStore) Insert(_ context.Context, reading models.Reading) (repository.InsertResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := readingKey(reading.Seed.UserID, reading.Seed.ISODate)
	if _, ok := f.readings[key]; ok {
		return repository.Conflicted, nil
	}
	f.readings[key] = reading
	return repository.Inserted, nil
}

func (f *fakeReadingStore) ListByUser(_ context.Context, userID string, limit int, _ string) ([]models.Reading, string, error) {
	if f.listErr != nil {
		return nil, "", f.listErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	var items []models.Reading
	for _, reading := range f.readings {
		if reading.Seed.UserID == userID {
			items = append(items, reading)
		}
	}
	if len(items) > limit {
		items = items[:limit]
	}
	return items, "", nil
}

// fakeCompleter echoes a structurally valid payload built from the spread the
// prompt describes, so validation against the draws always lines up.
type fakeCompleter struct {
	calls int64
	fail  error
	reply func(spread []promptSpreadEntry) (string, error)
}

type promptSpreadEntry struct {
	CardID      string `json:"cardId"`
	Orientation string `json:"orientation"`
}

func (f *fakeCompleter) Complete(_ context.Context, messages []generation.Message) (generation.Completion, error) {
	atomic.AddInt64(&f.calls, 1)
	if f.fail != nil {
		return generation.Completion{}, f.fail
	}

	var prompt struct {
		Spread []promptSpreadEntry `json:"spread"`
	}
	if err := json.Unmarshal([]byte(messages[len(messages)-1].Content), &prompt); err != nil {
		return generation.Completion{}, err
	}

	if f.reply != nil {
		content, err := f.reply(prompt.Spread)
		return generation.Completion{Content: content, Model: "test-model"}, err
	}

	breakdowns := make([]models.CardBreakdown, 0, len(prompt.Spread))
	for _, entry := range prompt.Spread {
		breakdowns = append(breakdowns, models.CardBreakdown{
			CardID:      entry.CardID,
			Orientation: tarot.Orientation(entry.Orientation),
			Summary:     "Summary for " + entry.CardID + ".",
		})
	}
	content, err := json.Marshal(map[string]any{
		"overview":             "A grounded overview.",
		"cardBreakdowns":       breakdowns,
		"synthesis":            "A synthesis of the cards.",
		"actionableReflection": "One small step to take today.",
	})
	if err != nil {
		return generation.Completion{}, err
	}
	return generation.Completion{Content: string(content), Model: "test-model"}, nil
}

func newTestReadingService(store *fakeReadingStore, completer *fakeCompleter) *ReadingService {
	return NewReadingService(store, completer, nil, testConfig(), zerolog.Nop())
}

func ensureInput() EnsureInput {
	return EnsureInput{
		UserID:     "user-1",
		ISODate:    "2024-01-01",
		SpreadType: tarot.SpreadThreeCard,
		Intent:     "clarity at work",
	}
}

func TestEnsureGeneratesOncePerDay(t *testing.T) {
	store := newFakeReadingStore()
	completer := &fakeCompleter{}
	svc := newTestReadingService(store, completer)
	ctx := context.Background()

	first, created, err := svc.Ensure(ctx, ensureInput())
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotEmpty(t, first.ID)
	assert.Len(t, first.Cards, 3)
	assert.Equal(t, "warm-analytical", first.Tone)
	assert.Equal(t, "v1.deterministic", first.PromptVersion)
	assert.Equal(t, "test-model", first.Model)

	second, created, err := svc.Ensure(ctx, ensureInput())
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first, second)

	assert.EqualValues(t, 1, atomic.LoadInt64(&completer.calls), "second call must not regenerate")
}

func TestEnsureDifferentDatesAreIndependent(t *testing.T) {
	store := newFakeReadingStore()
	svc := newTestReadingService(store, &fakeCompleter{})
	ctx := context.Background()

	input := ensureInput()
	first, created, err := svc.Ensure(ctx, input)
	require.NoError(t, err)
	assert.True(t, created)

	input.ISODate = "2024-01-02"
	second, created, err := svc.Ensure(ctx, input)
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotEqual(t, first.Seed.Hmac, second.Seed.Hmac)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestEnsureConcurrentCallersConverge(t *testing.T) {
	store := newFakeReadingStore()
	svc := newTestReadingService(store, &fakeCompleter{})
	ctx := context.Background()

	const callers = 8
	results := make([]models.Reading, callers)
	createdFlags := make([]bool, callers)
	errs := make([]error, callers)

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], createdFlags[i], errs[i] = svc.Ensure(ctx, ensureInput())
		}(i)
	}
	wg.Wait()

	createdCount := 0
	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
		if createdFlags[i] {
			createdCount++
		}
		assert.Equal(t, results[0], results[i], "all callers must see the same reading")
	}
	assert.Equal(t, 1, createdCount, "exactly one caller creates")
	require.Len(t, store.readings, 1)
}

func TestEnsureConflictRereads(t *testing.T) {
	store := newFakeReadingStore()
	winner := models.Reading{
		ID: "winner",
		Seed: models.ReadingSeed{
			UserID:     "user-1",
			ISODate:    "2024-01-01",
			SpreadType: tarot.SpreadThreeCard,
		},
	}

	// The store is empty at lookup time but occupied at insert time, which is
	// exactly the interleaving a concurrent winner produces.
	completer := &fakeCompleter{}
	completer.reply = func(spread []promptSpreadEntry) (string, error) {
		_, _ = store.Insert(context.Background(), winner)
		breakdowns := make([]models.CardBreakdown, 0, len(spread))
		for _, entry := range spread {
			breakdowns = append(breakdowns, models.CardBreakdown{
				CardID:      entry.CardID,
				Orientation: tarot.Orientation(entry.Orientation),
				Summary:     "Summary.",
			})
		}
		raw, err := json.Marshal(map[string]any{
			"overview":             "Overview.",
			"cardBreakdowns":       breakdowns,
			"synthesis":            "Synthesis.",
			"actionableReflection": "Reflection.",
		})
		return string(raw), err
	}

	svc := newTestReadingService(store, completer)
	reading, created, err := svc.Ensure(context.Background(), ensureInput())
	require.NoError(t, err)
	assert.False(t, created, "the conflicting caller must not report creation")
	assert.Equal(t, "winner", reading.ID, "conflict resolves to the stored reading")
}

func TestEnsureGenerationTransportFailure(t *testing.T) {
	store := newFakeReadingStore()
	svc := newTestReadingService(store, &fakeCompleter{fail: errors.New("upstream 500")})

	_, _, err := svc.Ensure(context.Background(), ensureInput())
	require.ErrorIs(t, err, ErrGenerationFailed)
	assert.Empty(t, store.readings, "nothing persists on failure")
}

func TestEnsureGenerationContractViolation(t *testing.T) {
	store := newFakeReadingStore()
	completer := &fakeCompleter{}
	completer.reply = func([]promptSpreadEntry) (string, error) {
		return `{"overview":"","cardBreakdowns":[],"synthesis":"","actionableReflection":""}`, nil
	}
	svc := newTestReadingService(store, completer)

	_, _, err := svc.Ensure(context.Background(), ensureInput())
	require.ErrorIs(t, err, ErrGenerationFailed)
	assert.Empty(t, store.readings)
}

func TestEnsureTruncatesIntent(t *testing.T) {
	store := newFakeReadingStore()
	svc := newTestReadingService(store, &fakeCompleter{})

	input := ensureInput()
	input.Intent = strings.Repeat("é", 300)

	reading, _, err := svc.Ensure(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, maxIntentLength, len([]rune(reading.Intent)), "intent is truncated by runes")
}

func TestEnsureRequiresUserID(t *testing.T) {
	svc := newTestReadingService(newFakeReadingStore(), &fakeCompleter{})
	input := ensureInput()
	input.UserID = ""
	_, _, err := svc.Ensure(context.Background(), input)
	assert.Error(t, err)
}

func TestHistoryClampsLimit(t *testing.T) {
	store := newFakeReadingStore()
	for day := 1; day <= 60; day++ {
		date := fmt.Sprintf("2024-01-%02d", day%28+1)
		key := readingKey("user-1", fmt.Sprintf("%s-%d", date, day))
		store.readings[key] = models.Reading{
			ID:   fmt.Sprintf("r-%d", day),
			Seed: models.ReadingSeed{UserID: "user-1", ISODate: date},
		}
	}
	svc := newTestReadingService(store, &fakeCompleter{})

	history, err := svc.History(context.Background(), "user-1", 500, "")
	require.NoError(t, err)
	assert.Len(t, history.Items, maxHistoryPageSize)

	history, err = svc.History(context.Background(), "user-1", 0, "")
	require.NoError(t, err)
	assert.Len(t, history.Items, 10, "non-positive limit falls back to the default page size")
}

func TestHistoryEmptyIsNotNil(t *testing.T) {
	svc := newTestReadingService(newFakeReadingStore(), &fakeCompleter{})
	history, err := svc.History(context.Background(), "user-1", 10, "")
	require.NoError(t, err)
	assert.NotNil(t, history.Items)
	assert.Empty(t, history.Items)
}
