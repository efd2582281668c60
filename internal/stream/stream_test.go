package stream

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/james-ralph8555/tarot-daily/internal/models"
	"github.com/james-ralph8555/tarot-daily/internal/tarot"
)

func sampleReading() models.Reading {
	return models.Reading{
		ID: "reading-1",
		Seed: models.ReadingSeed{
			UserID:     "user-1",
			ISODate:    "2024-01-01",
			SpreadType: tarot.SpreadThreeCard,
			Hmac:       strings.Repeat("ab", 32),
		},
		Cards: []models.CardDraw{
			{CardID: "major-14", Orientation: tarot.OrientationUpright, Position: "past"},
			{CardID: "swords-12", Orientation: tarot.OrientationUpright, Position: "present"},
			{CardID: "swords-14", Orientation: tarot.OrientationReversed, Position: "potential"},
		},
		PromptVersion: "v1.deterministic",
		Overview:      "overview text",
		CardBreakdowns: []models.CardBreakdown{
			{CardID: "major-14", Orientation: tarot.OrientationUpright, Summary: "first"},
			{CardID: "swords-12", Orientation: tarot.OrientationUpright, Summary: "second"},
			{CardID: "swords-14", Orientation: tarot.OrientationReversed, Summary: "third"},
		},
		Synthesis:            "synthesis text",
		ActionableReflection: "reflection text",
		Tone:                 "warm-analytical",
		Model:                "groq/openai/gpt-oss-20b",
		CreatedAt:            time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

type decoded struct {
	Type    string          `json:"type"`
	Data    json.RawMessage `json:"data"`
	Created *bool           `json:"created"`
}

func decodeLines(t *testing.T, raw []byte) []decoded {
	t.Helper()
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	messages := make([]decoded, 0, len(lines))
	for _, line := range lines {
		var message decoded
		require.NoError(t, json.Unmarshal([]byte(line), &message), "line %q", line)
		messages = append(messages, message)
	}
	return messages
}

func TestWriteMessageOrder(t *testing.T) {
	reading := sampleReading()
	var buf bytes.Buffer

	require.NoError(t, Write(context.Background(), &buf, reading, true))

	messages := decodeLines(t, buf.Bytes())
	require.Len(t, messages, 9, "seed, cards, 6 deltas, final")

	types := make([]string, len(messages))
	for i, message := range messages {
		types[i] = message.Type
	}
	assert.Equal(t, []string{"seed", "cards", "delta", "delta", "delta", "delta", "delta", "delta", "final"}, types)

	sections := make([]string, 0, 6)
	for _, message := range messages[2:8] {
		var delta Delta
		require.NoError(t, json.Unmarshal(message.Data, &delta))
		sections = append(sections, delta.Section)
	}
	assert.Equal(t, []string{
		"overview",
		"card:major-14",
		"card:swords-12",
		"card:swords-14",
		"synthesis",
		"actionableReflection",
	}, sections)
}

func TestWriteCreatedFlagOnCardsOnly(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(context.Background(), &buf, sampleReading(), false))

	messages := decodeLines(t, buf.Bytes())
	require.NotNil(t, messages[1].Created)
	assert.False(t, *messages[1].Created)
	assert.Nil(t, messages[0].Created)
	assert.Nil(t, messages[8].Created)
}

func TestWriteFinalIsAuthoritative(t *testing.T) {
	reading := sampleReading()
	var buf bytes.Buffer
	require.NoError(t, Write(context.Background(), &buf, reading, true))

	messages := decodeLines(t, buf.Bytes())
	var final models.Reading
	require.NoError(t, json.Unmarshal(messages[8].Data, &final))
	assert.Equal(t, reading, final)
}

func TestWriteStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	err := Write(ctx, &buf, sampleReading(), true)
	require.Error(t, err)
	assert.Zero(t, buf.Len())
}

func TestWriteError(t *testing.T) {
	var buf bytes.Buffer
	WriteError(&buf, "generation_failed")

	messages := decodeLines(t, buf.Bytes())
	require.Len(t, messages, 1)
	assert.Equal(t, "error", messages[0].Type)

	var data ErrorData
	require.NoError(t, json.Unmarshal(messages[0].Data, &data))
	assert.Equal(t, "generation_failed", data.Message)
}
