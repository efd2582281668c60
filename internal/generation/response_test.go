package generation

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/james-ralph8555/tarot-daily/internal/tarot"
)

func testDraws(t *testing.T) []tarot.Draw {
	t.Helper()
	seed := tarot.DeriveSeed("user-1", "2024-01-01", "test-secret")
	return tarot.GenerateSpread(seed, tarot.SpreadThreeCard)
}

func validPayload(draws []tarot.Draw) map[string]any {
	breakdowns := make([]map[string]any, 0, len(draws))
	for _, draw := range draws {
		breakdowns = append(breakdowns, map[string]any{
			"cardId":      draw.Card.ID,
			"orientation": string(draw.Orientation),
			"summary":     "A summary for " + draw.Card.Name + ".",
		})
	}
	return map[string]any{
		"overview":             "An overview mentioning every card.",
		"cardBreakdowns":       breakdowns,
		"synthesis":            "A synthesis.",
		"actionableReflection": "A reflection. Not professional advice.",
	}
}

func marshal(t *testing.T, payload map[string]any) string {
	t.Helper()
	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	return string(raw)
}

func TestParseReadingPayloadValid(t *testing.T) {
	draws := testDraws(t)
	payload, err := ParseReadingPayload(marshal(t, validPayload(draws)), draws)
	require.NoError(t, err)

	assert.Equal(t, "An overview mentioning every card.", payload.Overview)
	assert.Len(t, payload.CardBreakdowns, 3)
}

func TestParseReadingPayloadRejections(t *testing.T) {
	draws := testDraws(t)

	tests := []struct {
		name   string
		mutate func(map[string]any)
	}{
		{"empty overview", func(p map[string]any) { p["overview"] = "" }},
		{"empty synthesis", func(p map[string]any) { p["synthesis"] = "" }},
		{"empty reflection", func(p map[string]any) { p["actionableReflection"] = "" }},
		{"missing breakdown", func(p map[string]any) {
			p["cardBreakdowns"] = p["cardBreakdowns"].([]map[string]any)[:2]
		}},
		{"invalid orientation", func(p map[string]any) {
			p["cardBreakdowns"].([]map[string]any)[0]["orientation"] = "sideways"
		}},
		{"empty summary", func(p map[string]any) {
			p["cardBreakdowns"].([]map[string]any)[1]["summary"] = ""
		}},
		{"undrawn card", func(p map[string]any) {
			p["cardBreakdowns"].([]map[string]any)[2]["cardId"] = "major-00"
		}},
		{"duplicate card", func(p map[string]any) {
			breakdowns := p["cardBreakdowns"].([]map[string]any)
			breakdowns[1]["cardId"] = breakdowns[0]["cardId"]
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			payload := validPayload(draws)
			tc.mutate(payload)
			_, err := ParseReadingPayload(marshal(t, payload), draws)
			assert.Error(t, err)
		})
	}
}

func TestParseReadingPayloadMalformedJSON(t *testing.T) {
	_, err := ParseReadingPayload("not json at all", testDraws(t))
	assert.Error(t, err)
}

func TestBuildMessages(t *testing.T) {
	draws := testDraws(t)
	messages, err := BuildMessages(PromptInput{
		UserID:     "user-1",
		ISODate:    "2024-01-01",
		SpreadType: tarot.SpreadThreeCard,
		Intent:     "clarity at work",
		Tone:       "warm-analytical",
		Draws:      draws,
	})
	require.NoError(t, err)
	require.Len(t, messages, 2)

	assert.Equal(t, "system", messages[0].Role)
	assert.Contains(t, messages[0].Content, "disclaimer")

	var payload struct {
		Task   string  `json:"task"`
		Intent *string `json:"intent"`
		Spread []struct {
			CardID      string `json:"cardId"`
			Orientation string `json:"orientation"`
			Meaning     string `json:"meaning"`
		} `json:"spread"`
	}
	require.NoError(t, json.Unmarshal([]byte(messages[1].Content), &payload))
	assert.Equal(t, "compose_structured_tarot_reading", payload.Task)
	require.NotNil(t, payload.Intent)
	assert.Equal(t, "clarity at work", *payload.Intent)
	require.Len(t, payload.Spread, 3)

	// Meaning must follow the drawn orientation.
	for i, draw := range draws {
		assert.Equal(t, draw.Card.Meaning(draw.Orientation), payload.Spread[i].Meaning)
	}
}

func TestBuildMessagesNullIntent(t *testing.T) {
	messages, err := BuildMessages(PromptInput{
		UserID:     "user-1",
		ISODate:    "2024-01-01",
		SpreadType: tarot.SpreadSingle,
		Tone:       "warm-analytical",
		Draws:      tarot.GenerateSpread("seed", tarot.SpreadSingle),
	})
	require.NoError(t, err)
	assert.Contains(t, messages[1].Content, `"intent":null`)
}
