package generation

import (
	"encoding/json"
	"fmt"

	"github.com/james-ralph8555/tarot-daily/internal/models"
	"github.com/james-ralph8555/tarot-daily/internal/tarot"
)

// ReadingPayload is the structural contract a completion must satisfy before
// anything is persisted.
type ReadingPayload struct {
	Overview             string                 `json:"overview"`
	CardBreakdowns       []models.CardBreakdown `json:"cardBreakdowns"`
	Synthesis            string                 `json:"synthesis"`
	ActionableReflection string                 `json:"actionableReflection"`
}

// ParseReadingPayload decodes and validates a completion against the drawn
// cards: every text section non-empty, a valid orientation on each breakdown,
// and exactly one breakdown per drawn card.
func ParseReadingPayload(content string, draws []tarot.Draw) (ReadingPayload, error) {
	var payload ReadingPayload
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		return ReadingPayload{}, fmt.Errorf("decode reading payload: %w", err)
	}

	if payload.Overview == "" {
		return ReadingPayload{}, fmt.Errorf("reading payload: empty overview")
	}
	if payload.Synthesis == "" {
		return ReadingPayload{}, fmt.Errorf("reading payload: empty synthesis")
	}
	if payload.ActionableReflection == "" {
		return ReadingPayload{}, fmt.Errorf("reading payload: empty actionable reflection")
	}
	if len(payload.CardBreakdowns) != len(draws) {
		return ReadingPayload{}, fmt.Errorf("reading payload: %d breakdowns for %d cards",
			len(payload.CardBreakdowns), len(draws))
	}

	drawn := make(map[string]struct{}, len(draws))
	for _, draw := range draws {
		drawn[draw.Card.ID] = struct{}{}
	}
	for _, breakdown := range payload.CardBreakdowns {
		if breakdown.Summary == "" {
			return ReadingPayload{}, fmt.Errorf("reading payload: empty summary for %q", breakdown.CardID)
		}
		if !breakdown.Orientation.Valid() {
			return ReadingPayload{}, fmt.Errorf("reading payload: invalid orientation %q", breakdown.Orientation)
		}
		if _, ok := drawn[breakdown.CardID]; !ok {
			return ReadingPayload{}, fmt.Errorf("reading payload: breakdown for undrawn card %q", breakdown.CardID)
		}
		delete(drawn, breakdown.CardID)
	}

	return payload, nil
}
