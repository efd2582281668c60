package generation

import (
	"encoding/json"
	"fmt"

	"github.com/james-ralph8555/tarot-daily/internal/tarot"
)

const systemPrompt = `You are an ethical tarot companion. Always include a concise wellness disclaimer stating that the reading is for reflection only and not medical, legal, or financial advice.
Respond strictly as minified JSON matching this interface:
{
  "overview": string;
  "cardBreakdowns": Array<{
    "cardId": string;
    "orientation": "upright" | "reversed";
    "summary": string;
  }>;
  "synthesis": string;
  "actionableReflection": string;
}
Every section must be concise yet specific. Mention each card exactly once in overview and relevant breakdowns.`

// PromptInput carries everything the model needs to compose one reading.
type PromptInput struct {
	UserID     string
	ISODate    string
	SpreadType tarot.SpreadType
	Intent     string
	Tone       string
	Draws      []tarot.Draw
}

type promptCard struct {
	CardID      string            `json:"cardId"`
	Name        string            `json:"name"`
	Position    string            `json:"position"`
	Orientation tarot.Orientation `json:"orientation"`
	Meaning     string            `json:"meaning"`
}

type promptPayload struct {
	Task     string         `json:"task"`
	Metadata promptMetadata `json:"metadata"`
	Intent   *string        `json:"intent"`
	Spread   []promptCard   `json:"spread"`
}

type promptMetadata struct {
	UserID     string `json:"userId"`
	ISODate    string `json:"isoDate"`
	SpreadType string `json:"spreadType"`
	Tone       string `json:"tone"`
	Disclaimer string `json:"disclaimer"`
}

// BuildMessages assembles the system and user messages for one generation
// call. The user message is itself JSON so the model sees structured card
// metadata rather than prose.
func BuildMessages(input PromptInput) ([]Message, error) {
	spread := make([]promptCard, 0, len(input.Draws))
	for _, draw := range input.Draws {
		spread = append(spread, promptCard{
			CardID:      draw.Card.ID,
			Name:        draw.Card.Name,
			Position:    draw.Position,
			Orientation: draw.Orientation,
			Meaning:     draw.Card.Meaning(draw.Orientation),
		})
	}

	var intent *string
	if input.Intent != "" {
		intent = &input.Intent
	}

	payload, err := json.Marshal(promptPayload{
		Task: "compose_structured_tarot_reading",
		Metadata: promptMetadata{
			UserID:     input.UserID,
			ISODate:    input.ISODate,
			SpreadType: string(input.SpreadType),
			Tone:       input.Tone,
			Disclaimer: "For reflection and entertainment only; does not replace professional advice.",
		},
		Intent: intent,
		Spread: spread,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal prompt: %w", err)
	}

	return []Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: string(payload)},
	}, nil
}
