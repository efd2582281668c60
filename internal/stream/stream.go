// Package stream encodes a completed reading as an ordered sequence of
// newline-delimited JSON messages over a single response body. Order is
// fixed: seed, cards, one delta per logical section, final. There is no
// resumption concept; a dropped consumer re-requests and hits the idempotent
// lifecycle instead.
package stream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/james-ralph8555/tarot-daily/internal/models"
)

type Message struct {
	Type    string `json:"type"`
	Data    any    `json:"data"`
	Created *bool  `json:"created,omitempty"`
}

type Delta struct {
	Section string `json:"section"`
	Text    string `json:"text"`
}

type ErrorData struct {
	Message string `json:"message"`
}

// Messages lays out the full sequence for a reading. Exposed separately from
// Write so tests and non-HTTP consumers can inspect the protocol directly.
func Messages(reading models.Reading, created bool) []Message {
	messages := []Message{
		{Type: "seed", Data: reading.Seed},
		{Type: "cards", Data: reading.Cards, Created: &created},
		{Type: "delta", Data: Delta{Section: "overview", Text: reading.Overview}},
	}
	for _, breakdown := range reading.CardBreakdowns {
		messages = append(messages, Message{
			Type: "delta",
			Data: Delta{Section: "card:" + breakdown.CardID, Text: breakdown.Summary},
		})
	}
	messages = append(messages,
		Message{Type: "delta", Data: Delta{Section: "synthesis", Text: reading.Synthesis}},
		Message{Type: "delta", Data: Delta{Section: "actionableReflection", Text: reading.ActionableReflection}},
		Message{Type: "final", Data: reading},
	)
	return messages
}

// Write emits the sequence to w, flushing after every message so consumers
// see sections as they are encoded. A cancelled context stops emission; the
// persisted reading is durable regardless of how far the stream got.
func Write(ctx context.Context, w io.Writer, reading models.Reading, created bool) error {
	flusher, _ := w.(http.Flusher)
	encoder := json.NewEncoder(w)

	for _, message := range Messages(reading, created) {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err := encoder.Encode(message); err != nil {
			return fmt.Errorf("encode stream message: %w", err)
		}
		if flusher != nil {
			flusher.Flush()
		}
	}
	return nil
}

// WriteError replaces all subsequent messages with a terminal error message.
func WriteError(w io.Writer, message string) {
	encoder := json.NewEncoder(w)
	_ = encoder.Encode(Message{Type: "error", Data: ErrorData{Message: message}})
	if flusher, ok := w.(http.Flusher); ok {
		flusher.Flush()
	}
}
