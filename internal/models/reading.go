package models

import (
	"time"

	"github.com/james-ralph8555/tarot-daily/internal/tarot"
)

// ReadingSeed is the provenance marker for a reading: the keyed digest binds
// user, date and spread type without revealing the server secret.
type ReadingSeed struct {
	UserID     string           `json:"userId"`
	ISODate    string           `json:"isoDate"`
	SpreadType tarot.SpreadType `json:"spreadType"`
	Hmac       string           `json:"hmac"`
}

type CardDraw struct {
	CardID      string            `json:"cardId"`
	Orientation tarot.Orientation `json:"orientation"`
	Position    string            `json:"position"`
}

type CardBreakdown struct {
	CardID      string            `json:"cardId"`
	Orientation tarot.Orientation `json:"orientation"`
	Summary     string            `json:"summary"`
}

// Reading is immutable once persisted; feedback lives in a separate table.
type Reading struct {
	ID                   string          `json:"id"`
	Seed                 ReadingSeed     `json:"seed"`
	Intent               string          `json:"intent,omitempty"`
	Cards                []CardDraw      `json:"cards"`
	PromptVersion        string          `json:"promptVersion"`
	Overview             string          `json:"overview"`
	CardBreakdowns       []CardBreakdown `json:"cardBreakdowns"`
	Synthesis            string          `json:"synthesis"`
	ActionableReflection string          `json:"actionableReflection"`
	Tone                 string          `json:"tone"`
	Model                string          `json:"model"`
	CreatedAt            time.Time       `json:"createdAt"`
}

type Feedback struct {
	ReadingID string    `json:"readingId"`
	UserID    string    `json:"userId"`
	Thumb     int       `json:"thumb"`
	Rationale string    `json:"rationale,omitempty"`
	Tags      []string  `json:"tags,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type PushSubscription struct {
	UserID         string    `json:"userId"`
	Endpoint       string    `json:"endpoint"`
	ExpirationTime *int64    `json:"expirationTime"`
	Keys           PushKeys  `json:"keys"`
	CreatedAt      time.Time `json:"createdAt"`
}

type PushKeys struct {
	P256dh string `json:"p256dh"`
	Auth   string `json:"auth"`
}
