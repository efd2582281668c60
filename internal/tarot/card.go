package tarot

type Arcana string

const (
	ArcanaMajor Arcana = "major"
	ArcanaMinor Arcana = "minor"
)

type Orientation string

const (
	OrientationUpright  Orientation = "upright"
	OrientationReversed Orientation = "reversed"
)

func (o Orientation) Valid() bool {
	return o == OrientationUpright || o == OrientationReversed
}

type Card struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Arcana          Arcana `json:"arcana"`
	Suit            string `json:"suit"`
	Number          int    `json:"number"`
	UprightMeaning  string `json:"uprightMeaning"`
	ReversedMeaning string `json:"reversedMeaning"`
}

// Meaning returns the interpretation matching the drawn orientation.
func (c Card) Meaning(orientation Orientation) string {
	if orientation == OrientationReversed {
		return c.ReversedMeaning
	}
	return c.UprightMeaning
}

var deckByID = func() map[string]Card {
	m := make(map[string]Card, len(Deck))
	for _, card := range Deck {
		m[card.ID] = card
	}
	return m
}()

// CardByID looks up a deck card by its stable identifier.
func CardByID(id string) (Card, bool) {
	card, ok := deckByID[id]
	return card, ok
}
