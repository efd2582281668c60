package tarot

import "fmt"

type SpreadType string

const (
	SpreadSingle      SpreadType = "single"
	SpreadThreeCard   SpreadType = "three-card"
	SpreadCelticCross SpreadType = "celtic-cross"
)

// ParseSpreadType maps a client-supplied value to a known spread, defaulting
// to the three-card layout for anything unrecognized.
func ParseSpreadType(value string) SpreadType {
	switch SpreadType(value) {
	case SpreadSingle, SpreadCelticCross:
		return SpreadType(value)
	default:
		return SpreadThreeCard
	}
}

// Draw is one drawn card with its orientation and spread slot.
type Draw struct {
	Card        Card
	Orientation Orientation
	Position    string
}

var threeCardPositions = []string{"past", "present", "potential"}

var celticCrossPositions = []string{
	"significator",
	"crossing",
	"foundation",
	"recent past",
	"aspiration",
	"near future",
	"self",
	"surroundings",
	"hopes and fears",
	"outcome",
}

func cardCount(spreadType SpreadType) int {
	switch spreadType {
	case SpreadSingle:
		return 1
	case SpreadCelticCross:
		return 10
	default:
		return 3
	}
}

func position(spreadType SpreadType, index int) string {
	var labels []string
	switch spreadType {
	case SpreadSingle:
		return "focus"
	case SpreadCelticCross:
		labels = celticCrossPositions
	default:
		labels = threeCardPositions
	}
	if index < len(labels) {
		return labels[index]
	}
	return fmt.Sprintf("slot-%d", index+1)
}

// GenerateSpread expands the seed into a full deck shuffle and draws the
// spread. Calling it twice with the same (seed, spreadType) yields identical
// results; that determinism is what makes re-requesting today's reading cheap.
func GenerateSpread(seed string, spreadType SpreadType) []Draw {
	rng := NewRng([]byte(seed))
	shuffled := rng.Shuffle(Deck)

	count := cardCount(spreadType)
	draws := make([]Draw, 0, count)
	for i, card := range shuffled[:count] {
		orientation := OrientationUpright
		if rng.Float() > 0.5 {
			orientation = OrientationReversed
		}
		draws = append(draws, Draw{
			Card:        card,
			Orientation: orientation,
			Position:    position(spreadType, i),
		})
	}
	return draws
}
