package tarot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSpreadDeterministic(t *testing.T) {
	seed := DeriveSeed("user-1", "2024-01-01", "test-secret")

	a := GenerateSpread(seed, SpreadThreeCard)
	b := GenerateSpread(seed, SpreadThreeCard)
	require.Equal(t, a, b)

	// Regression pin for the full derive-then-draw pipeline.
	require.Len(t, a, 3)
	assert.Equal(t, "major-14", a[0].Card.ID)
	assert.Equal(t, OrientationUpright, a[0].Orientation)
	assert.Equal(t, "swords-12", a[1].Card.ID)
	assert.Equal(t, "swords-14", a[2].Card.ID)
}

func TestGenerateSpreadCardCounts(t *testing.T) {
	tests := []struct {
		spreadType SpreadType
		count      int
	}{
		{SpreadSingle, 1},
		{SpreadThreeCard, 3},
		{SpreadCelticCross, 10},
	}

	for _, tc := range tests {
		draws := GenerateSpread("seed", tc.spreadType)
		assert.Len(t, draws, tc.count, "spread %s", tc.spreadType)
	}
}

func TestGenerateSpreadPositions(t *testing.T) {
	single := GenerateSpread("seed", SpreadSingle)
	assert.Equal(t, "focus", single[0].Position)

	three := GenerateSpread("seed", SpreadThreeCard)
	assert.Equal(t, []string{"past", "present", "potential"}, positions(three))

	celtic := GenerateSpread("seed", SpreadCelticCross)
	require.Len(t, celtic, 10)
	assert.Equal(t, "significator", celtic[0].Position)
	assert.Equal(t, "outcome", celtic[9].Position)
}

func TestGenerateSpreadUniqueCards(t *testing.T) {
	draws := GenerateSpread("seed", SpreadCelticCross)
	seen := make(map[string]struct{})
	for _, draw := range draws {
		_, dup := seen[draw.Card.ID]
		require.False(t, dup, "card %s drawn twice", draw.Card.ID)
		seen[draw.Card.ID] = struct{}{}
	}
}

func TestGenerateSpreadSeedDivergence(t *testing.T) {
	a := GenerateSpread(DeriveSeed("user-1", "2024-01-01", "k"), SpreadCelticCross)
	b := GenerateSpread(DeriveSeed("user-1", "2024-01-02", "k"), SpreadCelticCross)
	assert.NotEqual(t, drawIDs(a)[:5], drawIDs(b)[:5])
}

func TestParseSpreadTypeFallback(t *testing.T) {
	assert.Equal(t, SpreadSingle, ParseSpreadType("single"))
	assert.Equal(t, SpreadCelticCross, ParseSpreadType("celtic-cross"))
	assert.Equal(t, SpreadThreeCard, ParseSpreadType("three-card"))
	assert.Equal(t, SpreadThreeCard, ParseSpreadType(""))
	assert.Equal(t, SpreadThreeCard, ParseSpreadType("five-card"))
}

func positions(draws []Draw) []string {
	out := make([]string, len(draws))
	for i, draw := range draws {
		out[i] = draw.Position
	}
	return out
}

func drawIDs(draws []Draw) []string {
	out := make([]string, len(draws))
	for i, draw := range draws {
		out[i] = draw.Card.ID
	}
	return out
}
