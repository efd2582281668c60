package tarot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveSeedKnownValue(t *testing.T) {
	seed := DeriveSeed("user-1", "2024-01-01", "test-secret")
	assert.Equal(t, "88eeb3d153ea13ce05d7c22c1526d05446b77cf075b99ba45c503f3552c4dec7", seed)
}

func TestDeriveSeedDeterministic(t *testing.T) {
	a := DeriveSeed("user-1", "2024-01-01", "k")
	b := DeriveSeed("user-1", "2024-01-01", "k")
	require.Equal(t, a, b)
	require.Len(t, a, 64)
}

func TestDeriveSeedDivergence(t *testing.T) {
	base := DeriveSeed("user-1", "2024-01-01", "k")

	assert.NotEqual(t, base, DeriveSeed("user-1", "2024-01-02", "k"), "next day must change the seed")
	assert.NotEqual(t, base, DeriveSeed("user-2", "2024-01-01", "k"), "different user must change the seed")
	assert.NotEqual(t, base, DeriveSeed("user-1", "2024-01-01", "other"), "different secret must change the seed")
}
