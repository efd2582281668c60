package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckCsrf(t *testing.T) {
	tests := []struct {
		name   string
		cookie string
		header string
		want   bool
	}{
		{"both match", "token-a", "token-a", true},
		{"mismatch", "token-a", "token-b", false},
		{"empty cookie", "", "token-a", false},
		{"empty header", "token-a", "", false},
		{"both empty", "", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CheckCsrf(tc.cookie, tc.header))
		})
	}
}

func TestGenerateSessionID(t *testing.T) {
	a, err := GenerateSessionID()
	require.NoError(t, err)
	b, err := GenerateSessionID()
	require.NoError(t, err)

	assert.Len(t, a, 50) // 25 bytes hex-encoded
	assert.NotEqual(t, a, b)
}

func TestGenerateCsrfToken(t *testing.T) {
	a, err := GenerateCsrfToken()
	require.NoError(t, err)
	b, err := GenerateCsrfToken()
	require.NoError(t, err)

	assert.Len(t, a, 64)
	assert.NotEqual(t, a, b)
}
