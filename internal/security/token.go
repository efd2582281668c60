package security

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
)

const (
	sessionIDBytes = 25 // 200 bits of entropy
	csrfTokenBytes = 32
)

// GenerateSessionID returns an opaque, unguessable session identifier. The
// identifier is the credential itself; it carries no claims.
func GenerateSessionID() (string, error) {
	return randomHex(sessionIDBytes)
}

// GenerateCsrfToken returns a fresh anti-forgery token, independent of the
// session identifier so the two can rotate on different schedules.
func GenerateCsrfToken() (string, error) {
	return randomHex(csrfTokenBytes)
}

func randomHex(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// CheckCsrf performs the double-submit comparison: the cookie proves browser
// origin possession, the header proves the calling script could read that
// cookie. Absence of either side rejects.
func CheckCsrf(cookieToken, headerToken string) bool {
	if cookieToken == "" || headerToken == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(cookieToken), []byte(headerToken)) == 1
}
