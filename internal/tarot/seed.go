package tarot

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// DeriveSeed binds a user and a UTC calendar date to a stable, unguessable
// per-day seed. The digest is recomputed on demand rather than stored, so it
// can be exposed to clients as a provenance marker without revealing the
// server secret.
func DeriveSeed(userID, isoDate, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%s:%s", userID, isoDate)
	return hex.EncodeToString(mac.Sum(nil))
}
