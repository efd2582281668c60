package security

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionCookieAttributes(t *testing.T) {
	cookie := SessionCookie("session-id", 720*time.Hour, true)

	assert.Equal(t, SessionCookieName, cookie.Name)
	assert.Equal(t, "session-id", cookie.Value)
	assert.Equal(t, "/", cookie.Path)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.Equal(t, int((720 * time.Hour).Seconds()), cookie.MaxAge)
}

func TestCsrfCookieReadableByScript(t *testing.T) {
	cookie := CsrfCookie("csrf-token", 72*time.Hour, false)

	assert.Equal(t, CsrfCookieName, cookie.Name)
	assert.False(t, cookie.HttpOnly, "client script must be able to echo the token")
	assert.False(t, cookie.Secure)
	assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
	assert.Equal(t, int((72 * time.Hour).Seconds()), cookie.MaxAge)
}

func TestLogoutCookiesClearBoth(t *testing.T) {
	cookies := LogoutCookies(true)
	require.Len(t, cookies, 2)

	for _, cookie := range cookies {
		assert.Empty(t, cookie.Value)
		assert.Negative(t, cookie.MaxAge)
	}
	assert.Equal(t, SessionCookieName, cookies[0].Name)
	assert.Equal(t, CsrfCookieName, cookies[1].Name)
}
