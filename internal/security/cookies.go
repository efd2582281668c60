package security

import (
	"net/http"
	"time"
)

const (
	SessionCookieName = "dt_session"
	CsrfCookieName    = "dt_csrf"
	CsrfHeaderName    = "X-Csrf-Token"
)

// SessionCookie carries only the opaque session identifier. HttpOnly keeps it
// away from script; Lax lets top-level navigations stay signed in.
func SessionCookie(sessionID string, ttl time.Duration, production bool) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    sessionID,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   production,
		SameSite: http.SameSiteLaxMode,
	}
}

// CsrfCookie is deliberately readable by client script so the double-submit
// header can echo it back.
func CsrfCookie(token string, ttl time.Duration, production bool) *http.Cookie {
	return &http.Cookie{
		Name:     CsrfCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: false,
		Secure:   production,
		SameSite: http.SameSiteStrictMode,
	}
}

// LogoutCookies clears both cookies in one pass.
func LogoutCookies(production bool) []*http.Cookie {
	session := SessionCookie("", 0, production)
	session.MaxAge = -1
	csrf := CsrfCookie("", 0, production)
	csrf.MaxAge = -1
	return []*http.Cookie{session, csrf}
}
