package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/james-ralph8555/tarot-daily/internal/models"
	"github.com/james-ralph8555/tarot-daily/internal/security"
	"github.com/james-ralph8555/tarot-daily/internal/service"
)

const (
	ContextUser    = "current_user"
	ContextSession = "current_session"
)

// Auth resolves the session cookie to a (session, user) pair and aborts with
// 401 when none exists. Lazy expiry happens inside Validate.
func Auth(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(security.SessionCookieName)
		if err != nil || sessionID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		session, user, err := auth.Validate(c.Request.Context(), sessionID)
		if err != nil {
			if errors.Is(err, service.ErrNoSession) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			} else {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal_server_error"})
			}
			return
		}

		c.Set(ContextSession, session)
		c.Set(ContextUser, user)

		c.Next()
	}
}

// Csrf enforces the double-submit check on state-mutating endpoints: the
// token in the cookie must equal the token echoed in the request header.
func Csrf() gin.HandlerFunc {
	return func(c *gin.Context) {
		cookieToken, err := c.Cookie(security.CsrfCookieName)
		if err != nil {
			cookieToken = ""
		}
		headerToken := c.GetHeader(security.CsrfHeaderName)

		if !security.CheckCsrf(cookieToken, headerToken) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "invalid_csrf"})
			return
		}

		c.Next()
	}
}

// CurrentUser returns the authenticated user placed by Auth.
func CurrentUser(c *gin.Context) (models.User, bool) {
	value, exists := c.Get(ContextUser)
	if !exists {
		return models.User{}, false
	}
	user, ok := value.(models.User)
	return user, ok
}

// CurrentSession returns the validated session placed by Auth.
func CurrentSession(c *gin.Context) (models.Session, bool) {
	value, exists := c.Get(ContextSession)
	if !exists {
		return models.Session{}, false
	}
	session, ok := value.(models.Session)
	return session, ok
}
