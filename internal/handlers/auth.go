package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/james-ralph8555/tarot-daily/internal/middleware"
	"github.com/james-ralph8555/tarot-daily/internal/models"
	"github.com/james-ralph8555/tarot-daily/internal/security"
	"github.com/james-ralph8555/tarot-daily/internal/service"
)

type credentialsRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type userResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

func toUserResponse(user models.User) userResponse {
	return userResponse{
		ID:        user.ID,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}

func (h HandlerSet) RegisterUser(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_payload"})
		return
	}

	user, bundle, err := h.authService.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email_taken"})
			return
		}
		h.log.Error().Err(err).Msg("register failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_server_error"})
		return
	}

	setSessionCookies(c, bundle)
	c.JSON(http.StatusOK, gin.H{"user": toUserResponse(user)})
}

func (h HandlerSet) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_payload"})
		return
	}

	user, bundle, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		h.log.Error().Err(err).Msg("login failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_server_error"})
		return
	}

	setSessionCookies(c, bundle)
	c.JSON(http.StatusOK, gin.H{"user": toUserResponse(user)})
}

// Logout invalidates whatever session the cookie names and clears both
// cookies either way.
func (h HandlerSet) Logout(c *gin.Context) {
	if sessionID, err := c.Cookie(security.SessionCookieName); err == nil && sessionID != "" {
		if err := h.authService.Invalidate(c.Request.Context(), sessionID); err != nil {
			h.log.Warn().Err(err).Msg("session invalidate failed")
		}
	}

	for _, cookie := range security.LogoutCookies(h.cfg.Production()) {
		http.SetCookie(c.Writer, cookie)
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// SessionInfo reports the current user, or null without a valid session.
// Deliberately 200 in both cases so clients can probe without error noise.
func (h HandlerSet) SessionInfo(c *gin.Context) {
	sessionID, err := c.Cookie(security.SessionCookieName)
	if err != nil || sessionID == "" {
		c.JSON(http.StatusOK, gin.H{"user": nil})
		return
	}

	_, user, err := h.authService.Validate(c.Request.Context(), sessionID)
	if err != nil {
		if errors.Is(err, service.ErrNoSession) {
			c.JSON(http.StatusOK, gin.H{"user": nil})
			return
		}
		h.log.Error().Err(err).Msg("session validate failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_server_error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": toUserResponse(user)})
}

func (h HandlerSet) RotateCsrf(c *gin.Context) {
	session, ok := middleware.CurrentSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	token, cookie, err := h.authService.RotateCsrf(c.Request.Context(), session.ID)
	if err != nil {
		h.log.Error().Err(err).Msg("csrf rotate failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_server_error"})
		return
	}

	http.SetCookie(c.Writer, cookie)
	c.JSON(http.StatusOK, gin.H{"csrfToken": token})
}

func setSessionCookies(c *gin.Context, bundle service.SessionBundle) {
	http.SetCookie(c.Writer, bundle.SessionCookie)
	http.SetCookie(c.Writer, bundle.CsrfCookie)
}
