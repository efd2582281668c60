package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/james-ralph8555/tarot-daily/internal/middleware"
	"github.com/james-ralph8555/tarot-daily/internal/models"
)

type pushSubscribeRequest struct {
	Endpoint       string `json:"endpoint" binding:"required,url"`
	ExpirationTime *int64 `json:"expirationTime"`
	Keys           struct {
		P256dh string `json:"p256dh" binding:"required"`
		Auth   string `json:"auth" binding:"required"`
	} `json:"keys" binding:"required"`
}

// SubscribePush registers a browser push endpoint. Delivery is handled by an
// external worker; this surface only records who asked.
func (h HandlerSet) SubscribePush(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req pushSubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_payload"})
		return
	}

	sub := models.PushSubscription{
		UserID:         user.ID,
		Endpoint:       req.Endpoint,
		ExpirationTime: req.ExpirationTime,
		Keys: models.PushKeys{
			P256dh: req.Keys.P256dh,
			Auth:   req.Keys.Auth,
		},
	}
	if err := h.push.Upsert(c.Request.Context(), sub); err != nil {
		h.log.Error().Err(err).Str("user_id", user.ID).Msg("push subscription upsert failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_server_error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"subscribed": true})
}
