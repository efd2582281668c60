package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/james-ralph8555/tarot-daily/internal/middleware"
	"github.com/james-ralph8555/tarot-daily/internal/models"
	"github.com/james-ralph8555/tarot-daily/internal/repository"
)

const (
	maxRationaleLength = 1000
	maxFeedbackTags    = 5
)

type feedbackRequest struct {
	ReadingID string   `json:"readingId" binding:"required"`
	Thumb     int      `json:"thumb" binding:"required"`
	Rationale string   `json:"rationale"`
	Tags      []string `json:"tags"`
}

func (h HandlerSet) SubmitFeedback(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req feedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil || (req.Thumb != 1 && req.Thumb != -1) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_payload"})
		return
	}

	if runes := []rune(req.Rationale); len(runes) > maxRationaleLength {
		req.Rationale = string(runes[:maxRationaleLength])
	}
	if len(req.Tags) > maxFeedbackTags {
		req.Tags = req.Tags[:maxFeedbackTags]
	}

	feedback := models.Feedback{
		ReadingID: req.ReadingID,
		UserID:    user.ID,
		Thumb:     req.Thumb,
		Rationale: req.Rationale,
		Tags:      req.Tags,
	}
	if err := h.feedback.Upsert(c.Request.Context(), feedback); err != nil {
		h.log.Error().Err(err).Str("reading_id", req.ReadingID).Msg("feedback upsert failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_server_error"})
		return
	}

	stored, err := h.feedback.Get(c.Request.Context(), req.ReadingID, user.ID)
	if err != nil {
		h.log.Error().Err(err).Str("reading_id", req.ReadingID).Msg("feedback read-back failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_server_error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"feedback": stored})
}

func (h HandlerSet) GetFeedback(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	readingID := c.Query("readingId")
	if readingID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_payload"})
		return
	}

	feedback, err := h.feedback.Get(c.Request.Context(), readingID, user.ID)
	if err != nil {
		if errors.Is(err, repository.ErrFeedbackNotFound) {
			c.JSON(http.StatusOK, gin.H{"feedback": nil})
			return
		}
		h.log.Error().Err(err).Str("reading_id", readingID).Msg("feedback lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_server_error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"feedback": feedback})
}
