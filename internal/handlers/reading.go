package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/james-ralph8555/tarot-daily/internal/middleware"
	"github.com/james-ralph8555/tarot-daily/internal/service"
	"github.com/james-ralph8555/tarot-daily/internal/stream"
	"github.com/james-ralph8555/tarot-daily/internal/tarot"
)

func (h HandlerSet) GetReading(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	isoDate := c.Query("date")
	if isoDate == "" {
		isoDate = todayISODate()
	}

	reading, _, err := h.readingService.Ensure(c.Request.Context(), service.EnsureInput{
		UserID:     user.ID,
		ISODate:    isoDate,
		SpreadType: tarot.ParseSpreadType(c.Query("spread")),
	})
	if err != nil {
		h.respondEnsureError(c, err)
		return
	}

	c.JSON(http.StatusOK, reading)
}

type createReadingRequest struct {
	ISODate    string `json:"isoDate"`
	SpreadType string `json:"spreadType"`
	Intent     string `json:"intent"`
	Tone       string `json:"tone"`
	Stream     *bool  `json:"stream"`
}

func (h HandlerSet) CreateReading(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req createReadingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_payload"})
		return
	}

	isoDate := req.ISODate
	if isoDate == "" {
		isoDate = todayISODate()
	}

	wantStream := req.Stream == nil || *req.Stream

	reading, created, err := h.readingService.Ensure(c.Request.Context(), service.EnsureInput{
		UserID:     user.ID,
		ISODate:    isoDate,
		SpreadType: tarot.ParseSpreadType(req.SpreadType),
		Intent:     req.Intent,
		Tone:       req.Tone,
	})
	if err != nil {
		if wantStream && errors.Is(err, service.ErrGenerationFailed) {
			// The stream contract replaces the remainder with a
			// terminal error message instead of an HTTP status.
			h.log.Error().Err(err).Str("user_id", user.ID).Msg("reading generation failed")
			c.Header("Content-Type", "application/json; charset=utf-8")
			c.Header("Cache-Control", "no-cache")
			stream.WriteError(c.Writer, "generation_failed")
			return
		}
		h.respondEnsureError(c, err)
		return
	}

	if !wantStream {
		c.JSON(http.StatusOK, gin.H{"reading": reading, "created": created})
		return
	}

	c.Header("Content-Type", "application/json; charset=utf-8")
	c.Header("Cache-Control", "no-cache")
	c.Status(http.StatusOK)

	if err := stream.Write(c.Request.Context(), c.Writer, reading, created); err != nil {
		// Client abort mid-stream; the reading is already durable.
		h.log.Debug().Err(err).Str("reading_id", reading.ID).Msg("stream interrupted")
	}
}

func (h HandlerSet) History(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	limit := 10
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			limit = parsed
		}
	}

	history, err := h.readingService.History(c.Request.Context(), user.ID, limit, c.Query("cursor"))
	if err != nil {
		h.log.Error().Err(err).Str("user_id", user.ID).Msg("history lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_server_error"})
		return
	}

	c.JSON(http.StatusOK, history)
}

func (h HandlerSet) respondEnsureError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrGenerationFailed) {
		h.log.Error().Err(err).Msg("reading generation failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "generation_failed"})
		return
	}
	h.log.Error().Err(err).Msg("reading ensure failed")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_server_error"})
}

func todayISODate() string {
	return time.Now().UTC().Format("2006-01-02")
}
