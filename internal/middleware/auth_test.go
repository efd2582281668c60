package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/james-ralph8555/tarot-daily/internal/security"
)

func csrfRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/mutate", Csrf(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return router
}

func TestCsrfMatchingTokens(t *testing.T) {
	router := csrfRouter()

	req := httptest.NewRequest(http.MethodPost, "/mutate", nil)
	req.AddCookie(&http.Cookie{Name: security.CsrfCookieName, Value: "token-123"})
	req.Header.Set(security.CsrfHeaderName, "token-123")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCsrfRejections(t *testing.T) {
	tests := []struct {
		name   string
		cookie string
		header string
	}{
		{"mismatched tokens", "token-123", "token-456"},
		{"missing header", "token-123", ""},
		{"missing cookie", "", "token-123"},
		{"both missing", "", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			router := csrfRouter()

			req := httptest.NewRequest(http.MethodPost, "/mutate", nil)
			if tc.cookie != "" {
				req.AddCookie(&http.Cookie{Name: security.CsrfCookieName, Value: tc.cookie})
			}
			if tc.header != "" {
				req.Header.Set(security.CsrfHeaderName, tc.header)
			}

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusForbidden, rec.Code)
			assert.Contains(t, rec.Body.String(), "invalid_csrf")
		})
	}
}
