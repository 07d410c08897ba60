package ratelimit

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestDisabledLimiterAlwaysAllows(t *testing.T) {
	rl := New(1, 1, false)

	for i := 0; i < 10; i++ {
		assert.True(t, rl.Allow())
	}
}

func TestLimiterBlocksOverMinuteBudget(t *testing.T) {
	rl := New(3, 0, true)

	for i := 0; i < 3; i++ {
		assert.True(t, rl.Allow())
	}
	assert.False(t, rl.Allow())

	rl.Reset()
	assert.True(t, rl.Allow())
}

func TestStats(t *testing.T) {
	rl := New(5, 100, true)
	rl.Allow()
	rl.Allow()

	stats := rl.GetStats()

	assert.True(t, stats.Enabled)
	assert.Equal(t, 2, stats.RequestsLastMinute)
	assert.Equal(t, 5, stats.LimitPerMinute)
}

func TestMiddlewareRejectsWithEnvelope(t *testing.T) {
	rl := New(1, 0, true)
	r := gin.New()
	r.POST("/x", Middleware(rl), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/x", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/x", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "error", body["status"])
	assert.Equal(t, "Too many requests", body["message"])
}
