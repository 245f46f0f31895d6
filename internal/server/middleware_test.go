package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fitclub/internal/metrics"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	metrics.HTTPRequestsTotal.Reset()

	router := gin.New()
	router.Use(MetricsMiddleware())
	router.GET("/classes/:classID/members", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/classes/7/members", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/nowhere", nil))

	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("GET", "/classes/:classID/members", "200")))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("GET", "unmatched", "404")))
}

func TestRequestIDMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestIDMiddleware())

	var seen string
	router.GET("/test", func(c *gin.Context) {
		seen = c.GetString("request_id")
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/test", nil))

	generated := w.Header().Get(requestIDHeader)
	_, err := uuid.Parse(generated)
	require.NoError(t, err)
	assert.Equal(t, generated, seen)

	incoming := uuid.NewString()
	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set(requestIDHeader, incoming)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, incoming, w.Header().Get(requestIDHeader))

	req = httptest.NewRequest("GET", "/test", nil)
	req.Header.Set(requestIDHeader, "not a uuid")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.NotEqual(t, "not a uuid", w.Header().Get(requestIDHeader))
}

func TestRequestLoggingMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestIDMiddleware(), RequestLoggingMiddleware())

	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusConflict, gin.H{"code": "trainer_busy"})
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/test?x=1", nil))

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRateLimitMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RateLimitMiddleware(1, 3))

	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/test", nil))
		assert.Equal(t, http.StatusOK, w.Code, "request %d", i+1)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/test", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestCorsMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(corsMiddleware())

	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/test", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("OPTIONS", "/test", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestRateLimiter_EvictsIdleVisitors(t *testing.T) {
	rl := &RateLimiter{visitors: map[string]*visitor{}, rate: 1, burst: 1, ttl: time.Minute}

	rl.Allow("10.0.0.1")
	rl.Allow("10.0.0.2")
	rl.visitors["10.0.0.1"].lastSeen = time.Now().Add(-2 * time.Minute)

	rl.evict(time.Now())

	assert.NotContains(t, rl.visitors, "10.0.0.1")
	assert.Contains(t, rl.visitors, "10.0.0.2")
	assert.Equal(t, "1", rl.retryAfter())
}
