package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"curr-backend/internal/api/middleware"
	"curr-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(handlers...)
	return router
}

func TestRequestIDGenerated(t *testing.T) {
	router := newRouter(middleware.RequestID())
	var seen string
	router.GET("/ping", func(c *gin.Context) {
		seen, _ = c.Request.Context().Value(logger.RequestIDKey).(string)
		c.Status(http.StatusNoContent)
	})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/ping", nil))

	id := recorder.Header().Get(middleware.RequestIDHeader)
	assert.NotEmpty(t, id)
	assert.Equal(t, id, seen)
}

func TestRequestIDPropagated(t *testing.T) {
	router := newRouter(middleware.RequestID())
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(string(logger.RequestIDKey)))
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(middleware.RequestIDHeader, "abc-123")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, "abc-123", recorder.Header().Get(middleware.RequestIDHeader))
	assert.Equal(t, "abc-123", recorder.Body.String())
}

func TestRecovery(t *testing.T) {
	router := newRouter(middleware.Recovery())
	router.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})

	recorder := httptest.NewRecorder()
	require.NotPanics(t, func() {
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/panic", nil))
	})

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, recorder.Body.String())
}

func TestLoggerPassesThrough(t *testing.T) {
	router := newRouter(middleware.Logger())
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusTeapot, "pong")
	})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusTeapot, recorder.Code)
	assert.Equal(t, "pong", recorder.Body.String())
}

func TestMetricsCountsRequests(t *testing.T) {
	router := newRouter(middleware.Metrics())
	router.GET("/metrics-test/:id", func(c *gin.Context) {
		c.Status(http.StatusAccepted)
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	for _, path := range []string{"/metrics-test/1", "/metrics-test/2"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `http_requests_total{method="GET",route="/metrics-test/:id",status="202"} 2`)
}
