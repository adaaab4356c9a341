package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"curr-backend/internal/config"
	"curr-backend/internal/service"
	"curr-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)
	db := testutils.NewSQLiteDB(t)
	seeder, err := service.NewReferenceDataSeederForDB(db, nil)
	require.NoError(t, err)
	return SetupRoutes(db, &config.Config{Port: "1337"}, seeder)
}

func TestSetupRoutesRegistersEndpoints(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		method string
		path   string
		status int
	}{
		{http.MethodGet, "/health", http.StatusOK},
		{http.MethodGet, "/health/ready", http.StatusOK},
		{http.MethodGet, "/health/live", http.StatusOK},
		{http.MethodGet, "/metrics", http.StatusOK},
		{http.MethodGet, "/swagger/doc.json", http.StatusOK},
		{http.MethodGet, "/unknown", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.status, recorder.Code)
		})
	}
}

func TestSeedInitialDataEndToEnd(t *testing.T) {
	router := newTestRouter(t)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/seed/initial-data", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"success":true`)
	assert.Contains(t, recorder.Body.String(), `"transaction_types":6`)
	assert.NotEmpty(t, recorder.Header().Get("X-Request-ID"))

	// Second call is a successful no-op
	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/seed/initial-data", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"transaction_types":0`)
}

func TestPprofOnlyWhenEnabled(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := testutils.NewSQLiteDB(t)
	seeder, err := service.NewReferenceDataSeederForDB(db, nil)
	require.NoError(t, err)

	disabled := SetupRoutes(db, &config.Config{Port: "1337"}, seeder)
	recorder := httptest.NewRecorder()
	disabled.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/debug/pprof/", nil))
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	enabled := SetupRoutes(db, &config.Config{Port: "1337", EnablePprof: true}, seeder)
	recorder = httptest.NewRecorder()
	enabled.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/debug/pprof/", nil))
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestCORSRestrictsOrigins(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := testutils.NewSQLiteDB(t)
	seeder, err := service.NewReferenceDataSeederForDB(db, nil)
	require.NoError(t, err)
	router := SetupRoutes(db, &config.Config{Port: "1337", CORSAllowOrigins: []string{"https://admin.example.org"}}, seeder)

	allowed := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	allowed.Header.Set("Origin", "https://admin.example.org")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, allowed)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "https://admin.example.org", recorder.Header().Get("Access-Control-Allow-Origin"))

	denied := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	denied.Header.Set("Origin", "https://evil.example.org")
	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, denied)
	assert.Equal(t, http.StatusForbidden, recorder.Code)
}
