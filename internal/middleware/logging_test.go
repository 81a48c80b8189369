package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupLoggedRouter() (*gin.Engine, *test.Hook) {
	gin.SetMode(gin.TestMode)

	logger, hook := test.NewNullLogger()
	router := gin.New()
	router.Use(Logger(logger))

	router.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/bad", func(c *gin.Context) { c.Status(http.StatusBadRequest) })
	router.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	return router, hook
}

func get(router *gin.Engine, path string) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", path, nil)
	router.ServeHTTP(w, req)
}

func TestLogger_LevelsByStatus(t *testing.T) {
	tests := []struct {
		path    string
		level   logrus.Level
		message string
	}{
		{"/ok", logrus.InfoLevel, "Request served"},
		{"/bad", logrus.WarnLevel, "Request refused"},
		{"/boom", logrus.ErrorLevel, "Request failed"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			router, hook := setupLoggedRouter()
			get(router, tt.path)

			require.Len(t, hook.Entries, 1)
			entry := hook.LastEntry()
			assert.Equal(t, tt.level, entry.Level)
			assert.Equal(t, tt.message, entry.Message)
			assert.Equal(t, tt.path, entry.Data["path"])
			assert.Equal(t, "GET", entry.Data["method"])
			assert.Contains(t, entry.Data, "latency_ms")
		})
	}
}

func TestLogger_SkipsProbeEndpoints(t *testing.T) {
	router, hook := setupLoggedRouter()

	get(router, "/health")
	assert.Empty(t, hook.Entries)
}
