package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/DhruvDewan08/course-recommendation-api/internal/services"
)

type HealthHandler struct {
	logger        *logrus.Logger
	healthService *services.HealthService
}

func NewHealthHandler(logger *logrus.Logger, healthService *services.HealthService) *HealthHandler {
	return &HealthHandler{
		logger:        logger,
		healthService: healthService,
	}
}

func (h *HealthHandler) Check(c *gin.Context) {
	status := h.healthService.CheckHealth()

	httpStatus := http.StatusServiceUnavailable
	if status.Status == "healthy" {
		httpStatus = http.StatusOK
	}

	c.JSON(httpStatus, status)
}

// Root serves GET / with the short status the original API exposed.
func (h *HealthHandler) Root(c *gin.Context) {
	status := h.healthService.CheckHealth()
	c.JSON(http.StatusOK, gin.H{
		"status":           "ok",
		"artifacts_loaded": status.ArtifactsLoaded,
	})
}
