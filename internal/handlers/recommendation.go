package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/DhruvDewan08/course-recommendation-api/internal/config"
	"github.com/DhruvDewan08/course-recommendation-api/internal/services"
	"github.com/DhruvDewan08/course-recommendation-api/pkg/models"
)

var validate = validator.New()

type RecommendationHandler struct {
	recommender services.Recommender
	logger      *logrus.Logger
	defaultTopN int
}

func NewRecommendationHandler(recommender services.Recommender, rec config.RecommendationConfig, logger *logrus.Logger) *RecommendationHandler {
	return &RecommendationHandler{
		recommender: recommender,
		logger:      logger,
		defaultTopN: rec.DefaultCount,
	}
}

// Recommend handles POST /recommendations. Validation errors and service
// unavailability surface immediately with a distinguishing error code;
// cold-start users are served normally.
func (h *RecommendationHandler) Recommend(c *gin.Context) {
	var request models.RecommendationRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": gin.H{
				"code":    "INVALID_REQUEST",
				"message": "Request body must be JSON with a user_id and optional positive top_n",
			},
		})
		return
	}

	if err := validate.Struct(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": gin.H{
				"code":    "INVALID_REQUEST",
				"message": "user_id is required and top_n must be positive",
			},
		})
		return
	}

	topN := h.defaultTopN
	if request.TopN != nil {
		topN = *request.TopN
	}

	recommendations, err := h.recommender.Recommend(c.Request.Context(), request.UserID, topN)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrServiceUnavailable):
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": gin.H{
					"code":    "SERVICE_UNAVAILABLE",
					"message": "Recommendation artifacts are not loaded",
				},
			})
		case errors.Is(err, services.ErrInvalidRequest):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": gin.H{
					"code":    "INVALID_REQUEST",
					"message": err.Error(),
				},
			})
		default:
			h.logger.WithError(err).WithField("user_id", request.UserID).
				Error("Failed to generate recommendations")
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": gin.H{
					"code":    "RECOMMENDATION_FAILED",
					"message": "Failed to generate recommendations",
				},
			})
		}
		return
	}

	if recommendations == nil {
		recommendations = []models.Recommendation{}
	}

	c.JSON(http.StatusOK, models.RecommendationResponse{
		Recommendations: recommendations,
	})
}
