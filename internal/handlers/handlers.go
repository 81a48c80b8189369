package handlers

import (
	"github.com/sirupsen/logrus"

	"github.com/DhruvDewan08/course-recommendation-api/internal/config"
	"github.com/DhruvDewan08/course-recommendation-api/internal/services"
)

type Handlers struct {
	Recommendation *RecommendationHandler
	Health         *HealthHandler
}

func New(cfg *config.Config, logger *logrus.Logger, svc *services.Services) *Handlers {
	return &Handlers{
		Recommendation: NewRecommendationHandler(svc.Recommendation, cfg.Recommendation, logger),
		Health:         NewHealthHandler(logger, svc.Health),
	}
}
