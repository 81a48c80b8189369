package services

import (
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/DhruvDewan08/course-recommendation-api/internal/config"
)

type Services struct {
	Recommendation *RecommendationService
	Health         *HealthService
	Metrics        *Metrics
}

func New(cfg *config.Config, logger *logrus.Logger, cache *redis.Client, events EventPublisher) *Services {
	metrics := NewMetrics(logger)
	recommendation := NewRecommendationService(cfg, logger, metrics, cache, events)
	health := NewHealthService(recommendation)

	return &Services{
		Recommendation: recommendation,
		Health:         health,
		Metrics:        metrics,
	}
}
