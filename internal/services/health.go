package services

import (
	"time"
)

type HealthStatus struct {
	Status          string    `json:"status"`
	ArtifactsLoaded bool      `json:"artifacts_loaded"`
	Timestamp       time.Time `json:"timestamp"`
}

// HealthService reports serving health from the recommendation service's
// lifecycle state: Ready is healthy, Loading is starting, Failed (or an
// unexpected state) is unhealthy.
type HealthService struct {
	recommendation *RecommendationService
}

func NewHealthService(recommendation *RecommendationService) *HealthService {
	return &HealthService{recommendation: recommendation}
}

func (s *HealthService) CheckHealth() *HealthStatus {
	state := s.recommendation.State()

	status := "unhealthy"
	switch state {
	case StateReady:
		status = "healthy"
	case StateLoading, StateUninitialized:
		status = "starting"
	}

	return &HealthStatus{
		Status:          status,
		ArtifactsLoaded: state == StateReady,
		Timestamp:       time.Now(),
	}
}
