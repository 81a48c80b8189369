package services

import (
	"github.com/DhruvDewan08/course-recommendation-api/internal/artifacts"
)

// CollaborativeScorer scores candidates with the trained rating predictor.
// The predictor is total by contract (unseen pairs get its baseline
// estimate), so every candidate always receives a score on the rating scale.
type CollaborativeScorer struct {
	store *artifacts.Store
}

func NewCollaborativeScorer(store *artifacts.Store) *CollaborativeScorer {
	return &CollaborativeScorer{store: store}
}

func (s *CollaborativeScorer) Score(userID string, candidates []string) map[string]float64 {
	scores := make(map[string]float64, len(candidates))
	for _, courseID := range candidates {
		scores[courseID] = s.store.PredictRating(userID, courseID)
	}
	return scores
}
