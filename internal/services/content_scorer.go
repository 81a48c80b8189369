package services

import (
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"

	"github.com/DhruvDewan08/course-recommendation-api/internal/artifacts"
)

// ContentScorer scores candidates by cosine similarity between the student's
// interest profile embedding and each course embedding.
type ContentScorer struct {
	store   *artifacts.Store
	logger  *logrus.Logger
	metrics *Metrics
}

func NewContentScorer(store *artifacts.Store, logger *logrus.Logger, metrics *Metrics) *ContentScorer {
	return &ContentScorer{store: store, logger: logger, metrics: metrics}
}

// Score returns a course→similarity map for the candidates. A user with no
// stored profile is a cold start: the map is empty and every candidate's
// content score defaults to 0. A candidate missing from the embedding index
// is skipped (score 0) without aborting the rest of the batch.
func (s *ContentScorer) Score(userID string, candidates []string) map[string]float64 {
	profile, ok := s.store.StudentEmbedding(userID)
	if !ok {
		s.logger.WithField("user_id", userID).
			Warn("No stored interest profile, content scores default to 0")
		s.metrics.ColdStartTotal.Inc()
		return nil
	}

	scores := make(map[string]float64, len(candidates))
	for _, courseID := range candidates {
		embedding, ok := s.store.CourseEmbedding(courseID)
		if !ok {
			s.metrics.MissingEmbeddingTotal.Inc()
			continue
		}
		scores[courseID] = cosineSimilarity(profile, embedding)
	}

	return scores
}

// cosineSimilarity is dot(a,b) / (||a||·||b||), with a zero-norm guard: a
// zero vector yields similarity 0 rather than dividing by zero.
func cosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	normA := floats.Norm(a, 2)
	normB := floats.Norm(b, 2)
	if normA == 0 || normB == 0 {
		return 0
	}

	return floats.Dot(a, b) / (normA * normB)
}
