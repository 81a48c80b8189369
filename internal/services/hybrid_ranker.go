package services

import (
	"sort"

	"github.com/DhruvDewan08/course-recommendation-api/internal/config"
	"github.com/DhruvDewan08/course-recommendation-api/pkg/models"
)

// HybridRanker normalizes the collaborative score onto [0,1], fuses it with
// the content score as a convex combination, and produces the ranked,
// truncated recommendation list.
type HybridRanker struct {
	contentWeight       float64
	collaborativeWeight float64
	ratingMin           float64
	ratingSpan          float64
}

func NewHybridRanker(rec config.RecommendationConfig, rating config.RatingConfig) *HybridRanker {
	return &HybridRanker{
		contentWeight:       rec.ContentWeight,
		collaborativeWeight: rec.CollaborativeWeight,
		ratingMin:           rating.Min,
		ratingSpan:          rating.Max - rating.Min,
	}
}

// Rank fuses the two score maps over the candidates and returns the top
// topN entries sorted by hybrid score descending. Candidates keep their
// selector order through the stable sort, so ties resolve first-seen-wins
// and identical inputs always produce identical output. A topN beyond the
// candidate count returns everything without padding.
func (r *HybridRanker) Rank(
	candidates []string,
	contentScores, collaborativeScores map[string]float64,
	topN int,
) []models.Recommendation {
	ranked := make([]models.Recommendation, 0, len(candidates))
	for _, courseID := range candidates {
		contentScore := contentScores[courseID]
		normalizedCF := (collaborativeScores[courseID] - r.ratingMin) / r.ratingSpan

		ranked = append(ranked, models.Recommendation{
			CourseID: courseID,
			Score:    r.contentWeight*contentScore + r.collaborativeWeight*normalizedCF,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	if len(ranked) > topN {
		ranked = ranked[:topN]
	}

	return ranked
}
