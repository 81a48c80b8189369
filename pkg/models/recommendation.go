package models

// Recommendation is one ranked entry in a recommendation response.
type Recommendation struct {
	CourseID string  `json:"course_id"`
	Score    float64 `json:"score"`
}

// RecommendationRequest is the body of POST /recommendations. TopN is a
// pointer so that an absent field (defaulted from config) is distinguishable
// from an explicit zero, which is rejected. The upper bound is the configured
// recommendation.max_count, enforced by the service.
type RecommendationRequest struct {
	UserID string `json:"user_id" validate:"required"`
	TopN   *int   `json:"top_n,omitempty" validate:"omitempty,min=1"`
}

// RecommendationResponse is the wire contract of the service boundary.
type RecommendationResponse struct {
	Recommendations []Recommendation `json:"recommendations"`
}
