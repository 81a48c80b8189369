package artifacts

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Store is the immutable holder of every trained artifact the serving path
// needs: the course ID universe (in artifact order), course and student
// embedding matrices with their row indexes, and the rating predictor. It is
// built once at startup and shared read-only across requests, so no locking
// is needed on the request path.
type Store struct {
	courseIDs   []string
	courseIndex map[string]int
	userIndex   map[string]int
	courseEmb   *mat.Dense
	studentEmb  *mat.Dense
	predictor   RatingPredictor
	dimensions  int
}

// NewStore validates the artifacts against each other and assembles the
// store. Any inconsistency (row count vs ID list, dimension mismatch,
// duplicate IDs, missing predictor) is a construction error; callers treat it
// as fatal.
func NewStore(
	courseIDs []string,
	courseEmb *mat.Dense,
	userIDs []string,
	studentEmb *mat.Dense,
	predictor RatingPredictor,
) (*Store, error) {
	if len(courseIDs) == 0 {
		return nil, fmt.Errorf("course ID list is empty")
	}
	if courseEmb == nil {
		return nil, fmt.Errorf("course embedding matrix is missing")
	}
	if predictor == nil {
		return nil, fmt.Errorf("rating predictor is missing")
	}

	courseRows, dimensions := courseEmb.Dims()
	if courseRows != len(courseIDs) {
		return nil, fmt.Errorf("course embeddings have %d rows but %d course IDs",
			courseRows, len(courseIDs))
	}

	courseIndex := make(map[string]int, len(courseIDs))
	for i, id := range courseIDs {
		if id == "" {
			return nil, fmt.Errorf("course ID at row %d is empty", i)
		}
		if _, dup := courseIndex[id]; dup {
			return nil, fmt.Errorf("duplicate course ID %q", id)
		}
		courseIndex[id] = i
	}

	userIndex := make(map[string]int, len(userIDs))
	if len(userIDs) > 0 {
		if studentEmb == nil {
			return nil, fmt.Errorf("student embedding matrix is missing but %d user IDs are present", len(userIDs))
		}
		userRows, userDims := studentEmb.Dims()
		if userRows != len(userIDs) {
			return nil, fmt.Errorf("student embeddings have %d rows but %d user IDs",
				userRows, len(userIDs))
		}
		if userDims != dimensions {
			return nil, fmt.Errorf("student embedding dimension %d does not match course dimension %d",
				userDims, dimensions)
		}
		for i, id := range userIDs {
			if id == "" {
				return nil, fmt.Errorf("user ID at row %d is empty", i)
			}
			if _, dup := userIndex[id]; dup {
				return nil, fmt.Errorf("duplicate user ID %q", id)
			}
			userIndex[id] = i
		}
	}

	return &Store{
		courseIDs:   courseIDs,
		courseIndex: courseIndex,
		userIndex:   userIndex,
		courseEmb:   courseEmb,
		studentEmb:  studentEmb,
		predictor:   predictor,
		dimensions:  dimensions,
	}, nil
}

// CourseIDs returns the course ID universe in artifact order. The slice is
// shared; callers must not modify it.
func (s *Store) CourseIDs() []string {
	return s.courseIDs
}

// CourseEmbedding returns the embedding vector for a course, or false if the
// course is not in the embedding index.
func (s *Store) CourseEmbedding(courseID string) ([]float64, bool) {
	i, ok := s.courseIndex[courseID]
	if !ok {
		return nil, false
	}
	return mat.Row(nil, i, s.courseEmb), true
}

// StudentEmbedding returns the interest profile vector for a user, or false
// for cold-start users with no stored profile.
func (s *Store) StudentEmbedding(userID string) ([]float64, bool) {
	i, ok := s.userIndex[userID]
	if !ok {
		return nil, false
	}
	return mat.Row(nil, i, s.studentEmb), true
}

// PredictRating returns the predicted rating for a user/course pair on the
// configured rating scale. The predictor never fails; unseen pairs get its
// internal baseline estimate.
func (s *Store) PredictRating(userID, courseID string) float64 {
	return s.predictor.Predict(userID, courseID)
}

// Dimensions returns the shared embedding dimension D.
func (s *Store) Dimensions() int {
	return s.dimensions
}
