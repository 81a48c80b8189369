package services

import (
	"math"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/DhruvDewan08/course-recommendation-api/internal/artifacts"
	"github.com/DhruvDewan08/course-recommendation-api/internal/config"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)
	return logger
}

func testConfig() *config.Config {
	return &config.Config{
		Rating: config.RatingConfig{Min: 1.0, Max: 10.0},
		Recommendation: config.RecommendationConfig{
			ContentWeight:       0.5,
			CollaborativeWeight: 0.5,
			DefaultCount:        10,
			MaxCount:            100,
		},
	}
}

// newTestStore builds a store with student "stu" at (1,0), course C1 at
// cosine 0.9 from the student, C2 at cosine 0.1, and a predictor rating
// (stu, C1) at 8.0 and (stu, C2) at 4.0 on the [1,10] scale. This is the
// worked scenario the hybrid math is verified against.
func newTestStore(t *testing.T) *artifacts.Store {
	t.Helper()

	predictor, err := artifacts.NewFactorizedPredictor(
		6.0,
		nil,
		map[string]float64{"C1": 2.0, "C2": -2.0},
		nil, nil,
		1.0, 10.0,
	)
	require.NoError(t, err)

	courseEmb := mat.NewDense(2, 2, []float64{
		0.9, math.Sqrt(1 - 0.81),
		0.1, math.Sqrt(1 - 0.01),
	})
	studentEmb := mat.NewDense(1, 2, []float64{1, 0})

	store, err := artifacts.NewStore(
		[]string{"C1", "C2"},
		courseEmb,
		[]string{"stu"},
		studentEmb,
		predictor,
	)
	require.NoError(t, err)
	return store
}
