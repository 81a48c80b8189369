package artifacts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func testPredictor(t *testing.T) *FactorizedPredictor {
	t.Helper()
	predictor, err := NewFactorizedPredictor(5.5, nil, nil, nil, nil, 1.0, 10.0)
	require.NoError(t, err)
	return predictor
}

func TestNewStore_Valid(t *testing.T) {
	store, err := NewStore(
		[]string{"CS101", "CS102"},
		mat.NewDense(2, 3, []float64{1, 0, 0, 0, 1, 0}),
		[]string{"alice"},
		mat.NewDense(1, 3, []float64{0.5, 0.5, 0}),
		testPredictor(t),
	)
	require.NoError(t, err)

	assert.Equal(t, []string{"CS101", "CS102"}, store.CourseIDs())
	assert.Equal(t, 3, store.Dimensions())

	embedding, ok := store.CourseEmbedding("CS101")
	require.True(t, ok)
	assert.Equal(t, []float64{1, 0, 0}, embedding)

	_, ok = store.CourseEmbedding("CS999")
	assert.False(t, ok)

	profile, ok := store.StudentEmbedding("alice")
	require.True(t, ok)
	assert.Equal(t, []float64{0.5, 0.5, 0}, profile)

	_, ok = store.StudentEmbedding("bob")
	assert.False(t, ok)
}

func TestNewStore_RowCountMismatch(t *testing.T) {
	_, err := NewStore(
		[]string{"CS101", "CS102", "CS103"},
		mat.NewDense(2, 3, nil),
		nil, nil,
		testPredictor(t),
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "course IDs")
}

func TestNewStore_DimensionMismatch(t *testing.T) {
	_, err := NewStore(
		[]string{"CS101"},
		mat.NewDense(1, 3, nil),
		[]string{"alice"},
		mat.NewDense(1, 4, nil),
		testPredictor(t),
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dimension")
}

func TestNewStore_DuplicateCourseID(t *testing.T) {
	_, err := NewStore(
		[]string{"CS101", "CS101"},
		mat.NewDense(2, 2, nil),
		nil, nil,
		testPredictor(t),
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate course ID")
}

func TestNewStore_MissingPredictor(t *testing.T) {
	_, err := NewStore(
		[]string{"CS101"},
		mat.NewDense(1, 2, nil),
		nil, nil,
		nil,
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "predictor")
}

func TestNewStore_NoStudents(t *testing.T) {
	// A store with no student embeddings is valid: every user is cold start.
	store, err := NewStore(
		[]string{"CS101"},
		mat.NewDense(1, 2, []float64{1, 0}),
		nil, nil,
		testPredictor(t),
	)
	require.NoError(t, err)

	_, ok := store.StudentEmbedding("anyone")
	assert.False(t, ok)
}
