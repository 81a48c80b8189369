package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRatingForGrade(t *testing.T) {
	tests := []struct {
		grade    string
		expected float64
	}{
		{"A+", 10.0},
		{"A", 9.0},
		{"A-", 8.5},
		{"B+", 8.0},
		{"B", 7.0},
		{"C", 5.0},
		{"D", 3.0},
		{"F", 1.0},
		{"U", 1.0},
		{"PASS", 5.0},
		{"FAIL", 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.grade, func(t *testing.T) {
			assert.Equal(t, tt.expected, RatingForGrade(tt.grade))
		})
	}
}

func TestRatingForGrade_CaseAndWhitespaceInsensitive(t *testing.T) {
	assert.Equal(t, 10.0, RatingForGrade("a+"))
	assert.Equal(t, 9.0, RatingForGrade("  a  "))
	assert.Equal(t, 5.0, RatingForGrade("pass"))
}

func TestRatingForGrade_UnknownFallsBackToNeutral(t *testing.T) {
	assert.Equal(t, DefaultUnknownGradeRating, RatingForGrade(""))
	assert.Equal(t, DefaultUnknownGradeRating, RatingForGrade("W"))
	assert.Equal(t, DefaultUnknownGradeRating, RatingForGrade("INCOMPLETE"))
}
