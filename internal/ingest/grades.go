package ingest

import "strings"

// gradeRatings maps letter grades from the source store onto the 1–10 rating
// scale the collaborative model is trained on.
var gradeRatings = map[string]float64{
	"A+": 10.0, "A": 9.0, "A-": 8.5,
	"B+": 8.0, "B": 7.0, "B-": 6.5,
	"C+": 6.0, "C": 5.0, "C-": 4.5,
	"D+": 4.0, "D": 3.0,
	"P": 5.0, "PASS": 5.0,
	"S": 7.0, // satisfactory, for non-graded courses
	"F": 1.0, "FAIL": 1.0,
	"U": 1.0, // unsatisfactory
}

// DefaultUnknownGradeRating is the neutral rating for grades missing from
// the mapping table.
const DefaultUnknownGradeRating = 3.0

// RatingForGrade converts a letter grade to its numeric rating,
// case-insensitively, falling back to the neutral default for unknown
// grades.
func RatingForGrade(grade string) float64 {
	if rating, ok := gradeRatings[strings.ToUpper(strings.TrimSpace(grade))]; ok {
		return rating
	}
	return DefaultUnknownGradeRating
}
