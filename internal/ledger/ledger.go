// Package ledger tracks which courses each student has already taken, so the
// candidate selector can exclude them from recommendation.
package ledger

import (
	"strings"

	"github.com/DhruvDewan08/course-recommendation-api/pkg/models"
)

// Statuses recorded by the source system. Anything else is treated as an
// in-progress enrollment and never counts as taken.
const (
	StatusComplete = "complete"
	StatusFailed   = "failed"
)

// Policy controls which interaction rows mark a course as taken.
type Policy struct {
	// IncludeFailed counts failed attempts as taken, excluding them from
	// future recommendations. Source data variants disagreed here, so it is
	// a policy knob rather than fixed behavior.
	IncludeFailed bool
}

// Ledger is an immutable per-user set of taken course IDs, built once from
// historical interaction rows. It is never updated by live requests.
type Ledger struct {
	taken map[string]map[string]struct{}
}

// Build groups interaction rows by user. Duplicate rows for the same
// user/course pair are idempotent: the course is taken either way. Rows with
// an empty status are counted as taken, matching historical exports that
// only contained completed courses.
func Build(rows []models.Interaction, policy Policy) *Ledger {
	taken := make(map[string]map[string]struct{})

	for _, row := range rows {
		if row.UserID == "" || row.CourseID == "" {
			continue
		}
		if !policy.counts(row.Status) {
			continue
		}

		set, ok := taken[row.UserID]
		if !ok {
			set = make(map[string]struct{})
			taken[row.UserID] = set
		}
		set[row.CourseID] = struct{}{}
	}

	return &Ledger{taken: taken}
}

func (p Policy) counts(status string) bool {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "", StatusComplete:
		return true
	case StatusFailed:
		return p.IncludeFailed
	default:
		return false
	}
}

// TakenCourses returns the set of course IDs the user has taken. Unseen
// users get an empty set. The returned map is shared; callers must not
// modify it.
func (l *Ledger) TakenCourses(userID string) map[string]struct{} {
	return l.taken[userID]
}

// Users returns the number of distinct users with at least one taken course.
func (l *Ledger) Users() int {
	return len(l.taken)
}
