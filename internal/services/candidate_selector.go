package services

import (
	"github.com/DhruvDewan08/course-recommendation-api/internal/artifacts"
	"github.com/DhruvDewan08/course-recommendation-api/internal/ledger"
)

// CandidateSelector computes the set of courses eligible for recommendation:
// the store's course universe minus the user's taken set. The store's course
// ID ordering is preserved so the downstream stable sort is reproducible.
type CandidateSelector struct {
	store  *artifacts.Store
	ledger *ledger.Ledger
}

func NewCandidateSelector(store *artifacts.Store, ledger *ledger.Ledger) *CandidateSelector {
	return &CandidateSelector{store: store, ledger: ledger}
}

func (s *CandidateSelector) Candidates(userID string) []string {
	taken := s.ledger.TakenCourses(userID)
	all := s.store.CourseIDs()

	if len(taken) == 0 {
		candidates := make([]string, len(all))
		copy(candidates, all)
		return candidates
	}

	// The taken set may reference retired courses that are no longer in the
	// store, so it can be larger than the universe.
	candidates := make([]string, 0, len(all))
	for _, courseID := range all {
		if _, ok := taken[courseID]; ok {
			continue
		}
		candidates = append(candidates, courseID)
	}
	return candidates
}
