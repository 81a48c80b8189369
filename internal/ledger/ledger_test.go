package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/DhruvDewan08/course-recommendation-api/pkg/models"
)

func TestBuild_GroupsByUser(t *testing.T) {
	rows := []models.Interaction{
		{UserID: "alice", CourseID: "CS101", Rating: 9, Status: "complete"},
		{UserID: "alice", CourseID: "CS102", Rating: 7, Status: "complete"},
		{UserID: "bob", CourseID: "CS101", Rating: 5, Status: "complete"},
	}

	l := Build(rows, Policy{})

	assert.Len(t, l.TakenCourses("alice"), 2)
	assert.Contains(t, l.TakenCourses("alice"), "CS101")
	assert.Contains(t, l.TakenCourses("alice"), "CS102")
	assert.Len(t, l.TakenCourses("bob"), 1)
	assert.Equal(t, 2, l.Users())
}

func TestBuild_DuplicateRowsAreIdempotent(t *testing.T) {
	rows := []models.Interaction{
		{UserID: "alice", CourseID: "CS101", Rating: 9, Status: "complete"},
		{UserID: "alice", CourseID: "CS101", Rating: 6, Status: "complete"},
	}

	l := Build(rows, Policy{})

	assert.Len(t, l.TakenCourses("alice"), 1)
}

func TestTakenCourses_UnseenUserIsEmpty(t *testing.T) {
	l := Build(nil, Policy{})

	assert.Empty(t, l.TakenCourses("nobody"))
}

func TestBuild_FailedPolicy(t *testing.T) {
	rows := []models.Interaction{
		{UserID: "alice", CourseID: "CS101", Rating: 9, Status: "complete"},
		{UserID: "alice", CourseID: "CS102", Rating: 1, Status: "failed"},
	}

	onlyComplete := Build(rows, Policy{IncludeFailed: false})
	assert.Len(t, onlyComplete.TakenCourses("alice"), 1)
	assert.NotContains(t, onlyComplete.TakenCourses("alice"), "CS102")

	withFailed := Build(rows, Policy{IncludeFailed: true})
	assert.Len(t, withFailed.TakenCourses("alice"), 2)
	assert.Contains(t, withFailed.TakenCourses("alice"), "CS102")
}

func TestBuild_IgnoresInProgressAndMalformedRows(t *testing.T) {
	rows := []models.Interaction{
		{UserID: "alice", CourseID: "CS101", Status: "enrolled"},
		{UserID: "", CourseID: "CS102", Status: "complete"},
		{UserID: "alice", CourseID: "", Status: "complete"},
		{UserID: "alice", CourseID: "CS103", Status: "Complete "},
	}

	l := Build(rows, Policy{})

	assert.Len(t, l.TakenCourses("alice"), 1)
	assert.Contains(t, l.TakenCourses("alice"), "CS103")
}

func TestBuild_EmptyStatusCountsAsTaken(t *testing.T) {
	rows := []models.Interaction{
		{UserID: "alice", CourseID: "CS101", Rating: 8},
	}

	l := Build(rows, Policy{})

	assert.Contains(t, l.TakenCourses("alice"), "CS101")
}
