package ingest

import (
	"context"
	"errors"
	"testing"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestExtractor(t *testing.T) (*Extractor, pgxmock.PgxPoolIface) {
	t.Helper()

	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)

	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)

	return NewExtractor(mockDB, logger), mockDB
}

func TestExtractor_Courses(t *testing.T) {
	extractor, mockDB := newTestExtractor(t)

	rows := pgxmock.NewRows([]string{"course_code", "course_name", "description", "suitable_tags"}).
		AddRow("CS101", "Intro to Programming", "Variables and loops", "programming, basics").
		AddRow("CS201", "Data Structures", "", "")

	mockDB.ExpectQuery("SELECT course_code, course_name").WillReturnRows(rows)

	courses, err := extractor.Courses(context.Background())

	require.NoError(t, err)
	require.Len(t, courses, 2)
	assert.Equal(t, "CS101", courses[0].CourseID)
	assert.Equal(t, "Intro to Programming", courses[0].Name)
	assert.Equal(t, []string{"programming", "basics"}, courses[0].Tags)
	assert.Empty(t, courses[1].Tags)

	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestExtractor_Courses_QueryError(t *testing.T) {
	extractor, mockDB := newTestExtractor(t)

	mockDB.ExpectQuery("SELECT course_code, course_name").
		WillReturnError(errors.New("connection refused"))

	_, err := extractor.Courses(context.Background())
	assert.ErrorContains(t, err, "course query failed")
}

func TestExtractor_Interactions(t *testing.T) {
	extractor, mockDB := newTestExtractor(t)

	rows := pgxmock.NewRows([]string{"user_id", "course_code", "grade", "status"}).
		AddRow("alice", "CS101", "A+", "completed").
		AddRow("alice", "CS201", "F", "failed").
		AddRow("bob", "CS101", "", "completed")

	mockDB.ExpectQuery("SELECT user_id, course_code").WillReturnRows(rows)

	interactions, err := extractor.Interactions(context.Background())

	require.NoError(t, err)
	require.Len(t, interactions, 3)

	assert.Equal(t, "alice", interactions[0].UserID)
	assert.Equal(t, 10.0, interactions[0].Rating)
	assert.Equal(t, "complete", interactions[0].Status)

	assert.Equal(t, 1.0, interactions[1].Rating)
	assert.Equal(t, "failed", interactions[1].Status)

	// Missing grade maps to the neutral default.
	assert.Equal(t, DefaultUnknownGradeRating, interactions[2].Rating)

	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestExtractor_Preferences(t *testing.T) {
	extractor, mockDB := newTestExtractor(t)

	columns := []string{"user_id", "career_goal", "technical_skills", "primary_interest",
		"secondary_interest", "improvement_areas", "other_keywords"}

	rows := pgxmock.NewRows(columns).
		AddRow("alice", "Data Engineer", "SQL, Python", "Databases", "", "", "").
		AddRow("bob", "", "", "", "", "", "")

	mockDB.ExpectQuery("SELECT user_id").WillReturnRows(rows)

	profiles, err := extractor.Preferences(context.Background())

	require.NoError(t, err)
	// bob has no interest text at all and is skipped.
	require.Len(t, profiles, 1)
	assert.Equal(t, "alice", profiles[0].UserID)
	assert.Equal(t, "data engineer sql, python databases", profiles[0].Interests)

	assert.NoError(t, mockDB.ExpectationsWereMet())
}
