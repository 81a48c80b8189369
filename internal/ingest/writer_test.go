package ingest

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DhruvDewan08/course-recommendation-api/pkg/models"
)

func readJSON(t *testing.T, path string, v interface{}) {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, v))
}

func TestWriteInteractions(t *testing.T) {
	dir := t.TempDir()

	interactions := []models.Interaction{
		{UserID: "alice", CourseID: "CS101", Rating: 10.0, Status: "complete"},
		{UserID: "alice", CourseID: "CS201", Rating: 1.0, Status: "failed"},
	}

	require.NoError(t, WriteInteractions(dir, interactions))

	var doc struct {
		Interactions []models.Interaction `json:"interactions"`
	}
	readJSON(t, filepath.Join(dir, "interactions.json"), &doc)

	require.Len(t, doc.Interactions, 2)
	assert.Equal(t, "CS101", doc.Interactions[0].CourseID)
	assert.Equal(t, "complete", doc.Interactions[0].Status)
}

func TestWriteCourseCorpus(t *testing.T) {
	dir := t.TempDir()

	courses := []models.Course{
		{
			CourseID:    "CS101",
			Name:        "Intro to Programming",
			Description: "Variables and Loops",
			Tags:        []string{"programming", "basics"},
		},
	}

	require.NoError(t, WriteCourseCorpus(dir, courses))

	var entries []CorpusEntry
	readJSON(t, filepath.Join(dir, "course_corpus.json"), &entries)

	require.Len(t, entries, 1)
	assert.Equal(t, "CS101", entries[0].ID)
	assert.Equal(t, "intro to programming . variables and loops . programming basics", entries[0].Text)
}

func TestWriteStudentCorpus_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")

	profiles := []models.StudentProfile{{UserID: "alice", Interests: "data engineer sql"}}
	require.NoError(t, WriteStudentCorpus(dir, profiles))

	var entries []CorpusEntry
	readJSON(t, filepath.Join(dir, "student_corpus.json"), &entries)
	require.Len(t, entries, 1)
	assert.Equal(t, "data engineer sql", entries[0].Text)
}
