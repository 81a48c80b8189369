package ingest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/DhruvDewan08/course-recommendation-api/pkg/models"
)

// CorpusEntry is one line of the text corpus the external embedding trainer
// consumes.
type CorpusEntry struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// WriteInteractions writes interactions.json in the artifact format the
// serving loader reads.
func WriteInteractions(dir string, interactions []models.Interaction) error {
	doc := struct {
		Interactions []models.Interaction `json:"interactions"`
	}{Interactions: interactions}

	return writeJSON(filepath.Join(dir, "interactions.json"), doc)
}

// WriteCourseCorpus writes the normalized course text corpus. The combined
// name/description/tags line mirrors what the original embedding pipeline
// encoded per course.
func WriteCourseCorpus(dir string, courses []models.Course) error {
	entries := make([]CorpusEntry, 0, len(courses))
	for _, course := range courses {
		text := NormalizeText(course.Name + " . " + course.Description + " . " + strings.Join(course.Tags, " "))
		entries = append(entries, CorpusEntry{ID: course.CourseID, Text: text})
	}
	return writeJSON(filepath.Join(dir, "course_corpus.json"), entries)
}

// WriteStudentCorpus writes the normalized interest text corpus.
func WriteStudentCorpus(dir string, profiles []models.StudentProfile) error {
	entries := make([]CorpusEntry, 0, len(profiles))
	for _, profile := range profiles {
		entries = append(entries, CorpusEntry{ID: profile.UserID, Text: profile.Interests})
	}
	return writeJSON(filepath.Join(dir, "student_corpus.json"), entries)
}

func writeJSON(path string, v interface{}) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", filepath.Base(path), err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filepath.Base(path), err)
	}

	return nil
}
