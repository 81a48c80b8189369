package models

// Course is one recommendable item. The embedding is produced offline by the
// sentence-embedding trainer and carried in the artifact files; CourseID is the
// stable key across all artifacts.
type Course struct {
	CourseID    string    `json:"course_id"`
	Name        string    `json:"name,omitempty"`
	Description string    `json:"description,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
	Embedding   []float64 `json:"embedding,omitempty"`
}

// StudentProfile holds a student's combined interest text. Students without a
// profile are a valid cold-start case, not an error.
type StudentProfile struct {
	UserID    string    `json:"user_id"`
	Interests string    `json:"interests,omitempty"`
	Embedding []float64 `json:"embedding,omitempty"`
}

// Interaction is one completed (or attempted) course for a student. Rating is
// on the configured closed scale, mapped from the letter grade at ingestion.
type Interaction struct {
	UserID   string  `json:"user_id"`
	CourseID string  `json:"course_id"`
	Rating   float64 `json:"rating"`
	Status   string  `json:"status,omitempty"`
}
