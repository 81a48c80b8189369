// Package ingest pulls course, interaction, and preference records out of
// the source relational store and writes the tabular inputs the offline
// trainers and the serving artifacts are built from.
package ingest

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/sirupsen/logrus"

	"github.com/DhruvDewan08/course-recommendation-api/pkg/models"
)

// Querier is the subset of pgxpool.Pool the extractor needs; pgxmock
// satisfies it in tests.
type Querier interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
}

type Extractor struct {
	db     Querier
	logger *logrus.Logger
}

func NewExtractor(db Querier, logger *logrus.Logger) *Extractor {
	return &Extractor{db: db, logger: logger}
}

// Courses reads the course catalog. Name, description, and tags feed the
// embedding corpus; the course code is the stable ID across all artifacts.
func (e *Extractor) Courses(ctx context.Context) ([]models.Course, error) {
	query := `
		SELECT course_code, course_name, COALESCE(description, ''), COALESCE(suitable_tags, '')
		FROM courses
		ORDER BY course_code`

	rows, err := e.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("course query failed: %w", err)
	}
	defer rows.Close()

	var courses []models.Course
	for rows.Next() {
		var course models.Course
		var tags string
		if err := rows.Scan(&course.CourseID, &course.Name, &course.Description, &tags); err != nil {
			return nil, fmt.Errorf("failed to scan course row: %w", err)
		}
		if tags != "" {
			course.Tags = splitTags(tags)
		}
		courses = append(courses, course)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("course rows failed: %w", err)
	}

	e.logger.WithField("courses", len(courses)).Info("Courses extracted")
	return courses, nil
}

// Interactions reads completed and failed enrollments and maps letter
// grades onto the rating scale. Which statuses count as "taken" is decided
// downstream by the ledger policy, so both are extracted.
func (e *Extractor) Interactions(ctx context.Context) ([]models.Interaction, error) {
	query := `
		SELECT user_id, course_code, COALESCE(grade, ''), status
		FROM user_semester_courses
		WHERE status IN ('completed', 'failed')
		ORDER BY user_id, course_code`

	rows, err := e.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("interaction query failed: %w", err)
	}
	defer rows.Close()

	var interactions []models.Interaction
	for rows.Next() {
		var row models.Interaction
		var grade string
		if err := rows.Scan(&row.UserID, &row.CourseID, &grade, &row.Status); err != nil {
			return nil, fmt.Errorf("failed to scan interaction row: %w", err)
		}
		row.Rating = RatingForGrade(grade)
		row.Status = canonicalStatus(row.Status)
		interactions = append(interactions, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("interaction rows failed: %w", err)
	}

	e.logger.WithField("interactions", len(interactions)).Info("Interactions extracted")
	return interactions, nil
}

// Preferences reads the student interest survey and combines its free-text
// columns into one normalized corpus line per student.
func (e *Extractor) Preferences(ctx context.Context) ([]models.StudentProfile, error) {
	query := `
		SELECT user_id,
			COALESCE(career_goal, ''),
			COALESCE(technical_skills, ''),
			COALESCE(primary_interest, ''),
			COALESCE(secondary_interest, ''),
			COALESCE(improvement_areas, ''),
			COALESCE(other_keywords, '')
		FROM students_interests
		ORDER BY user_id`

	rows, err := e.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("preference query failed: %w", err)
	}
	defer rows.Close()

	var profiles []models.StudentProfile
	for rows.Next() {
		var profile models.StudentProfile
		var goal, skills, primary, secondary, improvement, keywords string
		if err := rows.Scan(&profile.UserID, &goal, &skills, &primary,
			&secondary, &improvement, &keywords); err != nil {
			return nil, fmt.Errorf("failed to scan preference row: %w", err)
		}
		profile.Interests = CombineFields(goal, skills, primary, secondary, improvement, keywords)
		if profile.Interests == "" {
			// No derivable interest text: the student stays a cold-start
			// case rather than getting an empty embedding.
			e.logger.WithField("user_id", profile.UserID).
				Warn("Student has no interest text, skipping profile")
			continue
		}
		profiles = append(profiles, profile)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("preference rows failed: %w", err)
	}

	e.logger.WithField("profiles", len(profiles)).Info("Student preferences extracted")
	return profiles, nil
}

func canonicalStatus(status string) string {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "completed", "complete":
		return "complete"
	case "failed", "fail":
		return "failed"
	default:
		return strings.ToLower(strings.TrimSpace(status))
	}
}

func splitTags(tags string) []string {
	parts := strings.Split(tags, ",")
	var cleaned []string
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}
	return cleaned
}
