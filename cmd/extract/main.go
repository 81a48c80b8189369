// Command extract pulls courses, student interests, and graded enrollments
// out of the source store and writes the tabular files the offline trainers
// and the serving artifacts are built from.
package main

import (
	"context"
	"flag"
	"log"

	"github.com/sirupsen/logrus"

	"github.com/DhruvDewan08/course-recommendation-api/internal/config"
	"github.com/DhruvDewan08/course-recommendation-api/internal/database"
	"github.com/DhruvDewan08/course-recommendation-api/internal/ingest"
)

func main() {
	outDir := flag.String("out", "./data", "output directory for extracted files")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	ctx := context.Background()

	pool, err := database.NewPostgresPool(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("Failed to connect to source store: %v", err)
	}
	defer pool.Close()

	extractor := ingest.NewExtractor(pool, logger)

	courses, err := extractor.Courses(ctx)
	if err != nil {
		log.Fatalf("Course extraction failed: %v", err)
	}
	if err := ingest.WriteCourseCorpus(*outDir, courses); err != nil {
		log.Fatalf("Failed to write course corpus: %v", err)
	}

	interactions, err := extractor.Interactions(ctx)
	if err != nil {
		log.Fatalf("Interaction extraction failed: %v", err)
	}
	if err := ingest.WriteInteractions(*outDir, interactions); err != nil {
		log.Fatalf("Failed to write interactions: %v", err)
	}

	profiles, err := extractor.Preferences(ctx)
	if err != nil {
		log.Fatalf("Preference extraction failed: %v", err)
	}
	if err := ingest.WriteStudentCorpus(*outDir, profiles); err != nil {
		log.Fatalf("Failed to write student corpus: %v", err)
	}

	logger.WithFields(logrus.Fields{
		"courses":      len(courses),
		"interactions": len(interactions),
		"profiles":     len(profiles),
		"out":          *outDir,
	}).Info("Extraction complete")
}
