package artifacts

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/xeipuuv/gojsonschema"
	"gonum.org/v1/gonum/mat"

	"github.com/DhruvDewan08/course-recommendation-api/internal/config"
	"github.com/DhruvDewan08/course-recommendation-api/pkg/models"
)

const (
	manifestFile          = "manifest.json"
	courseEmbeddingsFile  = "course_embeddings.json"
	studentEmbeddingsFile = "student_embeddings.json"
	cfModelFile           = "cf_model.json"
	interactionsFile      = "interactions.json"
)

// LoadedArtifacts is the result of a successful artifact load: the assembled
// store plus the raw interaction rows the ledger is built from.
type LoadedArtifacts struct {
	Store        *Store
	Interactions []models.Interaction
}

type manifest struct {
	Version     string `json:"version"`
	Dimensions  int    `json:"dimensions"`
	GeneratedAt string `json:"generated_at,omitempty"`
}

type embeddingsDoc struct {
	IDs     []string    `json:"ids"`
	Vectors [][]float64 `json:"vectors"`
}

type cfModelDoc struct {
	GlobalMean    float64              `json:"global_mean"`
	UserBias      map[string]float64   `json:"user_bias"`
	CourseBias    map[string]float64   `json:"course_bias"`
	UserFactors   map[string][]float64 `json:"user_factors"`
	CourseFactors map[string][]float64 `json:"course_factors"`
}

type interactionsDoc struct {
	Interactions []models.Interaction `json:"interactions"`
}

// Load reads, schema-validates, and cross-checks every artifact file in dir.
// Any missing file, schema violation, or inconsistency between files is a
// load error; callers treat it as fatal and the service stays unavailable.
func Load(dir string, rating config.RatingConfig, logger *logrus.Logger) (*LoadedArtifacts, error) {
	var man manifest
	if err := loadValidated(filepath.Join(dir, manifestFile), manifestSchema, &man); err != nil {
		return nil, fmt.Errorf("manifest: %w", err)
	}

	var courseDoc embeddingsDoc
	if err := loadValidated(filepath.Join(dir, courseEmbeddingsFile), embeddingsSchema, &courseDoc); err != nil {
		return nil, fmt.Errorf("course embeddings: %w", err)
	}
	courseEmb, err := toMatrix(courseDoc, man.Dimensions)
	if err != nil {
		return nil, fmt.Errorf("course embeddings: %w", err)
	}

	var studentDoc embeddingsDoc
	if err := loadValidated(filepath.Join(dir, studentEmbeddingsFile), embeddingsSchema, &studentDoc); err != nil {
		return nil, fmt.Errorf("student embeddings: %w", err)
	}
	var studentEmb *mat.Dense
	if len(studentDoc.IDs) > 0 {
		if studentEmb, err = toMatrix(studentDoc, man.Dimensions); err != nil {
			return nil, fmt.Errorf("student embeddings: %w", err)
		}
	}

	var cfDoc cfModelDoc
	if err := loadValidated(filepath.Join(dir, cfModelFile), cfModelSchema, &cfDoc); err != nil {
		return nil, fmt.Errorf("collaborative filtering model: %w", err)
	}
	globalMean := cfDoc.GlobalMean
	if globalMean == 0 {
		// An untrained model file carries no mean; fall back to the neutral
		// midpoint of the rating scale.
		globalMean = rating.Midpoint()
		logger.WithField("global_mean", globalMean).
			Warn("CF model has no global mean, using rating scale midpoint")
	}
	predictor, err := NewFactorizedPredictor(
		globalMean, cfDoc.UserBias, cfDoc.CourseBias,
		cfDoc.UserFactors, cfDoc.CourseFactors,
		rating.Min, rating.Max,
	)
	if err != nil {
		return nil, fmt.Errorf("collaborative filtering model: %w", err)
	}

	var interDoc interactionsDoc
	if err := loadValidated(filepath.Join(dir, interactionsFile), interactionsSchema, &interDoc); err != nil {
		return nil, fmt.Errorf("interactions: %w", err)
	}

	store, err := NewStore(courseDoc.IDs, courseEmb, studentDoc.IDs, studentEmb, predictor)
	if err != nil {
		return nil, fmt.Errorf("artifact store: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"version":      man.Version,
		"dimensions":   man.Dimensions,
		"courses":      len(courseDoc.IDs),
		"students":     len(studentDoc.IDs),
		"interactions": len(interDoc.Interactions),
	}).Info("Artifacts loaded")

	return &LoadedArtifacts{
		Store:        store,
		Interactions: interDoc.Interactions,
	}, nil
}

func loadValidated(path, schema string, out interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return fmt.Errorf("validate %s: %w", filepath.Base(path), err)
	}
	if !result.Valid() {
		var reasons []string
		for _, desc := range result.Errors() {
			reasons = append(reasons, desc.String())
		}
		return fmt.Errorf("%s failed schema validation: %s",
			filepath.Base(path), strings.Join(reasons, "; "))
	}

	return json.Unmarshal(data, out)
}

func toMatrix(doc embeddingsDoc, dimensions int) (*mat.Dense, error) {
	if len(doc.IDs) != len(doc.Vectors) {
		return nil, fmt.Errorf("%d IDs but %d vectors", len(doc.IDs), len(doc.Vectors))
	}

	flat := make([]float64, 0, len(doc.Vectors)*dimensions)
	for i, vec := range doc.Vectors {
		if len(vec) != dimensions {
			return nil, fmt.Errorf("vector for %q has dimension %d, expected %d",
				doc.IDs[i], len(vec), dimensions)
		}
		flat = append(flat, vec...)
	}

	return mat.NewDense(len(doc.Vectors), dimensions, flat), nil
}
