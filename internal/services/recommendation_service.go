package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/DhruvDewan08/course-recommendation-api/internal/artifacts"
	"github.com/DhruvDewan08/course-recommendation-api/internal/config"
	"github.com/DhruvDewan08/course-recommendation-api/internal/ledger"
	"github.com/DhruvDewan08/course-recommendation-api/internal/messaging"
	"github.com/DhruvDewan08/course-recommendation-api/pkg/models"
)

// State is the lifecycle of the recommendation service. Artifacts load
// exactly once at startup; requests are only served in StateReady.
type State int32

const (
	StateUninitialized State = iota
	StateLoading
	StateReady
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return "uninitialized"
	}
}

var (
	// ErrServiceUnavailable is returned for any request outside StateReady.
	ErrServiceUnavailable = errors.New("recommendation artifacts are not loaded")
	// ErrInvalidRequest is returned for malformed user IDs or counts, before
	// any scoring work begins.
	ErrInvalidRequest = errors.New("invalid recommendation request")
)

// EventPublisher emits recommendation-served events for offline evaluation.
type EventPublisher interface {
	PublishServed(ctx context.Context, event messaging.ServedEvent) error
}

// Recommender is the serving contract the HTTP layer depends on.
type Recommender interface {
	Recommend(ctx context.Context, userID string, topN int) ([]models.Recommendation, error)
	State() State
}

// RecommendationService runs the full pipeline: candidate selection, content
// and collaborative scoring, hybrid fusion, ranking, and truncation. All
// pipeline state is immutable after Load, so concurrent requests need no
// locking.
type RecommendationService struct {
	cfg     *config.Config
	logger  *logrus.Logger
	metrics *Metrics
	cache   *redis.Client // nil when caching is disabled
	events  EventPublisher

	state atomic.Int32

	// Populated by Load before the state flips to Ready, read-only after.
	store         *artifacts.Store
	selector      *CandidateSelector
	content       *ContentScorer
	collaborative *CollaborativeScorer
	ranker        *HybridRanker
}

func NewRecommendationService(
	cfg *config.Config,
	logger *logrus.Logger,
	metrics *Metrics,
	cache *redis.Client,
	events EventPublisher,
) *RecommendationService {
	return &RecommendationService{
		cfg:     cfg,
		logger:  logger,
		metrics: metrics,
		cache:   cache,
		events:  events,
	}
}

// Load reads the trained artifacts and builds the pipeline. It is the
// one-time initialization barrier: on success the service is Ready, on any
// error it is Failed and every request is refused. Load is not retried.
func (s *RecommendationService) Load(ctx context.Context) error {
	if !s.state.CompareAndSwap(int32(StateUninitialized), int32(StateLoading)) {
		return fmt.Errorf("load already attempted (state %s)", s.State())
	}

	loaded, err := artifacts.Load(s.cfg.Artifacts.Dir, s.cfg.Rating, s.logger)
	if err != nil {
		s.state.Store(int32(StateFailed))
		s.metrics.ArtifactsLoaded.Set(0)
		s.logger.WithError(err).Error("Artifact loading failed, service will refuse requests")
		return fmt.Errorf("artifact loading failed: %w", err)
	}

	taken := ledger.Build(loaded.Interactions, ledger.Policy{
		IncludeFailed: s.cfg.Interactions.IncludeFailed,
	})

	s.store = loaded.Store
	s.selector = NewCandidateSelector(loaded.Store, taken)
	s.content = NewContentScorer(loaded.Store, s.logger, s.metrics)
	s.collaborative = NewCollaborativeScorer(loaded.Store)
	s.ranker = NewHybridRanker(s.cfg.Recommendation, s.cfg.Rating)

	s.state.Store(int32(StateReady))
	s.metrics.ArtifactsLoaded.Set(1)
	s.logger.WithFields(logrus.Fields{
		"courses": len(loaded.Store.CourseIDs()),
		"users":   taken.Users(),
	}).Info("Recommendation service ready")

	return nil
}

func (s *RecommendationService) State() State {
	return State(s.state.Load())
}

// Recommend validates the request, runs the hybrid pipeline over the user's
// candidate set, and returns the top topN courses with fused scores. Each
// call is independent and stateless with respect to prior requests.
func (s *RecommendationService) Recommend(ctx context.Context, userID string, topN int) ([]models.Recommendation, error) {
	start := time.Now()

	if s.State() != StateReady {
		s.metrics.RequestsTotal.WithLabelValues("unavailable").Inc()
		return nil, ErrServiceUnavailable
	}

	if strings.TrimSpace(userID) == "" {
		s.metrics.RequestsTotal.WithLabelValues("invalid").Inc()
		return nil, fmt.Errorf("%w: user_id must be a non-empty string", ErrInvalidRequest)
	}
	if topN <= 0 {
		s.metrics.RequestsTotal.WithLabelValues("invalid").Inc()
		return nil, fmt.Errorf("%w: top_n must be positive, got %d", ErrInvalidRequest, topN)
	}
	if topN > s.cfg.Recommendation.MaxCount {
		s.logger.WithFields(logrus.Fields{
			"user_id": userID,
			"top_n":   topN,
		}).Debug("Clamping top_n to configured maximum")
		topN = s.cfg.Recommendation.MaxCount
	}

	if cached, ok := s.cachedRecommendations(ctx, userID, topN); ok {
		s.metrics.CacheHitsTotal.Inc()
		s.metrics.RequestsTotal.WithLabelValues("ok").Inc()
		return cached, nil
	}

	candidates := s.selector.Candidates(userID)
	contentScores := s.content.Score(userID, candidates)
	collaborativeScores := s.collaborative.Score(userID, candidates)
	recommendations := s.ranker.Rank(candidates, contentScores, collaborativeScores, topN)

	s.cacheRecommendations(ctx, userID, topN, recommendations)
	s.publishServed(userID, topN, recommendations)

	s.metrics.RequestDuration.Observe(time.Since(start).Seconds())
	s.metrics.RequestsTotal.WithLabelValues("ok").Inc()

	return recommendations, nil
}

func cacheKey(userID string, topN int) string {
	return fmt.Sprintf("rec:%s:%d", userID, topN)
}

func (s *RecommendationService) cachedRecommendations(ctx context.Context, userID string, topN int) ([]models.Recommendation, bool) {
	if s.cache == nil {
		return nil, false
	}

	data, err := s.cache.Get(ctx, cacheKey(userID, topN)).Bytes()
	if err != nil {
		return nil, false
	}

	var recommendations []models.Recommendation
	if err := json.Unmarshal(data, &recommendations); err != nil {
		return nil, false
	}

	return recommendations, true
}

func (s *RecommendationService) cacheRecommendations(ctx context.Context, userID string, topN int, recommendations []models.Recommendation) {
	if s.cache == nil {
		return
	}

	data, err := json.Marshal(recommendations)
	if err != nil {
		return
	}

	if err := s.cache.Set(ctx, cacheKey(userID, topN), data, s.cfg.Cache.TTL).Err(); err != nil {
		s.logger.WithError(err).Warn("Failed to cache recommendations")
	}
}

// publishServed emits the served event asynchronously; event delivery never
// blocks or fails a request.
func (s *RecommendationService) publishServed(userID string, topN int, recommendations []models.Recommendation) {
	if s.events == nil {
		return
	}

	courseIDs := make([]string, len(recommendations))
	for i, rec := range recommendations {
		courseIDs[i] = rec.CourseID
	}

	event := messaging.NewServedEvent(userID, topN, courseIDs)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.events.PublishServed(ctx, event); err != nil {
			s.logger.WithError(err).Warn("Failed to publish served event")
		}
	}()
}
