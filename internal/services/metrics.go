package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

// Metrics holds the Prometheus instruments for the serving path. Cold-start
// and missing-embedding conditions are silent to the caller, so counters are
// the only place they surface.
type Metrics struct {
	RequestsTotal         *prometheus.CounterVec
	RequestDuration       prometheus.Histogram
	ColdStartTotal        prometheus.Counter
	MissingEmbeddingTotal prometheus.Counter
	CacheHitsTotal        prometheus.Counter
	ArtifactsLoaded       prometheus.Gauge
}

func NewMetrics(logger *logrus.Logger) *Metrics {
	m := &Metrics{
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "recommendation_requests_total",
			Help: "Recommendation requests by outcome",
		}, []string{"outcome"}),
		RequestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "recommendation_request_duration_seconds",
			Help:    "End-to-end latency of recommendation requests",
			Buckets: prometheus.DefBuckets,
		}),
		ColdStartTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "recommendation_cold_start_total",
			Help: "Requests for users without a stored interest profile",
		}),
		MissingEmbeddingTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "recommendation_missing_course_embedding_total",
			Help: "Candidate courses absent from the embedding index",
		}),
		CacheHitsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "recommendation_cache_hits_total",
			Help: "Recommendation responses served from cache",
		}),
		ArtifactsLoaded: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "recommendation_artifacts_loaded",
			Help: "Whether trained artifacts are loaded (1 = ready)",
		}),
	}

	register(logger, m.RequestsTotal, m.RequestDuration, m.ColdStartTotal,
		m.MissingEmbeddingTotal, m.CacheHitsTotal, m.ArtifactsLoaded)

	return m
}

func register(logger *logrus.Logger, collectors ...prometheus.Collector) {
	for _, c := range collectors {
		if err := prometheus.Register(c); err != nil {
			if _, ok := err.(prometheus.AlreadyRegisteredError); !ok {
				logger.WithError(err).Warn("Failed to register metric")
			}
		}
	}
}
