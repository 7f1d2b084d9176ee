package observability

import (
	"context"
	"net/http"

	"github.com/aretw0/oncoscreen/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "oncoscreen"

// Metrics holds the Prometheus collectors fed by engine events.
type Metrics struct {
	TestsStarted    *prometheus.CounterVec
	Answers         *prometheus.CounterVec
	Recommendations *prometheus.CounterVec
	Backs           *prometheus.CounterVec
	Resets          *prometheus.CounterVec
	Exits           *prometheus.CounterVec
	PathLength      *prometheus.HistogramVec

	registry *prometheus.Registry
}

// NewMetrics creates the collectors on a dedicated registry, together with
// the Go runtime and process collectors.
func NewMetrics() *Metrics {
	counter := func(name, help string, labels ...string) *prometheus.CounterVec {
		return prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      name,
			Help:      help,
		}, labels)
	}

	m := &Metrics{
		TestsStarted:    counter("tests_started_total", "Number of screening tests started.", "catalog_id"),
		Answers:         counter("answers_total", "Number of recorded answers.", "catalog_id", "question_id"),
		Recommendations: counter("recommendations_total", "Number of terminal recommendations reached.", "catalog_id"),
		Backs:           counter("back_total", "Number of back navigations.", "catalog_id"),
		Resets:          counter("resets_total", "Number of test restarts.", "catalog_id"),
		Exits:           counter("exits_total", "Number of returns to the selection screen.", "catalog_id"),
		PathLength: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "path_length",
			Help:      "Number of answers given when a recommendation is reached.",
			Buckets:   prometheus.LinearBuckets(1, 1, 10),
		}, []string{"catalog_id"}),
		registry: prometheus.NewRegistry(),
	}

	m.registry.MustRegister(
		m.TestsStarted, m.Answers, m.Recommendations,
		m.Backs, m.Resets, m.Exits, m.PathLength,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Registry returns the registry holding the collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the metrics in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Hooks returns lifecycle hooks that record the metrics.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnTestSelected: func(_ context.Context, e *domain.Event) {
			m.TestsStarted.WithLabelValues(e.CatalogID).Inc()
		},
		OnAnswer: func(_ context.Context, e *domain.Event) {
			m.Answers.WithLabelValues(e.CatalogID, e.QuestionID).Inc()
		},
		OnRecommendation: func(_ context.Context, e *domain.Event) {
			m.Recommendations.WithLabelValues(e.CatalogID).Inc()
			m.PathLength.WithLabelValues(e.CatalogID).Observe(float64(e.PathLength))
		},
		OnBack: func(_ context.Context, e *domain.Event) {
			m.Backs.WithLabelValues(e.CatalogID).Inc()
		},
		OnReset: func(_ context.Context, e *domain.Event) {
			m.Resets.WithLabelValues(e.CatalogID).Inc()
		},
		OnExit: func(_ context.Context, e *domain.Event) {
			m.Exits.WithLabelValues(e.CatalogID).Inc()
		},
	}
}
