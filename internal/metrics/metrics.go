// Package metrics holds the Prometheus collectors exported by precis serve.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/abhisek/precis/internal/llm"
)

const namespace = "precis"

// Metrics owns a registry and the collectors registered on it. Each instance
// has its own registry so tests never collide on the default one.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	analyses            *prometheus.CounterVec
	degradedAnalyses    prometheus.Counter
	llmCalls            *prometheus.CounterVec
	llmLatency          *prometheus.HistogramVec
	surveySubmissions   *prometheus.CounterVec
}

// New creates the collectors on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,
		httpRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by route, method and status.",
		}, []string{"route", "method", "status"}),
		httpRequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
		analyses: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "vocabulary_analyses_total",
			Help:      "Vocabulary analyses by grade.",
		}, []string{"grade"}),
		degradedAnalyses: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "vocabulary_analyses_degraded_total",
			Help:      "Analyses run against an empty target list.",
		}),
		llmCalls: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "llm",
			Name:      "calls_total",
			Help:      "LLM calls by purpose and outcome.",
		}, []string{"purpose", "outcome"}),
		llmLatency: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "llm",
			Name:      "call_duration_seconds",
			Help:      "LLM call latency by purpose, retries included.",
			Buckets:   []float64{0.25, 0.5, 1, 2, 4, 8, 16, 32, 64},
		}, []string{"purpose"}),
		surveySubmissions: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "survey_submissions_total",
			Help:      "Survey submissions by destination and result.",
		}, []string{"destination", "result"}),
	}
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveHTTP records one served request.
func (m *Metrics) ObserveHTTP(route, method string, status int, d time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	m.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(route).Observe(d.Seconds())
}

// ObserveAnalysis counts a vocabulary analysis.
func (m *Metrics) ObserveAnalysis(grade string, degraded bool) {
	if grade == "" {
		grade = "unknown"
	}
	m.analyses.WithLabelValues(grade).Inc()
	if degraded {
		m.degradedAnalyses.Inc()
	}
}

// ObserveLLM matches llm.Observer.
func (m *Metrics) ObserveLLM(purpose string, latency time.Duration, err error) {
	m.llmCalls.WithLabelValues(purpose, string(llm.Classify(err))).Inc()
	m.llmLatency.WithLabelValues(purpose).Observe(latency.Seconds())
}

// ObserveSurvey counts a survey submission to destination ("local", "sheets").
func (m *Metrics) ObserveSurvey(destination string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.surveySubmissions.WithLabelValues(destination, result).Inc()
}
