package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "l2beat"

var (
	// ProjectBuildsTotal counts project builds by outcome ("ok", "discovery_error", "build_error").
	ProjectBuildsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "project_builds_total",
		Help:      "Number of project record builds by result.",
	}, []string{"result"})

	// ProjectBuildDuration observes the time to load and build one project.
	ProjectBuildDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "project_build_duration_seconds",
		Help:      "Time spent loading discovery and building one project record.",
		Buckets:   prometheus.DefBuckets,
	})

	RegisteredProjects = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "registered_projects",
		Help:      "Number of project records in the registry.",
	})

	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Number of API requests by route and status code.",
	}, []string{"route", "method", "status"})

	HTTPRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "API request latency by route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route"})

	APICacheHits = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "api_cache_requests_total",
		Help:      "API response cache lookups by result (hit or miss).",
	}, []string{"result"})
)

var registerOnce sync.Once

// MustRegisterMetrics registers all collectors with the default registry.
// Calling it more than once is a no-op.
func MustRegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			ProjectBuildsTotal,
			ProjectBuildDuration,
			RegisteredProjects,
			HTTPRequestsTotal,
			HTTPRequestDuration,
			APICacheHits,
		)
	})
}
