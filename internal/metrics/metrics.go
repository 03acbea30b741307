package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	mirrorWritesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "health_journal",
			Name:      "mirror_writes_total",
			Help:      "Durable mirror writes by collection key and outcome.",
		},
		[]string{"key", "result"},
	)

	mirrorLoadFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "health_journal",
			Name:      "mirror_load_failures_total",
			Help:      "Collections that started empty because the mirror was unreadable.",
		},
		[]string{"key"},
	)

	generationRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "health_journal",
			Name:      "generation_requests_total",
			Help:      "Completion calls by operation and outcome.",
		},
		[]string{"operation", "result"},
	)

	generationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "health_journal",
			Name:      "generation_duration_seconds",
			Help:      "Completion round-trip latency.",
			Buckets:   []float64{0.25, 0.5, 1, 2, 5, 10, 30, 60},
		},
		[]string{"operation"},
	)

	dependencyUp = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "health_journal",
			Name:      "dependency_up",
			Help:      "1 while the last health probe of a dependency succeeded.",
		},
		[]string{"name"},
	)

	insightFallbacksTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "health_journal",
			Name:      "insight_fallbacks_total",
			Help:      "Insight generations replaced by the fixed fallback insight.",
		},
	)
)

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

// MirrorWrite records one durable write for key.
func MirrorWrite(key string, err error) {
	mirrorWritesTotal.WithLabelValues(key, result(err)).Inc()
}

// MirrorLoadFailure records a collection that could not be restored at startup.
func MirrorLoadFailure(key string) {
	mirrorLoadFailuresTotal.WithLabelValues(key).Inc()
}

// Generation records one completion call for operation.
func Generation(operation string, started time.Time, err error) {
	generationRequestsTotal.WithLabelValues(operation, result(err)).Inc()
	generationDuration.WithLabelValues(operation).Observe(time.Since(started).Seconds())
}

// InsightFallback records a fallback insight being stored.
func InsightFallback() {
	insightFallbacksTotal.Inc()
}

// DependencyUp records the outcome of the latest probe of name.
func DependencyUp(name string, up bool) {
	v := 0.0
	if up {
		v = 1
	}
	dependencyUp.WithLabelValues(name).Set(v)
}
