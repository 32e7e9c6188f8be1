// Package observability provides Prometheus metrics for the application.
package observability

import (
	"sync"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SnapshotLoadDuration records how long reading the persisted snapshot takes.
	SnapshotLoadDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "inkwell_snapshot_load_seconds",
		Help:    "Snapshot load latency in seconds",
		Buckets: prometheus.DefBuckets,
	})

	// SnapshotSaveDuration records how long rewriting the persisted snapshot takes.
	SnapshotSaveDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "inkwell_snapshot_save_seconds",
		Help:    "Snapshot save latency in seconds",
		Buckets: prometheus.DefBuckets,
	})

	// SnapshotRecoveries counts corrupt snapshots replaced with a fresh one.
	SnapshotRecoveries = promauto.NewCounter(prometheus.CounterOpts{
		Name: "inkwell_snapshot_recoveries_total",
		Help: "Total number of corrupt snapshots reinitialized",
	})

	// SearchesTotal counts post-listing queries by whether a filter was applied.
	SearchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inkwell_post_searches_total",
		Help: "Total number of post search queries",
	}, []string{"filtered"})

	// RedisErrors counts Redis errors by command name.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inkwell_redis_error_rate_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})
)

var (
	promOnce sync.Once
	prom     *fiberprometheus.FiberPrometheus
)

// InitMetrics returns the Prometheus HTTP middleware for the given service
// name. The middleware registers collectors globally, so it is built once
// and shared across server instances.
func InitMetrics(service string) *fiberprometheus.FiberPrometheus {
	promOnce.Do(func() {
		prom = fiberprometheus.New(service)
	})
	return prom
}

// ObserveSince records the elapsed time since start on the given histogram.
func ObserveSince(h prometheus.Histogram, start time.Time) {
	h.Observe(time.Since(start).Seconds())
}
