// Package observability provides Prometheus metrics and OpenTelemetry tracing.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PostsCreated counts successfully committed post creations.
	PostsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "postboard_posts_created_total",
		Help: "Total number of posts created",
	})

	// PostsUpdated counts successfully committed post updates.
	PostsUpdated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "postboard_posts_updated_total",
		Help: "Total number of posts updated",
	})

	// PostsDeleted counts successfully committed post deletions.
	PostsDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "postboard_posts_deleted_total",
		Help: "Total number of posts deleted",
	})

	// UsersCreated counts successfully committed user registrations.
	UsersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "postboard_users_created_total",
		Help: "Total number of users created",
	})

	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "postboard_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})

	// CacheRequests counts read-through cache lookups by result (hit, miss, error).
	CacheRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "postboard_cache_requests_total",
		Help: "Total number of cache lookups by result",
	}, []string{"result"})

	// EventsPublished counts post lifecycle events by backend and result.
	EventsPublished = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "postboard_events_published_total",
		Help: "Total number of post events published",
	}, []string{"backend", "result"})

	// RedisErrors counts Redis errors by command.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "postboard_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})
)

// TrackQuery returns a function that records query latency when called (e.g. defer).
func TrackQuery(operation, table string) func() {
	start := time.Now()
	return func() {
		DatabaseQueryLatency.WithLabelValues(operation, table).Observe(time.Since(start).Seconds())
	}
}
