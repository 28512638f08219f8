// Package metrics holds the Prometheus collectors of the likes service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	cacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "likes_count_cache_hits_total",
		Help: "Likes counter reads served from the cache.",
	})
	cacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "likes_count_cache_misses_total",
		Help: "Likes counter reads that fell through to the post store.",
	})
	cacheErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "likes_count_cache_errors_total",
		Help: "Likes counter cache lookups that failed.",
	})
	cacheLookupSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "likes_count_cache_lookup_seconds",
		Help:    "Latency of likes counter cache lookups.",
		Buckets: prometheus.ExponentialBuckets(0.0005, 2, 12),
	})
	likeMutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "like_mutations_total",
		Help: "Like add/remove requests by outcome.",
	}, []string{"operation", "outcome"})
	notifications = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "like_notifications_total",
		Help: "Like notification dispatches by status.",
	}, []string{"status"})
	notificationSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "like_notification_duration_seconds",
		Help:    "Duration of like notification dispatches.",
		Buckets: prometheus.DefBuckets,
	})
	broadcastFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "likes_broadcast_failures_total",
		Help: "Live likes counter broadcasts that failed.",
	})
)

func IncCacheHit()   { cacheHits.Inc() }
func IncCacheMiss()  { cacheMisses.Inc() }
func IncCacheError() { cacheErrors.Inc() }

func ObserveCacheLookup(seconds float64) { cacheLookupSeconds.Observe(seconds) }

// ObserveLikeMutation counts one add or remove with its outcome label.
func ObserveLikeMutation(operation, outcome string) {
	likeMutations.WithLabelValues(operation, outcome).Inc()
}

// ObserveNotification records a dispatch status and how long it took.
func ObserveNotification(status string, seconds float64) {
	notifications.WithLabelValues(status).Inc()
	notificationSeconds.Observe(seconds)
}

func IncBroadcastFailure() { broadcastFailures.Inc() }
