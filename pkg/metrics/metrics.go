package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "docqa", Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "docqa", Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)
	Uploads = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "docqa", Name: "uploads_total", Help: "Uploads by file type and result."},
		[]string{"file_type", "result"},
	)
	Asks = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "docqa", Name: "asks_total", Help: "Questions by result (ok, not_found, provider_error)."},
		[]string{"result"},
	)
	ProviderLatency = prometheus.NewHistogram(
		prometheus.HistogramOpts{Namespace: "docqa", Name: "provider_latency_seconds", Help: "Completion provider round trip time.", Buckets: prometheus.ExponentialBuckets(0.1, 2, 10)},
	)
	Documents = prometheus.NewGauge(
		prometheus.GaugeOpts{Namespace: "docqa", Name: "documents", Help: "Documents currently held in memory."},
	)
)

var registerOnce sync.Once

// RegisterCollectors registers every collector once; later calls are no-ops.
func RegisterCollectors(reg prometheus.Registerer) {
	registerOnce.Do(func() {
		reg.MustRegister(RateLimitAllowed, RateLimitRejected, Uploads, Asks, ProviderLatency, Documents)
	})
}
