// Package telemetry exposes the pipeline's Prometheus metrics. They are
// registered on the default registry and served by the HTTP API's /metrics
// route.
package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// FetchAttempts counts strategy invocations per category and mode.
	FetchAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sentinel_fetch_attempts_total",
		Help: "Fetch strategy invocations by category and mode.",
	}, []string{"category", "mode"})

	// Fallbacks counts live runs that degraded to synthetic generation.
	Fallbacks = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sentinel_fallbacks_total",
		Help: "Live fetches that yielded nothing usable and fell back to synthetic.",
	}, []string{"category"})

	// RejectedCandidates counts raw records dropped during normalization.
	RejectedCandidates = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sentinel_rejected_candidates_total",
		Help: "Raw candidates dropped for missing required fields.",
	}, []string{"category"})

	// SignalsCollected counts normalized signals by category and mode.
	SignalsCollected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sentinel_signals_collected_total",
		Help: "Normalized signals produced by category and mode.",
	}, []string{"category", "mode"})

	// StoreSize tracks the retained sequence length after each persist.
	StoreSize = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "sentinel_store_signals",
		Help: "Signals currently retained per category store.",
	}, []string{"category"})

	// FetchDuration observes wall time of fetch strategy calls.
	FetchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "sentinel_fetch_duration_seconds",
		Help:    "Fetch strategy latency by category and mode.",
		Buckets: prometheus.DefBuckets,
	}, []string{"category", "mode"})
)
