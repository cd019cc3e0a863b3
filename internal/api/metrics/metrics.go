// Package metrics defines and registers all custom Prometheus metrics for
// the mission-control backend. It is the single source of truth for metric
// names, labels, and help strings. Metrics register with the default
// registry at import time via promauto; the /metrics route is mounted by
// the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "mission_control"

// ── Stream relay metrics ──────────────────────────────────────────────────────

// StreamsStartedTotal counts chat turns accepted by the relay.
// Label:
//   - kind: "upstream" (forwarded to the generator) or "command" (billing
//     intercept answered locally)
var StreamsStartedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "streams_started_total",
		Help:      "Total number of chat turns accepted, by handling kind.",
	},
	[]string{"kind"},
)

// StreamErrorsTotal counts failed chat turns.
// Label:
//   - stage: "before_first_byte" (reported as a synchronous error) or
//     "mid_stream" (stream terminated without the sentinel)
var StreamErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "stream_errors_total",
		Help:      "Total number of failed chat turns, by failure stage.",
	},
	[]string{"stage"},
)

// StreamFragmentsTotal counts text fragments forwarded to clients.
var StreamFragmentsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "stream_fragments_total",
		Help:      "Total number of text fragments forwarded to clients.",
	},
)

// StreamDuration measures a chat turn end-to-end, accept to sentinel or failure.
var StreamDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "stream_duration_seconds",
		Help:      "Duration of a chat turn from accept to sentinel or failure.",
		Buckets:   prometheus.DefBuckets,
	},
)

// ── Ledger metrics ────────────────────────────────────────────────────────────

// EntriesAppendedTotal counts new time entries.
// Label:
//   - source: "command" (chat intercept) or "manual" (entries endpoint)
var EntriesAppendedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "entries_appended_total",
		Help:      "Total number of time entries appended, by source.",
	},
	[]string{"source"},
)
