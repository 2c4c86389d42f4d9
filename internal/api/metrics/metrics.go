// Package metrics defines and registers all custom Prometheus metrics for
// the ResumeSync API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default registry via promauto at import time;
// the /metrics endpoint is mounted by the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "resumesync"

// AnalysisRequestsTotal counts AI analysis operations.
// Labels:
//   - operation: "summarize", "analyze" or "match"
//   - result: "ok", "error" or "mock" (mock mode short-circuit, no call made)
var AnalysisRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "analysis_requests_total",
		Help:      "Total number of AI analysis operations, labelled by operation and result.",
	},
	[]string{"operation", "result"},
)

// UploadsTotal counts resume uploads that reached the extractor.
// Labels:
//   - kind: declared document kind ("txt", "docx", "pdf", "other")
//   - result: "ok" or "error"
var UploadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "uploads_total",
		Help:      "Total number of resume uploads processed by the text extractor.",
	},
	[]string{"kind", "result"},
)

// UpstreamRequestDuration measures the latency of completion-endpoint calls.
// Label:
//   - operation: "summarize", "analyze" or "match"
var UpstreamRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "upstream_request_duration_seconds",
		Help:      "Duration of generative-language endpoint calls.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"operation"},
)

// AuthFailuresTotal counts rejected requests on protected routes.
// Label:
//   - reason: "missing_header" or "invalid_token"
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of requests rejected by the auth middleware.",
	},
	[]string{"reason"},
)
