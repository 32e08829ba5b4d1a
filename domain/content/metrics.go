package content

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	QueryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "cms_query_duration_seconds",
		Help:    "Latency of page content queries by store",
		Buckets: prometheus.DefBuckets,
	}, []string{"store"})

	// QueryFailures counts fetches that fell short: unreachable, malformed or empty.
	QueryFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cms_query_failures_total",
		Help: "Page content fetches that did not yield a usable document",
	}, []string{"kind"})
)

// Failure kinds for QueryFailures.
const (
	FailureUnreachable = "unreachable"
	FailureMalformed   = "malformed"
	FailureEmpty       = "empty"
)
