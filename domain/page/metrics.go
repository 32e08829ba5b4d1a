package page

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Renders counts landing page responses by outcome: ok, fallback or unavailable.
	Renders = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "page_renders_total",
		Help: "Landing page renders by outcome",
	}, []string{"outcome"})

	RenderDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "page_render_duration_seconds",
		Help:    "Time to fetch, resolve and render the landing page",
		Buckets: prometheus.DefBuckets,
	})
)

const (
	outcomeOK          = "ok"
	outcomeFallback    = "fallback"
	outcomeUnavailable = "unavailable"
)
