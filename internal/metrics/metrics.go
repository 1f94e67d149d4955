package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "bootkit"

// Rendering metrics
var (
	RendersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "renders_total",
			Help:      "Total number of component renders",
		},
		[]string{"template", "status"},
	)

	RenderDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "render_duration_seconds",
			Help:      "Component render latency distribution",
			Buckets:   []float64{.0001, .00025, .0005, .001, .0025, .005, .01, .025, .05, .1},
		},
		[]string{"template"},
	)

	TemplateReloads = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "template_reloads_total",
			Help:      "Total number of template set reloads",
		},
	)
)

// Helper errors
var (
	HelperErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "helper_errors_total",
			Help:      "Total number of template helper errors",
		},
		[]string{"helper", "code"},
	)
)
