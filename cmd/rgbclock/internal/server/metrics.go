package server

import (
	"runtime"

	"github.com/prometheus/client_golang/prometheus"
)

// Render targets used as metric labels.
const (
	targetPNG    = "png"
	targetSVG    = "svg"
	targetStream = "stream"
)

// Metrics holds the server's Prometheus instruments. They live on a
// private registry so several servers can coexist in one process.
type Metrics struct {
	registry *prometheus.Registry

	framesRendered *prometheus.CounterVec
	renderDuration *prometheus.HistogramVec
	streamClients  prometheus.Gauge
	buildInfo      *prometheus.GaugeVec
}

// NewMetrics creates and registers the instruments.
func NewMetrics(version string) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		framesRendered: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rgbclock_frames_rendered_total",
				Help: "Total number of clock frames rendered",
			},
			[]string{"target"},
		),
		renderDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "rgbclock_render_duration_seconds",
				Help:    "Time spent painting and encoding one frame",
				Buckets: prometheus.ExponentialBuckets(0.0005, 2, 12),
			},
			[]string{"target"},
		),
		streamClients: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "rgbclock_stream_clients",
			Help: "Number of connected websocket stream clients",
		}),
		buildInfo: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "rgbclock_build_info",
				Help: "Build version information",
			},
			[]string{"version", "go_version"},
		),
	}

	m.buildInfo.With(prometheus.Labels{
		"version":    version,
		"go_version": runtime.Version(),
	}).Set(1)

	m.registry.MustRegister(
		m.framesRendered,
		m.renderDuration,
		m.streamClients,
		m.buildInfo,
		prometheus.NewGoCollector(),
	)
	return m
}

// Registry returns the registry backing /metrics.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) observeRender(target string, seconds float64) {
	m.framesRendered.WithLabelValues(target).Inc()
	m.renderDuration.WithLabelValues(target).Observe(seconds)
}
