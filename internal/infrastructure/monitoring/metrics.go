package monitoring

import (
	"net/http"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// HTTP metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	// Window metrics
	WindowsAttached prometheus.Gauge
	WindowsTotal    prometheus.Counter

	// Layout metrics
	LayoutPasses       *prometheus.CounterVec
	LayoutPassDuration *prometheus.HistogramVec
	LayoutPassWindows  *prometheus.HistogramVec
	FrameChanges       prometheus.Counter

	// WebSocket metrics
	WSConnections prometheus.Gauge
	WSMessages    *prometheus.CounterVec

	// System metrics
	Uptime    prometheus.GaugeFunc
	startTime time.Time

	registry *prometheus.Registry

	// Snapshot counters for the JSON API
	totalRequests atomic.Int64
	totalPasses   atomic.Int64
	activeWindows atomic.Int64
	wsClients     atomic.Int64
}

// NewMetrics creates a metrics collector on a fresh registry
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())

	factory := promauto.With(registry)
	m := &Metrics{
		startTime: time.Now(),
		registry:  registry,

		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "compositor_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "compositor_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
			},
			[]string{"method", "path"},
		),

		WindowsAttached: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "compositor_windows_attached",
				Help: "Number of currently attached windows",
			},
		),
		WindowsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "compositor_windows_total",
				Help: "Total number of windows ever attached",
			},
		),

		LayoutPasses: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "compositor_layout_passes_total",
				Help: "Total number of layout passes",
			},
			[]string{"display"},
		),
		LayoutPassDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "compositor_layout_pass_duration_seconds",
				Help:    "Layout pass duration in seconds",
				Buckets: []float64{.00001, .0001, .001, .005, .01, .05, .1},
			},
			[]string{"display"},
		),
		LayoutPassWindows: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "compositor_layout_pass_windows",
				Help:    "Windows resolved per layout pass",
				Buckets: []float64{1, 2, 5, 10, 25, 50, 100},
			},
			[]string{"display"},
		),
		FrameChanges: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "compositor_frame_changes_total",
				Help: "Total number of window frame changes",
			},
		),

		WSConnections: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "compositor_ws_connections",
				Help: "Number of active WebSocket connections",
			},
		),
		WSMessages: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "compositor_ws_messages_total",
				Help: "Total WebSocket messages by type and direction",
			},
			[]string{"type", "direction"},
		),
	}

	m.Uptime = factory.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: "compositor_uptime_seconds",
			Help: "Service uptime in seconds",
		},
		func() float64 { return time.Since(m.startTime).Seconds() },
	)

	return m
}

// Handler exposes the registry in Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// RecordHTTPRequest records one HTTP request
func (m *Metrics) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	m.RequestsTotal.WithLabelValues(method, path, status).Inc()
	m.RequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
	m.totalRequests.Add(1)
}

// RecordWindowAttached records a window attach
func (m *Metrics) RecordWindowAttached() {
	m.WindowsAttached.Inc()
	m.WindowsTotal.Inc()
	m.activeWindows.Add(1)
}

// RecordWindowDetached records a window detach
func (m *Metrics) RecordWindowDetached() {
	m.WindowsAttached.Dec()
	m.activeWindows.Add(-1)
}

// RecordLayoutPass records one layout pass
func (m *Metrics) RecordLayoutPass(displayID string, duration time.Duration, windows int) {
	m.LayoutPasses.WithLabelValues(displayID).Inc()
	m.LayoutPassDuration.WithLabelValues(displayID).Observe(duration.Seconds())
	m.LayoutPassWindows.WithLabelValues(displayID).Observe(float64(windows))
	m.totalPasses.Add(1)
}

// RecordFrameChanges records how many frames moved in a pass
func (m *Metrics) RecordFrameChanges(count int) {
	m.FrameChanges.Add(float64(count))
}

// RecordWSConnection tracks a WebSocket client connecting or leaving
func (m *Metrics) RecordWSConnection(connected bool) {
	if connected {
		m.WSConnections.Inc()
		m.wsClients.Add(1)
	} else {
		m.WSConnections.Dec()
		m.wsClients.Add(-1)
	}
}

// RecordWSMessage records a WebSocket message
func (m *Metrics) RecordWSMessage(msgType, direction string) {
	m.WSMessages.WithLabelValues(msgType, direction).Inc()
}

// Snapshot holds current metric values for the JSON API
type Snapshot struct {
	TotalRequests int64   `json:"total_requests"`
	TotalPasses   int64   `json:"total_passes"`
	ActiveWindows int64   `json:"active_windows"`
	WSClients     int64   `json:"ws_clients"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}

// GetSnapshot returns current values for the JSON API
func (m *Metrics) GetSnapshot() Snapshot {
	return Snapshot{
		TotalRequests: m.totalRequests.Load(),
		TotalPasses:   m.totalPasses.Load(),
		ActiveWindows: m.activeWindows.Load(),
		WSClients:     m.wsClients.Load(),
		UptimeSeconds: time.Since(m.startTime).Seconds(),
	}
}
