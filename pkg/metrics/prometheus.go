// Package metrics provides Prometheus metrics for the velocity dashboard service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns every Prometheus collector exported by the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	constLabels      map[string]string
	registry         prometheus.Registerer

	// HTTP
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	errorsByType        *prometheus.CounterVec

	// Dashboards
	snapshotsGenerated *prometheus.CounterVec
	pageViews          *prometheus.CounterVec
	assetsServed       prometheus.Counter

	// System
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
	systemGCPauseTime    prometheus.Histogram
}

var globalManager *Manager //nolint:gochecknoglobals // singleton metrics manager

// customRegistry keeps the default Go collectors out of /metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // metrics registry

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a metrics manager and registers its collectors.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "velocity",
		subsystem:        "dashboard",
		histogramBuckets: []float64{0.1, 0.5, 1, 2, 5, 10, 25, 50, 100, 250},
		constLabels:      map[string]string{},
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "http_requests_total",
		Help:        "Total number of HTTP requests by route, method and status",
		ConstLabels: m.constLabels,
	}, []string{"route", "method", "status_code"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "http_request_duration_milliseconds",
		Help:        "HTTP request duration in milliseconds",
		Buckets:     m.histogramBuckets,
		ConstLabels: m.constLabels,
	}, []string{"route", "method", "status_code"})

	m.errorsByType = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "http_errors_total",
		Help:        "HTTP error responses by error type and severity",
		ConstLabels: m.constLabels,
	}, []string{"error_type", "severity"})

	m.snapshotsGenerated = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "snapshots_generated_total",
		Help:        "Mock metric snapshots generated per dashboard domain",
		ConstLabels: m.constLabels,
	}, []string{"domain"})

	m.pageViews = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "page_views_total",
		Help:        "Dashboard page views by page",
		ConstLabels: m.constLabels,
	}, []string{"page"})

	m.assetsServed = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "assets_served_total",
		Help:        "Dashboard image files streamed",
		ConstLabels: m.constLabels,
	})

	m.systemMemoryUsage = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   "system",
		Name:        "memory_usage_bytes",
		Help:        "Heap bytes allocated",
		ConstLabels: m.constLabels,
	})

	m.systemGoroutineCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   "system",
		Name:        "goroutine_count",
		Help:        "Current number of goroutines",
		ConstLabels: m.constLabels,
	})

	m.systemGCPauseTime = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   "system",
		Name:        "gc_pause_time_milliseconds",
		Help:        "Average GC pause time in milliseconds",
		Buckets:     m.histogramBuckets,
		ConstLabels: m.constLabels,
	})
}

// RecordHTTPRequest counts a request and observes its duration.
func (m *Manager) RecordHTTPRequest(route, method, statusCode string, durationMs float64) {
	m.httpRequests.WithLabelValues(route, method, statusCode).Inc()
	m.httpRequestDuration.WithLabelValues(route, method, statusCode).Observe(durationMs)
}

// RecordError counts an error response.
func (m *Manager) RecordError(errorType, severity string) {
	m.errorsByType.WithLabelValues(errorType, severity).Inc()
}

// RecordSnapshot counts one generated snapshot for domain.
func (m *Manager) RecordSnapshot(domain string) {
	m.snapshotsGenerated.WithLabelValues(domain).Inc()
}

// RecordPageView counts one page view.
func (m *Manager) RecordPageView(page string) {
	m.pageViews.WithLabelValues(page).Inc()
}

// RecordAssetServed counts one streamed asset.
func (m *Manager) RecordAssetServed() {
	m.assetsServed.Inc()
}

// UpdateSystemMemoryUsage sets the heap usage gauge.
func (m *Manager) UpdateSystemMemoryUsage(bytes uint64) {
	m.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the goroutine gauge.
func (m *Manager) UpdateSystemGoroutineCount(count int) {
	m.systemGoroutineCount.Set(float64(count))
}

// RecordSystemGCPauseTime observes an average GC pause.
func (m *Manager) RecordSystemGCPauseTime(pauseMs float64) {
	m.systemGCPauseTime.Observe(pauseMs)
}

// Default returns the process-wide manager bound to GetRegistry.
func Default() *Manager {
	return globalManager
}

// UpdateSystemMemoryUsage sets the system memory usage in bytes.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.UpdateSystemMemoryUsage(bytes)
}

// UpdateSystemGoroutineCount sets the number of goroutines.
func UpdateSystemGoroutineCount(count int) {
	globalManager.UpdateSystemGoroutineCount(count)
}

// RecordSystemGCPauseTime records GC pause time in milliseconds.
func RecordSystemGCPauseTime(pauseMs float64) {
	globalManager.RecordSystemGCPauseTime(pauseMs)
}

// GetRegistry returns the custom Prometheus registry used by the global manager.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
