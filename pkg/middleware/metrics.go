package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsConfig configures the Prometheus metrics middleware.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "melba").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for durations.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus metrics middleware.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

// defaultMetricsConfig returns the default metrics configuration.
func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace:   "melba",
		Subsystem:   "",
		ConstLabels: nil,
		Buckets:     prometheus.DefBuckets,
		Registry:    prometheus.DefaultRegisterer,
	}
}

// metrics holds the Prometheus metrics for melba hosts.
type metrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	eventsTotal     *prometheus.CounterVec
	eventDuration   *prometheus.HistogramVec
	eventErrors     *prometheus.CounterVec
	framesSent      prometheus.Counter
	activeSessions  prometheus.Gauge
	toastsPushed    *prometheus.CounterVec
	toastsDismissed prometheus.Counter
	wsErrors        *prometheus.CounterVec
}

// globalMetrics is the singleton metrics instance.
// Created on first call to Prometheus().
var (
	globalMetrics   *metrics
	globalMetricsMu sync.Mutex
)

// initMetrics initializes the Prometheus metrics.
func initMetrics(config MetricsConfig) *metrics {
	factory := promauto.With(config.Registry)

	return &metrics{
		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: config.ConstLabels,
		}, []string{"path", "status"}),

		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"path"}),

		eventsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "events_total",
			Help:        "Total number of client events dispatched",
			ConstLabels: config.ConstLabels,
		}, []string{"event", "status"}),

		eventDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "event_duration_seconds",
			Help:        "Event dispatch duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"event"}),

		eventErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "event_errors_total",
			Help:        "Total number of event dispatch errors",
			ConstLabels: config.ConstLabels,
		}, []string{"event", "error_type"}),

		framesSent: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "frames_sent_total",
			Help:        "Total number of render frames sent to clients",
			ConstLabels: config.ConstLabels,
		}),

		activeSessions: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "active_sessions",
			Help:        "Number of active WebSocket sessions",
			ConstLabels: config.ConstLabels,
		}),

		toastsPushed: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "toasts_pushed_total",
			Help:        "Total number of toasts pushed by level",
			ConstLabels: config.ConstLabels,
		}, []string{"level"}),

		toastsDismissed: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "toasts_dismissed_total",
			Help:        "Total number of toasts dismissed",
			ConstLabels: config.ConstLabels,
		}),

		wsErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "websocket_errors_total",
			Help:        "Total WebSocket errors by type",
			ConstLabels: config.ConstLabels,
		}, []string{"type"}),
	}
}

// Prometheus creates HTTP middleware that times requests and counts
// them by path and status. Off-request activity (sessions, event
// dispatch, frames, toasts) is recorded through the Record* helpers,
// which write to the same metrics instance.
//
// Example:
//
//	r := chi.NewRouter()
//	r.Use(middleware.Prometheus(
//	    middleware.WithNamespace("myapp"),
//	))
//	r.Handle("/metrics", promhttp.Handler())
func Prometheus(opts ...MetricsOption) func(http.Handler) http.Handler {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}

	// Initialize metrics once
	globalMetricsMu.Lock()
	if globalMetrics == nil {
		globalMetrics = initMetrics(config)
	}
	m := globalMetrics
	globalMetricsMu.Unlock()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := r.URL.Path
			if path == "" {
				path = "/"
			}

			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			duration := time.Since(start).Seconds()
			m.requestDuration.WithLabelValues(path).Observe(duration)

			// Hijacked connections (WebSocket upgrades) never write a
			// status through the wrapper.
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			m.requestsTotal.WithLabelValues(path, strconv.Itoa(status)).Inc()
		})
	}
}

// categorizeError returns a category for the error type.
// This prevents high-cardinality labels from error messages.
func categorizeError(err error) string {
	errStr := strings.ToLower(err.Error())
	switch {
	case strings.Contains(errStr, "timeout"):
		return "timeout"
	case strings.Contains(errStr, "not found"):
		return "not_found"
	case strings.Contains(errStr, "no handler"):
		return "no_handler"
	case strings.Contains(errStr, "decode"):
		return "decode"
	case strings.Contains(errStr, "panic"):
		return "panic"
	case strings.Contains(errStr, "websocket"):
		return "websocket"
	default:
		return "internal"
	}
}

// =============================================================================
// Metrics Recording Functions
// =============================================================================

// RecordEvent records one dispatched client event with its duration
// and outcome.
func RecordEvent(event string, duration time.Duration, err error) {
	if globalMetrics == nil {
		return
	}
	globalMetrics.eventDuration.WithLabelValues(event).Observe(duration.Seconds())
	status := "success"
	if err != nil {
		status = "error"
		globalMetrics.eventErrors.WithLabelValues(event, categorizeError(err)).Inc()
	}
	globalMetrics.eventsTotal.WithLabelValues(event, status).Inc()
}

// RecordFrames records render frames sent to clients.
func RecordFrames(count int) {
	if globalMetrics != nil {
		globalMetrics.framesSent.Add(float64(count))
	}
}

// RecordSessionStart records a new WebSocket session.
func RecordSessionStart() {
	if globalMetrics != nil {
		globalMetrics.activeSessions.Inc()
	}
}

// RecordSessionEnd records a WebSocket session closing.
func RecordSessionEnd() {
	if globalMetrics != nil {
		globalMetrics.activeSessions.Dec()
	}
}

// RecordToastPushed records a pushed toast. An empty level is counted
// as "default".
func RecordToastPushed(level string) {
	if globalMetrics != nil {
		if level == "" {
			level = "default"
		}
		globalMetrics.toastsPushed.WithLabelValues(level).Inc()
	}
}

// RecordToastDismissed records a dismissed toast.
func RecordToastDismissed() {
	if globalMetrics != nil {
		globalMetrics.toastsDismissed.Inc()
	}
}

// RecordWebSocketError records a WebSocket error.
func RecordWebSocketError(errorType string) {
	if globalMetrics != nil {
		globalMetrics.wsErrors.WithLabelValues(errorType).Inc()
	}
}

// =============================================================================
// Metrics Collector
// =============================================================================

// Collector exposes the metrics for use in custom registrations.
// This allows collecting melba metrics alongside other application
// metrics.
type Collector struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	eventsTotal     *prometheus.CounterVec
	eventDuration   *prometheus.HistogramVec
	eventErrors     *prometheus.CounterVec
	framesSent      prometheus.Counter
	activeSessions  prometheus.Gauge
	toastsPushed    *prometheus.CounterVec
	toastsDismissed prometheus.Counter
	wsErrors        *prometheus.CounterVec
}

// GetMetrics returns the global metrics collector.
// Returns nil if Prometheus middleware has not been initialized.
func GetMetrics() *Collector {
	if globalMetrics == nil {
		return nil
	}
	return &Collector{
		requestsTotal:   globalMetrics.requestsTotal,
		requestDuration: globalMetrics.requestDuration,
		eventsTotal:     globalMetrics.eventsTotal,
		eventDuration:   globalMetrics.eventDuration,
		eventErrors:     globalMetrics.eventErrors,
		framesSent:      globalMetrics.framesSent,
		activeSessions:  globalMetrics.activeSessions,
		toastsPushed:    globalMetrics.toastsPushed,
		toastsDismissed: globalMetrics.toastsDismissed,
		wsErrors:        globalMetrics.wsErrors,
	}
}
