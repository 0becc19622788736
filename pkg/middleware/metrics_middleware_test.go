package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func resetGlobalMetricsForTest() {
	globalMetricsMu.Lock()
	globalMetrics = nil
	globalMetricsMu.Unlock()
}

func metricCounterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		t.Fatalf("counter Write() error: %v", err)
	}
	if m.Counter == nil {
		t.Fatal("expected counter metric to have Counter field")
	}
	return m.GetCounter().GetValue()
}

func metricGaugeValue(t *testing.T, g prometheus.Gauge) float64 {
	t.Helper()
	var m dto.Metric
	if err := g.Write(&m); err != nil {
		t.Fatalf("gauge Write() error: %v", err)
	}
	if m.Gauge == nil {
		t.Fatal("expected gauge metric to have Gauge field")
	}
	return m.GetGauge().GetValue()
}

func metricHistogramCount(t *testing.T, o prometheus.Observer) uint64 {
	t.Helper()
	metric, ok := o.(prometheus.Metric)
	if !ok {
		t.Fatalf("observer %T does not implement prometheus.Metric", o)
	}
	var m dto.Metric
	if err := metric.Write(&m); err != nil {
		t.Fatalf("histogram Write() error: %v", err)
	}
	if m.Histogram == nil {
		t.Fatal("expected histogram metric to have Histogram field")
	}
	return m.GetHistogram().GetSampleCount()
}

func TestPrometheusMiddleware_RecordsStatusAndDuration(t *testing.T) {
	t.Run("ok response counted by path and status", func(t *testing.T) {
		resetGlobalMetricsForTest()
		reg := prometheus.NewRegistry()

		handler := Prometheus(WithRegistry(reg))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/demo", nil))

		c := GetMetrics()
		if c == nil {
			t.Fatal("expected GetMetrics to return collector after initialization")
		}
		if got := metricCounterValue(t, c.requestsTotal.WithLabelValues("/demo", "200")); got != 1 {
			t.Fatalf("requests_total(/demo,200)=%v, want 1", got)
		}
		if got := metricHistogramCount(t, c.requestDuration.WithLabelValues("/demo")); got == 0 {
			t.Fatal("expected request_duration_seconds histogram to have sample count > 0")
		}
	})

	t.Run("error response counted under its status", func(t *testing.T) {
		resetGlobalMetricsForTest()
		reg := prometheus.NewRegistry()

		handler := Prometheus(WithRegistry(reg))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "nope", http.StatusInternalServerError)
		}))

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/demo", nil))

		c := GetMetrics()
		if got := metricCounterValue(t, c.requestsTotal.WithLabelValues("/demo", "500")); got != 1 {
			t.Fatalf("requests_total(/demo,500)=%v, want 1", got)
		}
	})
}

func TestPrometheusMiddleware_UnwrittenStatusCountsAsOK(t *testing.T) {
	resetGlobalMetricsForTest()
	reg := prometheus.NewRegistry()

	// Handler never calls WriteHeader or Write, like a hijacked
	// WebSocket upgrade.
	handler := Prometheus(WithRegistry(reg))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/ws", nil))

	c := GetMetrics()
	if got := metricCounterValue(t, c.requestsTotal.WithLabelValues("/ws", "200")); got != 1 {
		t.Fatalf("requests_total(/ws,200)=%v, want 1", got)
	}
}

func TestRecordEvent(t *testing.T) {
	resetGlobalMetricsForTest()
	reg := prometheus.NewRegistry()
	_ = Prometheus(WithRegistry(reg)) // initialize global metrics

	RecordEvent("swipe:end", 3*time.Millisecond, nil)
	RecordEvent("swipe:end", 2*time.Millisecond, errors.New("dispatch timeout"))

	c := GetMetrics()
	if c == nil {
		t.Fatal("expected GetMetrics to return collector after initialization")
	}
	if got := metricCounterValue(t, c.eventsTotal.WithLabelValues("swipe:end", "success")); got != 1 {
		t.Fatalf("events_total(success)=%v, want 1", got)
	}
	if got := metricCounterValue(t, c.eventsTotal.WithLabelValues("swipe:end", "error")); got != 1 {
		t.Fatalf("events_total(error)=%v, want 1", got)
	}
	if got := metricCounterValue(t, c.eventErrors.WithLabelValues("swipe:end", "timeout")); got != 1 {
		t.Fatalf("event_errors_total(timeout)=%v, want 1", got)
	}
	if got := metricHistogramCount(t, c.eventDuration.WithLabelValues("swipe:end")); got != 2 {
		t.Fatalf("event_duration_seconds count=%v, want 2", got)
	}
}

func TestRecordFunctions(t *testing.T) {
	resetGlobalMetricsForTest()
	reg := prometheus.NewRegistry()
	_ = Prometheus(WithRegistry(reg)) // initialize global metrics

	RecordFrames(5)
	RecordSessionStart()
	RecordSessionStart()
	RecordSessionEnd()
	RecordToastPushed("success")
	RecordToastPushed("")
	RecordToastDismissed()
	RecordWebSocketError("read")

	c := GetMetrics()
	if got := metricCounterValue(t, c.framesSent); got != 5 {
		t.Fatalf("frames_sent_total=%v, want 5", got)
	}
	if got := metricGaugeValue(t, c.activeSessions); got != 1 {
		t.Fatalf("active_sessions=%v, want 1 (start+start+end)", got)
	}
	if got := metricCounterValue(t, c.toastsPushed.WithLabelValues("success")); got != 1 {
		t.Fatalf("toasts_pushed_total(success)=%v, want 1", got)
	}
	if got := metricCounterValue(t, c.toastsPushed.WithLabelValues("default")); got != 1 {
		t.Fatalf("toasts_pushed_total(default)=%v, want 1", got)
	}
	if got := metricCounterValue(t, c.toastsDismissed); got != 1 {
		t.Fatalf("toasts_dismissed_total=%v, want 1", got)
	}
	if got := metricCounterValue(t, c.wsErrors.WithLabelValues("read")); got != 1 {
		t.Fatalf("websocket_errors_total(read)=%v, want 1", got)
	}
}

func TestRecordFunctions_NoopWithoutInit(t *testing.T) {
	resetGlobalMetricsForTest()

	// Must not panic before Prometheus() initializes the metrics.
	RecordEvent("click", time.Millisecond, nil)
	RecordFrames(1)
	RecordSessionStart()
	RecordSessionEnd()
	RecordToastPushed("info")
	RecordToastDismissed()
	RecordWebSocketError("write")

	if GetMetrics() != nil {
		t.Fatal("expected nil collector before initialization")
	}
}

func TestCategorizeError(t *testing.T) {
	tests := []struct {
		err  string
		want string
	}{
		{"dial timeout exceeded", "timeout"},
		{"handler not found", "not_found"},
		{"no handler for h3_onclick", "no_handler"},
		{"failed to decode event frame", "decode"},
		{"panic in event handler", "panic"},
		{"websocket: close 1006", "websocket"},
		{"something else entirely", "internal"},
	}

	for _, tt := range tests {
		if got := categorizeError(errors.New(tt.err)); got != tt.want {
			t.Errorf("categorizeError(%q) = %q, want %q", tt.err, got, tt.want)
		}
	}
}
