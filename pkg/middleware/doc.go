// Package middleware provides observability middleware for melba hosts.
//
// This package includes:
//   - Prometheus metrics middleware and recording helpers
//   - OpenTelemetry tracing middleware and event span helpers
//
// # Prometheus Metrics
//
// The Prometheus middleware times HTTP requests; the recording helpers
// cover what happens off the request path (WebSocket sessions, hook
// event dispatch, render frames, toast activity):
//
//	r := chi.NewRouter()
//	r.Use(middleware.Prometheus(
//	    middleware.WithNamespace("myapp"),
//	))
//	r.Handle("/metrics", promhttp.Handler())
//
// Metrics collected:
//   - melba_requests_total: Counter of HTTP requests by path and status
//   - melba_request_duration_seconds: Request duration histogram
//   - melba_events_total: Counter of dispatched client events by name
//   - melba_event_duration_seconds: Event dispatch duration histogram
//   - melba_event_errors_total: Counter of event errors by category
//   - melba_frames_sent_total: Counter of render frames pushed to clients
//   - melba_active_sessions: Gauge of live WebSocket sessions
//   - melba_toasts_pushed_total: Counter of pushed toasts by level
//   - melba_toasts_dismissed_total: Counter of dismissed toasts
//   - melba_websocket_errors_total: Counter of WebSocket errors by type
//
// # OpenTelemetry
//
// The Tracing middleware creates a server span per HTTP request and
// injects it into the request context. Session loops trace individual
// event dispatches with EventSpan/EndEventSpan:
//
//	ctx, span := middleware.EventSpan(ctx, "swipe:end", hid)
//	err := dispatch(ctx)
//	middleware.EndEventSpan(span, err)
//
// The tracer uses the global OpenTelemetry tracer provider. Configure
// it in your main() before starting the server:
//
//	tp := sdktrace.NewTracerProvider(
//	    sdktrace.WithBatcher(exporter),
//	)
//	otel.SetTracerProvider(tp)
package middleware
