// Package middleware provides observability for reportdemo: Prometheus
// metrics and OpenTelemetry tracing, for both HTTP requests and report
// renders.
//
// # Prometheus Metrics
//
//	m := middleware.NewMetrics(middleware.WithNamespace("reportdemo"))
//	r.Use(m.HTTP)
//	r.Handle("/metrics", promhttp.Handler())
//
// Metrics collected:
//   - reportdemo_http_requests_total: requests by route, method and status code
//   - reportdemo_http_request_duration_seconds: request latency by route
//   - reportdemo_renders_total: renders by surface and status
//   - reportdemo_render_duration_seconds: render latency by surface
//   - reportdemo_elements_total: elements written by kind
//
// Wrap a surface to count its elements:
//
//	s := m.Surface(report.NewHTMLSurface(w, opts))
//	err := m.Render("html", func() error { return report.Run(s) })
//
// # OpenTelemetry
//
// Tracing creates a server span for every request. TraceRender wraps a
// render in a child span and records its error:
//
//	r.Use(middleware.Tracing(middleware.WithTracerName("reportdemo")))
//
// The tracer comes from the global provider; configure it with
// otel.SetTracerProvider before serving.
package middleware
