// Package server serves the demo report over HTTP.
//
// Every request renders a fresh report, so responses are independent and
// byte-identical across requests. Routes:
//
//	GET /             HTML page
//	GET /report.md    Markdown
//	GET /report.txt   plain terminal text
//	GET /report.json  recorded elements as JSON
//	GET /ws           elements streamed over a WebSocket, one text frame each
//	GET /healthz      liveness check
//	GET /metrics      Prometheus metrics (when enabled)
//
// # Example Usage
//
//	s := server.New(server.Config{Address: ":8501"})
//	if err := s.Run(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// Run returns once ctx is cancelled and in-flight requests have finished,
// or ShutdownTimeout has passed.
package server
