package server

import (
	"net/http"
	"net/url"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/reportdemo/pkg/middleware"
)

// Config configures a Server.
type Config struct {
	// Address is the listen address.
	// Default: "localhost:8501".
	Address string

	// Lang is the lang attribute of the HTML page.
	// Default: "es".
	Lang string

	// Pretty indents HTML and JSON responses.
	Pretty bool

	// ShutdownTimeout is the maximum time to wait for in-flight requests
	// once Run's context is cancelled.
	// Default: 10 seconds.
	ShutdownTimeout time.Duration

	// ReadHeaderTimeout is the time allowed to read request headers.
	// Default: 5 seconds.
	ReadHeaderTimeout time.Duration

	// WriteTimeout bounds each WebSocket frame write.
	// Default: 10 seconds.
	WriteTimeout time.Duration

	// Metrics records HTTP and render metrics. Nil disables metrics and
	// the /metrics route.
	Metrics *middleware.Metrics

	// Gatherer is exposed on /metrics.
	// Default: prometheus.DefaultGatherer.
	Gatherer prometheus.Gatherer

	// TracerProvider enables request and render spans when set.
	TracerProvider trace.TracerProvider

	// TracerName is the instrumentation scope of the spans.
	// Default: "reportdemo".
	TracerName string

	// CheckOrigin validates the Origin header of WebSocket upgrades.
	// Default: SameOriginCheck.
	CheckOrigin func(r *http.Request) bool
}

// DefaultConfig returns a Config with defaults filled in.
func DefaultConfig() Config {
	return Config{
		Address:           "localhost:8501",
		Lang:              "es",
		ShutdownTimeout:   10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      10 * time.Second,
		Gatherer:          prometheus.DefaultGatherer,
		TracerName:        "reportdemo",
		CheckOrigin:       SameOriginCheck,
	}
}

// withDefaults fills unset fields of c.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Address == "" {
		c.Address = d.Address
	}
	if c.Lang == "" {
		c.Lang = d.Lang
	}
	if c.ShutdownTimeout == 0 {
		c.ShutdownTimeout = d.ShutdownTimeout
	}
	if c.ReadHeaderTimeout == 0 {
		c.ReadHeaderTimeout = d.ReadHeaderTimeout
	}
	if c.WriteTimeout == 0 {
		c.WriteTimeout = d.WriteTimeout
	}
	if c.Gatherer == nil {
		c.Gatherer = d.Gatherer
	}
	if c.TracerName == "" {
		c.TracerName = d.TracerName
	}
	if c.CheckOrigin == nil {
		c.CheckOrigin = d.CheckOrigin
	}
	return c
}

// SameOriginCheck accepts WebSocket upgrades without an Origin header or
// whose Origin host matches the request host.
func SameOriginCheck(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	originURL, err := url.Parse(origin)
	if err != nil {
		return false
	}
	return r.Host != "" && originURL.Host == r.Host
}
