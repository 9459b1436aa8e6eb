package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/vango-dev/reportdemo/pkg/report"
)

// MetricsConfig configures the Prometheus collectors.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "reportdemo").
	Namespace string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for durations.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus collectors.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
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

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "reportdemo",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics holds the Prometheus collectors. Create one per registry.
type Metrics struct {
	httpRequests   *prometheus.CounterVec
	httpDuration   *prometheus.HistogramVec
	rendersTotal   *prometheus.CounterVec
	renderDuration *prometheus.HistogramVec
	elementsTotal  *prometheus.CounterVec
}

// NewMetrics creates and registers the collectors.
func NewMetrics(opts ...MetricsOption) *Metrics {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	m := &Metrics{
		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests served",
			ConstLabels: config.ConstLabels,
		}, []string{"route", "method", "code"}),

		httpDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"route"}),

		rendersTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Name:        "renders_total",
			Help:        "Total number of report renders",
			ConstLabels: config.ConstLabels,
		}, []string{"surface", "status"}),

		renderDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Name:        "render_duration_seconds",
			Help:        "Report render duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"surface"}),

		elementsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Name:        "elements_total",
			Help:        "Total number of report elements written",
			ConstLabels: config.ConstLabels,
		}, []string{"kind"}),
	}

	// Pre-create label sets so every series exists from the start.
	for _, k := range report.Kinds {
		m.elementsTotal.WithLabelValues(string(k))
	}
	return m
}

// HTTP is chi-compatible middleware recording request count and latency.
// The route label is the matched chi pattern, so path parameters do not
// create new series; unmatched requests are labelled "unmatched".
func (m *Metrics) HTTP(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if p := rctx.RoutePattern(); p != "" {
				route = p
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		m.httpDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
		m.httpRequests.WithLabelValues(route, r.Method, strconv.Itoa(status)).Inc()
	})
}

// Render runs fn and records it as one render on the named surface.
func (m *Metrics) Render(surface string, fn func() error) error {
	start := time.Now()
	err := fn()
	m.renderDuration.WithLabelValues(surface).Observe(time.Since(start).Seconds())

	status := "success"
	if err != nil {
		status = "error"
	}
	m.rendersTotal.WithLabelValues(surface, status).Inc()
	return err
}

// Surface wraps s so every successful write increments elements_total.
func (m *Metrics) Surface(s report.Surface) *InstrumentedSurface {
	return &InstrumentedSurface{inner: s, elements: m.elementsTotal}
}

// InstrumentedSurface counts the elements written to an inner surface.
// It forwards Close when the inner surface has one.
type InstrumentedSurface struct {
	inner    report.Surface
	elements *prometheus.CounterVec
}

func (s *InstrumentedSurface) count(kind report.Kind, err error) error {
	if err == nil {
		s.elements.WithLabelValues(string(kind)).Inc()
	}
	return err
}

// WriteHeading implements report.Surface.
func (s *InstrumentedSurface) WriteHeading(text string) error {
	return s.count(report.KindHeading, s.inner.WriteHeading(text))
}

// WriteText implements report.Surface.
func (s *InstrumentedSurface) WriteText(text string) error {
	return s.count(report.KindText, s.inner.WriteText(text))
}

// WriteTable implements report.Surface.
func (s *InstrumentedSurface) WriteTable(t *report.Frame) error {
	return s.count(report.KindTable, s.inner.WriteTable(t))
}

// WriteSuccess implements report.Surface.
func (s *InstrumentedSurface) WriteSuccess(text string) error {
	return s.count(report.KindSuccess, s.inner.WriteSuccess(text))
}

// Close closes the inner surface if it is closable.
func (s *InstrumentedSurface) Close() error {
	if c, ok := s.inner.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
