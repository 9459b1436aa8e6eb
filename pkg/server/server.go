package server

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vango-dev/reportdemo/pkg/middleware"
	"github.com/vango-dev/reportdemo/pkg/report"
)

// ErrShutdownTimeout is returned by Run when in-flight requests outlive
// ShutdownTimeout.
var ErrShutdownTimeout = errors.New("server: shutdown timed out")

// Server is the HTTP server for the demo report.
type Server struct {
	config   Config
	router   chi.Router
	upgrader websocket.Upgrader
	tracer   *middleware.Tracer

	mu         sync.Mutex
	httpServer *http.Server
	addr       net.Addr

	logger *slog.Logger
}

// New creates a Server. Unset config fields take their defaults.
func New(config Config) *Server {
	config = config.withDefaults()

	s := &Server{
		config: config,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin:     config.CheckOrigin,
		},
		logger: slog.Default().With("component", "server"),
	}
	if config.TracerProvider != nil {
		s.tracer = middleware.NewTracer(
			middleware.WithTracerName(config.TracerName),
			middleware.WithTracerProvider(config.TracerProvider),
		)
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(s.logRequests)
	r.Use(chimw.Recoverer)
	if s.config.Metrics != nil {
		r.Use(s.config.Metrics.HTTP)
	}
	if s.config.TracerProvider != nil {
		r.Use(middleware.Tracing(
			middleware.WithTracerName(s.config.TracerName),
			middleware.WithTracerProvider(s.config.TracerProvider),
			middleware.WithRequestFilter(func(r *http.Request) bool {
				return r.URL.Path != "/healthz" && r.URL.Path != "/metrics"
			}),
		))
	}

	r.Get("/", s.handleReport(report.FormatHTML))
	r.Get("/report.md", s.handleReport(report.FormatMarkdown))
	r.Get("/report.txt", s.handleReport(report.FormatTerminal))
	r.Get("/report.json", s.handleReport(report.FormatJSON))
	r.Get("/ws", s.handleStream)
	r.Get("/healthz", handleHealth)
	if s.config.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.config.Gatherer, promhttp.HandlerOpts{}))
	}
	return r
}

// Handler returns the HTTP handler serving all routes.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run listens on the configured address and serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.config.Address)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.config.Address, err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is cancelled, then shuts down gracefully.
// ln is closed when Serve returns.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	hs := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: s.config.ReadHeaderTimeout,
	}
	s.mu.Lock()
	s.httpServer = hs
	s.addr = ln.Addr()
	s.mu.Unlock()

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", "address", ln.Addr().String())
		errCh <- hs.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err

	case <-ctx.Done():
		s.logger.Info("shutting down...")
		return s.shutdown()
	}
}

func (s *Server) shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()

	s.mu.Lock()
	hs := s.httpServer
	s.mu.Unlock()

	if err := hs.Shutdown(ctx); err != nil {
		s.logger.Error("shutdown error", "error", err)
		_ = hs.Close()
		if errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("%w after %s", ErrShutdownTimeout, s.config.ShutdownTimeout)
		}
		return err
	}

	s.logger.Info("server shutdown complete")
	return nil
}

// Addr returns the address the server is listening on, or nil before Serve.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addr
}

// Config returns the server configuration.
func (s *Server) Config() Config {
	return s.config
}

// Logger returns the server logger.
func (s *Server) Logger() *slog.Logger {
	return s.logger
}

// SetLogger sets the server logger.
func (s *Server) SetLogger(logger *slog.Logger) {
	s.logger = logger
}

// render runs the demo report on surface, recording metrics and a span
// when they are configured.
func (s *Server) render(ctx context.Context, name string, surface report.Surface) error {
	run := func(context.Context) error {
		if s.config.Metrics == nil {
			return report.Run(surface)
		}
		return s.config.Metrics.Render(name, func() error {
			return report.Run(s.config.Metrics.Surface(surface))
		})
	}
	if s.tracer != nil {
		return s.tracer.TraceRender(ctx, name, run)
	}
	return run(ctx)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", chimw.GetReqID(r.Context()))
	})
}

// renderBytes renders the report in format into memory so a failed render
// never produces a partial response.
func (s *Server) renderBytes(ctx context.Context, format report.Format) ([]byte, error) {
	var buf bytes.Buffer
	surface, err := report.NewSurface(format, &buf, report.SurfaceOptions{
		Lang:    s.config.Lang,
		Pretty:  s.config.Pretty || format == report.FormatJSON,
		NoColor: true,
	})
	if err != nil {
		return nil, err
	}
	if err := s.render(ctx, string(format), surface); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
