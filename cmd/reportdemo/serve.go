package main

import (
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"

	"github.com/vango-dev/reportdemo/internal/errors"
	"github.com/vango-dev/reportdemo/pkg/middleware"
	"github.com/vango-dev/reportdemo/pkg/server"
)

func serveCmd(g *globalOptions) *cobra.Command {
	var (
		port int
		host string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the report over HTTP",
		Long: `Start an HTTP server that renders the report on every request.

Routes:
  /             HTML page
  /report.md    Markdown
  /report.txt   plain text
  /report.json  JSON elements
  /ws           elements streamed over a WebSocket
  /healthz      liveness check
  /metrics      Prometheus metrics

Examples:
  reportdemo serve
  reportdemo serve --port=8080
  reportdemo serve --host=0.0.0.0`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(g)
			if err != nil {
				return err
			}
			if port > 0 {
				cfg.Server.Port = port
			}
			if host != "" {
				cfg.Server.Host = host
			}
			if cfg.Server.Port > 65535 {
				return errors.New("E101").
					WithDetail("--port must be between 1 and 65535, got " + strconv.Itoa(cfg.Server.Port))
			}

			sc := server.Config{
				Address:         cfg.Server.Address(),
				Lang:            cfg.Page.Lang,
				Pretty:          cfg.Output.Pretty,
				ShutdownTimeout: cfg.Server.ShutdownDuration(),
			}
			if cfg.MetricsEnabled() {
				reg := prometheus.NewRegistry()
				reg.MustRegister(
					collectors.NewGoCollector(),
					collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
				)
				sc.Metrics = middleware.NewMetrics(
					middleware.WithNamespace(cfg.Metrics.Namespace),
					middleware.WithRegistry(reg),
				)
				sc.Gatherer = reg
			}
			if cfg.TracingEnabled() {
				sc.TracerProvider = otel.GetTracerProvider()
				sc.TracerName = cfg.Tracing.TracerName
			}

			out := cmd.OutOrStdout()
			printBanner(out)
			info(out, "Serving on %s", cfg.Server.URL())
			info(out, "Press Ctrl+C to stop")

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := server.New(sc).Run(ctx); err != nil {
				if errors.Is(err, server.ErrShutdownTimeout) {
					return errors.New("E121").Wrap(err)
				}
				return errors.New("E120").Wrap(err)
			}
			success(out, "Server stopped")
			return nil
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default from config, 8501)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from config, localhost)")

	return cmd
}
