package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vango-dev/reportdemo/internal/config"
	"github.com/vango-dev/reportdemo/internal/errors"
	"github.com/vango-dev/reportdemo/pkg/middleware"
	"github.com/vango-dev/reportdemo/pkg/report"
)

type renderOptions struct {
	format  string
	out     string
	pretty  bool
	glamour bool
}

func renderCmd(g *globalOptions) *cobra.Command {
	o := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the report to stdout or a file",
		Long: `Render the demo report on one surface.

Formats:
  terminal  styled text with a box-drawn table (default)
  html      a standalone HTML page
  markdown  GitHub-flavored Markdown, or terminal output with --glamour
  json      the ordered list of report elements

Examples:
  reportdemo render
  reportdemo render --format html --out report.html
  reportdemo render --format markdown --glamour`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, g, o)
		},
	}

	cmd.Flags().StringVarP(&o.format, "format", "f", "", "Output format: terminal, html, markdown, json (default from config)")
	cmd.Flags().StringVarP(&o.out, "out", "o", "", "Write to this file instead of stdout")
	cmd.Flags().BoolVar(&o.pretty, "pretty", false, "Indent HTML and JSON output")
	cmd.Flags().BoolVar(&o.glamour, "glamour", false, "Render Markdown for the terminal")

	return cmd
}

func runRender(cmd *cobra.Command, g *globalOptions, o *renderOptions) error {
	cfg, err := loadConfig(g)
	if err != nil {
		return err
	}

	if o.format != "" {
		cfg.Output.Format = o.format
	}
	if o.out != "" {
		cfg.Output.Path = o.out
	}
	if cmd.Flags().Changed("pretty") {
		cfg.Output.Pretty = o.pretty
	}
	if cmd.Flags().Changed("glamour") {
		cfg.Output.Glamour = o.glamour
	}
	if g.noColor {
		cfg.Output.NoColor = true
	}

	format, err := parseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}

	if cfg.Output.Path == "" {
		return renderReport(cmd.Context(), cfg, format, cmd.OutOrStdout())
	}

	var buf bytes.Buffer
	if err := renderReport(cmd.Context(), cfg, format, &buf); err != nil {
		return err
	}
	if err := os.WriteFile(cfg.Output.Path, buf.Bytes(), 0644); err != nil {
		return errors.New("E160").Wrap(err)
	}
	success(cmd.OutOrStdout(), "Wrote %s (%d bytes)", cfg.Output.Path, buf.Len())
	return nil
}

// renderReport runs the demo report on the surface for format.
func renderReport(ctx context.Context, cfg *config.Config, format report.Format, w io.Writer) error {
	surface, err := report.NewSurface(format, w, report.SurfaceOptions{
		Lang:    cfg.Page.Lang,
		Pretty:  cfg.Output.Pretty,
		Glamour: cfg.Output.Glamour,
		NoColor: cfg.Output.NoColor,
	})
	if err != nil {
		return errors.New("E004").Wrap(err)
	}

	run := func(context.Context) error { return report.Run(surface) }
	if cfg.TracingEnabled() {
		tracer := middleware.NewTracer(middleware.WithTracerName(cfg.Tracing.TracerName))
		err = tracer.TraceRender(ctx, string(format), run)
	} else {
		err = run(ctx)
	}
	if err != nil {
		return errors.FromError(err, "E003")
	}

	slog.Debug("report rendered", "format", format)
	return nil
}

func parseFormat(name string) (report.Format, error) {
	format, err := report.ParseFormat(name)
	if err != nil {
		return "", errors.New("E004").
			WithDetail("Unknown output format " + strconv.Quote(name))
	}
	return format, nil
}
