package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/reportdemo/internal/config"
	"github.com/vango-dev/reportdemo/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ┬─┐┌─┐┌─┐┌─┐┬─┐┌┬┐  ┌┬┐┌─┐┌┬┐┌─┐
  ├┬┘├┤ ├─┘│ │├┬┘ │    ││├┤ ││││ │
  ┴└─└─┘┴  └─┘┴└─ ┴   ─┴┘└─┘┴ ┴└─┘
`

// globalOptions are the persistent flags shared by every command.
type globalOptions struct {
	configPath string
	verbose    bool
	noColor    bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		errors.Fprint(stderr, err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	g := &globalOptions{}
	ro := &renderOptions{}

	rootCmd := &cobra.Command{
		Use:   "reportdemo",
		Short: "Render the demo data report",
		Long: `reportdemo renders a small, fixed data report: a title, two lines of
text, a five-row sample table and a success notice.

Run without a command to print the report to the terminal. Other
surfaces are available through the subcommands:

  • render   write the report as terminal text, HTML, Markdown or JSON
  • serve    serve every surface over HTTP and WebSocket
  • publish  upload a rendered report to S3`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupOutput(cmd.ErrOrStderr(), g)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, g, ro)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&g.configPath, "config", "c", "", "Configuration file (default: reportdemo.json in the working directory)")
	rootCmd.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&g.noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(
		renderCmd(g),
		serveCmd(g),
		publishCmd(g),
		versionCmd(),
	)

	return rootCmd
}

// setupOutput configures the default logger and error colors.
func setupOutput(stderr io.Writer, g *globalOptions) {
	level := slog.LevelInfo
	if g.verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))

	if g.noColor || os.Getenv("NO_COLOR") != "" {
		errors.DisableColors()
	} else {
		errors.EnableColors()
	}
}

// loadConfig reads --config when given, otherwise the configuration of the
// working directory or the defaults.
func loadConfig(g *globalOptions) (*config.Config, error) {
	if g.configPath != "" {
		return config.LoadFile(g.configPath)
	}
	return config.LoadFromWorkingDir()
}

// printBanner prints the ASCII art banner.
func printBanner(w io.Writer) {
	fmt.Fprint(w, banner)
}

// success prints a success message.
func success(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "  %s\n", fmt.Sprintf(format, args...))
}
