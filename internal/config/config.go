package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vango-dev/reportdemo/internal/errors"
)

const (
	// ConfigBaseName is the file name of the configuration without extension.
	ConfigBaseName = "reportdemo"

	// DefaultFormat is the default output format.
	DefaultFormat = "terminal"

	// DefaultHost is the default server host.
	DefaultHost = "localhost"

	// DefaultPort is the default server port.
	DefaultPort = 8501

	// DefaultShutdownTimeout is the default graceful shutdown timeout.
	DefaultShutdownTimeout = "10s"

	// DefaultNamespace is the default metrics namespace and tracer name.
	DefaultNamespace = "reportdemo"

	// DefaultLang is the default document language.
	DefaultLang = "es"
)

// ConfigFileNames are the file names searched for, in order.
var ConfigFileNames = []string{
	ConfigBaseName + ".json",
	ConfigBaseName + ".yaml",
	ConfigBaseName + ".yml",
}

// Formats lists the supported output formats.
var Formats = []string{"terminal", "html", "markdown", "json"}

// Config represents the complete reportdemo configuration.
type Config struct {
	// Output controls the render command.
	Output OutputConfig `json:"output,omitempty" yaml:"output,omitempty"`

	// Server controls the serve command.
	Server ServerConfig `json:"server,omitempty" yaml:"server,omitempty"`

	// Metrics controls Prometheus instrumentation.
	Metrics MetricsConfig `json:"metrics,omitempty" yaml:"metrics,omitempty"`

	// Tracing controls OpenTelemetry spans.
	Tracing TracingConfig `json:"tracing,omitempty" yaml:"tracing,omitempty"`

	// Publish controls the publish command.
	Publish PublishConfig `json:"publish,omitempty" yaml:"publish,omitempty"`

	// Page holds document-level settings.
	Page PageConfig `json:"page,omitempty" yaml:"page,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// OutputConfig contains render settings.
type OutputConfig struct {
	// Format is one of terminal, html, markdown, json.
	Format string `json:"format,omitempty" yaml:"format,omitempty"`

	// Path is the output file. Empty means stdout.
	Path string `json:"path,omitempty" yaml:"path,omitempty"`

	// Pretty indents HTML and JSON output.
	Pretty bool `json:"pretty,omitempty" yaml:"pretty,omitempty"`

	// Glamour renders Markdown for the terminal.
	Glamour bool `json:"glamour,omitempty" yaml:"glamour,omitempty"`

	// NoColor disables ANSI styling on the terminal surface.
	NoColor bool `json:"noColor,omitempty" yaml:"noColor,omitempty"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	// Host is the host to bind to.
	Host string `json:"host,omitempty" yaml:"host,omitempty"`

	// Port is the port to listen on.
	Port int `json:"port,omitempty" yaml:"port,omitempty"`

	// ShutdownTimeout is the graceful shutdown timeout (e.g., "10s").
	ShutdownTimeout string `json:"shutdownTimeout,omitempty" yaml:"shutdownTimeout,omitempty"`
}

// MetricsConfig contains Prometheus settings.
type MetricsConfig struct {
	// Enabled exposes /metrics and records render metrics.
	Enabled *bool `json:"enabled,omitempty" yaml:"enabled,omitempty"`

	// Namespace is the metric name prefix.
	Namespace string `json:"namespace,omitempty" yaml:"namespace,omitempty"`
}

// TracingConfig contains OpenTelemetry settings.
type TracingConfig struct {
	// Enabled wraps requests and renders in spans.
	Enabled *bool `json:"enabled,omitempty" yaml:"enabled,omitempty"`

	// TracerName is the instrumentation scope name.
	TracerName string `json:"tracerName,omitempty" yaml:"tracerName,omitempty"`
}

// PublishConfig contains object storage settings.
type PublishConfig struct {
	// Bucket is the S3 bucket receiving published reports.
	Bucket string `json:"bucket,omitempty" yaml:"bucket,omitempty"`

	// Prefix is prepended to object keys.
	Prefix string `json:"prefix,omitempty" yaml:"prefix,omitempty"`

	// Region is the AWS region of the bucket.
	Region string `json:"region,omitempty" yaml:"region,omitempty"`

	// Format is the published format (html, markdown or json).
	Format string `json:"format,omitempty" yaml:"format,omitempty"`
}

// PageConfig contains document settings.
type PageConfig struct {
	// Lang is the HTML lang attribute.
	Lang string `json:"lang,omitempty" yaml:"lang,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Find returns the path of the first configuration file present in dir,
// or "" when there is none.
func Find(dir string) string {
	for _, name := range ConfigFileNames {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// Load reads configuration from the specified directory.
func Load(dir string) (*Config, error) {
	path := Find(dir)
	if path == "" {
		return nil, errors.New("E102").
			WithDetail("No " + strings.Join(ConfigFileNames, ", ") + " found in " + dir)
	}
	return LoadFile(path)
}

// LoadOrDefault is like Load but returns the defaults when dir holds no
// configuration file.
func LoadOrDefault(dir string) (*Config, error) {
	path := Find(dir)
	if path == "" {
		return New(), nil
	}
	return LoadFile(path)
}

// LoadFromWorkingDir loads the configuration of the current directory,
// falling back to defaults.
func LoadFromWorkingDir() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, errors.New("E100").Wrap(err)
	}
	return LoadOrDefault(wd)
}

// LoadFile reads configuration from the specified file path. The format is
// chosen by extension: .yaml and .yml are YAML, anything else JSON.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E102").WithDetail("No configuration at " + path)
		}
		return nil, errors.New("E100").Wrap(err)
	}

	cfg := &Config{}
	if isYAML(path) {
		err = yaml.Unmarshal(data, cfg)
	} else {
		err = json.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, errors.New("E100").
			WithDetail("Failed to parse " + filepath.Base(path) + ": " + err.Error())
	}

	cfg.configPath = path
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveTo writes the configuration to the specified path, as YAML or JSON
// depending on the extension.
func (c *Config) SaveTo(path string) error {
	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
		data = append(data, '\n')
	}
	if err != nil {
		return errors.New("E100").Wrap(err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("E100").Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Output.Format == "" {
		c.Output.Format = DefaultFormat
	}

	if c.Server.Host == "" {
		c.Server.Host = DefaultHost
	}
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if c.Server.ShutdownTimeout == "" {
		c.Server.ShutdownTimeout = DefaultShutdownTimeout
	}

	if c.Metrics.Enabled == nil {
		c.Metrics.Enabled = boolPtr(true)
	}
	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = DefaultNamespace
	}

	if c.Tracing.Enabled == nil {
		c.Tracing.Enabled = boolPtr(true)
	}
	if c.Tracing.TracerName == "" {
		c.Tracing.TracerName = DefaultNamespace
	}

	if c.Publish.Format == "" {
		c.Publish.Format = "html"
	}

	if c.Page.Lang == "" {
		c.Page.Lang = DefaultLang
	}
}

func boolPtr(b bool) *bool { return &b }

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if !ValidFormat(c.Output.Format) {
		return errors.New("E004").
			WithDetail("Unknown output format " + strconv.Quote(c.Output.Format))
	}
	if c.Publish.Format == "terminal" || !ValidFormat(c.Publish.Format) {
		return errors.New("E101").
			WithDetail("publish.format must be html, markdown or json, got " + strconv.Quote(c.Publish.Format))
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return errors.New("E101").
			WithDetail("server.port must be between 0 and 65535")
	}
	if d, err := time.ParseDuration(c.Server.ShutdownTimeout); err != nil || d <= 0 {
		return errors.New("E101").
			WithDetail("server.shutdownTimeout must be a positive duration such as \"10s\", got " + strconv.Quote(c.Server.ShutdownTimeout))
	}
	return nil
}

// ValidFormat reports whether f is a supported output format.
func ValidFormat(f string) bool {
	for _, known := range Formats {
		if f == known {
			return true
		}
	}
	return false
}

// Address returns the listen address.
func (s ServerConfig) Address() string {
	return s.Host + ":" + strconv.Itoa(s.Port)
}

// URL returns the base URL of the server.
func (s ServerConfig) URL() string {
	return "http://" + s.Address()
}

// ShutdownDuration returns the parsed shutdown timeout. Invalid values,
// which Validate rejects, fall back to the default.
func (s ServerConfig) ShutdownDuration() time.Duration {
	d, err := time.ParseDuration(s.ShutdownTimeout)
	if err != nil || d <= 0 {
		d, _ = time.ParseDuration(DefaultShutdownTimeout)
	}
	return d
}

// MetricsEnabled reports whether metrics are on.
func (c *Config) MetricsEnabled() bool {
	return c.Metrics.Enabled == nil || *c.Metrics.Enabled
}

// TracingEnabled reports whether tracing is on.
func (c *Config) TracingEnabled() bool {
	return c.Tracing.Enabled == nil || *c.Tracing.Enabled
}
