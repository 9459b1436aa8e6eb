package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vango-dev/reportdemo/internal/errors"
)

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.Output.Format != DefaultFormat {
		t.Errorf("Output.Format = %q, want %q", cfg.Output.Format, DefaultFormat)
	}
	if cfg.Server.Port != DefaultPort {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, DefaultPort)
	}
	if cfg.Server.Host != DefaultHost {
		t.Errorf("Server.Host = %q, want %q", cfg.Server.Host, DefaultHost)
	}
	if !cfg.MetricsEnabled() || !cfg.TracingEnabled() {
		t.Error("metrics and tracing should default to enabled")
	}
	if cfg.Page.Lang != "es" {
		t.Errorf("Page.Lang = %q", cfg.Page.Lang)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadMissing(t *testing.T) {
	tmpDir := t.TempDir()

	_, err := Load(tmpDir)
	if errors.Code(err) != "E102" {
		t.Errorf("Load() error = %v, want E102", err)
	}

	cfg, err := LoadOrDefault(tmpDir)
	if err != nil {
		t.Fatalf("LoadOrDefault() error: %v", err)
	}
	if cfg.Path() != "" || cfg.Output.Format != DefaultFormat {
		t.Errorf("LoadOrDefault should return defaults, got %+v", cfg)
	}
}

func TestLoadJSON(t *testing.T) {
	tmpDir := t.TempDir()
	configJSON := `{
  "output": {"format": "html", "pretty": true},
  "server": {"host": "0.0.0.0", "port": 8080, "shutdownTimeout": "3s"},
  "metrics": {"enabled": false},
  "publish": {"bucket": "reports", "prefix": "demo/"}
}
`
	path := filepath.Join(tmpDir, "reportdemo.json")
	if err := os.WriteFile(path, []byte(configJSON), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Output.Format != "html" || !cfg.Output.Pretty {
		t.Errorf("Output = %+v", cfg.Output)
	}
	if cfg.Server.Address() != "0.0.0.0:8080" {
		t.Errorf("Address() = %q", cfg.Server.Address())
	}
	if cfg.Server.ShutdownDuration() != 3*time.Second {
		t.Errorf("ShutdownDuration() = %v", cfg.Server.ShutdownDuration())
	}
	if cfg.MetricsEnabled() {
		t.Error("metrics should be disabled")
	}
	if !cfg.TracingEnabled() {
		t.Error("tracing should keep its default")
	}
	if cfg.Publish.Bucket != "reports" || cfg.Publish.Format != "html" {
		t.Errorf("Publish = %+v", cfg.Publish)
	}
	if cfg.Path() != path {
		t.Errorf("Path() = %q, want %q", cfg.Path(), path)
	}
}

func TestLoadYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configYAML := `output:
  format: markdown
  glamour: true
server:
  port: 9000
tracing:
  enabled: false
  tracerName: demo
page:
  lang: en
`
	if err := os.WriteFile(filepath.Join(tmpDir, "reportdemo.yaml"), []byte(configYAML), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Output.Format != "markdown" || !cfg.Output.Glamour {
		t.Errorf("Output = %+v", cfg.Output)
	}
	if cfg.Server.Port != 9000 || cfg.Server.Host != DefaultHost {
		t.Errorf("Server = %+v", cfg.Server)
	}
	if cfg.TracingEnabled() || cfg.Tracing.TracerName != "demo" {
		t.Errorf("Tracing = %+v", cfg.Tracing)
	}
	if cfg.Page.Lang != "en" {
		t.Errorf("Page.Lang = %q", cfg.Page.Lang)
	}
}

func TestFindPrefersJSON(t *testing.T) {
	tmpDir := t.TempDir()
	for _, name := range []string{"reportdemo.yml", "reportdemo.json"} {
		if err := os.WriteFile(filepath.Join(tmpDir, name), []byte("{}"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	if got := Find(tmpDir); filepath.Base(got) != "reportdemo.json" {
		t.Errorf("Find() = %q, want reportdemo.json", got)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		content  string
		wantCode string
		wantText string
	}{
		{"bad json", "reportdemo.json", `{"output": `, "E100", "reportdemo.json"},
		{"bad yaml", "reportdemo.yaml", "output: [", "E100", "reportdemo.yaml"},
		{"bad format", "reportdemo.json", `{"output": {"format": "pdf"}}`, "E004", `"pdf"`},
		{"bad port", "reportdemo.json", `{"server": {"port": 70000}}`, "E101", "server.port"},
		{"bad timeout", "reportdemo.json", `{"server": {"shutdownTimeout": "soon"}}`, "E101", "shutdownTimeout"},
		{"terminal publish", "reportdemo.json", `{"publish": {"format": "terminal"}}`, "E101", "publish.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			if err := os.WriteFile(filepath.Join(tmpDir, tt.file), []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}

			_, err := Load(tmpDir)
			if errors.Code(err) != tt.wantCode {
				t.Fatalf("Load() error = %v, want code %s", err, tt.wantCode)
			}
			var re *errors.ReportError
			errors.As(err, &re)
			if !strings.Contains(re.Detail, tt.wantText) {
				t.Errorf("Detail = %q, want it to mention %q", re.Detail, tt.wantText)
			}
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	for _, name := range []string{"reportdemo.json", "reportdemo.yml"} {
		t.Run(name, func(t *testing.T) {
			tmpDir := t.TempDir()
			cfg := New()
			cfg.Output.Format = "json"
			cfg.Publish.Bucket = "b"

			path := filepath.Join(tmpDir, name)
			if err := cfg.SaveTo(path); err != nil {
				t.Fatalf("SaveTo() error: %v", err)
			}

			loaded, err := LoadFile(path)
			if err != nil {
				t.Fatalf("LoadFile() error: %v", err)
			}
			if loaded.Output.Format != "json" || loaded.Publish.Bucket != "b" {
				t.Errorf("loaded = %+v", loaded)
			}
		})
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.json"))
	if errors.Code(err) != "E102" {
		t.Errorf("LoadFile() error = %v, want E102", err)
	}
}

func TestValidFormat(t *testing.T) {
	for _, f := range Formats {
		if !ValidFormat(f) {
			t.Errorf("%s should be valid", f)
		}
	}
	if ValidFormat("pdf") {
		t.Error("pdf should be invalid")
	}
}

func TestShutdownDurationFallback(t *testing.T) {
	s := ServerConfig{ShutdownTimeout: "bogus"}
	if s.ShutdownDuration() != 10*time.Second {
		t.Errorf("ShutdownDuration() = %v, want 10s", s.ShutdownDuration())
	}
	if s.URL() != "http://:0" {
		t.Errorf("URL() = %q", s.URL())
	}
}
