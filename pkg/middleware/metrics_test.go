package middleware

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/vango-dev/reportdemo/pkg/report"
)

func newTestMetrics(t *testing.T) (*Metrics, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	return NewMetrics(WithRegistry(reg), WithNamespace("test")), reg
}

func TestHTTPMetricsUsesRoutePattern(t *testing.T) {
	m, _ := newTestMetrics(t)

	r := chi.NewRouter()
	r.Use(m.HTTP)
	r.Get("/report/{format}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})
	r.Get("/ok", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	for _, path := range []string{"/report/html", "/report/json", "/ok", "/missing"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	if got := testutil.ToFloat64(m.httpRequests.WithLabelValues("/report/{format}", "GET", "202")); got != 2 {
		t.Errorf("pattern route count = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.httpRequests.WithLabelValues("/ok", "GET", "200")); got != 1 {
		t.Errorf("implicit 200 count = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.httpRequests.WithLabelValues("unmatched", "GET", "404")); got != 1 {
		t.Errorf("unmatched count = %v, want 1", got)
	}
	if got := testutil.CollectAndCount(m.httpDuration); got != 3 {
		t.Errorf("duration series = %d, want 3", got)
	}
}

func TestRenderMetrics(t *testing.T) {
	m, _ := newTestMetrics(t)

	if err := m.Render("html", func() error { return nil }); err != nil {
		t.Fatal(err)
	}
	boom := errors.New("boom")
	if err := m.Render("html", func() error { return boom }); !errors.Is(err, boom) {
		t.Errorf("Render should return fn error, got %v", err)
	}

	if got := testutil.ToFloat64(m.rendersTotal.WithLabelValues("html", "success")); got != 1 {
		t.Errorf("success renders = %v", got)
	}
	if got := testutil.ToFloat64(m.rendersTotal.WithLabelValues("html", "error")); got != 1 {
		t.Errorf("error renders = %v", got)
	}
}

func TestInstrumentedSurfaceCountsElements(t *testing.T) {
	m, _ := newTestMetrics(t)

	var buf bytes.Buffer
	s := m.Surface(report.NewMarkdownSurface(&buf, report.MarkdownOptions{}))
	if err := report.Run(s); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	want := map[report.Kind]float64{
		report.KindHeading: 1,
		report.KindText:    2,
		report.KindTable:   1,
		report.KindSuccess: 1,
	}
	for kind, n := range want {
		if got := testutil.ToFloat64(m.elementsTotal.WithLabelValues(string(kind))); got != n {
			t.Errorf("elements_total{kind=%s} = %v, want %v", kind, got, n)
		}
	}
	if buf.Len() == 0 {
		t.Error("Close should be forwarded to the markdown surface")
	}
}

func TestInstrumentedSurfaceWithoutCloser(t *testing.T) {
	m, _ := newTestMetrics(t)

	s := m.Surface(&report.Recorder{})
	if err := s.Close(); err != nil {
		t.Errorf("Close on non-closer = %v", err)
	}
}

func TestMetricsRegisterOnRegistry(t *testing.T) {
	_, reg := newTestMetrics(t)

	families, err := reg.Gather()
	if err != nil {
		t.Fatal(err)
	}
	found := false
	for _, f := range families {
		if f.GetName() == "test_elements_total" {
			found = true
		}
	}
	if !found {
		t.Error("test_elements_total should be registered with pre-created series")
	}
}
