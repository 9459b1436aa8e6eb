package errors

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantMsg string
		wantCat Category
	}{
		{
			name:    "render error",
			code:    "E001",
			wantMsg: "Table columns have different lengths",
			wantCat: CategoryRender,
		},
		{
			name:    "config error",
			code:    "E100",
			wantMsg: "Invalid configuration file",
			wantCat: CategoryConfig,
		},
		{
			name:    "publish error",
			code:    "E141",
			wantMsg: "Upload to object storage failed",
			wantCat: CategoryPublish,
		},
		{
			name:    "unknown error code",
			code:    "E999",
			wantMsg: "Unknown error",
			wantCat: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code)
			if err.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", err.Message, tt.wantMsg)
			}
			if err.Category != tt.wantCat {
				t.Errorf("Category = %q, want %q", err.Category, tt.wantCat)
			}
			if err.Code != tt.code {
				t.Errorf("Code = %q, want %q", err.Code, tt.code)
			}
		})
	}
}

func TestWrapAndUnwrap(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := New("E141").Wrap(cause)

	if !Is(err, cause) {
		t.Error("wrapped cause should match errors.Is")
	}
	if got := err.Error(); got != "E141: Upload to object storage failed: connection refused" {
		t.Errorf("Error() = %q", got)
	}
}

func TestFromError(t *testing.T) {
	if FromError(nil, "E003") != nil {
		t.Error("FromError(nil) should be nil")
	}

	plain := stderrors.New("disk full")
	re := FromError(plain, "E160")
	if re.Code != "E160" || re.Wrapped != plain {
		t.Errorf("FromError wrapped = %+v", re)
	}

	existing := New("E004")
	wrapped := fmt.Errorf("rendering: %w", existing)
	if FromError(wrapped, "E003") != existing {
		t.Error("FromError should return the ReportError already in the chain")
	}
}

func TestCode(t *testing.T) {
	if Code(fmt.Errorf("x: %w", New("E120"))) != "E120" {
		t.Error("Code should find nested ReportError")
	}
	if Code(stderrors.New("plain")) != "" {
		t.Error("Code of plain error should be empty")
	}
}

func TestFormat(t *testing.T) {
	DisableColors()
	defer EnableColors()

	err := New("E004").
		WithDetail(`Unknown output format "pdf"`).
		Wrap(stderrors.New("bad flag"))
	out := err.Format()

	for _, want := range []string{
		"ERROR E004: Unknown output format",
		`Unknown output format "pdf"`,
		"Cause: bad flag",
		"Hint: Use one of: html, terminal, markdown, json",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Format() missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\033[") {
		t.Error("colors should be disabled")
	}
}

func TestFormatJSON(t *testing.T) {
	err := New("E140").Wrap(stderrors.New("empty"))

	var got map[string]string
	if jerr := json.Unmarshal([]byte(err.FormatJSON()), &got); jerr != nil {
		t.Fatalf("FormatJSON is not valid JSON: %v", jerr)
	}
	if got["code"] != "E140" || got["category"] != "publish" || got["cause"] != "empty" {
		t.Errorf("FormatJSON = %v", got)
	}
}

func TestFprint(t *testing.T) {
	DisableColors()
	defer EnableColors()

	var buf bytes.Buffer
	Fprint(&buf, stderrors.New("plain failure"))
	if !strings.Contains(buf.String(), "ERROR: plain failure") {
		t.Errorf("Fprint(plain) = %q", buf.String())
	}

	buf.Reset()
	Fprint(&buf, fmt.Errorf("ctx: %w", New("E120")))
	if !strings.Contains(buf.String(), "ERROR E120: Failed to start HTTP server") {
		t.Errorf("Fprint(coded) = %q", buf.String())
	}
}

func TestWrapText(t *testing.T) {
	if wrapText("", 10) != nil {
		t.Error("empty text should wrap to nil")
	}
	lines := wrapText("one two three four five", 9)
	for _, l := range lines {
		if len(l) > 9 {
			t.Errorf("line %q longer than width", l)
		}
	}
	if strings.Join(lines, " ") != "one two three four five" {
		t.Errorf("wrapped lines lost words: %v", lines)
	}
}

func TestRegistryCodesSorted(t *testing.T) {
	codes := GetAllCodes()
	for i := 1; i < len(codes); i++ {
		if codes[i-1] >= codes[i] {
			t.Fatalf("codes not sorted: %v", codes)
		}
	}
	for _, code := range codes {
		tmpl, _ := GetTemplate(code)
		if tmpl.Category == "" || tmpl.Message == "" {
			t.Errorf("%s has incomplete template", code)
		}
	}
}
