package report

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// Format names an output surface.
type Format string

const (
	FormatTerminal Format = "terminal"
	FormatHTML     Format = "html"
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
)

// Formats lists every supported format.
var Formats = []Format{FormatTerminal, FormatHTML, FormatMarkdown, FormatJSON}

// ErrUnknownFormat is returned for a format name that has no surface.
var ErrUnknownFormat = errors.New("report: unknown format")

// ParseFormat resolves a format name. "md" and "txt" are accepted as
// aliases.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "terminal", "txt", "text":
		return FormatTerminal, nil
	case "html":
		return FormatHTML, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("%w %q", ErrUnknownFormat, name)
}

// ContentType returns the MIME type of documents in this format.
func (f Format) ContentType() string {
	switch f {
	case FormatHTML:
		return "text/html; charset=utf-8"
	case FormatMarkdown:
		return "text/markdown; charset=utf-8"
	case FormatJSON:
		return "application/json"
	default:
		return "text/plain; charset=utf-8"
	}
}

// FileName returns the conventional file name of a report in this format.
func (f Format) FileName() string {
	switch f {
	case FormatHTML:
		return "report.html"
	case FormatMarkdown:
		return "report.md"
	case FormatJSON:
		return "report.json"
	default:
		return "report.txt"
	}
}

// SurfaceOptions are the settings shared by NewSurface across formats.
// Options that do not apply to a format are ignored.
type SurfaceOptions struct {
	Lang    string
	Pretty  bool
	Glamour bool
	NoColor bool
}

// NewSurface creates the surface for format writing to w.
func NewSurface(format Format, w io.Writer, opts SurfaceOptions) (Surface, error) {
	switch format {
	case FormatTerminal:
		return NewTerminalSurface(w, TerminalOptions{NoColor: opts.NoColor}), nil
	case FormatHTML:
		return NewHTMLSurface(w, HTMLOptions{Lang: opts.Lang, Pretty: opts.Pretty}), nil
	case FormatMarkdown:
		return NewMarkdownSurface(w, MarkdownOptions{Glamour: opts.Glamour}), nil
	case FormatJSON:
		return NewJSONSurface(w, opts.Pretty), nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownFormat, format)
}
