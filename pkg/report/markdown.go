package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/vango-dev/reportdemo/pkg/toast"
)

// MarkdownOptions configures a MarkdownSurface.
type MarkdownOptions struct {
	// Glamour renders the Markdown for a terminal instead of writing the
	// source text.
	Glamour bool

	// Style is the glamour style name. Defaults to "notty", which does not
	// depend on the terminal and always renders the same bytes.
	Style string

	// WordWrap is the glamour wrap width. Defaults to 80.
	WordWrap int
}

// MarkdownSurface buffers GitHub-flavoured Markdown and writes it on Close.
type MarkdownSurface struct {
	w      io.Writer
	opts   MarkdownOptions
	blocks []string
	closed bool
}

// NewMarkdownSurface creates a Markdown surface writing to w.
func NewMarkdownSurface(w io.Writer, opts MarkdownOptions) *MarkdownSurface {
	if opts.Style == "" {
		opts.Style = "notty"
	}
	if opts.WordWrap <= 0 {
		opts.WordWrap = 80
	}
	return &MarkdownSurface{w: w, opts: opts}
}

func (s *MarkdownSurface) add(block string) error {
	if s.closed {
		return ErrSurfaceClosed
	}
	s.blocks = append(s.blocks, block)
	return nil
}

// WriteHeading implements Surface.
func (s *MarkdownSurface) WriteHeading(text string) error {
	return s.add("# " + escapeMarkdown(text))
}

// WriteText implements Surface.
func (s *MarkdownSurface) WriteText(text string) error {
	return s.add(escapeMarkdown(text))
}

// WriteTable implements Surface.
func (s *MarkdownSurface) WriteTable(t *Frame) error {
	return s.add(MarkdownTable(t))
}

// WriteSuccess implements Surface.
func (s *MarkdownSurface) WriteSuccess(text string) error {
	return s.add("> " + toast.Icon(toast.TypeSuccess) + " " + escapeMarkdown(text))
}

// Markdown returns the document built so far.
func (s *MarkdownSurface) Markdown() string {
	if len(s.blocks) == 0 {
		return ""
	}
	return strings.Join(s.blocks, "\n\n") + "\n"
}

// Close writes the document.
func (s *MarkdownSurface) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	out := s.Markdown()
	if s.opts.Glamour {
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(s.opts.Style),
			glamour.WithWordWrap(s.opts.WordWrap),
		)
		if err != nil {
			return fmt.Errorf("markdown renderer: %w", err)
		}
		if out, err = r.Render(out); err != nil {
			return fmt.Errorf("markdown render: %w", err)
		}
	}
	_, err := io.WriteString(s.w, out)
	return err
}

// MarkdownTable formats t as a GFM pipe table. Numeric columns are
// right-aligned.
func MarkdownTable(t *Frame) string {
	var b strings.Builder

	b.WriteString("|")
	for _, name := range t.Columns() {
		b.WriteString(" " + escapeCell(name) + " |")
	}
	b.WriteString("\n|")
	for c := 0; c < t.Width(); c++ {
		if t.Numeric(c) {
			b.WriteString(" ---: |")
		} else {
			b.WriteString(" --- |")
		}
	}
	for _, row := range t.Strings() {
		b.WriteString("\n|")
		for _, cell := range row {
			b.WriteString(" " + escapeCell(cell) + " |")
		}
	}
	return b.String()
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	"*", `\*`,
	"_", `\_`,
	"[", `\[`,
	"]", `\]`,
	"<", `\<`,
	">", `\>`,
	"#", `\#`,
	"|", `\|`,
)

func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}

func escapeCell(s string) string {
	return strings.ReplaceAll(escapeMarkdown(s), "\n", " ")
}
