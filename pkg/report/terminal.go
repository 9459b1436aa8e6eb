package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/vango-dev/reportdemo/pkg/toast"
)

// TerminalOptions configures a TerminalSurface.
type TerminalOptions struct {
	// NoColor disables all ANSI styling, regardless of what the output
	// supports.
	NoColor bool
}

// TerminalSurface writes each element to a terminal as soon as it arrives.
// Tables are drawn with box characters.
type TerminalSurface struct {
	w io.Writer

	heading lipgloss.Style
	text    lipgloss.Style
	success lipgloss.Style
	border  lipgloss.Style
	header  lipgloss.Style
	cell    lipgloss.Style

	wrote      bool
	afterBlock bool
}

// NewTerminalSurface creates a terminal surface writing to w. Colors are
// used only when w is a terminal that supports them.
func NewTerminalSurface(w io.Writer, opts TerminalOptions) *TerminalSurface {
	s := &TerminalSurface{w: w}
	if opts.NoColor {
		plain := lipgloss.NewStyle()
		s.heading, s.text, s.success, s.border = plain, plain, plain, plain
		s.cell = plain.Padding(0, 1)
		s.header = s.cell
		return s
	}

	r := lipgloss.NewRenderer(w)
	s.heading = r.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	s.text = r.NewStyle()
	s.success = r.NewStyle().Foreground(lipgloss.Color("42"))
	s.border = r.NewStyle().Foreground(lipgloss.Color("240"))
	s.cell = r.NewStyle().Padding(0, 1)
	s.header = s.cell.Bold(true)
	return s
}

// begin starts a new element. Block elements (headings, tables) are set
// off from their neighbours by a blank line; consecutive lines of text and
// the success line are not.
func (s *TerminalSurface) begin(block bool) error {
	blank := s.wrote && (block || s.afterBlock)
	s.wrote = true
	s.afterBlock = block
	if !blank {
		return nil
	}
	_, err := fmt.Fprintln(s.w)
	return err
}

// WriteHeading implements Surface.
func (s *TerminalSurface) WriteHeading(text string) error {
	if err := s.begin(true); err != nil {
		return err
	}
	_, err := fmt.Fprintln(s.w, s.heading.Render(text))
	return err
}

// WriteText implements Surface.
func (s *TerminalSurface) WriteText(text string) error {
	if err := s.begin(false); err != nil {
		return err
	}
	_, err := fmt.Fprintln(s.w, s.text.Render(text))
	return err
}

// WriteTable implements Surface.
func (s *TerminalSurface) WriteTable(t *Frame) error {
	if err := s.begin(true); err != nil {
		return err
	}
	_, err := fmt.Fprintln(s.w, s.table(t).String())
	return err
}

// WriteSuccess implements Surface.
func (s *TerminalSurface) WriteSuccess(text string) error {
	if err := s.begin(false); err != nil {
		return err
	}
	_, err := fmt.Fprintln(s.w, s.success.Render(toast.Icon(toast.TypeSuccess)+" "+text))
	return err
}

func (s *TerminalSurface) table(t *Frame) *table.Table {
	numeric := make([]bool, t.Width())
	for c := range numeric {
		numeric[c] = t.Numeric(c)
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(s.border).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return s.header
			}
			if col < len(numeric) && numeric[col] {
				return s.cell.Align(lipgloss.Right)
			}
			return s.cell
		}).
		Headers(t.Columns()...).
		Rows(t.Strings()...)
}
