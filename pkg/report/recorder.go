package report

import (
	"encoding/json"
	"io"
)

// Element is a recorded report element.
type Element struct {
	Kind    Kind     `json:"kind"`
	Text    string   `json:"text,omitempty"`
	Columns []string `json:"columns,omitempty"`
	Rows    [][]any  `json:"rows,omitempty"`
}

// Recorder is a Surface that keeps every element in memory, in order.
// The zero value is ready to use.
type Recorder struct {
	Elements []Element
}

// WriteHeading implements Surface.
func (r *Recorder) WriteHeading(text string) error {
	r.Elements = append(r.Elements, Element{Kind: KindHeading, Text: text})
	return nil
}

// WriteText implements Surface.
func (r *Recorder) WriteText(text string) error {
	r.Elements = append(r.Elements, Element{Kind: KindText, Text: text})
	return nil
}

// WriteTable implements Surface.
func (r *Recorder) WriteTable(t *Frame) error {
	r.Elements = append(r.Elements, Element{
		Kind:    KindTable,
		Columns: t.Columns(),
		Rows:    t.Rows(),
	})
	return nil
}

// WriteSuccess implements Surface.
func (r *Recorder) WriteSuccess(text string) error {
	r.Elements = append(r.Elements, Element{Kind: KindSuccess, Text: text})
	return nil
}

// JSONSurface records elements and writes them as one JSON document on
// Close:
//
//	{"elements":[{"kind":"heading","text":"..."}, ...]}
type JSONSurface struct {
	Recorder
	w      io.Writer
	indent bool
}

// NewJSONSurface creates a JSON surface writing to w.
func NewJSONSurface(w io.Writer, indent bool) *JSONSurface {
	return &JSONSurface{w: w, indent: indent}
}

// Close writes the recorded elements.
func (s *JSONSurface) Close() error {
	enc := json.NewEncoder(s.w)
	enc.SetEscapeHTML(false)
	if s.indent {
		enc.SetIndent("", "  ")
	}
	elements := s.Elements
	if elements == nil {
		elements = []Element{}
	}
	return enc.Encode(struct {
		Elements []Element `json:"elements"`
	}{elements})
}
