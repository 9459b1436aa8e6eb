package report

import (
	"errors"
	"io"

	"github.com/vango-dev/reportdemo/pkg/render"
	"github.com/vango-dev/reportdemo/pkg/toast"
	"github.com/vango-dev/reportdemo/pkg/vdom"
)

// ErrSurfaceClosed is returned by writes after Close.
var ErrSurfaceClosed = errors.New("report: surface closed")

// HTMLOptions configures an HTMLSurface.
type HTMLOptions struct {
	// Lang is the document language. Defaults to "es".
	Lang string

	// Pretty enables indented HTML output.
	Pretty bool
}

// pageStyles is the stylesheet embedded in every HTML report.
const pageStyles = `body{font-family:system-ui,sans-serif;max-width:48rem;margin:2rem auto;padding:0 1rem;color:#262730}` +
	`table.dataframe{border-collapse:collapse;margin:1rem 0}` +
	`table.dataframe th,table.dataframe td{border:1px solid #e6e9ef;padding:.25rem .75rem}` +
	`table.dataframe th{background:#f0f2f6;text-align:left}` +
	`table.dataframe td.num{text-align:right}`

// HTMLSurface collects elements into a vdom tree and writes a complete
// HTML page on Close.
type HTMLSurface struct {
	w        io.Writer
	opts     HTMLOptions
	renderer *render.Renderer
	title    string
	body     []*vdom.VNode
	closed   bool
}

// NewHTMLSurface creates an HTML surface writing to w.
func NewHTMLSurface(w io.Writer, opts HTMLOptions) *HTMLSurface {
	if opts.Lang == "" {
		opts.Lang = "es"
	}
	return &HTMLSurface{
		w:        w,
		opts:     opts,
		renderer: render.NewRenderer(render.RendererConfig{Pretty: opts.Pretty}),
	}
}

func (s *HTMLSurface) add(n *vdom.VNode) error {
	if s.closed {
		return ErrSurfaceClosed
	}
	s.body = append(s.body, n)
	return nil
}

// WriteHeading implements Surface. The first heading also becomes the
// document title.
func (s *HTMLSurface) WriteHeading(text string) error {
	if s.title == "" && !s.closed {
		s.title = text
	}
	return s.add(vdom.H1(text))
}

// WriteText implements Surface.
func (s *HTMLSurface) WriteText(text string) error {
	return s.add(vdom.P(text))
}

// WriteTable implements Surface.
func (s *HTMLSurface) WriteTable(t *Frame) error {
	return s.add(TableNode(t))
}

// WriteSuccess implements Surface.
func (s *HTMLSurface) WriteSuccess(text string) error {
	return s.add(toast.Success(text))
}

// Body returns the page body built so far.
func (s *HTMLSurface) Body() *vdom.VNode {
	return vdom.Main(vdom.Class("report"), s.body)
}

// Close renders the page. Further writes fail with ErrSurfaceClosed.
func (s *HTMLSurface) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return s.renderer.RenderPage(s.w, render.PageData{
		Title:  s.title,
		Lang:   s.opts.Lang,
		Meta:   []render.MetaTag{{Name: "generator", Content: "reportdemo"}},
		Styles: []string{pageStyles, toast.Stylesheet},
		Body:   s.Body(),
	})
}

// TableNode builds the HTML table for t: a header row with the column
// names followed by one row per record. Numeric columns get class "num".
func TableNode(t *Frame) *vdom.VNode {
	numeric := make([]bool, t.Width())
	for c := range numeric {
		numeric[c] = t.Numeric(c)
	}

	head := vdom.Tr(vdom.Range(t.Columns(), func(name string, _ int) *vdom.VNode {
		return vdom.Th(vdom.Scope("col"), name)
	}))

	body := vdom.Range(t.Strings(), func(row []string, _ int) *vdom.VNode {
		return vdom.Tr(vdom.Range(row, func(cell string, c int) *vdom.VNode {
			if numeric[c] {
				return vdom.Td(vdom.Class("num"), cell)
			}
			return vdom.Td(cell)
		}))
	})

	return vdom.Table(
		vdom.Class("dataframe"),
		vdom.Thead(head),
		vdom.Tbody(body),
	)
}
