package render

import (
	"errors"
	"strings"
	"testing"

	"github.com/vango-dev/reportdemo/pkg/vdom"
)

func TestRenderText(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	html, err := renderer.RenderToString(vdom.Text("¡Hola desde Snowflake!"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != "¡Hola desde Snowflake!" {
		t.Errorf("got %q", html)
	}
}

func TestRenderTextEscaping(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	html, err := renderer.RenderToString(vdom.Text("<script>alert('xss')</script>"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(html, "<script>") {
		t.Errorf("HTML should be escaped, got %q", html)
	}
	if !strings.Contains(html, "&lt;script&gt;alert(&#39;xss&#39;)") {
		t.Errorf("should contain escaped script tag, got %q", html)
	}
}

func TestRenderElement(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	node := vdom.Div(vdom.Class("container"),
		vdom.H1(vdom.Text("Title")),
		vdom.P(vdom.Text("Content")),
	)
	html, err := renderer.RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := `<div class="container"><h1>Title</h1><p>Content</p></div>`
	if html != want {
		t.Errorf("got %q, want %q", html, want)
	}
}

func TestRenderAttributesSorted(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	node := vdom.Div(
		vdom.Role("status"),
		vdom.Class("toast"),
		vdom.ID("done"),
		vdom.Data("level", "success"),
		vdom.Attribute("_internal", "skip"),
		vdom.Attribute("empty", ""),
	)
	html, err := renderer.RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := `<div class="toast" data-level="success" id="done" role="status"></div>`
	if html != want {
		t.Errorf("got %q, want %q", html, want)
	}
}

func TestRenderBooleanAttributes(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	on, _ := renderer.RenderToString(vdom.Div(vdom.Hidden(true)))
	if on != "<div hidden></div>" {
		t.Errorf("hidden=true rendered %q", on)
	}
	off, _ := renderer.RenderToString(vdom.Div(vdom.Hidden(false)))
	if off != "<div></div>" {
		t.Errorf("hidden=false rendered %q", off)
	}
	aria, _ := renderer.RenderToString(vdom.Span(vdom.AriaHidden(true)))
	if aria != `<span aria-hidden="true"></span>` {
		t.Errorf("aria-hidden rendered %q", aria)
	}
}

func TestRenderAttributeEscaping(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	html, _ := renderer.RenderToString(vdom.Div(vdom.Attribute("title", "a\"b\nc")))
	if html != `<div title="a&quot;b&#10;c"></div>` {
		t.Errorf("got %q", html)
	}
}

func TestRenderAttributeValues(t *testing.T) {
	tests := []struct {
		value any
		want  string
	}{
		{"x", "x"},
		{3, "3"},
		{int64(42), "42"},
		{1.5, "1.5"},
		{true, "true"},
		{nil, ""},
		{uint8(7), "7"},
	}
	for _, tt := range tests {
		if got := attrToString(tt.value); got != tt.want {
			t.Errorf("attrToString(%v) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestRenderVoidElement(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	br := &vdom.VNode{Kind: vdom.KindElement, Tag: "br", Props: vdom.Props{}}
	html, _ := renderer.RenderToString(vdom.P("a", br, "b"))
	if html != "<p>a<br>b</p>" {
		t.Errorf("got %q", html)
	}
}

func TestRenderNil(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	html, err := renderer.RenderToString(nil)
	if err != nil || html != "" {
		t.Errorf("got %q, %v", html, err)
	}
}

func TestRenderUnknownKind(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	_, err := renderer.RenderToString(&vdom.VNode{Kind: vdom.VKind(42)})
	if err == nil || !strings.Contains(err.Error(), "unknown node kind") {
		t.Errorf("expected unknown kind error, got %v", err)
	}
}

func TestRenderElementWithoutTag(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	_, err := renderer.RenderToString(&vdom.VNode{Kind: vdom.KindElement})
	if err == nil {
		t.Error("expected error for element without tag")
	}
}

func TestRenderPrettyTable(t *testing.T) {
	renderer := NewRenderer(RendererConfig{Pretty: true})

	node := vdom.Table(
		vdom.Tr(vdom.Th("Columna1"), vdom.Th("Columna2")),
		vdom.Tr(vdom.Td("1"), vdom.Td("A")),
	)
	html, err := renderer.RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "<table>\n" +
		"  <tr>\n" +
		"    <th>Columna1</th>\n" +
		"    <th>Columna2</th>\n" +
		"  </tr>\n" +
		"  <tr>\n" +
		"    <td>1</td>\n" +
		"    <td>A</td>\n" +
		"  </tr>\n" +
		"</table>\n"
	if html != want {
		t.Errorf("got:\n%s\nwant:\n%s", html, want)
	}
}

func TestRenderDeterministic(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})
	build := func() *vdom.VNode {
		return vdom.Div(vdom.ID("a"), vdom.Class("b"), vdom.Role("c"), vdom.Data("d", "e"), "text")
	}

	first, _ := renderer.RenderToString(build())
	for i := 0; i < 20; i++ {
		again, _ := renderer.RenderToString(build())
		if again != first {
			t.Fatalf("render %d differs: %q vs %q", i, again, first)
		}
	}
}

type failingWriter struct {
	after int
	n     int
}

var errWriteFailed = errors.New("write failed")

func (f *failingWriter) Write(p []byte) (int, error) {
	if f.n >= f.after {
		return 0, errWriteFailed
	}
	f.n++
	return len(p), nil
}

func TestRenderWriterError(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	err := renderer.RenderToWriter(&failingWriter{after: 2}, vdom.Div(vdom.P("x"), vdom.P("y")))
	if !errors.Is(err, errWriteFailed) {
		t.Errorf("expected write error, got %v", err)
	}
}
