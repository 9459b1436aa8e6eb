package render

import (
	"io"

	"github.com/vango-dev/reportdemo/pkg/vdom"
)

// PageData contains all data needed to render a complete HTML page.
type PageData struct {
	// Body is the root VNode for the page content.
	Body *vdom.VNode

	// Title is the document title.
	Title string

	// Meta contains extra meta tags for the page.
	Meta []MetaTag

	// Styles contains inline CSS blocks placed in the head.
	Styles []string

	// Lang is the language attribute for the html element.
	// Defaults to "en" if not specified.
	Lang string
}

// MetaTag represents a meta element in the document head.
type MetaTag struct {
	Name    string
	Content string
}

// RenderPage renders a complete HTML document to the given writer.
func (r *Renderer) RenderPage(w io.Writer, page PageData) error {
	lang := page.Lang
	if lang == "" {
		lang = "en"
	}

	ew := &errWriter{w: w}
	ew.WriteString("<!DOCTYPE html>\n")
	ew.WriteString(`<html lang="` + escapeAttr(lang) + `">` + "\n")

	ew.WriteString("<head>\n")
	ew.WriteString(`  <meta charset="utf-8">` + "\n")
	ew.WriteString(`  <meta name="viewport" content="width=device-width, initial-scale=1">` + "\n")
	for _, meta := range page.Meta {
		if meta.Name == "" {
			continue
		}
		ew.WriteString(`  <meta name="` + escapeAttr(meta.Name) + `" content="` + escapeAttr(meta.Content) + `">` + "\n")
	}
	if page.Title != "" {
		ew.WriteString("  <title>" + escapeHTML(page.Title) + "</title>\n")
	}
	for _, style := range page.Styles {
		ew.WriteString("  <style>" + style + "</style>\n")
	}
	ew.WriteString("</head>\n")

	ew.WriteString("<body>\n")
	r.renderNode(ew, page.Body, 0)
	if !r.config.Pretty {
		ew.WriteString("\n")
	}
	ew.WriteString("</body>\n</html>\n")

	return ew.err
}
