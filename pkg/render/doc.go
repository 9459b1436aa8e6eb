// Package render provides server-side rendering of vdom trees to HTML.
//
// The render package converts VNode trees into HTML strings or streams:
//
//   - Text and attribute escaping
//   - Void element handling (meta, br, col, etc.)
//   - Boolean attribute handling (hidden, disabled, etc.)
//   - Sorted attributes, so the same tree always yields the same bytes
//   - Full page rendering with DOCTYPE, head and body
//
// # Basic Usage
//
//	renderer := render.NewRenderer(render.RendererConfig{})
//	html, err := renderer.RenderToString(node)
//
// # Full Page Rendering
//
//	err := renderer.RenderPage(w, render.PageData{
//	    Title: "Report",
//	    Body:  body,
//	})
//
// All text content and attribute values are escaped.
package render
