package toast

import "github.com/vango-dev/reportdemo/pkg/vdom"

// Type represents the notice level.
type Type string

const (
	TypeSuccess Type = "success"
	TypeError   Type = "error"
	TypeWarning Type = "warning"
	TypeInfo    Type = "info"
)

// Icon returns the glyph shown before a message of the given level.
func Icon(level Type) string {
	switch level {
	case TypeSuccess:
		return "✓"
	case TypeError:
		return "✗"
	case TypeWarning:
		return "⚠"
	default:
		return "ℹ"
	}
}

// Node returns the banner for message at the given level.
//
// Errors are announced assertively; everything else politely.
func Node(level Type, message string) *vdom.VNode {
	role, live := "status", "polite"
	if level == TypeError {
		role, live = "alert", "assertive"
	}
	return vdom.Div(
		vdom.Class("toast", "toast-"+string(level)),
		vdom.Role(role),
		vdom.AriaLive(live),
		vdom.Data("level", string(level)),
		vdom.Span(vdom.Class("toast-icon"), vdom.AriaHidden(true), Icon(level)),
		vdom.Span(vdom.Class("toast-message"), message),
	)
}

// Success returns a success banner.
//
//	toast.Success("Changes saved!")
func Success(message string) *vdom.VNode {
	return Node(TypeSuccess, message)
}

// Stylesheet is the CSS for the banner classes.
const Stylesheet = `.toast{display:flex;gap:.5rem;padding:.75rem 1rem;border-radius:.5rem;margin:1rem 0}` +
	`.toast-success{background:#e6f4ea;color:#1e7b34}` +
	`.toast-error{background:#fdecea;color:#a50e0e}` +
	`.toast-warning{background:#fff4e5;color:#8a5300}` +
	`.toast-info{background:#e8f0fe;color:#174ea6}`
