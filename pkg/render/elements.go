package render

import "github.com/vango-dev/reportdemo/pkg/vdom"

// inlineElements are kept on one line in pretty-printed output.
var inlineElements = map[string]bool{
	"a":      true,
	"b":      true,
	"br":     true,
	"code":   true,
	"em":     true,
	"h1":     true,
	"h2":     true,
	"i":      true,
	"p":      true,
	"span":   true,
	"strong": true,
	"td":     true,
	"th":     true,
	"title":  true,
}

func isInlineElement(tag string) bool {
	return inlineElements[tag]
}

func isVoidElement(tag string) bool {
	return vdom.IsVoidElement(tag)
}

// booleanAttrs are rendered as a bare name when true and omitted when false.
var booleanAttrs = map[string]bool{
	"async":    true,
	"checked":  true,
	"defer":    true,
	"disabled": true,
	"hidden":   true,
	"open":     true,
	"readonly": true,
	"required": true,
	"selected": true,
}

func isBooleanAttr(name string) bool {
	return booleanAttrs[name]
}
