// Package vdom provides the in-memory node tree that report surfaces build
// before it is serialized to HTML.
//
// # Core Types
//
// VNode is the fundamental building block representing elements, text,
// fragments and raw HTML. Props holds attributes. Attr is used to build
// Props.
//
// # Element API
//
// Elements are created using variadic factory functions:
//
//	Div(Class("card"), ID("main"),
//	    H1(Text("Title")),
//	    P(Text("Content")),
//	)
//
// Arguments may be Attr, []Attr, *VNode, []*VNode, string or nil. Nil values
// are skipped so conditional children can be passed inline.
package vdom
