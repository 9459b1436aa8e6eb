// Package errors provides coded, structured errors for the reportdemo CLI
// and configuration layer.
//
// Every error carries a stable code (E001...), a category and optional
// detail and suggestion text. Format renders the error for terminals and
// FormatJSON for machine consumers.
//
//	return errors.New("E110").
//	    WithDetail("Unknown output format \"pdf\"").
//	    WithSuggestion("Use one of: html, terminal, markdown, json")
package errors
