package errors

import stderrors "errors"

// Category represents the type of error.
type Category string

const (
	CategoryRender  Category = "render"
	CategoryConfig  Category = "config"
	CategoryServer  Category = "server"
	CategoryPublish Category = "publish"
	CategoryCLI     Category = "cli"
)

// ReportError is a structured error with a code, suggestion and optional cause.
type ReportError struct {
	// Code is a unique error identifier (e.g., "E001").
	Code string

	// Category is the error type (render, config, etc.).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *ReportError) Error() string {
	msg := e.Message
	if e.Code != "" {
		msg = e.Code + ": " + msg
	}
	if e.Wrapped != nil {
		msg += ": " + e.Wrapped.Error()
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *ReportError) Unwrap() error {
	return e.Wrapped
}

// WithSuggestion adds a fix suggestion to the error.
func (e *ReportError) WithSuggestion(s string) *ReportError {
	e.Suggestion = s
	return e
}

// WithDetail adds a detailed explanation to the error.
func (e *ReportError) WithDetail(d string) *ReportError {
	e.Detail = d
	return e
}

// Wrap wraps another error.
func (e *ReportError) Wrap(err error) *ReportError {
	e.Wrapped = err
	return e
}

// New creates a ReportError from a registered error code.
func New(code string) *ReportError {
	template, ok := registry[code]
	if !ok {
		return &ReportError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &ReportError{
		Code:       code,
		Category:   template.Category,
		Message:    template.Message,
		Detail:     template.Detail,
		Suggestion: template.Suggestion,
	}
}

// FromError wraps err in a ReportError with the given code. If err already
// is (or wraps) a ReportError, that error is returned unchanged.
func FromError(err error, code string) *ReportError {
	if err == nil {
		return nil
	}
	var re *ReportError
	if stderrors.As(err, &re) {
		return re
	}
	return New(code).Wrap(err)
}

// Is reports whether any error in err's chain matches target.
// It re-exports the standard library function so callers importing this
// package do not need both.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// Code returns the code of the first ReportError in err's chain, or "".
func Code(err error) string {
	var re *ReportError
	if stderrors.As(err, &re) {
		return re.Code
	}
	return ""
}
