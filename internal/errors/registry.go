package errors

import "sort"

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category   Category
	Message    string
	Detail     string
	Suggestion string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// Render errors (E001-E019)

	"E001": {
		Category: CategoryRender,
		Message:  "Table columns have different lengths",
		Detail:   "Every column of a table must hold the same number of values.",
	},
	"E002": {
		Category: CategoryRender,
		Message:  "Duplicate table column",
		Detail:   "Column names must be unique within a table.",
	},
	"E003": {
		Category: CategoryRender,
		Message:  "Report surface write failed",
		Detail:   "The output surface rejected an element. Nothing after the failing element was rendered.",
	},
	"E004": {
		Category:   CategoryRender,
		Message:    "Unknown output format",
		Suggestion: "Use one of: html, terminal, markdown, json",
	},

	// Config errors (E100-E119)

	"E100": {
		Category:   CategoryConfig,
		Message:    "Invalid configuration file",
		Suggestion: "Check that reportdemo.json (or reportdemo.yaml) is well formed",
	},
	"E101": {
		Category: CategoryConfig,
		Message:  "Invalid configuration value",
	},
	"E102": {
		Category: CategoryConfig,
		Message:  "Configuration file not found",
	},

	// Server errors (E120-E139)

	"E120": {
		Category:   CategoryServer,
		Message:    "Failed to start HTTP server",
		Suggestion: "Check that the port is free or pass --port",
	},
	"E121": {
		Category: CategoryServer,
		Message:  "Server shutdown timed out",
	},

	// Publish errors (E140-E159)

	"E140": {
		Category:   CategoryPublish,
		Message:    "Publish bucket not configured",
		Suggestion: "Pass --bucket or set publish.bucket in reportdemo.json",
	},
	"E141": {
		Category: CategoryPublish,
		Message:  "Upload to object storage failed",
	},

	// CLI errors (E160-E179)

	"E160": {
		Category: CategoryCLI,
		Message:  "Failed to write output file",
	},
}

// GetAllCodes returns all registered error codes in sorted order.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
