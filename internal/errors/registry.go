package errors

import "sort"

// Template describes a registered error code.
type Template struct {
	Category Category
	Message  string
	Detail   string
}

var registry = map[string]Template{
	// Rendering
	"E101": {
		Category: CategoryRender,
		Message:  "Render failed",
		Detail:   "The document could not be written. The output may be truncated.",
	},
	"E102": {
		Category: CategoryRender,
		Message:  "Unknown page",
		Detail:   "No page is registered under that name.",
	},
	"E103": {
		Category: CategoryRender,
		Message:  "Render canceled",
		Detail:   "The render stopped because its context was canceled or timed out.",
	},

	// Configuration
	"E201": {
		Category: CategoryConfig,
		Message:  "Invalid configuration",
		Detail:   "A configuration value is out of range or has the wrong form.",
	},
	"E202": {
		Category: CategoryConfig,
		Message:  "Configuration file not readable",
		Detail:   "The configuration file exists but could not be read or parsed.",
	},
	"E203": {
		Category: CategoryConfig,
		Message:  "Unsupported configuration format",
		Detail:   "Configuration files must end in .json or .toml.",
	},

	// Cache and export
	"E301": {
		Category: CategoryCache,
		Message:  "Cache unavailable",
		Detail:   "The page cache backend could not be reached.",
	},
	"E302": {
		Category: CategoryExport,
		Message:  "Export failed",
		Detail:   "A page could not be rendered or stored.",
	},
	"E303": {
		Category: CategoryExport,
		Message:  "No export target",
		Detail:   "Export needs an output directory or an S3 bucket.",
	},

	// Server and CLI
	"E401": {
		Category: CategoryServer,
		Message:  "Server failed",
		Detail:   "The preview server stopped with an error.",
	},
	"E402": {
		Category: CategoryCLI,
		Message:  "Invalid arguments",
		Detail:   "The command was called with arguments it does not accept.",
	},
}

// Codes returns every registered code in order.
func Codes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Lookup returns the template for code.
func Lookup(code string) (Template, bool) {
	t, ok := registry[code]
	return t, ok
}
