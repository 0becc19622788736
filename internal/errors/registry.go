package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
	DocURL   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Runtime Errors (E001-E019)
	// ============================================

	"E001": {
		Category: CategoryRuntime,
		Message:  "Event handler not found",
		Detail:   "The event references a hydration ID with no registered handler. The page may have re-rendered since the client captured the ID.",
		DocURL:   "https://melba-ui.dev/docs/errors/E001",
	},
	"E002": {
		Category: CategoryRuntime,
		Message:  "Session not found",
		Detail:   "The session ID is invalid or the session has expired.",
		DocURL:   "https://melba-ui.dev/docs/errors/E002",
	},
	"E003": {
		Category: CategoryRuntime,
		Message:  "Event handler panicked",
		Detail:   "An event handler panicked during dispatch. The session keeps running; check the server log for the stack trace.",
		DocURL:   "https://melba-ui.dev/docs/errors/E003",
	},

	// ============================================
	// Protocol Errors (E020-E039)
	// ============================================

	"E020": {
		Category: CategoryProtocol,
		Message:  "Invalid frame",
		Detail:   "The received message could not be decoded as a frame.",
		DocURL:   "https://melba-ui.dev/docs/errors/E020",
	},
	"E021": {
		Category: CategoryProtocol,
		Message:  "Unknown frame type",
		Detail:   "The frame type is not recognized by the server.",
		DocURL:   "https://melba-ui.dev/docs/errors/E021",
	},
	"E022": {
		Category: CategoryProtocol,
		Message:  "Unknown event kind",
		Detail:   "The event frame names an event kind the server cannot dispatch.",
		DocURL:   "https://melba-ui.dev/docs/errors/E022",
	},
	"E023": {
		Category: CategoryProtocol,
		Message:  "WebSocket write failed",
		Detail:   "A frame could not be written to the client connection.",
		DocURL:   "https://melba-ui.dev/docs/errors/E023",
	},

	// ============================================
	// Configuration Errors (E040-E059)
	// ============================================

	"E040": {
		Category: CategoryConfig,
		Message:  "Invalid configuration file",
		Detail:   "The configuration file is malformed.",
		DocURL:   "https://melba-ui.dev/docs/errors/E040",
	},
	"E041": {
		Category: CategoryConfig,
		Message:  "Configuration validation failed",
		Detail:   "One or more configuration values are outside their allowed ranges.",
		DocURL:   "https://melba-ui.dev/docs/errors/E041",
	},
	"E042": {
		Category: CategoryConfig,
		Message:  "Invalid listen address",
		Detail:   "The configured listen address could not be parsed or is already in use.",
		DocURL:   "https://melba-ui.dev/docs/errors/E042",
	},

	// ============================================
	// CLI Errors (E060-E079)
	// ============================================

	"E060": {
		Category: CategoryCLI,
		Message:  "Server failed to start",
		Detail:   "The demo server could not start. Check the address and configuration.",
		DocURL:   "https://melba-ui.dev/docs/errors/E060",
	},
}

// GetAllCodes returns all registered error codes.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}

// Register adds a new error template to the registry.
func Register(code string, template ErrorTemplate) {
	registry[code] = template
}
