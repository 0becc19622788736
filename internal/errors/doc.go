// Package errors provides structured, actionable error messages for melba.
//
// The errors package implements an error system that:
//   - Shows exact file locations (file, line, column)
//   - Explains what went wrong in plain language
//   - Suggests how to fix issues with examples
//   - Links to documentation for deeper understanding
//
// # Error Categories
//
// Errors are organized into categories:
//   - runtime: Execution errors (handler not found, session expired)
//   - protocol: Wire errors (invalid frames, connection issues)
//   - config: Configuration file and validation errors
//   - cli: Command-line tool errors
//
// # Error Codes
//
// Each error has a unique code (e.g., "E001") that maps to:
//   - A short message describing the error
//   - A detailed explanation
//   - A documentation URL
//
// # Usage
//
//	err := errors.New("E040").
//	    WithLocation("melba.json", 4, 12).
//	    WithSuggestion("Port must be an integer between 1 and 65535")
//
//	fmt.Println(err.Format())
//	// Output:
//	// ERROR E040: Invalid configuration file
//	//
//	//   melba.json:4:12
//	//
//	//      2 │   "host": "127.0.0.1",
//	//      3 │   "port": "eighty",
//	//   →  4 │   "log_level": "debug",
//	//        │            ^
//	//
//	//   Hint: Port must be an integer between 1 and 65535
//	//
//	//   Learn more: https://melba-ui.dev/docs/errors/E040
package errors
