// Package errors provides coded, actionable errors for the markup CLI.
//
// Library packages return plain wrapped errors. The CLI converts them to an
// *Error at the boundary so the user sees a code, a short message, an
// optional source location and a hint:
//
//	err := errors.New("E201").
//	    WithLocation("markup.toml", 4, 9).
//	    WithSuggestion(`Use one of "none", "class" or "grouped".`)
//
//	fmt.Fprint(os.Stderr, err.Format())
//
// # Codes
//
//   - E1xx: rendering
//   - E2xx: configuration
//   - E3xx: cache and export
//   - E4xx: server and command line
package errors
