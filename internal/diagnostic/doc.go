// Package diagnostic provides the error kinds surfaced by the conversion
// engine and structured diagnostics for rejected input.
//
// Key capabilities:
//   - Typed errors for invalid units, unsupported conversions and parse failures
//   - Sentinel values for errors.Is checks
//   - Coded diagnostics carrying "did you mean" suggestions
package diagnostic
