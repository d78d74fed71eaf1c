package diagnostic

import (
	"errors"
	"fmt"
	"strings"
)

// Diagnostic codes reported by the expression parser.
const (
	CodeUnknownUnit   = "unknown-unit"
	CodeSuggestedUnit = "suggested-unit"
	CodeInvalidNumber = "invalid-number"
	CodeBadFormat     = "bad-format"
	CodeFoldedSymbol  = "folded-symbol"
)

const unknownStr = "unknown"

// Diagnostics holds the diagnostic information collected while validating input.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Subject is the input text the diagnostic is about (if any).
	Subject string
	// Suggestions are likely intended alternatives for Subject.
	Suggestions []string
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return unknownStr
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, subject string, suggestions ...string) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity:    SeverityError,
		Code:        code,
		Message:     message,
		Subject:     subject,
		Suggestions: suggestions,
	})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, subject string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity: SeverityWarning,
		Code:     code,
		Message:  message,
		Subject:  subject,
	})
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
}

// Suggestions returns every suggestion attached to an error diagnostic, in order.
func (d *Diagnostics) Suggestions() []string {
	var out []string
	for _, e := range d.Errors {
		out = append(out, e.Suggestions...)
	}

	return out
}

// Error returns a combined error from all error diagnostics, or nil if there are none.
// Each diagnostic message is placed on its own line.
func (d *Diagnostics) Error() error {
	if !d.HasErrors() {
		return nil
	}

	parts := make([]string, 0, len(d.Errors))
	for _, e := range d.Errors {
		parts = append(parts, e.Message)
	}

	return errors.New(strings.Join(parts, "\n"))
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if d.Subject != "" {
		return fmt.Sprintf("%q: %s", d.Subject, msg)
	}

	return msg
}
