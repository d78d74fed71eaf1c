package diagnostic

import (
	"errors"
	"fmt"
)

// Sentinel errors matched by the typed errors below through errors.Is.
var (
	ErrInvalidUnit           = errors.New("invalid unit")
	ErrUnsupportedConversion = errors.New("unsupported conversion")
	ErrParse                 = errors.New("parse error")
)

// InvalidUnitError reports a unit string that matches no known alias.
type InvalidUnitError struct {
	Text string
}

func (e *InvalidUnitError) Error() string {
	return fmt.Sprintf("Invalid unit: '%s'", e.Text)
}

func (e *InvalidUnitError) Is(target error) bool {
	return target == ErrInvalidUnit
}

// NewInvalidUnit returns an InvalidUnitError for text.
func NewInvalidUnit(text string) error {
	return &InvalidUnitError{Text: text}
}

// UnsupportedConversionError reports two units that cannot be converted
// into one another.
type UnsupportedConversionError struct {
	From string
	To   string
}

func (e *UnsupportedConversionError) Error() string {
	return fmt.Sprintf("Conversion from '%s' to '%s' not supported", e.From, e.To)
}

func (e *UnsupportedConversionError) Is(target error) bool {
	return target == ErrUnsupportedConversion
}

// NewUnsupportedConversion returns an UnsupportedConversionError for the pair.
func NewUnsupportedConversion(from, to string) error {
	return &UnsupportedConversionError{From: from, To: to}
}

// ParseError reports expression text that could not be parsed.
// Diagnostics holds per-side details when unit validation failed.
type ParseError struct {
	Detail      string
	Diagnostics Diagnostics
}

func (e *ParseError) Error() string {
	return "Error parsing an expression: " + e.Detail
}

func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// NewParseError returns a ParseError with a formatted detail message.
func NewParseError(format string, args ...any) error {
	return &ParseError{Detail: fmt.Sprintf(format, args...)}
}

// ParseErrorFrom turns collected diagnostics into a ParseError.
// It returns nil when d holds no errors.
func ParseErrorFrom(d Diagnostics) error {
	err := d.Error()
	if err == nil {
		return nil
	}

	return &ParseError{Detail: err.Error(), Diagnostics: d}
}
