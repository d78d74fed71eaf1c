package diagnostic

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics(t *testing.T) {
	var d Diagnostics
	assert.False(t, d.HasErrors())
	assert.NoError(t, d.Error())

	d.AddError(CodeSuggestedUnit, "Unknown unit 'fute'. Did you mean 'foot'?", "fute", "foot")
	d.AddWarning(CodeUnknownUnit, "ignored", "x")

	var other Diagnostics
	other.AddError(CodeUnknownUnit, "Invalid unit in expression: 'zz'", "zz")
	d.Merge(other)

	require.True(t, d.HasErrors())
	assert.Len(t, d.Warnings, 1)
	assert.Equal(t, []string{"foot"}, d.Suggestions())
	assert.EqualError(t, d.Error(),
		"Unknown unit 'fute'. Did you mean 'foot'?\nInvalid unit in expression: 'zz'")
}

func TestDiagnosticString(t *testing.T) {
	d := Diagnostic{Code: CodeInvalidNumber, Message: "Invalid number in 'x'", Subject: "x"}
	assert.Equal(t, `"x": [invalid-number] Invalid number in 'x'`, d.String())

	assert.Equal(t, "plain", Diagnostic{Message: "plain"}.String())
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "unknown", Severity(9).String())
}

func TestErrorKinds(t *testing.T) {
	tests := []struct {
		err      error
		sentinel error
		message  string
	}{
		{NewInvalidUnit("banana"), ErrInvalidUnit, "Invalid unit: 'banana'"},
		{NewUnsupportedConversion("m", "kg"), ErrUnsupportedConversion, "Conversion from 'm' to 'kg' not supported"},
		{NewParseError("bad %s", "input"), ErrParse, "Error parsing an expression: bad input"},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			assert.EqualError(t, tt.err, tt.message)
			assert.ErrorIs(t, tt.err, tt.sentinel)

			wrapped := fmt.Errorf("convert: %w", tt.err)
			assert.ErrorIs(t, wrapped, tt.sentinel)
		})
	}

	assert.False(t, errors.Is(NewInvalidUnit("x"), ErrParse))
}

func TestParseErrorFrom(t *testing.T) {
	assert.NoError(t, ParseErrorFrom(Diagnostics{}))

	var d Diagnostics
	d.AddError(CodeBadFormat, "expected arrow", "10 m")

	err := ParseErrorFrom(d)

	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "expected arrow", perr.Detail)
	assert.Len(t, perr.Diagnostics.Errors, 1)
}
