package expression

import (
	"errors"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unitconvert/internal/diagnostic"
)

func TestParse_Valid(t *testing.T) {
	tests := []struct {
		input    string
		expected Expression
	}{
		{"10C -> F", Expression{Value: 10, From: "c", To: "f"}},
		{"10C->F", Expression{Value: 10, From: "c", To: "f"}},
		{"  2.5 kg -> lb  ", Expression{Value: 2.5, From: "kg", To: "lb"}},
		{"3 miles to km", Expression{Value: 3, From: "miles", To: "km"}},
		{"3 Miles TO Kilometers", Expression{Value: 3, From: "miles", To: "kilometers"}},
		{"3  mi   to\tkm", Expression{Value: 3, From: "mi", To: "km"}},
		{"3 mi To ft", Expression{Value: 3, From: "mi", To: "ft"}},
		{"-40 c -> f", Expression{Value: -40, From: "c", To: "f"}},
		{".5ft -> in", Expression{Value: 0.5, From: "ft", To: "in"}},
		{"100°F -> °C", Expression{Value: 100, From: "°f", To: "°c"}},
		{"2 tonne to kg", Expression{Value: 2, From: "tonne", To: "kg"}},
		{"2 kg to tonnes", Expression{Value: 2, From: "kg", To: "tonnes"}},
		{"7 t to st", Expression{Value: 7, From: "t", To: "st"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			require.NoError(t, err, spew.Sdump(err))
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParse_InvalidFormat(t *testing.T) {
	inputs := []string{
		"10C into F",
		"10C F",
		"",
		"10 m -> ft -> in",
		"10 m to ft to in",
		"10C toF",
		"10 m to to ft",
		"10 m TO -> ft",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := Parse(input)
			require.Error(t, err)
			assert.ErrorIs(t, err, diagnostic.ErrParse)
		})
	}
}

func TestParse_RepeatedSeparatorIsFormatError(t *testing.T) {
	_, err := Parse("10 m to to ft")

	var perr *diagnostic.ParseError
	require.True(t, errors.As(err, &perr), spew.Sdump(err))
	require.Len(t, perr.Diagnostics.Errors, 1)
	assert.Equal(t, diagnostic.CodeBadFormat, perr.Diagnostics.Errors[0].Code)
	assert.Contains(t, perr.Detail, "expected '<value><unit> -> <unit>'")
}

func TestParse_FoldedSymbolWarnings(t *testing.T) {
	got, err := Parse("5 MM -> Km")
	require.NoError(t, err)
	assert.Equal(t, "mm", got.From)
	assert.Equal(t, "km", got.To)

	require.Len(t, got.Warnings, 2, spew.Sdump(got.Warnings))
	assert.Equal(t, diagnostic.SeverityWarning, got.Warnings[0].Severity)
	assert.Equal(t, diagnostic.CodeFoldedSymbol, got.Warnings[0].Code)
	assert.Equal(t, "Unit symbols are case-sensitive, read 'MM' as 'mm' (millimeter)", got.Warnings[0].Message)
	assert.Equal(t, "Km", got.Warnings[1].Subject)
}

func TestParse_NoWarningsForUsualSpellings(t *testing.T) {
	for _, input := range []string{"10C -> F", "300 K -> c", "1 Kilogram -> lb", "2 km -> mi", "100°F -> °C"} {
		got, err := Parse(input)
		require.NoError(t, err, input)
		assert.Empty(t, got.Warnings, input)
	}
}

func TestParse_NonNumericValue(t *testing.T) {
	_, err := Parse("abcC -> F")
	require.ErrorIs(t, err, diagnostic.ErrParse)
	assert.Contains(t, err.Error(), "Invalid number in 'abcC'")

	_, err = Parse("1.2.3 m -> ft")
	require.ErrorIs(t, err, diagnostic.ErrParse)
	assert.Contains(t, err.Error(), "Invalid number in '1.2.3 m'")
}

func TestParse_MissingUnits(t *testing.T) {
	_, err := Parse("10 -> ft")
	require.ErrorIs(t, err, diagnostic.ErrParse)
	assert.Contains(t, err.Error(), "missing source unit")

	_, err = Parse("10 m ->")
	require.ErrorIs(t, err, diagnostic.ErrParse)
	assert.Contains(t, err.Error(), "missing target unit")
}

func TestParse_Suggestion(t *testing.T) {
	_, err := Parse("10 fute -> celsius")
	require.Error(t, err)

	var perr *diagnostic.ParseError
	require.True(t, errors.As(err, &perr), spew.Sdump(err))
	assert.Equal(t, "Unknown unit 'fute'. Did you mean 'foot'?", perr.Detail)
	assert.Equal(t, []string{"foot"}, perr.Diagnostics.Suggestions())
	require.Len(t, perr.Diagnostics.Errors, 1)
	assert.Equal(t, diagnostic.CodeSuggestedUnit, perr.Diagnostics.Errors[0].Code)
	assert.Equal(t, "fute", perr.Diagnostics.Errors[0].Subject)
}

func TestParse_SuggestionPerSide(t *testing.T) {
	_, err := Parse("10 celcius to farenheit")

	var perr *diagnostic.ParseError
	require.True(t, errors.As(err, &perr), spew.Sdump(err))
	assert.Equal(t,
		"Unknown unit 'celcius'. Did you mean 'celsius'?\nUnknown unit 'farenheit'. Did you mean 'fahrenheit'?",
		perr.Detail)
	assert.Equal(t, []string{"celsius", "fahrenheit"}, perr.Diagnostics.Suggestions())
}

func TestParse_UnknownUnitWithoutSuggestion(t *testing.T) {
	_, err := Parse("10 banana -> ft")

	var perr *diagnostic.ParseError
	require.True(t, errors.As(err, &perr), spew.Sdump(err))
	assert.Equal(t, "Invalid unit in expression: 'banana'", perr.Detail)
	assert.Empty(t, perr.Diagnostics.Suggestions())
	assert.Equal(t, diagnostic.CodeUnknownUnit, perr.Diagnostics.Errors[0].Code)
}

func TestParse_DoesNotResolveCategories(t *testing.T) {
	// units from different categories parse; the resolver rejects them later
	got, err := Parse("1 m -> kg")
	require.NoError(t, err)
	assert.Equal(t, Expression{Value: 1, From: "m", To: "kg"}, got)
}

func TestSuggest(t *testing.T) {
	tests := []struct {
		input string
		want  string
		ok    bool
	}{
		{"fute", "foot", true},
		{"kilometr", "kilometer", true},
		{"metr", "meter", true},
		{"poundz", "pound", true},
		{"KELVN", "kelvin", true},
		{"banana", "", false},
		{"zzzzzz", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := Suggest(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExpressionString(t *testing.T) {
	assert.Equal(t, "2.5 kg -> lb", Expression{Value: 2.5, From: "kg", To: "lb"}.String())
}
