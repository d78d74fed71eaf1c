package expression

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"unitconvert/internal/diagnostic"
	"unitconvert/internal/match"
	"unitconvert/internal/units"
)

// Arrow is the canonical separator between the source and the target unit.
const Arrow = "->"

// MaxSuggestionDistance is the largest edit distance at which a known unit
// is offered as a correction.
const MaxSuggestionDistance = 2

// Expression is a parsed conversion request.
type Expression struct {
	Value float64
	From  string
	To    string
	// Warnings notes units that were accepted only after lower-casing.
	Warnings []diagnostic.Diagnostic
}

func (e Expression) String() string {
	return fmt.Sprintf("%s %s %s %s", strconv.FormatFloat(e.Value, 'f', -1, 64), e.From, Arrow, e.To)
}

// Parse parses text of the form "<number><optional space><unit> -> <unit>".
// The words "to", "TO" and "To" are accepted in place of the arrow.
// Returned unit strings are lower-cased and known to name a unit.
func Parse(text string) (Expression, error) {
	segments := strings.Split(replaceSeparators(text), Arrow)
	if len(segments) != 2 {
		return Expression{}, fail(diagnostic.CodeBadFormat, text,
			"expected '<value><unit> -> <unit>', got '%s'", text)
	}

	left := strings.TrimSpace(segments[0])
	numPart, fromText := splitQuantity(left)

	value, err := strconv.ParseFloat(numPart, 64)
	if err != nil {
		return Expression{}, fail(diagnostic.CodeInvalidNumber, left, "Invalid number in '%s'", left)
	}

	toText := strings.TrimSpace(segments[1])

	if fromText == "" {
		return Expression{}, fail(diagnostic.CodeBadFormat, text, "missing source unit in '%s'", text)
	}

	if toText == "" {
		return Expression{}, fail(diagnostic.CodeBadFormat, text, "missing target unit in '%s'", text)
	}

	diags := checkUnits(fromText, toText)
	if err := diagnostic.ParseErrorFrom(diags); err != nil {
		return Expression{}, err
	}

	return Expression{
		Value:    value,
		From:     strings.ToLower(fromText),
		To:       strings.ToLower(toText),
		Warnings: diags.Warnings,
	}, nil
}

// replaceSeparators rewrites every whitespace-delimited "to" word as Arrow.
// Runs of whitespace collapse to a single space.
func replaceSeparators(text string) string {
	fields := strings.Fields(text)
	for i, f := range fields {
		switch f {
		case "to", "TO", "To":
			fields[i] = Arrow
		}
	}

	return strings.Join(fields, " ")
}

// splitQuantity splits s at its first letter (or degree sign) into a
// numeric prefix and a unit suffix, both trimmed.
func splitQuantity(s string) (string, string) {
	i := strings.IndexFunc(s, func(r rune) bool {
		return unicode.IsLetter(r) || r == '°'
	})
	if i < 0 {
		return strings.TrimSpace(s), ""
	}

	return strings.TrimSpace(s[:i]), strings.TrimSpace(s[i:])
}

func checkUnits(sides ...string) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics
	for _, side := range sides {
		diags.Merge(checkUnit(side))
	}

	return diags
}

func checkUnit(text string) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	lower := strings.ToLower(text)

	u, ok := units.Lookup(text)
	if !ok {
		if name, ok := Suggest(lower); ok {
			diags.AddError(diagnostic.CodeSuggestedUnit,
				fmt.Sprintf("Unknown unit '%s'. Did you mean '%s'?", lower, name), lower, name)
		} else {
			diags.AddError(diagnostic.CodeUnknownUnit,
				fmt.Sprintf("Invalid unit in expression: '%s'", lower), lower)
		}

		return diags
	}

	// symbols are case-sensitive ("Mm" is not "mm"), lookup is not
	if symbol := units.Display(u); text != lower && text != symbol && strings.EqualFold(text, symbol) {
		diags.AddWarning(diagnostic.CodeFoldedSymbol,
			fmt.Sprintf("Unit symbols are case-sensitive, read '%s' as '%s' (%s)", text, symbol, u), text)
	}

	return diags
}

// Suggest returns the canonical name of the unit with an alias closest to
// text, provided it is within MaxSuggestionDistance edits.
func Suggest(text string) (string, bool) {
	best, ok := match.Closest(strings.ToLower(text), units.Aliases(), func(a units.Alias) string {
		return a.Text
	}, MaxSuggestionDistance)
	if !ok {
		return "", false
	}

	return best.Value.Unit.String(), true
}

func fail(code, subject, format string, args ...any) error {
	var diags diagnostic.Diagnostics
	diags.AddError(code, fmt.Sprintf(format, args...), subject)

	return diagnostic.ParseErrorFrom(diags)
}
