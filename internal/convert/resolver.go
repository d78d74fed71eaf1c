package convert

import (
	"unitconvert/internal/diagnostic"
	"unitconvert/internal/units"
)

// Resolve picks the converter whose category accepts both unit strings.
// Categories are tried in priority order: distance, mass, temperature.
//
// When a string is not a unit of any category the error is an
// InvalidUnitError for it (from is checked first). When both are units but
// of different categories the error is an UnsupportedConversionError.
func Resolve(from, to string) (Converter, error) {
	for _, c := range units.Categories() {
		if accepts(c, from) && accepts(c, to) {
			return Converter{category: c}, nil
		}
	}

	for _, text := range []string{from, to} {
		if _, ok := units.Lookup(text); !ok {
			return Converter{}, diagnostic.NewInvalidUnit(text)
		}
	}

	return Converter{}, diagnostic.NewUnsupportedConversion(from, to)
}

func accepts(c units.Category, text string) bool {
	_, err := units.ParseUnit(c, text)
	return err == nil
}
