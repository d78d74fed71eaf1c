package convert

import (
	"unitconvert/internal/diagnostic"
	"unitconvert/internal/units"
)

// Converter converts values between the units of one category.
// The zero Converter belongs to no category and rejects every conversion.
type Converter struct {
	category units.Category
}

// Distance returns the converter for lengths.
func Distance() Converter { return Converter{category: units.CategoryDistance} }

// Mass returns the converter for masses.
func Mass() Converter { return Converter{category: units.CategoryMass} }

// Temperature returns the converter for temperatures.
func Temperature() Converter { return Converter{category: units.CategoryTemperature} }

// For returns the converter of category c.
func For(c units.Category) (Converter, bool) {
	if !c.IsValid() {
		return Converter{}, false
	}

	return Converter{category: c}, true
}

// Category returns the category the converter handles.
func (c Converter) Category() units.Category {
	return c.category
}

// Convert converts value from the unit named by from to the unit named by to.
// Both names must parse as units of the converter's category.
func (c Converter) Convert(value float64, from, to string) (float64, error) {
	switch c.category {
	case units.CategoryDistance:
		return convertWith(distanceFamily, units.ParseDistance, value, from, to)
	case units.CategoryMass:
		return convertWith(massFamily, units.ParseMass, value, from, to)
	case units.CategoryTemperature:
		return convertWith(temperatureFamily, units.ParseTemperature, value, from, to)
	default:
		return 0, diagnostic.NewUnsupportedConversion(from, to)
	}
}

// SupportedUnits returns the display symbols of the category, sorted.
func (c Converter) SupportedUnits() []string {
	return units.ListUnits(c.category)
}

// UnitString returns the display symbol of the unit named by text, or text
// itself when it is not a unit of the category.
func (c Converter) UnitString(text string) string {
	u, err := units.ParseUnit(c.category, text)
	if err != nil {
		return text
	}

	return units.Display(u)
}
