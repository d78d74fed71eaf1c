package units

import (
	"errors"
	"fmt"
	"strings"
)

//go:generate go tool stringer -type=Category -linecomment -output=category_string.go

// Category partitions the unit space into mutually convertible groups.
type Category int

const (
	_ Category = iota // skip zero value, use it as a default (invalid) value for Category

	CategoryDistance    // distance
	CategoryMass        // mass
	CategoryTemperature // temperature
)

// ErrUnknownCategory is returned by ParseCategory for unrecognized names.
var ErrUnknownCategory = errors.New("unknown unit type")

// Categories returns all categories in resolution priority order.
func Categories() []Category {
	return []Category{CategoryDistance, CategoryMass, CategoryTemperature}
}

// IsValid reports whether c is one of the defined categories.
func (c Category) IsValid() bool {
	switch c {
	default:
		return false
	case CategoryDistance, CategoryMass, CategoryTemperature:
		return true
	}
}

// ParseCategory parses a category name or its one-letter shorthand.
func ParseCategory(text string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "distance", "d":
		return CategoryDistance, nil
	case "mass", "m":
		return CategoryMass, nil
	case "temperature", "temp", "t":
		return CategoryTemperature, nil
	default:
		return 0, fmt.Errorf("%w: '%s'", ErrUnknownCategory, text)
	}
}
