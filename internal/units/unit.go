package units

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"unitconvert/internal/diagnostic"
)

// Unit is a single unit of measurement. It is implemented by DistanceUnit,
// MassUnit and TemperatureUnit only.
type Unit interface {
	// String returns the canonical full name, e.g. "foot".
	String() string
	// Symbol returns the canonical display symbol, e.g. "ft".
	Symbol() string
	// Category returns the category the unit belongs to.
	Category() Category
}

// Alias is one accepted spelling of a unit.
type Alias struct {
	Text string
	Unit Unit
}

// unitDef describes one unit variant. factor is the number of base units in
// one of this unit and is zero for affine (temperature) units.
type unitDef struct {
	symbol  string
	factor  float64
	aliases []string
}

type aliasIndex struct {
	byText  map[string]Unit
	ordered []Alias
}

var index = sync.OnceValue(buildIndex)

func buildIndex() aliasIndex {
	idx := aliasIndex{byText: make(map[string]Unit)}

	for _, c := range Categories() {
		for _, u := range Units(c) {
			for _, a := range aliasesOf(u) {
				if prev, ok := idx.byText[a]; ok {
					panic(fmt.Sprintf("units: alias %q declared for both %s %s and %s %s",
						a, prev.Category(), prev, u.Category(), u))
				}

				idx.byText[a] = u
				idx.ordered = append(idx.ordered, Alias{Text: a, Unit: u})
			}
		}
	}

	return idx
}

func aliasesOf(u Unit) []string {
	switch u := u.(type) {
	case DistanceUnit:
		return distanceDefs[u].aliases
	case MassUnit:
		return massDefs[u].aliases
	case TemperatureUnit:
		return temperatureDefs[u].aliases
	default:
		return nil
	}
}

func normalize(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// Lookup finds the unit named by text in any category.
func Lookup(text string) (Unit, bool) {
	u, ok := index().byText[normalize(text)]
	return u, ok
}

// Aliases returns every accepted alias, ordered by category priority, then
// unit declaration order, then alias declaration order.
func Aliases() []Alias {
	return slices.Clone(index().ordered)
}

// ParseUnit parses text as a unit of category c.
func ParseUnit(c Category, text string) (Unit, error) {
	u, ok := Lookup(text)
	if !ok || u.Category() != c {
		return nil, diagnostic.NewInvalidUnit(text)
	}

	return u, nil
}

// Display returns the canonical display symbol of u.
func Display(u Unit) string {
	return u.Symbol()
}

// Units returns the units of category c in declaration order.
func Units(c Category) []Unit {
	switch c {
	case CategoryDistance:
		return asUnits(enumerate[DistanceUnit](len(distanceDefs)))
	case CategoryMass:
		return asUnits(enumerate[MassUnit](len(massDefs)))
	case CategoryTemperature:
		return asUnits(enumerate[TemperatureUnit](len(temperatureDefs)))
	default:
		return nil
	}
}

// ListUnits returns the display symbols of category c sorted lexicographically.
func ListUnits(c Category) []string {
	us := Units(c)

	symbols := make([]string, 0, len(us))
	for _, u := range us {
		symbols = append(symbols, u.Symbol())
	}

	slices.Sort(symbols)

	return symbols
}

func parseAs[U Unit](c Category, text string) (U, error) {
	u, err := ParseUnit(c, text)
	if err != nil {
		var zero U
		return zero, err
	}

	return u.(U), nil
}

// enumerate lists the valid values of an enum whose definition table has n
// entries, index 0 being the invalid zero value.
func enumerate[U ~int](n int) []U {
	out := make([]U, 0, n-1)
	for i := 1; i < n; i++ {
		out = append(out, U(i))
	}

	return out
}

func asUnits[U Unit](us []U) []Unit {
	out := make([]Unit, len(us))
	for i, u := range us {
		out[i] = u
	}

	return out
}
