package units

//go:generate go tool stringer -type=MassUnit -linecomment -output=mass_string.go

// MassUnit is a unit of mass. The base unit is the gram.
type MassUnit int

const (
	_ MassUnit = iota // skip zero value, use it as a default (invalid) value for MassUnit

	Milligram // milligram
	Gram      // gram
	Kilogram  // kilogram
	Tonne     // tonne
	Ounce     // ounce
	Pound     // pound
	Stone     // stone
)

var massDefs = [...]unitDef{
	Milligram: {"mg", 0.001, []string{"mg", "milligram", "milligrams", "milligramme", "milligrammes"}},
	Gram:      {"g", 1, []string{"g", "gram", "grams", "gramme", "grammes"}},
	Kilogram:  {"kg", 1000, []string{"kg", "kilogram", "kilograms", "kilogramme", "kilogrammes", "kilo", "kilos"}},
	Tonne:     {"t", 1e6, []string{"t", "tonne", "tonnes"}},
	Ounce:     {"oz", 28.34949, []string{"oz", "ounce", "ounces"}},
	Pound:     {"lb", 453.59291, []string{"lb", "lbs", "pound", "pounds"}},
	Stone:     {"st", 6350.29497, []string{"st", "stone", "stones"}},
}

func (u MassUnit) Category() Category { return CategoryMass }

// IsValid reports whether u is a declared mass unit.
func (u MassUnit) IsValid() bool {
	return u > 0 && int(u) < len(massDefs)
}

func (u MassUnit) Symbol() string {
	if !u.IsValid() {
		return u.String()
	}

	return massDefs[u].symbol
}

// Grams returns the mass of one u in grams.
func (u MassUnit) Grams() float64 {
	if !u.IsValid() {
		panic("units: no scale factor for " + u.String())
	}

	return massDefs[u].factor
}

// ParseMass parses text as a mass unit.
func ParseMass(text string) (MassUnit, error) {
	return parseAs[MassUnit](CategoryMass, text)
}
