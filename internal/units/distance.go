package units

//go:generate go tool stringer -type=DistanceUnit -linecomment -output=distance_string.go

// DistanceUnit is a unit of length. The base unit is the meter.
type DistanceUnit int

const (
	_ DistanceUnit = iota // skip zero value, use it as a default (invalid) value for DistanceUnit

	Meter      // meter
	Kilometer  // kilometer
	Centimeter // centimeter
	Millimeter // millimeter
	Inch       // inch
	Foot       // foot
	Yard       // yard
	Mile       // mile
)

var distanceDefs = [...]unitDef{
	Meter:      {"m", 1, []string{"m", "meter", "meters", "metre", "metres"}},
	Kilometer:  {"km", 1000, []string{"km", "kilometer", "kilometers", "kilometre", "kilometres"}},
	Centimeter: {"cm", 0.01, []string{"cm", "centimeter", "centimeters", "centimetre", "centimetres"}},
	Millimeter: {"mm", 0.001, []string{"mm", "millimeter", "millimeters", "millimetre", "millimetres"}},
	Inch:       {"in", 0.0254, []string{"in", "inch", "inches"}},
	Foot:       {"ft", 0.3048, []string{"ft", "foot", "feet"}},
	Yard:       {"yd", 0.9144, []string{"yd", "yard", "yards"}},
	Mile:       {"mi", 1609.344, []string{"mi", "mile", "miles"}},
}

func (u DistanceUnit) Category() Category { return CategoryDistance }

// IsValid reports whether u is a declared distance unit.
func (u DistanceUnit) IsValid() bool {
	return u > 0 && int(u) < len(distanceDefs)
}

func (u DistanceUnit) Symbol() string {
	if !u.IsValid() {
		return u.String()
	}

	return distanceDefs[u].symbol
}

// Meters returns the length of one u in meters.
func (u DistanceUnit) Meters() float64 {
	if !u.IsValid() {
		panic("units: no scale factor for " + u.String())
	}

	return distanceDefs[u].factor
}

// ParseDistance parses text as a distance unit.
func ParseDistance(text string) (DistanceUnit, error) {
	return parseAs[DistanceUnit](CategoryDistance, text)
}
