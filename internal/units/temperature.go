package units

//go:generate go tool stringer -type=TemperatureUnit -linecomment -output=temperature_string.go

// TemperatureUnit is a temperature scale. Scales differ by offset as well as
// by scale, so conversions are affine and go through Celsius.
type TemperatureUnit int

const (
	_ TemperatureUnit = iota // skip zero value, use it as a default (invalid) value for TemperatureUnit

	Celsius    // celsius
	Fahrenheit // fahrenheit
	Kelvin     // kelvin
)

var temperatureDefs = [...]unitDef{
	Celsius:    {symbol: "°C", aliases: []string{"c", "°c", "celsius", "centigrade"}},
	Fahrenheit: {symbol: "°F", aliases: []string{"f", "°f", "fahrenheit"}},
	Kelvin:     {symbol: "K", aliases: []string{"k", "°k", "kelvin", "kelvins"}},
}

func (u TemperatureUnit) Category() Category { return CategoryTemperature }

// IsValid reports whether u is a declared temperature scale.
func (u TemperatureUnit) IsValid() bool {
	return u > 0 && int(u) < len(temperatureDefs)
}

func (u TemperatureUnit) Symbol() string {
	if !u.IsValid() {
		return u.String()
	}

	return temperatureDefs[u].symbol
}

// ParseTemperature parses text as a temperature scale.
func ParseTemperature(text string) (TemperatureUnit, error) {
	return parseAs[TemperatureUnit](CategoryTemperature, text)
}
