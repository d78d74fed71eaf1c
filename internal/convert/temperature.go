package convert

import "unitconvert/internal/units"

const absoluteZeroCelsius = -273.15

func toCelsius(v float64, u units.TemperatureUnit) float64 {
	switch u {
	case units.Celsius:
		return v
	case units.Fahrenheit:
		return (v - 32) * 5 / 9
	case units.Kelvin:
		return v + absoluteZeroCelsius
	}

	panic("convert: unknown temperature unit " + u.String())
}

func fromCelsius(c float64, u units.TemperatureUnit) float64 {
	switch u {
	case units.Celsius:
		return c
	case units.Fahrenheit:
		return c*9/5 + 32
	case units.Kelvin:
		return c - absoluteZeroCelsius
	}

	panic("convert: unknown temperature unit " + u.String())
}
