package convert

import "unitconvert/internal/units"

// family is the conversion shape shared by all categories.
type family[U comparable] struct {
	toBase   func(v float64, u U) float64
	fromBase func(v float64, u U) float64
}

// convert returns v unchanged when from and to are the same unit.
func (f family[U]) convert(v float64, from, to U) float64 {
	if from == to {
		return v
	}

	return f.fromBase(f.toBase(v, from), to)
}

// linear builds a family from the number of base units in one of each unit.
func linear[U comparable](factor func(U) float64) family[U] {
	return family[U]{
		toBase: func(v float64, u U) float64 {
			return v * factor(u)
		},
		fromBase: func(v float64, u U) float64 {
			return v / factor(u)
		},
	}
}

var (
	distanceFamily    = linear(units.DistanceUnit.Meters)
	massFamily        = linear(units.MassUnit.Grams)
	temperatureFamily = family[units.TemperatureUnit]{
		toBase:   toCelsius,
		fromBase: fromCelsius,
	}
)

func convertWith[U comparable](f family[U], parse func(string) (U, error), v float64, from, to string) (float64, error) {
	fu, err := parse(from)
	if err != nil {
		return 0, err
	}

	tu, err := parse(to)
	if err != nil {
		return 0, err
	}

	return f.convert(v, fu, tu), nil
}
