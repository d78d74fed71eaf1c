package convert

import "unitconvert/internal/units"

// Result is a completed conversion. From and To hold display symbols.
type Result struct {
	Category  units.Category
	Value     float64
	From      string
	Converted float64
	To        string
}

// Run resolves the converter for from and to, converts value and labels
// the result with the units' display symbols.
func Run(value float64, from, to string) (Result, error) {
	c, err := Resolve(from, to)
	if err != nil {
		return Result{}, err
	}

	converted, err := c.Convert(value, from, to)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Category:  c.Category(),
		Value:     value,
		From:      c.UnitString(from),
		Converted: converted,
		To:        c.UnitString(to),
	}, nil
}
