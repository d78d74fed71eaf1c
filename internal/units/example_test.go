package units_test

import (
	"fmt"

	"unitconvert/internal/units"
)

func Example() {
	u, _ := units.ParseUnit(units.CategoryDistance, "Feet")
	fmt.Println(u, units.Display(u), u.Category())

	fmt.Println(units.ListUnits(units.CategoryTemperature))
	// Output:
	// foot ft distance
	// [K °C °F]
}
