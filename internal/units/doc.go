// Package units defines the unit taxonomy: the closed set of categories,
// the unit enumerations of each category, and the aliases accepted when
// parsing unit text.
//
// Every unit has one display symbol ("ft", "kg", "°C"), one canonical name
// ("foot") and any number of case-insensitive aliases. Alias sets are
// disjoint across categories, so a piece of text names at most one unit.
package units
