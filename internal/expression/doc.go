// Package expression parses free-text conversion requests such as
// "10C -> F" or "3.5 miles to km" into a value and two unit strings.
//
// Parsing is a pure validation pass. Unknown unit names are reported with a
// "did you mean" suggestion when a known alias is close enough, but the
// parser never corrects its input and never performs the conversion.
package expression
