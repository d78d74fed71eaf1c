// Package convert implements the conversion engine: the per-category
// conversion arithmetic and the resolver that picks the category for a pair
// of unit strings.
//
// Every category follows the same shape. A value is first normalized to the
// category's base unit (meter, gram, Celsius) and then produced from it:
//
//	fromBase(toBase(v, from), to)
//
// Distance and mass are pure scale factors relative to the base unit;
// temperature needs an offset as well and uses affine formulas.
package convert
