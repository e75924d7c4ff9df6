/*
Package bcmath implements arbitrary-precision decimal arithmetic over
decimal strings, and conversion of arbitrary-precision integers between
positional numeral systems.

A Number wraps a canonical decimal string. Every arithmetic result is
truncated (never rounded) to a scale, the count of fractional digits kept:

	n := bcmath.MustNew("10")
	q, _ := n.Div(bcmath.MustNew("3"), 2) // "3.33"

The scale comes from the explicit argument of an operation, the Number's own
scale, or a shared Config, in that order. A zero scale truncates to an integer.

Operations come in two families. Add, Sub, Mul, Div, Mod, Pow and MulPow
return a new Number and leave the receiver untouched. Their *Assign
counterparts mutate the receiver and return it, for accumulator loops.

Charsets define numeral systems: the symbol at position i denotes digit i.
Convert re-expresses a value between two named bases, using base 10 as the
pivot representation:

	s, _ := bcmath.Convert("777", 8, 16) // "1ff"
*/
package bcmath
