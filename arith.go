/*

SPDX-Copyright: Copyright (c) The bcmath Authors
SPDX-License-Identifier: Apache-2.0
Copyright 2026 The bcmath Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and limitations under the License.

*/

package bcmath

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// powGuardDigits is the extra precision carried by fractional powers before
// truncation.
const powGuardDigits = 10

func (n *Number) dec() decimal.Decimal {
	return decimal.RequireFromString(n.value)
}

// fixed truncates d toward zero to scale digits and formats it with exactly
// that many fractional digits.
func fixed(d decimal.Decimal, scale int) string {
	return d.Truncate(int32(scale)).StringFixed(int32(scale))
}

// Add returns n + x truncated to the resolved scale. Like Sub and Mul, it
// panics when the explicit scale exceeds math.MaxInt32.
func (n *Number) Add(x *Number, scale ...int) *Number {
	return n.derive(n.add(x, scale))
}

// AddAssign sets n to n + x and returns n.
func (n *Number) AddAssign(x *Number, scale ...int) *Number {
	n.value = n.add(x, scale)
	return n
}

func (n *Number) add(x *Number, scale []int) string {
	return fixed(n.dec().Add(x.dec()), n.resolveScale(scale...))
}

// Sub returns n - x truncated to the resolved scale.
func (n *Number) Sub(x *Number, scale ...int) *Number {
	return n.derive(n.sub(x, scale))
}

// SubAssign sets n to n - x and returns n.
func (n *Number) SubAssign(x *Number, scale ...int) *Number {
	n.value = n.sub(x, scale)
	return n
}

func (n *Number) sub(x *Number, scale []int) string {
	return fixed(n.dec().Sub(x.dec()), n.resolveScale(scale...))
}

// Mul returns n * x truncated to the resolved scale.
func (n *Number) Mul(x *Number, scale ...int) *Number {
	return n.derive(n.mul(x, scale))
}

// MulAssign sets n to n * x and returns n.
func (n *Number) MulAssign(x *Number, scale ...int) *Number {
	n.value = n.mul(x, scale)
	return n
}

func (n *Number) mul(x *Number, scale []int) string {
	return fixed(n.dec().Mul(x.dec()), n.resolveScale(scale...))
}

// Div returns n / x truncated toward zero to the resolved scale.
func (n *Number) Div(x *Number, scale ...int) (*Number, error) {
	v, err := n.div(x, scale)
	if err != nil {
		return nil, err
	}
	return n.derive(v), nil
}

// DivAssign sets n to n / x and returns n. On error n is unchanged.
func (n *Number) DivAssign(x *Number, scale ...int) (*Number, error) {
	v, err := n.div(x, scale)
	if err != nil {
		return n, err
	}
	n.value = v
	return n, nil
}

func (n *Number) div(x *Number, scale []int) (string, error) {
	d := x.dec()
	if d.IsZero() {
		return "", fmt.Errorf("%w: %s / %s", ErrDivisionByZero, n.value, x.value)
	}
	s, err := n.scaleFor(scale)
	if err != nil {
		return "", err
	}
	q, _ := n.dec().QuoRem(d, int32(s))
	return fixed(q, s), nil
}

// Mod returns the remainder of n / x, where the quotient is truncated to an
// integer. The remainder has the sign of n and is truncated to the resolved
// scale.
func (n *Number) Mod(x *Number, scale ...int) (*Number, error) {
	v, err := n.mod(x, scale)
	if err != nil {
		return nil, err
	}
	return n.derive(v), nil
}

// ModAssign sets n to the remainder of n / x and returns n. On error n is
// unchanged.
func (n *Number) ModAssign(x *Number, scale ...int) (*Number, error) {
	v, err := n.mod(x, scale)
	if err != nil {
		return n, err
	}
	n.value = v
	return n, nil
}

// Rem is an alias for Mod.
func (n *Number) Rem(x *Number, scale ...int) (*Number, error) {
	return n.Mod(x, scale...)
}

func (n *Number) mod(x *Number, scale []int) (string, error) {
	d := x.dec()
	if d.IsZero() {
		return "", fmt.Errorf("%w: %s %% %s", ErrDivisionByZero, n.value, x.value)
	}
	s, err := n.scaleFor(scale)
	if err != nil {
		return "", err
	}
	_, r := n.dec().QuoRem(d, 0)
	return fixed(r, s), nil
}

// Pow returns n raised to x, truncated to the resolved scale.
//
// Integer exponents are computed exactly before truncation; a negative one
// yields 1 / n^-x. Fractional exponents are evaluated with guard digits beyond
// the scale and then truncated.
func (n *Number) Pow(x *Number, scale ...int) (*Number, error) {
	v, err := n.pow(x, scale)
	if err != nil {
		return nil, err
	}
	return n.derive(v), nil
}

// PowAssign sets n to n raised to x and returns n. On error n is unchanged.
func (n *Number) PowAssign(x *Number, scale ...int) (*Number, error) {
	v, err := n.pow(x, scale)
	if err != nil {
		return n, err
	}
	n.value = v
	return n, nil
}

func (n *Number) pow(x *Number, scale []int) (string, error) {
	base, exp := n.dec(), x.dec()
	s, err := n.scaleFor(scale)
	if err != nil {
		return "", err
	}

	if !exp.IsInteger() {
		switch {
		case base.IsNegative():
			return "", fmt.Errorf("%w: negative base %s with fractional exponent %s", ErrInvalidOperand, n.value, x.value)
		case base.IsZero() && exp.IsNegative():
			return "", fmt.Errorf("%w: 0 raised to %s", ErrDivisionByZero, x.value)
		case base.IsZero():
			return fixed(decimal.Zero, s), nil
		}
		p, err := base.PowWithPrecision(exp, int32(min(s+powGuardDigits, math.MaxInt32)))
		if err != nil {
			return "", fmt.Errorf("%w: %s raised to %s: %v", ErrInvalidOperand, n.value, x.value, err)
		}
		return fixed(p, s), nil
	}

	if !exp.IsNegative() {
		return fixed(intPow(base, exp), s), nil
	}
	if base.IsZero() {
		return "", fmt.Errorf("%w: 0 raised to %s", ErrDivisionByZero, x.value)
	}
	q, _ := decimal.NewFromInt(1).QuoRem(intPow(base, exp.Neg()), int32(s))
	return fixed(q, s), nil
}

// intPow computes base**exp exactly by repeated squaring. exp must be a
// non-negative integer.
func intPow(base, exp decimal.Decimal) decimal.Decimal {
	e := exp.BigInt()
	result := decimal.NewFromInt(1)
	for i := e.BitLen() - 1; i >= 0; i-- {
		result = result.Mul(result)
		if e.Bit(i) == 1 {
			result = result.Mul(base)
		}
	}
	return result
}

// MulPow returns n * base**exponent truncated to the resolved scale. The
// power term is an exact integer. Both base and exponent must be at least 1.
func (n *Number) MulPow(base, exponent int, scale ...int) (*Number, error) {
	v, err := n.mulPow(base, exponent, scale)
	if err != nil {
		return nil, err
	}
	return n.derive(v), nil
}

// MulPowAssign sets n to n * base**exponent and returns n. On error n is
// unchanged.
func (n *Number) MulPowAssign(base, exponent int, scale ...int) (*Number, error) {
	v, err := n.mulPow(base, exponent, scale)
	if err != nil {
		return n, err
	}
	n.value = v
	return n, nil
}

func (n *Number) mulPow(base, exponent int, scale []int) (string, error) {
	if base < 1 {
		return "", fmt.Errorf("%w: base must be a positive integer, got %d", ErrInvalidOperand, base)
	}
	if exponent < 1 {
		return "", fmt.Errorf("%w: exponent must be a positive integer, got %d", ErrInvalidOperand, exponent)
	}
	s, err := n.scaleFor(scale)
	if err != nil {
		return "", err
	}
	p := intPow(decimal.NewFromInt(int64(base)), decimal.NewFromInt(int64(exponent)))
	return fixed(n.dec().Mul(p), s), nil
}
