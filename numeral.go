/*

SPDX-Copyright: Copyright (c) Capital One Services, LLC
SPDX-License-Identifier: Apache-2.0
Copyright 2017 Capital One Services, LLC

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
	"slices"
	"strings"
)

// Encode returns the symbols representing n in the charset's numeral system.
// n must be a non-negative integer; zero encodes as the charset's first symbol.
//
// Digits are produced least significant first by repeated integer division by
// the radix.
func (c *Charset) Encode(n *Number) (string, error) {
	if !n.IsInteger() || n.IsNegative() {
		return "", fmt.Errorf("%w: %s is not a non-negative integer", ErrInvalidOperand, n.value)
	}

	radix := FromInt64(int64(c.Radix()))
	num := &Number{original: n.value, value: strings.TrimPrefix(n.value, "-"), scale: 0}
	var digits []int
	for num.Cmp(radix) >= 0 {
		mod, err := num.Mod(radix)
		if err != nil {
			return "", err
		}
		digits = append(digits, int(mod.dec().IntPart()))
		if _, err := num.DivAssign(radix); err != nil {
			return "", err
		}
	}
	digits = append(digits, int(num.dec().IntPart()))
	slices.Reverse(digits)
	return c.Symbols(digits)
}

// Decode returns the base 10 value of s, read in the charset's numeral system.
// Every character of s must be in the charset.
func (c *Charset) Decode(s string) (*Number, error) {
	digits, err := c.Digits(s)
	if err != nil {
		return nil, err
	}

	radix := FromInt64(int64(c.Radix()))
	total := FromInt64(0, WithScale(0))
	multiplier := FromInt64(1, WithScale(0))
	for i := len(digits) - 1; i >= 0; i-- {
		total.AddAssign(multiplier.Mul(FromInt64(int64(digits[i]))))
		multiplier.MulAssign(radix)
	}
	return FromString(total.value)
}

// EncodeFromBase10 returns n written with the symbols of charset.
func EncodeFromBase10(n *Number, charset string) (string, error) {
	c, err := NewCharset(charset)
	if err != nil {
		return "", err
	}
	return c.Encode(n)
}

// DecodeToBase10 reads encoded as a number written with the symbols of
// charset. When caseSensitive is false, both are lower-cased first.
func DecodeToBase10(encoded, charset string, caseSensitive bool) (*Number, error) {
	c, err := NewCharset(charset)
	if err != nil {
		return nil, err
	}
	if !caseSensitive {
		if c, err = c.Fold(); err != nil {
			return nil, err
		}
		encoded = strings.ToLower(encoded)
	}
	return c.Decode(encoded)
}

// Convert re-expresses value from one named base to another, using base 10 as
// the pivot. Bases below 36 are read case-insensitively, since their charsets
// do not distinguish case.
func Convert(value string, fromBase, toBase int) (string, error) {
	if fromBase == toBase {
		return value, nil
	}

	var (
		dec *Number
		err error
	)
	if fromBase == 10 {
		dec, err = FromString(value)
	} else {
		var charset string
		if charset, err = CharsetForBase(fromBase); err != nil {
			return "", err
		}
		dec, err = DecodeToBase10(value, charset, fromBase >= 36)
	}
	if err != nil {
		return "", err
	}

	if toBase == 10 {
		return dec.Value(), nil
	}
	charset, err := CharsetForBase(toBase)
	if err != nil {
		return "", err
	}
	return EncodeFromBase10(dec, charset)
}
