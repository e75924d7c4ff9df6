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

import "github.com/shopspring/decimal"

// Cmp compares n and x after truncating both to the resolved scale. It
// returns -1 if n < x, 0 if n == x and +1 if n > x.
func (n *Number) Cmp(x *Number, scale ...int) int {
	return cmpAt(n.dec(), x.dec(), n.resolveScale(scale...))
}

func cmpAt(a, b decimal.Decimal, scale int) int {
	return a.Truncate(int32(scale)).Cmp(b.Truncate(int32(scale)))
}

// IsZero reports whether n is zero at its scale.
func (n *Number) IsZero() bool {
	return n.sign() == 0
}

// IsPositive reports whether n is greater than zero at its scale.
func (n *Number) IsPositive() bool {
	return n.sign() > 0
}

// IsNegative reports whether n is less than zero at its scale.
func (n *Number) IsNegative() bool {
	return n.sign() < 0
}

func (n *Number) sign() int {
	return cmpAt(n.dec(), decimal.Zero, n.resolveScale())
}

// Equals reports whether n == x.
func (n *Number) Equals(x *Number, scale ...int) bool {
	return n.Cmp(x, scale...) == 0
}

// GreaterThan reports whether n > x.
func (n *Number) GreaterThan(x *Number, scale ...int) bool {
	return n.Cmp(x, scale...) > 0
}

// GreaterThanOrEquals reports whether n >= x.
func (n *Number) GreaterThanOrEquals(x *Number, scale ...int) bool {
	return n.Cmp(x, scale...) >= 0
}

// LessThan reports whether n < x.
func (n *Number) LessThan(x *Number, scale ...int) bool {
	return n.Cmp(x, scale...) < 0
}

// LessThanOrEquals reports whether n <= x.
func (n *Number) LessThanOrEquals(x *Number, scale ...int) bool {
	return n.Cmp(x, scale...) <= 0
}

// InRange reports whether lo <= n <= hi.
func (n *Number) InRange(lo, hi *Number, scale ...int) bool {
	s := n.resolveScale(scale...)
	v := n.dec()
	return cmpAt(v, lo.dec(), s) >= 0 && cmpAt(v, hi.dec(), s) <= 0
}
