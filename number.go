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
	"reflect"
	"regexp"
	"strconv"
	"strings"
)

var (
	numberPattern  = regexp.MustCompile(`^-?(0|[1-9][0-9]*)(\.[0-9]+)?$`)
	integerPattern = regexp.MustCompile(`^-?(0|[1-9][0-9]*)$`)
)

// Input is the set of Go types a Number can be constructed from.
type Input interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64 | ~string | *Number
}

// Number is an arbitrary-precision decimal number held as a decimal string.
//
// The value always matches -?(0|[1-9][0-9]*)(\.[0-9]+)?. A Number must not be
// mutated from several goroutines at once.
type Number struct {
	original string
	value    string
	scale    int // -1 when unset
	cfg      *Config
}

// Option configures a Number at construction.
type Option func(*Number) error

// WithConfig binds a Number to a shared Config, which supplies the scale when
// neither the operation nor the Number sets one.
func WithConfig(c *Config) Option {
	return func(n *Number) error {
		n.cfg = c
		return nil
	}
}

// WithScale sets the Number's own scale.
func WithScale(scale int) Option {
	return func(n *Number) error {
		return n.SetScale(scale)
	}
}

// New constructs a Number from v.
//
// Integers convert directly. Floats expand to their exact shortest decimal
// form, so 1.234e-2 becomes "0.01234". Strings must already be canonical:
// "01", "1." and "+1" are rejected. A *Number contributes its current value.
func New[T Input](v T, opts ...Option) (*Number, error) {
	s, err := operand(v)
	if err != nil {
		return nil, err
	}
	n := &Number{original: s, value: s, scale: -1}
	for _, opt := range opts {
		if err := opt(n); err != nil {
			return nil, err
		}
	}
	return n, nil
}

// MustNew is like New but panics on error.
func MustNew[T Input](v T, opts ...Option) *Number {
	n, err := New(v, opts...)
	if err != nil {
		panic(err)
	}
	return n
}

// IsNumeric returns v as a Number and true if it is a valid number, or nil and
// false otherwise.
func IsNumeric[T Input](v T) (*Number, bool) {
	n, err := New(v)
	if err != nil {
		return nil, false
	}
	return n, true
}

// FromInt64 constructs a Number from an integer. It panics if an option
// fails.
func FromInt64(i int64, opts ...Option) *Number {
	return MustNew(i, opts...)
}

// FromFloat64 constructs a Number from a float. NaN and infinities are
// rejected.
func FromFloat64(f float64, opts ...Option) (*Number, error) {
	return New(f, opts...)
}

// FromString constructs a Number from a canonical decimal string.
func FromString(s string, opts ...Option) (*Number, error) {
	return New(s, opts...)
}

func operand[T Input](v T) (string, error) {
	if x, ok := any(v).(*Number); ok {
		if x == nil {
			return "", fmt.Errorf("%w: nil number", ErrInvalidOperand)
		}
		return x.value, nil
	}

	// Named types are matched through their underlying kind.
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Float32:
		return floatString(rv.Float(), 32)
	case reflect.Float64:
		return floatString(rv.Float(), 64)
	}
	s := rv.String()
	if !numberPattern.MatchString(s) {
		return "", fmt.Errorf("%w: %q is not a decimal number", ErrInvalidOperand, s)
	}
	return s, nil
}

// floatString expands f without exponent notation. The shortest form is taken
// first; when it carries an exponent, the fractional digits of the mantissa
// less the exponent give the exact count of decimal places.
func floatString(f float64, bitSize int) (string, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", fmt.Errorf("%w: %v is not a finite number", ErrInvalidOperand, f)
	}
	s := strconv.FormatFloat(f, 'g', -1, bitSize)
	if i := strings.IndexByte(s, 'e'); i >= 0 {
		mantissa := s[:i]
		exp, err := strconv.Atoi(s[i+1:])
		if err != nil {
			return "", fmt.Errorf("%w: cannot expand %s", ErrInvalidOperand, s)
		}
		places := 0
		if dot := strings.IndexByte(mantissa, '.'); dot >= 0 {
			places = len(mantissa) - dot - 1
		}
		s = strconv.FormatFloat(f, 'f', max(places-exp, 0), bitSize)
	}
	if s == "-0" {
		s = "0"
	}
	if !numberPattern.MatchString(s) {
		return "", fmt.Errorf("%w: %q is not a decimal number", ErrInvalidOperand, s)
	}
	return s, nil
}

// Original returns the value the Number was constructed with.
func (n *Number) Original() string {
	return n.original
}

// Value returns the current value.
func (n *Number) Value() string {
	return n.value
}

func (n *Number) String() string {
	return n.value
}

// GoString implements fmt.GoStringer.
func (n *Number) GoString() string {
	return fmt.Sprintf("bcmath.Number{original:%q, value:%q, scale:%d}", n.original, n.value, n.Scale())
}

// Config returns the shared Config the Number is bound to, or nil.
func (n *Number) Config() *Config {
	return n.cfg
}

// SetScale sets the Number's own scale, which takes precedence over the
// Config.
func (n *Number) SetScale(scale int) error {
	if err := checkScale(scale); err != nil {
		return err
	}
	n.scale = scale
	return nil
}

// checkScale rejects scales the decimal kernel cannot represent.
func checkScale(scale int) error {
	if scale < 0 || scale > math.MaxInt32 {
		return fmt.Errorf("%w: scale must be an integer in [0, %d], got %d", ErrInvalidOperand, math.MaxInt32, scale)
	}
	return nil
}

// Scale returns the scale used when an operation is given none.
func (n *Number) Scale() int {
	return n.resolveScale()
}

// resolveScale is like scaleFor but panics on an out of range explicit scale.
func (n *Number) resolveScale(explicit ...int) int {
	s, err := n.scaleFor(explicit)
	if err != nil {
		panic(err)
	}
	return s
}

// scaleFor picks the explicit scale when positive, then the Number's own
// scale, then the Config's, then 0.
func (n *Number) scaleFor(explicit []int) (int, error) {
	if len(explicit) > 0 && explicit[0] > 0 {
		if err := checkScale(explicit[0]); err != nil {
			return 0, err
		}
		return explicit[0], nil
	}
	if n.scale >= 0 {
		return n.scale, nil
	}
	if n.cfg != nil {
		return n.cfg.scale, nil
	}
	return 0, nil
}

// Clone returns an independent copy of n carrying the same scale and Config.
// The copy's original value is n's current value.
func (n *Number) Clone() *Number {
	return &Number{original: n.value, value: n.value, scale: n.scale, cfg: n.cfg}
}

// derive returns a Number holding v with n's scale settings.
func (n *Number) derive(v string) *Number {
	return &Number{original: v, value: v, scale: n.scale, cfg: n.cfg}
}

// IsInteger reports whether the value has no fractional part.
func (n *Number) IsInteger() bool {
	return integerPattern.MatchString(n.value)
}

// Trim returns a copy of n without trailing fractional zeros. If retain is
// given, the fraction is padded back with zeros to at least that many digits.
func (n *Number) Trim(retain ...int) *Number {
	return n.derive(trim(n.value, retain...))
}

// TrimAssign is like Trim but updates n in place.
func (n *Number) TrimAssign(retain ...int) *Number {
	n.value = trim(n.value, retain...)
	return n
}

func trim(v string, retain ...int) string {
	if integerPattern.MatchString(v) {
		return v
	}
	v = strings.TrimRight(strings.TrimRight(v, "0"), ".")
	if len(retain) == 0 || retain[0] <= 0 {
		if v == "-0" {
			return "0"
		}
		return v
	}
	whole, frac, _ := strings.Cut(v, ".")
	if need := retain[0] - len(frac); need > 0 {
		frac += strings.Repeat("0", need)
	}
	return whole + "." + frac
}
