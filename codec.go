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
	"strings"
	"unicode/utf8"
)

// Named charsets. The symbol at position i denotes digit value i.
const (
	CharsetBinary = "01"
	CharsetOctal  = "01234567"
	CharsetBase16 = "0123456789abcdef"
	CharsetBase36 = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	CharsetBase58 = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"
	CharsetBase62 = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

	CharsetHex = CharsetBase16
)

// CharsetForBase returns the named charset for base. Only bases 2, 8, 16, 36
// and 62 have one.
func CharsetForBase(base int) (string, error) {
	switch base {
	case 2:
		return CharsetBinary, nil
	case 8:
		return CharsetOctal, nil
	case 16:
		return CharsetBase16, nil
	case 36:
		return CharsetBase36, nil
	case 62:
		return CharsetBase62, nil
	}
	return "", fmt.Errorf("%w: no charset for base %d", ErrUnknownCharset, base)
}

// Charset maps the symbols of a positional numeral system to digit values and
// back.
// Element 'rtd' (rune-to-digit) supports the mapping from runes to digit values.
// Element 'dtr' (digit-to-rune) supports the mapping from digit values to runes.
type Charset struct {
	rtd map[rune]int
	dtr []rune
}

// NewCharset builds a Charset from the runes of s, in order. s may contain
// arbitrary UTF-8 characters, but each must appear once and there must be at
// least two of them.
func NewCharset(s string) (*Charset, error) {
	if s == "" {
		return nil, fmt.Errorf("%w: empty charset", ErrInvalidCharset)
	}
	ret := &Charset{
		rtd: make(map[rune]int),
		dtr: make([]rune, 0, utf8.RuneCountInString(s)),
	}
	for _, rv := range s {
		if _, ok := ret.rtd[rv]; ok {
			return nil, fmt.Errorf("%w: duplicate symbol %q", ErrInvalidCharset, rv)
		}
		ret.rtd[rv] = len(ret.dtr)
		ret.dtr = append(ret.dtr, rv)
	}
	if len(ret.dtr) < 2 {
		return nil, fmt.Errorf("%w: a charset needs at least two symbols, got %q", ErrInvalidCharset, s)
	}
	return ret, nil
}

// Radix returns the number of symbols, which is the base of the numeral system.
func (c *Charset) Radix() int {
	return len(c.dtr)
}

func (c *Charset) String() string {
	return string(c.dtr)
}

// Symbol returns the symbol for digit value d.
func (c *Charset) Symbol(d int) (rune, error) {
	if d < 0 || d > len(c.dtr)-1 {
		return 0, fmt.Errorf("%w: digit %d not in [0..%d]", ErrInvalidSymbol, d, len(c.dtr)-1)
	}
	return c.dtr[d], nil
}

// Index returns the digit value of symbol r. The boolean is false if r is not
// in the charset.
func (c *Charset) Index(r rune) (int, bool) {
	d, ok := c.rtd[r]
	return d, ok
}

// Fold returns a lower-cased copy of c for case-insensitive decoding.
func (c *Charset) Fold() (*Charset, error) {
	return NewCharset(strings.ToLower(c.String()))
}

// Digits converts s into the digit value of each of its symbols, most
// significant first.
// It is an error for s to be empty or to contain symbols not in the charset.
func (c *Charset) Digits(s string) ([]int, error) {
	if s == "" {
		return nil, fmt.Errorf("%w: nothing to decode", ErrInvalidSymbol)
	}
	ret := make([]int, 0, utf8.RuneCountInString(s))
	i := 0
	for _, rv := range s {
		d, ok := c.Index(rv)
		if !ok {
			return nil, fmt.Errorf("%w: character %q at position %d is not in charset %q", ErrInvalidSymbol, rv, i, c.String())
		}
		ret = append(ret, d)
		i++
	}
	return ret, nil
}

// Symbols constructs a string from digit values, most significant first.
// It is an error for a value to lie outside the charset.
func (c *Charset) Symbols(digits []int) (string, error) {
	var b strings.Builder
	for i, d := range digits {
		if d < 0 || d > len(c.dtr)-1 {
			return "", fmt.Errorf("%w: digit at position %d out of range: %d not in [0..%d]", ErrInvalidSymbol, i, d, len(c.dtr)-1)
		}
		b.WriteRune(c.dtr[d])
	}
	return b.String(), nil
}
