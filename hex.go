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
	"regexp"
)

var hexPattern = regexp.MustCompile(`^(0[xX])?[0-9a-fA-F]+$`)

// Encode returns n in lowercase hexadecimal, left-padded with a zero to an
// even number of hexits and prefixed with "0x" if prefix is set. n must be a
// non-negative integer.
func (n *Number) Encode(prefix bool) (string, error) {
	hexits, err := EncodeFromBase10(n, CharsetBase16)
	if err != nil {
		return "", err
	}
	if len(hexits)%2 != 0 {
		hexits = "0" + hexits
	}
	if prefix {
		return "0x" + hexits, nil
	}
	return hexits, nil
}

// EncodeHex is Encode for a decimal string, which must hold a non-negative
// integer.
func EncodeHex(decimal string, prefix bool) (string, error) {
	n, err := FromString(decimal)
	if err != nil {
		return "", err
	}
	return n.Encode(prefix)
}

// DecodeHex returns the value of a hexadecimal string with an optional "0x"
// prefix. Hexits are read case-insensitively.
func DecodeHex(hexits string) (*Number, error) {
	if !hexPattern.MatchString(hexits) {
		return nil, fmt.Errorf("%w: %q is not a hexadecimal number", ErrInvalidOperand, hexits)
	}
	if len(hexits) > 2 && (hexits[1] == 'x' || hexits[1] == 'X') {
		hexits = hexits[2:]
	}
	return DecodeToBase10(hexits, CharsetBase16, false)
}

// DecodeHexString is DecodeHex returning the decimal string.
func DecodeHexString(hexits string) (string, error) {
	n, err := DecodeHex(hexits)
	if err != nil {
		return "", err
	}
	return n.Value(), nil
}
