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

import "errors"

// Errors returned by this package. Concrete errors wrap one of these, so
// callers should test with errors.Is.
var (
	// ErrInvalidOperand reports input that is not a valid decimal number, or a
	// number that violates a precondition such as being a non-negative integer.
	ErrInvalidOperand = errors.New("invalid operand")

	// ErrDivisionByZero reports a division or modulo by zero.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrUnknownCharset reports a base with no named charset.
	ErrUnknownCharset = errors.New("unknown charset")

	// ErrInvalidCharset reports a charset that cannot define a numeral system.
	ErrInvalidCharset = errors.New("invalid charset")

	// ErrInvalidSymbol reports a character that is absent from the charset.
	ErrInvalidSymbol = errors.New("invalid symbol")
)
