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

// Config carries settings shared by many Numbers. It is immutable once built,
// so one Config may be read from several goroutines.
type Config struct {
	scale int
}

// NewConfig returns a Config whose default scale is scale.
func NewConfig(scale int) (*Config, error) {
	if err := checkScale(scale); err != nil {
		return nil, err
	}
	return &Config{scale: scale}, nil
}

// Scale returns the default scale.
func (c *Config) Scale() int {
	return c.scale
}

// WithScale returns a copy of c with another default scale. Numbers bound to c
// are not affected.
func (c *Config) WithScale(scale int) (*Config, error) {
	return NewConfig(scale)
}

// New constructs a Number bound to c.
func (c *Config) New(s string) (*Number, error) {
	return New(s, WithConfig(c))
}
