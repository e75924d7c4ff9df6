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

// Package cliconfig holds the settings of the bcmath command, read from flags
// and BCMATH_* environment variables.
package cliconfig

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "BCMATH"

// Keys of the settings. Each is also the name of its flag.
const (
	KeyScale     = "scale"
	KeyLogLevel  = "log-level"
	KeyLogFormat = "log-format"
)

// Defaults.
const (
	DefaultScale     = 0
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
)

// Settings are the resolved command settings.
type Settings struct {
	Scale     int
	LogLevel  string
	LogFormat string
}

// New returns a viper instance reading BCMATH_* environment variables, with
// dashes in keys mapped to underscores.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.SetDefault(KeyScale, DefaultScale)
	v.SetDefault(KeyLogLevel, DefaultLogLevel)
	v.SetDefault(KeyLogFormat, DefaultLogFormat)
	return v
}

// RegisterFlags adds the setting flags to fs and binds them into v, so a flag
// given on the command line takes precedence over the environment.
func RegisterFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	fs.Int(KeyScale, DefaultScale, "Default number of decimal places kept by arithmetic results.")
	fs.String(KeyLogLevel, DefaultLogLevel, "Log level: debug, info, warn or error.")
	fs.String(KeyLogFormat, DefaultLogFormat, "Log format: text or json.")
	for _, key := range []string{KeyScale, KeyLogLevel, KeyLogFormat} {
		if err := v.BindPFlag(key, fs.Lookup(key)); err != nil {
			return fmt.Errorf("binding flag %s: %w", key, err)
		}
	}
	return nil
}

// Load reads and validates the settings held by v.
func Load(v *viper.Viper) (*Settings, error) {
	s := &Settings{
		Scale:     v.GetInt(KeyScale),
		LogLevel:  strings.ToLower(v.GetString(KeyLogLevel)),
		LogFormat: strings.ToLower(v.GetString(KeyLogFormat)),
	}
	if s.Scale < 0 {
		return nil, fmt.Errorf("%s must be a non-negative integer, got %d", KeyScale, s.Scale)
	}
	switch s.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("unknown %s %q", KeyLogLevel, s.LogLevel)
	}
	switch s.LogFormat {
	case "text", "json":
	default:
		return nil, fmt.Errorf("unknown %s %q", KeyLogFormat, s.LogFormat)
	}
	return s, nil
}
