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

// Package command contains the commands of the bcmath binary.
package command

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/numeral-go/bcmath"
	"github.com/numeral-go/bcmath/internal/cliconfig"
	"github.com/numeral-go/bcmath/internal/logging"
)

// env is shared by the commands of one tree.
type env struct {
	viper  *viper.Viper
	config *bcmath.Config
}

// New returns the root command with every subcommand attached.
func New() *cobra.Command {
	e := &env{viper: cliconfig.New()}

	root := &cobra.Command{
		Use:   "bcmath",
		Short: "bcmath performs arbitrary-precision decimal arithmetic and base conversion.",
		Long: "`bcmath` evaluates decimal arithmetic on numbers of any size, truncating results to a scale,\n" +
			"and converts integers between numeral systems such as binary, octal, hex, base36 and base62.\n\n" +
			"Settings can also be given as BCMATH_SCALE, BCMATH_LOG_LEVEL and BCMATH_LOG_FORMAT.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return e.load(cmd)
		},
	}
	if err := cliconfig.RegisterFlags(e.viper, root.PersistentFlags()); err != nil {
		panic(err)
	}

	root.AddCommand(
		newConvert(),
		newCharset(),
		newEncode(),
		newDecode(),
		newCalc(e),
	)
	return root
}

func (e *env) load(cmd *cobra.Command) error {
	s, err := cliconfig.Load(e.viper)
	if err != nil {
		return err
	}
	cfg, err := bcmath.NewConfig(s.Scale)
	if err != nil {
		return err
	}
	e.config = cfg

	logger := logging.New(s.LogLevel, s.LogFormat, cmd.ErrOrStderr())
	cmd.SetContext(logging.WithLogger(cmd.Context(), logger))
	logger.Debug("settings loaded", "command", cmd.Name(), "scale", s.Scale)
	return nil
}
