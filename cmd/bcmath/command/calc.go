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

package command

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/numeral-go/bcmath"
	"github.com/numeral-go/bcmath/internal/logging"
)

var calcOps = []string{"add", "sub", "mul", "div", "mod", "pow", "cmp"}

func newCalc(e *env) *cobra.Command {
	var trim bool
	cmd := &cobra.Command{
		Use:   "calc <a> <op> <b>",
		Short: "Apply an operator to two decimal numbers.",
		Long: "Apply an operator to two decimal numbers. The result is truncated to --scale decimal places.\n\n" +
			"Operators: " + strings.Join(calcOps, ", ") + ". cmp prints -1, 0 or 1.\n" +
			"Negative operands must follow `--`.",
		Example: "bcmath calc 10 div 3 --scale 2\n" +
			"bcmath calc --scale 4 -- -1.5 mul 2",
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := bcmath.New(args[0], bcmath.WithConfig(e.config))
			if err != nil {
				return err
			}
			b, err := bcmath.New(args[2], bcmath.WithConfig(e.config))
			if err != nil {
				return err
			}
			logging.FromContext(cmd.Context()).Debug("calc", "a", a, "op", args[1], "b", b, "scale", a.Scale())

			if args[1] == "cmp" {
				fmt.Fprintln(cmd.OutOrStdout(), a.Cmp(b))
				return nil
			}
			r, err := calc(a, args[1], b)
			if err != nil {
				return err
			}
			if trim {
				r = r.Trim()
			}
			fmt.Fprintln(cmd.OutOrStdout(), r)
			return nil
		},
	}
	cmd.Flags().BoolVar(&trim, "trim", false, "Strip trailing fractional zeros from the result.")
	return cmd
}

func calc(a *bcmath.Number, op string, b *bcmath.Number) (*bcmath.Number, error) {
	switch op {
	case "add":
		return a.Add(b), nil
	case "sub":
		return a.Sub(b), nil
	case "mul":
		return a.Mul(b), nil
	case "div":
		return a.Div(b)
	case "mod":
		return a.Mod(b)
	case "pow":
		return a.Pow(b)
	}
	return nil, fmt.Errorf("unknown operator %q, expected one of %s", op, strings.Join(calcOps, ", "))
}
