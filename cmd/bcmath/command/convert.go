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
	"strconv"

	"github.com/spf13/cobra"

	"github.com/numeral-go/bcmath"
	"github.com/numeral-go/bcmath/internal/logging"
)

func newConvert() *cobra.Command {
	var from, to int
	cmd := &cobra.Command{
		Use:   "convert <value>",
		Short: "Convert an integer between two named bases (2, 8, 10, 16, 36 or 62).",
		Example: "bcmath convert 777 --from 8 --to 16\n" +
			"bcmath convert 1ff --from 16 --to 10",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logging.FromContext(cmd.Context()).Debug("convert", "value", args[0], "from", from, "to", to)
			s, err := bcmath.Convert(args[0], from, to)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		},
	}
	cmd.Flags().IntVar(&from, "from", 10, "Base the value is written in.")
	cmd.Flags().IntVar(&to, "to", 16, "Base to write the value in.")
	return cmd
}

func newCharset() *cobra.Command {
	return &cobra.Command{
		Use:   "charset <base>",
		Short: "Print the symbols of a named base.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid base %q: %w", args[0], err)
			}
			s, err := bcmath.CharsetForBase(base)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		},
	}
}

// charsetFlags selects a charset by name or by base. Neither means hex.
type charsetFlags struct {
	charset string
	base    int
}

func (f *charsetFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.charset, "charset", "", "Custom charset; the symbol at position i denotes digit i.")
	cmd.Flags().IntVar(&f.base, "base", 0, "Named base (2, 8, 16, 36 or 62).")
	cmd.MarkFlagsMutuallyExclusive("charset", "base")
}

func (f *charsetFlags) resolve() (string, bool, error) {
	switch {
	case f.charset != "":
		return f.charset, true, nil
	case f.base != 0:
		s, err := bcmath.CharsetForBase(f.base)
		return s, err == nil, err
	}
	return "", false, nil
}

func newEncode() *cobra.Command {
	var (
		cs     charsetFlags
		prefix bool
	)
	cmd := &cobra.Command{
		Use:   "encode <decimal>",
		Short: "Encode a non-negative decimal integer, in hex unless a charset or base is given.",
		Example: "bcmath encode 511 --prefix\n" +
			"bcmath encode 1000000 --charset 123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			charset, ok, err := cs.resolve()
			if err != nil {
				return err
			}
			var s string
			if ok {
				var n *bcmath.Number
				if n, err = bcmath.FromString(args[0]); err != nil {
					return err
				}
				s, err = bcmath.EncodeFromBase10(n, charset)
			} else {
				s, err = bcmath.EncodeHex(args[0], prefix)
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		},
	}
	cs.register(cmd)
	cmd.Flags().BoolVar(&prefix, "prefix", false, "Prefix hex output with 0x.")
	return cmd
}

func newDecode() *cobra.Command {
	var (
		cs            charsetFlags
		caseSensitive bool
	)
	cmd := &cobra.Command{
		Use:   "decode <encoded>",
		Short: "Decode a value to base 10, from hex (optionally 0x-prefixed) unless a charset or base is given.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			charset, ok, err := cs.resolve()
			if err != nil {
				return err
			}
			var s string
			if ok {
				if !cmd.Flags().Changed("case-sensitive") {
					caseSensitive = cs.base == 0 || cs.base >= 36
				}
				var n *bcmath.Number
				if n, err = bcmath.DecodeToBase10(args[0], charset, caseSensitive); err != nil {
					return err
				}
				s = n.Value()
			} else {
				s, err = bcmath.DecodeHexString(args[0])
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		},
	}
	cs.register(cmd)
	cmd.Flags().BoolVar(&caseSensitive, "case-sensitive", true, "Distinguish upper and lower case symbols. Defaults to false for named bases below 36.")
	return cmd
}
