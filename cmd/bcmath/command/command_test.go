package command

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/numeral-go/bcmath"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := New()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return strings.TrimSpace(out.String()), err
}

func TestCommands(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"convert octal to hex", []string{"convert", "777", "--from", "8", "--to", "16"}, "1ff"},
		{"convert default to hex", []string{"convert", "511"}, "1ff"},
		{"convert upper hex", []string{"convert", "1FF", "--from", "16", "--to", "2"}, "111111111"},
		{"charset", []string{"charset", "8"}, "01234567"},
		{"encode hex", []string{"encode", "511"}, "01ff"},
		{"encode hex prefixed", []string{"encode", "511", "--prefix"}, "0x01ff"},
		{"encode base", []string{"encode", "61", "--base", "62"}, "Z"},
		{"encode charset", []string{"encode", "1000000", "--charset", bcmath.CharsetBase58}, "68GP"},
		{"decode hex", []string{"decode", "0x01FF"}, "511"},
		{"decode charset", []string{"decode", "68GP", "--charset", bcmath.CharsetBase58}, "1000000"},
		{"decode case-insensitive", []string{"decode", "FF", "--base", "16", "--case-sensitive=false"}, "255"},
		{"decode named base folds case", []string{"decode", "FF", "--base", "16"}, "255"},
		{"decode base36 folds case", []string{"decode", "zz", "--base", "36"}, "1295"},
		{"calc div", []string{"calc", "10", "div", "3", "--scale", "2"}, "3.33"},
		{"calc truncates", []string{"calc", "10", "div", "3"}, "3"},
		{"calc negative", []string{"calc", "--scale", "4", "--", "-1.5", "mul", "2"}, "-3.0000"},
		{"calc trim", []string{"calc", "1", "add", "2", "--scale", "4", "--trim"}, "3"},
		{"calc pow", []string{"calc", "2", "pow", "64"}, "18446744073709551616"},
		{"calc mod", []string{"calc", "10", "mod", "3"}, "1"},
		{"calc cmp", []string{"calc", "1.001", "cmp", "1", "--scale", "3"}, "1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := run(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		err  error
	}{
		{"unknown base", []string{"convert", "777", "--from", "7"}, bcmath.ErrUnknownCharset},
		{"invalid symbol", []string{"decode", "1Z", "--base", "2"}, bcmath.ErrInvalidSymbol},
		{"case-sensitive named base", []string{"decode", "FF", "--base", "16", "--case-sensitive"}, bcmath.ErrInvalidSymbol},
		{"invalid operand", []string{"calc", "01", "add", "1"}, bcmath.ErrInvalidOperand},
		{"division by zero", []string{"calc", "1", "div", "0"}, bcmath.ErrDivisionByZero},
		{"negative encode", []string{"encode", "1.5"}, bcmath.ErrInvalidOperand},
		{"invalid charset", []string{"encode", "5", "--charset", "00"}, bcmath.ErrInvalidCharset},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			assert.ErrorIs(t, err, tt.err)
		})
	}

	_, err := run(t, "calc", "1", "xor", "2")
	assert.ErrorContains(t, err, "unknown operator")

	_, err = run(t, "encode", "5", "--charset", "01", "--base", "2")
	assert.Error(t, err)
}

func TestScaleFromEnv(t *testing.T) {
	t.Setenv("BCMATH_SCALE", "5")
	got, err := run(t, "calc", "1", "div", "8")
	require.NoError(t, err)
	assert.Equal(t, "0.12500", got)

	t.Setenv("BCMATH_SCALE", "-2")
	_, err = run(t, "calc", "1", "div", "8")
	assert.Error(t, err)
}
