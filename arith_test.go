package bcmath

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArithmetic(t *testing.T) {
	tests := []struct {
		op    string
		a, b  string
		scale int
		want  string
	}{
		{"add", "1", "2", 0, "3"},
		{"add", "1", "2", 2, "3.00"},
		{"add", "1.999", "0.001", 0, "2"},
		{"add", "1.5", "1", 0, "2"},
		{"add", "-1.5", "0.25", 1, "-1.2"},
		{"add", "99999999999999999999999999", "1", 0, "100000000000000000000000000"},
		{"sub", "1", "2", 0, "-1"},
		{"sub", "0.1", "0.3", 3, "-0.200"},
		{"sub", "0", "0.001", 2, "0.00"},
		{"sub", "100000000000000000000", "0.000000000000000000001", 21, "99999999999999999999.999999999999999999999"},
		{"mul", "2", "3", 0, "6"},
		{"mul", "1.25", "1.25", 0, "1"},
		{"mul", "1.25", "1.25", 2, "1.56"},
		{"mul", "1.25", "1.25", 4, "1.5625"},
		{"mul", "-1.25", "1.25", 2, "-1.56"},
		{"mul", "123456789123456789", "987654321987654321", 0, "121932631356500531347203169112635269"},
		{"div", "10", "3", 2, "3.33"},
		{"div", "10", "3", 0, "3"},
		{"div", "2", "3", 5, "0.66666"},
		{"div", "-10", "3", 2, "-3.33"},
		{"div", "-7", "2", 0, "-3"},
		{"div", "1", "8", 3, "0.125"},
		{"div", "1", "8", 5, "0.12500"},
		{"div", "1", "3", 30, "0.333333333333333333333333333333"},
		{"mod", "10", "3", 0, "1"},
		{"mod", "-7", "3", 0, "-1"},
		{"mod", "7", "-3", 0, "1"},
		{"mod", "10", "3", 2, "1.00"},
		{"mod", "5.5", "2", 1, "1.5"},
		{"mod", "5.75", "2", 1, "1.7"},
		{"pow", "2", "10", 0, "1024"},
		{"pow", "2", "0", 0, "1"},
		{"pow", "0", "0", 0, "1"},
		{"pow", "1.5", "2", 2, "2.25"},
		{"pow", "1.5", "3", 2, "3.37"},
		{"pow", "-2", "3", 0, "-8"},
		{"pow", "2", "-2", 2, "0.25"},
		{"pow", "3", "-1", 4, "0.3333"},
		{"pow", "10", "30", 0, "1000000000000000000000000000000"},
	}

	for idx, tt := range tests {
		t.Run(fmt.Sprintf("Sample%d/%s", idx+1, tt.op), func(t *testing.T) {
			a, b := MustNew(tt.a), MustNew(tt.b)
			var (
				got *Number
				err error
			)
			switch tt.op {
			case "add":
				got = a.Add(b, tt.scale)
			case "sub":
				got = a.Sub(b, tt.scale)
			case "mul":
				got = a.Mul(b, tt.scale)
			case "div":
				got, err = a.Div(b, tt.scale)
			case "mod":
				got, err = a.Mod(b, tt.scale)
			case "pow":
				got, err = a.Pow(b, tt.scale)
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Value())
			assert.Equal(t, tt.a, a.Value(), "receiver must not change")
			assert.True(t, numberPattern.MatchString(got.Value()))
		})
	}
}

func TestDivisionByZero(t *testing.T) {
	a := MustNew("10")
	for _, zero := range []string{"0", "-0", "0.000"} {
		_, err := a.Div(MustNew(zero))
		assert.ErrorIs(t, err, ErrDivisionByZero)
		_, err = a.Mod(MustNew(zero))
		assert.ErrorIs(t, err, ErrDivisionByZero)
		_, err = a.Rem(MustNew(zero))
		assert.ErrorIs(t, err, ErrDivisionByZero)
	}

	n, err := a.DivAssign(MustNew("0"))
	assert.ErrorIs(t, err, ErrDivisionByZero)
	assert.Same(t, a, n)
	assert.Equal(t, "10", a.Value())

	_, err = MustNew("0").Pow(MustNew("-1"))
	assert.ErrorIs(t, err, ErrDivisionByZero)
	_, err = MustNew("0").Pow(MustNew("-0.5"), 4)
	assert.ErrorIs(t, err, ErrDivisionByZero)
}

func TestPowFractional(t *testing.T) {
	// fractional exponents are approximations
	got, err := MustNew("4").Pow(MustNew("0.5"), 4)
	require.NoError(t, err)
	assert.True(t, got.InRange(MustNew("1.9999"), MustNew("2"), 4), got.Value())

	got, err = MustNew("0").Pow(MustNew("0.5"), 2)
	require.NoError(t, err)
	assert.Equal(t, "0.00", got.Value())

	_, err = MustNew("-4").Pow(MustNew("0.5"), 4)
	assert.ErrorIs(t, err, ErrInvalidOperand)
}

func TestPowFractionalDigits(t *testing.T) {
	tests := []struct {
		base, exp string
		scale     int
		want      string
	}{
		{"2", "0.5", 30, "1.414213562373095048801688724209"},
		{"10", "0.25", 20, "1.77827941003892280122"},
		{"2", "-1.5", 20, "0.35355339059327376220"},
		{"2", "1.5", 10, "2.8284271247"},
	}
	for _, tt := range tests {
		t.Run(tt.base+"^"+tt.exp, func(t *testing.T) {
			got, err := MustNew(tt.base).Pow(MustNew(tt.exp), tt.scale)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Value())
		})
	}
}

func TestScaleOutOfRange(t *testing.T) {
	a, b := MustNew("1.5"), MustNew("2")
	huge := math.MaxInt32 + 2

	_, err := a.Div(b, huge)
	assert.ErrorIs(t, err, ErrInvalidOperand)
	_, err = a.Mod(b, huge)
	assert.ErrorIs(t, err, ErrInvalidOperand)
	_, err = a.Pow(b, huge)
	assert.ErrorIs(t, err, ErrInvalidOperand)
	_, err = a.MulPow(10, 2, huge)
	assert.ErrorIs(t, err, ErrInvalidOperand)
	_, err = a.DivAssign(b, huge)
	assert.ErrorIs(t, err, ErrInvalidOperand)
	assert.Equal(t, "1.5", a.Value())

	assert.Panics(t, func() { a.Add(b, huge) })
	assert.Panics(t, func() { a.Cmp(b, huge) })
}

func TestMulPow(t *testing.T) {
	got, err := MustNew("1.5").MulPow(10, 3)
	require.NoError(t, err)
	assert.Equal(t, "1500", got.Value())

	got, err = MustNew("0.000123").MulPow(10, 2, 4)
	require.NoError(t, err)
	assert.Equal(t, "0.0123", got.Value())

	got, err = MustNew("3").MulPow(2, 64)
	require.NoError(t, err)
	assert.Equal(t, "55340232221128654848", got.Value())

	got, err = MustNew("7").MulPow(1, 1000)
	require.NoError(t, err)
	assert.Equal(t, "7", got.Value())

	for _, args := range [][2]int{{0, 2}, {-10, 2}, {10, 0}, {10, -1}} {
		_, err := MustNew("1").MulPow(args[0], args[1])
		assert.ErrorIs(t, err, ErrInvalidOperand)
	}

	n := MustNew("2")
	_, err = n.MulPowAssign(10, 2)
	require.NoError(t, err)
	assert.Equal(t, "200", n.Value())
	_, err = n.MulPowAssign(0, 2)
	assert.ErrorIs(t, err, ErrInvalidOperand)
	assert.Equal(t, "200", n.Value())
}

func TestSnapshotAndAssign(t *testing.T) {
	a := MustNew("5")
	b := a.Add(MustNew("3"))
	assert.Equal(t, "5", a.Value())
	assert.Equal(t, "8", b.Value())
	assert.NotSame(t, a, b)

	chained := a.Add(MustNew("1")).Mul(MustNew("2"))
	assert.Equal(t, "12", chained.Value())
	assert.Equal(t, "5", a.Value())

	acc := MustNew("0")
	for i := 1; i <= 10; i++ {
		assert.Same(t, acc, acc.AddAssign(FromInt64(int64(i))))
	}
	assert.Equal(t, "55", acc.Value())
	assert.Equal(t, "0", acc.Original())

	acc.SubAssign(MustNew("5")).MulAssign(MustNew("2"))
	assert.Equal(t, "100", acc.Value())

	_, err := acc.DivAssign(MustNew("8"), 1)
	require.NoError(t, err)
	assert.Equal(t, "12.5", acc.Value())

	_, err = acc.ModAssign(MustNew("5"), 1)
	require.NoError(t, err)
	assert.Equal(t, "2.5", acc.Value())

	_, err = acc.PowAssign(MustNew("2"), 2)
	require.NoError(t, err)
	assert.Equal(t, "6.25", acc.Value())
}

func TestResultsKeepScaleSettings(t *testing.T) {
	cfg, err := NewConfig(3)
	require.NoError(t, err)

	a := MustNew("1", WithConfig(cfg))
	q, err := a.Div(MustNew("3"))
	require.NoError(t, err)
	assert.Equal(t, "0.333", q.Value())
	assert.Same(t, cfg, q.Config())

	// the quotient divides at the shared scale too
	q2, err := q.Div(MustNew("2"))
	require.NoError(t, err)
	assert.Equal(t, "0.166", q2.Value())

	own := MustNew("1", WithScale(1))
	assert.Equal(t, "0.3", own.Mul(MustNew("0.35")).Value())
	assert.Equal(t, "0.35", own.Mul(MustNew("0.35"), 2).Value())
}
