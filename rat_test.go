package bernstein

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRatArithmetic(t *testing.T) {
	a := NewRat(1, 3)
	b := NewRat(-3, 4)

	require.Equal(t, "-5/12", a.Add(b).String())
	require.Equal(t, "13/12", a.Sub(b).String())
	require.Equal(t, "-1/4", a.Mul(b).String())
	require.Equal(t, "-4/9", a.Div(b).String())
	require.Equal(t, "1/6", a.Scale(NewRat(1, 2)).String())

	// Operands are left untouched.
	require.Equal(t, "1/3", a.String())
	require.Equal(t, "-3/4", b.String())

	require.Panics(t, func() { a.Div(Rat{}) })
}

func TestRatZeroValue(t *testing.T) {
	var z Rat
	require.True(t, z.IsZero())
	require.Equal(t, "0", z.String())
	require.True(t, z.Equal(NewRat(0, 5)))
	require.True(t, z.Add(NewRat(2, 3)).Equal(NewRat(2, 3)))
	require.True(t, z.FromInt(7).Equal(NewRat(7, 1)))
	require.False(t, z.FromInt(7).IsZero())
}

func TestRatConversions(t *testing.T) {
	x := big.NewRat(6, -8)
	q := RatFromBig(x)
	x.SetInt64(1)
	require.Equal(t, "-3/4", q.String())
	require.Equal(t, big.NewInt(-3), q.Num())
	require.Equal(t, big.NewInt(4), q.Denom())

	f, exact := q.Float64()
	require.True(t, exact)
	require.Equal(t, -0.75, f)

	b := q.Big()
	b.SetInt64(5)
	require.Equal(t, "-3/4", q.String())
}
