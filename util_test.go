package bernstein

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// approx returns options that consider floating-point coefficients equal if
// they are within an absolute distance of tol.
func approx(tol float64) cmp.Option {
	return cmp.Options{
		cmp.Comparer(func(a, b Float64) bool {
			return math.Abs(float64(a-b)) <= tol
		}),
		cmp.Comparer(func(a, b Complex128) bool {
			return cmplx.Abs(complex128(a-b)) <= tol
		}),
		cmp.Comparer(func(a, b Vec2) bool {
			return a.Sub(b).Hypot() <= tol
		}),
		cmp.Comparer(func(a, b Vec3) bool {
			return a.Sub(b).Hypot() <= tol
		}),
	}
}

var ratComparer = cmp.Comparer(func(a, b Rat) bool {
	return a.Equal(b)
})

func rats(v ...[2]int64) []Rat {
	out := make([]Rat, len(v))
	for i, r := range v {
		out[i] = NewRat(r[0], r[1])
	}
	return out
}
