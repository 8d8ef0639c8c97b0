package bernstein

import (
	"fmt"
	"iter"
	"slices"
)

// Eval evaluates the polynomial at u using de Casteljau's algorithm.
//
// u isn't restricted to the polynomial's interval; values outside of it
// extrapolate. The zero polynomial returned by differentiating a constant
// evaluates to the zero value of T.
//
// See Piegl & Tiller, "The NURBS Book", Springer (2012), p. 24, A1.5.
func (p Bernstein[T, U]) Eval(u U) T {
	n := len(p.coef)
	switch n {
	case 0:
		var zero T
		return zero
	case 1:
		return p.coef[0]
	}

	h := p.u1.Sub(p.u0)
	a := p.u1.Sub(u).Div(h)
	b := u.Sub(p.u0).Div(h)
	q := slices.Clone(p.coef)
	for k := 1; k < n; k++ {
		for i := 0; i < n-k; i++ {
			q[i] = q[i].Scale(a).Add(q[i+1].Scale(b))
		}
	}
	return q[0]
}

// Subdivide splits the polynomial at u into two polynomials of the same
// degree, defined over (u0, u) and (u, u1) respectively. Each agrees with p
// on its interval. It panics if u coincides with either end of the interval,
// with an error wrapping [ErrDegenerateInterval].
func (p Bernstein[T, U]) Subdivide(u U) (Bernstein[T, U], Bernstein[T, U]) {
	if u.Sub(p.u0).IsZero() || p.u1.Sub(u).IsZero() {
		panic(fmt.Errorf("%w: cannot split (%v, %v) at %v", ErrDegenerateInterval, p.u0, p.u1, u))
	}
	n := len(p.coef)
	left := make([]T, n)
	right := make([]T, n)
	if n > 0 {
		h := p.u1.Sub(p.u0)
		a := p.u1.Sub(u).Div(h)
		b := u.Sub(p.u0).Div(h)
		q := slices.Clone(p.coef)
		left[0] = q[0]
		right[n-1] = q[n-1]
		for k := 1; k < n; k++ {
			for i := 0; i < n-k; i++ {
				q[i] = q[i].Scale(a).Add(q[i+1].Scale(b))
			}
			left[k] = q[0]
			right[n-1-k] = q[n-1-k]
		}
	}
	return Bernstein[T, U]{coef: left, u0: p.u0, u1: u},
		Bernstein[T, U]{coef: right, u0: u, u1: p.u1}
}

// Sample returns an iterator over n+1 evenly spaced parameters across the
// polynomial's interval and the polynomial's values at them. The first and
// last parameters are exactly u0 and u1. It panics if n < 1.
//
// This is the usual way of turning a polynomial curve into points for
// plotting.
func (p Bernstein[T, U]) Sample(n int) iter.Seq2[U, T] {
	if n < 1 {
		panic(fmt.Sprintf("invalid number of sample intervals %d", n))
	}
	return func(yield func(U, T) bool) {
		var z U
		h := p.u1.Sub(p.u0)
		d := z.FromInt(n)
		for i := 0; i <= n; i++ {
			var u U
			switch i {
			case 0:
				u = p.u0
			case n:
				u = p.u1
			default:
				u = p.u0.Add(h.Mul(z.FromInt(i)).Div(d))
			}
			if !yield(u, p.Eval(u)) {
				return
			}
		}
	}
}
