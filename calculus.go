package bernstein

import "fmt"

// Diff returns the derivative of the polynomial, which has one coefficient
// fewer and is defined over the same interval.
//
// The derivative of a constant (a polynomial with a single coefficient) is
// the zero polynomial, which has no coefficients. Differentiating the zero
// polynomial returns it unchanged.
//
// See Piegl & Tiller, "The NURBS Book", Springer (2012), p. 22, Eq. (1.9).
func (p Bernstein[T, U]) Diff() Bernstein[T, U] {
	n := len(p.coef)
	if n <= 1 {
		return p.with(nil)
	}
	var z U
	factor := z.FromInt(n - 1).Div(p.u1.Sub(p.u0))
	out := make([]T, n-1)
	for i := range out {
		out[i] = p.coef[i+1].Sub(p.coef[i]).Scale(factor)
	}
	return p.with(out)
}

// Integ returns the antiderivative of the polynomial whose value at u0 is c.
// The result has one more coefficient and is defined over the same interval.
//
// It panics with an error wrapping [ErrDegenerateInterval] if u0 = u1, which
// only happens for the zero value of Bernstein.
//
// Integ and [Bernstein.Diff] are inverses up to the constant of integration:
// p.Integ(c).Diff() equals p, and p.Diff().Integ(p.Start()) equals p, exactly
// for exact coefficient types such as [Rat].
//
// See R. T. Farouki, "Pythagorean-Hodograph Curves: Algebra and Geometry
// Inseparable", Springer (2008), p. 253, Sec. 11.2.6.
func (p Bernstein[T, U]) Integ(c T) Bernstein[T, U] {
	if p.u1.Sub(p.u0).IsZero() {
		panic(fmt.Errorf("%w: cannot integrate over (%v, %v)", ErrDegenerateInterval, p.u0, p.u1))
	}
	n := len(p.coef)
	out := make([]T, n+1)
	out[0] = c
	if n == 0 {
		return p.with(out)
	}
	var z U
	factor := p.u1.Sub(p.u0).Div(z.FromInt(n))
	for k := 1; k <= n; k++ {
		out[k] = out[k-1].Add(p.coef[k-1].Scale(factor))
	}
	return p.with(out)
}
