package bernstein

import (
	"errors"
	"testing"
)

func TestDiffZeroOrder(t *testing.T) {
	c := New[Float64, Float64](1)
	d := c.Diff()
	if d.Len() != 0 || d.Degree() != -1 {
		t.Errorf("got %v, want the zero polynomial", d)
	}
	if dd := d.Diff(); dd.Len() != 0 {
		t.Errorf("got %v, want the zero polynomial", dd)
	}
	if u0, u1 := d.Interval(); u0 != 0 || u1 != 1 {
		t.Errorf("interval not preserved, got (%v, %v)", u0, u1)
	}
}

func TestDiff(t *testing.T) {
	const tol = 1e-15
	opt := approx(tol)

	c := New[Complex128, Float64](Cmplx(0, 0), Cmplx(2, 1))
	diff(t, []Complex128{Cmplx(2, 1)}, c.Diff().Coefficients(), opt)

	p := New[Float64, Float64](1, -1, 2)
	diff(t, []Float64{-4, 6}, p.Diff().Coefficients(), opt)

	q := New[Float64, Float64](1, 0, 1, -1)
	diff(t, []Float64{-3, 3, -6}, q.Diff().Coefficients(), opt)

	// The derivative scales inversely with the length of the interval.
	r := NewOn[Float64, Float64](0, 2, 0, 2)
	diff(t, []Float64{1}, r.Diff().Coefficients(), opt)
}

func TestDiffFiniteDifference(t *testing.T) {
	p := New[Vec2, Float64](Vec(0, 0), Vec(0, 0.5), Vec(1, 1), Vec(3, -2))
	deriv := p.Diff()
	const n = 10
	for i := range n + 1 {
		ts := Float64(i) / n
		const delta = 1e-6
		dApprox := p.Eval(ts + delta).Sub(p.Eval(ts)).Mul(1.0 / delta)
		if error := deriv.Eval(ts).Sub(dApprox).Hypot(); error > delta*20 {
			t.Errorf("got difference of %g, want at most %g", error, delta*20)
		}
	}
}

func TestInteg(t *testing.T) {
	const tol = 1e-15
	c := New[Complex128, Float64](Cmplx(0, 1), Cmplx(1, 0))
	h := c.Integ(0)
	diff(t, []Complex128{Cmplx(0, 0), Cmplx(0, 0.5), Cmplx(0.5, 0.5)}, h.Coefficients(), approx(tol))

	// Integrating the zero polynomial yields a constant.
	z := New[Float64, Float64](4).Diff().Integ(2.5)
	diff(t, []Float64{2.5}, z.Coefficients())
}

func TestIntegDiffInverseRational(t *testing.T) {
	coef := rats([2]int64{1, 13}, [2]int64{-3, 11}, [2]int64{1, 7})
	c := New[Rat, Rat](coef...)

	diff(t, coef, c.Integ(Rat{}).Diff().Coefficients(), ratComparer)
	diff(t, coef, c.Diff().Integ(NewRat(1, 13)).Coefficients(), ratComparer)

	// On an interval other than (0, 1).
	d := NewOn[Rat, Rat](NewRat(-2, 3), NewRat(5, 2), coef...)
	diff(t, coef, d.Integ(NewRat(7, 1)).Diff().Coefficients(), ratComparer)
	diff(t, coef, d.Diff().Integ(d.Start()).Coefficients(), ratComparer)
}

func TestIntegDiffInverseFloat(t *testing.T) {
	polys := [][]Float64{
		{1.5},
		{0.25, -3},
		{1, -1, 2},
		{0.5, -1.25, 3, 0.125},
		{3.1, 4.1, 5.9, 2.6, 5.3},
	}
	opt := approx(1e-15)
	for _, coef := range polys {
		p := New[Float64, Float64](coef...)
		diff(t, coef, p.Integ(0.75).Diff().Coefficients(), opt)
		if len(coef) >= 2 {
			diff(t, coef, p.Diff().Integ(p.Start()).Coefficients(), opt)
		}
	}
}

func TestIntegValue(t *testing.T) {
	// ∫₀ᵘ 2x dx = u², with 2x = B[0 2] on (0, 1).
	p := New[Float64, Float64](0, 2).Integ(0)
	for _, u := range []Float64{0, 0.25, 0.5, 1} {
		diff(t, u*u, p.Eval(u), approx(1e-15))
	}
}

func TestIntegConstantOfZeroPolynomial(t *testing.T) {
	z := NewOn[Float64, Float64](1, 3, 5).Diff()
	p := z.Integ(4)
	diff(t, []Float64{4}, p.Coefficients())
	if u0, u1 := p.Interval(); u0 != 1 || u1 != 3 {
		t.Errorf("got interval (%v, %v), want (1, 3)", u0, u1)
	}
}

func TestIntegZeroValuePanics(t *testing.T) {
	defer func() {
		err, ok := recover().(error)
		if !ok || !errors.Is(err, ErrDegenerateInterval) {
			t.Errorf("got panic value %v, want ErrDegenerateInterval", err)
		}
	}()
	var p Bernstein[Float64, Float64]
	p.Integ(1)
	t.Error("expected panic")
}
