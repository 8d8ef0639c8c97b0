package bernstein

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	// ErrDegenerateInterval is reported when a polynomial's interval (u0, u1)
	// has u0 = u1. Evaluation, differentiation and integration divide by
	// u1-u0.
	ErrDegenerateInterval = errors.New("degenerate interval")
	// ErrDegreeMismatch is reported when combining polynomials of different
	// degrees coefficient-wise.
	ErrDegreeMismatch = errors.New("degree mismatch")
	// ErrIntervalMismatch is reported when combining polynomials defined
	// over different intervals coefficient-wise.
	ErrIntervalMismatch = errors.New("interval mismatch")
)

// Bernstein is a polynomial in the Bernstein basis over the interval
// (u0, u1), with coefficients of type T and parameter type U.
//
// A polynomial with N coefficients has degree N-1; its coefficients are the
// control points of the corresponding Bézier curve. The number of
// coefficients is fixed for the lifetime of a value. Operations that change
// the degree, such as [Bernstein.Diff], [Bernstein.Integ] and [Mul], return
// new polynomials and never modify their operands, so values can be shared
// freely, including between goroutines.
//
// The zero value has no coefficients and a degenerate interval. It evaluates
// to the zero value of T, but [Bernstein.Integ] panics on it. Use [New] or
// [NewOn] to construct polynomials.
type Bernstein[T Vector[T, U], U Field[U]] struct {
	coef []T
	u0   U
	u1   U
}

// New returns the polynomial with the given coefficients over the interval
// (0, 1). It panics if no coefficients are provided.
//
// The coefficients are copied.
func New[T Vector[T, U], U Field[U]](coef ...T) Bernstein[T, U] {
	var u U
	return NewOn(u.FromInt(0), u.FromInt(1), coef...)
}

// NewOn returns the polynomial with the given coefficients over the interval
// (u0, u1). It panics if no coefficients are provided or if u0 = u1; in the
// latter case the panic value is an error wrapping [ErrDegenerateInterval].
//
// The coefficients are copied.
func NewOn[T Vector[T, U], U Field[U]](u0, u1 U, coef ...T) Bernstein[T, U] {
	if len(coef) == 0 {
		panic("polynomial must have at least one coefficient")
	}
	if u1.Sub(u0).IsZero() {
		panic(fmt.Errorf("%w: (%v, %v)", ErrDegenerateInterval, u0, u1))
	}
	return Bernstein[T, U]{
		coef: slices.Clone(coef),
		u0:   u0,
		u1:   u1,
	}
}

// with returns a polynomial over p's interval that takes ownership of coef.
func (p Bernstein[T, U]) with(coef []T) Bernstein[T, U] {
	return Bernstein[T, U]{
		coef: coef,
		u0:   p.u0,
		u1:   p.u1,
	}
}

// Coefficients returns a copy of the polynomial's coefficients.
func (p Bernstein[T, U]) Coefficients() []T {
	return slices.Clone(p.coef)
}

// Coefficient returns the i-th coefficient. It panics if i is out of range.
func (p Bernstein[T, U]) Coefficient(i int) T {
	return p.coef[i]
}

// Len returns the number of coefficients, which is the dimension of the
// basis.
func (p Bernstein[T, U]) Len() int {
	return len(p.coef)
}

// Degree returns the degree of the basis polynomials, Len() - 1. The zero
// polynomial produced by differentiating a constant has degree -1.
func (p Bernstein[T, U]) Degree() int {
	return len(p.coef) - 1
}

// Interval returns the interval (u0, u1) over which the basis is defined.
func (p Bernstein[T, U]) Interval() (U, U) {
	return p.u0, p.u1
}

// Start returns the first coefficient, which is the value of the polynomial
// at u0.
func (p Bernstein[T, U]) Start() T {
	return p.coef[0]
}

// End returns the last coefficient, which is the value of the polynomial at
// u1.
func (p Bernstein[T, U]) End() T {
	return p.coef[len(p.coef)-1]
}

func (p Bernstein[T, U]) String() string {
	sb := &strings.Builder{}
	sb.WriteString("B[")
	for i, c := range p.coef {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(sb, c)
	}
	fmt.Fprintf(sb, "] on (%v, %v)", p.u0, p.u1)
	return sb.String()
}

func (p Bernstein[T, U]) compatible(q Bernstein[T, U]) error {
	if len(p.coef) != len(q.coef) {
		return fmt.Errorf("%w: %d and %d coefficients", ErrDegreeMismatch, len(p.coef), len(q.coef))
	}
	if !p.u0.Sub(q.u0).IsZero() || !p.u1.Sub(q.u1).IsZero() {
		return fmt.Errorf("%w: (%v, %v) and (%v, %v)", ErrIntervalMismatch, p.u0, p.u1, q.u0, q.u1)
	}
	return nil
}

// Add returns p+q. Both polynomials must have the same number of
// coefficients and the same interval. Use [Bernstein.Elevate] to bring
// polynomials of different degrees to a common degree first.
func (p Bernstein[T, U]) Add(q Bernstein[T, U]) (Bernstein[T, U], error) {
	if err := p.compatible(q); err != nil {
		return Bernstein[T, U]{}, err
	}
	out := make([]T, len(p.coef))
	for i := range out {
		out[i] = p.coef[i].Add(q.coef[i])
	}
	return p.with(out), nil
}

// Sub returns p-q, under the same conditions as [Bernstein.Add].
func (p Bernstein[T, U]) Sub(q Bernstein[T, U]) (Bernstein[T, U], error) {
	if err := p.compatible(q); err != nil {
		return Bernstein[T, U]{}, err
	}
	out := make([]T, len(p.coef))
	for i := range out {
		out[i] = p.coef[i].Sub(q.coef[i])
	}
	return p.with(out), nil
}
