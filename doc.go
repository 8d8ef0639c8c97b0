// Package bernstein provides generic polynomials in the Bernstein basis, the
// representation underlying Bézier curves and Pythagorean-hodograph curves.
//
// # Polynomials
//
// [Bernstein] holds the N coefficients of a polynomial of degree N-1 together
// with the interval (u0, u1) over which its basis is defined. The
// coefficients of a Bernstein polynomial are the control points of the
// corresponding Bézier curve: a cubic Bézier with control points P0, P1, P2,
// P3 is simply New[Vec2, Float64](P0, P1, P2, P3).
//
// Polynomials are immutable values. Every operation returns a new polynomial
// or a plain value:
//
//   - Evaluation using de Casteljau's algorithm (see [Bernstein.Eval])
//   - Differentiation and integration (see [Bernstein.Diff] and [Bernstein.Integ])
//   - Multiplication of polynomials (see [Mul])
//   - Scalar multiplication (see [Bernstein.Scale] and [Scale])
//   - Degree elevation, subdivision, and sampling (see [Bernstein.Elevate],
//     [Bernstein.Subdivide], and [Bernstein.Sample])
//
// Go doesn't allow array lengths to be computed from type parameters, so the
// degree of a polynomial is a property of the value, not of its type.
//
// # Coefficients and scalars
//
// Polynomials are generic over two types. U is the type of the parameter and
// must implement [Field]. T is the type of the coefficients and must
// implement [Vector] over U. Multiplying two polynomials additionally
// requires T to implement [Algebra].
//
// This package includes the following implementations:
//   - [Float64] and [Float32], fields and algebras over themselves
//   - [Complex128] and [Complex64], algebras over [Float64] and [Float32]
//   - [Rat], exact rationals
//   - [Vec2] and [Vec3], vectors over [Float64]
//
// Other types can be used by implementing the interfaces.
//
// # Errors
//
// Most operations can't fail. Constructing a polynomial over an interval with
// u0 = u1 is a programming error and panics with [ErrDegenerateInterval].
// Adding or subtracting polynomials of different degrees or intervals returns
// [ErrDegreeMismatch] or [ErrIntervalMismatch]. Floating-point coefficient
// types propagate NaN and infinities like any other floating-point
// computation.
//
// # Literature
//
// This package makes use of the following sources:
//   - [The NURBS Book] by Piegl and Tiller
//   - [Pythagorean-Hodograph Curves: Algebra and Geometry Inseparable] by Farouki
//   - [Construction of G2 rounded corners with Pythagorean-hodograph curves] by Farouki
//   - [A Primer on Bézier Curves]
//
// [The NURBS Book]: https://doi.org/10.1007/978-3-642-59223-2
// [Pythagorean-Hodograph Curves: Algebra and Geometry Inseparable]: https://doi.org/10.1007/978-3-540-73398-0
// [Construction of G2 rounded corners with Pythagorean-hodograph curves]: https://escholarship.org/uc/item/6fq8n655
// [A Primer on Bézier Curves]: https://pomax.github.io/bezierinfo/
package bernstein
