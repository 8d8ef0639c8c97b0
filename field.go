package bernstein

// Field describes the scalar type U of a polynomial: the type of its
// parameter and of its interval bounds. Coefficients are scaled by elements
// of the field.
//
// Implementations must be usable as values; methods return new values and
// must not modify the receiver.
type Field[U any] interface {
	Add(U) U
	Sub(U) U
	Mul(U) U
	Div(U) U
	// FromInt returns the integer n as an element of the field. The receiver
	// is ignored, so it is valid to call it on the zero value.
	FromInt(n int) U
	// IsZero reports whether the value is the additive identity.
	IsZero() bool
}

// Vector describes the coefficient type T of a polynomial, a vector space
// over the field U.
type Vector[T, U any] interface {
	Add(T) T
	Sub(T) T
	Scale(U) T
}

// Algebra is a [Vector] that is also closed under multiplication. Polynomial
// multiplication ([Mul]) requires its coefficients to form an algebra.
type Algebra[T, U any] interface {
	Vector[T, U]
	Mul(T) T
}

var _ Field[Float64] = Float64(0)
var _ Algebra[Float64, Float64] = Float64(0)
var _ Field[Float32] = Float32(0)
var _ Algebra[Float32, Float32] = Float32(0)
var _ Algebra[Complex128, Float64] = Complex128(0)
var _ Algebra[Complex64, Float32] = Complex64(0)
var _ Field[Rat] = Rat{}
var _ Algebra[Rat, Rat] = Rat{}
var _ Vector[Vec2, Float64] = Vec2{}
var _ Vector[Vec3, Float64] = Vec3{}
