package bernstein

import (
	"fmt"
	"math/cmplx"
)

// Complex128 is a complex128 that implements [Algebra] over [Float64].
//
// Points in the plane are commonly represented as complex numbers when
// constructing Pythagorean-hodograph curves, as squaring a complex
// polynomial produces a hodograph whose magnitude is a polynomial.
type Complex128 complex128

// Cmplx returns the complex number re + im·i.
func Cmplx(re, im float64) Complex128 {
	return Complex128(complex(re, im))
}

func (c Complex128) Add(o Complex128) Complex128 { return c + o }
func (c Complex128) Sub(o Complex128) Complex128 { return c - o }
func (c Complex128) Mul(o Complex128) Complex128 { return c * o }

// Scale multiplies both the real and the imaginary part by s.
func (c Complex128) Scale(s Float64) Complex128 {
	return Complex128(complex(real(c)*float64(s), imag(c)*float64(s)))
}

// Real returns the real part of c.
func (c Complex128) Real() float64 { return real(c) }

// Imag returns the imaginary part of c.
func (c Complex128) Imag() float64 { return imag(c) }

// Abs returns the magnitude of c.
func (c Complex128) Abs() float64 { return cmplx.Abs(complex128(c)) }

// Vec2 returns c as the vector ⟨re, im⟩.
func (c Complex128) Vec2() Vec2 {
	return Vec2{X: real(c), Y: imag(c)}
}

func (c Complex128) String() string {
	return fmt.Sprintf("%g%+gi", real(c), imag(c))
}

// Complex64 is a complex64 that implements [Algebra] over [Float32].
type Complex64 complex64

func (c Complex64) Add(o Complex64) Complex64 { return c + o }
func (c Complex64) Sub(o Complex64) Complex64 { return c - o }
func (c Complex64) Mul(o Complex64) Complex64 { return c * o }

func (c Complex64) Scale(s Float32) Complex64 {
	return Complex64(complex(real(c)*float32(s), imag(c)*float32(s)))
}

func (c Complex64) Real() float32 { return real(c) }
func (c Complex64) Imag() float32 { return imag(c) }
