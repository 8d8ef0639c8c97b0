package bernstein

import "math"

// Float64 is a float64 that implements [Field] and [Algebra] over itself.
type Float64 float64

func (f Float64) Add(o Float64) Float64 { return f + o }
func (f Float64) Sub(o Float64) Float64 { return f - o }
func (f Float64) Mul(o Float64) Float64 { return f * o }
func (f Float64) Div(o Float64) Float64 { return f / o }

// Scale implements [Vector]; it is the same as [Float64.Mul].
func (f Float64) Scale(s Float64) Float64 { return f * s }

func (Float64) FromInt(n int) Float64 { return Float64(n) }

func (f Float64) IsZero() bool { return f == 0 }

// IsNaN reports whether f is NaN.
func (f Float64) IsNaN() bool { return math.IsNaN(float64(f)) }

// IsInf reports whether f is infinite.
func (f Float64) IsInf() bool { return math.IsInf(float64(f), 0) }

// Float32 is a float32 that implements [Field] and [Algebra] over itself.
type Float32 float32

func (f Float32) Add(o Float32) Float32 { return f + o }
func (f Float32) Sub(o Float32) Float32 { return f - o }
func (f Float32) Mul(o Float32) Float32 { return f * o }
func (f Float32) Div(o Float32) Float32 { return f / o }
func (f Float32) Scale(s Float32) Float32 { return f * s }
func (Float32) FromInt(n int) Float32 { return Float32(n) }
func (f Float32) IsZero() bool { return f == 0 }
