package bernstein

import (
	"math/big"
)

// Rat is an exact rational number. It implements [Field] and [Algebra] over
// itself, which allows polynomials to be evaluated, differentiated,
// integrated and multiplied without rounding error.
//
// Rat has value semantics: the underlying [big.Rat] is never modified after
// construction. The zero value is 0.
type Rat struct {
	r *big.Rat
}

// NewRat returns the rational a/b. It panics if b is zero.
func NewRat(a, b int64) Rat {
	return Rat{big.NewRat(a, b)}
}

// RatFromBig returns a Rat with the value of x. x is copied.
func RatFromBig(x *big.Rat) Rat {
	return Rat{new(big.Rat).Set(x)}
}

func (q Rat) big() *big.Rat {
	if q.r == nil {
		return new(big.Rat)
	}
	return q.r
}

// Big returns a copy of q as a *big.Rat.
func (q Rat) Big() *big.Rat {
	return new(big.Rat).Set(q.big())
}

func (q Rat) Add(o Rat) Rat {
	return Rat{new(big.Rat).Add(q.big(), o.big())}
}

func (q Rat) Sub(o Rat) Rat {
	return Rat{new(big.Rat).Sub(q.big(), o.big())}
}

func (q Rat) Mul(o Rat) Rat {
	return Rat{new(big.Rat).Mul(q.big(), o.big())}
}

// Div returns q/o. It panics if o is zero.
func (q Rat) Div(o Rat) Rat {
	return Rat{new(big.Rat).Quo(q.big(), o.big())}
}

// Scale implements [Vector]; it is the same as [Rat.Mul].
func (q Rat) Scale(s Rat) Rat {
	return q.Mul(s)
}

func (Rat) FromInt(n int) Rat {
	return Rat{new(big.Rat).SetInt64(int64(n))}
}

func (q Rat) IsZero() bool {
	return q.r == nil || q.r.Sign() == 0
}

// Equal reports whether q and o represent the same rational number.
func (q Rat) Equal(o Rat) bool {
	return q.big().Cmp(o.big()) == 0
}

// Num returns the numerator of q in lowest terms.
func (q Rat) Num() *big.Int {
	return new(big.Int).Set(q.big().Num())
}

// Denom returns the denominator of q in lowest terms. It is always positive.
func (q Rat) Denom() *big.Int {
	return new(big.Int).Set(q.big().Denom())
}

// Float64 returns the nearest float64 value for q and whether it is exact.
func (q Rat) Float64() (float64, bool) {
	return q.big().Float64()
}

func (q Rat) String() string {
	return q.big().RatString()
}
