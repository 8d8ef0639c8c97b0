package bernstein

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Binomial returns the binomial coefficient "n choose k". It is 0 if k > n.
// It panics if n or k is negative.
//
// The coefficient is computed with the multiplicative recurrence
// C(m+1, i+1) = C(m, i)·(m+1)/(i+1). Each step divides out the common factor
// of C(m, i) and i+1 before multiplying, so no intermediate value exceeds the
// result and the result is exact whenever it fits in I.
func Binomial[I constraints.Integer](n, k I) I {
	if n < 0 || k < 0 {
		panic(fmt.Sprintf("binomial coefficient of negative arguments (%d, %d)", n, k))
	}
	if k > n {
		return 0
	}
	if k == 0 {
		return 1
	}
	next := n - k + 1
	for i := I(1); i < k; i++ {
		// i+1 divides next·(n-k+1+i), and (i+1)/g is coprime to next/g, so it
		// divides n-k+1+i.
		g := gcd(next, i+1)
		next = (next / g) * ((n - k + 1 + i) / ((i + 1) / g))
	}
	return next
}

// gcd returns the greatest common divisor of the non-negative a and b.
func gcd[I constraints.Integer](a, b I) I {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// lowBound returns max(0, k-n) without going negative for unsigned types.
func lowBound[I constraints.Integer](k, n I) I {
	if k >= n {
		return k - n
	}
	return 0
}

// Mul returns the product of two polynomials. If p has degree m and q has
// degree n, the product has degree m+n. The product is defined over p's
// interval.
//
// Multiplying by the zero polynomial yields the zero polynomial.
//
// Coefficient k of the product is
//
//	Σ p[j]·q[k-j] · C(m, j)·C(n, k-j) / C(m+n, k)
//
// over max(0, k-n) ≤ j ≤ min(m, k), with the binomial ratio computed in U.
//
// Mul is commutative when T's multiplication and addition are: the terms of
// each coefficient are summed in pairs from both ends, an order that doesn't
// depend on which operand comes first, so Mul(p, q) and Mul(q, p) have
// identical coefficients even for floating-point types.
func Mul[T Algebra[T, U], U Field[U]](p, q Bernstein[T, U]) Bernstein[T, U] {
	if len(p.coef) == 0 || len(q.coef) == 0 {
		return p.with(nil)
	}
	m := len(p.coef) - 1
	n := len(q.coef) - 1
	var z U
	out := make([]T, m+n+1)
	terms := make([]T, 0, min(m, n)+1)
	for k := range out {
		terms = terms[:0]
		ck := z.FromInt(Binomial(m+n, k))
		for j := lowBound(k, n); j <= min(m, k); j++ {
			w := z.FromInt(Binomial(m, j)).Mul(z.FromInt(Binomial(n, k-j))).Div(ck)
			terms = append(terms, p.coef[j].Mul(q.coef[k-j]).Scale(w))
		}
		out[k] = sumFromEnds(terms)
	}
	return p.with(out)
}

// sumFromEnds returns (t[0]+t[len-1]) + (t[1]+t[len-2]) + ..., adding the
// middle term last. Reversing t doesn't change the result if Add is
// commutative. t must not be empty.
func sumFromEnds[T interface{ Add(T) T }](t []T) T {
	lo, hi := 0, len(t)-1
	var acc T
	first := true
	add := func(x T) {
		if first {
			acc, first = x, false
		} else {
			acc = acc.Add(x)
		}
	}
	for ; lo < hi; lo, hi = lo+1, hi-1 {
		add(t[lo].Add(t[hi]))
	}
	if lo == hi {
		add(t[lo])
	}
	return acc
}

// Scale returns the polynomial with every coefficient multiplied by s.
func (p Bernstein[T, U]) Scale(s U) Bernstein[T, U] {
	out := make([]T, len(p.coef))
	for i, c := range p.coef {
		out[i] = c.Scale(s)
	}
	return p.with(out)
}

// Scale returns s·p. It is the same as p.Scale(s) and exists so that scalar
// multiplication can be written with the scalar on the left.
func Scale[T Vector[T, U], U Field[U]](s U, p Bernstein[T, U]) Bernstein[T, U] {
	return p.Scale(s)
}

// Elevate raises the degree of the polynomial by one without changing the
// function it represents.
//
// Returns a polynomial with one more coefficient that is exactly equal to p,
// which is useful for bringing polynomials to a common degree before calling
// [Bernstein.Add] or [Bernstein.Sub].
func (p Bernstein[T, U]) Elevate() Bernstein[T, U] {
	n := len(p.coef)
	if n == 0 {
		return p.with(nil)
	}
	var z U
	dn := z.FromInt(n)
	out := make([]T, n+1)
	out[0] = p.coef[0]
	out[n] = p.coef[n-1]
	for i := 1; i < n; i++ {
		a := z.FromInt(i).Div(dn)
		b := z.FromInt(n - i).Div(dn)
		out[i] = p.coef[i-1].Scale(a).Add(p.coef[i].Scale(b))
	}
	return p.with(out)
}
