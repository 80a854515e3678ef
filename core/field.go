package core

import "math/big"

// Field bundles the arithmetic a working precision V must support:
// addition, subtraction, multiplication, division, plus the additive
// and multiplicative identities. It is passed as a value rather than
// satisfied by a method set because Go type parameters cannot carry
// per-type associated constants (there is no way to ask an arbitrary
// V for "its" zero or one), so the capability is supplied explicitly
// at the call site instead.
type Field[V any] struct {
	Add func(a, b V) V
	Sub func(a, b V) V
	Mul func(a, b V) V
	Div func(a, b V) V
	Zero V
	One  V
}

// Float64Field is the double-precision field used by the reference
// implementations of burg and toeplitz.
func Float64Field() Field[float64] {
	return Field[float64]{
		Add:  func(a, b float64) float64 { return a + b },
		Sub:  func(a, b float64) float64 { return a - b },
		Mul:  func(a, b float64) float64 { return a * b },
		Div:  func(a, b float64) float64 { return a / b },
		Zero: 0,
		One:  1,
	}
}

// RationalField is an exact field over *big.Rat. It exists so pairwise
// summation can be exercised under exact arithmetic, per spec.md §4.1's
// requirement that the algorithm "avoid conditional logic ... that
// misbehaves under exact arithmetic".
func RationalField() Field[*big.Rat] {
	return Field[*big.Rat]{
		Add:  func(a, b *big.Rat) *big.Rat { return new(big.Rat).Add(a, b) },
		Sub:  func(a, b *big.Rat) *big.Rat { return new(big.Rat).Sub(a, b) },
		Mul:  func(a, b *big.Rat) *big.Rat { return new(big.Rat).Mul(a, b) },
		Div:  func(a, b *big.Rat) *big.Rat { return new(big.Rat).Quo(a, b) },
		Zero: big.NewRat(0, 1),
		One:  big.NewRat(1, 1),
	}
}
