package group

import (
	"math/big"
)

// Point represents an element of an elliptic-curve group: either the
// identity (point at infinity) or an affine point (x, y) over the field F_p.
//
// All arithmetic methods use a mutable receiver pattern: they modify the
// receiver, store the result in it, and return it. Callers that need value
// semantics write into a fresh point obtained from [Group.NewPoint].
//
// Implementations must normalize to a canonical representation so that
// [Point.Equal] and [Point.Bytes] agree: two points are equal if and only if
// their encodings are byte-identical.
type Point interface {
	// Add sets the receiver to a+b and returns it.
	Add(a, b Point) Point
	// Double sets the receiver to 2a and returns it.
	Double(a Point) Point
	// Negate sets the receiver to -a and returns it.
	Negate(a Point) Point
	// ScalarMult sets the receiver to k*p and returns it.
	// k may be any non-negative integer; it is not reduced by the caller.
	ScalarMult(k *big.Int, p Point) Point
	// Set sets the receiver to a and returns it.
	Set(a Point) Point
	// Bytes returns the canonical byte encoding of the point.
	Bytes() []byte
	// Equal reports whether the receiver equals b.
	Equal(b Point) bool
	// IsIdentity reports whether the receiver is the identity element.
	IsIdentity() bool
	// X returns a copy of the affine x-coordinate in [0, p),
	// or nil for the identity.
	X() *big.Int
}

// Group defines a cyclic elliptic-curve group together with the constants
// the discrete-log solvers depend on. A Group value is immutable
// configuration: it is safe for concurrent use and may be shared between
// solvers.
//
// Example usage:
//
//	g := weierstrass.Small727()
//	q := g.NewPoint().ScalarMult(big.NewInt(42), g.Generator())
type Group interface {
	// NewPoint returns a new identity point.
	NewPoint() Point
	// Generator returns the group's base point.
	Generator() Point
	// Order returns the order n of the generator.
	Order() *big.Int
	// FieldModulus returns the prime p of the underlying field.
	FieldModulus() *big.Int
	// IsOnCurve reports whether p satisfies the curve equation.
	// The identity is always on the curve.
	IsOnCurve(p Point) bool
}
