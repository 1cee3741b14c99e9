// Package weierstrass implements [group.Group] for short Weierstrass curves
//
//	y^2 = x^3 + A*x + B  (mod p)
//
// over small prime fields using affine big.Int arithmetic.
//
// The package exists to exercise the discrete-logarithm solvers on groups
// small enough to search exhaustively. It ships three named curves:
//
//   - [Tiny29]: p = 23, prime order 29
//   - [Small727]: p = 709, prime order 727
//   - [Composite106]: p = 101, composite order 106 = 2*53
//
// Custom curves are built with [New], which validates the parameters.
//
// This implementation is not constant time and must not be used with
// secret data.
package weierstrass
