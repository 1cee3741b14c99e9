// Package group defines the abstract elliptic-curve group consumed by the
// discrete-logarithm solvers in package ecdlp.
//
// This package provides two core interfaces:
//
//   - [Point]: Elements of the group (points on an elliptic curve)
//   - [Group]: Factory methods and curve constants (generator, order n,
//     field modulus p, curve-membership test)
//
// together with the integer helpers the solvers need on exponents:
// [ModInverse] for safe division modulo n, [RandomInt] for uniform
// coefficients and [NewSeededReader] for replayable randomness.
//
// # Design Philosophy
//
// Points use the mutable receiver pattern: Add, Double, Negate and
// ScalarMult set the receiver to the result and return it, so expressions
// chain without hidden allocations:
//
//	// Compute a*P + b*Q
//	x := g.NewPoint().ScalarMult(a, P)
//	x = g.NewPoint().Add(x, g.NewPoint().ScalarMult(b, Q))
//
// Scalars are plain *big.Int values reduced modulo [Group.Order]. The order
// is not required to be prime, so inversion can fail and every caller must
// handle [ErrNotInvertible].
//
// # Implementing a Group
//
// To implement these interfaces for a new curve:
//
//  1. Create a Point type that wraps your curve point and implements [Point]
//  2. Encode the identity explicitly and make [Point.Bytes] canonical, since
//     solvers key hash tables by the encoding
//  3. Create a Group type that implements [Group] as a factory
//
// See the weierstrass package for small toy curves, and the bjj and
// secp256k1 packages for production curves backed by gnark-crypto and btcec.
package group
