// Package bjj provides a Baby Jubjub elliptic curve implementation of the
// [group.Group] interface for use with the discrete-logarithm solvers.
//
// Baby Jubjub is a twisted Edwards curve defined over the scalar field of
// BN254 (also known as alt_bn128). It is commonly used in zero-knowledge
// proof systems and privacy-preserving applications, where small values
// are often encoded in the exponent and recovered with a bounded search.
//
// This package wraps the Baby Jubjub implementation from gnark-crypto,
// providing a clean interface that satisfies [group.Group] and
// [group.Point].
//
// # Curve Parameters
//
// Baby Jubjub is defined by the equation:
//
//	a*x^2 + y^2 = 1 + d*x^2*y^2
//
// over the BN254 scalar field, which [BJJ.FieldModulus] returns. The curve
// has a prime-order subgroup of size:
//
//	2736030358979909402780800718157159386076813972158567259200215660948447373041
//
// # Usage
//
// The subgroup is far too large for an exhaustive search, so logarithms are
// recovered with a bound:
//
//	g := &bjj.BJJ{}
//	s, err := ecdlp.NewBSGSWithBound(g, big.NewInt(1<<32))
//	res, err := s.Solve(g.Generator(), q)
//
// # Security
//
// This implementation relies on gnark-crypto for the underlying curve
// arithmetic. Point encodings are gnark's compressed form, which is
// canonical and therefore suitable as a lookup key.
package bjj
