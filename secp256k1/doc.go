// Package secp256k1 implements [group.Group] for the secp256k1 curve used by
// Bitcoin and Ethereum, delegating arithmetic to btcec.
//
// Points are kept in affine big.Int coordinates with the identity at
// (0, 0). The group order is a 256-bit prime, so only logarithms bounded
// by a small value can be recovered, using [ecdlp.NewBSGSWithBound].
package secp256k1
