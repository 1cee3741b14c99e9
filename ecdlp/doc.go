// Package ecdlp recovers discrete logarithms in elliptic-curve groups: given
// points P and Q = k*P, it finds k.
//
// Two independent solvers are provided. Both implement [Solver] and work
// on any [group.Group].
//
// # Baby-step giant-step
//
// [BSGS] is deterministic and needs O(√n) time and memory. It stores the
// baby steps j*P for j < m = isqrt(n)+1 in a table and walks giant steps
// Q - i*m*P until one lands in the table:
//
//	s := ecdlp.NewBSGS(g)
//	res, err := s.Solve(P, Q)
//
// The step count of a successful solve is m+i and therefore always lies in
// [m, 2m). When only small logarithms are of interest, [NewBSGSWithBound]
// sizes the table from the bound instead of the group order, which makes
// the method usable in groups such as Baby Jubjub or secp256k1.
//
// # Pollard's rho
//
// [Rho] needs O(√n) expected time and constant memory. It walks a
// pseudo-random [Sequence] through the group, tracking coefficients a and b
// with X = a*P + b*Q, and finds a collision with Floyd's tortoise and hare:
//
//	s, err := ecdlp.NewRho(g, rand.Reader)
//	if err != nil {
//	    return err
//	}
//	res, err := s.Solve(P, Q)
//
// A collision with equal b coefficients carries no information; the attempt
// is abandoned with [ErrDegenerateCollision] and a fresh sequence is drawn.
// Candidates are checked against Q before being returned, so composite
// group orders never yield a wrong answer. After [MaxRhoAttempts] failed
// attempts the solver reports [ErrNotFound].
//
// Passing a reader from [group.NewSeededReader] makes a solve reproducible.
//
// # Errors
//
// Inputs that are not on the curve are rejected with [ErrNotOnCurve] before
// any work is done. [ErrNotFound] means the search space or the retry budget
// was exhausted, which usually indicates Q is outside the subgroup generated
// by P. [ErrInvalidPartition] is an internal invariant violation and is
// never retried. All errors are wrapped with context; test them with
// errors.Is.
//
// # Concurrency
//
// Solvers hold no per-solve state and may be shared between goroutines.
// See package batch for running many instances in parallel.
package ecdlp
