package ecdlp

import (
	"errors"
	"fmt"

	"github.com/f3rmion/dlog/group"
)

var (
	// ErrNotOnCurve is returned when P or Q fails the curve-membership
	// test. It is a precondition violation and is never retried.
	ErrNotOnCurve = errors.New("ecdlp: point is not on the curve")

	// ErrNotFound is returned when the search space (BSGS) or the retry
	// budget (Pollard's rho) is exhausted without a valid logarithm. It
	// usually means Q is not in the subgroup generated by P.
	ErrNotFound = errors.New("ecdlp: logarithm not found")

	// ErrDegenerateCollision is the outcome of a rho attempt whose collision
	// has equal b coefficients, which would require dividing by zero.
	// [Rho.Solve] recovers from it by retrying with a fresh sequence.
	ErrDegenerateCollision = errors.New("ecdlp: degenerate collision")

	// ErrRejectedCandidate is the outcome of a rho attempt whose collision
	// could not be turned into a logarithm: the collision congruence has no
	// solution modulo a composite order, or none of its solutions maps P to
	// Q. It is retried like a degenerate collision.
	ErrRejectedCandidate = errors.New("ecdlp: collision produced no valid logarithm")

	// ErrInvalidPartition signals an internal invariant violation in the
	// rho walk: a point fell outside the three partitions. It is fatal.
	ErrInvalidPartition = errors.New("ecdlp: invalid partition index")

	// ErrTableTooLarge is returned by BSGS when the baby-step table would
	// exceed MaxTableSize entries.
	ErrTableTooLarge = errors.New("ecdlp: baby-step table too large")
)

// checkOnCurve enforces the solvers' precondition on both inputs.
func checkOnCurve(g group.Group, P, Q group.Point) error {
	if P == nil || !g.IsOnCurve(P) {
		return fmt.Errorf("%w: P", ErrNotOnCurve)
	}
	if Q == nil || !g.IsOnCurve(Q) {
		return fmt.Errorf("%w: Q", ErrNotOnCurve)
	}
	return nil
}
