package ecdlp

import (
	"math/big"

	"github.com/f3rmion/dlog/group"
)

// Solver finds k such that k*P = Q.
type Solver interface {
	Solve(P, Q group.Point) (*Result, error)
}

// Result is a recovered logarithm and the number of steps it took.
type Result struct {
	// Log is the logarithm k in [0, n).
	Log *big.Int
	// Steps counts group operations of the search loop: baby plus giant
	// steps for BSGS, tortoise iterations across all attempts for rho.
	Steps *big.Int
}

// Check reports whether r.Log * P == Q in g.
func (r *Result) Check(g group.Group, P, Q group.Point) bool {
	return g.NewPoint().ScalarMult(r.Log, P).Equal(Q)
}

var (
	_ Solver = (*BSGS)(nil)
	_ Solver = (*Rho)(nil)
)
