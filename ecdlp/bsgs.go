package ecdlp

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/f3rmion/dlog/group"
)

// MaxTableSize limits the number of baby steps BSGS will store. For groups
// whose order would need a larger table, use [NewBSGSWithBound] to search a
// smaller range.
const MaxTableSize = 1 << 24

// BSGS solves discrete logarithms with Shanks' baby-step giant-step method
// in O(√n) time and space. A BSGS holds only immutable configuration and is
// safe for concurrent use; every call to Solve builds its own table.
type BSGS struct {
	group group.Group
	bound *big.Int // nil searches the whole group order
}

// NewBSGS returns a solver that searches [0, n) where n is the group order.
func NewBSGS(g group.Group) *BSGS {
	return &BSGS{group: g}
}

// NewBSGSWithBound returns a solver that only searches logarithms below
// bound, using a table of isqrt(bound)+1 entries regardless of the group
// order. This recovers small logarithms in large groups.
func NewBSGSWithBound(g group.Group, bound *big.Int) (*BSGS, error) {
	if bound == nil || bound.Sign() <= 0 {
		return nil, errors.New("ecdlp: bound must be positive")
	}
	return &BSGS{group: g, bound: new(big.Int).Set(bound)}, nil
}

// TableSize returns m = isqrt(N) + 1, where N is the bound or the group
// order. Adding one guards against the truncation of the square root.
func (s *BSGS) TableSize() *big.Int {
	n := s.bound
	if n == nil {
		n = s.group.Order()
	}
	m := new(big.Int).Sqrt(n)
	return m.Add(m, big.NewInt(1))
}

// Solve returns k such that k*P = Q.
//
// Baby steps j*P for j in [0, m) are stored in a table keyed by the point
// encoding. Giant steps walk Q - i*m*P for i in [0, m) and stop at the first
// table hit, returning k = j + m*i and m + i steps.
func (s *BSGS) Solve(P, Q group.Point) (*Result, error) {
	if err := checkOnCurve(s.group, P, Q); err != nil {
		return nil, err
	}

	mBig := s.TableSize()
	if !mBig.IsUint64() || mBig.Uint64() > MaxTableSize {
		return nil, fmt.Errorf("%w: %s entries (max %d)", ErrTableTooLarge, mBig, MaxTableSize)
	}
	m := mBig.Uint64()

	table := babySteps(s.group, P, m)

	// S = m * (-P), the giant stride
	stride := s.group.NewPoint().ScalarMult(mBig, s.group.NewPoint().Negate(P))

	acc := s.group.NewPoint().Set(Q)
	for i := uint64(0); i < m; i++ {
		if j, ok := table[string(acc.Bytes())]; ok {
			log := new(big.Int).SetUint64(i)
			log.Mul(log, mBig)
			log.Add(log, new(big.Int).SetUint64(j))
			steps := new(big.Int).SetUint64(i)
			return &Result{Log: log, Steps: steps.Add(steps, mBig)}, nil
		}
		acc = s.group.NewPoint().Add(acc, stride)
	}

	return nil, fmt.Errorf("%w: no giant step matched within %d steps", ErrNotFound, m)
}

// babySteps returns the table {j*P: j} for j in [0, m), accumulating j*P
// by repeated addition. The identity maps to 0.
func babySteps(g group.Group, P group.Point, m uint64) map[string]uint64 {
	table := make(map[string]uint64, m)
	acc := g.NewPoint()
	table[string(acc.Bytes())] = 0
	for j := uint64(1); j < m; j++ {
		acc = g.NewPoint().Add(acc, P)
		key := string(acc.Bytes())
		if _, ok := table[key]; ok {
			// j*P repeats only once j reaches the order of P;
			// keep the smallest index.
			continue
		}
		table[key] = j
	}
	return table
}
