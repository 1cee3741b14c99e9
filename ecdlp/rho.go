package ecdlp

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"sync"

	"github.com/f3rmion/dlog/group"
)

// MaxRhoAttempts is the number of independent walks Rho.Solve tries before
// giving up.
const MaxRhoAttempts = 3

// Rho solves discrete logarithms with Pollard's rho method and Floyd cycle
// detection, in expected O(√n) steps and O(1) memory.
//
// Each attempt draws a fresh [Sequence] from the solver's randomness source.
// Attempts that end in a degenerate collision, a rejected candidate, or no
// collision within n iterations are retried, up to MaxRhoAttempts in total.
//
// A Rho is safe for concurrent use. Concurrent solves share the randomness
// source, so a seeded Rho is only reproducible when used sequentially.
type Rho struct {
	group group.Group

	mu   sync.Mutex
	rand io.Reader

	// newSequence builds the walk for each attempt. Tests replace it to
	// force specific walks.
	newSequence func(P, Q group.Point) (*Sequence, error)
}

// NewRho returns a rho solver for g drawing walk coefficients from r. A nil
// r uses crypto/rand; pass [group.NewSeededReader] for reproducible runs.
func NewRho(g group.Group, r io.Reader) (*Rho, error) {
	if g.Order().Cmp(big.NewInt(2)) < 0 {
		return nil, errors.New("ecdlp: group order must be at least 2")
	}
	if r == nil {
		r = rand.Reader
	}
	s := &Rho{group: g, rand: r}
	s.newSequence = s.drawSequence
	return s, nil
}

func (s *Rho) drawSequence(P, Q group.Point) (*Sequence, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return NewSequence(s.group, P, Q, s.rand)
}

// Solve returns k such that k*P = Q.
//
// Steps counts tortoise iterations across every attempt: a collision at
// iteration j of attempt t (both zero based) reports t*n + j + 1.
func (s *Rho) Solve(P, Q group.Point) (*Result, error) {
	if err := checkOnCurve(s.group, P, Q); err != nil {
		return nil, err
	}

	n := s.group.Order()
	var degenerate, rejected, exhausted int
	for attempt := 0; attempt < MaxRhoAttempts; attempt++ {
		seq, err := s.newSequence(P, Q)
		if err != nil {
			return nil, err
		}

		log, j, err := s.Attempt(seq, P, Q)
		switch {
		case err == nil:
			steps := new(big.Int).Mul(big.NewInt(int64(attempt)), n)
			steps.Add(steps, j)
			return &Result{Log: log, Steps: steps.Add(steps, big.NewInt(1))}, nil
		case errors.Is(err, ErrDegenerateCollision):
			degenerate++
		case errors.Is(err, ErrRejectedCandidate):
			rejected++
		case errors.Is(err, ErrNotFound):
			exhausted++
		default:
			return nil, err
		}
	}

	return nil, fmt.Errorf("%w: %d attempts (%d degenerate, %d rejected, %d without collision)",
		ErrNotFound, MaxRhoAttempts, degenerate, rejected, exhausted)
}

// Attempt runs one Floyd cycle search over seq. On success it returns the
// logarithm and the zero-based iteration j at which the tortoise and the
// hare met.
//
// A collision x_j = x_2j gives a_t*P + b_t*Q = a_h*P + b_h*Q, so k solves
// (b_h - b_t)*k = a_t - a_h mod n. When n is composite the congruence may
// have d = gcd(b_h - b_t, n) solutions; the smallest one with k*P = Q is
// returned.
func (s *Rho) Attempt(seq *Sequence, P, Q group.Point) (log, j *big.Int, err error) {
	n := s.group.Order()

	tortoise := seq.Start()
	hare := seq.Start()

	iter := new(big.Int)
	for ; iter.Cmp(n) < 0; iter.Add(iter, big.NewInt(1)) {
		if tortoise, err = seq.Next(tortoise); err != nil {
			return nil, nil, err
		}
		if hare, err = seq.Next(hare); err != nil {
			return nil, nil, err
		}
		if hare, err = seq.Next(hare); err != nil {
			return nil, nil, err
		}

		if !tortoise.X.Equal(hare.X) {
			continue
		}

		if tortoise.B.Cmp(hare.B) == 0 {
			return nil, nil, ErrDegenerateCollision
		}

		db := new(big.Int).Sub(hare.B, tortoise.B)
		da := new(big.Int).Sub(tortoise.A, hare.A)
		k0, step, solveErr := group.SolveLinear(db, da, n)
		if solveErr != nil {
			return nil, nil, fmt.Errorf("%w: %v", ErrRejectedCandidate, solveErr)
		}
		if k := s.firstMatch(k0, step, P, Q); k != nil {
			return k, iter, nil
		}
		return nil, nil, fmt.Errorf("%w: no solution of %s*k = %s mod %s maps P to Q",
			ErrRejectedCandidate, group.Mod(db, n), group.Mod(da, n), n)
	}

	return nil, nil, fmt.Errorf("%w: no collision within %s iterations", ErrNotFound, n)
}

// firstMatch returns the first k = k0 + i*step in [0, n) with k*P = Q, or
// nil if there is none.
func (s *Rho) firstMatch(k0, step *big.Int, P, Q group.Point) *big.Int {
	n := s.group.Order()
	stride := s.group.NewPoint().ScalarMult(step, P)
	cand := s.group.NewPoint().ScalarMult(k0, P)
	for k := new(big.Int).Set(k0); k.Cmp(n) < 0; k.Add(k, step) {
		if cand.Equal(Q) {
			return k
		}
		cand = s.group.NewPoint().Add(cand, stride)
	}
	return nil
}
