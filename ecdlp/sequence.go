package ecdlp

import (
	"fmt"
	"io"
	"math/big"

	"github.com/f3rmion/dlog/group"
)

// WalkState is one position of a pseudo-random walk. It always satisfies
// X = A*P + B*Q with A and B in [0, n).
type WalkState struct {
	X group.Point
	A *big.Int
	B *big.Int
}

// Coefficients are the random scalars defining the two jump points
// X1 = A1*P + B1*Q and X2 = A2*P + B2*Q of a [Sequence].
type Coefficients struct {
	A1, B1, A2, B2 *big.Int
}

// Sequence is the deterministic walk used by Pollard's rho. The field is
// split into three partitions of width p/3+1 by the x-coordinate, and each
// state moves by
//
//	partition 0: X + X1   (a + a1, b + b1)
//	partition 1: 2X       (2a, 2b)
//	partition 2: X + X2   (a + a2, b + b2)
//
// with coefficients reduced modulo n. The identity has no x-coordinate and
// belongs to partition 0.
//
// A Sequence is immutable after construction. Walkers own their WalkState
// values and call [Sequence.Next] to advance them, so the tortoise and the
// hare of Floyd's algorithm share one Sequence.
type Sequence struct {
	group  group.Group
	coeffs Coefficients
	x1, x2 group.Point
	width  *big.Int
	n      *big.Int
}

// NewSequence draws a1, b1, a2, b2 uniformly from [1, n) using r and
// returns the resulting walk for P and Q.
func NewSequence(g group.Group, P, Q group.Point, r io.Reader) (*Sequence, error) {
	n := g.Order()
	one := big.NewInt(1)
	var c [4]*big.Int
	for i := range c {
		v, err := group.RandomInt(r, one, n)
		if err != nil {
			return nil, fmt.Errorf("ecdlp: drawing walk coefficients: %w", err)
		}
		c[i] = v
	}
	return NewSequenceWithCoefficients(g, P, Q, Coefficients{A1: c[0], B1: c[1], A2: c[2], B2: c[3]}), nil
}

// NewSequenceWithCoefficients returns the walk with fixed coefficients,
// which are reduced modulo n. It is intended for replaying a walk and for
// tests; zero coefficients are accepted.
func NewSequenceWithCoefficients(g group.Group, P, Q group.Point, c Coefficients) *Sequence {
	n := g.Order()
	c = Coefficients{
		A1: group.Mod(c.A1, n),
		B1: group.Mod(c.B1, n),
		A2: group.Mod(c.A2, n),
		B2: group.Mod(c.B2, n),
	}

	width := new(big.Int).Div(g.FieldModulus(), big.NewInt(3))
	width.Add(width, big.NewInt(1))

	return &Sequence{
		group:  g,
		coeffs: c,
		x1:     combine(g, c.A1, P, c.B1, Q),
		x2:     combine(g, c.A2, P, c.B2, Q),
		width:  width,
		n:      n,
	}
}

// combine returns a*P + b*Q.
func combine(g group.Group, a *big.Int, P group.Point, b *big.Int, Q group.Point) group.Point {
	aP := g.NewPoint().ScalarMult(a, P)
	bQ := g.NewPoint().ScalarMult(b, Q)
	return g.NewPoint().Add(aP, bQ)
}

// Coefficients returns a copy of the walk's coefficients.
func (s *Sequence) Coefficients() Coefficients {
	return Coefficients{
		A1: new(big.Int).Set(s.coeffs.A1),
		B1: new(big.Int).Set(s.coeffs.B1),
		A2: new(big.Int).Set(s.coeffs.A2),
		B2: new(big.Int).Set(s.coeffs.B2),
	}
}

// Start returns the initial state: the identity with zero coefficients.
// Its successor is always X1 since the identity lies in partition 0.
func (s *Sequence) Start() WalkState {
	return WalkState{
		X: s.group.NewPoint(),
		A: new(big.Int),
		B: new(big.Int),
	}
}

// Next returns the successor of st. The input is not modified.
func (s *Sequence) Next(st WalkState) (WalkState, error) {
	idx, err := s.partition(st.X)
	if err != nil {
		return WalkState{}, err
	}

	next := WalkState{
		X: s.group.NewPoint(),
		A: new(big.Int),
		B: new(big.Int),
	}
	switch idx {
	case 0:
		next.X.Add(st.X, s.x1)
		next.A.Add(st.A, s.coeffs.A1)
		next.B.Add(st.B, s.coeffs.B1)
	case 1:
		next.X.Double(st.X)
		next.A.Lsh(st.A, 1)
		next.B.Lsh(st.B, 1)
	case 2:
		next.X.Add(st.X, s.x2)
		next.A.Add(st.A, s.coeffs.A2)
		next.B.Add(st.B, s.coeffs.B2)
	default:
		return WalkState{}, fmt.Errorf("%w: %d", ErrInvalidPartition, idx)
	}
	next.A.Mod(next.A, s.n)
	next.B.Mod(next.B, s.n)
	return next, nil
}

// partition returns x / (p/3 + 1) for the x-coordinate of X, or 0 for the
// identity.
func (s *Sequence) partition(X group.Point) (int64, error) {
	x := X.X()
	if x == nil {
		return 0, nil
	}
	idx := x.Div(x, s.width)
	if !idx.IsInt64() {
		return 0, fmt.Errorf("%w: %s", ErrInvalidPartition, idx)
	}
	return idx.Int64(), nil
}
