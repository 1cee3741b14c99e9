package ecdlp

import (
	"errors"
	"math/big"
	"testing"

	"github.com/f3rmion/dlog/group"
	"github.com/f3rmion/dlog/weierstrass"
)

func solvers(t *testing.T, g group.Group) map[string]Solver {
	t.Helper()
	r, err := group.NewSeededReader([]byte("ecdlp solvers"))
	if err != nil {
		t.Fatal(err)
	}
	rho, err := NewRho(g, r)
	if err != nil {
		t.Fatal(err)
	}
	return map[string]Solver{
		"BSGS": NewBSGS(g),
		"Rho":  rho,
	}
}

func TestNotOnCurve(t *testing.T) {
	g := weierstrass.Tiny29()
	P := g.Generator()
	off := g.NewAffine(big.NewInt(1), big.NewInt(1))

	for name, s := range solvers(t, g) {
		t.Run(name, func(t *testing.T) {
			if _, err := s.Solve(P, off); !errors.Is(err, ErrNotOnCurve) {
				t.Errorf("bad Q: err = %v, want ErrNotOnCurve", err)
			}
			if _, err := s.Solve(off, P); !errors.Is(err, ErrNotOnCurve) {
				t.Errorf("bad P: err = %v, want ErrNotOnCurve", err)
			}
			if _, err := s.Solve(P, nil); !errors.Is(err, ErrNotOnCurve) {
				t.Errorf("nil Q: err = %v, want ErrNotOnCurve", err)
			}
		})
	}
}

// On a curve of order 106 = 2*53, P = 2G generates the subgroup of order 53
// which does not contain G.
func TestNotInSubgroup(t *testing.T) {
	g := weierstrass.Composite106()
	P := g.NewPoint().Double(g.Generator())
	Q := g.Generator()

	if !g.NewPoint().ScalarMult(big.NewInt(53), P).IsIdentity() {
		t.Fatal("2G should have order 53")
	}

	for name, s := range solvers(t, g) {
		t.Run(name, func(t *testing.T) {
			res, err := s.Solve(P, Q)
			if !errors.Is(err, ErrNotFound) {
				t.Fatalf("err = %v (result %v), want ErrNotFound", err, res)
			}
			if res != nil {
				t.Error("result must be nil on failure")
			}
		})
	}
}

func TestSubgroupLogOnCompositeOrder(t *testing.T) {
	g := weierstrass.Composite106()
	P := g.NewPoint().Double(g.Generator())
	Q := g.NewPoint().ScalarMult(big.NewInt(20), P)

	res, err := NewBSGS(g).Solve(P, Q)
	if err != nil {
		t.Fatal(err)
	}
	if res.Log.Int64() != 20 {
		t.Errorf("log = %s, want 20", res.Log)
	}
}
