package ecdlp

import (
	"errors"
	"math/big"
	"testing"

	"github.com/f3rmion/dlog/weierstrass"
)

func TestBSGSKnownLog(t *testing.T) {
	g := weierstrass.Tiny29()
	P := g.Generator()
	Q := g.NewPoint().ScalarMult(big.NewInt(7), P)

	s := NewBSGS(g)
	res, err := s.Solve(P, Q)
	if err != nil {
		t.Fatal(err)
	}
	if res.Log.Int64() != 7 {
		t.Errorf("log = %s, want 7", res.Log)
	}
	// m = 6, 7 = 1 + 6*1
	if res.Steps.Int64() != 7 {
		t.Errorf("steps = %s, want 7", res.Steps)
	}
	if !res.Check(g, P, Q) {
		t.Error("result does not verify")
	}
}

func TestBSGSExhaustive(t *testing.T) {
	for _, g := range []*weierstrass.Curve{weierstrass.Tiny29(), weierstrass.Small727()} {
		t.Run(g.Name(), func(t *testing.T) {
			s := NewBSGS(g)
			P := g.Generator()
			m := s.TableSize()
			maxSteps := new(big.Int).Lsh(m, 1)

			n := g.Order().Int64()
			Q := g.NewPoint()
			for k := int64(1); k < n; k++ {
				Q = g.NewPoint().Add(Q, P)
				res, err := s.Solve(P, Q)
				if err != nil {
					t.Fatalf("k=%d: %v", k, err)
				}
				if res.Log.Int64() != k {
					t.Fatalf("k=%d: got %s", k, res.Log)
				}
				if res.Steps.Cmp(m) < 0 || res.Steps.Cmp(maxSteps) >= 0 {
					t.Fatalf("k=%d: steps %s outside [%s, %s)", k, res.Steps, m, maxSteps)
				}
			}
		})
	}
}

func TestBSGSZeroLog(t *testing.T) {
	g := weierstrass.Small727()
	res, err := NewBSGS(g).Solve(g.Generator(), g.NewPoint())
	if err != nil {
		t.Fatal(err)
	}
	if res.Log.Sign() != 0 {
		t.Errorf("log of identity = %s, want 0", res.Log)
	}
}

func TestBabyStepTable(t *testing.T) {
	g := weierstrass.Small727()
	P := g.NewPoint().ScalarMult(big.NewInt(5), g.Generator())

	const m = 28
	table := babySteps(g, P, m)
	if len(table) != m {
		t.Fatalf("table has %d entries, want %d", len(table), m)
	}
	if j, ok := table[string(g.NewPoint().Bytes())]; !ok || j != 0 {
		t.Errorf("identity maps to %d (present %v), want 0", j, ok)
	}
	for key, j := range table {
		want := g.NewPoint().ScalarMult(new(big.Int).SetUint64(j), P)
		if string(want.Bytes()) != key {
			t.Errorf("entry %d does not encode %d*P", j, j)
		}
	}
}

func TestBSGSBounded(t *testing.T) {
	g := weierstrass.Small727()
	P := g.Generator()

	s, err := NewBSGSWithBound(g, big.NewInt(100))
	if err != nil {
		t.Fatal(err)
	}
	if s.TableSize().Int64() != 11 {
		t.Fatalf("table size = %s, want 11", s.TableSize())
	}

	t.Run("WithinBound", func(t *testing.T) {
		Q := g.NewPoint().ScalarMult(big.NewInt(50), P)
		res, err := s.Solve(P, Q)
		if err != nil {
			t.Fatal(err)
		}
		if res.Log.Int64() != 50 {
			t.Errorf("log = %s, want 50", res.Log)
		}
	})

	t.Run("BeyondBound", func(t *testing.T) {
		// the scan covers k < 11*11
		Q := g.NewPoint().ScalarMult(big.NewInt(500), P)
		if _, err := s.Solve(P, Q); !errors.Is(err, ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound", err)
		}
	})

	t.Run("InvalidBound", func(t *testing.T) {
		if _, err := NewBSGSWithBound(g, big.NewInt(0)); err == nil {
			t.Error("expected error for zero bound")
		}
		if _, err := NewBSGSWithBound(g, nil); err == nil {
			t.Error("expected error for nil bound")
		}
	})

	t.Run("TableTooLarge", func(t *testing.T) {
		huge, err := NewBSGSWithBound(g, new(big.Int).Lsh(big.NewInt(1), 50))
		if err != nil {
			t.Fatal(err)
		}
		if _, err := huge.Solve(P, P); !errors.Is(err, ErrTableTooLarge) {
			t.Errorf("err = %v, want ErrTableTooLarge", err)
		}
	})
}
