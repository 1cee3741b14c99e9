package secp256k1

import (
	"bytes"
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/f3rmion/dlog/ecdlp"
	"github.com/f3rmion/dlog/group"
	"github.com/f3rmion/dlog/weierstrass"
)

func hexInt(t *testing.T, s string) *big.Int {
	t.Helper()
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		t.Fatalf("bad hex %q", s)
	}
	return v
}

func TestPoint(t *testing.T) {
	g := New()
	gen := g.Generator()

	t.Run("Double", func(t *testing.T) {
		want := g.NewAffine(
			hexInt(t, "c6047f9441ed7d6d3045406e95c07cd85c778e4b8cef3ca7abac09b95c709ee5"),
			hexInt(t, "1ae168fea63dc339a3c58419466ceaeef7f632653266d0e1236431a950cfe52a"),
		)
		if !g.NewPoint().Double(gen).Equal(want) {
			t.Error("2G does not match the known value")
		}
		if !g.NewPoint().ScalarMult(big.NewInt(2), gen).Equal(want) {
			t.Error("ScalarMult(2, G) does not match the known value")
		}
	})

	t.Run("Identity", func(t *testing.T) {
		id := g.NewPoint()
		if !id.IsIdentity() || !g.IsOnCurve(id) {
			t.Fatal("new point should be the identity and on the curve")
		}
		if !g.NewPoint().Add(id, gen).Equal(gen) || !g.NewPoint().Add(gen, id).Equal(gen) {
			t.Error("identity is not neutral")
		}
		if !g.NewPoint().Add(gen, g.NewPoint().Negate(gen)).IsIdentity() {
			t.Error("G + (-G) != identity")
		}
		if !g.NewPoint().ScalarMult(g.Order(), gen).IsIdentity() {
			t.Error("n*G != identity")
		}
		if id.X() != nil {
			t.Error("identity should have no x-coordinate")
		}
	})

	t.Run("OrderMinusOne", func(t *testing.T) {
		k := new(big.Int).Sub(g.Order(), big.NewInt(1))
		if !g.NewPoint().ScalarMult(k, gen).Equal(g.NewPoint().Negate(gen)) {
			t.Error("(n-1)G != -G")
		}
		if !g.NewPoint().ScalarMult(big.NewInt(-1), gen).Equal(g.NewPoint().Negate(gen)) {
			t.Error("(-1)G != -G")
		}
	})

	t.Run("AddNegate", func(t *testing.T) {
		a, err := group.RandomInt(rand.Reader, big.NewInt(1), g.Order())
		if err != nil {
			t.Fatal(err)
		}
		b, err := group.RandomInt(rand.Reader, big.NewInt(1), g.Order())
		if err != nil {
			t.Fatal(err)
		}
		P := g.NewPoint().ScalarMult(a, gen)
		Q := g.NewPoint().ScalarMult(b, gen)

		sum := g.NewPoint().Add(P, Q)
		if !g.IsOnCurve(sum) {
			t.Fatal("P+Q not on curve")
		}
		if !g.NewPoint().Add(sum, g.NewPoint().Negate(Q)).Equal(P) {
			t.Error("(P+Q)-Q != P")
		}
	})

	t.Run("Bytes", func(t *testing.T) {
		if !bytes.Equal(g.NewPoint().Bytes(), []byte{0}) {
			t.Error("identity encoding should be a single zero byte")
		}
		enc := gen.Bytes()
		if len(enc) != 33 || enc[0] != 0x02 {
			t.Errorf("unexpected generator encoding %x", enc)
		}
		if bytes.Equal(enc, g.NewPoint().Negate(gen).Bytes()) {
			t.Error("G and -G share an encoding")
		}
	})

	t.Run("EqualOtherGroup", func(t *testing.T) {
		if gen.Equal(weierstrass.Tiny29().Generator()) {
			t.Error("points of different groups compared equal")
		}
		if g.IsOnCurve(weierstrass.Tiny29().Generator()) {
			t.Error("foreign point reported on curve")
		}
	})

	t.Run("IsOnCurve", func(t *testing.T) {
		if g.IsOnCurve(g.NewAffine(big.NewInt(1), big.NewInt(1))) {
			t.Error("(1, 1) should not be on the curve")
		}
	})
}

func TestBoundedLog(t *testing.T) {
	g := New()
	P := g.Generator()
	Q := g.NewPoint().ScalarMult(big.NewInt(12345), P)

	s, err := ecdlp.NewBSGSWithBound(g, big.NewInt(1<<16))
	if err != nil {
		t.Fatal(err)
	}
	res, err := s.Solve(P, Q)
	if err != nil {
		t.Fatal(err)
	}
	if res.Log.Int64() != 12345 {
		t.Errorf("log = %s, want 12345", res.Log)
	}
}
