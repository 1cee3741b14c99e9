package weierstrass

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/f3rmion/dlog/group"
)

func TestNamedCurves(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			c, err := ByName(name)
			if err != nil {
				t.Fatal(err)
			}
			g := c.Generator()
			if !c.IsOnCurve(g) {
				t.Fatal("generator not on curve")
			}
			if !c.NewPoint().ScalarMult(c.Order(), g).IsIdentity() {
				t.Error("n*G != identity")
			}
		})
	}

	if _, err := ByName("nope"); err == nil {
		t.Error("expected error for unknown curve")
	}
}

func TestNewValidation(t *testing.T) {
	base := named[NameTiny29]

	t.Run("CompositeModulus", func(t *testing.T) {
		p := base
		p.P = big.NewInt(25)
		if _, err := New(p); err == nil {
			t.Error("expected error for composite modulus")
		}
	})

	t.Run("Singular", func(t *testing.T) {
		p := base
		p.A, p.B = big.NewInt(0), big.NewInt(0)
		p.Gx, p.Gy = big.NewInt(0), big.NewInt(0)
		if _, err := New(p); err == nil {
			t.Error("expected error for singular curve")
		}
	})

	t.Run("GeneratorOffCurve", func(t *testing.T) {
		p := base
		p.Gy = big.NewInt(3)
		if _, err := New(p); err == nil {
			t.Error("expected error for generator off curve")
		}
	})

	t.Run("WrongOrder", func(t *testing.T) {
		p := base
		p.N = big.NewInt(28)
		if _, err := New(p); err == nil {
			t.Error("expected error for wrong order")
		}
	})

	t.Run("MissingParam", func(t *testing.T) {
		if _, err := New(Params{}); err == nil {
			t.Error("expected error for empty params")
		}
	})
}

func TestPoint(t *testing.T) {
	c := Tiny29()
	g := c.Generator()

	t.Run("KnownMultiple", func(t *testing.T) {
		q := c.NewPoint().ScalarMult(big.NewInt(7), g)
		want := c.NewAffine(big.NewInt(15), big.NewInt(6))
		if !q.Equal(want) {
			t.Errorf("7G = %v, want %v", q, want)
		}
	})

	t.Run("RepeatedAddMatchesScalarMult", func(t *testing.T) {
		acc := c.NewPoint()
		for k := int64(1); k <= 29; k++ {
			acc = c.NewPoint().Add(acc, g)
			if !acc.Equal(c.NewPoint().ScalarMult(big.NewInt(k), g)) {
				t.Fatalf("%d additions differ from %d*G", k, k)
			}
			if !c.IsOnCurve(acc) {
				t.Fatalf("%d*G is not on the curve", k)
			}
		}
		if !acc.IsIdentity() {
			t.Error("29*G should be the identity")
		}
	})

	t.Run("DoubleMatchesAdd", func(t *testing.T) {
		p := c.NewPoint().ScalarMult(big.NewInt(5), g)
		if !c.NewPoint().Double(p).Equal(c.NewPoint().Add(p, p)) {
			t.Error("2P != P+P")
		}
	})

	t.Run("Negate", func(t *testing.T) {
		p := c.NewPoint().ScalarMult(big.NewInt(11), g)
		negP := c.NewPoint().Negate(p)
		if !c.NewPoint().Add(p, negP).IsIdentity() {
			t.Error("P + (-P) != identity")
		}
		if !c.NewPoint().ScalarMult(big.NewInt(-11), g).Equal(negP) {
			t.Error("(-11)G != -(11G)")
		}
		if !c.NewPoint().Negate(c.NewPoint()).IsIdentity() {
			t.Error("-O != O")
		}
	})

	t.Run("ReceiverAliasing", func(t *testing.T) {
		p := c.NewPoint().Set(g)
		p.Add(p, p)
		if !p.Equal(c.NewPoint().ScalarMult(big.NewInt(2), g)) {
			t.Error("in-place doubling gave wrong result")
		}
		if !g.Equal(c.Generator()) {
			t.Error("generator was mutated")
		}
	})

	t.Run("Bytes", func(t *testing.T) {
		if !bytes.Equal(c.NewPoint().Bytes(), []byte{0}) {
			t.Error("identity encoding should be a single zero byte")
		}
		p := c.NewPoint().ScalarMult(big.NewInt(3), g)
		q := c.NewPoint().Add(c.NewPoint().Double(g), g)
		if !bytes.Equal(p.Bytes(), q.Bytes()) {
			t.Error("equal points have different encodings")
		}
		if bytes.Equal(p.Bytes(), g.Bytes()) {
			t.Error("distinct points share an encoding")
		}
	})

	t.Run("X", func(t *testing.T) {
		if c.NewPoint().X() != nil {
			t.Error("identity should have no x-coordinate")
		}
		x := g.X()
		x.SetInt64(99)
		if g.X().Sign() != 0 {
			t.Error("X must return a copy")
		}
	})

	t.Run("EqualOtherType", func(t *testing.T) {
		var other struct{ group.Point }
		if g.Equal(other) {
			t.Error("point compared equal to a foreign point type")
		}
	})

	t.Run("IsOnCurve", func(t *testing.T) {
		if c.IsOnCurve(c.NewAffine(big.NewInt(1), big.NewInt(1))) {
			t.Error("(1, 1) should not be on the curve")
		}
		other := Small727()
		if !other.IsOnCurve(other.Generator()) {
			t.Error("generator of another curve should be on that curve")
		}
	})
}
