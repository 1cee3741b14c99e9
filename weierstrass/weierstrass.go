package weierstrass

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/f3rmion/dlog/group"
)

var (
	bigZero  = big.NewInt(0)
	bigTwo   = big.NewInt(2)
	bigThree = big.NewInt(3)
)

// Params describes a short Weierstrass curve y^2 = x^3 + A x + B over F_P
// together with a base point (Gx, Gy) of order N.
type Params struct {
	Name   string
	P      *big.Int // field modulus, prime > 3
	A, B   *big.Int // curve coefficients
	Gx, Gy *big.Int // generator
	N      *big.Int // order of the generator
}

// Curve implements [group.Group] over a short Weierstrass curve using
// affine big.Int arithmetic. It is intended for small toy parameters where
// an exhaustive O(√n) search is practical.
//
// A Curve is immutable after [New] returns and safe for concurrent use.
type Curve struct {
	name   string
	p, a   *big.Int
	b      *big.Int
	n      *big.Int
	gx, gy *big.Int
	size   int // byte length of a coordinate
}

// New validates params and returns the curve. It rejects a composite or
// too-small modulus, singular curves, a generator that is not on the curve
// and an order N that does not annihilate the generator.
func New(params Params) (*Curve, error) {
	if params.P == nil || params.A == nil || params.B == nil ||
		params.Gx == nil || params.Gy == nil || params.N == nil {
		return nil, errors.New("weierstrass: missing curve parameter")
	}
	if params.P.Cmp(bigThree) <= 0 || !params.P.ProbablyPrime(20) {
		return nil, fmt.Errorf("weierstrass: modulus %s must be a prime > 3", params.P)
	}
	if params.N.Cmp(big.NewInt(1)) <= 0 {
		return nil, fmt.Errorf("weierstrass: order %s must be > 1", params.N)
	}

	p := new(big.Int).Set(params.P)
	c := &Curve{
		name: params.Name,
		p:    p,
		a:    mod(params.A, p),
		b:    mod(params.B, p),
		n:    new(big.Int).Set(params.N),
		gx:   mod(params.Gx, p),
		gy:   mod(params.Gy, p),
		size: (p.BitLen() + 7) / 8,
	}
	if c.isSingular() {
		return nil, errors.New("weierstrass: singular curve: 4A^3 + 27B^2 ≡ 0 mod p")
	}
	g := c.Generator()
	if !c.IsOnCurve(g) {
		return nil, fmt.Errorf("weierstrass: generator (%s, %s) is not on the curve", c.gx, c.gy)
	}
	if !c.NewPoint().ScalarMult(c.n, g).IsIdentity() {
		return nil, fmt.Errorf("weierstrass: %s * G is not the identity", c.n)
	}
	return c, nil
}

// Name returns the curve's name, or the empty string.
func (c *Curve) Name() string {
	return c.name
}

// NewPoint returns a new identity point.
func (c *Curve) NewPoint() group.Point {
	return &Point{curve: c, inf: true}
}

// NewAffine returns the affine point (x, y) with coordinates reduced mod p.
// The point is not checked against the curve equation; use [Curve.IsOnCurve].
func (c *Curve) NewAffine(x, y *big.Int) *Point {
	return &Point{curve: c, x: mod(x, c.p), y: mod(y, c.p)}
}

// Generator returns the curve's base point.
func (c *Curve) Generator() group.Point {
	return c.NewAffine(c.gx, c.gy)
}

// Order returns the order of the generator.
func (c *Curve) Order() *big.Int {
	return new(big.Int).Set(c.n)
}

// FieldModulus returns the prime p.
func (c *Curve) FieldModulus() *big.Int {
	return new(big.Int).Set(c.p)
}

// IsOnCurve reports whether pt satisfies y^2 = x^3 + A x + B (mod p).
// Points that belong to another curve implementation are rejected.
func (c *Curve) IsOnCurve(pt group.Point) bool {
	q, ok := pt.(*Point)
	if !ok {
		return false
	}
	if q.inf {
		return true
	}
	if q.x.Sign() < 0 || q.x.Cmp(c.p) >= 0 || q.y.Sign() < 0 || q.y.Cmp(c.p) >= 0 {
		return false
	}
	y2 := mulM(q.y, q.y, c.p)
	return y2.Cmp(c.rhs(q.x)) == 0
}

// String describes the curve equation.
func (c *Curve) String() string {
	return fmt.Sprintf("y^2 = x^3 + %sx + %s mod %s (n = %s)", c.a, c.b, c.p, c.n)
}

// rhs evaluates x^3 + A x + B mod p.
func (c *Curve) rhs(x *big.Int) *big.Int {
	x3 := mulM(x, mulM(x, x, c.p), c.p)
	return addM(addM(x3, mulM(c.a, x, c.p), c.p), c.b, c.p)
}

// isSingular reports whether 4A^3 + 27B^2 ≡ 0 mod p.
func (c *Curve) isSingular() bool {
	a3 := mulM(c.a, mulM(c.a, c.a, c.p), c.p)
	term := addM(mulM(big.NewInt(4), a3, c.p), mulM(big.NewInt(27), mulM(c.b, c.b, c.p), c.p), c.p)
	return term.Sign() == 0
}

// add computes P + Q on affine coordinates. Both inputs must be on the
// curve, which guarantees every denominator is invertible.
func (c *Curve) add(x1, y1 *big.Int, inf1 bool, x2, y2 *big.Int, inf2 bool) (*big.Int, *big.Int, bool) {
	if inf1 {
		return x2, y2, inf2
	}
	if inf2 {
		return x1, y1, inf1
	}
	p := c.p

	var lam *big.Int
	if x1.Cmp(x2) == 0 {
		// P == -Q, including the vertical tangent at y = 0
		if addM(y1, y2, p).Sign() == 0 {
			return nil, nil, true
		}
		num := addM(mulM(bigThree, mulM(x1, x1, p), p), c.a, p)
		den := mulM(bigTwo, y1, p)
		lam = mulM(num, new(big.Int).ModInverse(den, p), p)
	} else {
		num := subM(y2, y1, p)
		den := subM(x2, x1, p)
		lam = mulM(num, new(big.Int).ModInverse(den, p), p)
	}

	x3 := subM(subM(mulM(lam, lam, p), x1, p), x2, p)
	y3 := subM(mulM(lam, subM(x1, x3, p), p), y1, p)
	return x3, y3, false
}

// ---------- modular helpers ----------

func mod(a, p *big.Int) *big.Int { return new(big.Int).Mod(a, p) }

func addM(a, b, p *big.Int) *big.Int { return mod(new(big.Int).Add(a, b), p) }

func subM(a, b, p *big.Int) *big.Int { return mod(new(big.Int).Sub(a, b), p) }

func mulM(a, b, p *big.Int) *big.Int { return mod(new(big.Int).Mul(a, b), p) }

func negM(a, p *big.Int) *big.Int { return subM(bigZero, a, p) }
