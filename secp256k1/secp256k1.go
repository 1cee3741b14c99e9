package secp256k1

import (
	"math/big"

	"github.com/btcsuite/btcd/btcec/v2"

	"github.com/f3rmion/dlog/group"
)

// Point is a secp256k1 point in affine big.Int coordinates. The identity
// is represented as (0, 0), matching the crypto/elliptic convention.
//
// It implements [group.Point].
type Point struct {
	x, y *big.Int
}

func identity() *Point {
	return &Point{x: new(big.Int), y: new(big.Int)}
}

// set copies x and y into p.
func (p *Point) set(x, y *big.Int) *Point {
	p.x = new(big.Int).Set(x)
	p.y = new(big.Int).Set(y)
	return p
}

// Add sets p to a + b and returns p.
func (p *Point) Add(a, b group.Point) group.Point {
	aPoint := a.(*Point)
	bPoint := b.(*Point)
	switch {
	case aPoint.IsIdentity():
		return p.set(bPoint.x, bPoint.y)
	case bPoint.IsIdentity():
		return p.set(aPoint.x, aPoint.y)
	case aPoint.x.Cmp(bPoint.x) == 0 && aPoint.y.Cmp(bPoint.y) != 0:
		// b = -a
		return p.set(new(big.Int), new(big.Int))
	}
	x, y := btcec.S256().Add(aPoint.x, aPoint.y, bPoint.x, bPoint.y)
	return p.set(x, y)
}

// Double sets p to 2a and returns p.
func (p *Point) Double(a group.Point) group.Point {
	aPoint := a.(*Point)
	if aPoint.IsIdentity() {
		return p.set(aPoint.x, aPoint.y)
	}
	x, y := btcec.S256().Double(aPoint.x, aPoint.y)
	return p.set(x, y)
}

// Negate sets p to -a and returns p.
func (p *Point) Negate(a group.Point) group.Point {
	aPoint := a.(*Point)
	if aPoint.IsIdentity() {
		return p.set(aPoint.x, aPoint.y)
	}
	y := new(big.Int).Sub(btcec.S256().Params().P, aPoint.y)
	return p.set(aPoint.x, y)
}

// ScalarMult sets p to k * q and returns p. The scalar is reduced modulo
// the group order first, so negative k is accepted.
func (p *Point) ScalarMult(k *big.Int, q group.Point) group.Point {
	qPoint := q.(*Point)
	curve := btcec.S256()
	e := new(big.Int).Mod(k, curve.Params().N)
	if e.Sign() == 0 || qPoint.IsIdentity() {
		return p.set(new(big.Int), new(big.Int))
	}
	x, y := curve.ScalarMult(qPoint.x, qPoint.y, e.Bytes())
	return p.set(x, y)
}

// Set copies the value of a into p and returns p.
func (p *Point) Set(a group.Point) group.Point {
	aPoint := a.(*Point)
	return p.set(aPoint.x, aPoint.y)
}

// Bytes returns the compressed SEC1 encoding of p, or a single zero byte
// for the identity.
func (p *Point) Bytes() []byte {
	if p.IsIdentity() {
		return []byte{0}
	}
	var x, y btcec.FieldVal
	x.SetByteSlice(p.x.Bytes())
	y.SetByteSlice(p.y.Bytes())
	return btcec.NewPublicKey(&x, &y).SerializeCompressed()
}

// Equal reports whether p and b represent the same curve point.
func (p *Point) Equal(b group.Point) bool {
	bPoint, ok := b.(*Point)
	if !ok {
		return false
	}
	return p.x.Cmp(bPoint.x) == 0 && p.y.Cmp(bPoint.y) == 0
}

// IsIdentity reports whether p is the point at infinity.
func (p *Point) IsIdentity() bool {
	return p.x.Sign() == 0 && p.y.Sign() == 0
}

// X returns the affine x-coordinate, or nil for the identity.
func (p *Point) X() *big.Int {
	if p.IsIdentity() {
		return nil
	}
	return new(big.Int).Set(p.x)
}

// Group implements [group.Group] for secp256k1 using btcec.
type Group struct{}

// New returns the secp256k1 group.
func New() *Group {
	return &Group{}
}

// NewPoint returns a new identity point.
func (g *Group) NewPoint() group.Point {
	return identity()
}

// Generator returns the standard base point G.
func (g *Group) Generator() group.Point {
	params := btcec.S256().Params()
	return new(Point).set(params.Gx, params.Gy)
}

// Order returns the prime order n of G.
func (g *Group) Order() *big.Int {
	return new(big.Int).Set(btcec.S256().Params().N)
}

// FieldModulus returns the field prime p.
func (g *Group) FieldModulus() *big.Int {
	return new(big.Int).Set(btcec.S256().Params().P)
}

// IsOnCurve reports whether p is the identity or a reduced affine point
// satisfying y^2 = x^3 + 7.
func (g *Group) IsOnCurve(p group.Point) bool {
	q, ok := p.(*Point)
	if !ok || q.x == nil || q.y == nil {
		return false
	}
	if q.IsIdentity() {
		return true
	}
	fp := btcec.S256().Params().P
	if q.x.Sign() < 0 || q.x.Cmp(fp) >= 0 || q.y.Sign() < 0 || q.y.Cmp(fp) >= 0 {
		return false
	}
	return btcec.S256().IsOnCurve(q.x, q.y)
}

// NewAffine returns the point (x, y) without validation; use
// [Group.IsOnCurve] to check it.
func (g *Group) NewAffine(x, y *big.Int) *Point {
	return new(Point).set(x, y)
}
