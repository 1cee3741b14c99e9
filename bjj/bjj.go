package bjj

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark-crypto/ecc/bn254/twistededwards"

	"github.com/f3rmion/dlog/group"
)

// curveOrder is the Baby Jubjub subgroup order.
// This is distinct from the BN254 scalar field order (Fr), which is the
// modulus of the coordinate field here.
var curveOrder *big.Int

func init() {
	curve := twistededwards.GetEdwardsCurve()
	curveOrder = new(big.Int).Set(&curve.Order)
}

// Point represents a point on the Baby Jubjub curve.
// It implements [group.Point] by wrapping gnark-crypto's PointAffine.
//
// Points are represented in affine coordinates (x, y) on the twisted
// Edwards curve. The identity element is (0, 1).
type Point struct {
	inner twistededwards.PointAffine
}

// Add sets p to a + b and returns p.
func (p *Point) Add(a, b group.Point) group.Point {
	aPoint := a.(*Point)
	bPoint := b.(*Point)
	p.inner.Add(&aPoint.inner, &bPoint.inner)
	return p
}

// Double sets p to 2a and returns p.
func (p *Point) Double(a group.Point) group.Point {
	aPoint := a.(*Point)
	p.inner.Double(&aPoint.inner)
	return p
}

// Negate sets p to -a and returns p.
func (p *Point) Negate(a group.Point) group.Point {
	aPoint := a.(*Point)
	p.inner.Neg(&aPoint.inner)
	return p
}

// ScalarMult sets p to k * q and returns p.
// A negative k multiplies -q by |k|.
func (p *Point) ScalarMult(k *big.Int, q group.Point) group.Point {
	qPoint := q.(*Point)
	var base twistededwards.PointAffine
	base.Set(&qPoint.inner)
	if k.Sign() < 0 {
		base.Neg(&base)
	}
	p.inner.ScalarMultiplication(&base, new(big.Int).Abs(k))
	return p
}

// Set copies the value of a into p and returns p.
func (p *Point) Set(a group.Point) group.Point {
	aPoint := a.(*Point)
	p.inner.Set(&aPoint.inner)
	return p
}

// Bytes returns the compressed point encoding as a byte slice.
func (p *Point) Bytes() []byte {
	bytes := p.inner.Bytes()
	return bytes[:]
}

// Equal reports whether p and b represent the same curve point.
// Points from other groups are never equal to p.
func (p *Point) Equal(b group.Point) bool {
	bPoint, ok := b.(*Point)
	if !ok {
		return false
	}
	return p.inner.Equal(&bPoint.inner)
}

// IsIdentity reports whether p is the identity element (0, 1).
func (p *Point) IsIdentity() bool {
	return p.inner.IsZero()
}

// X returns the affine x-coordinate, or nil for the identity.
func (p *Point) X() *big.Int {
	if p.IsIdentity() {
		return nil
	}
	return p.inner.X.BigInt(new(big.Int))
}

// BJJ implements [group.Group] for the Baby Jubjub curve.
//
// BJJ is a zero-sized type that provides access to Baby Jubjub curve
// operations. Create an instance with &BJJ{} or new(BJJ).
type BJJ struct{}

// NewPoint returns a new point initialized to the identity element (0, 1).
func (g *BJJ) NewPoint() group.Point {
	var p Point
	p.inner.X.SetZero()
	p.inner.Y.SetOne()
	return &p
}

// Generator returns the standard base point for the Baby Jubjub curve.
func (g *BJJ) Generator() group.Point {
	var p Point
	p.inner = twistededwards.GetEdwardsCurve().Base
	return &p
}

// Order returns the order of the Baby Jubjub curve's prime-order subgroup.
func (g *BJJ) Order() *big.Int {
	return new(big.Int).Set(curveOrder)
}

// FieldModulus returns the BN254 scalar field modulus over which the
// curve is defined.
func (g *BJJ) FieldModulus() *big.Int {
	return fr.Modulus()
}

// IsOnCurve reports whether p is a Baby Jubjub point satisfying the
// twisted Edwards equation.
func (g *BJJ) IsOnCurve(p group.Point) bool {
	q, ok := p.(*Point)
	if !ok {
		return false
	}
	return q.inner.IsOnCurve()
}
