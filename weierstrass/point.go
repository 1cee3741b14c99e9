package weierstrass

import (
	"fmt"
	"math/big"

	"github.com/f3rmion/dlog/group"
)

// Point is a point on a [Curve]: either the identity or an affine pair
// with coordinates in [0, p). It implements [group.Point].
type Point struct {
	curve *Curve
	x, y  *big.Int
	inf   bool
}

// set stores the result of an operation, copying so the receiver never
// aliases another point's coordinates.
func (p *Point) set(c *Curve, x, y *big.Int, inf bool) *Point {
	p.curve = c
	p.inf = inf
	if inf {
		p.x, p.y = nil, nil
		return p
	}
	p.x = new(big.Int).Set(x)
	p.y = new(big.Int).Set(y)
	return p
}

// Add sets p to a + b and returns p.
func (p *Point) Add(a, b group.Point) group.Point {
	aPoint := a.(*Point)
	bPoint := b.(*Point)
	c := aPoint.curve
	x, y, inf := c.add(aPoint.x, aPoint.y, aPoint.inf, bPoint.x, bPoint.y, bPoint.inf)
	return p.set(c, x, y, inf)
}

// Double sets p to 2a and returns p.
func (p *Point) Double(a group.Point) group.Point {
	return p.Add(a, a)
}

// Negate sets p to -a and returns p.
func (p *Point) Negate(a group.Point) group.Point {
	aPoint := a.(*Point)
	if aPoint.inf {
		return p.set(aPoint.curve, nil, nil, true)
	}
	return p.set(aPoint.curve, aPoint.x, negM(aPoint.y, aPoint.curve.p), false)
}

// ScalarMult sets p to k * q using double-and-add and returns p.
// A negative k multiplies -q by |k|.
func (p *Point) ScalarMult(k *big.Int, q group.Point) group.Point {
	qPoint := q.(*Point)
	c := qPoint.curve

	base := &Point{}
	base.set(c, qPoint.x, qPoint.y, qPoint.inf)
	if k.Sign() < 0 {
		base.Negate(base)
	}
	e := new(big.Int).Abs(k)

	acc := &Point{curve: c, inf: true}
	for i := e.BitLen() - 1; i >= 0; i-- {
		acc.Double(acc)
		if e.Bit(i) == 1 {
			acc.Add(acc, base)
		}
	}
	return p.set(c, acc.x, acc.y, acc.inf)
}

// Set copies the value of a into p and returns p.
func (p *Point) Set(a group.Point) group.Point {
	aPoint := a.(*Point)
	return p.set(aPoint.curve, aPoint.x, aPoint.y, aPoint.inf)
}

// Bytes returns the canonical encoding: a single zero byte for the
// identity, otherwise 0x04 followed by fixed-width big-endian x and y.
func (p *Point) Bytes() []byte {
	if p.inf {
		return []byte{0}
	}
	size := p.curve.size
	out := make([]byte, 1+2*size)
	out[0] = 4
	p.x.FillBytes(out[1 : 1+size])
	p.y.FillBytes(out[1+size:])
	return out
}

// Equal reports whether p and b represent the same curve point.
func (p *Point) Equal(b group.Point) bool {
	bPoint, ok := b.(*Point)
	if !ok {
		return false
	}
	if p.inf || bPoint.inf {
		return p.inf == bPoint.inf
	}
	return p.x.Cmp(bPoint.x) == 0 && p.y.Cmp(bPoint.y) == 0
}

// IsIdentity reports whether p is the point at infinity.
func (p *Point) IsIdentity() bool {
	return p.inf
}

// X returns a copy of the affine x-coordinate, or nil for the identity.
func (p *Point) X() *big.Int {
	if p.inf {
		return nil
	}
	return new(big.Int).Set(p.x)
}

// Y returns a copy of the affine y-coordinate, or nil for the identity.
func (p *Point) Y() *big.Int {
	if p.inf {
		return nil
	}
	return new(big.Int).Set(p.y)
}

// String formats p as "(x, y)" or "O" for the identity.
func (p *Point) String() string {
	if p.inf {
		return "O"
	}
	return fmt.Sprintf("(%s, %s)", p.x, p.y)
}
