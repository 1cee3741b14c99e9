package group

import (
	"errors"
	"io"
	"math/big"

	"golang.org/x/crypto/blake2b"
)

var (
	// ErrNotInvertible is returned by ModInverse when the value shares a
	// factor with the modulus.
	ErrNotInvertible = errors.New("group: value is not invertible modulo n")

	// ErrEmptyRange is returned by RandomInt when lo >= hi.
	ErrEmptyRange = errors.New("group: empty random range")
)

// Mod returns a mod n in [0, n) as a new integer.
func Mod(a, n *big.Int) *big.Int {
	return new(big.Int).Mod(a, n)
}

// ModInverse returns a^{-1} mod n. The value is reduced first, so negative
// inputs are accepted. Returns ErrNotInvertible if gcd(a, n) != 1, which
// includes a ≡ 0.
func ModInverse(a, n *big.Int) (*big.Int, error) {
	r := Mod(a, n)
	if r.Sign() == 0 {
		return nil, ErrNotInvertible
	}
	inv := new(big.Int).ModInverse(r, n)
	if inv == nil {
		return nil, ErrNotInvertible
	}
	return inv, nil
}

// SolveLinear solves b*x ≡ a (mod n). With d = gcd(b, n), the solutions are
// x0 + i*step for i in [0, d), where step = n/d and x0 is in [0, step).
// Returns ErrNotInvertible if b ≡ 0 or d does not divide a.
func SolveLinear(b, a, n *big.Int) (x0, step *big.Int, err error) {
	br := Mod(b, n)
	if br.Sign() == 0 {
		return nil, nil, ErrNotInvertible
	}
	ar := Mod(a, n)
	d := new(big.Int).GCD(nil, nil, br, n)
	if new(big.Int).Mod(ar, d).Sign() != 0 {
		return nil, nil, ErrNotInvertible
	}

	step = new(big.Int).Quo(n, d)
	if step.Cmp(big.NewInt(1)) == 0 {
		return new(big.Int), step, nil
	}
	inv, err := ModInverse(new(big.Int).Quo(br, d), step)
	if err != nil {
		return nil, nil, err
	}
	x0 = new(big.Int).Quo(ar, d)
	x0.Mul(x0, inv)
	x0.Mod(x0, step)
	return x0, step, nil
}

// RandomInt returns an integer uniformly distributed in [lo, hi), reading
// entropy from r. Rejection sampling keeps the distribution unbiased.
func RandomInt(r io.Reader, lo, hi *big.Int) (*big.Int, error) {
	span := new(big.Int).Sub(hi, lo)
	if span.Sign() <= 0 {
		return nil, ErrEmptyRange
	}

	// Sample from [0, span) using the smallest number of whole bytes, masking
	// the excess bits of the top byte.
	top := new(big.Int).Sub(span, big.NewInt(1))
	bitLen := top.BitLen()
	if bitLen == 0 {
		return new(big.Int).Set(lo), nil
	}
	buf := make([]byte, (bitLen+7)/8)
	mask := byte(0xff >> (uint(len(buf)*8 - bitLen)))

	v := new(big.Int)
	for {
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, err
		}
		buf[0] &= mask
		v.SetBytes(buf)
		if v.Cmp(span) < 0 {
			return v.Add(v, lo), nil
		}
	}
}

// NewSeededReader returns a deterministic, unbounded stream of bytes derived
// from seed with the BLAKE2b XOF. Two readers built from the same seed
// produce identical streams, which makes randomized algorithms replayable.
//
// Seeds longer than 64 bytes are compressed with BLAKE2b-512 first.
func NewSeededReader(seed []byte) (io.Reader, error) {
	key := seed
	if len(key) > blake2b.Size {
		sum := blake2b.Sum512(seed)
		key = sum[:]
	}
	xof, err := blake2b.NewXOF(blake2b.OutputLengthUnknown, key)
	if err != nil {
		return nil, err
	}
	return xof, nil
}
