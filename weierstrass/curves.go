package weierstrass

import (
	"fmt"
	"math/big"
	"sort"
)

// Named toy curves. All of them are small enough for exhaustive testing.
const (
	NameTiny29       = "tiny29"
	NameSmall727     = "small727"
	NameComposite106 = "composite106"
)

var named = map[string]Params{
	// y^2 = x^3 + x + 4 over F_23; the whole group is cyclic of prime order 29.
	NameTiny29: {
		Name: NameTiny29,
		P:    big.NewInt(23),
		A:    big.NewInt(1),
		B:    big.NewInt(4),
		Gx:   big.NewInt(0),
		Gy:   big.NewInt(2),
		N:    big.NewInt(29),
	},
	// y^2 = x^3 + x + 11 over F_709; prime order 727.
	NameSmall727: {
		Name: NameSmall727,
		P:    big.NewInt(709),
		A:    big.NewInt(1),
		B:    big.NewInt(11),
		Gx:   big.NewInt(92),
		Gy:   big.NewInt(207),
		N:    big.NewInt(727),
	},
	// y^2 = x^3 + 2x + 7 over F_101; cyclic of composite order 106 = 2 * 53.
	// 2G generates the subgroup of order 53, which does not contain G.
	NameComposite106: {
		Name: NameComposite106,
		P:    big.NewInt(101),
		A:    big.NewInt(2),
		B:    big.NewInt(7),
		Gx:   big.NewInt(2),
		Gy:   big.NewInt(25),
		N:    big.NewInt(106),
	},
}

// Tiny29 returns the curve y^2 = x^3 + x + 4 over F_23 with G = (0, 2)
// of prime order 29.
func Tiny29() *Curve { return mustNamed(NameTiny29) }

// Small727 returns the curve y^2 = x^3 + x + 11 over F_709 with
// G = (92, 207) of prime order 727.
func Small727() *Curve { return mustNamed(NameSmall727) }

// Composite106 returns the curve y^2 = x^3 + 2x + 7 over F_101 with
// G = (2, 25) of composite order 106.
func Composite106() *Curve { return mustNamed(NameComposite106) }

// ByName returns the named curve, or an error listing the known names.
func ByName(name string) (*Curve, error) {
	params, ok := named[name]
	if !ok {
		return nil, fmt.Errorf("weierstrass: unknown curve %q (known: %v)", name, Names())
	}
	return New(params)
}

// Names returns the names of all built-in curves in sorted order.
func Names() []string {
	names := make([]string, 0, len(named))
	for name := range named {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func mustNamed(name string) *Curve {
	c, err := ByName(name)
	if err != nil {
		panic(err)
	}
	return c
}
