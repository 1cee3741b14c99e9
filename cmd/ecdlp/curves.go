package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/f3rmion/dlog/bjj"
	"github.com/f3rmion/dlog/group"
	"github.com/f3rmion/dlog/secp256k1"
	"github.com/f3rmion/dlog/weierstrass"
)

const (
	curveBJJ       = "bjj"
	curveSecp256k1 = "secp256k1"
)

// curveNames lists every curve the command accepts. The toy curves come
// first; the others need a bounded search.
func curveNames() []string {
	return append(weierstrass.Names(), curveBJJ, curveSecp256k1)
}

func lookupCurve(name string) (group.Group, error) {
	switch name {
	case curveBJJ:
		return &bjj.BJJ{}, nil
	case curveSecp256k1:
		return secp256k1.New(), nil
	}
	c, err := weierstrass.ByName(name)
	if err != nil {
		return nil, fmt.Errorf("unknown curve %q (see 'ecdlp curves')", name)
	}
	return c, nil
}

var commandCurves = &cli.Command{
	Name:  "curves",
	Usage: "list the available curves",
	Action: func(ctx *cli.Context) error {
		for _, name := range curveNames() {
			g, err := lookupCurve(name)
			if err != nil {
				return err
			}
			fmt.Fprintf(ctx.App.Writer, "%-14s n = %s\n", name, g.Order())
		}
		return nil
	},
}
