package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

var app = &cli.App{
	Name:  "ecdlp",
	Usage: "solve elliptic-curve discrete logarithms with BSGS and Pollard's rho",
	Commands: []*cli.Command{
		commandSolve,
		commandCurves,
	},
}

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
