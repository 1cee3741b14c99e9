package main

import (
	crand "crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"math/big"
	"runtime"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/f3rmion/dlog/batch"
	"github.com/f3rmion/dlog/ecdlp"
	"github.com/f3rmion/dlog/group"
	"github.com/f3rmion/dlog/weierstrass"
)

const (
	methodBSGS = "bsgs"
	methodRho  = "rho"
	methodBoth = "both"
)

// maxRhoBits is the largest group order, in bits, rho is run on. Beyond it a
// walk takes about 2^24 steps or more.
const maxRhoBits = 48

var (
	curveFlag = &cli.StringFlag{
		Name:  "curve",
		Usage: "curve to solve on (see 'ecdlp curves')",
		Value: weierstrass.NameSmall727,
	}
	methodFlag = &cli.StringFlag{
		Name:  "method",
		Usage: "solver to run: `bsgs`, `rho` or `both`",
		Value: methodBoth,
	}
	logFlag = &cli.StringFlag{
		Name:  "k",
		Usage: "decimal logarithm to hide in Q = k*G (random in [1, n) if unset)",
	}
	seedFlag = &cli.StringFlag{
		Name:  "seed",
		Usage: "hex seed for a reproducible run",
	}
	boundFlag = &cli.Uint64Flag{
		Name:  "bound",
		Usage: "only search logarithms below this value with BSGS (0 searches the whole group)",
	}
	countFlag = &cli.IntFlag{
		Name:  "count",
		Usage: "solve this many random instances concurrently instead of one",
		Value: 1,
	}
	workersFlag = &cli.IntFlag{
		Name:  "workers",
		Usage: "number of concurrent solves with --count",
		Value: runtime.NumCPU(),
	}
)

var commandSolve = &cli.Command{
	Name:  "solve",
	Usage: "hide a logarithm in Q = k*G and recover it",
	Description: `
Compute Q = k*G on the selected curve and recover k with baby-step giant-step,
Pollard's rho, or both. The command fails if a solver returns a different
logarithm.

The large curves (bjj, secp256k1) can only be solved with --method bsgs and a
--bound that covers k; rho is refused on them.
`,
	Flags: []cli.Flag{
		curveFlag,
		methodFlag,
		logFlag,
		seedFlag,
		boundFlag,
		countFlag,
		workersFlag,
	},
	Action: func(ctx *cli.Context) error {
		g, err := lookupCurve(ctx.String(curveFlag.Name))
		if err != nil {
			return cli.Exit(err, 1)
		}
		rng, err := randomSource(ctx.String(seedFlag.Name))
		if err != nil {
			return cli.Exit(err, 1)
		}
		solvers, err := buildSolvers(g, ctx.String(methodFlag.Name), ctx.Uint64(boundFlag.Name), rng)
		if err != nil {
			return cli.Exit(err, 1)
		}

		if count := ctx.Int(countFlag.Name); count > 1 {
			return solveBatch(ctx, g, solvers, rng, count)
		}

		k, err := chooseLog(g, ctx.String(logFlag.Name), rng)
		if err != nil {
			return cli.Exit(err, 1)
		}
		P := g.Generator()
		Q := g.NewPoint().ScalarMult(k, P)
		fmt.Fprintf(ctx.App.Writer, "curve %s, n = %s, k = %s\n", ctx.String(curveFlag.Name), g.Order(), k)

		for _, ns := range solvers {
			start := time.Now()
			res, err := ns.solver.Solve(P, Q)
			elapsed := time.Since(start)
			if err != nil {
				return cli.Exit(fmt.Sprintf("%s: %v", ns.name, err), 1)
			}
			fmt.Fprintf(ctx.App.Writer, "%-5s log = %s, steps = %s, elapsed = %s\n", ns.name, res.Log, res.Steps, elapsed)
			if res.Log.Cmp(k) != 0 {
				return cli.Exit(fmt.Sprintf("%s: recovered %s, want %s", ns.name, res.Log, k), 1)
			}
		}
		return nil
	},
}

type namedSolver struct {
	name   string
	solver ecdlp.Solver
}

func buildSolvers(g group.Group, method string, bound uint64, rng io.Reader) ([]namedSolver, error) {
	var out []namedSolver
	if method == methodBSGS || method == methodBoth {
		s := ecdlp.NewBSGS(g)
		if bound > 0 {
			var err error
			if s, err = ecdlp.NewBSGSWithBound(g, new(big.Int).SetUint64(bound)); err != nil {
				return nil, err
			}
		}
		out = append(out, namedSolver{name: methodBSGS, solver: s})
	}
	if method == methodRho || method == methodBoth {
		if bits := g.Order().BitLen(); bits > maxRhoBits {
			return nil, fmt.Errorf("rho cannot search a %d-bit group; use --method bsgs with --bound", bits)
		}
		if bound > 0 {
			return nil, errors.New("--bound only applies to bsgs; use --method bsgs")
		}
		s, err := ecdlp.NewRho(g, rng)
		if err != nil {
			return nil, err
		}
		out = append(out, namedSolver{name: methodRho, solver: s})
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("unknown method %q", method)
	}
	return out, nil
}

func randomSource(seed string) (io.Reader, error) {
	if seed == "" {
		return crand.Reader, nil
	}
	b, err := hex.DecodeString(seed)
	if err != nil {
		return nil, fmt.Errorf("invalid seed: %w", err)
	}
	return group.NewSeededReader(b)
}

func chooseLog(g group.Group, s string, rng io.Reader) (*big.Int, error) {
	if s == "" {
		return group.RandomInt(rng, big.NewInt(1), g.Order())
	}
	k, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("invalid logarithm %q", s)
	}
	if k.Sign() <= 0 || k.Cmp(g.Order()) >= 0 {
		return nil, fmt.Errorf("logarithm %s outside [1, %s)", k, g.Order())
	}
	return k, nil
}

func solveBatch(ctx *cli.Context, g group.Group, solvers []namedSolver, rng io.Reader, count int) error {
	problems, err := batch.RandomProblems(g, g.Generator(), rng, count)
	if err != nil {
		return cli.Exit(err, 1)
	}
	for _, ns := range solvers {
		start := time.Now()
		outcomes, err := batch.Solve(ctx.Context, ns.solver, problems, ctx.Int(workersFlag.Name))
		if err != nil {
			return cli.Exit(fmt.Sprintf("%s: %v", ns.name, err), 1)
		}
		elapsed := time.Since(start)

		correct := 0
		steps := new(big.Int)
		for i, o := range outcomes {
			if o.Correct(problems[i]) {
				correct++
				steps.Add(steps, o.Result.Steps)
			}
		}
		fmt.Fprintf(ctx.App.Writer, "%-5s %d/%d solved, %s total steps, elapsed = %s\n",
			ns.name, correct, count, steps, elapsed)
		if correct != count {
			return cli.Exit(fmt.Sprintf("%s: %d instances failed", ns.name, count-correct), 1)
		}
	}
	return nil
}
