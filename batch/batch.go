package batch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/big"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/f3rmion/dlog/ecdlp"
	"github.com/f3rmion/dlog/group"
)

// Problem is one discrete-logarithm instance: find k with k*P = Q.
type Problem struct {
	P, Q group.Point

	// Want is the expected logarithm, if known. It is only used by
	// [Outcome.Correct].
	Want *big.Int
}

// Outcome is the result of solving one [Problem].
type Outcome struct {
	// Result is nil when Err is set.
	Result *ecdlp.Result

	// Err is the solver's error for this instance, or the context error
	// if the instance was never started.
	Err error

	// Elapsed is the wall time spent in the solver.
	Elapsed time.Duration
}

// Correct reports whether the outcome matches the problem's expected
// logarithm. It returns false when Want is unset or the solve failed.
func (o Outcome) Correct(p Problem) bool {
	if o.Err != nil || o.Result == nil || p.Want == nil {
		return false
	}
	return o.Result.Log.Cmp(p.Want) == 0
}

// Solve runs s over every problem using at most workers goroutines and
// returns one outcome per problem, in order.
//
// Per-instance failures such as [ecdlp.ErrNotFound] are recorded in the
// outcome and do not stop the batch. When ctx is cancelled no new instances
// are started; their outcomes carry the context error, which Solve also
// returns.
//
// The solver is shared between goroutines. Both solvers in package ecdlp
// are safe for concurrent use.
func Solve(ctx context.Context, s ecdlp.Solver, problems []Problem, workers int) ([]Outcome, error) {
	if workers < 1 {
		return nil, fmt.Errorf("batch: workers must be positive, got %d", workers)
	}

	outcomes := make([]Outcome, len(problems))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)

	for i, p := range problems {
		if err := egCtx.Err(); err != nil {
			for j := i; j < len(problems); j++ {
				outcomes[j].Err = err
			}
			break
		}
		i, p := i, p
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				outcomes[i].Err = err
				return nil
			}
			start := time.Now()
			res, err := s.Solve(p.P, p.Q)
			outcomes[i] = Outcome{Result: res, Err: err, Elapsed: time.Since(start)}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return outcomes, err
	}
	return outcomes, ctx.Err()
}

// RandomProblems draws count logarithms uniformly from [1, n) and returns
// the problems k*P = Q with Want set.
func RandomProblems(g group.Group, P group.Point, r io.Reader, count int) ([]Problem, error) {
	if count < 0 {
		return nil, errors.New("batch: negative problem count")
	}
	n := g.Order()
	problems := make([]Problem, count)
	for i := range problems {
		k, err := group.RandomInt(r, big.NewInt(1), n)
		if err != nil {
			return nil, fmt.Errorf("batch: drawing logarithm: %w", err)
		}
		problems[i] = Problem{
			P:    P,
			Q:    g.NewPoint().ScalarMult(k, P),
			Want: k,
		}
	}
	return problems, nil
}
