// Package batch solves many independent discrete-logarithm instances
// concurrently.
//
// # Overview
//
// Each instance is a [Problem] holding the base point P, the target Q and,
// optionally, the expected logarithm. [Solve] fans the problems out over a
// bounded number of goroutines and collects one [Outcome] per problem in
// input order:
//
//	problems, err := batch.RandomProblems(g, g.Generator(), rand.Reader, 100)
//	if err != nil {
//	    return err
//	}
//	outcomes, err := batch.Solve(ctx, ecdlp.NewBSGS(g), problems, runtime.NumCPU())
//	if err != nil {
//	    return err
//	}
//	for i, o := range outcomes {
//	    if !o.Correct(problems[i]) {
//	        // o.Err explains why
//	    }
//	}
//
// # Errors
//
// A failed instance does not abort the batch: its error is stored in the
// outcome and the caller decides what to do with it. Only cancellation of
// the context is reported by Solve itself.
//
// # Concurrency
//
// Every instance runs in its own goroutine with its own table or walk. The
// solver value is shared, so it must be safe for concurrent use. A seeded
// [ecdlp.Rho] stays correct when shared but its results are no longer
// reproducible, because the instances race for the random stream.
package batch
