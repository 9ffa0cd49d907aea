// Package srg - unified dispatcher for the SRG search.
//
// This file provides the canonical entry points:
//
//   - Find:        validate → short-circuit → search → verify.
//   - FindContext: same, honoring context cancellation.
//
// Design principles:
//   - Deterministic: no randomness anywhere; identical inputs, identical
//     witnesses (sequential mode).
//   - Strict sentinels: only errors from errors.go; outcomes that are not
//     defects travel in Result.Outcome, not in error.
//   - A witness is returned only after independent verification; there are
//     no partial or best-effort results.
package srg

import (
	"context"
	"log"
	"time"
)

// Find searches for a strongly regular graph with parameters p.
//
// Returns:
//   - Result with OutcomeFound and a verified, lexicographically sorted
//     witness edge set;
//   - OutcomeInfeasible when no such graph exists on p.N labeled vertices
//     (rejected at the boundary with zero nodes, or proven by exhaustion);
//   - OutcomeUnknown when a TimeLimit or MaxNodes budget expired first.
//
// Errors: ErrBadOptions, ErrInvalidParameters, or ErrInvariantViolation
// if the verifier rejects the engine's claim (a defect, not infeasibility).
func Find(p Params, opts Options) (Result, error) {
	return FindContext(context.Background(), p, opts)
}

// FindContext is Find with cooperative cancellation. A canceled context
// yields OutcomeUnknown together with ctx.Err(), so an interrupted run is
// never mistaken for a completed proof of infeasibility.
func FindContext(ctx context.Context, p Params, opts Options) (Result, error) {
	start := time.Now()
	if err := validateOptions(opts); err != nil {
		return Result{}, err
	}
	if err := validateParams(p); err != nil {
		return Result{}, err
	}

	// Necessary-condition battery: a complete rejection of infinitely many
	// infeasible tuples without expanding a single node.
	if provablyInfeasible(p) {
		if opts.Verbose {
			log.Printf("srg: (%d,%d,%d,%d) rejected by necessary conditions",
				p.N, p.K, p.Lambda, p.Mu)
		}

		return Result{
			Outcome: OutcomeInfeasible,
			Stats:   Stats{Elapsed: time.Since(start)},
		}, nil
	}

	if opts.Parallel {
		return findParallel(ctx, p, opts, start)
	}

	e := newEngine(ctx, p, opts)
	term := e.run()
	e.stats.Propagations = e.pr.forced
	e.stats.Elapsed = time.Since(start)

	return finishRun(ctx, p, opts, term, e.st.presentPairs(), e.stats)
}

// finishRun maps a terminal engine state onto the public Result contract,
// verifying witnesses before release.
func finishRun(ctx context.Context, p Params, opts Options,
	term searchState, edges []Pair, stats Stats) (Result, error) {
	switch term {
	case stateSuccess:
		if err := Verify(p, edges); err != nil {
			// Never downgrade a verifier disagreement to infeasibility.
			return Result{Outcome: OutcomeUnknown, Stats: stats}, err
		}
		if opts.Verbose {
			log.Printf("srg: found SRG(%d,%d,%d,%d) with %d edges after %d nodes in %s",
				p.N, p.K, p.Lambda, p.Mu, len(edges), stats.Nodes, stats.Elapsed)
		}

		return Result{Outcome: OutcomeFound, Edges: edges, Stats: stats}, nil

	case stateExhausted:
		if opts.Verbose {
			log.Printf("srg: (%d,%d,%d,%d) exhausted after %d nodes in %s",
				p.N, p.K, p.Lambda, p.Mu, stats.Nodes, stats.Elapsed)
		}

		return Result{Outcome: OutcomeInfeasible, Stats: stats}, nil

	default:
		// Budget or cancellation; surface ctx.Err when the caller pulled
		// the plug so interruption stays distinguishable from timeout.
		var err error
		if ctx != nil && ctx.Err() != nil {
			err = ctx.Err()
		}

		return Result{Outcome: OutcomeUnknown, Stats: stats}, err
	}
}
