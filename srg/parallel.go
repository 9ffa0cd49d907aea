// Package srg - optional root split across two workers.
//
// Parallel mode partitions the search tree at its first choice point: one
// worker takes the subtree where the first undecided pair is Present, the
// other the Absent subtree. The subtrees are disjoint and jointly
// exhaustive, so:
//
//   - any worker reaching success yields a witness (first result wins, the
//     sibling is canceled);
//   - both workers exhausting proves infeasibility;
//   - otherwise some budget expired and the outcome is Unknown.
//
// Workers share no mutable state: each owns a fresh store, trail and
// propagator, reporting once on a buffered channel.
package srg

import (
	"context"
	"time"
)

// workerReport is one worker's terminal state plus the data the parent
// needs; edges are extracted inside the worker, which owns the store.
type workerReport struct {
	term  searchState
	edges []Pair
	stats Stats
}

// findParallel runs the two-subtree split. The probe engine re-derives the
// root fixpoint to locate the split pair; each worker re-derives it again
// on its own store — root propagation is cheap next to the subtree walks.
func findParallel(ctx context.Context, p Params, opts Options, start time.Time) (Result, error) {
	// Probe: root propagation only, to find the split pair or settle the
	// instance outright.
	probe := newEngine(ctx, p, opts)
	if probe.prepare() == propConflict || probe.pr.run() == propConflict {
		return Result{
			Outcome: OutcomeInfeasible,
			Stats:   Stats{Propagations: probe.pr.forced, Elapsed: time.Since(start)},
		}, nil
	}
	splitIdx := probe.st.firstUnset(0)
	if splitIdx < 0 {
		// Propagation alone completed the assignment; no branching left to
		// split. Settle sequentially on the probe's result.
		term := stateExhausted
		if fullySatisfied(probe.st, p) {
			term = stateSuccess
		}
		stats := Stats{Propagations: probe.pr.forced, Elapsed: time.Since(start)}

		return finishRun(ctx, p, opts, term, probe.st.presentPairs(), stats)
	}

	var (
		subCtx, cancel = context.WithCancel(ctx)
		reports        = make(chan workerReport, 2)
	)
	defer cancel()

	for _, s := range []EdgeState{Present, Absent} {
		go func(branch EdgeState) {
			w := newEngine(subCtx, p, opts)
			report := workerReport{term: stateExhausted}
			if w.prepare() != propConflict && w.pr.force(splitIdx, branch) == nil {
				report.term = w.search()
				if report.term == stateSuccess {
					report.edges = w.st.presentPairs()
				}
			}
			report.stats = w.stats
			report.stats.Propagations = w.pr.forced
			reports <- report
		}(s)
	}

	var (
		agg       Stats
		exhausted int
		i         int
	)
	for i = 0; i < 2; i++ {
		r := <-reports
		agg.Nodes += r.stats.Nodes
		agg.Propagations += r.stats.Propagations
		if r.stats.MaxDepth > agg.MaxDepth {
			agg.MaxDepth = r.stats.MaxDepth
		}
		switch r.term {
		case stateSuccess:
			// First witness wins; the sibling is canceled via subCtx and
			// its report stays in the buffered channel.
			cancel()
			agg.Elapsed = time.Since(start)

			return finishRun(ctx, p, opts, stateSuccess, r.edges, agg)
		case stateExhausted:
			exhausted++
		}
	}
	agg.Elapsed = time.Since(start)

	term := stateBudget
	if exhausted == 2 {
		term = stateExhausted
	}

	return finishRun(ctx, p, opts, term, nil, agg)
}
