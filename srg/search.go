// Package srg - depth-first branch-and-bound over edge states.
//
// The engine is an explicit state machine:
//
//	propagating → branching     fixpoint, undecided pairs remain
//	propagating → success       fixpoint, assignment complete & satisfied
//	propagating → backtracking  contradiction
//	branching                   pick the lowest-indexed Unset pair
//	                            (lexicographic on (U, V) — the documented
//	                            tie-break), try Present first
//	backtracking                flip the newest live choice point to
//	                            Absent; pop exhausted ones; empty stack
//	                            means the space is proven empty
//
// No randomization anywhere: identical inputs walk the identical tree.
//
// Budgets are soft: the wall clock and the context are tested sparsely
// (every budgetCheckMask+1 decisions), the node counter exactly. Expiry is
// its own terminal state, never conflated with exhaustion.
package srg

import (
	"context"
	"log"
	"time"

	"github.com/emirpasic/gods/stacks/arraystack"
)

// searchState enumerates the engine states.
type searchState uint8

const (
	statePropagating searchState = iota
	stateBranching
	stateBacktracking
	stateSuccess
	stateExhausted
	stateBudget
)

// budgetCheckMask gates the deadline/context tests: they run once per 1024
// decisions, keeping hot-loop overhead negligible. The node budget itself
// is a plain integer compare and is tested on every decision.
const budgetCheckMask = 1023

// verboseMask gates progress logging to once per 16384 decisions.
const verboseMask = 1<<14 - 1

// choicePoint records one branching decision so backtracking can first
// flip it (Present → Absent) and then discard it. mark is the trail depth
// before the tentative assignment; undoTo(mark) erases the decision and
// everything propagation derived from it.
type choicePoint struct {
	idx         int
	mark        int
	triedAbsent bool
}

// engine owns all mutable search state for one run. Nothing here is shared:
// each invocation (and each parallel worker) builds its own engine.
type engine struct {
	p    Params
	opts Options

	st      *edgeStore
	pr      *propagator
	choices *arraystack.Stack

	nextIdx int // pair selected by the propagating→branching transition

	useDeadline bool
	deadline    time.Time
	ctx         context.Context

	stats Stats
}

// newEngine builds an engine over a fresh all-Unset store.
func newEngine(ctx context.Context, p Params, opts Options) *engine {
	st := newEdgeStore(p.N)
	e := &engine{
		p:       p,
		opts:    opts,
		st:      st,
		pr:      newPropagator(st, p),
		choices: arraystack.New(),
		ctx:     ctx,
	}
	if opts.TimeLimit > 0 {
		e.useDeadline = true
		e.deadline = time.Now().Add(opts.TimeLimit)
	}

	return e
}

// anchorFirstVertex pins vertex 0's neighborhood to {1, …, k}. Any SRG on
// n labeled vertices can be relabeled into this form, so searching only
// the anchored space preserves both directions of the proof.
func (e *engine) anchorFirstVertex() propOutcome {
	var j int
	for j = 1; j < e.p.N; j++ {
		s := Absent
		if j <= e.p.K {
			s = Present
		}
		if err := e.pr.force(orderedIndex(e.p.N, 0, j), s); err != nil {
			e.pr.reset()

			return propConflict
		}
	}

	return propFixpoint
}

// overBudget tests the node budget exactly and the deadline/context
// sparsely. Returns true when the run must stop with OutcomeUnknown.
func (e *engine) overBudget() bool {
	if e.opts.MaxNodes > 0 && e.stats.Nodes >= e.opts.MaxNodes {
		return true
	}
	if e.stats.Nodes&budgetCheckMask != 0 {
		return false
	}
	if e.useDeadline && time.Now().After(e.deadline) {
		return true
	}
	if e.ctx != nil {
		select {
		case <-e.ctx.Done():
			return true
		default:
		}
	}

	return false
}

// decide pushes or flips nothing itself; it applies one tentative
// assignment and hands control back to propagation.
func (e *engine) decide(idx int, s EdgeState) searchState {
	// The pair is Unset here: branching picked it from firstUnset, and a
	// flip runs right after undoTo erased the Present attempt.
	if err := e.st.setIdx(idx, s); err != nil {
		return stateBacktracking
	}
	e.pr.seed(idx)
	e.stats.Nodes++
	if e.opts.Verbose && e.stats.Nodes&verboseMask == 0 {
		log.Printf("srg: %d nodes, depth %d, %d forced",
			e.stats.Nodes, e.choices.Size(), e.pr.forced)
	}

	return statePropagating
}

// prepare seeds the root wave: every vertex is queued so the degree rules
// catch trivially infeasible parameters on the empty assignment, and the
// optional anchor is applied. Conflict here proves the (anchored) space
// empty before any branching.
func (e *engine) prepare() propOutcome {
	e.pr.seedAllVertices()
	if e.opts.AnchorFirstVertex && e.p.K >= 1 {
		if e.anchorFirstVertex() == propConflict {
			return propConflict
		}
	}

	return propFixpoint
}

// run is the sequential entry: root preparation plus the search loop.
func (e *engine) run() searchState {
	if e.prepare() == propConflict {
		return stateExhausted
	}

	return e.search()
}

// search drives the state machine to a terminal state. The root wave must
// already be seeded (prepare), possibly with extra preset decisions forced
// in between — that is how parallel workers take disjoint subtrees.
func (e *engine) search() searchState {
	state := statePropagating
	for {
		switch state {
		case statePropagating:
			if e.pr.run() == propConflict {
				state = stateBacktracking

				continue
			}
			idx := e.st.firstUnset(0)
			if idx < 0 {
				if fullySatisfied(e.st, e.p) {
					state = stateSuccess
				} else {
					// Complete but inconsistent leaf: treat as a
					// contradiction and resume backtracking.
					state = stateBacktracking
				}

				continue
			}
			e.nextIdx = idx
			state = stateBranching

		case stateBranching:
			if e.overBudget() {
				return stateBudget
			}
			e.choices.Push(&choicePoint{idx: e.nextIdx, mark: e.st.mark()})
			if d := e.choices.Size(); d > e.stats.MaxDepth {
				e.stats.MaxDepth = d
			}
			state = e.decide(e.nextIdx, Present)

		case stateBacktracking:
			raw, ok := e.choices.Pop()
			if !ok {
				return stateExhausted
			}
			cp := raw.(*choicePoint)
			e.st.undoTo(cp.mark)
			if cp.triedAbsent {
				// Both branches of this choice point are exhausted; keep
				// unwinding.
				continue
			}
			if e.overBudget() {
				return stateBudget
			}
			cp.triedAbsent = true
			e.choices.Push(cp)
			state = e.decide(cp.idx, Absent)

		default:
			return state
		}
	}
}
