// Package srg - incremental constraint propagation.
//
// The propagator applies forced moves until a fixpoint or a contradiction,
// never branching. Rules, per the constraint model:
//
//  1. A vertex at degree k forces every remaining incident Unset pair
//     Absent.
//  2. A vertex whose Present + Unset incident pairs exactly cover k forces
//     every remaining incident Unset pair Present.
//  3. A decided pair whose definite common-neighbor count already equals
//     its target (λ if Present, μ if Absent) blocks every open candidate w
//     reachable by one Unset pair: that pair is forced Absent. A candidate
//     joined to u and v by two Unset pairs is not forced — only one of the
//     two ultimately needs to be a non-edge, so forcing both would cut
//     valid completions out of the search space.
//  4. A decided pair whose possible common-neighbor count has shrunk to
//     its target forces every open candidate to a common neighbor: both
//     connecting pairs Present.
//
// Incrementality: a freshly decided pair {u, v} dirties the two endpoint
// vertices and every decided pair sharing an endpoint — O(n) seeds — never
// the whole store. Work is queued with dedup bitmaps so each vertex/pair
// is examined once per wave.
package srg

// propOutcome is the tri-state result of a propagation run. Progress is
// internal: the run loops until one of the two terminal outcomes.
type propOutcome uint8

const (
	// propFixpoint: no rule can fire; the partial assignment is locally
	// consistent.
	propFixpoint propOutcome = iota

	// propConflict: some rule demanded the opposite of a definite state,
	// or a bound check failed outright.
	propConflict
)

// propagator owns the dirty-work queues over one engine's store.
type propagator struct {
	st *edgeStore
	p  Params

	dirtyVerts []int32
	vertQueued []bool
	dirtyPairs []int32
	pairQueued []bool

	// forced counts derived assignments for Stats.Propagations.
	forced int64
}

func newPropagator(st *edgeStore, p Params) *propagator {
	return &propagator{
		st:         st,
		p:          p,
		dirtyVerts: make([]int32, 0, st.n),
		vertQueued: make([]bool, st.n),
		dirtyPairs: make([]int32, 0, st.n),
		pairQueued: make([]bool, pairCount(st.n)),
	}
}

// reset drops any queued work, e.g. leftovers after a conflict.
func (pr *propagator) reset() {
	var i int
	for i = 0; i < len(pr.dirtyVerts); i++ {
		pr.vertQueued[pr.dirtyVerts[i]] = false
	}
	for i = 0; i < len(pr.dirtyPairs); i++ {
		pr.pairQueued[pr.dirtyPairs[i]] = false
	}
	pr.dirtyVerts = pr.dirtyVerts[:0]
	pr.dirtyPairs = pr.dirtyPairs[:0]
}

func (pr *propagator) touchVertex(v int32) {
	if !pr.vertQueued[v] {
		pr.vertQueued[v] = true
		pr.dirtyVerts = append(pr.dirtyVerts, v)
	}
}

func (pr *propagator) touchPair(idx int32) {
	if !pr.pairQueued[idx] {
		pr.pairQueued[idx] = true
		pr.dirtyPairs = append(pr.dirtyPairs, idx)
	}
}

// seed marks the consequences of a fresh decision at pair idx: both
// endpoints and every already-decided pair touching either endpoint.
//
// Complexity: O(n).
func (pr *propagator) seed(idx int) {
	var (
		st   = pr.st
		u    = int(st.pairU[idx])
		v    = int(st.pairV[idx])
		w, j int
	)
	pr.touchVertex(int32(u))
	pr.touchVertex(int32(v))
	pr.touchPair(int32(idx))
	for w = 0; w < st.n; w++ {
		if w != u && w != v {
			if j = orderedIndex(st.n, u, w); st.states[j] != Unset {
				pr.touchPair(int32(j))
			}
			if j = orderedIndex(st.n, v, w); st.states[j] != Unset {
				pr.touchPair(int32(j))
			}
		}
	}
}

// seedAllVertices queues every vertex; used once at the search root so the
// degree rules can catch trivially infeasible parameters (e.g. k too large
// to ever be reached).
func (pr *propagator) seedAllVertices() {
	var v int32
	for v = 0; v < int32(pr.st.n); v++ {
		pr.touchVertex(v)
	}
}

// force assigns a derived state and seeds its consequences. A same-state
// re-assignment is silent; an opposite-state one surfaces ErrConflict.
func (pr *propagator) force(idx int, s EdgeState) error {
	if pr.st.states[idx] == s {
		return nil
	}
	if err := pr.st.setIdx(idx, s); err != nil {
		return err
	}
	pr.forced++
	pr.seed(idx)

	return nil
}

// run drains the work queues to a fixpoint or a contradiction.
//
// Complexity: O(n) per dequeued vertex or pair; each assignment enqueues
// O(n) new work, so a full wave is O(n²) per derived edge in the worst
// case — far below rescanning all O(n²) pairs after every decision.
func (pr *propagator) run() propOutcome {
	for len(pr.dirtyVerts) > 0 || len(pr.dirtyPairs) > 0 {
		for len(pr.dirtyVerts) > 0 {
			v := pr.dirtyVerts[len(pr.dirtyVerts)-1]
			pr.dirtyVerts = pr.dirtyVerts[:len(pr.dirtyVerts)-1]
			pr.vertQueued[v] = false
			if !pr.applyDegreeRules(int(v)) {
				pr.reset()

				return propConflict
			}
		}
		if len(pr.dirtyPairs) > 0 {
			idx := pr.dirtyPairs[len(pr.dirtyPairs)-1]
			pr.dirtyPairs = pr.dirtyPairs[:len(pr.dirtyPairs)-1]
			pr.pairQueued[idx] = false
			if !pr.applyCodegreeRules(int(idx)) {
				pr.reset()

				return propConflict
			}
		}
	}

	return propFixpoint
}

// applyDegreeRules enforces rules 1 and 2 at vertex v. Returns false on
// contradiction.
func (pr *propagator) applyDegreeRules(v int) bool {
	var (
		st = pr.st
		k  = pr.p.K
		dp = int(st.degPresent[v])
		un = st.unsetAt(v)
	)
	if !degreeFeasible(st, k, v) {
		return false
	}
	if un == 0 {
		return true
	}

	var forcedState EdgeState
	switch {
	case dp == k:
		forcedState = Absent // rule 1: degree reached, close the vertex
	case dp+un == k:
		forcedState = Present // rule 2: every remaining pair is required
	default:
		return true
	}

	var w int
	for w = 0; w < st.n; w++ {
		if w == v {
			continue
		}
		idx := orderedIndex(st.n, v, w)
		if st.states[idx] != Unset {
			continue
		}
		if err := pr.force(idx, forcedState); err != nil {
			return false
		}
	}

	return true
}

// applyCodegreeRules enforces rules 3 and 4 at the decided pair idx.
// Returns false on contradiction.
func (pr *propagator) applyCodegreeRules(idx int) bool {
	var (
		st = pr.st
		u  = int(st.pairU[idx])
		v  = int(st.pairV[idx])
		s  = st.states[idx]
	)
	if s == Unset {
		// Stale queue entry after an undo; nothing to enforce.
		return true
	}
	t := codegreeTarget(pr.p, s)
	definite, possible := commonCounts(st, u, v)
	if !codegreeWithin(t, definite, possible) {
		return false
	}

	var (
		closeOpen  = definite == t && possible > t // rule 3
		demandOpen = possible == t && definite < t // rule 4
	)
	if !closeOpen && !demandOpen {
		return true
	}

	var w int
	for w = 0; w < st.n; w++ {
		if w == u || w == v {
			continue
		}
		var (
			iu = orderedIndex(st.n, u, w)
			iv = orderedIndex(st.n, v, w)
			su = st.states[iu]
			sv = st.states[iv]
		)
		if su == Absent || sv == Absent {
			continue // w already excluded
		}
		if su == Present && sv == Present {
			continue // w already settled as a common neighbor
		}
		// w is an open candidate: at least one connecting pair is Unset.
		switch {
		case demandOpen:
			// Every open candidate must become a common neighbor.
			if su == Unset {
				if err := pr.force(iu, Present); err != nil {
					return false
				}
			}
			if sv == Unset {
				if err := pr.force(iv, Present); err != nil {
					return false
				}
			}
		case su == Present:
			// closeOpen with one pair fixed: the other must be a non-edge.
			if err := pr.force(iv, Absent); err != nil {
				return false
			}
		case sv == Present:
			if err := pr.force(iu, Absent); err != nil {
				return false
			}
			// Both Unset under closeOpen: either pair may still become an
			// edge as long as not both do; no single forced move exists.
		}
	}

	return true
}

// orderedIndex is pairIndex tolerant of endpoint order.
func orderedIndex(n, u, v int) int {
	if u > v {
		u, v = v, u
	}

	return pairIndex(n, u, v)
}
