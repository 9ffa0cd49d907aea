// Package srg - ternary edge store with a chronological trail.
//
// The store is the single mutable structure of a run. Every pair holds one
// of {Unset, Present, Absent}; definite states are never overwritten in
// place — the only way back to Unset is undoTo, which unwinds the trail.
// Per-vertex Present/Absent tallies are maintained incrementally so the
// degree feasibility checks stay O(1).
package srg

// edgeStore maps each unordered vertex pair to its EdgeState and records
// every definite assignment on a trail for backtracking.
//
// Hot-path discipline: states, trail and tallies are flat slices indexed
// by the closed-form pair index; no maps, no interface values.
type edgeStore struct {
	n      int
	states []EdgeState

	// trail holds pair indices in assignment order; the state to revert is
	// read from states before clearing.
	trail []int32

	// pairU/pairV decode a pair index back to its endpoints in O(1).
	pairU, pairV []int32

	// degPresent/degAbsent count definite incident pairs per vertex.
	degPresent []int32
	degAbsent  []int32
}

// newEdgeStore allocates an all-Unset store for n vertices.
//
// Complexity: O(n²) time and memory (the pair-decoding tables).
func newEdgeStore(n int) *edgeStore {
	var (
		np = pairCount(n)
		st = &edgeStore{
			n:          n,
			states:     make([]EdgeState, np),
			trail:      make([]int32, 0, np),
			pairU:      make([]int32, np),
			pairV:      make([]int32, np),
			degPresent: make([]int32, n),
			degAbsent:  make([]int32, n),
		}
		u, v int
	)
	for u = 0; u < n; u++ {
		for v = u + 1; v < n; v++ {
			idx := pairIndex(n, u, v)
			st.pairU[idx] = int32(u)
			st.pairV[idx] = int32(v)
		}
	}

	return st
}

// get returns the state of pair {u, v}. Endpoints may come in any order.
func (st *edgeStore) get(u, v int) EdgeState {
	if u > v {
		u, v = v, u
	}

	return st.states[pairIndex(st.n, u, v)]
}

// getIdx returns the state at a precomputed pair index.
func (st *edgeStore) getIdx(idx int) EdgeState { return st.states[idx] }

// setIdx assigns a definite state to the pair at idx and records it on the
// trail. Re-assigning the same state is a no-op; assigning the opposite
// definite state returns ErrConflict.
//
// Complexity: O(1).
func (st *edgeStore) setIdx(idx int, s EdgeState) error {
	cur := st.states[idx]
	if cur == s {
		return nil
	}
	if cur != Unset {
		return ErrConflict
	}
	st.states[idx] = s
	st.trail = append(st.trail, int32(idx))
	if s == Present {
		st.degPresent[st.pairU[idx]]++
		st.degPresent[st.pairV[idx]]++
	} else {
		st.degAbsent[st.pairU[idx]]++
		st.degAbsent[st.pairV[idx]]++
	}

	return nil
}

// set is the endpoint-order-insensitive form of setIdx.
func (st *edgeStore) set(u, v int, s EdgeState) error {
	if u > v {
		u, v = v, u
	}

	return st.setIdx(pairIndex(st.n, u, v), s)
}

// mark captures the current trail depth for a later undoTo.
func (st *edgeStore) mark() int { return len(st.trail) }

// undoTo reverts every assignment made after the given mark, restoring the
// states and tallies exactly as they were.
//
// Complexity: O(number of assignments since mark).
func (st *edgeStore) undoTo(mark int) {
	var i int
	for i = len(st.trail) - 1; i >= mark; i-- {
		idx := st.trail[i]
		if st.states[idx] == Present {
			st.degPresent[st.pairU[idx]]--
			st.degPresent[st.pairV[idx]]--
		} else {
			st.degAbsent[st.pairU[idx]]--
			st.degAbsent[st.pairV[idx]]--
		}
		st.states[idx] = Unset
	}
	st.trail = st.trail[:mark]
}

// unsetAt returns the count of still-undecided pairs incident to v.
func (st *edgeStore) unsetAt(v int) int {
	return st.n - 1 - int(st.degPresent[v]) - int(st.degAbsent[v])
}

// firstUnset returns the lowest pair index still Unset, or -1 when the
// assignment is complete. The scan order is the branching order: it makes
// the search lexicographic on (U, V) and therefore reproducible.
func (st *edgeStore) firstUnset(from int) int {
	var i int
	for i = from; i < len(st.states); i++ {
		if st.states[i] == Unset {
			return i
		}
	}

	return -1
}

// presentPairs copies out all Present pairs in index order, which is
// lexicographic on (U, V).
func (st *edgeStore) presentPairs() []Pair {
	var out []Pair
	var i int
	for i = 0; i < len(st.states); i++ {
		if st.states[i] == Present {
			out = append(out, Pair{U: int(st.pairU[i]), V: int(st.pairV[i])})
		}
	}

	return out
}
