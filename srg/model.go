// Package srg - the constraint model: degree and codegree feasibility.
//
// All functions here are pure over an edgeStore snapshot; they deduce
// nothing and assign nothing. The propagator turns their bounds into
// forced moves, the search uses fullySatisfied as its success test.
package srg

// degreeFeasible reports whether vertex v can still reach degree exactly k:
// its Present count must not exceed k, and Present plus Unset must still
// cover k (otherwise too few candidate edges remain).
//
// Complexity: O(1) thanks to the store tallies.
func degreeFeasible(st *edgeStore, k, v int) bool {
	dp := int(st.degPresent[v])

	return dp <= k && dp+st.unsetAt(v) >= k
}

// commonCounts sweeps the third vertices w of the pair {u, v} and returns:
//
//	definite — count of w adjacent to both u and v (both pairs Present);
//	possible — count of w not yet excluded (neither pair Absent).
//
// definite ≤ eventual CommonNeighborCount(u,v) ≤ possible in every
// completion of the current partial assignment.
//
// Complexity: O(n).
func commonCounts(st *edgeStore, u, v int) (definite, possible int) {
	var w int
	for w = 0; w < st.n; w++ {
		if w == u || w == v {
			continue
		}
		su := st.get(w, u)
		if su == Absent {
			continue
		}
		sv := st.get(w, v)
		if sv == Absent {
			continue
		}
		possible++
		if su == Present && sv == Present {
			definite++
		}
	}

	return definite, possible
}

// codegreeTarget returns the required common-neighbor count for a decided
// pair: λ when Present, μ when Absent. Calling it on an Unset pair is an
// engine bug; the propagator only queues decided pairs.
func codegreeTarget(p Params, s EdgeState) int {
	if s == Present {
		return p.Lambda
	}

	return p.Mu
}

// codegreeWithin is the bound test shared by the feasibility check and the
// propagator: the target must stay reachable, definite ≤ target ≤ possible.
func codegreeWithin(target, definite, possible int) bool {
	return definite <= target && target <= possible
}

// codegreeFeasible reports whether the decided pair {u, v} can still meet
// its codegree target exactly.
//
// Complexity: O(n).
func codegreeFeasible(st *edgeStore, p Params, u, v int) bool {
	s := st.get(u, v)
	if s == Unset {
		return true
	}
	definite, possible := commonCounts(st, u, v)

	return codegreeWithin(codegreeTarget(p, s), definite, possible)
}

// fullySatisfied reports whether the assignment is complete and every
// constraint holds exactly: no Unset pair, every vertex at degree k, every
// pair's common-neighbor count equal to its λ/μ target.
//
// Complexity: O(n³) worst case; the search calls it only at fixpoints with
// no undecided pair left.
func fullySatisfied(st *edgeStore, p Params) bool {
	var v int
	for v = 0; v < st.n; v++ {
		if int(st.degPresent[v]) != p.K || st.unsetAt(v) != 0 {
			return false
		}
	}

	var u int
	for u = 0; u < st.n; u++ {
		for v = u + 1; v < st.n; v++ {
			// With no Unset pair left possible == definite, so the bound
			// test degenerates to exact equality with the λ/μ target.
			if !codegreeFeasible(st, p, u, v) {
				return false
			}
		}
	}

	return true
}
