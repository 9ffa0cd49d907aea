// Package srg - propagator tests.
// Focus:
//  1. Degree rules: closing a saturated vertex, demanding a tight one.
//  2. Codegree rules: blocking open candidates at the λ target, demanding
//     them at the μ target; the both-Unset candidate is never over-forced.
//  3. Contradictions: degree overflow and codegree overflow.
//  4. Fixpoints strong enough to finish small instances without branching.
package srg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// mkProp wires a fresh store and propagator for params p.
func mkProp(t *testing.T, p Params) (*edgeStore, *propagator) {
	t.Helper()
	st := newEdgeStore(p.N)

	return st, newPropagator(st, p)
}

func TestPropagate_DegreeRules_CompleteMatching(t *testing.T) {
	// n=4, k=1: one decided edge saturates both endpoints (rule 1 closes
	// them), then the last two vertices have exactly one candidate left
	// (rule 2 demands it). Propagation completes the perfect matching.
	st, pr := mkProp(t, Params{N: 4, K: 1, Lambda: 0, Mu: 0})
	pr.seedAllVertices()
	require.NoError(t, pr.force(pairIndex(4, 0, 1), Present))
	require.Equal(t, propFixpoint, pr.run())

	require.Equal(t, Absent, st.get(0, 2))
	require.Equal(t, Absent, st.get(0, 3))
	require.Equal(t, Absent, st.get(1, 2))
	require.Equal(t, Absent, st.get(1, 3))
	require.Equal(t, Present, st.get(2, 3))
	require.True(t, fullySatisfied(st, Params{N: 4, K: 1, Lambda: 0, Mu: 0}))
}

func TestPropagate_DegreeRules_TriangleFromNothing(t *testing.T) {
	// n=3, k=2: every vertex needs both incident pairs, so the root wave
	// alone must build the complete triangle.
	p := Params{N: 3, K: 2, Lambda: 1, Mu: 0}
	st, pr := mkProp(t, p)
	pr.seedAllVertices()
	require.Equal(t, propFixpoint, pr.run())

	require.Equal(t, Present, st.get(0, 1))
	require.Equal(t, Present, st.get(0, 2))
	require.Equal(t, Present, st.get(1, 2))
	require.True(t, fullySatisfied(st, p))
}

func TestPropagate_CodegreeBlocking(t *testing.T) {
	// λ=0 and (0,1), (0,2) decided Present: vertex 2 is an open candidate
	// of the edge (0,1) reachable through the single Unset pair (1,2), so
	// (1,2) must be blocked. Degree k=2 then saturates vertex 0, and the
	// whole 4-cycle falls out without any branching.
	p := Params{N: 4, K: 2, Lambda: 0, Mu: 2}
	st, pr := mkProp(t, p)
	pr.seedAllVertices()
	require.NoError(t, pr.force(pairIndex(4, 0, 1), Present))
	require.NoError(t, pr.force(pairIndex(4, 0, 2), Present))
	require.Equal(t, propFixpoint, pr.run())

	require.Equal(t, Absent, st.get(1, 2), "common neighbor of (0,1) over the λ=0 target")
	require.Equal(t, Absent, st.get(0, 3), "vertex 0 saturated at k=2")
	require.Equal(t, Present, st.get(1, 3))
	require.Equal(t, Present, st.get(2, 3))
	require.True(t, fullySatisfied(st, p))
	require.Equal(t, []Pair{{0, 1}, {0, 2}, {1, 3}, {2, 3}}, st.presentPairs())
}

func TestPropagate_CodegreeBlocking_BothUnsetNotForced(t *testing.T) {
	// λ=0 on a wider board: for the edge (0,1) the candidate w=2 hangs on
	// two Unset pairs. Only one of them needs to be a non-edge, so neither
	// may be forced — over-forcing here would cut valid completions.
	p := Params{N: 5, K: 2, Lambda: 0, Mu: 1}
	st, pr := mkProp(t, p)
	require.NoError(t, pr.force(pairIndex(5, 0, 1), Present))
	require.Equal(t, propFixpoint, pr.run())

	require.Equal(t, Unset, st.get(0, 2))
	require.Equal(t, Unset, st.get(1, 2))
}

func TestPropagate_CodegreeDemanding(t *testing.T) {
	// (0,1) Absent with μ=2 and only two candidates left open: both must
	// become common neighbors, so their Unset connecting pairs are forced
	// Present.
	p := Params{N: 4, K: 2, Lambda: 0, Mu: 2}
	st, pr := mkProp(t, p)
	require.NoError(t, pr.force(pairIndex(4, 0, 2), Present))
	require.NoError(t, pr.force(pairIndex(4, 0, 3), Present))
	require.NoError(t, pr.force(pairIndex(4, 0, 1), Absent))
	require.Equal(t, propFixpoint, pr.run())

	require.Equal(t, Present, st.get(1, 2))
	require.Equal(t, Present, st.get(1, 3))
	require.True(t, fullySatisfied(st, p))
}

func TestPropagate_DegreeConflict(t *testing.T) {
	// Two present edges at a k=1 vertex contradict immediately.
	_, pr := mkProp(t, Params{N: 4, K: 1, Lambda: 0, Mu: 0})
	require.NoError(t, pr.force(pairIndex(4, 0, 1), Present))
	require.NoError(t, pr.force(pairIndex(4, 0, 2), Present))
	require.Equal(t, propConflict, pr.run())

	// A conflicted run drains its queues so the next wave starts clean.
	require.Empty(t, pr.dirtyVerts)
	require.Empty(t, pr.dirtyPairs)
}

func TestPropagate_CodegreeConflict(t *testing.T) {
	// A triangle under λ=0 cannot stand: whichever rule fires first (the
	// codegree of its edges, or the degree cascade it triggers at k=2),
	// the wave must end in a contradiction.
	_, pr := mkProp(t, Params{N: 4, K: 2, Lambda: 0, Mu: 2})
	require.NoError(t, pr.force(pairIndex(4, 0, 1), Present))
	require.NoError(t, pr.force(pairIndex(4, 0, 2), Present))
	require.NoError(t, pr.force(pairIndex(4, 1, 2), Present))
	require.Equal(t, propConflict, pr.run())
}

func TestPropagate_ForcedCounter(t *testing.T) {
	// The matching instance: one seeded decision, four closures and one
	// demanded edge are derived.
	_, pr := mkProp(t, Params{N: 4, K: 1, Lambda: 0, Mu: 0})
	pr.seedAllVertices()
	require.NoError(t, pr.force(pairIndex(4, 0, 1), Present))
	require.Equal(t, propFixpoint, pr.run())
	require.EqualValues(t, 6, pr.forced, "1 seeded + 5 derived assignments")
}
