// Package srg - engine-level tests that reach beneath the boundary checks.
// Focus:
//  1. Exhaustion completeness: a tuple whose non-existence the arithmetic
//     battery would catch is fed to the raw engine, which must prove the
//     space empty by search alone — no false witnesses on the way.
//  2. The symmetry anchor pins vertex 0's neighborhood and still finds a
//     valid witness.
//  3. Budget expiry surfaces as its own terminal state.
package srg

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEngine_ExhaustionCompleteness(t *testing.T) {
	// SRG(7,4,2,2) does not exist (its multiplicities are irrational), but
	// the raw engine is not told: it must walk the whole anchor-free tree
	// and come back empty-handed, never claiming a witness.
	e := newEngine(context.Background(), Params{N: 7, K: 4, Lambda: 2, Mu: 2}, Options{})
	require.Equal(t, stateExhausted, e.run())
	require.Positive(t, e.stats.Nodes, "exhaustion must actually branch")
}

func TestEngine_ExhaustionCompleteness_Anchored(t *testing.T) {
	// Anchoring prunes relabelings only; the proof of emptiness survives.
	e := newEngine(context.Background(), Params{N: 7, K: 4, Lambda: 2, Mu: 2},
		Options{AnchorFirstVertex: true})
	require.Equal(t, stateExhausted, e.run())
}

func TestEngine_AnchoredWitness(t *testing.T) {
	e := newEngine(context.Background(), Params{N: 10, K: 3, Lambda: 0, Mu: 1},
		Options{AnchorFirstVertex: true})
	require.Equal(t, stateSuccess, e.run())

	edges := e.st.presentPairs()
	require.NoError(t, Verify(Params{N: 10, K: 3, Lambda: 0, Mu: 1}, edges))
	require.Equal(t, []Pair{{0, 1}, {0, 2}, {0, 3}}, edges[:3],
		"vertex 0 is pinned to neighbors {1,2,3}")
}

func TestEngine_CliqueUnionViaSearch(t *testing.T) {
	// μ=0 and (k+1) | n: the only SRG is the disjoint union of cliques.
	p := Params{N: 6, K: 2, Lambda: 1, Mu: 0}
	e := newEngine(context.Background(), p, Options{})
	require.Equal(t, stateSuccess, e.run())
	require.NoError(t, Verify(p, e.st.presentPairs()))
}

func TestEngine_NodeBudget(t *testing.T) {
	// A 16-vertex instance cannot be finished in one decision.
	e := newEngine(context.Background(), Params{N: 16, K: 6, Lambda: 2, Mu: 2},
		Options{MaxNodes: 1})
	require.Equal(t, stateBudget, e.run())
	require.EqualValues(t, 1, e.stats.Nodes)
}

func TestEngine_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	e := newEngine(ctx, Params{N: 16, K: 6, Lambda: 2, Mu: 2}, Options{})
	require.Equal(t, stateBudget, e.run())
}
