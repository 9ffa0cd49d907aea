// Package srg - parallel split tests (internal: they drive findParallel
// beneath the boundary battery to exercise the two-worker exhaustion path).
package srg

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFindParallel_ExhaustsDeepInfeasible(t *testing.T) {
	// Both subtrees of the split pair must come back empty before the
	// verdict; SRG(7,4,2,2) does not exist.
	res, err := findParallel(context.Background(),
		Params{N: 7, K: 4, Lambda: 2, Mu: 2}, Options{Parallel: true}, time.Now())
	require.NoError(t, err)
	require.Equal(t, OutcomeInfeasible, res.Outcome)
	require.Positive(t, res.Stats.Nodes)
}

func TestFindParallel_Witness(t *testing.T) {
	p := Params{N: 9, K: 4, Lambda: 1, Mu: 2}
	res, err := findParallel(context.Background(), p, Options{Parallel: true}, time.Now())
	require.NoError(t, err)
	require.Equal(t, OutcomeFound, res.Outcome)
	require.NoError(t, Verify(p, res.Edges))
}

func TestFindParallel_BudgetUnknown(t *testing.T) {
	res, err := findParallel(context.Background(),
		Params{N: 16, K: 6, Lambda: 2, Mu: 2}, Options{Parallel: true, MaxNodes: 1}, time.Now())
	require.NoError(t, err)
	require.Equal(t, OutcomeUnknown, res.Outcome)
	require.Nil(t, res.Edges)
}
