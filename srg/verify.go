// Package srg - independent witness verification.
//
// The verifier trusts nothing from the search: it receives the edge list
// alone and re-derives every property twice, through two code paths that
// share no bookkeeping with the propagator:
//
//  1. Combinatorially — neighbor sets per vertex, degrees by cardinality,
//     codegrees by set intersection.
//  2. Algebraically — the adjacency matrix of an SRG(n,k,λ,μ) satisfies
//     A² = k·I + λ·A + μ·(J − I − A), checked entrywise with a dense
//     matrix product.
//
// A disagreement between the engine's claim and either path is
// ErrInvariantViolation: a defect in propagation or bookkeeping, never to
// be read as ordinary infeasibility.
package srg

import (
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"
	"gonum.org/v1/gonum/mat"
)

// Verify checks that edges is the edge set of a strongly regular graph
// with parameters p on the labeled vertices [0, p.N).
//
// Errors:
//   - ErrInvalidParameters for out-of-range p.
//   - ErrMalformedWitness for loops, out-of-range endpoints or duplicates.
//   - ErrInvariantViolation (wrapped, with the first offending vertex or
//     pair) when the graph is simple but not strongly regular with p.
//
// Complexity: O(n³) — dominated by the matrix product; the set-based pass
// is O(n·k + n²·k) with small constants.
func Verify(p Params, edges []Pair) error {
	if err := validateParams(p); err != nil {
		return err
	}

	nbrs, err := neighborSets(p.N, edges)
	if err != nil {
		return err
	}

	if err = verifySets(p, nbrs); err != nil {
		return err
	}

	return verifyMatrix(p, edges)
}

// neighborSets builds one neighbor set per vertex, rejecting malformed
// edge lists (loops, range violations, duplicates).
func neighborSets(n int, edges []Pair) ([]mapset.Set[int], error) {
	nbrs := make([]mapset.Set[int], n)
	var v int
	for v = 0; v < n; v++ {
		nbrs[v] = mapset.NewThreadUnsafeSet[int]()
	}
	for _, e := range edges {
		if e.U < 0 || e.V < 0 || e.U >= n || e.V >= n {
			return nil, fmt.Errorf("%w: endpoint out of range in (%d,%d)",
				ErrMalformedWitness, e.U, e.V)
		}
		if e.U == e.V {
			return nil, fmt.Errorf("%w: loop at vertex %d",
				ErrMalformedWitness, e.U)
		}
		if nbrs[e.U].Contains(e.V) {
			return nil, fmt.Errorf("%w: duplicate pair (%d,%d)",
				ErrMalformedWitness, e.U, e.V)
		}
		nbrs[e.U].Add(e.V)
		nbrs[e.V].Add(e.U)
	}

	return nbrs, nil
}

// verifySets is the combinatorial pass: degree by cardinality, codegree by
// intersection cardinality. The intersection of two neighbor sets is
// exactly the common-neighbor set — a vertex never neighbors itself, so
// neither endpoint can leak in.
func verifySets(p Params, nbrs []mapset.Set[int]) error {
	var u, v int
	for v = 0; v < p.N; v++ {
		if d := nbrs[v].Cardinality(); d != p.K {
			return fmt.Errorf("%w: vertex %d has degree %d, want %d",
				ErrInvariantViolation, v, d, p.K)
		}
	}
	for u = 0; u < p.N; u++ {
		for v = u + 1; v < p.N; v++ {
			var (
				common = nbrs[u].Intersect(nbrs[v]).Cardinality()
				want   = p.Mu
			)
			if nbrs[u].Contains(v) {
				want = p.Lambda
			}
			if common != want {
				return fmt.Errorf("%w: pair (%d,%d) has %d common neighbors, want %d",
					ErrInvariantViolation, u, v, common, want)
			}
		}
	}

	return nil
}

// verifyMatrix is the algebraic pass: A² must equal k·I + λ·A + μ·(J−I−A)
// entrywise. All entries are small non-negative integers, so the float
// comparison below is exact.
func verifyMatrix(p Params, edges []Pair) error {
	var (
		n = p.N
		a = mat.NewDense(n, n, nil)
	)
	for _, e := range edges {
		a.Set(e.U, e.V, 1)
		a.Set(e.V, e.U, 1)
	}

	var sq mat.Dense
	sq.Mul(a, a)

	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			var want float64
			switch {
			case i == j:
				want = float64(p.K)
			case a.At(i, j) == 1:
				want = float64(p.Lambda)
			default:
				want = float64(p.Mu)
			}
			if sq.At(i, j) != want {
				return fmt.Errorf("%w: (A²)[%d,%d] = %g, want %g",
					ErrInvariantViolation, i, j, sq.At(i, j), want)
			}
		}
	}

	return nil
}

// AdjacencyMatrix renders an edge list as a dense 0/1 matrix, for callers
// that print or post-process witnesses. It does not validate the list;
// out-of-range endpoints panic as any slice misuse would.
func AdjacencyMatrix(n int, edges []Pair) [][]int {
	m := make([][]int, n)
	var i int
	for i = 0; i < n; i++ {
		m[i] = make([]int, n)
	}
	for _, e := range edges {
		m[e.U][e.V] = 1
		m[e.V][e.U] = 1
	}

	return m
}
