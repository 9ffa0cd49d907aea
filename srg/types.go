package srg

import "time"

// EdgeState is the ternary decision state of one unordered vertex pair.
//
//   - Unset   — the pair is still undecided; the search may branch on it.
//   - Present — the pair is an edge of the witness under construction.
//   - Absent  — the pair is a non-edge.
//
// Once a pair is Present or Absent it is never overwritten in place; the
// only legal transition back to Unset is an explicit trail undo.
type EdgeState uint8

const (
	// Unset marks a pair not yet decided by branching or propagation.
	Unset EdgeState = iota

	// Present marks a pair decided to be an edge.
	Present

	// Absent marks a pair decided to be a non-edge.
	Absent
)

// String implements fmt.Stringer for diagnostics and verbose logs.
func (s EdgeState) String() string {
	switch s {
	case Present:
		return "present"
	case Absent:
		return "absent"
	default:
		return "unset"
	}
}

// Pair is an unordered vertex pair in canonical form U < V.
// Vertices are integer identifiers in [0, n).
type Pair struct {
	U, V int
}

// NewPair returns the canonical form of the pair {u, v}, swapping
// endpoints so that U < V. u == v is the caller's bug; pairs are loopless.
func NewPair(u, v int) Pair {
	if u > v {
		u, v = v, u
	}

	return Pair{U: u, V: v}
}

// pairIndex maps a canonical pair (u < v) on n vertices to its slot in
// [0, n·(n−1)/2), row-major: (0,1), (0,2), … (0,n−1), (1,2), …
func pairIndex(n, u, v int) int {
	return u*(2*n-u-1)/2 + (v - u - 1)
}

// pairCount returns n·(n−1)/2, the number of unordered pairs on n vertices.
func pairCount(n int) int {
	return n * (n - 1) / 2
}

// Params bundles the four strongly-regular-graph parameters.
type Params struct {
	// N is the number of labeled vertices; N ≥ 1.
	N int

	// K is the required degree of every vertex; 0 ≤ K < N.
	K int

	// Lambda is the required common-neighbor count of adjacent pairs; ≥ 0.
	Lambda int

	// Mu is the required common-neighbor count of non-adjacent pairs; ≥ 0.
	Mu int
}

// Outcome classifies the result of a search.
type Outcome uint8

const (
	// OutcomeUnknown means a time, node or context budget expired before
	// the search could decide; it is the zero value on purpose, so an
	// unpopulated Result never claims a proof.
	OutcomeUnknown Outcome = iota

	// OutcomeFound means a verified witness edge set was produced.
	OutcomeFound

	// OutcomeInfeasible means no graph with these parameters exists on N
	// labeled vertices: either a necessary condition failed at the
	// boundary, or the full search space was exhausted.
	OutcomeInfeasible
)

// String implements fmt.Stringer.
func (o Outcome) String() string {
	switch o {
	case OutcomeFound:
		return "found"
	case OutcomeInfeasible:
		return "infeasible"
	default:
		return "unknown"
	}
}

// Stats reports search effort. All counters are zero when the boundary
// checks rejected the parameters before any branching.
type Stats struct {
	// Nodes is the number of branching decisions taken.
	Nodes int64

	// Propagations is the number of forced assignments derived.
	Propagations int64

	// MaxDepth is the deepest choice-point stack observed.
	MaxDepth int

	// Elapsed is the wall-clock duration of the whole call.
	Elapsed time.Duration
}

// Result is the outcome of Find/FindContext.
type Result struct {
	// Outcome tells whether Edges holds a witness.
	Outcome Outcome

	// Edges is the witness edge set, sorted lexicographically by (U, V).
	// Nil unless Outcome == OutcomeFound.
	Edges []Pair

	// Stats describes the search effort behind the outcome.
	Stats Stats
}
