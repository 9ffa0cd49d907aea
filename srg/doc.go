// Package srg decides existence of strongly regular graphs and produces
// witnesses.
//
// A graph is strongly regular with parameters (n, k, λ, μ) when it has n
// vertices, every vertex has degree k, every adjacent pair of vertices has
// exactly λ common neighbors, and every non-adjacent pair has exactly μ.
//
// The package exposes two entry points:
//
//   - Find        — validate (n, k, λ, μ), short-circuit provably infeasible
//     tuples, then run an exact branch-and-bound search over
//     the 2^(n·(n−1)/2) edge subsets.
//   - FindContext — same, with context cancellation.
//
// Pipeline (strict order):
//
//  1. Boundary validation — ranges, handshake parity, the counting identity
//     k(k−1−λ) = (n−k−1)μ, clique divisibility for μ=0, and
//     eigenvalue-multiplicity integrality. A failed necessary condition
//     yields OutcomeInfeasible with zero search nodes.
//  2. Search — depth-first over undecided vertex pairs under a fixed
//     lexicographic order, Present tried before Absent, with incremental
//     propagation of the degree and codegree constraints after every
//     decision and chronological backtracking on contradiction.
//  3. Verification — a claimed witness is re-derived from the edge list
//     alone: neighbor-set intersections recount every degree and codegree,
//     and the adjacency matrix must satisfy A² = kI + λA + μ(J − I − A).
//     Disagreement is ErrInvariantViolation, never silently downgraded to
//     OutcomeInfeasible.
//
// Outcomes:
//   - OutcomeFound      — a verified witness edge set is attached.
//   - OutcomeInfeasible — no SRG with these parameters exists on n labeled
//     vertices (proven, not guessed).
//   - OutcomeUnknown    — a time, node or context budget expired first.
//
// Determinism: with no budget imposed, two runs with identical inputs
// return identical edge lists (fixed branching order, no randomness).
//
// Complexity:
//   - Validation: O(1) arithmetic.
//   - Search: exponential in n worst case; propagation does the pruning.
//   - Per decision: O(n) dirty-pair propagation seeding, O(n) per rule pass.
//   - Memory: O(n²) for the edge store, trail and per-vertex tallies.
package srg
