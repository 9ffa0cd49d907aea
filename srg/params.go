// Package srg - boundary validation of (n, k, λ, μ).
//
// This file contains the fast-fail battery run before any search:
//  1. Range preconditions (ErrInvalidParameters; a caller bug).
//  2. Necessary existence conditions (OutcomeInfeasible with zero nodes):
//     counting identity, handshake parity, codegree bounds, clique
//     divisibility for μ=0, and eigenvalue-multiplicity integrality.
//
// Design principles:
//   - Deterministic, side-effect free, integer arithmetic only — the
//     multiplicity check works on the squared discriminant, never floats.
//   - Sentinel-only errors; rejection of a searchable-but-doomed tuple is
//     an Outcome, not an error.
package srg

// validateParams enforces the range preconditions of the public contract:
// n ≥ 1, 0 ≤ k < n, λ ≥ 0, μ ≥ 0.
//
// Complexity: O(1).
func validateParams(p Params) error {
	if p.N < 1 {
		return ErrInvalidParameters
	}
	if p.K < 0 || p.K >= p.N {
		return ErrInvalidParameters
	}
	if p.Lambda < 0 || p.Mu < 0 {
		return ErrInvalidParameters
	}

	return nil
}

// provablyInfeasible reports whether a necessary existence condition fails,
// which rejects the tuple without expanding a single search node.
//
// Conditions, in check order:
//   - counting identity: k·(k−1−λ) == (n−k−1)·μ (count paths of length 2
//     from a fixed vertex two ways);
//   - handshake parity: n·k must be even;
//   - codegree bounds: λ ≤ k−1 when edges exist, μ ≤ k when non-adjacent
//     pairs exist;
//   - μ = 0 forces a disjoint union of (k+1)-cliques, so (k+1) must
//     divide n;
//   - eigenvalue multiplicities ((n−1) ∓ (2k+(n−1)(λ−μ))/√d)/2 with
//     d = (λ−μ)²+4(k−μ) must be non-negative integers.
//
// The conditions are necessary, not sufficient: a true return is a proof
// of non-existence, a false return only admits the tuple to the search.
//
// Complexity: O(log d) for the integer square root, otherwise O(1).
func provablyInfeasible(p Params) bool {
	var n, k, l, m = p.N, p.K, p.Lambda, p.Mu

	// Counting identity: fix a vertex v; paths v–w–x with w~v, x≁v number
	// k·(k−1−λ) when counted over w and (n−k−1)·μ when counted over x.
	if k*(k-1-l) != (n-k-1)*m {
		return true
	}

	// Handshake lemma: the degree sum n·k is twice the edge count.
	if n*k%2 != 0 {
		return true
	}

	// An adjacent pair shares at most k−1 common neighbors.
	if k >= 1 && l > k-1 {
		return true
	}

	// A common neighbor of a non-adjacent pair is a neighbor of both, so
	// μ ≤ k whenever a non-adjacent pair exists (k < n−1 with n ≥ 2).
	if k < n-1 && n >= 2 && m > k {
		return true
	}

	// μ = 0 with edges present: components are cliques on k+1 vertices
	// (λ = k−1 already follows from the identity), so (k+1) | n.
	if m == 0 && k >= 1 && k < n-1 && n%(k+1) != 0 {
		return true
	}

	// The empty and complete graphs always exist; the spectral condition
	// below only constrains 1 ≤ k ≤ n−2.
	if k == 0 || k == n-1 {
		return false
	}

	return !multiplicitiesIntegral(n, k, l, m)
}

// multiplicitiesIntegral checks that both eigenvalue multiplicities of a
// hypothetical SRG(n,k,λ,μ) are non-negative integers.
//
// With d = (λ−μ)² + 4(k−μ) and t = 2k + (n−1)(λ−μ), the multiplicities
// are m± = ((n−1) ∓ t/√d) / 2. Two cases:
//   - t == 0 (conference parameters): m± = (n−1)/2, so n must be odd.
//   - t != 0: d must be a perfect square s², s must divide t, the
//     quotient must not exceed n−1 in magnitude, and (n−1) ∓ t/s must
//     be even.
//
// Complexity: O(log d).
func multiplicitiesIntegral(n, k, l, m int) bool {
	var (
		d = (l-m)*(l-m) + 4*(k-m)
		t = 2*k + (n-1)*(l-m)
	)

	// d < 0 cannot happen after the μ ≤ k bound; treat it as a failure
	// rather than feeding a negative into the square root.
	if d < 0 {
		return false
	}

	if t == 0 {
		// Conference case: equal multiplicities (n−1)/2.
		return (n-1)%2 == 0
	}
	if d == 0 {
		// t/√d is undefined; no integral multiplicities exist.
		return false
	}

	s := isqrt(d)
	if s*s != d {
		return false
	}
	if t%s != 0 {
		return false
	}
	q := t / s
	if q > n-1 || q < -(n-1) {
		// One multiplicity would be negative.
		return false
	}

	return (n-1-q)%2 == 0
}

// isqrt returns ⌊√x⌋ for x ≥ 0 using Newton iteration on integers.
func isqrt(x int) int {
	if x < 2 {
		return x
	}
	r := x
	next := (r + x/r) / 2
	for next < r {
		r = next
		next = (r + x/r) / 2
	}

	return r
}
