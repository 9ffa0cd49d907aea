// Package srgraph searches for strongly regular graphs — graphs on n
// labeled vertices where every vertex has degree k, every adjacent pair
// shares exactly λ common neighbors, and every non-adjacent pair shares
// exactly μ.
//
// 🚀 What is srgraph?
//
//	A deterministic constraint engine that decides whether an SRG with
//	parameters (n, k, λ, μ) exists, and produces a witness edge set when
//	it does:
//		• Fast-fail feasibility: range checks, handshake parity,
//		  the counting identity k(k−1−λ) = (n−k−1)μ,
//		  eigenvalue-multiplicity integrality
//		• Exact search: depth-first branch-and-bound over edge states
//		  with incremental constraint propagation
//		• Independent verification: every returned witness is re-checked
//		  twice, by neighbor-set intersection and by the matrix identity
//		  A² = kI + λA + μ(J − I − A)
//
// ✨ Why choose srgraph?
//
//   - Deterministic – fixed lexicographic branching, reproducible witnesses
//   - Honest outcomes – Found, Infeasible and Unknown are never conflated
//   - Pure Go – no external solver, no cgo
//   - Budgeted – wall-clock, node-count and context cancellation built in
//
// Everything lives in one subpackage:
//
//	srg/ — parameters, edge store, propagator, search engine, verifier
//
// Quick ASCII example (the 5-cycle is the SRG with parameters (5,2,0,1)):
//
//	  0───1
//	 /     \
//	4       2
//	 \     /
//	  3───
//
// Dive into examples/ for runnable scenarios: the Petersen graph, K₃,₃,
// and parameter tuples proven infeasible without a single search node.
//
//	go get github.com/katalvlaran/srgraph/srg
package srgraph
