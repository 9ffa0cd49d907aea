package srg

import "time"

// Options configures a search run.
//
// Fields:
//   - TimeLimit         — soft wall-clock budget; 0 means unlimited. On
//     expiry the engine stops at the next sparse check
//     and reports OutcomeUnknown.
//   - MaxNodes          — branching-decision budget; 0 means unlimited.
//     Expiry also reports OutcomeUnknown.
//   - Parallel          — split the root of the search tree across two
//     workers (Present-subtree and Absent-subtree of the
//     first undecided pair), first result wins. The
//     witness is still valid and verified, but may
//     differ from the sequential one.
//   - AnchorFirstVertex — pin vertex 0's neighborhood to {1, …, k} before
//     searching. Sound up to relabeling (any SRG can be
//     relabeled this way) and shrinks the tree; off by
//     default so the contract stays "first witness under
//     lexicographic branching".
//   - Verbose           — log search milestones via the standard logger.
//
// Example:
//
//	opts := srg.DefaultOptions()
//	opts.TimeLimit = 30 * time.Second
//	res, err := srg.Find(srg.Params{N: 10, K: 3, Lambda: 0, Mu: 1}, opts)
type Options struct {
	TimeLimit         time.Duration
	MaxNodes          int64
	Parallel          bool
	AnchorFirstVertex bool
	Verbose           bool
}

// DefaultOptions returns the canonical configuration: unlimited budgets,
// sequential search, no symmetry anchor, quiet.
func DefaultOptions() Options {
	return Options{}
}

// validateOptions checks internal consistency of opts without touching the
// parameters. Sentinel-only policy; no panics on user input.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	// Negative durations are undefined as budgets.
	if opts.TimeLimit < 0 {
		return ErrBadOptions
	}
	// A negative node budget would make the very first node over budget.
	if opts.MaxNodes < 0 {
		return ErrBadOptions
	}

	return nil
}
