package srg

import "errors"

var (
	// ErrInvalidParameters indicates the caller-supplied (n, k, λ, μ)
	// violates a basic range precondition. Never retried, never searched.
	ErrInvalidParameters = errors.New("srg: invalid parameters")

	// ErrBadOptions indicates an inconsistent Options value, such as a
	// negative time limit or node budget.
	ErrBadOptions = errors.New("srg: invalid options")

	// ErrConflict is the internal, recoverable contradiction signal: a
	// propagation rule tried to assign a pair the opposite of its definite
	// state. It triggers backtracking and never crosses the package
	// boundary.
	ErrConflict = errors.New("srg: conflicting edge assignment")

	// ErrInvariantViolation indicates the independent verifier rejected a
	// witness the search engine claimed. It is a defect signal — a bug in
	// propagation or bookkeeping — and must not be read as infeasibility.
	ErrInvariantViolation = errors.New("srg: engine invariant violation")

	// ErrMalformedWitness indicates an edge list handed to Verify is not a
	// simple graph on [0, n): an endpoint out of range, a loop, or a
	// duplicate pair.
	ErrMalformedWitness = errors.New("srg: malformed witness edge list")
)
