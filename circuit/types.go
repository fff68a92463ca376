package circuit

import "errors"

var (
	// ErrInvalidDimensions indicates a requested matrix size that is not positive.
	ErrInvalidDimensions = errors.New("circuit: matrix size must be > 0")

	// ErrIndexOutOfBounds indicates a row or column index outside [0, n).
	ErrIndexOutOfBounds = errors.New("circuit: index out of bounds")

	// ErrNoRecords indicates that Build received an empty record set.
	ErrNoRecords = errors.New("circuit: no records to build from")

	// ErrEmptyGraph indicates a nil or station-less graph passed to Solve.
	ErrEmptyGraph = errors.New("circuit: empty graph")

	// ErrStartOutOfRange indicates a start index outside the station set.
	ErrStartOutOfRange = errors.New("circuit: start vertex out of range")

	// ErrNoCandidate indicates the feasibility filter rejected every
	// remaining vertex at some step. The heuristic has no backtracking;
	// this is terminal for the solve.
	ErrNoCandidate = errors.New("circuit: no feasible candidate at step")
)

// Options configures a single solve.
type Options struct {
	// Start is the index of the vertex the circuit begins and ends at.
	Start int
}

// DefaultOptions returns the canonical solver configuration (start at 0).
func DefaultOptions() Options {
	return Options{Start: 0}
}

// Result holds the outcome of one solve.
type Result struct {
	// Order is the visiting sequence: a permutation of 0..n-1 with
	// Order[0] == Options.Start. The return hop to the start is implied,
	// not repeated.
	Order []int

	// Total is the circuit weight: the sum of the traversal edges plus
	// the wrap edge, counting forced +Inf hops as zero.
	Total float64
}
