package circuit

import (
	"fmt"
	"math"
)

// Solve walks the graph from opts.Start with the constrained
// nearest-neighbor heuristic and returns the visiting sequence plus the
// wrap-inclusive circuit total.
//
// Contract:
//   - g must be non-nil with a built matrix (ErrEmptyGraph),
//   - 0 ≤ opts.Start < n (ErrStartOutOfRange),
//   - Result.Order is a permutation of 0..n-1 starting at opts.Start,
//   - a forced hop over a missing edge (and a missing wrap edge)
//     contributes zero to Result.Total,
//   - deterministic: minimum edge weight wins, ties go to the lowest index.
//
// Errors: ErrNoCandidate when the feasibility filter rejects every
// remaining vertex at some step; there is no backtracking or fallback.
//
// Complexity: O(n³) worst case (n steps × n candidates × O(n) filter).
func Solve(g *Graph, opts Options) (Result, error) {
	if g == nil || g.Weights == nil || len(g.Stations) == 0 {
		return Result{}, ErrEmptyGraph
	}
	n := g.Weights.N()
	if opts.Start < 0 || opts.Start >= n {
		return Result{}, ErrStartOutOfRange
	}

	var (
		m       = g.Weights
		visited = make([]bool, n)
		order   = make([]int, 1, n)
		current = opts.Start
		total   float64
	)
	visited[current] = true
	order[0] = current

	for len(order) < n {
		// Select the cheapest feasible unvisited vertex. Candidates are
		// not restricted to finite edges: when the filter leaves only
		// unreachable vertices, the forced pick carries weight +Inf.
		var (
			best  = -1
			bestW float64
		)
		for v := 0; v < n; v++ {
			if visited[v] || !feasible(m, visited, len(order), v) {
				continue
			}
			w := m.at(current, v)
			if best == -1 || w < bestW {
				best, bestW = v, w
			}
		}
		if best == -1 {
			return Result{}, fmt.Errorf("%w %d of %d", ErrNoCandidate, len(order), n)
		}

		visited[best] = true
		order = append(order, best)
		if !math.IsInf(bestW, 1) {
			total += bestW
		}
		current = best
	}

	// Close the circuit: the wrap edge joins the total under the same
	// zero-for-Inf rule as forced hops.
	if w := m.at(current, opts.Start); !math.IsInf(w, 1) {
		total += w
	}

	return Result{Order: order, Total: total}, nil
}

// feasible reports whether vertex v may be visited next. v is rejected
// when one of its unvisited, directly reachable neighbors is about to be
// stranded by the move.
func feasible(m *Matrix, visited []bool, visitedCount, v int) bool {
	n := m.N()
	for w := 0; w < n; w++ {
		if visited[w] || math.IsInf(m.at(v, w), 1) {
			continue
		}
		if aboutToStrand(m, visited, visitedCount, w) {
			return false
		}
	}

	return true
}

// aboutToStrand reports whether vertex w is down to its last outgoing
// connection. The guard is lifted during the final two steps of the walk
// (visitedCount ≥ n-2), where a single remaining outlet is the expected
// shape of the tour, not a dead end.
func aboutToStrand(m *Matrix, visited []bool, visitedCount, w int) bool {
	n := m.N()
	if visitedCount >= n-2 {
		return false
	}
	free := 0
	for j := 0; j < n; j++ {
		if !visited[j] && !math.IsInf(m.at(w, j), 1) {
			free++
			if free > 1 {
				return false
			}
		}
	}

	return free <= 1
}
