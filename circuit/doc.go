// Package circuit builds a dense station-to-station weight matrix from
// timetable records and finds an approximate minimum-cost circuit through
// every station with a constrained nearest-neighbor heuristic.
//
// Graph construction:
//  1. The station set is the sorted, deduplicated union of every origin
//     and destination in the records; a station's index is its position
//     in that ordering, so indexing is deterministic for identical input.
//  2. Every matrix cell starts at +Inf ("no direct edge").
//  3. Each record writes its weight (under the active metric.Mode) into
//     its (origin, destination) cell only when strictly smaller than the
//     current value — the cell ends up holding the cheapest connection,
//     first writer winning ties.
//
// The matrix is directed: it is not symmetric, has no zero diagonal, and
// is not guaranteed connected. Build returns a fresh, caller-owned matrix
// on every call; nothing is shared between runs with different modes.
//
// Solver (nearest neighbor with a look-ahead feasibility filter):
//  1. Mark the start vertex visited.
//  2. Among the unvisited vertices that pass the feasibility filter, move
//     to the one with minimum edge weight from the current vertex (ties
//     broken by lowest index). A vertex with no direct edge may still be
//     picked when nothing better survives the filter; such a forced hop
//     contributes zero to the running total.
//  3. Stop when all vertices are visited; the wrap edge back to the start
//     closes the circuit and joins the total under the same zero-for-Inf
//     rule.
//
// Feasibility filter: a candidate v is rejected when visiting it would
// leave one of v's own unvisited, directly reachable neighbors with at
// most one remaining outgoing connection. The guard is lifted during the
// final two steps of the walk, where a single remaining outlet is the
// expected shape. The filter reduces — it does not eliminate — the
// classic nearest-neighbor dead end; when it rejects every remaining
// vertex the solve fails with ErrNoCandidate, since the heuristic has no
// backtracking.
//
// Complexity: O(n²) per step, O(n) steps ⇒ O(n³) worst case.
package circuit
