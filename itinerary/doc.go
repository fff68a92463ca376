// Package itinerary maps an abstract visiting sequence back onto the
// concrete timetable records it was computed from.
//
// The solver's output is a permutation of station indices; a rider needs
// the actual connections. Materialize walks consecutive sequence pairs
// (wrapping last→first), drops the wrap leg from the printed itinerary
// (its weight stays in the total), and reconciles every remaining leg
// with the first not-yet-consumed input record whose origin, destination
// and recomputed weight match under the active metric. A leg no record
// can explain is a hard error — the planner never silently skips a hop.
package itinerary
