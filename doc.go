// Package roundtour plans an approximate minimum-cost round trip over a
// transit timetable — read a schedule file, pick a cost metric, and get
// back the concrete connections of a circuit through every station.
//
// 🚂 What is roundtour?
//
//	A small, deterministic toolkit that brings together:
//		• timetable/ — strict loading of delimited schedule records
//		• metric/    — selectable edge costs: ticket price, or travel time
//		               with overnight wrap-around
//		• circuit/   — dense minimum-weight matrix + a constrained
//		               nearest-neighbor circuit heuristic
//		• itinerary/ — mapping the abstract circuit back onto the real
//		               schedule records, in visiting order
//
// ✨ Why choose roundtour?
//
//   - Deterministic – sorted station indexing, lowest-index tie-breaks
//   - Honest about limits – the heuristic is not exact TSP and says so
//   - Strict errors – sentinel errors, no panics on user input
//
// The cmd/roundtour binary wires the pipeline end to end: it loads one
// timetable and prints the "best" circuit twice, once by price and once
// by travel time.
//
//	go get github.com/railkit/roundtour
package roundtour
