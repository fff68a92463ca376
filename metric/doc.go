// Package metric defines the selectable cost metrics for circuit planning.
//
// A Mode maps one timetable record to a scalar edge weight, decides
// whether a record matches a previously computed weight, and formats a
// route total for display:
//
//   - Price — weight is the ticket price (decimal field, as-is).
//   - Time  — weight is whole minutes from departure to arrival; an
//     arrival earlier in the clock day than the departure is read as an
//     overnight connection and wraps by 24h. A same-instant pair is 0.
//
// Modes are a closed enum; selecting an unknown mode name is a
// configuration error (ErrUnknownMode), raised before any graph work.
package metric
