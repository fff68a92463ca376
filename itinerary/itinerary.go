package itinerary

import (
	"errors"
	"fmt"
	"strings"

	"github.com/railkit/roundtour/circuit"
	"github.com/railkit/roundtour/metric"
	"github.com/railkit/roundtour/timetable"
)

var (
	// ErrBadSequence indicates a visiting sequence whose length does not
	// cover the graph's station set.
	ErrBadSequence = errors.New("itinerary: sequence does not cover station set")

	// ErrUnmatchedLeg indicates a route leg no input record reproduces.
	ErrUnmatchedLeg = errors.New("itinerary: no record matches leg")
)

// Leg is one hop of the circuit: origin and destination station names
// plus the matrix weight of the edge between them.
type Leg struct {
	Origin      string
	Destination string
	Weight      float64
}

// Itinerary is the materialized circuit: the legs in visiting order and
// the concrete records matched to them, one per leg.
type Itinerary struct {
	Mode    metric.Mode
	Total   float64
	Legs    []Leg
	Records []timetable.Record
}

// Materialize reconciles a solver result with the records it was built
// from.
//
// Contract:
//   - res.Order must be a full permutation over g.Stations (ErrBadSequence),
//   - legs are consecutive Order pairs wrapping last→first; the wrap leg
//     is dropped from the itinerary though its weight is part of res.Total,
//   - each leg consumes the first unconsumed record, in input order,
//     matching (origin, destination, weight) under mode; identical
//     signatures therefore map to distinct records (mark-and-skip),
//   - a leg with no matching record fails with ErrUnmatchedLeg.
//
// Complexity: O(legs × records).
func Materialize(g *circuit.Graph, res circuit.Result, records []timetable.Record, mode metric.Mode) (*Itinerary, error) {
	if g == nil || len(res.Order) == 0 || len(res.Order) != len(g.Stations) {
		return nil, ErrBadSequence
	}

	n := len(res.Order)
	legs := make([]Leg, 0, n-1)
	for i := 0; i < n-1; i++ { // wrap leg (i == n-1) intentionally excluded
		from, to := res.Order[i], res.Order[(i+1)%n]
		w, err := g.Weights.At(from, to)
		if err != nil {
			return nil, fmt.Errorf("itinerary: %w", err)
		}
		legs = append(legs, Leg{
			Origin:      g.Stations[from],
			Destination: g.Stations[to],
			Weight:      w,
		})
	}

	matched := make([]timetable.Record, 0, len(legs))
	consumed := make([]bool, len(records))
	for _, leg := range legs {
		found := -1
		for i, rec := range records {
			if consumed[i] || rec.Origin != leg.Origin || rec.Destination != leg.Destination {
				continue
			}
			if mode.Matches(rec, leg.Weight) {
				found = i

				break
			}
		}
		if found == -1 {
			return nil, fmt.Errorf("%w: %s→%s", ErrUnmatchedLeg, leg.Origin, leg.Destination)
		}
		consumed[found] = true
		matched = append(matched, records[found])
	}

	return &Itinerary{Mode: mode, Total: res.Total, Legs: legs, Records: matched}, nil
}

// Header renders the report's first line.
func (it *Itinerary) Header() string {
	return fmt.Sprintf("The %q route by %s for %s through each station:",
		"best", it.Mode, it.Mode.FormatTotal(it.Total))
}

// Render returns the full report: the header followed by one timetable
// line per matched record, in visiting order, joined by delim.
func (it *Itinerary) Render(delim rune) string {
	var b strings.Builder
	b.WriteString(it.Header())
	b.WriteByte('\n')
	for _, rec := range it.Records {
		b.WriteString(rec.Join(delim))
		b.WriteByte('\n')
	}

	return b.String()
}
