package circuit

import (
	"fmt"
	"sort"

	"github.com/railkit/roundtour/metric"
	"github.com/railkit/roundtour/timetable"
)

// Graph is the station index plus the dense weight matrix built from one
// record set under one metric. It is owned by the caller for the duration
// of one search; rebuild it before solving under a different mode.
type Graph struct {
	// Stations is the sorted, deduplicated union of all origins and
	// destinations. A station's index here is its matrix index.
	Stations []string

	// Weights is the n×n minimum-weight adjacency matrix; +Inf marks a
	// missing direct edge.
	Weights *Matrix
}

// Index returns the matrix index of a station name.
func (g *Graph) Index(station string) (int, bool) {
	// Stations is sorted, so binary search keeps this O(log n).
	i := sort.SearchStrings(g.Stations, station)
	if i < len(g.Stations) && g.Stations[i] == station {
		return i, true
	}

	return 0, false
}

// Build derives the station index from records and fills a fresh weight
// matrix under mode.
//
// Contract:
//   - records must be non-empty (ErrNoRecords),
//   - every cell holds the minimum weight among records sharing that
//     (origin, destination) pair, or +Inf when no record connects it,
//   - deterministic: the same records and mode produce a bit-identical
//     matrix on every call.
//
// A record whose endpoints are missing from the station set cannot occur:
// the set is derived from the records themselves.
//
// Complexity: O(r·log r + n²) for r records and n stations.
func Build(records []timetable.Record, mode metric.Mode) (*Graph, error) {
	if len(records) == 0 {
		return nil, ErrNoRecords
	}

	// Stage 1: collect and sort the station universe.
	seen := make(map[string]struct{}, len(records)*2)
	for _, rec := range records {
		seen[rec.Origin] = struct{}{}
		seen[rec.Destination] = struct{}{}
	}
	stations := make([]string, 0, len(seen))
	for name := range seen {
		stations = append(stations, name)
	}
	sort.Strings(stations)

	index := make(map[string]int, len(stations))
	for i, name := range stations {
		index[name] = i
	}

	// Stage 2: fill the matrix with per-pair minima.
	m, err := NewMatrix(len(stations))
	if err != nil {
		return nil, err
	}
	var (
		w    float64
		i, j int
	)
	for _, rec := range records {
		w, err = mode.Weight(rec)
		if err != nil {
			return nil, fmt.Errorf("circuit: weigh %s→%s: %w", rec.Origin, rec.Destination, err)
		}
		i, j = index[rec.Origin], index[rec.Destination]
		// Strict minimum: the first record to reach a weight keeps the cell.
		if w < m.at(i, j) {
			m.set(i, j, w)
		}
	}

	return &Graph{Stations: stations, Weights: m}, nil
}
