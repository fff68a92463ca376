package circuit_test

import (
	"math"
	"testing"

	"github.com/railkit/roundtour/circuit"
	"github.com/railkit/roundtour/metric"
	"github.com/railkit/roundtour/timetable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rec(origin, dest, price, dep, arr string) timetable.Record {
	return timetable.Record{
		ID: "t", Origin: origin, Destination: dest,
		Price: price, Departure: dep, Arrival: arr,
	}
}

// TestBuild_StationSet derives the sorted, deduplicated union of all
// origins and destinations.
func TestBuild_StationSet(t *testing.T) {
	records := []timetable.Record{
		rec("Omsk", "Brest", "10", "08:00", "09:00"),
		rec("Brest", "Adler", "5", "09:00", "10:00"),
		rec("Adler", "Omsk", "7", "10:00", "11:00"),
		rec("Omsk", "Adler", "9", "11:00", "12:00"), // no new stations
	}

	g, err := circuit.Build(records, metric.Price)
	require.NoError(t, err)
	assert.Equal(t, []string{"Adler", "Brest", "Omsk"}, g.Stations)

	i, ok := g.Index("Brest")
	require.True(t, ok)
	assert.Equal(t, 1, i)
	_, ok = g.Index("Minsk")
	assert.False(t, ok)
}

// TestBuild_MinimumPerPair keeps the cheapest record per (origin,
// destination) cell and +Inf where no record connects the pair.
func TestBuild_MinimumPerPair(t *testing.T) {
	records := []timetable.Record{
		rec("A", "B", "10", "08:00", "09:00"),
		rec("A", "B", "4", "10:00", "11:00"), // cheaper duplicate pair
		rec("B", "A", "6", "12:00", "13:00"),
	}

	g, err := circuit.Build(records, metric.Price)
	require.NoError(t, err)

	w, err := g.Weights.At(0, 1) // A→B
	require.NoError(t, err)
	assert.Equal(t, 4.0, w, "cell must hold the pair minimum")

	w, err = g.Weights.At(1, 0) // B→A
	require.NoError(t, err)
	assert.Equal(t, 6.0, w)

	w, err = g.Weights.At(0, 0) // no self edge
	require.NoError(t, err)
	assert.True(t, math.IsInf(w, 1), "diagonal stays +Inf")
}

// TestBuild_TimeMode weighs cells by overnight-aware duration.
func TestBuild_TimeMode(t *testing.T) {
	records := []timetable.Record{
		rec("A", "B", "99", "23:50", "00:10"), // 20 minutes across midnight
		rec("A", "B", "1", "08:00", "09:30"),  // 90 minutes, pricier but slower
	}

	g, err := circuit.Build(records, metric.Time)
	require.NoError(t, err)

	w, err := g.Weights.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 20.0, w, "time mode must ignore price when minimizing")
}

// TestBuild_Idempotent rebuilds bit-identical matrices from the same
// input and mode, and fresh ones: mutating the first build must not leak
// into the second.
func TestBuild_Idempotent(t *testing.T) {
	records := []timetable.Record{
		rec("A", "B", "10", "08:00", "09:00"),
		rec("B", "C", "5", "09:00", "10:00"),
		rec("C", "A", "7", "10:00", "11:00"),
	}

	g1, err := circuit.Build(records, metric.Price)
	require.NoError(t, err)
	g2, err := circuit.Build(records, metric.Price)
	require.NoError(t, err)

	assert.True(t, g1.Weights.Equal(g2.Weights), "rebuild must be bit-identical")

	require.NoError(t, g1.Weights.Set(0, 1, 0))
	g3, err := circuit.Build(records, metric.Price)
	require.NoError(t, err)
	assert.True(t, g2.Weights.Equal(g3.Weights), "each build owns a fresh matrix")
}

// TestBuild_NoRecords rejects an empty record set.
func TestBuild_NoRecords(t *testing.T) {
	_, err := circuit.Build(nil, metric.Price)
	assert.ErrorIs(t, err, circuit.ErrNoRecords)
}
