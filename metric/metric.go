package metric

import (
	"fmt"
	"strconv"

	"github.com/railkit/roundtour/timetable"
)

// minutesPerDay is the wrap-around added to overnight connections.
const minutesPerDay = 24 * 60

// Weight maps one record to its scalar edge weight under the mode.
//
//   - Price: the parsed decimal value of the price field.
//   - Time: minutes from departure to arrival; if the arrival's
//     minute-of-day is strictly below the departure's, one full day is
//     added first (overnight wrap). Equal clock times yield 0, so the
//     result is in [0, 1439].
//
// Records that survived timetable parsing cannot fail here; the error
// path guards against hand-built records only.
//
// Complexity: O(1).
func (m Mode) Weight(rec timetable.Record) (float64, error) {
	switch m {
	case Price:
		p, err := strconv.ParseFloat(rec.Price, 64)
		if err != nil {
			return 0, fmt.Errorf("metric: %w", err)
		}

		return p, nil

	case Time:
		d, err := travelMinutes(rec)
		if err != nil {
			return 0, err
		}

		return float64(d), nil

	default:
		return 0, fmt.Errorf("%w: %d", ErrUnknownMode, int(m))
	}
}

// Matches reports whether rec reproduces weight under the mode. Both the
// stored weight and the recomputed one originate from the same parse of
// the same source fields, so exact float equality is sound — no rounding
// tolerance is applied.
func (m Mode) Matches(rec timetable.Record, weight float64) bool {
	w, err := m.Weight(rec)
	if err != nil {
		return false
	}

	return w == weight
}

// FormatTotal renders a route total for the report header.
//
//   - Price: fixed two-decimal currency, e.g. "22.00$".
//   - Time: "H hours and M minutes" with M = total mod 60.
func (m Mode) FormatTotal(total float64) string {
	switch m {
	case Time:
		mins := int(total)

		return fmt.Sprintf("%d hours and %d minutes", mins/60, mins%60)
	default:
		return fmt.Sprintf("%.2f$", total)
	}
}

// travelMinutes computes the overnight-aware duration of a record.
func travelMinutes(rec timetable.Record) (int, error) {
	dep, err := timetable.ClockToMinutes(rec.Departure)
	if err != nil {
		return 0, err
	}
	arr, err := timetable.ClockToMinutes(rec.Arrival)
	if err != nil {
		return 0, err
	}
	if arr < dep {
		arr += minutesPerDay
	}

	return arr - dep, nil
}
