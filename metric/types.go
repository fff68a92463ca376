package metric

import (
	"errors"
	"fmt"
)

// ErrUnknownMode indicates a mode name other than "price" or "time".
var ErrUnknownMode = errors.New("metric: unknown search mode")

// Mode selects how a timetable record is priced into an edge weight.
//
//   - Price — monetary cost of the connection.
//   - Time  — travel duration in whole minutes, overnight-aware.
type Mode int

const (
	// Price weighs edges by ticket price.
	Price Mode = iota

	// Time weighs edges by travel duration in minutes.
	Time
)

// Modes lists all supported modes in the order the planner runs them.
func Modes() []Mode {
	return []Mode{Price, Time}
}

// ParseMode resolves a mode by name. Unrecognized names return
// ErrUnknownMode; callers must treat that as fatal configuration.
func ParseMode(name string) (Mode, error) {
	switch name {
	case "price":
		return Price, nil
	case "time":
		return Time, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, name)
	}
}

// String returns the canonical mode name used in report headers.
func (m Mode) String() string {
	switch m {
	case Price:
		return "price"
	case Time:
		return "time"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}
