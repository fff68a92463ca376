package timetable

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// fieldCount is the fixed number of fields per schedule line.
const fieldCount = 6

var (
	// ErrFieldCount indicates a line with the wrong number of fields.
	ErrFieldCount = errors.New("timetable: record must have exactly 6 fields")

	// ErrBadPrice indicates a price field that is not a non-negative decimal.
	ErrBadPrice = errors.New("timetable: malformed price")

	// ErrBadClock indicates a departure/arrival field that is not valid HH:MM.
	ErrBadClock = errors.New("timetable: malformed clock time")
)

// Record is one schedule entry: a direct connection from Origin to
// Destination at a given Price, leaving at Departure and arriving at
// Arrival (both "HH:MM" on a 24h clock). ID is opaque and never used by
// the planner; it is carried only so a record can be printed back intact.
// Records are immutable once loaded.
type Record struct {
	ID          string
	Origin      string
	Destination string
	Price       string
	Departure   string
	Arrival     string
}

// Fields returns the record's six fields in file order.
func (r Record) Fields() []string {
	return []string{r.ID, r.Origin, r.Destination, r.Price, r.Departure, r.Arrival}
}

// Join renders the record as one timetable line using delim.
func (r Record) Join(delim rune) string {
	return strings.Join(r.Fields(), string(delim))
}

// Parse reads one record per line from r, splitting on delim.
//
// Contract:
//   - exactly 6 fields per line (ErrFieldCount otherwise),
//   - price parses as a non-negative decimal (ErrBadPrice),
//   - departure/arrival parse as HH:MM (ErrBadClock),
//   - empty lines are skipped (trailing newline tolerance).
//
// Errors are wrapped with the 1-based line number of the offending line.
//
// Complexity: O(total input size).
func Parse(r io.Reader, delim rune) ([]Record, error) {
	var (
		records []Record
		scanner = bufio.NewScanner(r)
		lineNo  int
	)
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" {
			continue
		}

		rec, err := parseLine(line, delim)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("timetable: read: %w", err)
	}

	return records, nil
}

// Load reads the whole file at path into memory, then parses it.
// This is the program's single blocking I/O operation.
func Load(path string, delim rune) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("timetable: %w", err)
	}

	return Parse(strings.NewReader(string(data)), delim)
}

// parseLine splits and validates a single timetable line.
func parseLine(line string, delim rune) (Record, error) {
	fields := strings.Split(line, string(delim))
	if len(fields) != fieldCount {
		return Record{}, fmt.Errorf("%w: got %d", ErrFieldCount, len(fields))
	}

	rec := Record{
		ID:          fields[0],
		Origin:      fields[1],
		Destination: fields[2],
		Price:       fields[3],
		Departure:   fields[4],
		Arrival:     fields[5],
	}

	// Validate price: non-negative decimal.
	if p, err := strconv.ParseFloat(rec.Price, 64); err != nil || p < 0 {
		return Record{}, fmt.Errorf("%w: %q", ErrBadPrice, rec.Price)
	}
	// Validate both clock fields.
	if _, err := ClockToMinutes(rec.Departure); err != nil {
		return Record{}, err
	}
	if _, err := ClockToMinutes(rec.Arrival); err != nil {
		return Record{}, err
	}

	return rec, nil
}

// ClockToMinutes converts an "HH:MM" clock time to minutes since
// midnight. Hour must be 0..23 and minute 0..59; anything else returns
// ErrBadClock. The result is in [0, 1439].
func ClockToMinutes(clock string) (int, error) {
	h, m, ok := strings.Cut(clock, ":")
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrBadClock, clock)
	}
	hour, err := strconv.Atoi(h)
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("%w: %q", ErrBadClock, clock)
	}
	minute, err := strconv.Atoi(m)
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: %q", ErrBadClock, clock)
	}

	return hour*60 + minute, nil
}
