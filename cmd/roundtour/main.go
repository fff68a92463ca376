// Package main is the entry point for the roundtour planner.
//
// It loads one timetable and prints the "best" circuit through every
// station twice — once by ticket price, once by travel time — each run
// rebuilding the weight matrix from scratch so nothing leaks between
// metrics. Reports go to stdout; diagnostics go to stderr.
package main

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/railkit/roundtour/circuit"
	"github.com/railkit/roundtour/config"
	"github.com/railkit/roundtour/itinerary"
	"github.com/railkit/roundtour/metric"
	"github.com/railkit/roundtour/timetable"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, "roundtour: logger:", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("configuration", zap.Error(err))
	}

	records, err := timetable.Load(cfg.TimetablePath, cfg.Delimiter)
	if err != nil {
		logger.Fatal("load timetable",
			zap.String("path", cfg.TimetablePath), zap.Error(err))
	}
	logger.Info("timetable loaded",
		zap.String("path", cfg.TimetablePath), zap.Int("records", len(records)))

	// Both metrics run unconditionally, price first. Any failure aborts
	// the whole program: there is no partial or recovered output.
	for _, mode := range metric.Modes() {
		if err = plan(os.Stdout, records, mode, cfg); err != nil {
			logger.Fatal("plan circuit", zap.Stringer("mode", mode), zap.Error(err))
		}
	}
}

// plan executes one full build→solve→materialize pass and writes the
// report to w.
func plan(w io.Writer, records []timetable.Record, mode metric.Mode, cfg *config.Config) error {
	g, err := circuit.Build(records, mode)
	if err != nil {
		return err
	}

	opts := circuit.DefaultOptions()
	if cfg.Start != "" {
		idx, ok := g.Index(cfg.Start)
		if !ok {
			return fmt.Errorf("unknown start station %q", cfg.Start)
		}
		opts.Start = idx
	}

	res, err := circuit.Solve(g, opts)
	if err != nil {
		return err
	}

	it, err := itinerary.Materialize(g, res, records, mode)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, it.Render(cfg.Delimiter))

	return err
}
