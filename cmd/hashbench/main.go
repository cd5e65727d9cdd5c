package main

import (
	"context"
	"fmt"
	"github.com/Scusemua/go-utils/config"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/gostonefire/chainhashmap/internal/experiment"
	"github.com/gostonefire/chainhashmap/internal/options"
	"github.com/muesli/termenv"
	"github.com/pkg/errors"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
)

var (
	benchOptions = options.BenchOptions{}
	globalLogger = config.GetLogger("")
)

func init() {
	lipgloss.SetColorProfile(termenv.ANSI256)
}

// ValidateOptions ensures that the options/configuration is valid.
func ValidateOptions() {
	flags, err := config.ValidateOptions(&benchOptions)
	if errors.Is(err, config.ErrPrintUsage) {
		flags.PrintDefaults()
		os.Exit(0)
	} else if err != nil {
		log.Fatal(err)
	}

	if err = benchOptions.Validate(); err != nil {
		log.Fatal(err)
	}
}

// writeSummary - Writes the summary csv to path, creating its directory if needed
func writeSummary(path string, rows []experiment.SummaryRow) (err error) {
	if err = os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, "failed to create output directory for %s", path)
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", path)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = errors.Wrapf(closeErr, "failed to close %s", path)
		}
	}()

	return experiment.WriteCSV(f, rows)
}

func main() {
	ValidateOptions()

	globalLogger.Info("Starting hashbench with the following options:\n%s\n", benchOptions.PrettyString(2))

	grid, err := benchOptions.Grid()
	if err != nil {
		log.Fatal(err)
	}

	runner, err := experiment.NewRunner(grid)
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	records, runErr := runner.Run(ctx)
	if runErr != nil {
		globalLogger.Error("Experiment did not complete: %v", runErr)
		if len(records) == 0 {
			os.Exit(1)
		}
		globalLogger.Warn("Summarizing the %d trials that did complete.", len(records))
	}

	rows := experiment.Summarize(records, grid.Operations)

	runID := uuid.NewString()
	path := filepath.Join(benchOptions.OutputDir, fmt.Sprintf("results_summary-%s.csv", runID))
	if err = writeSummary(path, rows); err != nil {
		globalLogger.Error("Failed to write summary: %v", err)
		os.Exit(1)
	}
	globalLogger.Info("Summary of run %s written to %s", runID, path)

	if !benchOptions.NoTable {
		fmt.Printf("\n====== Summary (runtime + error rate) ======\n\n%s\n", experiment.RenderTable(rows))
	}

	if runErr != nil {
		os.Exit(1)
	}
}
