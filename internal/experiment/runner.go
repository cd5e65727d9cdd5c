package experiment

import (
	"context"
	"github.com/Scusemua/go-utils/config"
	"github.com/Scusemua/go-utils/logger"
	"github.com/gostonefire/chainhashmap/internal/conf"
	"github.com/pkg/errors"
)

// Runner - Runs every trial of a Grid in a fixed order
type Runner struct {
	grid Grid

	// progressInterval is the number of trials between progress log lines
	progressInterval int

	log logger.Logger
}

// NewRunner - Returns a pointer to a new Runner for grid, the grid is validated here
func NewRunner(grid Grid) (*Runner, error) {
	if err := grid.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid experiment grid")
	}

	runner := &Runner{
		grid:             grid,
		progressInterval: conf.ProgressInterval,
	}
	config.InitLogger(&runner.log, runner)

	return runner, nil
}

// Grid - Returns the grid the runner was built with
func (R *Runner) Grid() Grid {
	return R.grid
}

// Run - Runs all trials and returns their records in grid order. The context is checked between trials, when it is
// done the records collected so far are returned together with the context's error.
func (R *Runner) Run(ctx context.Context) (records []TrialRecord, err error) {
	total := R.grid.TotalTrials()
	records = make([]TrialRecord, 0, total)

	R.log.Debug("Running %d trials of %d operations over %d combinations.",
		total, R.grid.Operations, len(R.grid.Combinations()))

	done := 0
	for _, c := range R.grid.Combinations() {
		for trial := 0; trial < R.grid.Trials; trial++ {
			if err = ctx.Err(); err != nil {
				R.log.Warn("Experiment interrupted after %d of %d trials: %v", done, total, err)
				return
			}

			seed := TrialSeed(R.grid.BaseSeed, c, trial)

			var record TrialRecord
			record, err = RunTrial(R.grid.Universe, R.grid.Operations, c, trial, seed)
			if err != nil {
				err = errors.Wrapf(err, "trial %d of %s/m=%d/%s/%s failed",
					trial, c.KeyMode, c.TableSize, c.Mode, c.Family)
				return
			}
			records = append(records, record)

			done++
			if done%R.progressInterval == 0 {
				R.log.Info("%d of %d Trials Completed", done, total)
			}
		}
	}

	R.log.Debug("All %d trials completed.", total)

	return
}
