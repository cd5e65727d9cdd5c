package options

import (
	"fmt"
	"github.com/Scusemua/go-utils/config"
	"github.com/goccy/go-json"
	"github.com/gostonefire/chainhashmap/internal/conf"
	"github.com/gostonefire/chainhashmap/internal/experiment"
	"strings"
)

// DefaultCheckSeed - Seed of the universal family used by the console checks
const DefaultCheckSeed int64 = 42

// BenchOptions - Options of the experiment program
type BenchOptions struct {
	config.LoggerOptions `yaml:",inline" json:"logger_options"`

	GridFile   string `name:"grid" description:"Path to a yaml file overriding the default experiment grid." yaml:"grid" json:"grid"`
	OutputDir  string `name:"output-dir" description:"Directory the summary csv is written to." yaml:"output_dir" json:"output_dir"`
	Trials     int    `name:"trials" description:"Trials per grid point, 0 keeps the value of the grid." yaml:"trials" json:"trials"`
	Operations int    `name:"ops" description:"Operations per trial, 0 keeps the value of the grid." yaml:"ops" json:"ops"`
	BaseSeed   int64  `name:"seed" description:"Seed of the whole experiment, 0 keeps the value of the grid." yaml:"seed" json:"seed"`
	NoTable    bool   `name:"no-table" description:"Do not print the summary table." yaml:"no_table" json:"no_table"`
}

// Validate - Fills in defaults and rejects values no run can use
func (o *BenchOptions) Validate() error {
	if o.OutputDir == "" {
		o.OutputDir = "."
	}

	if o.Trials < 0 {
		return fmt.Errorf("trials can not be negative, got %d", o.Trials)
	}
	if o.Operations < 0 {
		return fmt.Errorf("ops can not be negative, got %d", o.Operations)
	}

	return nil
}

// Grid - Returns the experiment grid, read from GridFile if set, with the non-zero overrides applied
func (o *BenchOptions) Grid() (grid experiment.Grid, err error) {
	if o.GridFile != "" {
		grid, err = experiment.LoadGrid(o.GridFile)
		if err != nil {
			return
		}
	} else {
		grid = experiment.DefaultGrid()
	}

	if o.Trials > 0 {
		grid.Trials = o.Trials
	}
	if o.Operations > 0 {
		grid.Operations = o.Operations
	}
	if o.BaseSeed != 0 {
		grid.BaseSeed = o.BaseSeed
	}

	err = grid.Validate()

	return
}

func (o *BenchOptions) String() string {
	m, err := json.Marshal(o)
	if err != nil {
		panic(err)
	}

	return string(m)
}

// PrettyString is the same as String, except that PrettyString calls json.MarshalIndent instead of json.Marshal.
func (o *BenchOptions) PrettyString(indentSize int) string {
	return prettyString(o, indentSize)
}

// CheckOptions - Options of the console check program
type CheckOptions struct {
	config.LoggerOptions `yaml:",inline" json:"logger_options"`

	Universe int64 `name:"universe" description:"Max key value of the checked tables." yaml:"universe" json:"universe"`
	Seed     int64 `name:"seed" description:"Seed of the universal hash family." yaml:"seed" json:"seed"`
}

// Validate - Fills in defaults
func (o *CheckOptions) Validate() error {
	if o.Universe == 0 {
		o.Universe = conf.DefaultUniverse
	}
	if o.Universe < 0 {
		return fmt.Errorf("universe can not be negative, got %d", o.Universe)
	}
	if o.Seed == 0 {
		o.Seed = DefaultCheckSeed
	}

	return nil
}

func (o *CheckOptions) String() string {
	m, err := json.Marshal(o)
	if err != nil {
		panic(err)
	}

	return string(m)
}

// PrettyString is the same as String, except that PrettyString calls json.MarshalIndent instead of json.Marshal.
func (o *CheckOptions) PrettyString(indentSize int) string {
	return prettyString(o, indentSize)
}

func prettyString(v any, indentSize int) string {
	m, err := json.MarshalIndent(v, "", strings.Repeat(" ", indentSize))
	if err != nil {
		panic(err)
	}

	return string(m)
}
