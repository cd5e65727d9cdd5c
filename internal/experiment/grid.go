package experiment

import (
	"fmt"
	"github.com/gostonefire/chainhashmap"
	"github.com/gostonefire/chainhashmap/internal/conf"
	"github.com/gostonefire/chainhashmap/internal/workload"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
	"os"
)

// Family - Names a hash algorithm family used in the experiments
type Family string

const (
	// Deterministic - The division algorithm, key mod m
	Deterministic Family = "deterministic"
	// Random - The universal algorithm with coefficients drawn per trial
	Random Family = "random"
)

// ParseFamily - Returns the Family named by s
func ParseFamily(s string) (family Family, err error) {
	switch Family(s) {
	case Deterministic, Random:
		family = Family(s)
	default:
		err = fmt.Errorf("unknown hash family %q, expected %q or %q", s, Deterministic, Random)
	}

	return
}

// Grid - The parameter grid of an experiment. Every combination of KeyModes, TableSizes, Optimize and Families is run
// Trials times with Operations operations each.
type Grid struct {
	KeyModes   []workload.KeyMode `yaml:"key_modes" json:"key_modes"`
	TableSizes []int64            `yaml:"table_sizes" json:"table_sizes"`
	Optimize   []bool             `yaml:"optimize" json:"optimize"`
	Families   []Family           `yaml:"hash_families" json:"hash_families"`
	Trials     int                `yaml:"trials" json:"trials"`
	Operations int                `yaml:"operations" json:"operations"`
	Universe   int64              `yaml:"universe" json:"universe"`
	BaseSeed   int64              `yaml:"base_seed" json:"base_seed"`
}

// Combination - One point of the grid
type Combination struct {
	KeyMode   workload.KeyMode
	TableSize int64
	Mode      chainhashmap.Mode
	Family    Family
}

// DefaultGrid - Returns the grid of the reference experiment
func DefaultGrid() Grid {
	return Grid{
		KeyModes:   []workload.KeyMode{workload.EmployeeID, workload.Salary},
		TableSizes: []int64{1, 10, 100, 1000},
		Optimize:   []bool{true, false},
		Families:   []Family{Deterministic, Random},
		Trials:     conf.DefaultTrials,
		Operations: conf.DefaultOperations,
		Universe:   conf.DefaultUniverse,
		BaseSeed:   conf.DefaultBaseSeed,
	}
}

// LoadGrid - Reads a grid from a yaml file. Fields left out of the file keep the values of DefaultGrid.
func LoadGrid(path string) (grid Grid, err error) {
	grid = DefaultGrid()

	data, err := os.ReadFile(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to read grid file %s", path)
		return
	}

	if err = yaml.Unmarshal(data, &grid); err != nil {
		err = errors.Wrapf(err, "failed to parse grid file %s", path)
		return
	}

	err = grid.Validate()

	return
}

// Validate - Checks that every dimension of the grid is usable
func (G Grid) Validate() error {
	if len(G.KeyModes) == 0 || len(G.TableSizes) == 0 || len(G.Optimize) == 0 || len(G.Families) == 0 {
		return errors.New("every grid dimension needs at least one value")
	}

	for _, keyMode := range G.KeyModes {
		if _, err := workload.ParseKeyMode(string(keyMode)); err != nil {
			return err
		}
	}

	for _, family := range G.Families {
		if _, err := ParseFamily(string(family)); err != nil {
			return err
		}
	}

	for _, m := range G.TableSizes {
		if m < 1 {
			return chainhashmap.InvalidTableSize{}
		}
	}

	if G.Trials < 1 {
		return fmt.Errorf("trials must be at least 1, got %d", G.Trials)
	}
	if G.Operations < 1 {
		return fmt.Errorf("operations must be at least 1, got %d", G.Operations)
	}
	if G.Universe < 1 {
		return fmt.Errorf("universe must be at least 1, got %d", G.Universe)
	}

	return nil
}

// Combinations - Returns the points of the grid, key mode varying slowest and family fastest
func (G Grid) Combinations() (combinations []Combination) {
	for _, keyMode := range G.KeyModes {
		for _, m := range G.TableSizes {
			for _, optimize := range G.Optimize {
				for _, family := range G.Families {
					combinations = append(combinations, Combination{
						KeyMode:   keyMode,
						TableSize: m,
						Mode:      chainhashmap.ModeFromOptimize(optimize),
						Family:    family,
					})
				}
			}
		}
	}

	return
}

// TotalTrials - Returns the number of trials a full run of the grid performs
func (G Grid) TotalTrials() int {
	return len(G.KeyModes) * len(G.TableSizes) * len(G.Optimize) * len(G.Families) * G.Trials
}
