package main

import (
	"github.com/Scusemua/go-utils/config"
	"github.com/charmbracelet/lipgloss"
	"github.com/gostonefire/chainhashmap/internal/harness"
	"github.com/gostonefire/chainhashmap/internal/options"
	"github.com/muesli/termenv"
	"github.com/pkg/errors"
	"log"
	"os"
)

var (
	checkOptions = options.CheckOptions{}
	globalLogger = config.GetLogger("")
)

func init() {
	lipgloss.SetColorProfile(termenv.ANSI256)
}

// ValidateOptions ensures that the options/configuration is valid.
func ValidateOptions() {
	flags, err := config.ValidateOptions(&checkOptions)
	if errors.Is(err, config.ErrPrintUsage) {
		flags.PrintDefaults()
		os.Exit(0)
	} else if err != nil {
		log.Fatal(err)
	}

	if err = checkOptions.Validate(); err != nil {
		log.Fatal(err)
	}
}

func main() {
	ValidateOptions()

	globalLogger.Debug("Running checks with the following options:\n%s\n", checkOptions.PrettyString(2))

	result := harness.DefaultSuite(checkOptions.Universe, checkOptions.Seed).Run(os.Stdout)
	if !result.OK() {
		for _, failure := range result.Failures {
			globalLogger.Error("Check failed: %s", failure)
		}
		os.Exit(1)
	}
}
