// Package cmd implements the CLI application to track a personal portfolio.
package cmd

import (
	"flag"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/google/subcommands"
	"github.com/privfolio/privfolio"
	"github.com/shopspring/decimal"
)

// Commands is the list of subcommands a main package registers.
var Commands = []subcommands.Command{
	&monthCmd{},
	&holdingCmd{},
	&deleteCmd{},
	&holdingsCmd{},
	&dividendsCmd{},
	&syncCmd{},
	&summaryCmd{},
	&historyCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataDir = flag.String("data-dir", "data", "Path to the folder holding the data files")
var codeFlag = flag.String("code", "", "Passcode, skips the interactive prompt")

func openStore() *privfolio.Store { return privfolio.NewStore(*dataDir) }

func newResolver() *privfolio.QuoteResolver {
	return privfolio.NewQuoteResolver(privfolio.NewYahooClient())
}

// unlock checks the passcode before any data access. The expected value
// comes from the environment or a .env file; the supplied one from the
// -code flag or an interactive prompt. No configured passcode is a hard
// stop.
func unlock() error {
	want, err := privfolio.Passcode()
	if err != nil {
		return err
	}
	got := *codeFlag
	if got == "" {
		err := huh.NewInput().
			Title("Passcode").
			EchoMode(huh.EchoModePassword).
			Value(&got).
			Run()
		if err != nil {
			return fmt.Errorf("cannot read passcode: %w", err)
		}
	}
	if got != want {
		return fmt.Errorf("invalid passcode")
	}
	return nil
}

// validateAmount checks that a form field holds a usable number.
func validateAmount(allowNegative bool) func(string) error {
	return func(s string) error {
		if s == "" {
			return nil
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			return fmt.Errorf("must be a valid number")
		}
		if !allowNegative && d.IsNegative() {
			return fmt.Errorf("must not be negative")
		}
		return nil
	}
}
