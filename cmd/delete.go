package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/google/subcommands"
	"github.com/privfolio/privfolio"
)

// deleteCmd holds the flags for the 'delete' subcommand.
type deleteCmd struct {
	ticker string
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "remove an equity position" }
func (*deleteCmd) Usage() string {
	return `pft delete [-t <ticker>]

  Removes a holding. Without -t an interactive picker opens. Deleting an
  unknown ticker does nothing.
`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "t", "", "Ticker symbol to remove.")
}

func (c *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := unlock(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	store := openStore()
	holdings, err := store.LoadHoldings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading holdings: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.ticker == "" {
		tickers := holdings.Tickers()
		if len(tickers) == 0 {
			fmt.Println(warnStyle.Render("No holdings to delete."))
			return subcommands.ExitSuccess
		}
		options := make([]huh.Option[string], 0, len(tickers))
		for _, t := range tickers {
			options = append(options, huh.NewOption(t, t))
		}
		err := huh.NewSelect[string]().
			Title("Delete which holding?").
			Options(options...).
			Value(&c.ticker).
			Run()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	ticker := privfolio.NormalizeTicker(c.ticker)
	if !holdings.Has(ticker) {
		fmt.Println(warnStyle.Render(fmt.Sprintf("No holding for %s, nothing deleted.", ticker)))
		return subcommands.ExitSuccess
	}
	holdings.Delete(ticker)
	if err := store.SaveHoldings(holdings); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving holdings: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Println(successStyle.Render(fmt.Sprintf("Deleted %s", ticker)))
	return subcommands.ExitSuccess
}
