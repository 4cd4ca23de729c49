package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/privfolio/privfolio"
	"github.com/privfolio/privfolio/renderer"
)

// holdingsCmd holds the flags for the 'holdings' subcommand.
type holdingsCmd struct{}

func (*holdingsCmd) Name() string     { return "holdings" }
func (*holdingsCmd) Synopsis() string { return "display all positions at current prices" }
func (*holdingsCmd) Usage() string {
	return `pft holdings

  Prices every holding at the current market and displays market value and
  unrealized gain. Unpriceable tickers show n/a and count as zero.
`
}

func (c *holdingsCmd) SetFlags(f *flag.FlagSet) {}

func (c *holdingsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := unlock(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	holdings, err := openStore().LoadHoldings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading holdings: %v\n", err)
		return subcommands.ExitFailure
	}

	report := privfolio.NewHoldingsReport(holdings, newResolver())
	printMarkdown(renderer.HoldingsMarkdown(report))
	return subcommands.ExitSuccess
}
