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

// holdingCmd holds the flags for the 'holding' subcommand.
type holdingCmd struct {
	ticker    string
	shares    string
	costBasis string
	note      string
}

func (*holdingCmd) Name() string     { return "holding" }
func (*holdingCmd) Synopsis() string { return "record or overwrite an equity position" }
func (*holdingCmd) Usage() string {
	return `pft holding [-t <ticker>] [-s <shares>] [-b <cost_basis>] [-n <note>]

  Records a position in a single equity. Saving an existing ticker
  overwrites it. Without -t an interactive form opens.
`
}

func (c *holdingCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "t", "", "Ticker symbol, e.g. VTI.")
	f.StringVar(&c.shares, "s", "0", "Number of shares held.")
	f.StringVar(&c.costBasis, "b", "0", "Per-share purchase price.")
	f.StringVar(&c.note, "n", "", "Optional note.")
}

func (c *holdingCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := unlock(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.ticker == "" {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Ticker").
					Description("e.g. VTI").
					Value(&c.ticker),
				huh.NewInput().
					Title("Shares").
					Value(&c.shares).
					Validate(validateAmount(false)),
				huh.NewInput().
					Title("Cost basis per share").
					Value(&c.costBasis).
					Validate(validateAmount(false)),
				huh.NewInput().
					Title("Note").
					Value(&c.note),
			),
		)
		if err := form.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	ticker := privfolio.NormalizeTicker(c.ticker)
	if ticker == "" {
		fmt.Println(warnStyle.Render("No ticker given, nothing saved."))
		return subcommands.ExitSuccess
	}
	shares, err := privfolio.ParseQuantity(c.shares)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing shares: %v\n", err)
		return subcommands.ExitUsageError
	}
	if shares.IsNegative() {
		fmt.Fprintf(os.Stderr, "Error: shares must not be negative\n")
		return subcommands.ExitUsageError
	}
	costBasis, err := privfolio.ParseMoney(c.costBasis)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing cost basis: %v\n", err)
		return subcommands.ExitUsageError
	}
	if costBasis.IsNegative() {
		fmt.Fprintf(os.Stderr, "Error: cost basis must not be negative\n")
		return subcommands.ExitUsageError
	}

	store := openStore()
	holdings, err := store.LoadHoldings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading holdings: %v\n", err)
		return subcommands.ExitFailure
	}
	holdings.Upsert(privfolio.HoldingRecord{
		Ticker:    ticker,
		Shares:    shares,
		CostBasis: costBasis,
		Note:      c.note,
	})
	if err := store.SaveHoldings(holdings); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving holdings: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Println(successStyle.Render(fmt.Sprintf("Saved %s: %s shares at %s", ticker, shares, costBasis)))
	return subcommands.ExitSuccess
}
