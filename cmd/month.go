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

// defaultFirstBalance seeds the form when no month was ever recorded.
const defaultFirstBalance = "3000"

// monthCmd holds the flags for the 'month' subcommand.
type monthCmd struct {
	month        string
	balance      string
	contribution string
	note         string
}

func (*monthCmd) Name() string     { return "month" }
func (*monthCmd) Synopsis() string { return "record or overwrite a monthly balance" }
func (*monthCmd) Usage() string {
	return `pft month [-m <month>] [-b <balance>] [-c <contribution>] [-n <note>]

  Records the ending balance of a month. Saving a month that already exists
  overwrites it. Without -b an interactive form opens, pre-filled with the
  last recorded balance.
`
}

func (c *monthCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.month, "m", privfolio.ThisMonth().String(), "Month to record, e.g. 2024-03.")
	f.StringVar(&c.balance, "b", "", "Ending balance of the month.")
	f.StringVar(&c.contribution, "c", "0", "Net contribution made during the month.")
	f.StringVar(&c.note, "n", "", "Optional note.")
}

func (c *monthCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := unlock(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	store := openStore()
	balances, err := store.LoadBalances()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading balances: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.balance == "" {
		if status := c.prompt(balances); status != subcommands.ExitSuccess {
			return status
		}
	}

	month, err := privfolio.ParseMonth(c.month)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing month: %v\n", err)
		return subcommands.ExitUsageError
	}
	balance, err := privfolio.ParseMoney(c.balance)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing balance: %v\n", err)
		return subcommands.ExitUsageError
	}
	if balance.IsNegative() {
		fmt.Fprintf(os.Stderr, "Error: balance must not be negative\n")
		return subcommands.ExitUsageError
	}
	contribution, err := privfolio.ParseMoney(c.contribution)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing contribution: %v\n", err)
		return subcommands.ExitUsageError
	}

	balances.Upsert(privfolio.BalanceRecord{
		Month:        month,
		Balance:      balance,
		Contribution: contribution,
		Note:         c.note,
	})
	if err := store.SaveBalances(balances); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving balances: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Println(successStyle.Render(fmt.Sprintf("Saved %s: %s", month, balance)))
	return subcommands.ExitSuccess
}

// prompt fills the missing fields interactively. The balance field defaults
// to the last recorded one so a flat month is a single keypress.
func (c *monthCmd) prompt(balances *privfolio.BalanceBook) subcommands.ExitStatus {
	c.balance = defaultFirstBalance
	if last, ok := balances.Last(); ok {
		c.balance = last.Balance.Plain()
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Month").
				Description("e.g. 2024-03").
				Value(&c.month),
			huh.NewInput().
				Title("Ending balance").
				Value(&c.balance).
				Validate(validateAmount(false)),
			huh.NewInput().
				Title("Contribution").
				Description("Net amount added this month, negative for withdrawals").
				Value(&c.contribution).
				Validate(validateAmount(true)),
			huh.NewInput().
				Title("Note").
				Value(&c.note),
		),
	)
	if err := form.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
