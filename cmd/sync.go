package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/privfolio/privfolio"
)

// syncCmd holds the flags for the 'sync' subcommand.
type syncCmd struct{}

func (*syncCmd) Name() string     { return "sync" }
func (*syncCmd) Synopsis() string { return "write the holdings value into the current month" }
func (*syncCmd) Usage() string {
	return `pft sync

  Values all holdings at current prices and records the total as the
  current month's balance. An existing record for the month keeps its
  contribution and note.
`
}

func (c *syncCmd) SetFlags(f *flag.FlagSet) {}

func (c *syncCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	holdings, err := store.LoadHoldings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading holdings: %v\n", err)
		return subcommands.ExitFailure
	}

	month, total := privfolio.SyncFromHoldings(balances, holdings, newResolver())
	if err := store.SaveBalances(balances); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving balances: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Println(successStyle.Render(fmt.Sprintf("Updated %s to %s", month, total)))
	return subcommands.ExitSuccess
}
