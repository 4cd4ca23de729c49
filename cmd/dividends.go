package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/google/subcommands"
	"github.com/privfolio/privfolio"
	"github.com/privfolio/privfolio/renderer"
)

// dividendsCmd holds the flags for the 'dividends' subcommand.
type dividendsCmd struct {
	ticker string
}

func (*dividendsCmd) Name() string     { return "dividends" }
func (*dividendsCmd) Synopsis() string { return "display the dividend history of a ticker" }
func (*dividendsCmd) Usage() string {
	return `pft dividends [-t <ticker>]

  Displays the most recent per-share dividend payments of a ticker. Without
  -t an interactive picker opens over the recorded holdings.
`
}

func (c *dividendsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "t", "", "Ticker symbol.")
}

func (c *dividendsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := unlock(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.ticker == "" {
		holdings, err := openStore().LoadHoldings()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading holdings: %v\n", err)
			return subcommands.ExitFailure
		}
		tickers := holdings.Tickers()
		if len(tickers) == 0 {
			fmt.Println(warnStyle.Render("No holdings recorded, pass a ticker with -t."))
			return subcommands.ExitSuccess
		}
		options := make([]huh.Option[string], 0, len(tickers))
		for _, t := range tickers {
			options = append(options, huh.NewOption(t, t))
		}
		err = huh.NewSelect[string]().
			Title("Dividends for which ticker?").
			Options(options...).
			Value(&c.ticker).
			Run()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	ticker := privfolio.NormalizeTicker(c.ticker)
	payments := newResolver().Dividends(ticker)
	printMarkdown(renderer.DividendsMarkdown(ticker, payments))
	return subcommands.ExitSuccess
}
