package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/patrimoine"
	"github.com/google/subcommands"
)

type updateCmd struct{}

func (*updateCmd) Name() string     { return "update" }
func (*updateCmd) Synopsis() string { return "Refresh the market value of quoted assets." }
func (*updateCmd) Usage() string {
	return `update

  Fetches the latest market price of every quoted asset's ticker and
  refreshes the registry amounts from price times quantity.
`
}

func (*updateCmd) SetFlags(*flag.FlagSet) {}

func (*updateCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := LoadStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	tickers := s.Registry.Tickers()
	if len(tickers) == 0 {
		fmt.Println("No quoted assets to update")
		return subcommands.ExitSuccess
	}

	// a short window is enough to catch the latest close
	window := patrimoine.Since(patrimoine.Today().Add(-7))
	quotes := s.FetchQuotes(window)
	if err := s.Registry.RefreshQuotes(quotes); err != nil {
		// best-effort: keep the tickers that worked
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}
	if err := s.SaveStore(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Updated %d tickers\n", len(tickers))
	return subcommands.ExitSuccess
}
