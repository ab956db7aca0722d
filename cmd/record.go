package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/patrimoine"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type recordCmd struct {
	asset    string
	amount   string
	quantity string
	date     string
}

func (*recordCmd) Name() string     { return "record" }
func (*recordCmd) Synopsis() string { return "Record a dated observation for an asset." }
func (*recordCmd) Usage() string {
	return `record -asset <name-or-id> (-amount <value> | -quantity <shares>) [-d <date>]

  Records an amount for a manual asset, or a share count for a quoted
  one, at the given date (today by default). Recording twice on the same
  date replaces the previous value.
`
}

func (c *recordCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.asset, "asset", "", "name or id of the asset")
	f.StringVar(&c.amount, "amount", "", "observed amount, manual assets only")
	f.StringVar(&c.quantity, "quantity", "", "observed share count, quoted assets only")
	f.StringVar(&c.date, "d", "", "date of the observation, defaults to today")
}

func (c *recordCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.asset == "" {
		fmt.Fprintln(os.Stderr, "-asset is required")
		return subcommands.ExitUsageError
	}
	if (c.amount == "") == (c.quantity == "") {
		fmt.Fprintln(os.Stderr, "exactly one of -amount or -quantity is required")
		return subcommands.ExitUsageError
	}

	on := patrimoine.Today()
	if c.date != "" {
		var err error
		if on, err = patrimoine.ParseDate(c.date); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
	}

	s, err := LoadStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	asset, err := s.FindAsset(c.asset)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if err := c.record(s, asset, on); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := s.SaveStore(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func (c *recordCmd) record(s *Store, asset patrimoine.Asset, on patrimoine.Date) error {
	if c.amount != "" {
		if asset.Mode != patrimoine.Manual {
			return fmt.Errorf("asset %q is quoted, record a -quantity instead", asset.Name)
		}
		amount, err := decimal.NewFromString(c.amount)
		if err != nil {
			return fmt.Errorf("invalid -amount value: %w", err)
		}
		if err := s.Manual.Record(asset.ID, on, amount); err != nil {
			return err
		}
		asset.Amount = amount
		fmt.Printf("Recorded %s for %q on %s\n", patrimoine.EUR(amount), asset.Name, on)
		return s.Registry.Update(asset)
	}

	if asset.Mode != patrimoine.Quoted {
		return fmt.Errorf("asset %q is manual, record an -amount instead", asset.Name)
	}
	quantity, err := decimal.NewFromString(c.quantity)
	if err != nil {
		return fmt.Errorf("invalid -quantity value: %w", err)
	}
	if err := s.Positions.Record(asset.ID, on, quantity); err != nil {
		return err
	}
	asset.Quantity = quantity
	fmt.Printf("Recorded %s shares of %q on %s\n", quantity, asset.Name, on)
	return s.Registry.Update(asset)
}
