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

type addCmd struct {
	name     string
	category string
	amount   string
	ticker   string
	quantity string
	unitCost string
	date     string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "Add a new asset to the registry." }
func (*addCmd) Usage() string {
	return `add -name <name> -category <category> [-amount <value> | -ticker <symbol> -quantity <shares> [-pru <unit-cost>]] [-d <date>]

  Adds an asset. Manual categories take an initial amount, quoted
  categories take a ticker and a share count. The initial observation is
  recorded in the matching ledger at the given date (today by default).
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "display name of the asset")
	f.StringVar(&c.category, "category", "", "category of the asset")
	f.StringVar(&c.amount, "amount", "", "initial amount, manual assets only")
	f.StringVar(&c.ticker, "ticker", "", "market symbol, quoted assets only")
	f.StringVar(&c.quantity, "quantity", "", "initial share count, quoted assets only")
	f.StringVar(&c.unitCost, "pru", "", "purchase price per share, quoted assets only")
	f.StringVar(&c.date, "d", "", "date of the initial observation, defaults to today")
}

func (c *addCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" || c.category == "" {
		fmt.Fprintln(os.Stderr, "both -name and -category are required")
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

	category := patrimoine.Category(c.category)
	var asset patrimoine.Asset
	if s.Registry.Scheme().IsQuoted(category) {
		asset, err = c.addQuoted(s, category, on)
	} else {
		asset, err = c.addManual(s, category, on)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if err := s.SaveStore(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Added %s asset %q (%s)\n", asset.Mode, asset.Name, asset.ID)
	return subcommands.ExitSuccess
}

func (c *addCmd) addManual(s *Store, category patrimoine.Category, on patrimoine.Date) (patrimoine.Asset, error) {
	if c.amount == "" {
		return patrimoine.Asset{}, fmt.Errorf("-amount is required for category %q", category)
	}
	amount, err := decimal.NewFromString(c.amount)
	if err != nil {
		return patrimoine.Asset{}, fmt.Errorf("invalid -amount value: %w", err)
	}
	asset := patrimoine.NewManualAsset(c.name, category)
	asset.Amount = amount
	if err := s.Registry.Add(asset); err != nil {
		return patrimoine.Asset{}, err
	}
	if err := s.Manual.Record(asset.ID, on, amount); err != nil {
		return patrimoine.Asset{}, err
	}
	return asset, nil
}

func (c *addCmd) addQuoted(s *Store, category patrimoine.Category, on patrimoine.Date) (patrimoine.Asset, error) {
	if c.ticker == "" || c.quantity == "" {
		return patrimoine.Asset{}, fmt.Errorf("both -ticker and -quantity are required for category %q", category)
	}
	quantity, err := decimal.NewFromString(c.quantity)
	if err != nil {
		return patrimoine.Asset{}, fmt.Errorf("invalid -quantity value: %w", err)
	}
	asset := patrimoine.NewQuotedAsset(c.name, category, c.ticker)
	asset.Quantity = quantity
	if c.unitCost != "" {
		if asset.UnitCost, err = decimal.NewFromString(c.unitCost); err != nil {
			return patrimoine.Asset{}, fmt.Errorf("invalid -pru value: %w", err)
		}
	}
	if err := s.Registry.Add(asset); err != nil {
		return patrimoine.Asset{}, err
	}
	if err := s.Positions.Record(asset.ID, on, quantity); err != nil {
		return patrimoine.Asset{}, err
	}
	return asset, nil
}
