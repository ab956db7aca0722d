package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type deleteCmd struct {
	asset string
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "Delete an asset and all its observations." }
func (*deleteCmd) Usage() string {
	return `delete -asset <name-or-id>

  Removes the asset from the registry and purges its observations from
  both ledgers. The asset no longer appears in any reconstruction, past
  dates included.
`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.asset, "asset", "", "name or id of the asset")
}

func (c *deleteCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.asset == "" {
		fmt.Fprintln(os.Stderr, "-asset is required")
		return subcommands.ExitUsageError
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

	s.Registry.Remove(asset.ID)
	s.Manual.DeleteAsset(asset.ID)
	s.Positions.DeleteAsset(asset.ID)

	if err := s.SaveStore(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deleted %q and its observations\n", asset.Name)
	return subcommands.ExitSuccess
}
