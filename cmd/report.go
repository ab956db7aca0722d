package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/patrimoine/renderer"
	"github.com/google/subcommands"
)

type reportCmd struct {
	since string
	style string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "Render a full report in the terminal." }
func (*reportCmd) Usage() string {
	return `report [-since <date>] [-style <glamour-style>]

  Renders the current breakdown and the reconstructed history as styled
  markdown in the terminal.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.since, "since", "", "start of the window, defaults to the whole history")
	f.StringVar(&c.style, "style", "dark", "glamour style name")
}

func (c *reportCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	window, err := parseSince(c.since)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	s, err := LoadStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	v := s.Reconstruct(window)

	md := strings.Join([]string{
		renderer.SummaryMarkdown(s.Registry),
		renderer.HistoryMarkdown(v),
	}, "\n")
	out, err := glamour.Render(md, c.style)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Print(out)
	return subcommands.ExitSuccess
}
