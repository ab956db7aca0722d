package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/patrimoine"
	"github.com/google/subcommands"
)

type chartCmd struct {
	since  string
	output string
	title  string
	width  int
	height int
	total  bool
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "Render the value history as a PNG chart." }
func (*chartCmd) Usage() string {
	return `chart [-since <date>] [-o <file.png>] [-title <title>] [-total]

  Reconstructs the value history and renders one line per category, plus
  the total when -total is set, into a PNG file.
`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.since, "since", "", "start of the window, defaults to the whole history")
	f.StringVar(&c.output, "o", "patrimoine.png", "output PNG file")
	f.StringVar(&c.title, "title", "Patrimoine", "chart title")
	f.IntVar(&c.width, "width", 1000, "chart width in pixels")
	f.IntVar(&c.height, "height", 600, "chart height in pixels")
	f.BoolVar(&c.total, "total", true, "draw the total line")
}

func (c *chartCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	if v.Len() == 0 {
		fmt.Fprintln(os.Stderr, "nothing to chart, no observation in the window")
		return subcommands.ExitFailure
	}

	png, err := patrimoine.RenderChart(v, patrimoine.ChartOptions{
		Title:      c.title,
		Total:      c.total,
		Categories: true,
		Width:      c.width,
		Height:     c.height,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := os.WriteFile(c.output, png, 0o644); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Wrote %s\n", c.output)
	return subcommands.ExitSuccess
}
