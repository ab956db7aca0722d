package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/etnz/patrimoine"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type historyCmd struct {
	since string
	by    string
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "Print the reconstructed value over time." }
func (*historyCmd) Usage() string {
	return `history [-since <date>] [-by total|category|asset]

  Reconstructs the portfolio value from the ledgers and market quotes,
  and prints one line per date. Dates accept a relative form like -3m.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.since, "since", "", "start of the window, defaults to the whole history")
	f.StringVar(&c.by, "by", "total", "series to print: total, category or asset")
}

func (c *historyCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	defer w.Flush()
	switch c.by {
	case "total":
		fmt.Fprintln(w, "Date\tTotal")
		for _, p := range v.Total() {
			fmt.Fprintf(w, "%s\t%s\n", p.On, patrimoine.EUR(p.Total))
		}
	case "category":
		categories := v.Categories()
		labels := make([]string, 0, len(categories))
		for _, category := range categories {
			labels = append(labels, string(category))
		}
		printBreakdown(w, labels, v.ByCategory())
	case "asset":
		printBreakdown(w, v.AssetNames(), v.ByAsset())
	default:
		fmt.Fprintf(os.Stderr, "unknown -by value %q\n", c.by)
		return subcommands.ExitUsageError
	}
	return subcommands.ExitSuccess
}

func printBreakdown(w *tabwriter.Writer, labels []string, points []patrimoine.BreakdownPoint) {
	fmt.Fprintf(w, "Date\t%s\n", strings.Join(labels, "\t"))
	for _, p := range points {
		cells := make([]string, 0, len(labels))
		for _, label := range labels {
			cells = append(cells, formatCell(p.Values, label))
		}
		fmt.Fprintf(w, "%s\t%s\n", p.On, strings.Join(cells, "\t"))
	}
}

// formatCell marks undefined values with a dash, they are not zero.
func formatCell(values map[string]decimal.Decimal, label string) string {
	value, ok := values[label]
	if !ok {
		return "-"
	}
	return patrimoine.EUR(value).String()
}
