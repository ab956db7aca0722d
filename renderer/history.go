package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/patrimoine"
	"github.com/shopspring/decimal"
)

// HistoryMarkdown renders the reconstructed net worth history as a markdown
// pivot table, one row per date, one column per category plus the total.
//
// A category with no defined value on a row stays blank: the history never
// shows a zero for an asset that simply was not observable yet.
func HistoryMarkdown(v *patrimoine.Valuation) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Net worth history\n\n")

	if v.Len() == 0 {
		fmt.Fprintln(&b, "No history yet. Record amounts or positions to build one.")
		return b.String()
	}

	categories := v.Categories()
	byCategory := v.ByCategory()
	totals := v.Total()

	fmt.Fprint(&b, "| Date |")
	for _, c := range categories {
		fmt.Fprintf(&b, " %s |", c)
	}
	fmt.Fprintln(&b, " Total |")

	fmt.Fprint(&b, "|:---|")
	for range categories {
		fmt.Fprint(&b, "---:|")
	}
	fmt.Fprintln(&b, "---:|")

	for i, p := range byCategory {
		fmt.Fprintf(&b, "| %s |", p.On)
		for _, c := range categories {
			if value, ok := p.Values[string(c)]; ok {
				fmt.Fprintf(&b, " %s |", patrimoine.EUR(value))
			} else {
				fmt.Fprint(&b, "  |")
			}
		}
		fmt.Fprintf(&b, " %s |\n", patrimoine.EUR(totals[i].Total))
	}
	return b.String()
}

// AssetHistoryMarkdown renders the per-asset series as a markdown pivot
// table, one column per asset name.
func AssetHistoryMarkdown(v *patrimoine.Valuation) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Asset value history\n\n")

	if v.Len() == 0 {
		fmt.Fprintln(&b, "No history yet. Record amounts or positions to build one.")
		return b.String()
	}

	names := v.AssetNames()
	byAsset := v.ByAsset()

	fmt.Fprint(&b, "| Date |")
	for _, name := range names {
		fmt.Fprintf(&b, " %s |", name)
	}
	fmt.Fprintln(&b)

	fmt.Fprint(&b, "|:---|")
	for range names {
		fmt.Fprint(&b, "---:|")
	}
	fmt.Fprintln(&b)

	for _, p := range byAsset {
		fmt.Fprintf(&b, "| %s |", p.On)
		for _, name := range names {
			if value, ok := p.Values[name]; ok {
				fmt.Fprintf(&b, " %s |", patrimoine.EUR(value))
			} else {
				fmt.Fprint(&b, "  |")
			}
		}
		fmt.Fprintln(&b)
	}
	return b.String()
}

// percent formats part over total as a percentage with two decimals.
func percent(part, total decimal.Decimal) string {
	if total.IsZero() {
		return "-"
	}
	return part.Div(total).Mul(decimal.NewFromInt(100)).Round(2).String() + "%"
}
