package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/patrimoine"
	"github.com/shopspring/decimal"
)

// SummaryMarkdown renders the current state of the registry: every asset
// with its latest known amount, a per-category breakdown with percentages,
// and the grand total.
func SummaryMarkdown(r *patrimoine.Registry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Assets\n\n")

	if r.Len() == 0 {
		fmt.Fprintln(&b, "No assets yet.")
		return b.String()
	}

	total := decimal.Zero
	byCategory := make(map[patrimoine.Category]decimal.Decimal)
	for a := range r.Assets() {
		total = total.Add(a.Amount)
		byCategory[a.Category] = byCategory[a.Category].Add(a.Amount)
	}

	fmt.Fprintln(&b, "| Name | Category | Mode | Ticker | Quantity | Amount |")
	fmt.Fprintln(&b, "|:---|:---|:---|:---|---:|---:|")
	for a := range r.Assets() {
		quantity := ""
		if a.Mode == patrimoine.Quoted {
			quantity = a.Quantity.String()
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s |\n",
			a.Name, a.Category, a.Mode, a.Ticker, quantity, patrimoine.EUR(a.Amount))
	}

	fmt.Fprintf(&b, "\n## By category\n\n")
	fmt.Fprintln(&b, "| Category | Amount | Share |")
	fmt.Fprintln(&b, "|:---|---:|---:|")
	for _, c := range r.Scheme().Categories() {
		amount, ok := byCategory[c]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "| %s | %s | %s |\n", c, patrimoine.EUR(amount), percent(amount, total))
	}

	fmt.Fprintf(&b, "\n**Total: %s**\n", patrimoine.EUR(total))
	return b.String()
}
