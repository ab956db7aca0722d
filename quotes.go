package patrimoine

import (
	"maps"
	"slices"

	"github.com/shopspring/decimal"
)

// QuoteTable holds daily closing prices for a set of tickers over some
// window. It is plain data handed to the reconstruction: the provider that
// fills it may fail or return gaps, the table itself never does I/O.
type QuoteTable struct {
	prices map[string]*History[decimal.Decimal]
}

// NewQuoteTable returns a new empty quote table.
func NewQuoteTable() *QuoteTable {
	return &QuoteTable{prices: make(map[string]*History[decimal.Decimal])}
}

// Add upserts the closing price for (ticker, day).
// A closing price must be strictly positive.
func (q *QuoteTable) Add(ticker string, on Date, price decimal.Decimal) error {
	if !price.IsPositive() {
		return validationErrorf("non-positive price %s for %s on %s", price, ticker, on)
	}
	h, ok := q.prices[ticker]
	if !ok {
		h = &History[decimal.Decimal]{}
		q.prices[ticker] = h
	}
	h.Append(on, price)
	return nil
}

// Has returns true when the table has at least one price for that ticker.
func (q *QuoteTable) Has(ticker string) bool {
	_, ok := q.prices[ticker]
	return ok
}

// PriceAsOf returns the most recent closing price at or before 'on',
// forward-filling across non-trading gaps. The boolean is false when the
// ticker is unknown or has no price at or before that day.
func (q *QuoteTable) PriceAsOf(ticker string, on Date) (decimal.Decimal, bool) {
	h, ok := q.prices[ticker]
	if !ok {
		return decimal.Decimal{}, false
	}
	return h.ValueAsOf(on)
}

// Latest returns the most recent day and price known for the ticker.
func (q *QuoteTable) Latest(ticker string) (Date, decimal.Decimal, bool) {
	h, ok := q.prices[ticker]
	if !ok || h.Len() == 0 {
		return Date{}, decimal.Decimal{}, false
	}
	day, price := h.Latest()
	return day, price, true
}

// History returns the price series of a ticker, or nil if unknown. The
// returned history is shared, callers must not write through it.
func (q *QuoteTable) History(ticker string) *History[decimal.Decimal] { return q.prices[ticker] }

// Tickers returns the sorted tickers present in the table.
func (q *QuoteTable) Tickers() []string {
	tickers := slices.Collect(maps.Keys(q.prices))
	slices.Sort(tickers)
	return tickers
}

// Dates returns the sorted distinct dates carrying at least one quote.
func (q *QuoteTable) Dates() []Date {
	histories := make([]*History[decimal.Decimal], 0, len(q.prices))
	for _, h := range q.prices {
		histories = append(histories, h)
	}
	return slices.Collect(Iterate(histories...))
}

// Len returns the total number of quotes across all tickers.
func (q *QuoteTable) Len() int {
	n := 0
	for _, h := range q.prices {
		n += h.Len()
	}
	return n
}
