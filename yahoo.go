package patrimoine

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// Fetching daily closes from Yahoo's public chart endpoint. The response is
// a deeply nested json document, so it is parsed generically and picked
// apart with jsonpath rather than mirrored into Go structs.

const yahooChartURL = "https://query1.finance.yahoo.com/v8/finance/chart/%s?period1=%d&period2=%d&interval=1d&events=history"

// FetchDailyCloses retrieves daily closing prices for the given tickers
// over the window and returns them as a quote table.
//
// The table is best-effort by contract: a ticker that fails to fetch or
// parse is skipped and reported in the joined error, while the table keeps
// the tickers that worked. Null closes (non-trading days) are left as gaps.
// Responses are served from a disk cache that expires daily.
func FetchDailyCloses(tickers []string, window Range) (*QuoteTable, error) {
	table := NewQuoteTable()
	client := daily()

	var errs error
	for _, ticker := range tickers {
		if err := fetchTickerCloses(client, table, ticker, window); err != nil {
			errs = errors.Join(errs, fmt.Errorf("could not fetch %s: %w", ticker, err))
		}
	}
	return table, errs
}

func fetchTickerCloses(client *http.Client, table *QuoteTable, ticker string, window Range) error {
	from := window.From
	if from.IsZero() {
		// Yahoo wants explicit bounds; use a far past origin for "all".
		from = NewDate(1970, time.January, 1)
	}
	to := window.To
	if to.IsZero() {
		to = Today()
	}
	// the end bound is exclusive on the provider side.
	addr := fmt.Sprintf(yahooChartURL, ticker, from.Unix(), to.Add(1).Unix())

	var jobj any
	if err := jwget(client, addr, &jobj); err != nil {
		return err
	}

	timestamps, err := jsonpathFloats(jobj, "$.chart.result[0].timestamp")
	if err != nil {
		return err
	}
	closes, err := jsonpathCloses(jobj, "$.chart.result[0].indicators.quote[0].close")
	if err != nil {
		return err
	}
	if len(timestamps) != len(closes) {
		return fmt.Errorf("inconsistent response: %d timestamps for %d closes", len(timestamps), len(closes))
	}

	for i, ts := range timestamps {
		if closes[i] == nil {
			continue // non-trading day or missing close, keep the gap
		}
		day := DateOf(time.Unix(int64(ts), 0).UTC())
		price := decimal.NewFromFloat(*closes[i]).Round(4)
		if !price.IsPositive() {
			continue
		}
		if err := table.Add(ticker, day, price); err != nil {
			return err
		}
	}
	return nil
}

// jsonpathFloats extracts a list of numbers at path.
func jsonpathFloats(jobj any, path string) ([]float64, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("error parsing %q: %w", path, err)
	}
	jlist, ok := jval.([]any)
	if !ok {
		return nil, fmt.Errorf("error parsing %q: not a list, got %T", path, jval)
	}
	floats := make([]float64, 0, len(jlist))
	for _, item := range jlist {
		f, ok := item.(float64)
		if !ok {
			return nil, fmt.Errorf("error parsing %q: not a number, got %T", path, item)
		}
		floats = append(floats, f)
	}
	return floats, nil
}

// jsonpathCloses extracts a list of numbers at path where entries may be
// null, returned as nils.
func jsonpathCloses(jobj any, path string) ([]*float64, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("error parsing %q: %w", path, err)
	}
	jlist, ok := jval.([]any)
	if !ok {
		return nil, fmt.Errorf("error parsing %q: not a list, got %T", path, jval)
	}
	closes := make([]*float64, 0, len(jlist))
	for _, item := range jlist {
		if item == nil {
			closes = append(closes, nil)
			continue
		}
		f, ok := item.(float64)
		if !ok {
			return nil, fmt.Errorf("error parsing %q: not a number, got %T", path, item)
		}
		closes = append(closes, &f)
	}
	return closes, nil
}
