package patrimoine

import (
	"slices"

	"github.com/shopspring/decimal"
)

// Reconstruct rebuilds the historical value of every asset and returns the
// result as a [Valuation], from which the total, per-category and per-asset
// series all derive.
//
// It is a pure function of plain-data snapshots: the registry, the manual
// valuation ledger, the position ledger and a quote table already fetched
// by the caller. It performs no I/O, holds no state and is deterministic,
// so the caller may cache its result keyed on a fingerprint of the inputs.
//
// The date axis is the sorted union of the manual ledger dates and the
// quote table dates, clipped to the caller's window and to the earliest
// observation across both ledgers so that no value is invented before any
// data exists. Position dates do not create axis points on their own:
// positions are sampled where a quote or a manual valuation gives the day a
// meaning.
//
// At each axis date an asset either has a defined value or contributes
// nothing at all. An asset is never worth zero just because its history has
// not started, has a gap, or its ticker is absent from the table.
func Reconstruct(reg *Registry, manual, positions *Ledger, quotes *QuoteTable, window Range) *Valuation {
	v := &Valuation{scheme: reg.Scheme()}
	for a := range reg.Assets() {
		v.assets = append(v.assets, a)
	}

	axis := dateAxis(manual, positions, quotes, window)
	if len(axis) == 0 {
		return v
	}

	// One forward merge per asset against the shared axis: each sparse
	// series is scanned once, never binary-searched per date.
	cells := make([]map[AssetID]decimal.Decimal, len(axis))
	for _, a := range v.assets {
		switch a.Mode {
		case Manual:
			h := manual.History(a.ID)
			if h == nil {
				continue
			}
			scan := h.Scan()
			for i, day := range axis {
				if amount, ok := scan.AsOf(day); ok {
					setCell(cells, i, a.ID, amount)
				}
			}
		case Quoted:
			ph := quotes.History(a.Ticker)
			qh := positions.History(a.ID)
			if ph == nil || qh == nil {
				// Unknown ticker or no position ever recorded: the asset is
				// unobservable over the whole window.
				continue
			}
			prices, quantities := ph.Scan(), qh.Scan()
			for i, day := range axis {
				quantity, ok := quantities.AsOf(day)
				if !ok {
					continue
				}
				price, ok := prices.AsOf(day)
				if !ok {
					continue
				}
				setCell(cells, i, a.ID, price.Mul(quantity).Round(2))
			}
		}
	}

	// Keep only the dates where at least one asset has a defined value.
	for i, day := range axis {
		if len(cells[i]) == 0 {
			continue
		}
		v.days = append(v.days, day)
		v.cells = append(v.cells, cells[i])
	}
	return v
}

func setCell(cells []map[AssetID]decimal.Decimal, i int, id AssetID, value decimal.Decimal) {
	if cells[i] == nil {
		cells[i] = make(map[AssetID]decimal.Decimal)
	}
	cells[i][id] = value
}

// dateAxis assembles the sorted output axis: manual ledger dates merged
// with quote dates, clipped to the window and to the earliest observation
// of either ledger.
func dateAxis(manual, positions *Ledger, quotes *QuoteTable, window Range) []Date {
	earliest, ok := firstObservation(manual, positions)
	if !ok {
		return nil
	}

	var axis []Date
	for day := range iterate(manual.Dates(), quotes.Dates()) {
		if day.Before(earliest) {
			continue
		}
		if !window.Contains(day) {
			continue
		}
		axis = append(axis, day)
	}
	return axis
}

// firstObservation returns the min of the first observation dates of both
// ledgers, false when both are empty.
func firstObservation(manual, positions *Ledger) (Date, bool) {
	m, mok := manual.FirstDate()
	p, pok := positions.FirstDate()
	switch {
	case mok && pok:
		return slices.MinFunc([]Date{m, p}, Date.Compare), true
	case mok:
		return m, true
	case pok:
		return p, true
	default:
		return Date{}, false
	}
}
