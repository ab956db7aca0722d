package patrimoine

import (
	"slices"

	"github.com/shopspring/decimal"
)

// Valuation is the outcome of one reconstruction: for every kept axis date,
// the value of every asset defined on that date. The three public series
// are pivots of these same cells, never independent computations, so for
// any emitted date the total equals the sum of its category breakdown.
//
// A Valuation is immutable once built and is never persisted.
type Valuation struct {
	scheme Scheme
	assets []Asset
	days   []Date                        // ascending, no duplicates
	cells  []map[AssetID]decimal.Decimal // parallel to days; each map is non-empty
}

// TotalPoint is one point of the total net worth series.
type TotalPoint struct {
	On    Date
	Total decimal.Decimal
}

// BreakdownPoint is one date of a pivoted series: one column per group,
// groups with no defined value that day are absent from the map, not zero.
type BreakdownPoint struct {
	On     Date
	Values map[string]decimal.Decimal
}

// Len returns the number of dates in the series.
func (v *Valuation) Len() int { return len(v.days) }

// Days returns the emitted dates, ascending. The slice is shared, callers
// must not modify it.
func (v *Valuation) Days() []Date { return v.days }

// Value returns the reconstructed value of one asset on one emitted date.
// The boolean is false when the asset has no defined value that day.
func (v *Valuation) Value(id AssetID, on Date) (decimal.Decimal, bool) {
	i, found := slices.BinarySearchFunc(v.days, on, Date.Compare)
	if !found {
		return decimal.Decimal{}, false
	}
	value, ok := v.cells[i][id]
	return value, ok
}

// Total returns the date → total net worth series. Dates where no asset
// has a defined value carry no point at all.
func (v *Valuation) Total() []TotalPoint {
	points := make([]TotalPoint, 0, len(v.days))
	for i, day := range v.days {
		total := decimal.Zero
		for _, value := range v.cells[i] {
			total = total.Add(value)
		}
		points = append(points, TotalPoint{On: day, Total: total})
	}
	return points
}

// ByCategory returns the series pivoted to one column per category label.
func (v *Valuation) ByCategory() []BreakdownPoint {
	return v.pivot(func(a Asset) string { return string(a.Category) })
}

// ByAsset returns the series pivoted to one column per asset name.
func (v *Valuation) ByAsset() []BreakdownPoint {
	return v.pivot(func(a Asset) string { return a.Name })
}

// pivot groups the per-(asset, date) cells by an asset label and sums
// within each group.
func (v *Valuation) pivot(label func(Asset) string) []BreakdownPoint {
	points := make([]BreakdownPoint, 0, len(v.days))
	for i, day := range v.days {
		values := make(map[string]decimal.Decimal)
		for _, a := range v.assets {
			cell, ok := v.cells[i][a.ID]
			if !ok {
				continue
			}
			values[label(a)] = values[label(a)].Add(cell)
		}
		points = append(points, BreakdownPoint{On: day, Values: values})
	}
	return points
}

// Categories returns the scheme categories that appear at least once in the
// series, in scheme order.
func (v *Valuation) Categories() []Category {
	present := make(map[Category]bool)
	for i := range v.days {
		for _, a := range v.assets {
			if _, ok := v.cells[i][a.ID]; ok {
				present[a.Category] = true
			}
		}
	}
	var categories []Category
	for _, c := range v.scheme.Categories() {
		if present[c] {
			categories = append(categories, c)
		}
	}
	return categories
}

// AssetNames returns the distinct names of assets that appear at least once
// in the series, in registry order.
func (v *Valuation) AssetNames() []string {
	var names []string
	seen := make(map[string]bool)
	for _, a := range v.assets {
		if seen[a.Name] {
			continue
		}
		for i := range v.days {
			if _, ok := v.cells[i][a.ID]; ok {
				seen[a.Name] = true
				names = append(names, a.Name)
				break
			}
		}
	}
	return names
}
