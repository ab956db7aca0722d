package patrimoine

import (
	"iter"
	"maps"
	"slices"

	"github.com/shopspring/decimal"
)

// Observation is one dated measurement for one asset: an amount for manual
// assets, a share count for quoted ones. There is at most one observation
// per (asset, day).
type Observation struct {
	Asset AssetID
	On    Date
	Value decimal.Decimal
}

// Ledger is an append-only store of dated observations, keyed by
// (asset, day). The temporal semantics of manual amounts and of share
// counts are identical, so one type serves both: a source describes what
// the values mean in error messages and file headers.
type Ledger struct {
	source string // "amount" or "quantity"
	series map[AssetID]*History[decimal.Decimal]
}

// NewManualLedger creates an empty ledger of directly entered amounts.
func NewManualLedger() *Ledger { return newLedger("amount") }

// NewPositionLedger creates an empty ledger of share counts.
func NewPositionLedger() *Ledger { return newLedger("quantity") }

func newLedger(source string) *Ledger {
	return &Ledger{
		source: source,
		series: make(map[AssetID]*History[decimal.Decimal]),
	}
}

// Source returns the kind of values the ledger holds, "amount" or "quantity".
func (l *Ledger) Source() string { return l.source }

// Record upserts the observation for (id, on): a second write for the same
// key replaces the first, never duplicates it. Negative values are rejected.
func (l *Ledger) Record(id AssetID, on Date, value decimal.Decimal) error {
	if value.IsNegative() {
		return validationErrorf("negative %s %s for asset %q on %s", l.source, value, id, on)
	}
	h, ok := l.series[id]
	if !ok {
		h = &History[decimal.Decimal]{}
		l.series[id] = h
	}
	h.Append(on, value)
	return nil
}

// append adds an observation and rejects duplicate (asset, day) keys. It is
// the decoding path: data files are supposed to be already deduplicated, a
// duplicate there makes "last value" ambiguous and is a fatal contract
// violation rather than a silent pick.
func (l *Ledger) append(o Observation) error {
	if h, ok := l.series[o.Asset]; ok {
		if _, exists := h.Get(o.On); exists {
			return validationErrorf("duplicate %s for asset %q on %s", l.source, o.Asset, o.On)
		}
	}
	return l.Record(o.Asset, o.On, o.Value)
}

// ValueAsOf returns the value of the latest observation at or before 'on'
// for that asset. The boolean is false when no such observation exists:
// before an asset's first observation there is no value at all, not a zero.
func (l *Ledger) ValueAsOf(id AssetID, on Date) (decimal.Decimal, bool) {
	h, ok := l.series[id]
	if !ok {
		return decimal.Decimal{}, false
	}
	return h.ValueAsOf(on)
}

// History returns the asset's observation series, or nil when the ledger
// has none for it. The returned history is shared, callers must not write
// through it.
func (l *Ledger) History(id AssetID) *History[decimal.Decimal] { return l.series[id] }

// DeleteAsset removes all observations for that asset. Irreversible: a
// later reconstruction will not see the asset at any date, past ones
// included.
func (l *Ledger) DeleteAsset(id AssetID) {
	delete(l.series, id)
}

// Len returns the total number of observations across all assets.
func (l *Ledger) Len() int {
	n := 0
	for _, h := range l.series {
		n += h.Len()
	}
	return n
}

// Assets returns the sorted ids of all assets with at least one observation.
func (l *Ledger) Assets() []AssetID {
	ids := slices.Collect(maps.Keys(l.series))
	slices.Sort(ids)
	return ids
}

// FirstDate returns the earliest observation date across all assets, and
// false when the ledger is empty.
func (l *Ledger) FirstDate() (Date, bool) {
	var first Date
	found := false
	for _, h := range l.series {
		if day, ok := h.First(); ok && (!found || day.Before(first)) {
			first, found = day, true
		}
	}
	return first, found
}

// Dates returns the sorted distinct dates carrying at least one observation.
func (l *Ledger) Dates() []Date {
	histories := make([]*History[decimal.Decimal], 0, len(l.series))
	for _, h := range l.series {
		histories = append(histories, h)
	}
	return slices.Collect(Iterate(histories...))
}

// Observations iterates over all observations sorted by date then asset id,
// the canonical order of the persisted files.
func (l *Ledger) Observations() iter.Seq[Observation] {
	return func(yield func(Observation) bool) {
		ids := l.Assets()
		for _, day := range l.Dates() {
			for _, id := range ids {
				if v, ok := l.series[id].Get(day); ok {
					if !yield(Observation{Asset: id, On: day, Value: v}) {
						return
					}
				}
			}
		}
	}
}
