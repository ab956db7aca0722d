package patrimoine

import (
	"errors"
	"fmt"
	"iter"
	"slices"

	"github.com/google/uuid"
)

// Registry holds the current metadata of all assets, in insertion order.
//
// It owns no history: recording amounts or quantities over time is the
// ledgers' job, the registry only knows what exists now.
type Registry struct {
	scheme Scheme
	assets []Asset
	index  map[AssetID]int
}

// NewRegistry creates an empty registry validating assets against the scheme.
func NewRegistry(scheme Scheme) *Registry {
	return &Registry{
		scheme: scheme,
		assets: make([]Asset, 0),
		index:  make(map[AssetID]int),
	}
}

// Scheme returns the category scheme of the registry.
func (r *Registry) Scheme() Scheme { return r.scheme }

// NewManualAsset creates a manual asset with a fresh id, ready to Add.
func NewManualAsset(name string, category Category) Asset {
	return Asset{
		ID:       AssetID(uuid.NewString()),
		Name:     name,
		Category: category,
		Mode:     Manual,
	}
}

// NewQuotedAsset creates a quoted asset with a fresh id, ready to Add.
func NewQuotedAsset(name string, category Category, ticker string) Asset {
	return Asset{
		ID:       AssetID(uuid.NewString()),
		Name:     name,
		Category: category,
		Mode:     Quoted,
		Ticker:   ticker,
	}
}

// validate checks an asset against the registry's scheme.
func (r *Registry) validate(a Asset) error {
	if a.ID == "" {
		return validationErrorf("asset has no id")
	}
	if a.Name == "" {
		return validationErrorf("asset %q has no name", a.ID)
	}
	if !r.scheme.Has(a.Category) {
		return validationErrorf("asset %q has unknown category %q", a.Name, a.Category)
	}
	if want := r.scheme.ModeOf(a.Category); a.Mode != want {
		return validationErrorf("asset %q in category %q must be %s, got %s", a.Name, a.Category, want, a.Mode)
	}
	if a.Mode == Quoted && a.Ticker == "" {
		return validationErrorf("quoted asset %q has no ticker", a.Name)
	}
	if a.Mode == Manual && a.Ticker != "" {
		return validationErrorf("manual asset %q must not have a ticker, got %q", a.Name, a.Ticker)
	}
	return nil
}

// Add appends a new asset to the registry.
func (r *Registry) Add(a Asset) error {
	if err := r.validate(a); err != nil {
		return err
	}
	if _, exists := r.index[a.ID]; exists {
		return validationErrorf("asset id %q already exists", a.ID)
	}
	r.index[a.ID] = len(r.assets)
	r.assets = append(r.assets, a)
	return nil
}

// Get returns the asset with that id, and false if unknown.
func (r *Registry) Get(id AssetID) (Asset, bool) {
	i, ok := r.index[id]
	if !ok {
		return Asset{}, false
	}
	return r.assets[i], true
}

// Update replaces the stored metadata of an existing asset, keeping its
// position in the listing order.
func (r *Registry) Update(a Asset) error {
	i, ok := r.index[a.ID]
	if !ok {
		return fmt.Errorf("unknown asset id %q", a.ID)
	}
	if err := r.validate(a); err != nil {
		return err
	}
	r.assets[i] = a
	return nil
}

// Remove deletes an asset from the registry. It returns false if the id is
// unknown. Removal is irreversible; the caller is expected to also purge
// the asset's rows from both ledgers, so that a later reconstruction no
// longer sees the asset at any date, past ones included.
func (r *Registry) Remove(id AssetID) bool {
	i, ok := r.index[id]
	if !ok {
		return false
	}
	r.assets = append(r.assets[:i], r.assets[i+1:]...)
	delete(r.index, id)
	// reindex the tail
	for j := i; j < len(r.assets); j++ {
		r.index[r.assets[j].ID] = j
	}
	return true
}

// Len returns the number of assets.
func (r *Registry) Len() int { return len(r.assets) }

// Assets iterates over all assets in insertion order.
func (r *Registry) Assets() iter.Seq[Asset] {
	return func(yield func(Asset) bool) {
		for _, a := range r.assets {
			if !yield(a) {
				return
			}
		}
	}
}

// Tickers returns the sorted distinct tickers of all quoted assets.
func (r *Registry) Tickers() []string {
	seen := make(map[string]struct{})
	tickers := make([]string, 0)
	for _, a := range r.assets {
		if a.Mode != Quoted || a.Ticker == "" {
			continue
		}
		if _, ok := seen[a.Ticker]; ok {
			continue
		}
		seen[a.Ticker] = struct{}{}
		tickers = append(tickers, a.Ticker)
	}
	slices.Sort(tickers)
	return tickers
}

// RefreshQuotes updates the current Amount of every quoted asset from the
// latest price in the table, rounded to cents. Tickers absent from the
// table leave the asset untouched and are reported in the joined error.
func (r *Registry) RefreshQuotes(quotes *QuoteTable) error {
	var errs error
	for i, a := range r.assets {
		if a.Mode != Quoted {
			continue
		}
		_, price, ok := quotes.Latest(a.Ticker)
		if !ok {
			errs = errors.Join(errs, fmt.Errorf("no quote for %s (%s)", a.Ticker, a.Name))
			continue
		}
		r.assets[i].Amount = price.Mul(a.Quantity).Round(2)
	}
	return errs
}
