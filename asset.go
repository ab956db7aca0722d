package patrimoine

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// AssetID is the stable, immutable identifier of an asset. It survives
// renames and category changes; ledgers key their observations on it.
type AssetID string

// Category is one label of the fixed category scheme,
// like "Livrets" or "Crypto".
type Category string

// Mode tells how an asset is valued.
type Mode int

const (
	// Manual assets are valued by directly entered amounts.
	Manual Mode = iota
	// Quoted assets are valued as share count times market price.
	Quoted
)

func (m Mode) String() string {
	switch m {
	case Manual:
		return "manual"
	case Quoted:
		return "quoted"
	default:
		return "unknown"
	}
}

// ParseMode parses a string into a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "manual":
		return Manual, nil
	case "quoted":
		return Quoted, nil
	default:
		return 0, fmt.Errorf("unknown mode: %q", s)
	}
}

// Asset is the current metadata of one asset in the registry.
//
// Amount is the latest known value of the asset: the last recorded amount
// for manual assets, price times quantity after a refresh for quoted ones.
// It is a convenience for the current-state views; the historical series
// are always reconstructed from the ledgers, never from this field.
type Asset struct {
	ID       AssetID
	Name     string
	Category Category
	Mode     Mode
	Ticker   string // present iff Mode is Quoted
	Quantity decimal.Decimal
	UnitCost decimal.Decimal // purchase price per share, quoted assets only
	Amount   decimal.Decimal
}

// Scheme is the fixed set of category labels and, among them, the subset
// whose assets are valued from market quotes. It is configuration: the
// reconstruction itself only trusts each asset's Mode, the scheme decides
// which modes are legal for which category.
type Scheme struct {
	categories []Category
	quoted     map[Category]bool
}

// NewScheme builds a scheme from the ordered category labels and the subset
// of them treated as quoted.
func NewScheme(categories []Category, quoted ...Category) Scheme {
	s := Scheme{
		categories: append([]Category(nil), categories...),
		quoted:     make(map[Category]bool, len(quoted)),
	}
	for _, c := range quoted {
		s.quoted[c] = true
	}
	return s
}

// DefaultScheme is the built-in scheme: stocks and crypto are quoted,
// savings accounts, real estate and euro funds are entered manually.
func DefaultScheme() Scheme {
	return NewScheme(
		[]Category{"Actions & Fonds", "Crypto", "Livrets", "Immobilier", "Fonds euros"},
		"Actions & Fonds", "Crypto",
	)
}

// Categories returns the scheme's labels in display order.
func (s Scheme) Categories() []Category { return s.categories }

// Has returns true if the category belongs to the scheme.
func (s Scheme) Has(c Category) bool {
	for _, known := range s.categories {
		if known == c {
			return true
		}
	}
	return false
}

// IsQuoted returns true if assets of that category are valued from quotes.
func (s Scheme) IsQuoted(c Category) bool { return s.quoted[c] }

// ModeOf returns the mode assets of that category must have.
func (s Scheme) ModeOf(c Category) Mode {
	if s.quoted[c] {
		return Quoted
	}
	return Manual
}
