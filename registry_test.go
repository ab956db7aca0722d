package patrimoine

import (
	"errors"
	"slices"
	"strings"
	"testing"
)

func testRegistry(t *testing.T, assets ...Asset) *Registry {
	t.Helper()
	r := NewRegistry(DefaultScheme())
	for _, a := range assets {
		if err := r.Add(a); err != nil {
			t.Fatalf("Add(%q): %v", a.Name, err)
		}
	}
	return r
}

func manualAsset(id, name string, category Category) Asset {
	return Asset{ID: AssetID(id), Name: name, Category: category, Mode: Manual}
}

func quotedAsset(id, name string, category Category, ticker string) Asset {
	return Asset{ID: AssetID(id), Name: name, Category: category, Mode: Quoted, Ticker: ticker}
}

func TestRegistry_Add_Validates(t *testing.T) {
	testCases := []struct {
		name  string
		asset Asset
	}{
		{name: "no id", asset: Asset{Name: "Livret A", Category: "Livrets", Mode: Manual}},
		{name: "no name", asset: manualAsset("a", "", "Livrets")},
		{name: "unknown category", asset: manualAsset("a", "Livret A", "Obligations")},
		{name: "manual asset in quoted category", asset: manualAsset("a", "Apple", "Actions & Fonds")},
		{name: "quoted asset in manual category", asset: quotedAsset("a", "Livret A", "Livrets", "AAPL")},
		{name: "quoted asset without ticker", asset: quotedAsset("a", "Apple", "Actions & Fonds", "")},
		{name: "manual asset with ticker", asset: Asset{ID: "a", Name: "Livret A", Category: "Livrets", Mode: Manual, Ticker: "AAPL"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := NewRegistry(DefaultScheme())
			if err := r.Add(tc.asset); !errors.Is(err, ErrValidation) {
				t.Errorf("Add() error = %v, want ErrValidation", err)
			}
		})
	}
}

func TestRegistry_Add_RejectsDuplicateID(t *testing.T) {
	r := testRegistry(t, manualAsset("a", "Livret A", "Livrets"))
	err := r.Add(manualAsset("a", "PEL", "Livrets"))
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("Add(duplicate id) error = %v, want ErrValidation", err)
	}
	if r.Len() != 1 {
		t.Errorf("Len() = %d, want 1", r.Len())
	}
}

func TestRegistry_Update(t *testing.T) {
	r := testRegistry(t, manualAsset("a", "Livret A", "Livrets"))

	a, _ := r.Get("a")
	a.Amount = d("9500")
	if err := r.Update(a); err != nil {
		t.Fatal(err)
	}
	got, _ := r.Get("a")
	if !got.Amount.Equal(d("9500")) {
		t.Errorf("Amount after update = %s, want 9500", got.Amount)
	}

	if err := r.Update(manualAsset("ghost", "Ghost", "Livrets")); err == nil {
		t.Error("Update(unknown id) should fail")
	}
}

func TestRegistry_Remove_KeepsOrder(t *testing.T) {
	r := testRegistry(t,
		manualAsset("a", "Livret A", "Livrets"),
		manualAsset("b", "PEL", "Livrets"),
		manualAsset("c", "Appartement", "Immobilier"),
	)

	if !r.Remove("b") {
		t.Fatal("Remove(b) = false, want true")
	}
	if r.Remove("b") {
		t.Fatal("second Remove(b) = true, want false")
	}

	var names []string
	for a := range r.Assets() {
		names = append(names, a.Name)
	}
	if !slices.Equal(names, []string{"Livret A", "Appartement"}) {
		t.Errorf("Assets() after remove = %v", names)
	}
	if got, ok := r.Get("c"); !ok || got.Name != "Appartement" {
		t.Errorf("Get(c) = %v, %v after reindex", got, ok)
	}
}

func TestRegistry_Tickers(t *testing.T) {
	r := testRegistry(t,
		quotedAsset("msft", "Microsoft", "Actions & Fonds", "MSFT"),
		quotedAsset("aapl", "Apple", "Actions & Fonds", "AAPL"),
		quotedAsset("aapl2", "Apple PEA", "Actions & Fonds", "AAPL"), // same ticker twice
		manualAsset("livret", "Livret A", "Livrets"),
	)
	if got := r.Tickers(); !slices.Equal(got, []string{"AAPL", "MSFT"}) {
		t.Errorf("Tickers() = %v, want [AAPL MSFT]", got)
	}
}

func TestRegistry_RefreshQuotes(t *testing.T) {
	apple := quotedAsset("aapl", "Apple", "Actions & Fonds", "AAPL")
	apple.Quantity = d("10")
	bitcoin := quotedAsset("btc", "Bitcoin", "Crypto", "BTC-EUR")
	bitcoin.Quantity = d("0.5")
	livret := manualAsset("livret", "Livret A", "Livrets")
	livret.Amount = d("9000")
	r := testRegistry(t, apple, bitcoin, livret)

	quotes := NewQuoteTable()
	quotes.Add("AAPL", MustParse("2024-01-05"), d("150.123"))

	err := r.RefreshQuotes(quotes)
	if err == nil || !strings.Contains(err.Error(), "BTC-EUR") {
		t.Fatalf("RefreshQuotes() error = %v, want a missing BTC-EUR quote", err)
	}

	got, _ := r.Get("aapl")
	if !got.Amount.Equal(d("1501.23")) {
		t.Errorf("Apple amount = %s, want 1501.23", got.Amount)
	}
	// the failed ticker and the manual asset are untouched
	if got, _ := r.Get("btc"); !got.Amount.IsZero() {
		t.Errorf("Bitcoin amount = %s, want untouched zero", got.Amount)
	}
	if got, _ := r.Get("livret"); !got.Amount.Equal(d("9000")) {
		t.Errorf("Livret amount = %s, want untouched 9000", got.Amount)
	}
}
