package patrimoine

import (
	"errors"
	"slices"
	"testing"

	"github.com/shopspring/decimal"
)

func d(value string) decimal.Decimal { return decimal.RequireFromString(value) }

// A savings account observed three times over a year: between observations
// the last value carries forward, before the first one there is none.
func TestLedger_ValueAsOf(t *testing.T) {
	l := NewManualLedger()
	const livret = AssetID("livret-a")
	l.Record(livret, MustParse("2024-01-01"), d("9000"))
	l.Record(livret, MustParse("2024-06-01"), d("9500"))
	l.Record(livret, MustParse("2024-12-01"), d("10000"))

	testCases := []struct {
		name   string
		day    string
		want   string
		wantOk bool
	}{
		{name: "before first observation", day: "2023-12-31", wantOk: false},
		{name: "between observations", day: "2024-03-15", want: "9000", wantOk: true},
		{name: "on an observation day", day: "2024-06-01", want: "9500", wantOk: true},
		{name: "after the last observation", day: "2025-01-01", want: "10000", wantOk: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := l.ValueAsOf(livret, MustParse(tc.day))
			if ok != tc.wantOk {
				t.Fatalf("ValueAsOf(%s) ok = %v, want %v", tc.day, ok, tc.wantOk)
			}
			if ok && !got.Equal(d(tc.want)) {
				t.Errorf("ValueAsOf(%s) = %s, want %s", tc.day, got, tc.want)
			}
		})
	}
}

func TestLedger_ValueAsOf_UnknownAsset(t *testing.T) {
	l := NewManualLedger()
	if _, ok := l.ValueAsOf("ghost", MustParse("2024-01-01")); ok {
		t.Error("ValueAsOf on an asset without observations should report false")
	}
}

func TestLedger_Record_RejectsNegative(t *testing.T) {
	l := NewPositionLedger()
	err := l.Record("btc", MustParse("2024-01-01"), d("-0.5"))
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("Record(negative) error = %v, want ErrValidation", err)
	}
	if l.Len() != 0 {
		t.Errorf("Len() = %d after rejected record, want 0", l.Len())
	}
}

func TestLedger_Record_ZeroIsLegal(t *testing.T) {
	// a sold-out position is a real observation, distinct from no observation
	l := NewPositionLedger()
	if err := l.Record("btc", MustParse("2024-01-01"), d("0")); err != nil {
		t.Fatalf("Record(0) error = %v", err)
	}
	if v, ok := l.ValueAsOf("btc", MustParse("2024-06-01")); !ok || !v.IsZero() {
		t.Errorf("ValueAsOf() = %s, %v, want 0, true", v, ok)
	}
}

func TestLedger_Record_SameDayReplaces(t *testing.T) {
	l := NewManualLedger()
	l.Record("livret-a", MustParse("2024-01-01"), d("9000"))
	l.Record("livret-a", MustParse("2024-01-01"), d("9100"))

	if l.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", l.Len())
	}
	if v, _ := l.ValueAsOf("livret-a", MustParse("2024-01-01")); !v.Equal(d("9100")) {
		t.Errorf("ValueAsOf() = %s, want 9100", v)
	}
}

func TestLedger_append_RejectsDuplicateKey(t *testing.T) {
	l := NewManualLedger()
	o := Observation{Asset: "livret-a", On: MustParse("2024-01-01"), Value: d("9000")}
	if err := l.append(o); err != nil {
		t.Fatal(err)
	}
	o.Value = d("9100")
	if err := l.append(o); !errors.Is(err, ErrValidation) {
		t.Fatalf("append(duplicate key) error = %v, want ErrValidation", err)
	}
}

func TestLedger_DeleteAsset(t *testing.T) {
	l := NewManualLedger()
	l.Record("livret-a", MustParse("2024-01-01"), d("9000"))
	l.Record("pel", MustParse("2024-01-01"), d("20000"))

	l.DeleteAsset("livret-a")

	if _, ok := l.ValueAsOf("livret-a", MustParse("2025-01-01")); ok {
		t.Error("deleted asset should have no value at any date")
	}
	if got := l.Assets(); !slices.Equal(got, []AssetID{"pel"}) {
		t.Errorf("Assets() = %v, want [pel]", got)
	}
}

func TestLedger_DatesAndObservations(t *testing.T) {
	l := NewManualLedger()
	l.Record("b", MustParse("2024-02-01"), d("2"))
	l.Record("a", MustParse("2024-02-01"), d("1"))
	l.Record("a", MustParse("2024-01-01"), d("1"))

	wantDates := []Date{MustParse("2024-01-01"), MustParse("2024-02-01")}
	if got := l.Dates(); !slices.Equal(got, wantDates) {
		t.Fatalf("Dates() = %v, want %v", got, wantDates)
	}

	// canonical order: by date, then by asset id
	var got []Observation
	for o := range l.Observations() {
		got = append(got, o)
	}
	if len(got) != 3 {
		t.Fatalf("Observations() yielded %d rows, want 3", len(got))
	}
	wantKeys := []struct {
		id  AssetID
		day string
	}{
		{"a", "2024-01-01"},
		{"a", "2024-02-01"},
		{"b", "2024-02-01"},
	}
	for i, w := range wantKeys {
		if got[i].Asset != w.id || got[i].On != MustParse(w.day) {
			t.Errorf("Observations()[%d] = (%s, %s), want (%s, %s)", i, got[i].Asset, got[i].On, w.id, w.day)
		}
	}
}

func TestLedger_FirstDate(t *testing.T) {
	l := NewManualLedger()
	if _, ok := l.FirstDate(); ok {
		t.Error("FirstDate() on an empty ledger should report false")
	}
	l.Record("a", MustParse("2024-06-01"), d("1"))
	l.Record("b", MustParse("2024-01-01"), d("2"))
	if first, ok := l.FirstDate(); !ok || first != MustParse("2024-01-01") {
		t.Errorf("FirstDate() = %s, %v, want 2024-01-01, true", first, ok)
	}
}
