package patrimoine

import (
	"slices"
	"testing"
)

func TestHistory_Append_SortsAndOverwrites(t *testing.T) {
	h := &History[int]{}
	h.Append(MustParse("2024-06-01"), 2)
	h.Append(MustParse("2024-01-01"), 1)
	h.Append(MustParse("2024-12-01"), 3)

	want := []Date{MustParse("2024-01-01"), MustParse("2024-06-01"), MustParse("2024-12-01")}
	if !slices.Equal(h.Days(), want) {
		t.Fatalf("Days() = %v, want %v", h.Days(), want)
	}

	// same day again replaces, never duplicates
	h.Append(MustParse("2024-06-01"), 20)
	if h.Len() != 3 {
		t.Fatalf("Len() = %d after overwrite, want 3", h.Len())
	}
	if v, ok := h.Get(MustParse("2024-06-01")); !ok || v != 20 {
		t.Errorf("Get() = %d, %v, want 20, true", v, ok)
	}
}

func TestHistory_ValueAsOf(t *testing.T) {
	h := &History[int]{}
	h.Append(MustParse("2024-01-01"), 1)
	h.Append(MustParse("2024-06-01"), 2)
	h.Append(MustParse("2024-12-01"), 3)

	testCases := []struct {
		name   string
		day    string
		want   int
		wantOk bool
	}{
		{name: "before first", day: "2023-12-31", wantOk: false},
		{name: "on first", day: "2024-01-01", want: 1, wantOk: true},
		{name: "between points carries last value", day: "2024-03-15", want: 1, wantOk: true},
		{name: "on a later point", day: "2024-06-01", want: 2, wantOk: true},
		{name: "after last", day: "2025-01-01", want: 3, wantOk: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := h.ValueAsOf(MustParse(tc.day))
			if ok != tc.wantOk {
				t.Fatalf("ValueAsOf(%s) ok = %v, want %v", tc.day, ok, tc.wantOk)
			}
			if ok && got != tc.want {
				t.Errorf("ValueAsOf(%s) = %d, want %d", tc.day, got, tc.want)
			}
		})
	}
}

// The scanner must agree with ValueAsOf on any ascending probe sequence.
func TestScanner_MatchesValueAsOf(t *testing.T) {
	h := &History[int]{}
	h.Append(MustParse("2024-01-01"), 1)
	h.Append(MustParse("2024-06-01"), 2)
	h.Append(MustParse("2024-12-01"), 3)

	probes := []string{
		"2023-11-01", "2023-12-31",
		"2024-01-01", "2024-01-02", "2024-05-31",
		"2024-06-01", "2024-11-30",
		"2024-12-01", "2025-06-01",
	}
	scan := h.Scan()
	for _, p := range probes {
		day := MustParse(p)
		want, wantOk := h.ValueAsOf(day)
		got, ok := scan.AsOf(day)
		if got != want || ok != wantOk {
			t.Errorf("AsOf(%s) = %d, %v, want %d, %v", day, got, ok, want, wantOk)
		}
	}
}

func TestScanner_RepeatedDay(t *testing.T) {
	h := &History[int]{}
	h.Append(MustParse("2024-01-01"), 1)

	scan := h.Scan()
	day := MustParse("2024-02-01")
	for i := 0; i < 3; i++ {
		if got, ok := scan.AsOf(day); !ok || got != 1 {
			t.Fatalf("AsOf(%s) call %d = %d, %v, want 1, true", day, i, got, ok)
		}
	}
}

func TestHistory_FirstLatest(t *testing.T) {
	h := &History[int]{}
	if _, ok := h.First(); ok {
		t.Error("First() on empty history should report false")
	}
	h.Append(MustParse("2024-06-01"), 2)
	h.Append(MustParse("2024-01-01"), 1)

	if first, ok := h.First(); !ok || first != MustParse("2024-01-01") {
		t.Errorf("First() = %s, %v", first, ok)
	}
	if day, v := h.Latest(); day != MustParse("2024-06-01") || v != 2 {
		t.Errorf("Latest() = %s, %d", day, v)
	}
}
