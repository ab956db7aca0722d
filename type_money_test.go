package patrimoine

import "testing"

func TestMoney_String(t *testing.T) {
	testCases := []struct {
		value string
		want  string
	}{
		{value: "9000", want: "€9,000.00"},
		{value: "0.5", want: "€0.50"},
		{value: "1234567.89", want: "€1,234,567.89"},
	}
	for _, tc := range testCases {
		if got := EUR(d(tc.value)).String(); got != tc.want {
			t.Errorf("EUR(%s) = %q, want %q", tc.value, got, tc.want)
		}
	}
}

func TestMoney_Add(t *testing.T) {
	sum := EUR(d("1.10")).Add(EUR(d("2.20")))
	if !sum.Decimal().Equal(d("3.30")) {
		t.Errorf("Add() = %s, want 3.30", sum.Decimal())
	}
	if sum.Currency() != ReportingCurrency {
		t.Errorf("Currency() = %q, want %q", sum.Currency(), ReportingCurrency)
	}
}
