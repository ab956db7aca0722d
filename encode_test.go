package patrimoine

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestRegistry_EncodeDecodeRoundTrip(t *testing.T) {
	apple := quotedAsset("aapl", "Apple", "Actions & Fonds", "AAPL")
	apple.Quantity = d("10")
	apple.UnitCost = d("95.50")
	apple.Amount = d("1100")
	livret := manualAsset("livret", "Livret A", "Livrets")
	livret.Amount = d("9000")
	reg := testRegistry(t, livret, apple)

	var buf bytes.Buffer
	if err := EncodeRegistry(&buf, reg); err != nil {
		t.Fatal(err)
	}
	got, err := DecodeRegistry(&buf, DefaultScheme())
	if err != nil {
		t.Fatal(err)
	}

	if got.Len() != 2 {
		t.Fatalf("decoded %d assets, want 2", got.Len())
	}
	a, ok := got.Get("aapl")
	if !ok {
		t.Fatal("decoded registry misses aapl")
	}
	if a.Name != "Apple" || a.Mode != Quoted || a.Ticker != "AAPL" {
		t.Errorf("decoded asset = %+v", a)
	}
	if !a.Quantity.Equal(d("10")) || !a.UnitCost.Equal(d("95.50")) || !a.Amount.Equal(d("1100")) {
		t.Errorf("decoded numbers = %s, %s, %s", a.Quantity, a.UnitCost, a.Amount)
	}
}

func TestDecodeRegistry_RejectsInvalidAsset(t *testing.T) {
	in := `{"id":"a","name":"Apple","category":"Actions & Fonds","mode":"manual"}`
	_, err := DecodeRegistry(strings.NewReader(in), DefaultScheme())
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("error = %v, want ErrValidation", err)
	}
	if !strings.Contains(err.Error(), "line 1") {
		t.Errorf("error %q does not locate the faulty line", err)
	}
}

func TestLedger_EncodeDecodeRoundTrip(t *testing.T) {
	l := NewManualLedger()
	l.Record("livret", MustParse("2024-06-01"), d("9500"))
	l.Record("livret", MustParse("2024-01-01"), d("9000"))
	l.Record("appart", MustParse("2024-01-01"), d("195000"))

	var buf bytes.Buffer
	if err := EncodeLedger(&buf, l); err != nil {
		t.Fatal(err)
	}
	got, err := DecodeManualLedger(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatal(err)
	}

	if got.Len() != 3 {
		t.Fatalf("decoded %d observations, want 3", got.Len())
	}
	if v, ok := got.ValueAsOf("livret", MustParse("2024-03-15")); !ok || !v.Equal(d("9000")) {
		t.Errorf("ValueAsOf(livret) = %s, %v, want 9000", v, ok)
	}

	// a second encode of the decoded ledger is byte-identical: canonical order
	var again bytes.Buffer
	if err := EncodeLedger(&again, got); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(buf.Bytes(), again.Bytes()) {
		t.Errorf("re-encoding is not canonical:\n%s\nvs\n%s", buf.String(), again.String())
	}
}

func TestDecodeLedger_RejectsDuplicateRow(t *testing.T) {
	in := `{"asset":"livret","on":"2024-01-01","amount":9000}
{"asset":"livret","on":"2024-01-01","amount":9100}
`
	_, err := DecodeManualLedger(strings.NewReader(in))
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("error = %v, want ErrValidation", err)
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("error %q does not locate the duplicate line", err)
	}
}

func TestDecodeLedger_RejectsMissingAttribute(t *testing.T) {
	// an amount row fed to the position ledger decoder
	in := `{"asset":"aapl","on":"2024-01-01","amount":9000}`
	_, err := DecodePositionLedger(strings.NewReader(in))
	if err == nil || !strings.Contains(err.Error(), `"quantity"`) {
		t.Fatalf("error = %v, want a missing quantity attribute", err)
	}
}

func TestDecodeLedger_SkipsEmptyLines(t *testing.T) {
	in := `{"asset":"livret","on":"2024-01-01","amount":9000}

{"asset":"livret","on":"2024-06-01","amount":9500}
`
	l, err := DecodeManualLedger(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if l.Len() != 2 {
		t.Errorf("Len() = %d, want 2", l.Len())
	}
}

func TestEncodeLedger_PlainNumbers(t *testing.T) {
	l := NewManualLedger()
	l.Record("livret", MustParse("2024-01-01"), d("9000.50"))

	var buf bytes.Buffer
	if err := EncodeLedger(&buf, l); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), `"9000.5"`) {
		t.Errorf("amounts must encode as JSON numbers, got %s", buf.String())
	}
	if !strings.Contains(buf.String(), "9000.5") {
		t.Errorf("missing amount in %s", buf.String())
	}
}
