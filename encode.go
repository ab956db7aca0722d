package patrimoine

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// The stores persist as JSONL: one asset or one observation per line, in a
// canonical order, so the files stay human-readable, git-friendly and diff
// cleanly after every write.

// jAsset is the persisted shape of an asset.
type jAsset struct {
	ID       AssetID         `json:"id"`
	Name     string          `json:"name"`
	Category Category        `json:"category"`
	Mode     string          `json:"mode"`
	Ticker   string          `json:"ticker,omitempty"`
	Quantity decimal.Decimal `json:"quantity,omitempty"`
	UnitCost decimal.Decimal `json:"unitCost,omitempty"`
	Amount   decimal.Decimal `json:"amount,omitempty"`
}

// jObservation is the persisted shape of a ledger row. Manual ledgers use
// the "amount" attribute, position ledgers "quantity"; the attribute name
// is the shape check between file and store.
type jObservation struct {
	Asset    AssetID          `json:"asset"`
	On       Date             `json:"on"`
	Amount   *decimal.Decimal `json:"amount,omitempty"`
	Quantity *decimal.Decimal `json:"quantity,omitempty"`
}

// EncodeRegistry writes the registry as JSONL, one asset per line in
// listing order.
func EncodeRegistry(w io.Writer, r *Registry) error {
	enc := json.NewEncoder(w)
	for a := range r.Assets() {
		j := jAsset{
			ID:       a.ID,
			Name:     a.Name,
			Category: a.Category,
			Mode:     a.Mode.String(),
			Ticker:   a.Ticker,
			Quantity: a.Quantity,
			UnitCost: a.UnitCost,
			Amount:   a.Amount,
		}
		if err := enc.Encode(j); err != nil {
			return fmt.Errorf("could not encode asset %q: %w", a.ID, err)
		}
	}
	return nil
}

// DecodeRegistry reads a JSONL stream of assets into a registry validated
// against the given scheme.
func DecodeRegistry(r io.Reader, scheme Scheme) (*Registry, error) {
	reg := NewRegistry(scheme)
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		bytes := scanner.Bytes()
		if len(bytes) == 0 {
			continue // Skip empty lines
		}
		var j jAsset
		if err := json.Unmarshal(bytes, &j); err != nil {
			return nil, fmt.Errorf("format error on line %d %q: %w", line, string(bytes), err)
		}
		mode, err := ParseMode(j.Mode)
		if err != nil {
			return nil, fmt.Errorf("format error on line %d: %w", line, err)
		}
		a := Asset{
			ID:       j.ID,
			Name:     j.Name,
			Category: j.Category,
			Mode:     mode,
			Ticker:   j.Ticker,
			Quantity: j.Quantity,
			UnitCost: j.UnitCost,
			Amount:   j.Amount,
		}
		if err := reg.Add(a); err != nil {
			return nil, fmt.Errorf("invalid asset on line %d: %w", line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return reg, nil
}

// EncodeLedger writes the ledger as JSONL, one observation per line sorted
// by date then asset id.
func EncodeLedger(w io.Writer, l *Ledger) error {
	enc := json.NewEncoder(w)
	for o := range l.Observations() {
		j := jObservation{Asset: o.Asset, On: o.On}
		value := o.Value
		switch l.Source() {
		case "quantity":
			j.Quantity = &value
		default:
			j.Amount = &value
		}
		if err := enc.Encode(j); err != nil {
			return fmt.Errorf("could not encode observation for %q on %s: %w", o.Asset, o.On, err)
		}
	}
	return nil
}

// DecodeManualLedger reads a JSONL stream of amount observations.
func DecodeManualLedger(r io.Reader) (*Ledger, error) {
	return decodeLedger(r, NewManualLedger())
}

// DecodePositionLedger reads a JSONL stream of quantity observations.
func DecodePositionLedger(r io.Reader) (*Ledger, error) {
	return decodeLedger(r, NewPositionLedger())
}

func decodeLedger(r io.Reader, l *Ledger) (*Ledger, error) {
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		bytes := scanner.Bytes()
		if len(bytes) == 0 {
			continue
		}
		var j jObservation
		if err := json.Unmarshal(bytes, &j); err != nil {
			return nil, fmt.Errorf("format error on line %d %q: %w", line, string(bytes), err)
		}
		var value *decimal.Decimal
		switch l.Source() {
		case "quantity":
			value = j.Quantity
		default:
			value = j.Amount
		}
		if value == nil {
			return nil, fmt.Errorf("format error on line %d: missing %q attribute", line, l.Source())
		}
		if err := l.append(Observation{Asset: j.Asset, On: j.On, Value: *value}); err != nil {
			return nil, fmt.Errorf("invalid observation on line %d: %w", line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return l, nil
}
