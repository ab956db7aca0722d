package patrimoine

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// ReportingCurrency is the currency all amounts are assumed to be in.
// Multi-currency conversion is out of scope: observations, quotes and
// series all share this single currency.
const ReportingCurrency = "EUR"

// Money represents a monetary value for display purposes. The
// reconstruction math itself stays on bare decimals; Money only exists so
// reports and the CLI format amounts consistently.
type Money struct {
	value decimal.Decimal
	cur   string
}

// M wraps a decimal amount in the given currency.
func M(value decimal.Decimal, currency string) Money {
	return Money{value: value, cur: currency}
}

// EUR wraps a decimal amount in the reporting currency.
func EUR(value decimal.Decimal) Money { return M(value, ReportingCurrency) }

// currency returns the money's currency.
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String returns the amount formatted with its currency symbol and
// grouping, like "€9,000.00".
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

func (m Money) Currency() string  { return m.cur }
func (m Money) IsZero() bool      { return m.value.IsZero() }
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: m.cur} }
func (m Money) Decimal() decimal.Decimal { return m.value }
