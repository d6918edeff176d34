// Package money provides currency-safe monetary values using integer minor
// units, wrapping go-money for arithmetic and shopspring/decimal for
// precision conversions.
package money

import (
	"encoding/json"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Currency codes used by the ledger (ISO-4217).
const (
	INR = "INR" // Indian Rupee
	USD = "USD" // US Dollar
	EUR = "EUR" // Euro
)

// Money represents a monetary value with currency. The zero value of *Money
// (nil) behaves as zero INR.
type Money struct {
	m *money.Money
}

// New creates a Money value from minor units (paise for INR).
func New(amountMinor int64, currencyCode string) *Money {
	return &Money{m: money.New(amountMinor, currencyCode)}
}

// FromDecimal creates Money from a decimal major-unit amount, rounding to
// the currency's minor unit.
func FromDecimal(amount decimal.Decimal, currencyCode string) *Money {
	currency := money.GetCurrency(currencyCode)
	if currency == nil {
		currency = money.GetCurrency(INR)
	}

	multiplier := decimal.New(1, int32(currency.Fraction))
	minor := amount.Mul(multiplier).Round(0).IntPart()

	return New(minor, currency.Code)
}

// Zero returns a zero value for the given currency.
func Zero(currencyCode string) *Money {
	return New(0, currencyCode)
}

// Amount returns the value in minor units.
func (m *Money) Amount() int64 {
	if m == nil || m.m == nil {
		return 0
	}
	return m.m.Amount()
}

// Currency returns the ISO-4217 currency code.
func (m *Money) Currency() string {
	if m == nil || m.m == nil {
		return INR
	}
	return m.m.Currency().Code
}

// IsPositive returns true if the amount is greater than zero.
func (m *Money) IsPositive() bool {
	return m != nil && m.m != nil && m.m.IsPositive()
}

// Add adds two values of the same currency.
func (m *Money) Add(other *Money) (*Money, error) {
	if m == nil || m.m == nil {
		return other, nil
	}
	if other == nil || other.m == nil {
		return m, nil
	}

	sum, err := m.m.Add(other.m)
	if err != nil {
		return nil, err
	}
	return &Money{m: sum}, nil
}

// ToDecimal converts to a major-unit decimal value.
func (m *Money) ToDecimal() decimal.Decimal {
	if m == nil || m.m == nil {
		return decimal.Zero
	}
	d := decimal.NewFromInt(m.m.Amount())
	divisor := decimal.New(1, int32(m.m.Currency().Fraction))
	return d.Div(divisor)
}

// Display returns a formatted string for display (e.g. "₹1,234.56").
func (m *Money) Display() string {
	if m == nil || m.m == nil {
		return money.New(0, INR).Display()
	}
	return m.m.Display()
}

// String returns the amount as a decimal string (e.g. "1234.56").
func (m *Money) String() string {
	return m.ToDecimal().String()
}

// MarshalJSON emits {"amount": minor, "currency": code, "display": s}.
func (m *Money) MarshalJSON() ([]byte, error) {
	if m == nil || m.m == nil {
		return json.Marshal(nil)
	}
	return json.Marshal(map[string]any{
		"amount":   m.Amount(),
		"currency": m.Currency(),
		"display":  m.Display(),
	})
}

// UnmarshalJSON accepts the shape emitted by MarshalJSON.
func (m *Money) UnmarshalJSON(data []byte) error {
	var v struct {
		Amount   int64  `json:"amount"`
		Currency string `json:"currency"`
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if v.Currency == "" {
		v.Currency = INR
	}
	m.m = money.New(v.Amount, v.Currency)
	return nil
}
