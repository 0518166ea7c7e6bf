package types

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Money is an exact decimal amount that marshals as a plain JSON number,
// matching the catalog and ledger document formats.
type Money struct {
	dec decimal.Decimal
}

func NewMoney(d decimal.Decimal) Money {
	return Money{dec: d}
}

func MoneyFromFloat(f float64) Money {
	return Money{dec: decimal.NewFromFloat(f)}
}

func MoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Money{}, fmt.Errorf("parsing amount %q: %w", s, err)
	}
	return Money{dec: d}, nil
}

func ZeroMoney() Money {
	return Money{}
}

func (m Money) Add(other Money) Money {
	return Money{dec: m.dec.Add(other.dec)}
}

func (m Money) MulInt(n int) Money {
	return Money{dec: m.dec.Mul(decimal.NewFromInt(int64(n)))}
}

func (m Money) IsNegative() bool {
	return m.dec.IsNegative()
}

func (m Money) GreaterThan(other Money) bool {
	return m.dec.GreaterThan(other.dec)
}

func (m Money) Equal(other Money) bool {
	return m.dec.Equal(other.dec)
}

// String renders the amount with two decimal places for spoken confirmations.
func (m Money) String() string {
	return m.dec.StringFixed(2)
}

func (m Money) Decimal() decimal.Decimal {
	return m.dec
}

func (m Money) MarshalJSON() ([]byte, error) {
	// Unquoted so the on-disk documents carry numbers, not strings.
	return []byte(m.dec.String()), nil
}

func (m *Money) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if raw == "" || raw == "null" {
		m.dec = decimal.Decimal{}
		return nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return fmt.Errorf("parsing money value %q: %w", raw, err)
	}
	m.dec = d
	return nil
}
