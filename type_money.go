package fundtrack

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value in a given currency.
// 13F disclosures report in USD, but the type does not assume it.
type Money struct {
	value *money.Money
}

// NewMoney creates a new Money instance from a decimal.Decimal.
func NewMoney(amount decimal.Decimal, currency string) Money {
	// Find the currency first.
	cur := money.GetCurrency(currency)
	if cur == nil {
		return Money{}
	}

	factor, _ := decimal.NewFromInt(10).PowInt32(int32(cur.Fraction))
	amount = amount.Mul(factor)
	return Money{money.New(amount.IntPart(), currency)}
}

// NewMoneyFromFloat creates a new Money instance from a float64.
func NewMoneyFromFloat(amount float64, currency string) Money {
	return NewMoney(decimal.NewFromFloat(amount), currency)
}

// USD creates a new Money instance in US dollars.
func USD(amount decimal.Decimal) Money { return NewMoney(amount, money.USD) }

// String returns the display representation of the money value.
func (m Money) String() string {
	if m.value == nil {
		return ""
	}
	return m.value.Display()
}

func (m Money) Equal(other Money) bool {
	if m.value == nil || other.value == nil {
		return m.value == other.value
	}
	eq, err := m.value.Equals(other.value)
	return err == nil && eq
}

func (m Money) IsZero() bool { return m.value == nil || m.value.IsZero() }

// AsFloat returns the amount in major units, for charting surfaces.
func (m Money) AsFloat() float64 {
	if m.value == nil {
		return 0
	}
	return m.value.AsMajorUnits()
}
