package fundtrack

import "github.com/shopspring/decimal"

// Quantity is a share or principal count. Disclosures report whole shares but
// principal amounts can be fractional, so it is kept as an exact decimal.
type Quantity struct {
	value decimal.Decimal
}

// NewQuantity creates a new Quantity from a decimal.Decimal.
func NewQuantity(value decimal.Decimal) Quantity {
	return Quantity{value: value}
}

// NewQuantityFromFloat creates a new Quantity from a float64.
func NewQuantityFromFloat(val float64) Quantity {
	return NewQuantity(decimal.NewFromFloat(val))
}

func (q Quantity) Equal(p Quantity) bool       { return q.value.Equal(p.value) }
func (q Quantity) LessThan(p Quantity) bool    { return q.value.LessThan(p.value) }
func (q Quantity) GreaterThan(p Quantity) bool { return q.value.GreaterThan(p.value) }
func (q Quantity) Add(p Quantity) Quantity     { return Quantity{value: q.value.Add(p.value)} }
func (q Quantity) IsZero() bool                { return q.value.IsZero() }
func (q Quantity) String() string              { return q.value.String() }

// AsFloat returns the quantity as a float64, for charting surfaces that
// cannot consume exact decimals.
func (q Quantity) AsFloat() float64 { return q.value.InexactFloat64() }
