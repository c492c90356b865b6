package cardwise

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a USD monetary value with exact arithmetic.
//
// Perk values and annual fees are whole dollars in the catalog, but used-value
// accounting splits a perk value across claim periods, so fractional amounts
// appear and must not drift.
type Money struct {
	value decimal.Decimal
}

// USD returns the Money for a whole dollar amount.
func USD(dollars int64) Money { return Money{value: decimal.NewFromInt(dollars)} }

// currency returns the USD currency descriptor.
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, money.USD).Currency()
}

// String returns the formatted value, like "$1,234.00".
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Round(int32(cur.Fraction)).Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// Compact returns the formatted value without cents when the amount is a
// whole number of dollars, like "$300", and falls back to String otherwise.
func (m Money) Compact() string {
	if m.value.IsInteger() {
		cur := m.currency()
		f := cur.Formatter()
		f.Fraction = 0
		return f.Format(m.value.IntPart())
	}
	return m.String()
}

func (m Money) IsZero() bool       { return m.value.IsZero() }
func (m Money) IsPositive() bool   { return m.value.IsPositive() }
func (m Money) IsNegative() bool   { return m.value.IsNegative() }
func (m Money) Equal(n Money) bool { return m.value.Equal(n.value) }
func (m Money) Add(n Money) Money  { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money  { return Money{value: m.value.Sub(n.value)} }
func (m Money) Neg() Money         { return Money{value: m.value.Neg()} }
func (m Money) MulInt(n int) Money { return Money{value: m.value.Mul(decimal.NewFromInt(int64(n)))} }
func (m Money) DivInt(n int) Money { return Money{value: m.value.Div(decimal.NewFromInt(int64(n)))} }

// SignedString returns the value with an explicit sign, and "-" for zero.
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.Compact()
	}
	return "-" + m.Neg().Compact()
}
