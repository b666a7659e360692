package capgains

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// PricePlaces is the number of fractional digits a unit price is normalized
// to when parsed from the ledger.
const PricePlaces = 4

// CashPlaces is the number of fractional digits of a realized currency
// amount (cost basis, proceeds, gain).
const CashPlaces = 2

// Money represents a monetary value.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M creates a Money from any supported numeric type and a currency code.
func M[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// currency returns the money's currency metadata.
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String returns the money value formatted with its currency symbol.
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// SignedString returns the formatted money value with an explicit sign.
// Zero is represented as "-".
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

// StringFixed returns the plain decimal representation with exactly
// CashPlaces fractional digits, rounded half away from zero. This is the
// form used in CSV report rows.
func (m Money) StringFixed() string { return m.value.StringFixed(CashPlaces) }

// Plain returns the bare decimal representation, without currency
// formatting and without padding or trimming fractional digits.
func (m Money) Plain() string { return m.value.String() }

func (m Money) Currency() string      { return m.cur }
func (m Money) Equal(n Money) bool    { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool          { return m.value.IsZero() }
func (m Money) IsPositive() bool      { return m.value.IsPositive() }
func (m Money) IsNegative() bool      { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool { return m.value.LessThan(n.value) }
func (m Money) Neg() Money            { return Money{value: m.value.Neg(), cur: m.cur} }
func (m Money) Abs() Money            { return Money{value: m.value.Abs(), cur: m.cur} }
func (m Money) Mul(q Quantity) Money  { return Money{value: m.value.Mul(q.value), cur: m.cur} }

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// Round returns the money value rounded to the given number of fractional
// digits, half away from zero.
func (m Money) Round(places int32) Money {
	return Money{value: m.value.Round(places), cur: m.cur}
}

// makes the "" currency totally weak.
func cur(a, b Money) string {
	if a.cur == "" {
		return b.cur
	}
	if b.cur == "" {
		return a.cur
	}
	if a.cur != b.cur {
		panic("currency mismatch " + a.cur + "!=" + b.cur)
	}
	return a.cur
}
