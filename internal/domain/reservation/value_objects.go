package reservation

import (
	"fmt"
	"math"
)

// Money is an exact amount in minor currency units. All internal arithmetic
// happens in cents; decimal currency units exist only at the API boundary
// (x100 on the way in, /100 on the way out).
type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

func NewMoneyFromDecimal(units float64) Money {
	return Money{cents: int64(math.Round(units * 100))}
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Decimal() float64 {
	return float64(m.cents) / 100.0
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) Sub(other Money) Money {
	return Money{cents: m.cents - other.cents}
}

func (m Money) IsZero() bool {
	return m.cents == 0
}

func (m Money) IsNegative() bool {
	return m.cents < 0
}

// Percent returns the given percentage of m, rounded to the nearest cent.
func (m Money) Percent(pct float64) Money {
	return Money{cents: int64(math.Round(float64(m.cents) * pct / 100.0))}
}

func (m Money) String() string {
	return fmt.Sprintf("%.2f", m.Decimal())
}
