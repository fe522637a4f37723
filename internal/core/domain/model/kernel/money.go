package kernel

import (
	"fmt"
	"strings"

	"ordertracking/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// MoneyScale is the number of fractional digits every amount is stored with.
const MoneyScale = 2

// MaxMoney is the largest unit amount, the ceiling of a NUMERIC(12,2) price column.
var MaxMoney = decimal.RequireFromString("9999999999.99")

// Money is a non-negative amount in the single store currency, backed by a
// fixed-point decimal so sums and products never drift the way floats do.
//
// The zero value is a valid amount of 0.00.
//
// Example:
//
//	price, _ := kernel.MoneyFromString("9.99")
//	subtotal := price.MulQuantity(2)
//	fmt.Println(subtotal)          // 19.98
//	fmt.Println(subtotal.Display()) // $19.98
type Money struct {
	amount decimal.Decimal
}

// NewMoney accepts amounts between 0 and MaxMoney with at most MoneyScale
// fractional digits. Sums and products built from valid amounts may exceed
// MaxMoney; aggregates that store them bound them themselves.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsOutOfRangeError("amount", amount.String(), "0", MaxMoney.StringFixed(MoneyScale))
	}
	if amount.GreaterThan(MaxMoney) {
		return Money{}, errs.NewValueIsOutOfRangeError("amount", amount.String(), "0", MaxMoney.StringFixed(MoneyScale))
	}
	if !amount.Equal(amount.Round(MoneyScale)) {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%s has more than %d decimal places", amount.String(), MoneyScale),
		)
	}
	return Money{amount: amount}, nil
}

// MoneyFromString parses a decimal literal such as "19.99".
func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoney(amount)
}

// MustMoney is NewMoney for literals known to be valid, such as seed data.
func MustMoney(s string) Money {
	m, err := MoneyFromString(s)
	if err != nil {
		panic(err)
	}
	return m
}

// Decimal exposes the amount for persistence.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// MulQuantity returns the line subtotal for quantity units priced at m.
func (m Money) MulQuantity(quantity int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity)))}
}

func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String renders the amount with exactly MoneyScale decimals, e.g. "39.97".
func (m Money) String() string {
	return m.amount.StringFixed(MoneyScale)
}

// Display renders the amount for people, e.g. "$1,234.50".
func (m Money) Display() string {
	fixed := m.amount.StringFixed(MoneyScale)
	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign, fixed = "-", fixed[1:]
	}

	whole, frac, _ := strings.Cut(fixed, ".")
	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return sign + "$" + b.String() + "." + frac
}
