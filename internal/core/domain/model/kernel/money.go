package kernel

import (
	"fmt"

	"marketplace/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError("Money must be created via NewMoney or MoneyFromString")

// MaxMoney is the largest amount a numeric(10,2) column holds.
var MaxMoney = decimal.RequireFromString("99999999.99")

const moneyScale = 2

// Money is a non-negative amount with two decimal places.
// Prices and order totals use it so arithmetic never goes through float64.
type Money struct {
	amount        decimal.Decimal
	isConstructed bool
}

func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() || amount.GreaterThan(MaxMoney) {
		return Money{}, errs.NewValueIsOutOfRangeError("amount", amount.String(), 0, MaxMoney.StringFixed(moneyScale))
	}
	if !amount.Equal(amount.Round(moneyScale)) {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%s has more than %d decimal places", amount.String(), moneyScale))
	}

	return Money{
		amount:        amount.Round(moneyScale),
		isConstructed: true,
	}, nil
}

func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoney(amount)
}

// ZeroMoney returns a constructed amount of 0.00.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero, isConstructed: true}
}

// Multiply returns the amount times quantity. Quantity must be non-negative.
func (m Money) Multiply(quantity int) (Money, error) {
	if quantity < 0 {
		return Money{}, errs.NewValueIsOutOfRangeError("quantity", quantity, 0, "unbounded")
	}
	return NewMoney(m.amount.Mul(decimal.NewFromInt(int64(quantity))))
}

func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// String formats the amount with exactly two decimal places, e.g. "12.50".
func (m Money) String() string {
	return m.amount.StringFixed(moneyScale)
}

func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

func (m Money) Validate() error {
	if !m.isConstructed {
		return ErrMoneyIsNotConstructed
	}
	return nil
}
