package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

const DefaultCurrency = "EUR"

type Money struct {
	Amount   decimal.Decimal
	Currency string
}

func NewMoney(amount decimal.Decimal, currency string) (Money, error) {
	if amount.IsNegative() {
		return Money{}, ErrNegativeAmount
	}

	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		currency = DefaultCurrency
	}

	return Money{Amount: amount, Currency: currency}, nil
}

// FormattedAmount renders the amount with exactly two fraction digits.
func (m Money) FormattedAmount() string {
	return m.Amount.StringFixed(2)
}
