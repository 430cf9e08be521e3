package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type Money struct {
	Amount   decimal.Decimal
	Currency currency.Unit
}

// SumMoney adds up amounts sharing one currency. An empty input sums to zero EUR.
func SumMoney(values []Money) (Money, error) {
	if len(values) == 0 {
		return Money{Amount: decimal.Zero, Currency: currency.EUR}, nil
	}

	total := Money{Amount: decimal.Zero, Currency: values[0].Currency}
	for _, v := range values {
		if v.Currency != total.Currency {
			return Money{}, fmt.Errorf("currency mismatch: %s and %s", total.Currency, v.Currency)
		}
		total.Amount = total.Amount.Add(v.Amount)
	}

	return total, nil
}
