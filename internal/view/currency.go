package view

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var currencyPrinter = message.NewPrinter(language.AmericanEnglish)

// FormatCurrency renders a monetary amount with thousands separators and
// exactly two decimal places, rounding half-up.
func FormatCurrency(amount decimal.Decimal) string {
	rounded := amount.Round(2)
	f, _ := rounded.Float64()
	return currencyPrinter.Sprintf("%v", number.Decimal(f,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2)))
}

// RemainingBalance computes amountApproved minus the sum of spent amounts.
// It is defined only when the grant has an approved amount and at least one
// expense is recorded; otherwise ok is false and the balance must not be
// shown (an absent balance is not a zero balance). spent extracts the amount
// from an expense row; a missing amount counts as zero.
func RemainingBalance[T any](amountApproved *decimal.Decimal, expenses []T, spent func(T) decimal.Decimal) (decimal.Decimal, bool) {
	if amountApproved == nil || len(expenses) == 0 {
		return decimal.Decimal{}, false
	}

	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(spent(e))
	}

	return amountApproved.Sub(total), true
}
