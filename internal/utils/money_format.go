package utils

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is used when a record or request names no currency.
const DefaultCurrency = "USD"

// IsKnownCurrency reports whether code is an ISO 4217 code go-money can format.
func IsKnownCurrency(code string) bool {
	return money.GetCurrency(strings.ToUpper(code)) != nil
}

// FormatMoney renders amount for display in currency, rounded to the
// currency's minor unit. Example: 1250.5 in USD returns "$1,250.50".
// Unknown codes fall back to DefaultCurrency.
func FormatMoney(amount decimal.Decimal, currency string) string {
	code := strings.ToUpper(currency)
	if !IsKnownCurrency(code) {
		code = DefaultCurrency
	}
	cur := *money.New(0, code).Currency()
	minor := amount.Round(int32(cur.Fraction)).Shift(int32(cur.Fraction))
	return cur.Formatter().Format(minor.IntPart())
}

// FormatWithPrecision formats an amount with the given precision
// This is a convenience function when you only have the precision value
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.Round(int32(precision)).StringFixed(int32(precision))
}
