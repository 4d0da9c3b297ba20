package dto

import (
	"github.com/SscSPs/property_ledger/internal/utils"
	"github.com/shopspring/decimal"
)

// MoneyResponse pairs an exact amount with its display form.
type MoneyResponse struct {
	Amount  decimal.Decimal `json:"amount"`
	Display string          `json:"display"`
}

// NewMoneyResponse formats amount in currency.
func NewMoneyResponse(amount decimal.Decimal, currency string) MoneyResponse {
	return MoneyResponse{Amount: amount, Display: utils.FormatMoney(amount, currency)}
}
