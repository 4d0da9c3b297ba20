package dto

import (
	"github.com/SscSPs/property_ledger/internal/core/domain"
)

// ListAccountsQuery filters the chart of accounts. Both fields are optional.
type ListAccountsQuery struct {
	Type    string `form:"type" binding:"omitempty,accounttype"`
	SubType string `form:"subType"`
}

// AccountResponse defines the data returned for an account.
// Mirrors domain.Account.
type AccountResponse struct {
	Code        string                `json:"code"`
	Name        string                `json:"name"`
	Type        domain.AccountType    `json:"type"`
	SubType     domain.AccountSubType `json:"subType"`
	Description string                `json:"description"`
	IsActive    bool                  `json:"isActive"`
}

// ListAccountsResponse wraps a list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc domain.Account) AccountResponse {
	return AccountResponse{
		Code:        acc.Code,
		Name:        acc.Name,
		Type:        acc.Type,
		SubType:     acc.SubType,
		Description: acc.Description,
		IsActive:    acc.IsActive,
	}
}

// ToListAccountsResponse converts a slice of accounts, always yielding a non-nil list.
func ToListAccountsResponse(accounts []domain.Account) ListAccountsResponse {
	resp := ListAccountsResponse{Accounts: make([]AccountResponse, len(accounts))}
	for i, acc := range accounts {
		resp.Accounts[i] = ToAccountResponse(acc)
	}
	return resp
}
