// Package chart holds the chart of accounts used by the property ledger:
// a flat table of accounts plus the category mappings that route business
// events to account codes. A Registry is immutable once built and may be
// shared between goroutines without locking.
package chart

import (
	"fmt"

	"github.com/SscSPs/property_ledger/internal/apperrors"
	"github.com/SscSPs/property_ledger/internal/core/domain"
)

// Account codes the journal entry factory and report generators post to directly.
const (
	CodeCash                    = "1000"
	CodeAccountsReceivable      = "1100"
	CodeSecurityDepositsHeld    = "1200"
	CodeAccountsPayable         = "2000"
	CodeSecurityDepositsPayable = "2100"
	CodePrepaidRent             = "2200"
	CodeRetainedEarnings        = "3200"
	CodeRentalIncome            = "4000"
	CodeLateFeeIncome           = "4100"
	CodeMiscellaneousExpenses   = "6900"
)

// defaultAccounts is the built-in table, in declaration order.
var defaultAccounts = []domain.Account{
	// Assets
	{Code: CodeCash, Name: "Cash", Type: domain.Asset, SubType: domain.CurrentAsset, Description: "Operating cash and bank balances", IsActive: true},
	{Code: "1050", Name: "Undeposited Funds", Type: domain.Asset, SubType: domain.CurrentAsset, Description: "Receipts not yet deposited", IsActive: false},
	{Code: CodeAccountsReceivable, Name: "Accounts Receivable", Type: domain.Asset, SubType: domain.CurrentAsset, Description: "Rent and fees billed but not collected", IsActive: true},
	{Code: CodeSecurityDepositsHeld, Name: "Security Deposits Held", Type: domain.Asset, SubType: domain.CurrentAsset, Description: "Tenant deposits held in trust", IsActive: true},
	{Code: "1300", Name: "Prepaid Expenses", Type: domain.Asset, SubType: domain.CurrentAsset, Description: "Expenses paid in advance", IsActive: true},
	{Code: "1500", Name: "Buildings", Type: domain.Asset, SubType: domain.FixedAsset, Description: "Rental buildings at cost", IsActive: true},
	{Code: "1600", Name: "Land", Type: domain.Asset, SubType: domain.FixedAsset, Description: "Land at cost", IsActive: true},

	// Liabilities
	{Code: CodeAccountsPayable, Name: "Accounts Payable", Type: domain.Liability, SubType: domain.CurrentLiability, Description: "Vendor bills approved but unpaid", IsActive: true},
	{Code: CodeSecurityDepositsPayable, Name: "Security Deposits Payable", Type: domain.Liability, SubType: domain.CurrentLiability, Description: "Obligation to return tenant deposits", IsActive: true},
	{Code: CodePrepaidRent, Name: "Prepaid Rent", Type: domain.Liability, SubType: domain.CurrentLiability, Description: "Rent collected for future periods", IsActive: true},
	{Code: "2300", Name: "Accrued Liabilities", Type: domain.Liability, SubType: domain.CurrentLiability, Description: "Expenses incurred but not yet billed", IsActive: true},
	{Code: "2500", Name: "Mortgage Payable", Type: domain.Liability, SubType: domain.LongTermLiability, Description: "Long-term property loans", IsActive: true},

	// Equity
	{Code: "3000", Name: "Owner's Equity", Type: domain.Equity, SubType: domain.OwnersEquity, Description: "Owner capital contributions", IsActive: true},
	{Code: "3100", Name: "Owner Distributions", Type: domain.Equity, SubType: domain.OwnersEquity, Description: "Withdrawals by the owner", IsActive: true},
	{Code: CodeRetainedEarnings, Name: "Retained Earnings", Type: domain.Equity, SubType: domain.RetainedEarnings, Description: "Accumulated net income", IsActive: true},

	// Revenue
	{Code: CodeRentalIncome, Name: "Rental Income", Type: domain.Revenue, SubType: domain.OperatingRevenue, Description: "Rent collected from tenants", IsActive: true},
	{Code: CodeLateFeeIncome, Name: "Late Fee Income", Type: domain.Revenue, SubType: domain.OperatingRevenue, Description: "Fees charged on late rent", IsActive: true},
	{Code: "4200", Name: "Parking Income", Type: domain.Revenue, SubType: domain.OperatingRevenue, Description: "Parking space rentals", IsActive: true},
	{Code: "4300", Name: "Application Fee Income", Type: domain.Revenue, SubType: domain.OperatingRevenue, Description: "Rental application fees", IsActive: true},
	{Code: "4900", Name: "Other Income", Type: domain.Revenue, SubType: domain.OtherRevenue, Description: "Revenue not classified elsewhere", IsActive: true},

	// Expenses
	{Code: "6000", Name: "Maintenance", Type: domain.ExpenseAccount, SubType: domain.OperatingExpense, Description: "Routine upkeep", IsActive: true},
	{Code: "6100", Name: "Repairs", Type: domain.ExpenseAccount, SubType: domain.OperatingExpense, Description: "Corrective repairs", IsActive: true},
	{Code: "6200", Name: "Utilities", Type: domain.ExpenseAccount, SubType: domain.OperatingExpense, Description: "Water, power, gas and waste", IsActive: true},
	{Code: "6300", Name: "Insurance", Type: domain.ExpenseAccount, SubType: domain.OperatingExpense, Description: "Property and liability insurance", IsActive: true},
	{Code: "6400", Name: "Property Taxes", Type: domain.ExpenseAccount, SubType: domain.OperatingExpense, Description: "Real estate taxes", IsActive: true},
	{Code: "6500", Name: "Cleaning", Type: domain.ExpenseAccount, SubType: domain.OperatingExpense, Description: "Cleaning and janitorial services", IsActive: true},
	{Code: "6600", Name: "Supplies", Type: domain.ExpenseAccount, SubType: domain.OperatingExpense, Description: "Consumable supplies", IsActive: true},
	{Code: "6700", Name: "Tenant Reimbursements", Type: domain.ExpenseAccount, SubType: domain.OperatingExpense, Description: "Amounts refunded to tenants", IsActive: true},
	{Code: "6800", Name: "Management Fees", Type: domain.ExpenseAccount, SubType: domain.AdministrativeCost, Description: "Property management fees", IsActive: true},
	{Code: CodeMiscellaneousExpenses, Name: "Miscellaneous Expenses", Type: domain.ExpenseAccount, SubType: domain.OtherExpense, Description: "Expenses not classified elsewhere", IsActive: true},
}

var defaultExpenseCategories = map[string]string{
	"maintenance":          "6000",
	"repairs":              "6100",
	"utilities":            "6200",
	"insurance":            "6300",
	"taxes":                "6400",
	"cleaning":             "6500",
	"supplies":             "6600",
	"tenant_reimbursement": "6700",
	"other":                CodeMiscellaneousExpenses,
}

var defaultPaymentTypes = map[string]string{
	"rent":        CodeRentalIncome,
	"late_fee":    CodeLateFeeIncome,
	"parking":     "4200",
	"application": "4300",
	"other":       "4900",
}

// Registry is an immutable chart of accounts with its category mappings.
type Registry struct {
	accounts          []domain.Account
	byCode            map[string]int
	expenseCategories map[string]string
	paymentTypes      map[string]string
}

// NewRegistry builds a Registry. Codes must be unique, types valid, and every
// mapping must point at a registered code. The fallback codes (Miscellaneous
// Expenses and Rental Income) must be present.
func NewRegistry(accounts []domain.Account, expenseCategories, paymentTypes map[string]string) (*Registry, error) {
	r := &Registry{
		accounts:          make([]domain.Account, len(accounts)),
		byCode:            make(map[string]int, len(accounts)),
		expenseCategories: make(map[string]string, len(expenseCategories)),
		paymentTypes:      make(map[string]string, len(paymentTypes)),
	}
	copy(r.accounts, accounts)

	for i, acc := range r.accounts {
		if acc.Code == "" {
			return nil, fmt.Errorf("%w: account at position %d has no code", apperrors.ErrValidation, i)
		}
		if !acc.Type.IsValid() {
			return nil, fmt.Errorf("%w: account %s has unknown type %q", apperrors.ErrValidation, acc.Code, acc.Type)
		}
		if _, dup := r.byCode[acc.Code]; dup {
			return nil, fmt.Errorf("%w: duplicate account code %s", apperrors.ErrValidation, acc.Code)
		}
		r.byCode[acc.Code] = i
	}

	for _, fallback := range []string{CodeMiscellaneousExpenses, CodeRentalIncome} {
		if _, ok := r.byCode[fallback]; !ok {
			return nil, fmt.Errorf("%w: fallback account %s missing from chart", apperrors.ErrValidation, fallback)
		}
	}

	for category, code := range expenseCategories {
		if _, ok := r.byCode[code]; !ok {
			return nil, fmt.Errorf("%w: expense category %q maps to unknown account %s", apperrors.ErrValidation, category, code)
		}
		r.expenseCategories[category] = code
	}
	for paymentType, code := range paymentTypes {
		if _, ok := r.byCode[code]; !ok {
			return nil, fmt.Errorf("%w: payment type %q maps to unknown account %s", apperrors.ErrValidation, paymentType, code)
		}
		r.paymentTypes[paymentType] = code
	}

	return r, nil
}

var defaultRegistry = mustNewRegistry(defaultAccounts, defaultExpenseCategories, defaultPaymentTypes)

func mustNewRegistry(accounts []domain.Account, expenseCategories, paymentTypes map[string]string) *Registry {
	r, err := NewRegistry(accounts, expenseCategories, paymentTypes)
	if err != nil {
		panic(fmt.Sprintf("chart: invalid built-in chart of accounts: %v", err))
	}
	return r
}

// Default returns the built-in chart of accounts.
func Default() *Registry {
	return defaultRegistry
}

// Accounts returns every account, active or not, in declaration order.
func (r *Registry) Accounts() []domain.Account {
	out := make([]domain.Account, len(r.accounts))
	copy(out, r.accounts)
	return out
}

// AccountByCode looks up an account by exact code. The boolean is false when
// the code is not registered.
func (r *Registry) AccountByCode(code string) (domain.Account, bool) {
	i, ok := r.byCode[code]
	if !ok {
		return domain.Account{}, false
	}
	return r.accounts[i], true
}

// AccountName returns the account's name, or the code itself when unregistered.
func (r *Registry) AccountName(code string) string {
	if acc, ok := r.AccountByCode(code); ok {
		return acc.Name
	}
	return code
}

// AccountsByType returns the active accounts of the given type in declaration order.
func (r *Registry) AccountsByType(accountType domain.AccountType) []domain.Account {
	var out []domain.Account
	for _, acc := range r.accounts {
		if acc.Type == accountType && acc.IsActive {
			out = append(out, acc)
		}
	}
	return out
}

// AccountsBySubType returns the accounts of the given sub-type in declaration order.
func (r *Registry) AccountsBySubType(subType domain.AccountSubType) []domain.Account {
	var out []domain.Account
	for _, acc := range r.accounts {
		if acc.SubType == subType {
			out = append(out, acc)
		}
	}
	return out
}

// MapExpenseCategoryToAccount resolves an expense category to an account code.
// Unknown categories are bucketed into Miscellaneous Expenses, never rejected.
func (r *Registry) MapExpenseCategoryToAccount(category string) string {
	if code, ok := r.expenseCategories[category]; ok {
		return code
	}
	return CodeMiscellaneousExpenses
}

// MapPaymentToAccount resolves a payment type to a revenue account code.
// Unknown types fall back to Rental Income.
func (r *Registry) MapPaymentToAccount(paymentType string) string {
	if code, ok := r.paymentTypes[paymentType]; ok {
		return code
	}
	return CodeRentalIncome
}

// GetAccountByCode looks up code in the default chart.
func GetAccountByCode(code string) (domain.Account, bool) {
	return defaultRegistry.AccountByCode(code)
}

// GetAccountsByType lists active accounts of a type in the default chart.
func GetAccountsByType(accountType domain.AccountType) []domain.Account {
	return defaultRegistry.AccountsByType(accountType)
}

// GetAccountsBySubType lists accounts of a sub-type in the default chart.
func GetAccountsBySubType(subType domain.AccountSubType) []domain.Account {
	return defaultRegistry.AccountsBySubType(subType)
}

// MapExpenseCategoryToAccount resolves category against the default chart.
func MapExpenseCategoryToAccount(category string) string {
	return defaultRegistry.MapExpenseCategoryToAccount(category)
}

// MapPaymentToAccount resolves paymentType against the default chart.
func MapPaymentToAccount(paymentType string) string {
	return defaultRegistry.MapPaymentToAccount(paymentType)
}
