package domain

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset          AccountType = "asset"
	Liability      AccountType = "liability"
	Equity         AccountType = "equity"
	Revenue        AccountType = "revenue"
	ExpenseAccount AccountType = "expense"
)

// IsValid reports whether t is one of the five account types.
func (t AccountType) IsValid() bool {
	switch t {
	case Asset, Liability, Equity, Revenue, ExpenseAccount:
		return true
	}
	return false
}

// IsDebitNormal reports whether debits increase accounts of this type.
// Assets and expenses are debit-normal; liabilities, equity and revenue are credit-normal.
func (t AccountType) IsDebitNormal() bool {
	return t == Asset || t == ExpenseAccount
}

// AccountSubType refines an AccountType for presentation (current asset, operating expense, ...).
type AccountSubType string

const (
	CurrentAsset       AccountSubType = "current_asset"
	FixedAsset         AccountSubType = "fixed_asset"
	CurrentLiability   AccountSubType = "current_liability"
	LongTermLiability  AccountSubType = "long_term_liability"
	OwnersEquity       AccountSubType = "owners_equity"
	RetainedEarnings   AccountSubType = "retained_earnings"
	OperatingRevenue   AccountSubType = "operating_revenue"
	OtherRevenue       AccountSubType = "other_revenue"
	OperatingExpense   AccountSubType = "operating_expense"
	AdministrativeCost AccountSubType = "administrative_expense"
	OtherExpense       AccountSubType = "other_expense"
)

// Account is an entry of the chart of accounts. Accounts are reference data:
// they are built once when the registry is constructed and never mutated.
type Account struct {
	Code        string         `json:"code" yaml:"code"`
	Name        string         `json:"name" yaml:"name"`
	Type        AccountType    `json:"type" yaml:"type"`
	SubType     AccountSubType `json:"subType" yaml:"subType"`
	Description string         `json:"description" yaml:"description"`
	IsActive    bool           `json:"isActive" yaml:"isActive"`
}
