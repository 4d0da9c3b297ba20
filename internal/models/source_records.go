package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Source record rows as the property-management application stores them.
// Nullable dates and text columns are pointers.

type Payment struct {
	PaymentID   string
	TenantID    string
	LeaseID     *string
	Amount      decimal.Decimal
	LateFee     decimal.NullDecimal
	Currency    string
	PaymentDate *time.Time
	DueDate     *time.Time
	Status      string
	PaymentType *string
	AccountCode *string
	Notes       *string
}

type Expense struct {
	ExpenseID   string
	TenantID    string
	PropertyID  *string
	UnitID      *string
	Amount      decimal.Decimal
	Currency    string
	ExpenseDate time.Time
	Category    string
	Status      string
	VendorName  *string
	Description *string
	AccountCode *string
}

type Lease struct {
	LeaseID       string
	TenantID      string
	PropertyID    *string
	UnitID        string
	StartDate     time.Time
	EndDate       *time.Time
	Status        string
	RentAmount    decimal.Decimal
	DepositAmount decimal.NullDecimal
	Currency      string
}

type Unit struct {
	UnitID     string
	TenantID   string
	PropertyID string
	Name       string
	Status     string
}

type Property struct {
	PropertyID string
	TenantID   string
	Name       string
}

type Invoice struct {
	InvoiceID     string
	TenantID      string
	InvoiceNumber string
	LeaseID       *string
	PropertyID    *string
	UnitID        *string
	TotalAmount   decimal.Decimal
	Currency      string
	Status        string
	IssueDate     time.Time
	DueDate       *time.Time
}
