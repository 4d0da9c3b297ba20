package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// The records below are owned by the property-management application and are
// read-only to the ledger. Zero time values mean "not set".

// PaymentStatus is the lifecycle state of a rent payment.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentOverdue PaymentStatus = "overdue"
	PaymentPartial PaymentStatus = "partial"
)

// Payment is money owed or received under a lease.
type Payment struct {
	ID          string          `json:"id"`
	TenantID    string          `json:"tenantId"`
	LeaseID     string          `json:"leaseId"`
	Amount      decimal.Decimal `json:"amount"`
	LateFee     decimal.Decimal `json:"lateFee"`
	Currency    string          `json:"currency"`
	PaymentDate time.Time       `json:"paymentDate"`
	DueDate     time.Time       `json:"dueDate"`
	Status      PaymentStatus   `json:"status"`
	PaymentType string          `json:"paymentType"` // rent, late_fee, parking, application, other
	AccountCode string          `json:"accountCode,omitempty"`
	Notes       string          `json:"notes,omitempty"`
}

// Gross returns the amount plus any late fee.
func (p Payment) Gross() decimal.Decimal {
	return p.Amount.Add(p.LateFee)
}

// ExpenseStatus is the approval/payment state of an expense.
type ExpenseStatus string

const (
	ExpensePending  ExpenseStatus = "pending"
	ExpenseApproved ExpenseStatus = "approved"
	ExpensePaid     ExpenseStatus = "paid"
	ExpenseRejected ExpenseStatus = "rejected"
)

// Expense is a cost incurred for a property.
type Expense struct {
	ID          string          `json:"id"`
	TenantID    string          `json:"tenantId"`
	PropertyID  string          `json:"propertyId"`
	UnitID      string          `json:"unitId,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	ExpenseDate time.Time       `json:"expenseDate"`
	Category    string          `json:"category"`
	Status      ExpenseStatus   `json:"status"`
	VendorName  string          `json:"vendorName,omitempty"`
	Description string          `json:"description,omitempty"`
	AccountCode string          `json:"accountCode,omitempty"`
}

// LeaseStatus is the state of a lease agreement.
type LeaseStatus string

const (
	LeaseDraft      LeaseStatus = "draft"
	LeaseActive     LeaseStatus = "active"
	LeaseExpired    LeaseStatus = "expired"
	LeaseTerminated LeaseStatus = "terminated"
)

// Lease binds a unit to a renter for a period.
type Lease struct {
	ID            string          `json:"id"`
	TenantID      string          `json:"tenantId"`
	PropertyID    string          `json:"propertyId"`
	UnitID        string          `json:"unitId"`
	StartDate     time.Time       `json:"startDate"`
	EndDate       time.Time       `json:"endDate"`
	Status        LeaseStatus     `json:"status"`
	RentAmount    decimal.Decimal `json:"rentAmount"`
	DepositAmount decimal.Decimal `json:"depositAmount"`
	Currency      string          `json:"currency"`
}

// UnitStatus is the occupancy state of a rentable unit.
type UnitStatus string

const (
	UnitVacant      UnitStatus = "vacant"
	UnitOccupied    UnitStatus = "occupied"
	UnitMaintenance UnitStatus = "maintenance"
)

// Unit is a rentable space within a property.
type Unit struct {
	ID         string     `json:"id"`
	TenantID   string     `json:"tenantId"`
	PropertyID string     `json:"propertyId"`
	Name       string     `json:"name"`
	Status     UnitStatus `json:"status"`
}

// Property groups units under one address.
type Property struct {
	ID       string `json:"id"`
	TenantID string `json:"tenantId"`
	Name     string `json:"name"`
}

// InvoiceStatus is the billing state of an invoice.
type InvoiceStatus string

const (
	InvoiceDraft     InvoiceStatus = "draft"
	InvoiceSent      InvoiceStatus = "sent"
	InvoicePaid      InvoiceStatus = "paid"
	InvoiceOverdue   InvoiceStatus = "overdue"
	InvoiceCancelled InvoiceStatus = "cancelled"
)

// Invoice is a bill issued to a renter.
type Invoice struct {
	ID            string          `json:"id"`
	TenantID      string          `json:"tenantId"`
	InvoiceNumber string          `json:"invoiceNumber"`
	LeaseID       string          `json:"leaseId,omitempty"`
	PropertyID    string          `json:"propertyId,omitempty"`
	UnitID        string          `json:"unitId,omitempty"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	Currency      string          `json:"currency"`
	Status        InvoiceStatus   `json:"status"`
	IssueDate     time.Time       `json:"issueDate"`
	DueDate       time.Time       `json:"dueDate"`
}
