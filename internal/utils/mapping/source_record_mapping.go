package mapping

import (
	"github.com/SscSPs/property_ledger/internal/core/domain"
	"github.com/SscSPs/property_ledger/internal/models"
)

// ToDomainPayment converts a payment row. A NULL late fee reads as zero.
func ToDomainPayment(m models.Payment) domain.Payment {
	return domain.Payment{
		ID:          m.PaymentID,
		TenantID:    m.TenantID,
		LeaseID:     fromNullable(m.LeaseID),
		Amount:      m.Amount,
		LateFee:     fromNullDecimal(m.LateFee),
		Currency:    m.Currency,
		PaymentDate: fromNullableTime(m.PaymentDate),
		DueDate:     fromNullableTime(m.DueDate),
		Status:      domain.PaymentStatus(m.Status),
		PaymentType: fromNullable(m.PaymentType),
		AccountCode: fromNullable(m.AccountCode),
		Notes:       fromNullable(m.Notes),
	}
}

func ToDomainExpense(m models.Expense) domain.Expense {
	return domain.Expense{
		ID:          m.ExpenseID,
		TenantID:    m.TenantID,
		PropertyID:  fromNullable(m.PropertyID),
		UnitID:      fromNullable(m.UnitID),
		Amount:      m.Amount,
		Currency:    m.Currency,
		ExpenseDate: m.ExpenseDate,
		Category:    m.Category,
		Status:      domain.ExpenseStatus(m.Status),
		VendorName:  fromNullable(m.VendorName),
		Description: fromNullable(m.Description),
		AccountCode: fromNullable(m.AccountCode),
	}
}

func ToDomainLease(m models.Lease) domain.Lease {
	return domain.Lease{
		ID:            m.LeaseID,
		TenantID:      m.TenantID,
		PropertyID:    fromNullable(m.PropertyID),
		UnitID:        m.UnitID,
		StartDate:     m.StartDate,
		EndDate:       fromNullableTime(m.EndDate),
		Status:        domain.LeaseStatus(m.Status),
		RentAmount:    m.RentAmount,
		DepositAmount: fromNullDecimal(m.DepositAmount),
		Currency:      m.Currency,
	}
}

func ToDomainUnit(m models.Unit) domain.Unit {
	return domain.Unit{
		ID:         m.UnitID,
		TenantID:   m.TenantID,
		PropertyID: m.PropertyID,
		Name:       m.Name,
		Status:     domain.UnitStatus(m.Status),
	}
}

func ToDomainProperty(m models.Property) domain.Property {
	return domain.Property{
		ID:       m.PropertyID,
		TenantID: m.TenantID,
		Name:     m.Name,
	}
}

func ToDomainInvoice(m models.Invoice) domain.Invoice {
	return domain.Invoice{
		ID:            m.InvoiceID,
		TenantID:      m.TenantID,
		InvoiceNumber: m.InvoiceNumber,
		LeaseID:       fromNullable(m.LeaseID),
		PropertyID:    fromNullable(m.PropertyID),
		UnitID:        fromNullable(m.UnitID),
		TotalAmount:   m.TotalAmount,
		Currency:      m.Currency,
		Status:        domain.InvoiceStatus(m.Status),
		IssueDate:     m.IssueDate,
		DueDate:       fromNullableTime(m.DueDate),
	}
}
