package journal

import (
	"fmt"

	"github.com/SscSPs/property_ledger/internal/core/chart"
	"github.com/SscSPs/property_ledger/internal/core/domain"
)

// AssignAccountCodeToPayment returns the payment's explicit account code, or
// the chart mapping for its payment type. An empty type is treated as rent.
func (f *Factory) AssignAccountCodeToPayment(payment domain.Payment) string {
	if payment.AccountCode != "" {
		return payment.AccountCode
	}
	paymentType := payment.PaymentType
	if paymentType == "" {
		paymentType = "rent"
	}
	return f.registry.MapPaymentToAccount(paymentType)
}

// AssignAccountCodeToExpense returns the expense's explicit account code, or
// the chart mapping for its category.
func (f *Factory) AssignAccountCodeToExpense(expense domain.Expense) string {
	if expense.AccountCode != "" {
		return expense.AccountCode
	}
	return f.registry.MapExpenseCategoryToAccount(expense.Category)
}

// CreatePaymentJournalEntries records cash received for a paid payment:
// Dr Cash / Cr revenue for the amount, plus Dr Cash / Cr Late Fee Income when
// a late fee was charged. Unpaid payments produce nothing. lease may be nil,
// in which case the entries carry no property or unit.
func (f *Factory) CreatePaymentJournalEntries(payment domain.Payment, lease *domain.Lease, tenantID, createdBy string) []domain.JournalEntry {
	if payment.Status != domain.PaymentPaid {
		return nil
	}

	txDate := payment.PaymentDate
	if txDate.IsZero() {
		txDate = payment.DueDate
	}

	p := posting{
		tenantID:        tenantID,
		createdBy:       createdBy,
		createdAt:       f.now(),
		transactionDate: txDate,
		transactionType: domain.PaymentTransaction,
		referenceID:     payment.ID,
		referenceType:   domain.PaymentReference,
		description:     fmt.Sprintf("Payment received for lease %s", payment.LeaseID),
		currency:        payment.Currency,
		notes:           payment.Notes,
	}
	if lease != nil {
		p.propertyID = lease.PropertyID
		p.unitID = lease.UnitID
	}

	entries := f.pair(p, chart.CodeCash, f.AssignAccountCodeToPayment(payment), payment.Amount)

	if payment.LateFee.IsPositive() {
		p.description = fmt.Sprintf("Late fee received for lease %s", payment.LeaseID)
		entries = append(entries, f.pair(p, chart.CodeCash, chart.CodeLateFeeIncome, payment.LateFee)...)
	}
	return entries
}

// CreateExpenseJournalEntries debits the expense account and credits Cash when
// the expense is paid, or Accounts Payable while it is pending or approved.
// Rejected or unknown statuses produce nothing.
func (f *Factory) CreateExpenseJournalEntries(expense domain.Expense, tenantID, createdBy string) []domain.JournalEntry {
	var creditCode string
	switch expense.Status {
	case domain.ExpensePaid:
		creditCode = chart.CodeCash
	case domain.ExpensePending, domain.ExpenseApproved:
		creditCode = chart.CodeAccountsPayable
	default:
		return nil
	}

	description := fmt.Sprintf("Expense: %s", expense.Category)
	if expense.VendorName != "" {
		description = fmt.Sprintf("Expense: %s (%s)", expense.Category, expense.VendorName)
	}

	p := posting{
		tenantID:        tenantID,
		createdBy:       createdBy,
		createdAt:       f.now(),
		transactionDate: expense.ExpenseDate,
		transactionType: domain.ExpenseTransaction,
		referenceID:     expense.ID,
		referenceType:   domain.ExpenseReference,
		description:     description,
		currency:        expense.Currency,
		propertyID:      expense.PropertyID,
		unitID:          expense.UnitID,
		notes:           expense.Description,
	}
	return f.pair(p, f.AssignAccountCodeToExpense(expense), creditCode, expense.Amount)
}

// CreateInvoiceJournalEntries accrues rent for a sent or overdue invoice:
// Dr Accounts Receivable / Cr Rental Income. Paid invoices are represented by
// their payment, so they produce nothing here, as do drafts and cancellations.
func (f *Factory) CreateInvoiceJournalEntries(invoice domain.Invoice, tenantID, createdBy string) []domain.JournalEntry {
	if invoice.Status != domain.InvoiceSent && invoice.Status != domain.InvoiceOverdue {
		return nil
	}

	p := posting{
		tenantID:        tenantID,
		createdBy:       createdBy,
		createdAt:       f.now(),
		transactionDate: invoice.IssueDate,
		transactionType: domain.InvoiceTransaction,
		referenceID:     invoice.ID,
		referenceType:   domain.InvoiceReference,
		description:     fmt.Sprintf("Invoice %s issued", invoice.InvoiceNumber),
		currency:        invoice.Currency,
		propertyID:      invoice.PropertyID,
		unitID:          invoice.UnitID,
	}
	return f.pair(p, chart.CodeAccountsReceivable, chart.CodeRentalIncome, invoice.TotalAmount)
}

// CreateDepositJournalEntries records the security deposit held in trust at
// lease start: Dr Security Deposits Held / Cr Security Deposits Payable.
func (f *Factory) CreateDepositJournalEntries(lease domain.Lease, tenantID, createdBy string) []domain.JournalEntry {
	p := posting{
		tenantID:        tenantID,
		createdBy:       createdBy,
		createdAt:       f.now(),
		transactionDate: lease.StartDate,
		transactionType: domain.DepositTransaction,
		referenceID:     lease.ID,
		referenceType:   domain.LeaseReference,
		description:     fmt.Sprintf("Security deposit for lease %s", lease.ID),
		currency:        lease.Currency,
		propertyID:      lease.PropertyID,
		unitID:          lease.UnitID,
	}
	return f.pair(p, chart.CodeSecurityDepositsHeld, chart.CodeSecurityDepositsPayable, lease.DepositAmount)
}
