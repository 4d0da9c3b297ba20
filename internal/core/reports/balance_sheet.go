package reports

import (
	"time"

	"github.com/SscSPs/property_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// GenerateBalanceSheet uses the default generator.
func GenerateBalanceSheet(payments []domain.Payment, expenses []domain.Expense, leases []domain.Lease, asOf time.Time) domain.BalanceSheet {
	return defaultGenerator.GenerateBalanceSheet(payments, expenses, leases, asOf)
}

// GenerateBalanceSheet builds a snapshot as of asOf.
//
// Cash and owner's equity are always zero: there is no independent cash
// position or capital tracking to draw them from. As a result the sheet only
// balances when receivables happen to equal payables plus prepaid rent plus
// retained earnings.
func (g *Generator) GenerateBalanceSheet(payments []domain.Payment, expenses []domain.Expense, leases []domain.Lease, asOf time.Time) domain.BalanceSheet {
	asOf = domain.DateOnly(asOf)

	receivable := decimal.Zero
	prepaidRent := decimal.Zero
	paidIncome := decimal.Zero
	for _, p := range payments {
		switch p.Status {
		case domain.PaymentOverdue:
			if domain.OnOrBefore(p.DueDate, asOf) {
				receivable = receivable.Add(p.Gross())
			}
		case domain.PaymentPaid:
			if domain.OnOrBefore(p.PaymentDate, asOf) {
				paidIncome = paidIncome.Add(p.Gross())
			}
			if paidEarly(p) && domain.DateOnly(p.DueDate).After(asOf) {
				prepaidRent = prepaidRent.Add(p.Amount)
			}
		}
	}

	deposits := decimal.Zero
	for _, l := range leases {
		if l.Status == domain.LeaseActive && domain.OnOrBefore(l.StartDate, asOf) {
			deposits = deposits.Add(l.DepositAmount)
		}
	}

	payable := decimal.Zero
	expenseCost := decimal.Zero
	for _, e := range expenses {
		if !domain.OnOrBefore(e.ExpenseDate, asOf) {
			continue
		}
		expenseCost = expenseCost.Add(e.Amount)
		if e.Status == domain.ExpensePending {
			payable = payable.Add(e.Amount)
		}
	}

	current := domain.CurrentAssets{
		Cash:               decimal.Zero,
		AccountsReceivable: receivable,
		SecurityDeposits:   deposits,
	}
	current.Total = current.Cash.Add(current.AccountsReceivable).Add(current.SecurityDeposits)

	liabilities := domain.CurrentLiabilities{
		AccountsPayable:         payable,
		SecurityDepositsPayable: deposits,
		PrepaidRent:             prepaidRent,
	}
	liabilities.Total = liabilities.AccountsPayable.Add(liabilities.SecurityDepositsPayable).Add(liabilities.PrepaidRent)

	equity := domain.BalanceSheetEquity{
		RetainedEarnings: paidIncome.Sub(expenseCost),
		OwnersEquity:     decimal.Zero,
	}
	equity.TotalEquity = equity.RetainedEarnings.Add(equity.OwnersEquity)

	return domain.BalanceSheet{
		AsOfDate: asOf,
		Assets: domain.BalanceSheetAssets{
			CurrentAssets: current,
			TotalAssets:   current.Total,
		},
		Liabilities: domain.BalanceSheetLiabilities{
			CurrentLiabilities: liabilities,
			TotalLiabilities:   liabilities.Total,
		},
		Equity:                    equity,
		TotalLiabilitiesAndEquity: liabilities.Total.Add(equity.TotalEquity),
	}
}

// paidEarly reports whether p was paid on a day before it fell due.
func paidEarly(p domain.Payment) bool {
	if p.PaymentDate.IsZero() || p.DueDate.IsZero() {
		return false
	}
	return domain.DateOnly(p.PaymentDate).Before(domain.DateOnly(p.DueDate))
}
