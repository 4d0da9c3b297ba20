package reports

import (
	"time"

	"github.com/SscSPs/property_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// GenerateCashFlowStatement uses the default generator.
func GenerateCashFlowStatement(payments []domain.Payment, expenses []domain.Expense, start, end time.Time) domain.CashFlowStatement {
	return defaultGenerator.GenerateCashFlowStatement(payments, expenses, start, end)
}

// GenerateCashFlowStatement reports cash movement for the period. Only paid
// expenses count as cash out, so NetCashFromOperations differs from the income
// statement's NetIncome whenever unpaid expenses fall in the period.
// Investing, financing and beginning cash are not tracked and stay zero.
func (g *Generator) GenerateCashFlowStatement(payments []domain.Payment, expenses []domain.Expense, start, end time.Time) domain.CashFlowStatement {
	period := domain.NewPeriod(start, end)
	income := g.GenerateIncomeStatement(payments, expenses, start, end)

	cashIn := sumGross(paidInPeriod(payments, period))

	cashOut := decimal.Zero
	for _, e := range expensesInPeriod(expenses, period) {
		if e.Status == domain.ExpensePaid {
			cashOut = cashOut.Add(e.Amount)
		}
	}

	operating := domain.OperatingActivities{
		NetIncome:             income.NetIncome,
		CashReceived:          cashIn,
		CashPaid:              cashOut,
		NetCashFromOperations: cashIn.Sub(cashOut),
	}
	investing := domain.InvestingActivities{
		PropertyPurchases:    decimal.Zero,
		PropertyImprovements: decimal.Zero,
		NetCashFromInvesting: decimal.Zero,
	}
	financing := domain.FinancingActivities{
		LoanProceeds:         decimal.Zero,
		LoanPayments:         decimal.Zero,
		OwnerContributions:   decimal.Zero,
		OwnerDistributions:   decimal.Zero,
		NetCashFromFinancing: decimal.Zero,
	}

	netCashFlow := operating.NetCashFromOperations.
		Add(investing.NetCashFromInvesting).
		Add(financing.NetCashFromFinancing)
	beginningCash := decimal.Zero

	return domain.CashFlowStatement{
		Period:              period,
		OperatingActivities: operating,
		InvestingActivities: investing,
		FinancingActivities: financing,
		NetCashFlow:         netCashFlow,
		BeginningCash:       beginningCash,
		EndingCash:          beginningCash.Add(netCashFlow),
	}
}
