package reports

import (
	"time"

	"github.com/SscSPs/property_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// GenerateIncomeStatement uses the default generator.
func GenerateIncomeStatement(payments []domain.Payment, expenses []domain.Expense, start, end time.Time) domain.IncomeStatement {
	return defaultGenerator.GenerateIncomeStatement(payments, expenses, start, end)
}

// GenerateIncomeStatement reports paid revenue against every expense dated in
// the period. Expense status is ignored here, unlike the cash flow statement.
func (g *Generator) GenerateIncomeStatement(payments []domain.Payment, expenses []domain.Expense, start, end time.Time) domain.IncomeStatement {
	period := domain.NewPeriod(start, end)

	revenue := domain.IncomeRevenue{RentalIncome: decimal.Zero, LateFees: decimal.Zero}
	for _, p := range paidInPeriod(payments, period) {
		revenue.RentalIncome = revenue.RentalIncome.Add(p.Amount)
		revenue.LateFees = revenue.LateFees.Add(p.LateFee)
	}
	revenue.TotalRevenue = revenue.RentalIncome.Add(revenue.LateFees)

	exp := domain.IncomeExpenses{
		Maintenance: decimal.Zero,
		Utilities:   decimal.Zero,
		Insurance:   decimal.Zero,
		Taxes:       decimal.Zero,
		Management:  decimal.Zero,
		Other:       decimal.Zero,
	}
	for _, e := range expensesInPeriod(expenses, period) {
		switch e.Category {
		case "maintenance", "repairs":
			exp.Maintenance = exp.Maintenance.Add(e.Amount)
		case "utilities":
			exp.Utilities = exp.Utilities.Add(e.Amount)
		case "insurance":
			exp.Insurance = exp.Insurance.Add(e.Amount)
		case "taxes":
			exp.Taxes = exp.Taxes.Add(e.Amount)
		default:
			exp.Other = exp.Other.Add(e.Amount)
		}
	}
	exp.TotalExpenses = exp.Maintenance.
		Add(exp.Utilities).
		Add(exp.Insurance).
		Add(exp.Taxes).
		Add(exp.Management).
		Add(exp.Other)

	netIncome := revenue.TotalRevenue.Sub(exp.TotalExpenses)

	return domain.IncomeStatement{
		Period:       period,
		Revenue:      revenue,
		Expenses:     exp,
		NetIncome:    netIncome,
		ProfitMargin: percentOf(netIncome, revenue.TotalRevenue),
	}
}
