package reports

import (
	"sort"
	"time"

	"github.com/SscSPs/property_ledger/internal/core/chart"
	"github.com/SscSPs/property_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// GenerateTransactionSummary uses the default generator.
func GenerateTransactionSummary(payments []domain.Payment, expenses []domain.Expense, start, end time.Time) domain.TransactionSummary {
	return defaultGenerator.GenerateTransactionSummary(payments, expenses, start, end)
}

// GenerateTransactionSummary groups the period's activity by account.
//
// Revenue has at most two lines, Rental Income and Late Fee Income, each
// omitted when zero. Expenses are grouped by the account their category maps
// to and sorted by amount, largest first; ties keep first-seen order.
func (g *Generator) GenerateTransactionSummary(payments []domain.Payment, expenses []domain.Expense, start, end time.Time) domain.TransactionSummary {
	period := domain.NewPeriod(start, end)

	rent := domain.SummaryLine{
		AccountCode: chart.CodeRentalIncome,
		AccountName: g.registry.AccountName(chart.CodeRentalIncome),
		Amount:      decimal.Zero,
	}
	lateFees := domain.SummaryLine{
		AccountCode: chart.CodeLateFeeIncome,
		AccountName: g.registry.AccountName(chart.CodeLateFeeIncome),
		Amount:      decimal.Zero,
	}
	for _, p := range paidInPeriod(payments, period) {
		rent.Amount = rent.Amount.Add(p.Amount)
		rent.Count++
		if p.LateFee.IsPositive() {
			lateFees.Amount = lateFees.Amount.Add(p.LateFee)
			lateFees.Count++
		}
	}

	revenue := []domain.SummaryLine{}
	for _, line := range []domain.SummaryLine{rent, lateFees} {
		if !line.Amount.IsZero() {
			revenue = append(revenue, line)
		}
	}

	expenseLines := []domain.SummaryLine{}
	index := make(map[string]int)
	for _, e := range expensesInPeriod(expenses, period) {
		code := g.registry.MapExpenseCategoryToAccount(e.Category)
		i, ok := index[code]
		if !ok {
			i = len(expenseLines)
			index[code] = i
			expenseLines = append(expenseLines, domain.SummaryLine{
				AccountCode: code,
				AccountName: g.registry.AccountName(code),
				Amount:      decimal.Zero,
			})
		}
		expenseLines[i].Amount = expenseLines[i].Amount.Add(e.Amount)
		expenseLines[i].Count++
	}
	sort.SliceStable(expenseLines, func(i, j int) bool {
		return expenseLines[i].Amount.GreaterThan(expenseLines[j].Amount)
	})

	return domain.TransactionSummary{
		Period:   period,
		Revenue:  revenue,
		Expenses: expenseLines,
	}
}
