// Package reports computes financial statements straight from source records.
//
// Generators never read journal entries, so reports stay available for
// records whose postings were never persisted. Every generator is a pure
// function of its arguments: same input, same output.
package reports

import (
	"github.com/SscSPs/property_ledger/internal/core/chart"
	"github.com/SscSPs/property_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Generator produces reports against a chart of accounts.
type Generator struct {
	registry *chart.Registry
}

// Option configures a Generator.
type Option func(*Generator)

// WithRegistry resolves account names and category mappings against r.
func WithRegistry(r *chart.Registry) Option {
	return func(g *Generator) {
		g.registry = r
	}
}

// NewGenerator creates a Generator backed by the default chart unless overridden.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{registry: chart.Default()}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

var defaultGenerator = NewGenerator()

// percentOf returns part/whole*100, or zero when whole is zero.
func percentOf(part, whole decimal.Decimal) decimal.Decimal {
	if whole.IsZero() {
		return decimal.Zero
	}
	return part.Div(whole).Mul(hundred)
}

// paidInPeriod keeps paid payments whose payment date falls in p.
func paidInPeriod(payments []domain.Payment, p domain.Period) []domain.Payment {
	var out []domain.Payment
	for _, pay := range payments {
		if pay.Status == domain.PaymentPaid && p.Contains(pay.PaymentDate) {
			out = append(out, pay)
		}
	}
	return out
}

// expensesInPeriod keeps expenses dated inside p, whatever their status.
func expensesInPeriod(expenses []domain.Expense, p domain.Period) []domain.Expense {
	var out []domain.Expense
	for _, e := range expenses {
		if p.Contains(e.ExpenseDate) {
			out = append(out, e)
		}
	}
	return out
}

func sumGross(payments []domain.Payment) decimal.Decimal {
	total := decimal.Zero
	for _, p := range payments {
		total = total.Add(p.Gross())
	}
	return total
}
