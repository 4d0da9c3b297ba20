package reports

import (
	"time"

	"github.com/SscSPs/property_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// GeneratePropertyPerformance uses the default generator.
func GeneratePropertyPerformance(propertyID, propertyName string, payments []domain.Payment, expenses []domain.Expense, units []domain.Unit, leases []domain.Lease, start, end time.Time) domain.PropertyPerformance {
	return defaultGenerator.GeneratePropertyPerformance(propertyID, propertyName, payments, expenses, units, leases, start, end)
}

// GeneratePropertyPerformance scopes units to the property, active leases to
// those units, and paid payments to those leases. Expenses are matched on
// their own property ID. Rates and averages are zero when their divisor is.
func (g *Generator) GeneratePropertyPerformance(propertyID, propertyName string, payments []domain.Payment, expenses []domain.Expense, units []domain.Unit, leases []domain.Lease, start, end time.Time) domain.PropertyPerformance {
	period := domain.NewPeriod(start, end)

	unitIDs := make(map[string]struct{})
	occupied := 0
	for _, u := range units {
		if u.PropertyID != propertyID {
			continue
		}
		unitIDs[u.ID] = struct{}{}
		if u.Status == domain.UnitOccupied {
			occupied++
		}
	}

	leaseIDs := make(map[string]struct{})
	rentTotal := decimal.Zero
	for _, l := range leases {
		if l.Status != domain.LeaseActive {
			continue
		}
		if _, ok := unitIDs[l.UnitID]; !ok {
			continue
		}
		leaseIDs[l.ID] = struct{}{}
		rentTotal = rentTotal.Add(l.RentAmount)
	}

	revenue := decimal.Zero
	for _, p := range paidInPeriod(payments, period) {
		if _, ok := leaseIDs[p.LeaseID]; ok {
			revenue = revenue.Add(p.Gross())
		}
	}

	expenseTotal := decimal.Zero
	for _, e := range expensesInPeriod(expenses, period) {
		if e.PropertyID == propertyID {
			expenseTotal = expenseTotal.Add(e.Amount)
		}
	}

	averageRent := decimal.Zero
	if len(leaseIDs) > 0 {
		averageRent = rentTotal.Div(decimal.NewFromInt(int64(len(leaseIDs))))
	}

	return domain.PropertyPerformance{
		PropertyID:         propertyID,
		PropertyName:       propertyName,
		Period:             period,
		TotalUnits:         len(unitIDs),
		OccupiedUnits:      occupied,
		OccupancyRate:      percentOf(decimal.NewFromInt(int64(occupied)), decimal.NewFromInt(int64(len(unitIDs)))),
		ActiveLeases:       len(leaseIDs),
		TotalRevenue:       revenue,
		TotalExpenses:      expenseTotal,
		NetOperatingIncome: revenue.Sub(expenseTotal),
		AverageRentPerUnit: averageRent,
	}
}
