package dto

import (
	"github.com/SscSPs/property_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PeriodResponse is a report period as calendar dates.
type PeriodResponse struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

func toPeriodResponse(p domain.Period) PeriodResponse {
	return PeriodResponse{
		StartDate: p.StartDate.Format(domain.DateLayout),
		EndDate:   p.EndDate.Format(domain.DateLayout),
	}
}

// IncomeStatementResponse represents the income statement report response
type IncomeStatementResponse struct {
	Period   PeriodResponse `json:"period"`
	Currency string         `json:"currency"`
	Revenue  struct {
		RentalIncome MoneyResponse `json:"rentalIncome"`
		LateFees     MoneyResponse `json:"lateFees"`
		TotalRevenue MoneyResponse `json:"totalRevenue"`
	} `json:"revenue"`
	Expenses struct {
		Maintenance   MoneyResponse `json:"maintenance"`
		Utilities     MoneyResponse `json:"utilities"`
		Insurance     MoneyResponse `json:"insurance"`
		Taxes         MoneyResponse `json:"taxes"`
		Management    MoneyResponse `json:"management"`
		Other         MoneyResponse `json:"other"`
		TotalExpenses MoneyResponse `json:"totalExpenses"`
	} `json:"expenses"`
	NetIncome    MoneyResponse   `json:"netIncome"`
	ProfitMargin decimal.Decimal `json:"profitMargin"`
}

// ToIncomeStatementResponse converts an income statement, formatting amounts in currency.
func ToIncomeStatementResponse(r domain.IncomeStatement, currency string) IncomeStatementResponse {
	m := func(d decimal.Decimal) MoneyResponse { return NewMoneyResponse(d, currency) }

	resp := IncomeStatementResponse{
		Period:       toPeriodResponse(r.Period),
		Currency:     currency,
		NetIncome:    m(r.NetIncome),
		ProfitMargin: r.ProfitMargin,
	}
	resp.Revenue.RentalIncome = m(r.Revenue.RentalIncome)
	resp.Revenue.LateFees = m(r.Revenue.LateFees)
	resp.Revenue.TotalRevenue = m(r.Revenue.TotalRevenue)
	resp.Expenses.Maintenance = m(r.Expenses.Maintenance)
	resp.Expenses.Utilities = m(r.Expenses.Utilities)
	resp.Expenses.Insurance = m(r.Expenses.Insurance)
	resp.Expenses.Taxes = m(r.Expenses.Taxes)
	resp.Expenses.Management = m(r.Expenses.Management)
	resp.Expenses.Other = m(r.Expenses.Other)
	resp.Expenses.TotalExpenses = m(r.Expenses.TotalExpenses)
	return resp
}

// BalanceSheetResponse represents the balance sheet report response
type BalanceSheetResponse struct {
	AsOf     string `json:"asOf"`
	Currency string `json:"currency"`
	Assets   struct {
		Cash               MoneyResponse `json:"cash"`
		AccountsReceivable MoneyResponse `json:"accountsReceivable"`
		SecurityDeposits   MoneyResponse `json:"securityDeposits"`
		TotalAssets        MoneyResponse `json:"totalAssets"`
	} `json:"assets"`
	Liabilities struct {
		AccountsPayable         MoneyResponse `json:"accountsPayable"`
		SecurityDepositsPayable MoneyResponse `json:"securityDepositsPayable"`
		PrepaidRent             MoneyResponse `json:"prepaidRent"`
		TotalLiabilities        MoneyResponse `json:"totalLiabilities"`
	} `json:"liabilities"`
	Equity struct {
		RetainedEarnings MoneyResponse `json:"retainedEarnings"`
		OwnersEquity     MoneyResponse `json:"ownersEquity"`
		TotalEquity      MoneyResponse `json:"totalEquity"`
	} `json:"equity"`
	TotalLiabilitiesAndEquity MoneyResponse `json:"totalLiabilitiesAndEquity"`
}

// ToBalanceSheetResponse converts a balance sheet, formatting amounts in currency.
func ToBalanceSheetResponse(r domain.BalanceSheet, currency string) BalanceSheetResponse {
	m := func(d decimal.Decimal) MoneyResponse { return NewMoneyResponse(d, currency) }

	resp := BalanceSheetResponse{
		AsOf:                      r.AsOfDate.Format(domain.DateLayout),
		Currency:                  currency,
		TotalLiabilitiesAndEquity: m(r.TotalLiabilitiesAndEquity),
	}
	ca := r.Assets.CurrentAssets
	resp.Assets.Cash = m(ca.Cash)
	resp.Assets.AccountsReceivable = m(ca.AccountsReceivable)
	resp.Assets.SecurityDeposits = m(ca.SecurityDeposits)
	resp.Assets.TotalAssets = m(r.Assets.TotalAssets)

	cl := r.Liabilities.CurrentLiabilities
	resp.Liabilities.AccountsPayable = m(cl.AccountsPayable)
	resp.Liabilities.SecurityDepositsPayable = m(cl.SecurityDepositsPayable)
	resp.Liabilities.PrepaidRent = m(cl.PrepaidRent)
	resp.Liabilities.TotalLiabilities = m(r.Liabilities.TotalLiabilities)

	resp.Equity.RetainedEarnings = m(r.Equity.RetainedEarnings)
	resp.Equity.OwnersEquity = m(r.Equity.OwnersEquity)
	resp.Equity.TotalEquity = m(r.Equity.TotalEquity)
	return resp
}

// CashFlowResponse represents the cash flow statement response
type CashFlowResponse struct {
	Period    PeriodResponse `json:"period"`
	Currency  string         `json:"currency"`
	Operating struct {
		NetIncome             MoneyResponse `json:"netIncome"`
		CashReceived          MoneyResponse `json:"cashReceived"`
		CashPaid              MoneyResponse `json:"cashPaid"`
		NetCashFromOperations MoneyResponse `json:"netCashFromOperations"`
	} `json:"operatingActivities"`
	NetCashFromInvesting MoneyResponse `json:"netCashFromInvesting"`
	NetCashFromFinancing MoneyResponse `json:"netCashFromFinancing"`
	NetCashFlow          MoneyResponse `json:"netCashFlow"`
	BeginningCash        MoneyResponse `json:"beginningCash"`
	EndingCash           MoneyResponse `json:"endingCash"`
}

// ToCashFlowResponse converts a cash flow statement, formatting amounts in currency.
func ToCashFlowResponse(r domain.CashFlowStatement, currency string) CashFlowResponse {
	m := func(d decimal.Decimal) MoneyResponse { return NewMoneyResponse(d, currency) }

	resp := CashFlowResponse{
		Period:               toPeriodResponse(r.Period),
		Currency:             currency,
		NetCashFromInvesting: m(r.InvestingActivities.NetCashFromInvesting),
		NetCashFromFinancing: m(r.FinancingActivities.NetCashFromFinancing),
		NetCashFlow:          m(r.NetCashFlow),
		BeginningCash:        m(r.BeginningCash),
		EndingCash:           m(r.EndingCash),
	}
	op := r.OperatingActivities
	resp.Operating.NetIncome = m(op.NetIncome)
	resp.Operating.CashReceived = m(op.CashReceived)
	resp.Operating.CashPaid = m(op.CashPaid)
	resp.Operating.NetCashFromOperations = m(op.NetCashFromOperations)
	return resp
}

// PropertyPerformanceResponse represents one property's performance report
type PropertyPerformanceResponse struct {
	PropertyID         string          `json:"propertyId"`
	PropertyName       string          `json:"propertyName"`
	Period             PeriodResponse  `json:"period"`
	Currency           string          `json:"currency"`
	TotalUnits         int             `json:"totalUnits"`
	OccupiedUnits      int             `json:"occupiedUnits"`
	OccupancyRate      decimal.Decimal `json:"occupancyRate"`
	ActiveLeases       int             `json:"activeLeases"`
	TotalRevenue       MoneyResponse   `json:"totalRevenue"`
	TotalExpenses      MoneyResponse   `json:"totalExpenses"`
	NetOperatingIncome MoneyResponse   `json:"netOperatingIncome"`
	AverageRentPerUnit MoneyResponse   `json:"averageRentPerUnit"`
}

// ToPropertyPerformanceResponse converts a property performance report.
func ToPropertyPerformanceResponse(r domain.PropertyPerformance, currency string) PropertyPerformanceResponse {
	return PropertyPerformanceResponse{
		PropertyID:         r.PropertyID,
		PropertyName:       r.PropertyName,
		Period:             toPeriodResponse(r.Period),
		Currency:           currency,
		TotalUnits:         r.TotalUnits,
		OccupiedUnits:      r.OccupiedUnits,
		OccupancyRate:      r.OccupancyRate,
		ActiveLeases:       r.ActiveLeases,
		TotalRevenue:       NewMoneyResponse(r.TotalRevenue, currency),
		TotalExpenses:      NewMoneyResponse(r.TotalExpenses, currency),
		NetOperatingIncome: NewMoneyResponse(r.NetOperatingIncome, currency),
		AverageRentPerUnit: NewMoneyResponse(r.AverageRentPerUnit, currency),
	}
}

// SummaryLineResponse is one account row of the transaction summary.
type SummaryLineResponse struct {
	AccountCode string        `json:"accountCode"`
	AccountName string        `json:"accountName"`
	Amount      MoneyResponse `json:"amount"`
	Count       int           `json:"count"`
}

// TransactionSummaryResponse represents the transaction summary report response
type TransactionSummaryResponse struct {
	Period   PeriodResponse        `json:"period"`
	Currency string                `json:"currency"`
	Revenue  []SummaryLineResponse `json:"revenue"`
	Expenses []SummaryLineResponse `json:"expenses"`
}

// ToTransactionSummaryResponse converts a transaction summary, keeping line order.
func ToTransactionSummaryResponse(r domain.TransactionSummary, currency string) TransactionSummaryResponse {
	lines := func(in []domain.SummaryLine) []SummaryLineResponse {
		out := make([]SummaryLineResponse, len(in))
		for i, l := range in {
			out[i] = SummaryLineResponse{
				AccountCode: l.AccountCode,
				AccountName: l.AccountName,
				Amount:      NewMoneyResponse(l.Amount, currency),
				Count:       l.Count,
			}
		}
		return out
	}
	return TransactionSummaryResponse{
		Period:   toPeriodResponse(r.Period),
		Currency: currency,
		Revenue:  lines(r.Revenue),
		Expenses: lines(r.Expenses),
	}
}

// TrialBalanceRowResponse represents a row in the trial balance report response
type TrialBalanceRowResponse struct {
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	AccountType string          `json:"accountType"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// TrialBalanceResponse represents the trial balance report response
type TrialBalanceResponse struct {
	AsOf   string                    `json:"asOf"`
	Rows   []TrialBalanceRowResponse `json:"rows"`
	Totals struct {
		Debit  decimal.Decimal `json:"debit"`
		Credit decimal.Decimal `json:"credit"`
	} `json:"totals"`
	UnknownAccountCodes []string `json:"unknownAccountCodes,omitempty"`
}

// ToTrialBalanceResponse converts a domain trial balance to a DTO response
func ToTrialBalanceResponse(tb domain.TrialBalance) TrialBalanceResponse {
	response := TrialBalanceResponse{
		AsOf:                tb.AsOfDate.Format(domain.DateLayout),
		Rows:                make([]TrialBalanceRowResponse, len(tb.Rows)),
		UnknownAccountCodes: tb.UnknownCodes,
	}
	for i, row := range tb.Rows {
		response.Rows[i] = TrialBalanceRowResponse{
			AccountCode: row.AccountCode,
			AccountName: row.AccountName,
			AccountType: string(row.AccountType),
			Debit:       row.Debit,
			Credit:      row.Credit,
		}
	}
	response.Totals.Debit = tb.TotalDebit
	response.Totals.Credit = tb.TotalCredit
	return response
}
