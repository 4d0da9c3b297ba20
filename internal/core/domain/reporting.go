package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// IncomeRevenue is the revenue section of an income statement.
type IncomeRevenue struct {
	RentalIncome decimal.Decimal `json:"rentalIncome"`
	LateFees     decimal.Decimal `json:"lateFees"`
	TotalRevenue decimal.Decimal `json:"totalRevenue"`
}

// IncomeExpenses is the expense section of an income statement.
// Management is reserved and always zero.
type IncomeExpenses struct {
	Maintenance   decimal.Decimal `json:"maintenance"`
	Utilities     decimal.Decimal `json:"utilities"`
	Insurance     decimal.Decimal `json:"insurance"`
	Taxes         decimal.Decimal `json:"taxes"`
	Management    decimal.Decimal `json:"management"`
	Other         decimal.Decimal `json:"other"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
}

// IncomeStatement reports revenue and expenses over a period.
type IncomeStatement struct {
	Period       Period          `json:"period"`
	Revenue      IncomeRevenue   `json:"revenue"`
	Expenses     IncomeExpenses  `json:"expenses"`
	NetIncome    decimal.Decimal `json:"netIncome"`
	ProfitMargin decimal.Decimal `json:"profitMargin"` // percent; zero when there is no revenue
}

// CurrentAssets lists the asset lines of the balance sheet.
type CurrentAssets struct {
	Cash               decimal.Decimal `json:"cash"`
	AccountsReceivable decimal.Decimal `json:"accountsReceivable"`
	SecurityDeposits   decimal.Decimal `json:"securityDeposits"`
	Total              decimal.Decimal `json:"total"`
}

// BalanceSheetAssets is the asset side of the balance sheet.
type BalanceSheetAssets struct {
	CurrentAssets CurrentAssets   `json:"currentAssets"`
	TotalAssets   decimal.Decimal `json:"totalAssets"`
}

// CurrentLiabilities lists the liability lines of the balance sheet.
type CurrentLiabilities struct {
	AccountsPayable         decimal.Decimal `json:"accountsPayable"`
	SecurityDepositsPayable decimal.Decimal `json:"securityDepositsPayable"`
	PrepaidRent             decimal.Decimal `json:"prepaidRent"`
	Total                   decimal.Decimal `json:"total"`
}

// BalanceSheetLiabilities is the liability side of the balance sheet.
type BalanceSheetLiabilities struct {
	CurrentLiabilities CurrentLiabilities `json:"currentLiabilities"`
	TotalLiabilities   decimal.Decimal    `json:"totalLiabilities"`
}

// BalanceSheetEquity is the equity section. OwnersEquity is always zero.
type BalanceSheetEquity struct {
	RetainedEarnings decimal.Decimal `json:"retainedEarnings"`
	OwnersEquity     decimal.Decimal `json:"ownersEquity"`
	TotalEquity      decimal.Decimal `json:"totalEquity"`
}

// BalanceSheet is a point-in-time snapshot.
type BalanceSheet struct {
	AsOfDate                  time.Time               `json:"asOfDate"`
	Assets                    BalanceSheetAssets      `json:"assets"`
	Liabilities               BalanceSheetLiabilities `json:"liabilities"`
	Equity                    BalanceSheetEquity      `json:"equity"`
	TotalLiabilitiesAndEquity decimal.Decimal         `json:"totalLiabilitiesAndEquity"`
}

// OperatingActivities is the operating section of the cash flow statement.
type OperatingActivities struct {
	NetIncome             decimal.Decimal `json:"netIncome"`
	CashReceived          decimal.Decimal `json:"cashReceived"`
	CashPaid              decimal.Decimal `json:"cashPaid"`
	NetCashFromOperations decimal.Decimal `json:"netCashFromOperations"`
}

// InvestingActivities is always zero: property purchases are not tracked.
type InvestingActivities struct {
	PropertyPurchases    decimal.Decimal `json:"propertyPurchases"`
	PropertyImprovements decimal.Decimal `json:"propertyImprovements"`
	NetCashFromInvesting decimal.Decimal `json:"netCashFromInvesting"`
}

// FinancingActivities is always zero: loans and owner contributions are not tracked.
type FinancingActivities struct {
	LoanProceeds         decimal.Decimal `json:"loanProceeds"`
	LoanPayments         decimal.Decimal `json:"loanPayments"`
	OwnerContributions   decimal.Decimal `json:"ownerContributions"`
	OwnerDistributions   decimal.Decimal `json:"ownerDistributions"`
	NetCashFromFinancing decimal.Decimal `json:"netCashFromFinancing"`
}

// CashFlowStatement reports cash movement over a period on a strict cash basis.
type CashFlowStatement struct {
	Period              Period              `json:"period"`
	OperatingActivities OperatingActivities `json:"operatingActivities"`
	InvestingActivities InvestingActivities `json:"investingActivities"`
	FinancingActivities FinancingActivities `json:"financingActivities"`
	NetCashFlow         decimal.Decimal     `json:"netCashFlow"`
	BeginningCash       decimal.Decimal     `json:"beginningCash"`
	EndingCash          decimal.Decimal     `json:"endingCash"`
}

// PropertyPerformance summarises one property's results over a period.
type PropertyPerformance struct {
	PropertyID         string          `json:"propertyId"`
	PropertyName       string          `json:"propertyName"`
	Period             Period          `json:"period"`
	TotalUnits         int             `json:"totalUnits"`
	OccupiedUnits      int             `json:"occupiedUnits"`
	OccupancyRate      decimal.Decimal `json:"occupancyRate"`
	ActiveLeases       int             `json:"activeLeases"`
	TotalRevenue       decimal.Decimal `json:"totalRevenue"`
	TotalExpenses      decimal.Decimal `json:"totalExpenses"`
	NetOperatingIncome decimal.Decimal `json:"netOperatingIncome"`
	AverageRentPerUnit decimal.Decimal `json:"averageRentPerUnit"`
}

// SummaryLine is one account row of a transaction summary.
type SummaryLine struct {
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	Amount      decimal.Decimal `json:"amount"`
	Count       int             `json:"count"`
}

// TransactionSummary groups a period's activity by account.
type TransactionSummary struct {
	Period   Period        `json:"period"`
	Revenue  []SummaryLine `json:"revenue"`
	Expenses []SummaryLine `json:"expenses"`
}

// TrialBalanceRow represents a single row in a trial balance report
type TrialBalanceRow struct {
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	AccountType AccountType     `json:"accountType"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// TrialBalance lists per-account totals. UnknownCodes holds posted codes missing from the chart.
type TrialBalance struct {
	AsOfDate     time.Time         `json:"asOfDate"`
	Rows         []TrialBalanceRow `json:"rows"`
	TotalDebit   decimal.Decimal   `json:"totalDebit"`
	TotalCredit  decimal.Decimal   `json:"totalCredit"`
	UnknownCodes []string          `json:"unknownCodes,omitempty"`
}
