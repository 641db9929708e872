package model

import "github.com/shopspring/decimal"

// UseNumericAmounts makes every decimal in the process marshal to a JSON number
// instead of a quoted string. Call it once while wiring the application.
func UseNumericAmounts() {
	decimal.MarshalJSONWithoutQuotes = true
}

// NetIncomeAccount is the label of the synthetic equity line carrying net income.
const NetIncomeAccount = "Net Income"

// Period is an inclusive date range in YYYY-MM-DD format.
// It is carried through statement calculations for display only.
type Period struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// AccountSummary is the total of all transactions sharing an account label and type.
type AccountSummary struct {
	Account string          `json:"account"`
	Amount  decimal.Decimal `json:"amount"`
}

// BalanceSheet holds assets, liabilities and equity for a period.
// TotalEquity always equals TotalAssets - TotalLiabilities.
type BalanceSheet struct {
	Assets           []AccountSummary `json:"assets"`
	Liabilities      []AccountSummary `json:"liabilities"`
	Equity           []AccountSummary `json:"equity"`
	TotalAssets      decimal.Decimal  `json:"totalAssets"`
	TotalLiabilities decimal.Decimal  `json:"totalLiabilities"`
	TotalEquity      decimal.Decimal  `json:"totalEquity"`
}

// IncomeStatement holds revenues and expenses for a period.
// NetIncome always equals TotalRevenue - TotalExpense.
type IncomeStatement struct {
	Revenues     []AccountSummary `json:"revenues"`
	Expenses     []AccountSummary `json:"expenses"`
	TotalRevenue decimal.Decimal  `json:"totalRevenue"`
	TotalExpense decimal.Decimal  `json:"totalExpense"`
	NetIncome    decimal.Decimal  `json:"netIncome"`
}

// FinancialStatements is the computed balance sheet and income statement of a company
// for a single period. It is derived on demand and never persisted.
type FinancialStatements struct {
	Period          Period          `json:"period"`
	BalanceSheet    BalanceSheet    `json:"balanceSheet"`
	IncomeStatement IncomeStatement `json:"incomeStatement"`
}

// PeriodFigures is the flattened scalar view of a FinancialStatements used for comparisons.
type PeriodFigures struct {
	TotalRevenue     decimal.Decimal `json:"totalRevenue"`
	TotalExpense     decimal.Decimal `json:"totalExpense"`
	NetIncome        decimal.Decimal `json:"netIncome"`
	TotalAssets      decimal.Decimal `json:"totalAssets"`
	TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
	Equity           decimal.Decimal `json:"equity"`
}

// Growth holds period-over-period percentage changes.
type Growth struct {
	RevenueGrowth   decimal.Decimal `json:"revenueGrowth"`
	ExpenseGrowth   decimal.Decimal `json:"expenseGrowth"`
	NetIncomeGrowth decimal.Decimal `json:"netIncomeGrowth"`
	AssetGrowth     decimal.Decimal `json:"assetGrowth"`
}

// Ratios holds financial ratios for the current period.
// ProfitMargin and ReturnOnAssets are percentages, DebtToEquity is a plain ratio.
type Ratios struct {
	ProfitMargin   decimal.Decimal `json:"profitMargin"`
	ReturnOnAssets decimal.Decimal `json:"returnOnAssets"`
	DebtToEquity   decimal.Decimal `json:"debtToEquity"`
}

// FinancialMetrics compares a current period against an optional previous period.
// PreviousPeriod and Growth are nil when no previous period was supplied.
type FinancialMetrics struct {
	CurrentPeriod  PeriodFigures  `json:"currentPeriod"`
	PreviousPeriod *PeriodFigures `json:"previousPeriod,omitempty"`
	Growth         *Growth        `json:"growth,omitempty"`
	Ratios         Ratios         `json:"ratios"`
}
