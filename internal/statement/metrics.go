package statement

import (
	"github.com/shopspring/decimal"

	"github.com/ndewijer/Business-Ledger-Backend/internal/model"
)

var hundred = decimal.NewFromInt(100)

// ComputeMetrics derives ratios for current and, when previous is not nil, the
// period-over-period growth of revenue, expense, net income and assets.
//
// Every division is guarded: a zero denominator yields 0 instead of an error, so the
// function is defined for any pair of statements. Growth and PreviousPeriod are left
// nil when previous is nil.
func ComputeMetrics(current model.FinancialStatements, previous *model.FinancialStatements) model.FinancialMetrics {
	cur := Figures(current)

	metrics := model.FinancialMetrics{
		CurrentPeriod: cur,
		Ratios:        ratios(cur),
	}
	if previous == nil {
		return metrics
	}

	prev := Figures(*previous)
	metrics.PreviousPeriod = &prev
	metrics.Growth = &model.Growth{
		RevenueGrowth:   growth(cur.TotalRevenue, prev.TotalRevenue),
		ExpenseGrowth:   growth(cur.TotalExpense, prev.TotalExpense),
		NetIncomeGrowth: growth(cur.NetIncome, prev.NetIncome),
		AssetGrowth:     growth(cur.TotalAssets, prev.TotalAssets),
	}

	return metrics
}

// Figures flattens statements into the scalar snapshot used for comparisons.
func Figures(fs model.FinancialStatements) model.PeriodFigures {
	return model.PeriodFigures{
		TotalRevenue:     fs.IncomeStatement.TotalRevenue,
		TotalExpense:     fs.IncomeStatement.TotalExpense,
		NetIncome:        fs.IncomeStatement.NetIncome,
		TotalAssets:      fs.BalanceSheet.TotalAssets,
		TotalLiabilities: fs.BalanceSheet.TotalLiabilities,
		Equity:           fs.BalanceSheet.TotalEquity,
	}
}

func ratios(f model.PeriodFigures) model.Ratios {
	return model.Ratios{
		ProfitMargin:   percentOf(f.NetIncome, f.TotalRevenue),
		ReturnOnAssets: percentOf(f.NetIncome, f.TotalAssets),
		DebtToEquity:   safeDiv(f.TotalLiabilities, f.Equity),
	}
}

// growth returns (current - previous) / previous * 100, or 0 when previous is 0.
func growth(current, previous decimal.Decimal) decimal.Decimal {
	return percentOf(current.Sub(previous), previous)
}

func percentOf(numerator, denominator decimal.Decimal) decimal.Decimal {
	if denominator.IsZero() {
		return decimal.Zero
	}
	return numerator.Mul(hundred).Div(denominator)
}

func safeDiv(numerator, denominator decimal.Decimal) decimal.Decimal {
	if denominator.IsZero() {
		return decimal.Zero
	}
	return numerator.Div(denominator)
}
