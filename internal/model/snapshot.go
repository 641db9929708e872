package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatementSnapshot is the stored closing position of a company for a completed month.
// Snapshots are history only; live statements are always recomputed from transactions.
type StatementSnapshot struct {
	ID               string          `json:"id"`
	CompanyID        string          `json:"companyId"`
	StartDate        string          `json:"startDate"`
	EndDate          string          `json:"endDate"`
	TotalAssets      decimal.Decimal `json:"totalAssets"`
	TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
	TotalEquity      decimal.Decimal `json:"totalEquity"`
	TotalRevenue     decimal.Decimal `json:"totalRevenue"`
	TotalExpense     decimal.Decimal `json:"totalExpense"`
	NetIncome        decimal.Decimal `json:"netIncome"`
	TransactionCount int             `json:"transactionCount"`
	CalculatedAt     time.Time       `json:"calculatedAt"`
}
