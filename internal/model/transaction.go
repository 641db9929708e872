package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies which statement section a transaction contributes to.
type TransactionType string

const (
	TransactionTypeIncome    TransactionType = "income"
	TransactionTypeExpense   TransactionType = "expense"
	TransactionTypeAsset     TransactionType = "asset"
	TransactionTypeLiability TransactionType = "liability"
)

// ValidTransactionTypes contains the allowed transaction type values.
var ValidTransactionTypes = map[TransactionType]bool{
	TransactionTypeIncome:    true,
	TransactionTypeExpense:   true,
	TransactionTypeAsset:     true,
	TransactionTypeLiability: true,
}

// Transaction represents a single ledger entry recorded against a company.
// Amount is always a non-negative magnitude; the direction is implied by Type.
type Transaction struct {
	ID          string          `json:"id"`
	CompanyID   string          `json:"companyId"`
	Date        time.Time       `json:"date"`
	Account     string          `json:"account"`
	Description string          `json:"description,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Type        TransactionType `json:"type"`
	CreatedAt   time.Time       `json:"createdAt,omitempty"`
	UpdatedAt   *time.Time      `json:"updatedAt,omitempty"`
}
