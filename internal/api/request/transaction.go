package request

import "github.com/shopspring/decimal"

// CreateTransactionRequest is the body of POST /api/company/{uuid}/transaction.
type CreateTransactionRequest struct {
	Date        string           `json:"date" validate:"required,datetime=2006-01-02"`
	Account     string           `json:"account" validate:"required,notblank,max=200"`
	Description string           `json:"description" validate:"max=1000"`
	Amount      *decimal.Decimal `json:"amount" validate:"required,gte=0"`
	Type        string           `json:"type" validate:"required,oneof=income expense asset liability"`
}

// UpdateTransactionRequest is the body of PUT /api/transaction/{uuid}. Nil fields are left unchanged.
type UpdateTransactionRequest struct {
	Date        *string          `json:"date,omitempty" validate:"omitnil,datetime=2006-01-02"`
	Account     *string          `json:"account,omitempty" validate:"omitnil,notblank,max=200"`
	Description *string          `json:"description,omitempty" validate:"omitnil,max=1000"`
	Amount      *decimal.Decimal `json:"amount,omitempty" validate:"omitnil,gte=0"`
	Type        *string          `json:"type,omitempty" validate:"omitnil,oneof=income expense asset liability"`
}
