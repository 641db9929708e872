package validation

import "github.com/ndewijer/Business-Ledger-Backend/internal/api/request"

// ValidateCreateCompany validates a company creation request.
//
// Required fields:
//   - name: non-blank, at most 200 characters
//
// Optional fields:
//   - establishedDate: YYYY-MM-DD
//   - businessType, representative, address, phone: length limited
func ValidateCreateCompany(req request.CreateCompanyRequest) error {
	return validateStruct(req)
}

// ValidateUpdateCompany validates a company update request.
// All fields are optional, but if provided, they must meet the same constraints as create.
func ValidateUpdateCompany(req request.UpdateCompanyRequest) error {
	return validateStruct(req)
}

// ValidateCreateTransaction validates a transaction creation request.
//
// Required fields:
//   - date: YYYY-MM-DD
//   - account: non-blank
//   - amount: zero or positive
//   - type: one of income, expense, asset, liability
func ValidateCreateTransaction(req request.CreateTransactionRequest) error {
	return validateStruct(req)
}

// ValidateUpdateTransaction validates a transaction update request.
// All fields are optional, but if provided, they must meet the same constraints as create.
func ValidateUpdateTransaction(req request.UpdateTransactionRequest) error {
	return validateStruct(req)
}
