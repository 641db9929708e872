package apperrors

import "errors"

// Domain entity errors represent missing or invalid entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrCompanyNotFound indicates that a company with the given ID does not exist.
	ErrCompanyNotFound = errors.New("company not found")

	// ErrTransactionNotFound indicates that a transaction with the given ID does not exist.
	ErrTransactionNotFound = errors.New("transaction not found")
)

// Business logic errors represent validation failures or constraint violations.
// These errors indicate that an operation cannot be completed due to business rules.
var (
	// ErrInvalidDateRange indicates that the provided date range is invalid
	// (e.g., start date is after end date).
	ErrInvalidDateRange = errors.New("invalid date range")

	// ErrInvalidDate indicates that a date parameter could not be parsed.
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidUUID indicates that a provided ID is not a valid UUID format.
	ErrInvalidUUID = errors.New("invalid UUID format")

	// ErrNegativeAmount indicates that an amount field has an invalid negative value.
	ErrNegativeAmount = errors.New("amount cannot be negative")

	// ErrLedgerUnavailable indicates the configured ledger source could not be reached.
	ErrLedgerUnavailable = errors.New("ledger source unavailable")
)

// Operation failure errors represent system-level failures when retrieving or processing data.
// These errors indicate that an operation failed, but not due to missing entities or validation issues.
var (
	// Company operation errors
	ErrFailedToRetrieveCompanies = errors.New("failed to retrieve companies")
	ErrFailedToRetrieveCompany   = errors.New("failed to retrieve company")
	ErrFailedToCreateCompany     = errors.New("failed to create company")
	ErrFailedToUpdateCompany     = errors.New("failed to update company")
	ErrFailedToDeleteCompany     = errors.New("failed to delete company")

	// Transaction operation errors
	ErrFailedToRetrieveTransactions = errors.New("failed to retrieve transactions")
	ErrFailedToRetrieveTransaction  = errors.New("failed to retrieve transaction")
	ErrFailedToCreateTransaction    = errors.New("failed to create transaction")
	ErrFailedToUpdateTransaction    = errors.New("failed to update transaction")
	ErrFailedToDeleteTransaction    = errors.New("failed to delete transaction")

	// Financial statement errors
	ErrFailedToCalculateStatements = errors.New("failed to calculate financial statements")
	ErrFailedToCalculateMetrics    = errors.New("failed to calculate financial metrics")
	ErrFailedToRetrieveSnapshots   = errors.New("failed to retrieve statement snapshots")
	ErrFailedToSnapshotStatements  = errors.New("failed to snapshot statements")

	// System operation errors
	ErrFailedToGetVersionInfo = errors.New("failed to get version information")
)
