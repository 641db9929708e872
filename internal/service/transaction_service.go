package service

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ndewijer/Business-Ledger-Backend/internal/api/request"
	"github.com/ndewijer/Business-Ledger-Backend/internal/model"
	"github.com/ndewijer/Business-Ledger-Backend/internal/repository"
)

// TransactionService handles transaction-related business logic operations.
type TransactionService struct {
	db              *sql.DB
	transactionRepo *repository.TransactionRepository
	companyRepo     *repository.CompanyRepository
}

// NewTransactionService creates a new TransactionService with the provided repository dependencies.
func NewTransactionService(
	db *sql.DB,
	transactionRepo *repository.TransactionRepository,
	companyRepo *repository.CompanyRepository,
) *TransactionService {
	return &TransactionService{
		db:              db,
		transactionRepo: transactionRepo,
		companyRepo:     companyRepo,
	}
}

// GetTransactionsPerCompany lists a company's transactions, newest first.
// Returns apperrors.ErrCompanyNotFound if the company does not exist.
func (s *TransactionService) GetTransactionsPerCompany(ctx context.Context, companyID string) ([]model.Transaction, error) {
	if _, err := s.companyRepo.GetCompany(ctx, companyID); err != nil {
		return nil, err
	}
	return s.transactionRepo.GetTransactionsPerCompany(ctx, companyID)
}

// GetTransaction retrieves a single transaction by its ID.
func (s *TransactionService) GetTransaction(ctx context.Context, transactionID string) (model.Transaction, error) {
	return s.transactionRepo.GetTransaction(ctx, transactionID)
}

// CreateTransaction records a validated transaction against a company.
// Returns apperrors.ErrCompanyNotFound if the company does not exist.
func (s *TransactionService) CreateTransaction(ctx context.Context, companyID string, req request.CreateTransactionRequest) (*model.Transaction, error) {
	transactionDate, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to parse date: %w", err)
	}

	transaction := &model.Transaction{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		Date:        transactionDate,
		Account:     strings.TrimSpace(req.Account),
		Description: req.Description,
		Amount:      *req.Amount,
		Type:        model.TransactionType(req.Type),
		CreatedAt:   time.Now().UTC().Truncate(time.Second),
	}

	err = withTx(ctx, s.db, func(tx *sql.Tx) error {
		if _, err := s.companyRepo.WithTx(tx).GetCompany(ctx, companyID); err != nil {
			return err
		}
		if err := s.transactionRepo.WithTx(tx).InsertTransaction(ctx, transaction); err != nil {
			return fmt.Errorf("failed to create transaction: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return transaction, nil
}

// UpdateTransaction applies the provided fields of req to an existing transaction.
// Only provided fields in the request are updated; omitted fields remain unchanged.
// The read and the write share one database transaction.
func (s *TransactionService) UpdateTransaction(ctx context.Context, transactionID string, req request.UpdateTransactionRequest) (*model.Transaction, error) {
	var transaction model.Transaction

	err := withTx(ctx, s.db, func(tx *sql.Tx) error {
		repo := s.transactionRepo.WithTx(tx)

		var err error
		transaction, err = repo.GetTransaction(ctx, transactionID)
		if err != nil {
			return err
		}

		if req.Date != nil {
			transaction.Date, err = time.Parse("2006-01-02", *req.Date)
			if err != nil {
				return fmt.Errorf("failed to parse date: %w", err)
			}
		}
		if req.Account != nil {
			transaction.Account = strings.TrimSpace(*req.Account)
		}
		if req.Description != nil {
			transaction.Description = *req.Description
		}
		if req.Amount != nil {
			transaction.Amount = *req.Amount
		}
		if req.Type != nil {
			transaction.Type = model.TransactionType(*req.Type)
		}

		now := time.Now().UTC().Truncate(time.Second)
		transaction.UpdatedAt = &now

		if err := repo.UpdateTransaction(ctx, &transaction); err != nil {
			return fmt.Errorf("failed to update transaction: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &transaction, nil
}

// DeleteTransaction removes a transaction by ID.
// Returns apperrors.ErrTransactionNotFound if it does not exist.
func (s *TransactionService) DeleteTransaction(ctx context.Context, transactionID string) error {
	return s.transactionRepo.DeleteTransaction(ctx, transactionID)
}
