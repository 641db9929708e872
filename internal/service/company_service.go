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

// CompanyService handles company-related business logic operations.
type CompanyService struct {
	db          *sql.DB
	companyRepo *repository.CompanyRepository
}

// NewCompanyService creates a new CompanyService with the provided repository dependencies.
func NewCompanyService(db *sql.DB, companyRepo *repository.CompanyRepository) *CompanyService {
	return &CompanyService{
		db:          db,
		companyRepo: companyRepo,
	}
}

// GetCompanies returns every company ordered by name.
func (s *CompanyService) GetCompanies(ctx context.Context) ([]model.Company, error) {
	return s.companyRepo.GetCompanies(ctx)
}

// GetCompany retrieves a company by ID.
// Returns apperrors.ErrCompanyNotFound if it does not exist.
func (s *CompanyService) GetCompany(ctx context.Context, companyID string) (model.Company, error) {
	return s.companyRepo.GetCompany(ctx, companyID)
}

// CreateCompany registers a new company from a validated request.
func (s *CompanyService) CreateCompany(ctx context.Context, req request.CreateCompanyRequest) (*model.Company, error) {
	company := &model.Company{
		ID:              uuid.New().String(),
		Name:            strings.TrimSpace(req.Name),
		BusinessType:    req.BusinessType,
		EstablishedDate: req.EstablishedDate,
		Representative:  req.Representative,
		Address:         req.Address,
		Phone:           req.Phone,
		CreatedAt:       time.Now().UTC().Truncate(time.Second),
	}

	if err := s.companyRepo.InsertCompany(ctx, company); err != nil {
		return nil, fmt.Errorf("failed to create company: %w", err)
	}

	return company, nil
}

// UpdateCompany applies the provided fields of req to an existing company.
// Only provided fields in the request are updated; omitted fields remain unchanged.
//
// Returns the updated company, or apperrors.ErrCompanyNotFound if it does not exist.
func (s *CompanyService) UpdateCompany(ctx context.Context, companyID string, req request.UpdateCompanyRequest) (*model.Company, error) {
	var company model.Company

	err := withTx(ctx, s.db, func(tx *sql.Tx) error {
		repo := s.companyRepo.WithTx(tx)

		var err error
		company, err = repo.GetCompany(ctx, companyID)
		if err != nil {
			return err
		}

		if req.Name != nil {
			company.Name = strings.TrimSpace(*req.Name)
		}
		if req.BusinessType != nil {
			company.BusinessType = *req.BusinessType
		}
		if req.EstablishedDate != nil {
			company.EstablishedDate = *req.EstablishedDate
		}
		if req.Representative != nil {
			company.Representative = *req.Representative
		}
		if req.Address != nil {
			company.Address = *req.Address
		}
		if req.Phone != nil {
			company.Phone = *req.Phone
		}

		now := time.Now().UTC().Truncate(time.Second)
		company.UpdatedAt = &now

		if err := repo.UpdateCompany(ctx, &company); err != nil {
			return fmt.Errorf("failed to update company: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &company, nil
}

// DeleteCompany removes a company together with its transactions and snapshots.
// Returns apperrors.ErrCompanyNotFound if it does not exist.
func (s *CompanyService) DeleteCompany(ctx context.Context, companyID string) error {
	return s.companyRepo.DeleteCompany(ctx, companyID)
}
