package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ndewijer/Business-Ledger-Backend/internal/api/request"
	"github.com/ndewijer/Business-Ledger-Backend/internal/api/response"
	"github.com/ndewijer/Business-Ledger-Backend/internal/apperrors"
	"github.com/ndewijer/Business-Ledger-Backend/internal/service"
	"github.com/ndewijer/Business-Ledger-Backend/internal/validation"
)

// CompanyHandler handles HTTP requests for company endpoints.
type CompanyHandler struct {
	companyService *service.CompanyService
}

// NewCompanyHandler creates a new CompanyHandler with the provided service dependency.
func NewCompanyHandler(companyService *service.CompanyService) *CompanyHandler {
	return &CompanyHandler{
		companyService: companyService,
	}
}

// Companies handles GET requests to list every company.
//
// Endpoint: GET /api/company
// Response: 200 OK with array of Company
// Error: 500 Internal Server Error if retrieval fails
func (h *CompanyHandler) Companies(w http.ResponseWriter, r *http.Request) {
	companies, err := h.companyService.GetCompanies(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveCompanies.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, companies)
}

// GetCompany handles GET requests to retrieve a single company.
//
// Endpoint: GET /api/company/{uuid}
// Response: 200 OK with Company
// Error: 400 Bad Request if company ID is invalid (validated by middleware)
// Error: 404 Not Found if company not found
// Error: 500 Internal Server Error if retrieval fails
func (h *CompanyHandler) GetCompany(w http.ResponseWriter, r *http.Request) {
	companyID := chi.URLParam(r, "uuid")

	company, err := h.companyService.GetCompany(r.Context(), companyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrCompanyNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrCompanyNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveCompany.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, company)
}

// CreateCompany handles POST requests to register a new company.
//
// Endpoint: POST /api/company
// Request Body: CreateCompanyRequest (name required; businessType, establishedDate, representative, address, phone optional)
// Response: 201 Created with Company
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 500 Internal Server Error if creation fails
func (h *CompanyHandler) CreateCompany(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateCompanyRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateCompany(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", validationDetails(err))
		return
	}

	company, err := h.companyService.CreateCompany(r.Context(), req)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToCreateCompany.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, company)
}

// UpdateCompany handles PUT requests to update an existing company.
//
// Endpoint: PUT /api/company/{uuid}
// Request Body: UpdateCompanyRequest (all fields optional)
// Response: 200 OK with updated Company
// Error: 400 Bad Request if company ID is invalid (validated by middleware) or validation fails
// Error: 404 Not Found if company not found
// Error: 500 Internal Server Error if update fails
func (h *CompanyHandler) UpdateCompany(w http.ResponseWriter, r *http.Request) {
	companyID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.UpdateCompanyRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateCompany(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", validationDetails(err))
		return
	}

	company, err := h.companyService.UpdateCompany(r.Context(), companyID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrCompanyNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrCompanyNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToUpdateCompany.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, company)
}

// DeleteCompany handles DELETE requests to remove a company and its ledger.
//
// Endpoint: DELETE /api/company/{uuid}
// Response: 204 No Content
// Error: 400 Bad Request if company ID is invalid (validated by middleware)
// Error: 404 Not Found if company not found
// Error: 500 Internal Server Error if deletion fails
func (h *CompanyHandler) DeleteCompany(w http.ResponseWriter, r *http.Request) {
	companyID := chi.URLParam(r, "uuid")

	if err := h.companyService.DeleteCompany(r.Context(), companyID); err != nil {
		if errors.Is(err, apperrors.ErrCompanyNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrCompanyNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToDeleteCompany.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}
