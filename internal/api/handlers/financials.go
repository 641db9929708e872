package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ndewijer/Business-Ledger-Backend/internal/api/request"
	"github.com/ndewijer/Business-Ledger-Backend/internal/api/response"
	"github.com/ndewijer/Business-Ledger-Backend/internal/apperrors"
	"github.com/ndewijer/Business-Ledger-Backend/internal/service"
)

// FinancialHandler handles HTTP requests for computed financial statements.
type FinancialHandler struct {
	financialService *service.FinancialService
	snapshotService  *service.SnapshotService
}

// NewFinancialHandler creates a new FinancialHandler with the provided service dependencies.
func NewFinancialHandler(financialService *service.FinancialService, snapshotService *service.SnapshotService) *FinancialHandler {
	return &FinancialHandler{
		financialService: financialService,
		snapshotService:  snapshotService,
	}
}

// Statements handles GET requests for a company's balance sheet and income statement.
// A missing endDate defaults to today. A missing startDate defaults to January 1st of
// the end date's year, not of the current year, so endDate=2023-06-30 alone covers
// 2023-01-01 through 2023-06-30.
//
// Endpoint: GET /api/company/{uuid}/financials
// Query Parameters: startDate, endDate (YYYY-MM-DD, optional)
// Response: 200 OK with FinancialStatements
// Error: 400 Bad Request if a date is malformed or startDate is after endDate
// Error: 404 Not Found if company not found
// Error: 500 Internal Server Error if the ledger cannot be read
func (h *FinancialHandler) Statements(w http.ResponseWriter, r *http.Request) {
	companyID := chi.URLParam(r, "uuid")

	q, err := request.ParsePeriodQuery(r.URL.Query().Get("startDate"), r.URL.Query().Get("endDate"), "", "", "")
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid period", err.Error())
		return
	}

	statements, err := h.financialService.GetFinancialStatements(r.Context(), companyID, q.StartDate, q.EndDate)
	if err != nil {
		respondFinancialError(w, err, apperrors.ErrFailedToCalculateStatements)
		return
	}

	response.RespondJSON(w, http.StatusOK, statements)
}

// Metrics handles GET requests for ratios and, optionally, growth against a previous period.
//
// Endpoint: GET /api/company/{uuid}/financials/metrics
// Query Parameters: startDate, endDate, previousStartDate, previousEndDate (YYYY-MM-DD), previous=auto
// Response: 200 OK with FinancialMetrics
// Error: 400 Bad Request if the period parameters are invalid
// Error: 404 Not Found if company not found
// Error: 500 Internal Server Error if the ledger cannot be read
func (h *FinancialHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	companyID := chi.URLParam(r, "uuid")
	query := r.URL.Query()

	q, err := request.ParsePeriodQuery(
		query.Get("startDate"),
		query.Get("endDate"),
		query.Get("previousStartDate"),
		query.Get("previousEndDate"),
		query.Get("previous"),
	)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid period", err.Error())
		return
	}

	metrics, err := h.financialService.GetFinancialMetrics(r.Context(), companyID, q)
	if err != nil {
		respondFinancialError(w, err, apperrors.ErrFailedToCalculateMetrics)
		return
	}

	response.RespondJSON(w, http.StatusOK, metrics)
}

// Snapshots handles GET requests for the stored monthly statement snapshots of a company.
//
// Endpoint: GET /api/company/{uuid}/financials/snapshots
// Response: 200 OK with array of StatementSnapshot, newest first
// Error: 404 Not Found if company not found
// Error: 500 Internal Server Error if retrieval fails
func (h *FinancialHandler) Snapshots(w http.ResponseWriter, r *http.Request) {
	companyID := chi.URLParam(r, "uuid")

	snapshots, err := h.snapshotService.GetSnapshots(r.Context(), companyID)
	if err != nil {
		respondFinancialError(w, err, apperrors.ErrFailedToRetrieveSnapshots)
		return
	}

	response.RespondJSON(w, http.StatusOK, snapshots)
}

func respondFinancialError(w http.ResponseWriter, err error, failure error) {
	switch {
	case errors.Is(err, apperrors.ErrCompanyNotFound):
		response.RespondError(w, http.StatusNotFound, apperrors.ErrCompanyNotFound.Error(), err.Error())
	case errors.Is(err, apperrors.ErrInvalidDate), errors.Is(err, apperrors.ErrInvalidDateRange):
		response.RespondError(w, http.StatusBadRequest, "invalid period", err.Error())
	default:
		response.RespondError(w, http.StatusInternalServerError, failure.Error(), err.Error())
	}
}
