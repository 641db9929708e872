package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/ndewijer/Business-Ledger-Backend/internal/api/handlers"
	custommiddleware "github.com/ndewijer/Business-Ledger-Backend/internal/api/middleware"
	"github.com/ndewijer/Business-Ledger-Backend/internal/config"
	"github.com/ndewijer/Business-Ledger-Backend/internal/service"
)

// Services groups the services the HTTP layer delegates to.
type Services struct {
	System      *service.SystemService
	Company     *service.CompanyService
	Transaction *service.TransactionService
	Financial   *service.FinancialService
	Snapshot    *service.SnapshotService
}

// NewRouter creates and configures the HTTP router
func NewRouter(services Services, cfg *config.Config, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger(logger))
	r.Use(custommiddleware.Metrics)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	r.Handle("/metrics", promhttp.Handler())

	systemHandler := handlers.NewSystemHandler(services.System)
	companyHandler := handlers.NewCompanyHandler(services.Company)
	transactionHandler := handlers.NewTransactionHandler(services.Transaction)
	financialHandler := handlers.NewFinancialHandler(services.Financial, services.Snapshot)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		r.Route("/company", func(r chi.Router) {
			r.Get("/", companyHandler.Companies)
			r.Post("/", companyHandler.CreateCompany)

			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", companyHandler.GetCompany)
				r.Put("/", companyHandler.UpdateCompany)
				r.Delete("/", companyHandler.DeleteCompany)

				r.Get("/transaction", transactionHandler.TransactionsPerCompany)
				r.Post("/transaction", transactionHandler.CreateTransaction)

				r.Route("/financials", func(r chi.Router) {
					r.Get("/", financialHandler.Statements)
					r.Get("/metrics", financialHandler.Metrics)
					r.Get("/snapshots", financialHandler.Snapshots)
				})
			})
		})

		r.Route("/transaction/{uuid}", func(r chi.Router) {
			r.Use(custommiddleware.ValidateUUIDMiddleware)
			r.Get("/", transactionHandler.GetTransaction)
			r.Put("/", transactionHandler.UpdateTransaction)
			r.Delete("/", transactionHandler.DeleteTransaction)
		})
	})

	return r
}
