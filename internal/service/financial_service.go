package service

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"golang.org/x/sync/errgroup"

	"github.com/ndewijer/Business-Ledger-Backend/internal/api/request"
	"github.com/ndewijer/Business-Ledger-Backend/internal/apperrors"
	"github.com/ndewijer/Business-Ledger-Backend/internal/model"
	"github.com/ndewijer/Business-Ledger-Backend/internal/repository"
	"github.com/ndewijer/Business-Ledger-Backend/internal/statement"
)

const dateLayout = "2006-01-02"

var (
	statementsComputed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ledger_statements_computed_total",
			Help: "Total number of financial statements computed",
		},
		[]string{"operation", "status"},
	)

	statementDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ledger_statement_duration_seconds",
			Help:    "Time spent fetching and aggregating a financial statement",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)
)

// TransactionFetcher is the single query the statement engine needs from a ledger store:
// every transaction of a company dated between startDate and endDate, both inclusive.
type TransactionFetcher interface {
	FetchTransactions(ctx context.Context, companyID string, startDate, endDate time.Time) ([]model.Transaction, error)
}

// FinancialService computes financial statements and metrics for a company.
// Statements are always recomputed from the ledger; nothing is cached.
type FinancialService struct {
	companyRepo *repository.CompanyRepository
	ledger      TransactionFetcher
	now         func() time.Time
}

// NewFinancialService creates a new FinancialService reading transactions from ledger.
func NewFinancialService(companyRepo *repository.CompanyRepository, ledger TransactionFetcher) *FinancialService {
	return &FinancialService{
		companyRepo: companyRepo,
		ledger:      ledger,
		now:         time.Now,
	}
}

// dateRange is an inclusive pair of calendar dates at midnight UTC.
type dateRange struct {
	start time.Time
	end   time.Time
}

func (d dateRange) period() model.Period {
	return model.Period{StartDate: d.start.Format(dateLayout), EndDate: d.end.Format(dateLayout)}
}

// days returns the number of calendar days covered, counting both ends.
func (d dateRange) days() int {
	return int(d.end.Sub(d.start).Hours()/24) + 1
}

// preceding returns the window of equal length that ends the day before d starts.
func (d dateRange) preceding() dateRange {
	end := d.start.AddDate(0, 0, -1)
	return dateRange{start: end.AddDate(0, 0, -(d.days() - 1)), end: end}
}

// GetFinancialStatements builds the balance sheet and income statement of a company.
//
// Empty dates are defaulted: endDate to today and startDate to January 1st of the end
// date's year. Dates use the YYYY-MM-DD format.
//
// Returns:
//   - apperrors.ErrCompanyNotFound if the company does not exist
//   - apperrors.ErrInvalidDate if a date cannot be parsed
//   - apperrors.ErrInvalidDateRange if startDate is after endDate
func (s *FinancialService) GetFinancialStatements(ctx context.Context, companyID, startDate, endDate string) (model.FinancialStatements, error) {
	if _, err := s.companyRepo.GetCompany(ctx, companyID); err != nil {
		return model.FinancialStatements{}, err
	}

	current, err := s.resolveRange(startDate, endDate)
	if err != nil {
		return model.FinancialStatements{}, err
	}

	return s.statementsFor(ctx, "statements", companyID, current)
}

// GetFinancialMetrics computes ratios for the requested period and, when q asks for a
// comparison period, growth figures against it. Both periods are loaded concurrently.
//
// The comparison period is either the explicit previousStartDate/previousEndDate pair or,
// with q.AutoPrevious, the window of equal length immediately before the current one.
// q is expected to come from request.ParsePeriodQuery, which rejects a partial pair.
func (s *FinancialService) GetFinancialMetrics(ctx context.Context, companyID string, q request.PeriodQuery) (model.FinancialMetrics, error) {
	if _, err := s.companyRepo.GetCompany(ctx, companyID); err != nil {
		return model.FinancialMetrics{}, err
	}

	current, err := s.resolveRange(q.StartDate, q.EndDate)
	if err != nil {
		return model.FinancialMetrics{}, err
	}

	var previous *dateRange
	switch {
	case !q.HasPrevious():
	case q.AutoPrevious:
		p := current.preceding()
		previous = &p
	default:
		p, err := s.resolveRange(q.PreviousStartDate, q.PreviousEndDate)
		if err != nil {
			return model.FinancialMetrics{}, err
		}
		previous = &p
	}

	var currentStatements model.FinancialStatements
	var previousStatements *model.FinancialStatements

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		fs, err := s.statementsFor(gctx, "metrics", companyID, current)
		if err != nil {
			return err
		}
		currentStatements = fs
		return nil
	})
	if previous != nil {
		g.Go(func() error {
			fs, err := s.statementsFor(gctx, "metrics", companyID, *previous)
			if err != nil {
				return err
			}
			previousStatements = &fs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return model.FinancialMetrics{}, err
	}

	return statement.ComputeMetrics(currentStatements, previousStatements), nil
}

func (s *FinancialService) statementsFor(ctx context.Context, operation, companyID string, r dateRange) (model.FinancialStatements, error) {
	timer := prometheus.NewTimer(statementDuration.WithLabelValues(operation))
	defer timer.ObserveDuration()

	transactions, err := s.ledger.FetchTransactions(ctx, companyID, r.start, r.end)
	if err != nil {
		statementsComputed.WithLabelValues(operation, "error").Inc()
		return model.FinancialStatements{}, fmt.Errorf("%w: %w", apperrors.ErrLedgerUnavailable, err)
	}

	statementsComputed.WithLabelValues(operation, "success").Inc()
	return statement.Aggregate(transactions, r.period()), nil
}

// resolveRange parses and defaults a pair of YYYY-MM-DD dates.
func (s *FinancialService) resolveRange(startDate, endDate string) (dateRange, error) {
	now := s.now().UTC()
	end := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	if endDate != "" {
		parsed, err := time.Parse(dateLayout, endDate)
		if err != nil {
			return dateRange{}, fmt.Errorf("%w: endDate %q", apperrors.ErrInvalidDate, endDate)
		}
		end = parsed
	}

	start := time.Date(end.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	if startDate != "" {
		parsed, err := time.Parse(dateLayout, startDate)
		if err != nil {
			return dateRange{}, fmt.Errorf("%w: startDate %q", apperrors.ErrInvalidDate, startDate)
		}
		start = parsed
	}

	if start.After(end) {
		return dateRange{}, fmt.Errorf("%w: start date %s is after end date %s",
			apperrors.ErrInvalidDateRange, start.Format(dateLayout), end.Format(dateLayout))
	}

	return dateRange{start: start, end: end}, nil
}
