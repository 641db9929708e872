package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ndewijer/Business-Ledger-Backend/internal/apperrors"
	"github.com/ndewijer/Business-Ledger-Backend/internal/model"
	"github.com/ndewijer/Business-Ledger-Backend/internal/repository"
	"github.com/ndewijer/Business-Ledger-Backend/internal/statement"
)

// SnapshotService stores the closing totals of completed months so that statement
// history can be listed without recomputing every month.
type SnapshotService struct {
	snapshotRepo *repository.SnapshotRepository
	companyRepo  *repository.CompanyRepository
	ledger       TransactionFetcher
	concurrency  int
	logger       *zap.Logger
	now          func() time.Time
}

// NewSnapshotService creates a new SnapshotService. concurrency bounds how many
// companies are snapshotted at once; values below 1 are treated as 1.
func NewSnapshotService(
	snapshotRepo *repository.SnapshotRepository,
	companyRepo *repository.CompanyRepository,
	ledger TransactionFetcher,
	concurrency int,
	logger *zap.Logger,
) *SnapshotService {
	if concurrency < 1 {
		concurrency = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SnapshotService{
		snapshotRepo: snapshotRepo,
		companyRepo:  companyRepo,
		ledger:       ledger,
		concurrency:  concurrency,
		logger:       logger,
		now:          time.Now,
	}
}

// MonthRange returns the first and last calendar day of the month containing t, in UTC.
func MonthRange(t time.Time) (time.Time, time.Time) {
	t = t.UTC()
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, -1)
}

// SnapshotMonth recomputes and stores the statements of every company for the month
// containing month. Existing snapshots of that month are replaced.
//
// Returns the number of snapshots written. The first failure cancels the remaining work.
func (s *SnapshotService) SnapshotMonth(ctx context.Context, month time.Time) (int, error) {
	companies, err := s.companyRepo.GetCompanies(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", apperrors.ErrFailedToSnapshotStatements, err)
	}

	start, end := MonthRange(month)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for _, company := range companies {
		g.Go(func() error {
			return s.snapshotCompany(gctx, company.ID, start, end)
		})
	}

	if err := g.Wait(); err != nil {
		return 0, fmt.Errorf("%w: %w", apperrors.ErrFailedToSnapshotStatements, err)
	}

	s.logger.Info("statement snapshots written",
		zap.String("month", start.Format("2006-01")),
		zap.Int("companies", len(companies)),
	)
	return len(companies), nil
}

func (s *SnapshotService) snapshotCompany(ctx context.Context, companyID string, start, end time.Time) error {
	timer := time.Now()

	transactions, err := s.ledger.FetchTransactions(ctx, companyID, start, end)
	if err != nil {
		statementsComputed.WithLabelValues("snapshot", "error").Inc()
		return fmt.Errorf("company %s: %w", companyID, err)
	}

	fs := statement.Aggregate(transactions, model.Period{
		StartDate: start.Format(dateLayout),
		EndDate:   end.Format(dateLayout),
	})
	statementsComputed.WithLabelValues("snapshot", "success").Inc()

	snapshot := model.StatementSnapshot{
		ID:               uuid.New().String(),
		CompanyID:        companyID,
		StartDate:        fs.Period.StartDate,
		EndDate:          fs.Period.EndDate,
		TotalAssets:      fs.BalanceSheet.TotalAssets,
		TotalLiabilities: fs.BalanceSheet.TotalLiabilities,
		TotalEquity:      fs.BalanceSheet.TotalEquity,
		TotalRevenue:     fs.IncomeStatement.TotalRevenue,
		TotalExpense:     fs.IncomeStatement.TotalExpense,
		NetIncome:        fs.IncomeStatement.NetIncome,
		TransactionCount: len(transactions),
		CalculatedAt:     s.now().UTC().Truncate(time.Second),
	}

	if err := s.snapshotRepo.UpsertSnapshot(ctx, snapshot); err != nil {
		return fmt.Errorf("company %s: %w", companyID, err)
	}

	s.logger.Debug("company snapshot stored",
		zap.String("company_id", companyID),
		zap.String("start_date", snapshot.StartDate),
		zap.Int("transactions", snapshot.TransactionCount),
		zap.Duration("duration", time.Since(timer)),
	)
	return nil
}

// GetSnapshots lists a company's stored snapshots, newest period first.
// Returns apperrors.ErrCompanyNotFound if the company does not exist.
func (s *SnapshotService) GetSnapshots(ctx context.Context, companyID string) ([]model.StatementSnapshot, error) {
	if _, err := s.companyRepo.GetCompany(ctx, companyID); err != nil {
		return nil, err
	}

	snapshots := []model.StatementSnapshot{}
	err := s.snapshotRepo.GetSnapshots(ctx, companyID, func(snapshot model.StatementSnapshot) error {
		snapshots = append(snapshots, snapshot)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return snapshots, nil
}
