package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ndewijer/Business-Ledger-Backend/internal/apperrors"
	"github.com/ndewijer/Business-Ledger-Backend/internal/repository"
	"github.com/ndewijer/Business-Ledger-Backend/internal/service"
	"github.com/ndewijer/Business-Ledger-Backend/internal/testutil"
)

func TestMonthRange(t *testing.T) {
	tests := []struct {
		in         time.Time
		start, end string
	}{
		{time.Date(2024, 2, 15, 23, 59, 0, 0, time.UTC), "2024-02-01", "2024-02-29"},
		{time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC), "2023-02-01", "2023-02-28"},
		{time.Date(2024, 12, 31, 12, 0, 0, 0, time.UTC), "2024-12-01", "2024-12-31"},
	}

	for _, tt := range tests {
		start, end := service.MonthRange(tt.in)
		if got := start.Format("2006-01-02"); got != tt.start {
			t.Errorf("MonthRange(%s) start = %s, want %s", tt.in, got, tt.start)
		}
		if got := end.Format("2006-01-02"); got != tt.end {
			t.Errorf("MonthRange(%s) end = %s, want %s", tt.in, got, tt.end)
		}
	}
}

// TestSnapshotService_SnapshotMonth tests monthly snapshot persistence.
//
// WHY: Snapshots are rerun by the scheduler and by operators. A rerun must replace the
// stored month rather than duplicate it, and every company must be covered.
func TestSnapshotService_SnapshotMonth(t *testing.T) {
	t.Run("stores one snapshot per company", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSnapshotService(t, db)
		withLedger := testutil.NewCompany().Build(t, db)
		testutil.CreateLedger(t, db, withLedger.ID)
		empty := testutil.NewCompany().Build(t, db)

		// Execute
		written, err := svc.SnapshotMonth(context.Background(), time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC))

		// Assert
		if err != nil {
			t.Fatalf("SnapshotMonth() returned unexpected error: %v", err)
		}
		if written != 2 {
			t.Errorf("Expected 2 snapshots written, got %d", written)
		}

		snapshots, err := svc.GetSnapshots(context.Background(), withLedger.ID)
		if err != nil {
			t.Fatalf("GetSnapshots() returned unexpected error: %v", err)
		}
		if len(snapshots) != 1 {
			t.Fatalf("Expected 1 snapshot, got %d", len(snapshots))
		}
		s := snapshots[0]
		if s.StartDate != "2024-01-01" || s.EndDate != "2024-01-31" {
			t.Errorf("Unexpected period %s to %s", s.StartDate, s.EndDate)
		}
		if !s.TotalEquity.Equal(decimal.NewFromInt(3000)) || !s.NetIncome.Equal(decimal.NewFromInt(700)) {
			t.Errorf("Unexpected totals: equity %s, net income %s", s.TotalEquity, s.NetIncome)
		}

		emptySnapshots, err := svc.GetSnapshots(context.Background(), empty.ID)
		if err != nil {
			t.Fatalf("GetSnapshots() returned unexpected error: %v", err)
		}
		if len(emptySnapshots) != 1 || emptySnapshots[0].TransactionCount != 0 {
			t.Errorf("Expected an empty snapshot for company without transactions, got %+v", emptySnapshots)
		}
	})

	t.Run("rerunning a month replaces the snapshot", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSnapshotService(t, db)
		svc.SetClock(func() time.Time { return time.Date(2024, 2, 1, 2, 0, 0, 0, time.UTC) })
		company := testutil.NewCompany().Build(t, db)
		testutil.CreateLedger(t, db, company.ID)
		month := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

		if _, err := svc.SnapshotMonth(context.Background(), month); err != nil {
			t.Fatalf("SnapshotMonth() returned unexpected error: %v", err)
		}

		// A late entry for January arrives before the rerun.
		testutil.NewTransaction(company.ID).WithDate(time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)).WithAmount("50").Build(t, db)
		svc.SetClock(func() time.Time { return time.Date(2024, 2, 2, 2, 0, 0, 0, time.UTC) })

		if _, err := svc.SnapshotMonth(context.Background(), month); err != nil {
			t.Fatalf("SnapshotMonth() rerun returned unexpected error: %v", err)
		}

		snapshots, err := svc.GetSnapshots(context.Background(), company.ID)
		if err != nil {
			t.Fatalf("GetSnapshots() returned unexpected error: %v", err)
		}
		if len(snapshots) != 1 {
			t.Fatalf("Expected 1 snapshot after rerun, got %d", len(snapshots))
		}
		if !snapshots[0].TotalRevenue.Equal(decimal.NewFromInt(1050)) {
			t.Errorf("Expected revenue 1050 after rerun, got %s", snapshots[0].TotalRevenue)
		}
		if snapshots[0].TransactionCount != 6 {
			t.Errorf("Expected 6 transactions, got %d", snapshots[0].TransactionCount)
		}
		if !snapshots[0].CalculatedAt.Equal(time.Date(2024, 2, 2, 2, 0, 0, 0, time.UTC)) {
			t.Errorf("Expected calculatedAt of the rerun, got %s", snapshots[0].CalculatedAt)
		}
	})

	t.Run("lists newest period first", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSnapshotService(t, db)
		company := testutil.NewCompany().Build(t, db)

		for _, m := range []time.Month{time.January, time.March, time.February} {
			if _, err := svc.SnapshotMonth(context.Background(), time.Date(2024, m, 1, 0, 0, 0, 0, time.UTC)); err != nil {
				t.Fatalf("SnapshotMonth(%s) returned unexpected error: %v", m, err)
			}
		}

		snapshots, err := svc.GetSnapshots(context.Background(), company.ID)
		if err != nil {
			t.Fatalf("GetSnapshots() returned unexpected error: %v", err)
		}
		if len(snapshots) != 3 {
			t.Fatalf("Expected 3 snapshots, got %d", len(snapshots))
		}
		if snapshots[0].StartDate != "2024-03-01" || snapshots[2].StartDate != "2024-01-01" {
			t.Errorf("Unexpected order: %s, %s, %s", snapshots[0].StartDate, snapshots[1].StartDate, snapshots[2].StartDate)
		}
	})

	t.Run("fails when the ledger is unavailable", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := service.NewSnapshotService(
			repository.NewSnapshotRepository(db),
			repository.NewCompanyRepository(db),
			unavailableLedger{},
			1,
			nil,
		)
		testutil.NewCompany().Build(t, db)

		_, err := svc.SnapshotMonth(context.Background(), time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

		if !errors.Is(err, apperrors.ErrFailedToSnapshotStatements) {
			t.Errorf("Expected ErrFailedToSnapshotStatements, got %v", err)
		}
	})

	t.Run("GetSnapshots returns ErrCompanyNotFound", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSnapshotService(t, db)

		_, err := svc.GetSnapshots(context.Background(), testutil.MakeID())

		if !errors.Is(err, apperrors.ErrCompanyNotFound) {
			t.Errorf("Expected ErrCompanyNotFound, got %v", err)
		}
	})
}

func TestSnapshotScheduler(t *testing.T) {
	t.Run("rejects an invalid schedule", func(t *testing.T) {
		db := testutil.SetupTestDB(t)

		_, err := service.NewSnapshotScheduler(testutil.NewTestSnapshotService(t, db), "every month", nil)

		if err == nil {
			t.Error("Expected error for invalid cron expression")
		}
	})

	t.Run("RunPreviousMonth snapshots the month before now", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSnapshotService(t, db)
		company := testutil.NewCompany().Build(t, db)
		testutil.CreateLedger(t, db, company.ID)

		scheduler, err := service.NewSnapshotScheduler(svc, "0 2 1 * *", nil)
		if err != nil {
			t.Fatalf("NewSnapshotScheduler() returned unexpected error: %v", err)
		}
		scheduler.SetClock(func() time.Time { return time.Date(2024, 2, 1, 2, 0, 0, 0, time.UTC) })

		written, err := scheduler.RunPreviousMonth(context.Background())
		if err != nil {
			t.Fatalf("RunPreviousMonth() returned unexpected error: %v", err)
		}
		if written != 1 {
			t.Errorf("Expected 1 snapshot written, got %d", written)
		}

		snapshots, err := svc.GetSnapshots(context.Background(), company.ID)
		if err != nil {
			t.Fatalf("GetSnapshots() returned unexpected error: %v", err)
		}
		if len(snapshots) != 1 || snapshots[0].StartDate != "2024-01-01" {
			t.Errorf("Expected January snapshot, got %+v", snapshots)
		}
	})

	t.Run("Start and Stop", func(t *testing.T) {
		db := testutil.SetupTestDB(t)

		scheduler, err := service.NewSnapshotScheduler(testutil.NewTestSnapshotService(t, db), "@monthly", nil)
		if err != nil {
			t.Fatalf("NewSnapshotScheduler() returned unexpected error: %v", err)
		}

		scheduler.Start()
		select {
		case <-scheduler.Stop().Done():
		case <-time.After(time.Second):
			t.Error("Expected Stop to finish promptly when no job is running")
		}
	})
}
