package service

import "time"

func (s *FinancialService) SetClock(now func() time.Time) { s.now = now }

func (s *SnapshotService) SetClock(now func() time.Time) { s.now = now }

func (s *SnapshotScheduler) SetClock(now func() time.Time) { s.now = now }
