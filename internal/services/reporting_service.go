package services

import (
	"context"
	"sync"
	"time"

	"github.com/lendtrack/backend/internal/ledger"
	"github.com/lendtrack/backend/internal/models"
	"github.com/lendtrack/backend/internal/repositories"
)

type reportingService struct {
	loans       repositories.LoanRepository
	collections repositories.CollectionRepository
	funds       repositories.FundRepository
	rev         *StoreRevision

	mu         sync.Mutex
	cachedRev  uint64
	cachedRows []*models.LedgerRow
}

// NewReportingService creates a new reporting service
func NewReportingService(loans repositories.LoanRepository, collections repositories.CollectionRepository, funds repositories.FundRepository, rev *StoreRevision) ReportingService {
	return &reportingService{loans: loans, collections: collections, funds: funds, rev: rev}
}

// GetLedger returns the unified ledger, memoized against the store
// revision: the ledger is rebuilt in full only after some record set
// changed.
func (s *reportingService) GetLedger(ctx context.Context) ([]*models.LedgerRow, error) {
	rev := s.rev.Current()

	s.mu.Lock()
	if s.cachedRows != nil && s.cachedRev == rev {
		rows := s.cachedRows
		s.mu.Unlock()
		return rows, nil
	}
	s.mu.Unlock()

	funds, loans, collections, err := s.loadAll(ctx)
	if err != nil {
		return nil, err
	}
	rows := ledger.BuildLedger(funds, loans, collections)

	s.mu.Lock()
	s.cachedRev = rev
	s.cachedRows = rows
	s.mu.Unlock()

	return rows, nil
}

func (s *reportingService) GetAggregateReport(ctx context.Context, asOf time.Time) (*models.AggregateReport, error) {
	funds, loans, collections, err := s.loadAll(ctx)
	if err != nil {
		return nil, err
	}
	return ledger.ComputeAggregates(loans, collections, funds, asOf), nil
}

func (s *reportingService) loadAll(ctx context.Context) ([]*models.Fund, []*models.Loan, []*models.Collection, error) {
	funds, err := s.funds.List(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	loans, err := s.loans.List(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	collections, err := s.collections.List(ctx, nil)
	if err != nil {
		return nil, nil, nil, err
	}
	return funds, loans, collections, nil
}
