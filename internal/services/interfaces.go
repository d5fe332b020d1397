package services

import (
	"context"
	"time"

	"github.com/lendtrack/backend/internal/models"
)

// LoanService defines the interface for loan operations. Every loan it
// returns carries freshly derived balance, status and profit figures.
type LoanService interface {
	CreateLoan(ctx context.Context, loan *models.Loan) error
	GetLoan(ctx context.Context, id string) (*models.Loan, error)
	ListLoans(ctx context.Context, status models.LoanStatus) ([]*models.Loan, error)
	UpdateLoan(ctx context.Context, loan *models.Loan) error
	SetLoanDisabled(ctx context.Context, id string, disabled bool) (*models.Loan, error)
	DeleteLoan(ctx context.Context, id string) error
}

// CollectionService defines the interface for repayment operations.
type CollectionService interface {
	CreateCollection(ctx context.Context, collection *models.Collection) error
	ListCollections(ctx context.Context, filter *models.CollectionFilter) ([]*models.Collection, error)
	// SubmitBulkCollection settles a loan's balance (or a custom amount)
	// with one synthesized collection.
	SubmitBulkCollection(ctx context.Context, req *models.BulkCollectionRequest) (*models.Collection, error)
}

// FundService defines the interface for manual cash-ledger entries.
type FundService interface {
	CreateFund(ctx context.Context, fund *models.Fund) error
	ListFunds(ctx context.Context) ([]*models.Fund, error)
}

// ReportingService defines the interface for derived views over the
// whole record store.
type ReportingService interface {
	GetLedger(ctx context.Context) ([]*models.LedgerRow, error)
	GetAggregateReport(ctx context.Context, asOf time.Time) (*models.AggregateReport, error)
}
