package repositories

import (
	"context"

	"github.com/lendtrack/backend/internal/models"
)

// LoanRepository defines the interface for loan record operations.
// Implementations store only the static input fields; derived figures
// are recomputed by callers and never round-trip through storage.
type LoanRepository interface {
	Create(ctx context.Context, loan *models.Loan) error
	GetByID(ctx context.Context, id string) (*models.Loan, error)
	List(ctx context.Context) ([]*models.Loan, error)
	Update(ctx context.Context, loan *models.Loan) error
	// Delete removes the loan and every collection referencing it in a
	// single transaction.
	Delete(ctx context.Context, id string) error
}

// CollectionRepository defines the interface for collection record
// operations. Collections are insert-only.
type CollectionRepository interface {
	Create(ctx context.Context, collection *models.Collection) error
	List(ctx context.Context, filter *models.CollectionFilter) ([]*models.Collection, error)
}

// FundRepository defines the interface for manual fund entries. Insert
// recomputes the stored running balance across all funds ordered by
// date; callers never supply a balance.
type FundRepository interface {
	Create(ctx context.Context, fund *models.Fund) error
	List(ctx context.Context) ([]*models.Fund, error)
}
