package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/lendtrack/backend/internal/db"
	apperrors "github.com/lendtrack/backend/internal/errors"
	"github.com/lendtrack/backend/internal/models"
)

type loanRepository struct {
	db *db.DB
}

// NewLoanRepository creates a new loan repository
func NewLoanRepository(database *db.DB) LoanRepository {
	return &loanRepository{db: database}
}

func (r *loanRepository) Create(ctx context.Context, loan *models.Loan) error {
	if err := r.db.WithContext(ctx).Create(loan).Error; err != nil {
		return fmt.Errorf("failed to create loan: %w", err)
	}
	return nil
}

func (r *loanRepository) GetByID(ctx context.Context, id string) (*models.Loan, error) {
	if id == "" {
		return nil, &apperrors.ErrNotFound{Resource: "loan", ID: id}
	}

	var loan models.Loan
	if err := r.db.WithContext(ctx).First(&loan, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &apperrors.ErrNotFound{Resource: "loan", ID: id}
		}
		return nil, fmt.Errorf("failed to get loan: %w", err)
	}

	return &loan, nil
}

func (r *loanRepository) List(ctx context.Context) ([]*models.Loan, error) {
	var loans []*models.Loan
	if err := r.db.WithContext(ctx).Order("date ASC, created_at ASC").Find(&loans).Error; err != nil {
		return nil, fmt.Errorf("failed to list loans: %w", err)
	}
	return loans, nil
}

func (r *loanRepository) Update(ctx context.Context, loan *models.Loan) error {
	if loan == nil || loan.ID == "" {
		return &apperrors.ErrNotFound{Resource: "loan", ID: ""}
	}

	result := r.db.WithContext(ctx).Model(&models.Loan{}).Where("id = ?", loan.ID).
		Select("customer_name", "date", "loan_amount", "deduction", "net_given", "daily_pay", "days", "is_disabled").
		Updates(loan)
	if result.Error != nil {
		return fmt.Errorf("failed to update loan: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return &apperrors.ErrNotFound{Resource: "loan", ID: loan.ID}
	}
	return nil
}

func (r *loanRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Collections referencing the loan go first so no orphan can
		// survive a partial failure.
		if err := tx.Where("loan_id = ?", id).Delete(&models.Collection{}).Error; err != nil {
			return fmt.Errorf("failed to delete collections for loan: %w", err)
		}

		result := tx.Where("id = ?", id).Delete(&models.Loan{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete loan: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return &apperrors.ErrNotFound{Resource: "loan", ID: id}
		}
		return nil
	})
}
