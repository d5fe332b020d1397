package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lendtrack/backend/internal/ledger"
	"github.com/lendtrack/backend/internal/models"
	"github.com/lendtrack/backend/internal/repositories"
)

type loanService struct {
	loans       repositories.LoanRepository
	collections repositories.CollectionRepository
	rev         *StoreRevision
}

// NewLoanService creates a new loan service
func NewLoanService(loans repositories.LoanRepository, collections repositories.CollectionRepository, rev *StoreRevision) LoanService {
	return &loanService{loans: loans, collections: collections, rev: rev}
}

func (s *loanService) CreateLoan(ctx context.Context, loan *models.Loan) error {
	if loan.ID == "" {
		loan.ID = uuid.NewString()
	}
	loan.ApplyDefaults()
	if err := loan.Validate(); err != nil {
		return err
	}

	if err := s.loans.Create(ctx, loan); err != nil {
		return err
	}
	s.rev.Bump()

	return s.derive(ctx, loan)
}

func (s *loanService) GetLoan(ctx context.Context, id string) (*models.Loan, error) {
	loan, err := s.loans.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.derive(ctx, loan); err != nil {
		return nil, err
	}
	return loan, nil
}

func (s *loanService) ListLoans(ctx context.Context, status models.LoanStatus) ([]*models.Loan, error) {
	loans, err := s.loans.List(ctx)
	if err != nil {
		return nil, err
	}
	collections, err := s.collections.List(ctx, nil)
	if err != nil {
		return nil, err
	}
	ledger.DeriveLoans(loans, collections)

	if status == "" {
		return loans, nil
	}
	filtered := make([]*models.Loan, 0, len(loans))
	for _, l := range loans {
		if l.Status == status {
			filtered = append(filtered, l)
		}
	}
	return filtered, nil
}

// UpdateLoan applies the non-zero fields of the given loan onto the
// stored record and re-derives it.
func (s *loanService) UpdateLoan(ctx context.Context, loan *models.Loan) error {
	existing, err := s.loans.GetByID(ctx, loan.ID)
	if err != nil {
		return err
	}

	merged := mergeLoanUpdate(existing, loan)
	if err := merged.Validate(); err != nil {
		return err
	}

	if err := s.loans.Update(ctx, merged); err != nil {
		return err
	}
	s.rev.Bump()

	if err := s.derive(ctx, merged); err != nil {
		return err
	}
	*loan = *merged
	return nil
}

func (s *loanService) SetLoanDisabled(ctx context.Context, id string, disabled bool) (*models.Loan, error) {
	loan, err := s.loans.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	loan.IsDisabled = disabled
	if err := s.loans.Update(ctx, loan); err != nil {
		return nil, err
	}
	s.rev.Bump()

	if err := s.derive(ctx, loan); err != nil {
		return nil, err
	}
	return loan, nil
}

func (s *loanService) DeleteLoan(ctx context.Context, id string) error {
	if err := s.loans.Delete(ctx, id); err != nil {
		return err
	}
	s.rev.Bump()
	return nil
}

// derive populates the loan's derived fields from its own collections.
func (s *loanService) derive(ctx context.Context, loan *models.Loan) error {
	collections, err := s.collections.List(ctx, &models.CollectionFilter{LoanID: loan.ID})
	if err != nil {
		return fmt.Errorf("failed to load collections for loan %s: %w", loan.ID, err)
	}
	ledger.DeriveLoan(loan, collections)
	return nil
}

// mergeLoanUpdate applies non-zero fields of update onto a copy of
// existing. The disabled flag is deliberately untouched; it changes only
// through SetLoanDisabled.
func mergeLoanUpdate(existing, update *models.Loan) *models.Loan {
	merged := &models.Loan{}
	*merged = *existing

	if update.CustomerName != "" {
		merged.CustomerName = update.CustomerName
	}
	if !update.Date.IsZero() {
		merged.Date = update.Date
	}
	if !update.LoanAmount.IsZero() {
		merged.LoanAmount = update.LoanAmount
	}
	if !update.Deduction.IsZero() {
		merged.Deduction = update.Deduction
	}
	if !update.NetGiven.IsZero() {
		merged.NetGiven = update.NetGiven
	}
	if !update.DailyPay.IsZero() {
		merged.DailyPay = update.DailyPay
	}
	if update.Days != 0 {
		merged.Days = update.Days
	}

	return merged
}
