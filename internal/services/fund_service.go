package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/lendtrack/backend/internal/models"
	"github.com/lendtrack/backend/internal/repositories"
)

type fundService struct {
	funds repositories.FundRepository
	rev   *StoreRevision
}

// NewFundService creates a new fund service
func NewFundService(funds repositories.FundRepository, rev *StoreRevision) FundService {
	return &fundService{funds: funds, rev: rev}
}

func (s *fundService) CreateFund(ctx context.Context, fund *models.Fund) error {
	if fund.ID == "" {
		fund.ID = uuid.NewString()
	}
	if err := fund.Validate(); err != nil {
		return err
	}

	if err := s.funds.Create(ctx, fund); err != nil {
		return err
	}
	s.rev.Bump()
	return nil
}

func (s *fundService) ListFunds(ctx context.Context) ([]*models.Fund, error) {
	return s.funds.List(ctx)
}
