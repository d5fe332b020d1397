package repositories

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/lendtrack/backend/internal/db"
	"github.com/lendtrack/backend/internal/models"
)

type fundRepository struct {
	db *db.DB
}

// NewFundRepository creates a new fund repository
func NewFundRepository(database *db.DB) FundRepository {
	return &fundRepository{db: database}
}

// Create inserts the fund entry and recomputes the stored running
// balance of every fund, ordered by entry date. Any balance supplied by
// the caller is discarded; insertion order never matters.
func (r *fundRepository) Create(ctx context.Context, fund *models.Fund) error {
	fund.Balance = decimal.Zero

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(fund).Error; err != nil {
			return fmt.Errorf("failed to create fund: %w", err)
		}

		var funds []*models.Fund
		if err := tx.Order("date ASC, created_at ASC, id ASC").Find(&funds).Error; err != nil {
			return fmt.Errorf("failed to list funds for balance recompute: %w", err)
		}

		running := decimal.Zero
		for _, f := range funds {
			running = running.Add(f.Inflow).Sub(f.Outflow)
			if err := tx.Model(&models.Fund{}).Where("id = ?", f.ID).Update("balance", running).Error; err != nil {
				return fmt.Errorf("failed to update fund balance: %w", err)
			}
			if f.ID == fund.ID {
				fund.Balance = running
			}
		}
		return nil
	})
}

func (r *fundRepository) List(ctx context.Context) ([]*models.Fund, error) {
	var funds []*models.Fund
	if err := r.db.WithContext(ctx).Order("date ASC, created_at ASC, id ASC").Find(&funds).Error; err != nil {
		return nil, fmt.Errorf("failed to list funds: %w", err)
	}
	return funds, nil
}
