package repositories

import (
	"context"
	"fmt"

	"github.com/lendtrack/backend/internal/db"
	"github.com/lendtrack/backend/internal/models"
)

type collectionRepository struct {
	db *db.DB
}

// NewCollectionRepository creates a new collection repository
func NewCollectionRepository(database *db.DB) CollectionRepository {
	return &collectionRepository{db: database}
}

func (r *collectionRepository) Create(ctx context.Context, collection *models.Collection) error {
	if err := r.db.WithContext(ctx).Create(collection).Error; err != nil {
		return fmt.Errorf("failed to create collection: %w", err)
	}
	return nil
}

func (r *collectionRepository) List(ctx context.Context, filter *models.CollectionFilter) ([]*models.Collection, error) {
	query := r.db.WithContext(ctx)

	if filter != nil {
		if filter.LoanID != "" {
			query = query.Where("loan_id = ?", filter.LoanID)
		}
		if filter.StartDate != nil {
			query = query.Where("date >= ?", *filter.StartDate)
		}
		if filter.EndDate != nil {
			query = query.Where("date <= ?", *filter.EndDate)
		}
	}

	query = query.Order("date ASC, created_at ASC")

	if filter != nil && filter.Limit > 0 {
		query = query.Limit(filter.Limit)
		if filter.Offset > 0 {
			query = query.Offset(filter.Offset)
		}
	}

	var collections []*models.Collection
	if err := query.Find(&collections).Error; err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}
	return collections, nil
}
