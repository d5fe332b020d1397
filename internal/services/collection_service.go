package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/lendtrack/backend/internal/errors"
	"github.com/lendtrack/backend/internal/ledger"
	"github.com/lendtrack/backend/internal/models"
	"github.com/lendtrack/backend/internal/repositories"
)

type collectionService struct {
	loans       repositories.LoanRepository
	collections repositories.CollectionRepository
	rev         *StoreRevision
	now         func() time.Time
}

// NewCollectionService creates a new collection service
func NewCollectionService(loans repositories.LoanRepository, collections repositories.CollectionRepository, rev *StoreRevision) CollectionService {
	return &collectionService{loans: loans, collections: collections, rev: rev, now: time.Now}
}

func (s *collectionService) CreateCollection(ctx context.Context, collection *models.Collection) error {
	if collection.ID == "" {
		collection.ID = uuid.NewString()
	}
	if err := collection.Validate(); err != nil {
		return err
	}

	// A collection must never reference a loan that is not committed.
	loan, err := s.loans.GetByID(ctx, collection.LoanID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return &apperrors.ErrInvalidState{Message: fmt.Sprintf("collection references unknown loan %s", collection.LoanID)}
		}
		return err
	}
	if collection.Customer == "" {
		collection.Customer = loan.CustomerName
	}

	if err := s.collections.Create(ctx, collection); err != nil {
		return err
	}
	s.rev.Bump()
	return nil
}

func (s *collectionService) ListCollections(ctx context.Context, filter *models.CollectionFilter) ([]*models.Collection, error) {
	return s.collections.List(ctx, filter)
}

// SubmitBulkCollection settles a loan in one action. The loan itself is
// never written; the inserted collection changes the derived balance on
// the next read.
func (s *collectionService) SubmitBulkCollection(ctx context.Context, req *models.BulkCollectionRequest) (*models.Collection, error) {
	loan, err := s.loans.GetByID(ctx, req.LoanID)
	if err != nil {
		return nil, err
	}

	existing, err := s.collections.List(ctx, &models.CollectionFilter{LoanID: loan.ID})
	if err != nil {
		return nil, err
	}
	ledger.DeriveLoan(loan, existing)

	collection, err := ledger.ResolveBulkCollection(loan, req, s.now())
	if err != nil {
		return nil, err
	}

	if err := s.collections.Create(ctx, collection); err != nil {
		return nil, err
	}
	s.rev.Bump()
	return collection, nil
}
