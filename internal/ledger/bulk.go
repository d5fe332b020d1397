package ledger

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	apperrors "github.com/lendtrack/backend/internal/errors"
	"github.com/lendtrack/backend/internal/models"
)

// DefaultCollector is recorded on synthesized collections when the
// caller does not name one.
const DefaultCollector = "System"

// ResolveBulkCollection turns a settlement request into a single
// collection record against the given loan. The loan must already carry
// derived fields (see DeriveLoan); the resolver never mutates it — the
// balance change is entirely a consequence of re-derivation after the
// returned collection is stored.
func ResolveBulkCollection(loan *models.Loan, req *models.BulkCollectionRequest, now time.Time) (*models.Collection, error) {
	if loan.Status == models.LoanStatusDisabled {
		return nil, &apperrors.ErrInvalidState{Message: fmt.Sprintf("loan %s is disabled", loan.ID)}
	}

	var amount decimal.Decimal
	var remarks string

	switch req.Mode {
	case models.BulkModeFull:
		if !loan.Balance.IsPositive() {
			return nil, &apperrors.ErrInvalidState{Message: fmt.Sprintf("loan %s has no outstanding balance", loan.ID)}
		}
		amount = loan.Balance
		remarks = fmt.Sprintf("%d days bulk collection", loan.Days)
	case models.BulkModeCustom:
		if !req.Amount.IsPositive() {
			return nil, &apperrors.ErrValidation{Field: "amount", Message: "must be positive"}
		}
		if req.Amount.GreaterThan(loan.Balance) {
			return nil, &apperrors.ErrValidation{
				Field:   "amount",
				Message: fmt.Sprintf("exceeds outstanding balance of %s", loan.Balance.String()),
			}
		}
		amount = req.Amount
		remarks = "Custom bulk collection"
	default:
		return nil, &apperrors.ErrValidation{Field: "mode", Message: "must be \"full\" or \"custom\""}
	}

	collectedBy := req.CollectedBy
	if collectedBy == "" {
		collectedBy = DefaultCollector
	}
	if req.Remarks != "" {
		remarks = req.Remarks
	}

	return &models.Collection{
		ID:          "bulk-" + uuid.NewString(),
		Date:        now,
		LoanID:      loan.ID,
		Customer:    loan.CustomerName,
		AmountPaid:  amount,
		CollectedBy: collectedBy,
		Remarks:     remarks,
	}, nil
}
