package models

import (
	"time"

	"github.com/shopspring/decimal"

	apperrors "github.com/lendtrack/backend/internal/errors"
)

// Collection is a single repayment event against a loan. Collections are
// immutable after creation; they disappear only when the owning loan is
// deleted.
type Collection struct {
	ID          string          `json:"id" gorm:"primaryKey;column:id;type:varchar(255)"`
	Date        time.Time       `json:"date" gorm:"column:date;not null;index"`
	LoanID      string          `json:"loan_id" gorm:"column:loan_id;type:varchar(255);not null;index"`
	Customer    string          `json:"customer" gorm:"column:customer;type:varchar(255)"`
	AmountPaid  decimal.Decimal `json:"amount_paid" gorm:"column:amount_paid;type:decimal(20,4);not null"`
	CollectedBy string          `json:"collected_by" gorm:"column:collected_by;type:varchar(255)"`
	Remarks     string          `json:"remarks" gorm:"column:remarks;type:text"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
}

// TableName returns the table name for the Collection model
func (Collection) TableName() string {
	return "collections"
}

// Validate checks the collection before insertion.
func (c *Collection) Validate() error {
	if c.Date.IsZero() {
		return &apperrors.ErrValidation{Field: "date", Message: "is required"}
	}
	if c.LoanID == "" {
		return &apperrors.ErrValidation{Field: "loan_id", Message: "is required"}
	}
	if !c.AmountPaid.IsPositive() {
		return &apperrors.ErrValidation{Field: "amount_paid", Message: "must be positive"}
	}
	return nil
}

// CollectionFilter narrows collection listings.
type CollectionFilter struct {
	LoanID    string
	StartDate *time.Time
	EndDate   *time.Time
	Limit     int
	Offset    int
}

// BulkMode selects how a bulk settlement amount is determined.
type BulkMode string

const (
	// BulkModeFull settles the loan's entire outstanding balance.
	BulkModeFull BulkMode = "full"
	// BulkModeCustom settles a caller-specified amount up to the balance.
	BulkModeCustom BulkMode = "custom"
)

// BulkCollectionRequest describes a bulk or custom settlement action.
type BulkCollectionRequest struct {
	LoanID      string          `json:"loan_id"`
	Mode        BulkMode        `json:"mode"`
	Amount      decimal.Decimal `json:"amount"`
	CollectedBy string          `json:"collected_by"`
	Remarks     string          `json:"remarks"`
}
