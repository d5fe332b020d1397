package models

import (
	"time"

	"github.com/shopspring/decimal"

	apperrors "github.com/lendtrack/backend/internal/errors"
)

// OpeningDescription is the sentinel description marking the fund entry
// that seeds the ledger's opening balance.
const OpeningDescription = "Initial Balance"

// Fund is a manual cash-ledger entry: a capital injection, a manual
// expense, or the opening-balance marker. The stored balance is the
// running fund-to-fund balance as of this entry and is recomputed over
// all funds whenever one is inserted; it is never supplied by callers.
type Fund struct {
	ID          string          `json:"id" gorm:"primaryKey;column:id;type:varchar(255)"`
	Date        time.Time       `json:"date" gorm:"column:date;not null;index"`
	Description string          `json:"description" gorm:"column:description;type:varchar(255);not null"`
	Inflow      decimal.Decimal `json:"inflow" gorm:"column:inflow;type:decimal(20,4);not null;default:0"`
	Outflow     decimal.Decimal `json:"outflow" gorm:"column:outflow;type:decimal(20,4);not null;default:0"`
	Balance     decimal.Decimal `json:"balance" gorm:"column:balance;type:decimal(20,4);not null;default:0"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
}

// TableName returns the table name for the Fund model
func (Fund) TableName() string {
	return "funds"
}

// IsOpening reports whether this entry carries the opening-balance sentinel.
func (f *Fund) IsOpening() bool {
	return f.Description == OpeningDescription
}

// Validate checks the fund entry before insertion.
func (f *Fund) Validate() error {
	if f.Date.IsZero() {
		return &apperrors.ErrValidation{Field: "date", Message: "is required"}
	}
	if f.Description == "" {
		return &apperrors.ErrValidation{Field: "description", Message: "is required"}
	}
	if f.Inflow.IsNegative() {
		return &apperrors.ErrValidation{Field: "inflow", Message: "must be non-negative"}
	}
	if f.Outflow.IsNegative() {
		return &apperrors.ErrValidation{Field: "outflow", Message: "must be non-negative"}
	}
	return nil
}
