package models

import (
	"time"

	"github.com/shopspring/decimal"

	apperrors "github.com/lendtrack/backend/internal/errors"
)

// LoanStatus is the lifecycle state of a loan, derived from its balance
// and the disabled flag.
type LoanStatus string

const (
	LoanStatusOngoing   LoanStatus = "Ongoing"
	LoanStatusCompleted LoanStatus = "Completed"
	LoanStatusDisabled  LoanStatus = "Disabled"
)

// Loan represents a lending contract with a flat daily repayment plan.
// The stored columns are the contract's static inputs; every monetary
// figure that depends on repayments is derived on read and never
// persisted, so the collection set stays the single source of truth.
type Loan struct {
	ID           string          `json:"id" gorm:"primaryKey;column:id;type:varchar(255)"`
	CustomerName string          `json:"customer_name" gorm:"column:customer_name;type:varchar(255);not null;index"`
	Date         time.Time       `json:"date" gorm:"column:date;not null;index"`
	LoanAmount   decimal.Decimal `json:"loan_amount" gorm:"column:loan_amount;type:decimal(20,4);not null"`
	Deduction    decimal.Decimal `json:"deduction" gorm:"column:deduction;type:decimal(20,4);not null;default:0"`
	NetGiven     decimal.Decimal `json:"net_given" gorm:"column:net_given;type:decimal(20,4);not null"`
	DailyPay     decimal.Decimal `json:"daily_pay" gorm:"column:daily_pay;type:decimal(20,4);not null"`
	Days         int             `json:"days" gorm:"column:days;not null;default:0"`
	IsDisabled   bool            `json:"is_disabled" gorm:"column:is_disabled;not null;default:false"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`

	// Derived fields, recomputed from the collection set on every read.
	TotalToReceive decimal.Decimal `json:"total_to_receive" gorm:"-"`
	Collected      decimal.Decimal `json:"collected" gorm:"-"`
	Balance        decimal.Decimal `json:"balance" gorm:"-"`
	Status         LoanStatus      `json:"status" gorm:"-"`
	Profit         decimal.Decimal `json:"profit" gorm:"-"`
}

// TableName returns the table name for the Loan model
func (Loan) TableName() string {
	return "loans"
}

// Validate checks the stored (input) fields of the loan.
func (l *Loan) Validate() error {
	if l.CustomerName == "" {
		return &apperrors.ErrValidation{Field: "customer_name", Message: "is required"}
	}
	if l.Date.IsZero() {
		return &apperrors.ErrValidation{Field: "date", Message: "is required"}
	}
	if l.LoanAmount.IsNegative() {
		return &apperrors.ErrValidation{Field: "loan_amount", Message: "must be non-negative"}
	}
	if l.Deduction.IsNegative() {
		return &apperrors.ErrValidation{Field: "deduction", Message: "must be non-negative"}
	}
	if l.NetGiven.IsNegative() {
		return &apperrors.ErrValidation{Field: "net_given", Message: "must be non-negative"}
	}
	if l.DailyPay.IsNegative() {
		return &apperrors.ErrValidation{Field: "daily_pay", Message: "must be non-negative"}
	}
	if l.Days < 0 {
		return &apperrors.ErrValidation{Field: "days", Message: "must be non-negative"}
	}
	return nil
}

// ApplyDefaults fills fields the caller may leave unset: when no net
// disbursement is supplied it falls back to loan amount minus the
// upfront deduction.
func (l *Loan) ApplyDefaults() {
	if l.NetGiven.IsZero() && l.LoanAmount.IsPositive() {
		l.NetGiven = l.LoanAmount.Sub(l.Deduction)
	}
}
