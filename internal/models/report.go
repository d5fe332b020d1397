package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LoanDigest is a compact view of a loan used in report watchlists.
type LoanDigest struct {
	LoanID        string          `json:"loan_id"`
	CustomerName  string          `json:"customer_name"`
	Balance       decimal.Decimal `json:"balance"`
	RemainingDays int             `json:"remaining_days,omitempty"`
	IdleDays      int             `json:"idle_days,omitempty"`
}

// AggregateReport rolls loans, collections and funds up into
// portfolio-level figures as of a given date.
type AggregateReport struct {
	AsOf time.Time `json:"as_of"`

	CashInHand       decimal.Decimal `json:"cash_in_hand"`
	TotalInvested    decimal.Decimal `json:"total_invested"`
	TotalCollections decimal.Decimal `json:"total_collections"`
	TotalReceivable  decimal.Decimal `json:"total_receivable"`
	Outstanding      decimal.Decimal `json:"outstanding"`
	ExpectedProfit   decimal.Decimal `json:"expected_profit"`

	ActiveLoans    int `json:"active_loans"`
	CompletedLoans int `json:"completed_loans"`
	DisabledLoans  int `json:"disabled_loans"`

	NearToClosing  []*LoanDigest `json:"near_to_closing"`
	PaymentDelayed []*LoanDigest `json:"payment_delayed"`

	// Percentages; zero when the denominator is zero.
	RecoveryRate     decimal.Decimal `json:"recovery_rate"`
	ProfitMargin     decimal.Decimal `json:"profit_margin"`
	OutstandingRatio decimal.Decimal `json:"outstanding_ratio"`

	// True when any derived ledger row dips below zero between manual
	// checkpoints.
	HasNegativeBalance bool `json:"has_negative_balance"`
}
