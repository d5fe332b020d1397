package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerRowType classifies the origin of a ledger row.
type LedgerRowType string

const (
	RowTypeOpening    LedgerRowType = "opening"
	RowTypeManual     LedgerRowType = "manual"
	RowTypeLoan       LedgerRowType = "loan"
	RowTypeCollection LedgerRowType = "collection"
)

// LedgerRow is one line of the unified ledger view: a fund entry, a loan
// disbursement, or one day's grouped collections, with the running
// balance after this row.
type LedgerRow struct {
	ID          string          `json:"id"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Inflow      decimal.Decimal `json:"inflow"`
	Outflow     decimal.Decimal `json:"outflow"`
	Balance     decimal.Decimal `json:"balance"`
	Type        LedgerRowType   `json:"type"`
}
