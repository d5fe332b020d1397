// Package ledger holds the derivation core: every figure shown for a
// loan, the unified transaction ledger, and the portfolio report are
// computed here and nowhere else. All functions are pure over their
// inputs; callers own loading the record sets and persisting nothing.
package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/lendtrack/backend/internal/models"
)

// DeriveLoan populates the loan's derived fields from the collection set.
// Collections not referencing this loan are ignored, so the full current
// set can be passed. Calling it again with the same inputs yields the
// same result.
func DeriveLoan(loan *models.Loan, collections []*models.Collection) {
	collected := decimal.Zero
	for _, c := range collections {
		if c.LoanID == loan.ID {
			collected = collected.Add(c.AmountPaid)
		}
	}

	loan.TotalToReceive = loan.LoanAmount
	loan.Collected = collected

	balance := loan.TotalToReceive.Sub(collected)
	if balance.IsNegative() {
		balance = decimal.Zero
	}
	loan.Balance = balance

	switch {
	case loan.IsDisabled:
		loan.Status = models.LoanStatusDisabled
	case balance.IsZero():
		loan.Status = models.LoanStatusCompleted
	default:
		loan.Status = models.LoanStatusOngoing
	}

	// Profit is the upfront deduction plus anything collected beyond the
	// cash actually handed out. Overpayment never shows up as a negative
	// balance; it lands here.
	overage := collected.Sub(loan.NetGiven)
	if overage.IsNegative() {
		overage = decimal.Zero
	}
	loan.Profit = loan.Deduction.Add(overage)
}

// DeriveLoans derives every loan in place against the same collection set.
func DeriveLoans(loans []*models.Loan, collections []*models.Collection) {
	for _, l := range loans {
		DeriveLoan(l, collections)
	}
}
