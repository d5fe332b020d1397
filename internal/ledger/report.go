package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/lendtrack/backend/internal/models"
)

const (
	// NearClosingThresholdDays bounds the remaining-days estimate for a
	// loan to appear on the near-to-closing watchlist.
	NearClosingThresholdDays = 10
	// PaymentDelayThresholdDays is the number of whole days without a
	// collection after which a loan counts as payment-delayed.
	PaymentDelayThresholdDays = 3
)

var hundred = decimal.NewFromInt(100)

// ComputeAggregates rolls the three record sets up into portfolio-level
// figures as of the given date. Cash in hand is the final running
// balance of the unified ledger — the one source of truth, so dashboard
// and export numbers cannot drift apart.
func ComputeAggregates(loans []*models.Loan, collections []*models.Collection, funds []*models.Fund, asOf time.Time) *models.AggregateReport {
	DeriveLoans(loans, collections)

	report := &models.AggregateReport{
		AsOf:             asOf,
		CashInHand:       decimal.Zero,
		TotalInvested:    decimal.Zero,
		TotalCollections: decimal.Zero,
		TotalReceivable:  decimal.Zero,
		Outstanding:      decimal.Zero,
		ExpectedProfit:   decimal.Zero,
		NearToClosing:    []*models.LoanDigest{},
		PaymentDelayed:   []*models.LoanDigest{},
	}

	rows := BuildLedger(funds, loans, collections)
	if len(rows) > 0 {
		report.CashInHand = rows[len(rows)-1].Balance
	}
	for _, row := range rows {
		if row.Type != models.RowTypeOpening && row.Type != models.RowTypeManual && row.Balance.IsNegative() {
			report.HasNegativeBalance = true
			break
		}
	}

	for _, c := range collections {
		report.TotalCollections = report.TotalCollections.Add(c.AmountPaid)
	}

	lastPaid := latestCollectionDates(collections)

	for _, l := range loans {
		report.TotalInvested = report.TotalInvested.Add(l.NetGiven)
		report.TotalReceivable = report.TotalReceivable.Add(l.TotalToReceive)
		report.ExpectedProfit = report.ExpectedProfit.Add(l.Profit)

		switch l.Status {
		case models.LoanStatusDisabled:
			report.DisabledLoans++
			continue
		case models.LoanStatusCompleted:
			report.CompletedLoans++
			continue
		}
		report.ActiveLoans++
		report.Outstanding = report.Outstanding.Add(l.Balance)

		if l.DailyPay.IsPositive() {
			remainingDays := int(l.Balance.Div(l.DailyPay).Ceil().IntPart())
			if remainingDays > 0 && remainingDays <= NearClosingThresholdDays {
				report.NearToClosing = append(report.NearToClosing, &models.LoanDigest{
					LoanID:        l.ID,
					CustomerName:  l.CustomerName,
					Balance:       l.Balance,
					RemainingDays: remainingDays,
				})
			}
		}

		lastActivity := l.Date
		if paid, ok := lastPaid[l.ID]; ok && paid.After(lastActivity) {
			lastActivity = paid
		}
		idle := wholeDaysBetween(lastActivity, asOf)
		if idle >= PaymentDelayThresholdDays {
			report.PaymentDelayed = append(report.PaymentDelayed, &models.LoanDigest{
				LoanID:       l.ID,
				CustomerName: l.CustomerName,
				Balance:      l.Balance,
				IdleDays:     idle,
			})
		}
	}

	report.RecoveryRate = percentage(report.TotalCollections, report.TotalReceivable)
	report.ProfitMargin = percentage(report.ExpectedProfit, report.TotalInvested)
	report.OutstandingRatio = percentage(report.Outstanding, report.TotalReceivable)

	return report
}

func latestCollectionDates(collections []*models.Collection) map[string]time.Time {
	latest := make(map[string]time.Time, len(collections))
	for _, c := range collections {
		if cur, ok := latest[c.LoanID]; !ok || c.Date.After(cur) {
			latest[c.LoanID] = c.Date
		}
	}
	return latest
}

// wholeDaysBetween counts full 24h periods from 'from' to 'to', never
// negative.
func wholeDaysBetween(from, to time.Time) int {
	if !to.After(from) {
		return 0
	}
	return int(to.Sub(from).Hours() / 24)
}

// percentage returns num/den as a percent, zero on a zero denominator.
func percentage(num, den decimal.Decimal) decimal.Decimal {
	if den.IsZero() {
		return decimal.Zero
	}
	return num.Div(den).Mul(hundred)
}
