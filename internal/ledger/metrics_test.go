package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lendtrack/backend/internal/models"
)

func testLoan() *models.Loan {
	return &models.Loan{
		ID:           "L1",
		CustomerName: "Ravi",
		Date:         time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
		LoanAmount:   decimal.NewFromInt(10000),
		Deduction:    decimal.NewFromInt(500),
		NetGiven:     decimal.NewFromInt(9500),
		DailyPay:     decimal.NewFromInt(100),
		Days:         100,
	}
}

func TestDeriveLoan(t *testing.T) {
	tests := []struct {
		name          string
		loan          *models.Loan
		collections   []*models.Collection
		wantCollected string
		wantBalance   string
		wantStatus    models.LoanStatus
		wantProfit    string
	}{
		{
			name:          "fresh loan with no collections",
			loan:          testLoan(),
			collections:   nil,
			wantCollected: "0",
			wantBalance:   "10000",
			wantStatus:    models.LoanStatusOngoing,
			wantProfit:    "500",
		},
		{
			name: "fully repaid loan",
			loan: testLoan(),
			collections: []*models.Collection{
				{ID: "c1", LoanID: "L1", AmountPaid: decimal.NewFromInt(10000)},
			},
			wantCollected: "10000",
			wantBalance:   "0",
			wantStatus:    models.LoanStatusCompleted,
			wantProfit:    "1000",
		},
		{
			name: "partial repayment across several collections",
			loan: testLoan(),
			collections: []*models.Collection{
				{ID: "c1", LoanID: "L1", AmountPaid: decimal.NewFromInt(300)},
				{ID: "c2", LoanID: "L1", AmountPaid: decimal.NewFromInt(200)},
				{ID: "c3", LoanID: "other", AmountPaid: decimal.NewFromInt(5000)},
			},
			wantCollected: "500",
			wantBalance:   "9500",
			wantStatus:    models.LoanStatusOngoing,
			wantProfit:    "500",
		},
		{
			name: "overpayment is absorbed into profit, not negative balance",
			loan: testLoan(),
			collections: []*models.Collection{
				{ID: "c1", LoanID: "L1", AmountPaid: decimal.NewFromInt(11000)},
			},
			wantCollected: "11000",
			wantBalance:   "0",
			wantStatus:    models.LoanStatusCompleted,
			wantProfit:    "2000",
		},
		{
			name: "disabled loan keeps disabled status regardless of balance",
			loan: func() *models.Loan {
				l := testLoan()
				l.IsDisabled = true
				return l
			}(),
			collections:   nil,
			wantCollected: "0",
			wantBalance:   "10000",
			wantStatus:    models.LoanStatusDisabled,
			wantProfit:    "500",
		},
		{
			name: "no deduction and no collections yields zero profit",
			loan: func() *models.Loan {
				l := testLoan()
				l.Deduction = decimal.Zero
				l.NetGiven = decimal.NewFromInt(10000)
				return l
			}(),
			collections:   nil,
			wantCollected: "0",
			wantBalance:   "10000",
			wantStatus:    models.LoanStatusOngoing,
			wantProfit:    "0",
		},
		{
			name: "zero-amount loan is immediately completed",
			loan: func() *models.Loan {
				l := testLoan()
				l.LoanAmount = decimal.Zero
				l.Deduction = decimal.Zero
				l.NetGiven = decimal.Zero
				return l
			}(),
			collections:   nil,
			wantCollected: "0",
			wantBalance:   "0",
			wantStatus:    models.LoanStatusCompleted,
			wantProfit:    "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			DeriveLoan(tt.loan, tt.collections)

			if got := tt.loan.Collected.String(); got != tt.wantCollected {
				t.Errorf("Collected = %s, want %s", got, tt.wantCollected)
			}
			if got := tt.loan.Balance.String(); got != tt.wantBalance {
				t.Errorf("Balance = %s, want %s", got, tt.wantBalance)
			}
			if tt.loan.Status != tt.wantStatus {
				t.Errorf("Status = %s, want %s", tt.loan.Status, tt.wantStatus)
			}
			if got := tt.loan.Profit.String(); got != tt.wantProfit {
				t.Errorf("Profit = %s, want %s", got, tt.wantProfit)
			}
			if !tt.loan.TotalToReceive.Equal(tt.loan.LoanAmount) {
				t.Errorf("TotalToReceive = %s, want %s", tt.loan.TotalToReceive, tt.loan.LoanAmount)
			}
		})
	}
}

func TestDeriveLoanBalanceInvariant(t *testing.T) {
	loan := testLoan()
	collections := []*models.Collection{
		{ID: "c1", LoanID: "L1", AmountPaid: decimal.NewFromInt(4000)},
		{ID: "c2", LoanID: "L1", AmountPaid: decimal.NewFromInt(2500)},
	}
	DeriveLoan(loan, collections)

	want := loan.TotalToReceive.Sub(loan.Collected)
	if !loan.Balance.Equal(want) {
		t.Fatalf("balance invariant violated: got %s, want %s", loan.Balance, want)
	}
}

func TestDeriveLoanIdempotent(t *testing.T) {
	loan := testLoan()
	collections := []*models.Collection{
		{ID: "c1", LoanID: "L1", AmountPaid: decimal.NewFromInt(1234)},
	}

	DeriveLoan(loan, collections)
	first := *loan
	DeriveLoan(loan, collections)

	if !loan.Balance.Equal(first.Balance) || !loan.Collected.Equal(first.Collected) ||
		!loan.Profit.Equal(first.Profit) || loan.Status != first.Status {
		t.Fatalf("second derivation changed the result: %+v vs %+v", *loan, first)
	}
}

func TestDeriveLoanDisableToggleRoundTrip(t *testing.T) {
	loan := testLoan()
	collections := []*models.Collection{
		{ID: "c1", LoanID: "L1", AmountPaid: decimal.NewFromInt(10000)},
	}

	DeriveLoan(loan, collections)
	before := loan.Status

	loan.IsDisabled = true
	DeriveLoan(loan, collections)
	if loan.Status != models.LoanStatusDisabled {
		t.Fatalf("expected Disabled, got %s", loan.Status)
	}

	loan.IsDisabled = false
	DeriveLoan(loan, collections)
	if loan.Status != before {
		t.Fatalf("toggle did not restore status: got %s, want %s", loan.Status, before)
	}
}
