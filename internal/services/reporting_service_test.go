package services

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lendtrack/backend/internal/models"
	"github.com/lendtrack/backend/internal/repositories"
)

type reportingFixtures struct {
	loans     LoanService
	colls     CollectionService
	funds     FundService
	reporting ReportingService
}

func setupReportingFixtures(t *testing.T) *reportingFixtures {
	database := setupTestDB(t)
	loanRepo := repositories.NewLoanRepository(database)
	collRepo := repositories.NewCollectionRepository(database)
	fundRepo := repositories.NewFundRepository(database)
	rev := NewStoreRevision()
	return &reportingFixtures{
		loans:     NewLoanService(loanRepo, collRepo, rev),
		colls:     NewCollectionService(loanRepo, collRepo, rev),
		funds:     NewFundService(fundRepo, rev),
		reporting: NewReportingService(loanRepo, collRepo, fundRepo, rev),
	}
}

func TestReportingServiceGetLedger(t *testing.T) {
	f := setupReportingFixtures(t)
	ctx := context.Background()

	require.NoError(t, f.funds.CreateFund(ctx, &models.Fund{
		Date:        time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		Description: models.OpeningDescription,
		Inflow:      decimal.NewFromInt(50000),
	}))

	loan := newLoanFixture()
	require.NoError(t, f.loans.CreateLoan(ctx, loan))

	rows, err := f.reporting.GetLedger(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, models.RowTypeOpening, rows[0].Type)
	assert.Equal(t, models.RowTypeLoan, rows[1].Type)
	assert.True(t, rows[1].Balance.Equal(decimal.NewFromInt(40500)))
}

func TestReportingServiceLedgerMemoization(t *testing.T) {
	f := setupReportingFixtures(t)
	ctx := context.Background()

	require.NoError(t, f.funds.CreateFund(ctx, &models.Fund{
		Date:        time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		Description: models.OpeningDescription,
		Inflow:      decimal.NewFromInt(50000),
	}))

	first, err := f.reporting.GetLedger(ctx)
	require.NoError(t, err)
	second, err := f.reporting.GetLedger(ctx)
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.True(t, &first[0] == &second[0], "unchanged stores reuse the cached ledger")

	// A write invalidates the cache and the next build sees the new row.
	loan := newLoanFixture()
	require.NoError(t, f.loans.CreateLoan(ctx, loan))

	third, err := f.reporting.GetLedger(ctx)
	require.NoError(t, err)
	assert.Len(t, third, 2)
}

func TestReportingServiceAggregateReport(t *testing.T) {
	f := setupReportingFixtures(t)
	ctx := context.Background()

	require.NoError(t, f.funds.CreateFund(ctx, &models.Fund{
		Date:        time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		Description: models.OpeningDescription,
		Inflow:      decimal.NewFromInt(50000),
	}))

	loan := newLoanFixture()
	require.NoError(t, f.loans.CreateLoan(ctx, loan))
	require.NoError(t, f.colls.CreateCollection(ctx, &models.Collection{
		LoanID:     loan.ID,
		Date:       time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC),
		AmountPaid: decimal.NewFromInt(2000),
	}))

	report, err := f.reporting.GetAggregateReport(ctx, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.True(t, report.TotalInvested.Equal(decimal.NewFromInt(9500)))
	assert.True(t, report.TotalCollections.Equal(decimal.NewFromInt(2000)))
	assert.True(t, report.Outstanding.Equal(decimal.NewFromInt(8000)))
	assert.True(t, report.CashInHand.Equal(decimal.NewFromInt(42500)))
	assert.Equal(t, 1, report.ActiveLoans)
	assert.False(t, report.HasNegativeBalance)
}
