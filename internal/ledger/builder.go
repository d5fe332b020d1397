package ledger

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lendtrack/backend/internal/models"
)

// Priority tiers break ties among rows sharing a calendar date: the
// opening entry first, then manual fund entries, then loan
// disbursements, then the day's grouped collections.
const (
	tierOpening = iota
	tierManual
	tierLoan
	tierCollection
)

const dayLayout = "2006-01-02"

type ledgerEntry struct {
	row  *models.LedgerRow
	day  string // calendar date key, lexicographically sortable
	tier int
	at   time.Time // record timestamp, orders rows within a tier
}

// BuildLedger materializes the unified ledger: one row per fund entry,
// one per enabled loan disbursement, and one per calendar date with
// collections, sorted by (calendar date, tier) and carrying a running
// balance. Opening and manual rows are authoritative cash checkpoints:
// their stored balance is taken as-is and resets the accumulator;
// loan and collection rows accumulate inflow minus outflow on top.
//
// The builder holds no state; each call returns a fresh slice.
func BuildLedger(funds []*models.Fund, loans []*models.Loan, collections []*models.Collection) []*models.LedgerRow {
	entries := make([]*ledgerEntry, 0, len(funds)+len(loans)+len(collections))

	entries = append(entries, fundEntries(funds)...)

	for _, l := range loans {
		if l.IsDisabled {
			continue
		}
		entries = append(entries, &ledgerEntry{
			row: &models.LedgerRow{
				ID:          "loan-" + l.ID,
				Date:        l.Date,
				Description: fmt.Sprintf("Loan issued to %s", l.CustomerName),
				Inflow:      decimal.Zero,
				Outflow:     l.NetGiven,
				Type:        models.RowTypeLoan,
			},
			day:  l.Date.Format(dayLayout),
			tier: tierLoan,
			at:   l.Date,
		})
	}

	entries = append(entries, collectionEntries(collections)...)

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.day != b.day {
			return a.day < b.day
		}
		if a.tier != b.tier {
			return a.tier < b.tier
		}
		if !a.at.Equal(b.at) {
			return a.at.Before(b.at)
		}
		return a.row.ID < b.row.ID
	})

	rows := make([]*models.LedgerRow, 0, len(entries))
	running := decimal.Zero
	for _, e := range entries {
		switch e.row.Type {
		case models.RowTypeOpening, models.RowTypeManual:
			// Stored fund balance is ground truth; reset to it.
			running = e.row.Balance
		default:
			running = running.Add(e.row.Inflow).Sub(e.row.Outflow)
			e.row.Balance = running
		}
		rows = append(rows, e.row)
	}

	return rows
}

// fundEntries maps fund records onto ledger entries. Only the earliest
// entry carrying the opening sentinel gets the opening tier; any later
// duplicate is treated as an ordinary manual entry.
func fundEntries(funds []*models.Fund) []*ledgerEntry {
	ordered := make([]*models.Fund, len(funds))
	copy(ordered, funds)
	sort.SliceStable(ordered, func(i, j int) bool {
		if !ordered[i].Date.Equal(ordered[j].Date) {
			return ordered[i].Date.Before(ordered[j].Date)
		}
		return ordered[i].ID < ordered[j].ID
	})

	openingID := ""
	for _, f := range ordered {
		if f.IsOpening() {
			openingID = f.ID
			break
		}
	}

	entries := make([]*ledgerEntry, 0, len(ordered))
	for _, f := range ordered {
		rowType := models.RowTypeManual
		tier := tierManual
		if f.ID == openingID {
			rowType = models.RowTypeOpening
			tier = tierOpening
		}
		entries = append(entries, &ledgerEntry{
			row: &models.LedgerRow{
				ID:          "fund-" + f.ID,
				Date:        f.Date,
				Description: f.Description,
				Inflow:      f.Inflow,
				Outflow:     f.Outflow,
				Balance:     f.Balance,
				Type:        rowType,
			},
			day:  f.Date.Format(dayLayout),
			tier: tier,
			at:   f.Date,
		})
	}
	return entries
}

// collectionEntries groups collections by calendar date and emits one
// inflow row per date. Dates whose total is not positive are skipped.
func collectionEntries(collections []*models.Collection) []*ledgerEntry {
	type dayGroup struct {
		total decimal.Decimal
		count int
	}
	groups := make(map[string]*dayGroup)
	for _, c := range collections {
		key := c.Date.Format(dayLayout)
		g, ok := groups[key]
		if !ok {
			g = &dayGroup{total: decimal.Zero}
			groups[key] = g
		}
		g.total = g.total.Add(c.AmountPaid)
		g.count++
	}

	entries := make([]*ledgerEntry, 0, len(groups))
	for key, g := range groups {
		if !g.total.IsPositive() {
			continue
		}
		day, _ := time.Parse(dayLayout, key)
		entries = append(entries, &ledgerEntry{
			row: &models.LedgerRow{
				ID:          "collections-" + key,
				Date:        day,
				Description: fmt.Sprintf("Daily collections (%d payments)", g.count),
				Inflow:      g.total,
				Outflow:     decimal.Zero,
				Type:        models.RowTypeCollection,
			},
			day:  key,
			tier: tierCollection,
			at:   day,
		})
	}
	return entries
}
