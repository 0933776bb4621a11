package service

import (
	"context"
	"slices"

	"github.com/carson-networks/budget-bloom/internal/ledger"
	"github.com/carson-networks/budget-bloom/internal/logging"
	"github.com/carson-networks/budget-bloom/internal/storage"
	"github.com/carson-networks/budget-bloom/internal/storage/transaction"
)

// MonthView is everything a re-render of one month needs.
type MonthView struct {
	Key     ledger.MonthKey
	Summary ledger.Summary
	Grid    ledger.Grid
	Days    map[int]ledger.Summary
}

// LedgerService answers month queries over the transaction store.
type LedgerService struct {
	storage    *storage.Storage
	layoutOpts []ledger.LayoutOption
}

func NewLedgerService(store *storage.Storage, layoutOpts ...ledger.LayoutOption) *LedgerService {
	return &LedgerService{storage: store, layoutOpts: layoutOpts}
}

// GetMonthSummary returns income, expenses and net for (year, month).
func (s *LedgerService) GetMonthSummary(ctx context.Context, year, month int) (ledger.Summary, error) {
	if err := ctx.Err(); err != nil {
		return ledger.Summary{}, err
	}
	return ledger.Aggregate(transaction.LedgerValues(s.storage.Transactions.All()), year, month)
}

// GetMonthGrid returns the calendar grid for (year, month).
func (s *LedgerService) GetMonthGrid(_ context.Context, year, month int) (ledger.Grid, error) {
	return ledger.Layout(year, month, s.layoutOpts...)
}

// GetMonthView computes the summary, grid and per-day totals from a single
// snapshot of the store.
func (s *LedgerService) GetMonthView(ctx context.Context, key ledger.MonthKey) (MonthView, error) {
	if err := ctx.Err(); err != nil {
		return MonthView{}, err
	}
	if _, err := ledger.NewMonthKey(key.Year, int(key.Month)); err != nil {
		return MonthView{}, err
	}

	// Each scan adds to ledgerScanMs on the request's log entry.
	logData := logging.GetLogData(ctx)
	scan := func() func() {
		if logData == nil {
			return func() {}
		}
		return logData.AddToExistingTiming("ledgerScanMs")
	}

	stop := scan()
	snapshot := slices.Collect(transaction.LedgerValues(s.storage.Transactions.All()))
	stop()

	stop = scan()
	summary := ledger.AggregateMonth(slices.Values(snapshot), key)
	days := ledger.AggregateMonthDays(slices.Values(snapshot), key)
	stop()

	return MonthView{
		Key:     key,
		Summary: summary,
		Grid:    ledger.LayoutMonth(key, s.layoutOpts...),
		Days:    days,
	}, nil
}
