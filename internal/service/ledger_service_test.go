package service

import (
	"context"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/budget-bloom/internal/ledger"
	"github.com/carson-networks/budget-bloom/internal/logging"
	"github.com/carson-networks/budget-bloom/internal/storage"
	"github.com/carson-networks/budget-bloom/internal/storage/transaction"
)

func seedStorage(t *testing.T) *storage.Storage {
	t.Helper()
	store := storage.NewStorage()
	seed := []struct {
		date     string
		amount   string
		isIncome bool
	}{
		{date: "2024-03-05", amount: "1000", isIncome: true},
		{date: "2024-03-10", amount: "200", isIncome: false},
		{date: "2024-04-01", amount: "50", isIncome: false},
	}
	for _, s := range seed {
		date, err := civil.ParseDate(s.date)
		require.NoError(t, err)
		_, err = store.Transactions.Insert(context.Background(), &transaction.TransactionCreate{
			Date:     date,
			Amount:   decimal.RequireFromString(s.amount),
			IsIncome: s.isIncome,
		})
		require.NoError(t, err)
	}
	return store
}

// -- GetMonthSummary tests --

func TestGetMonthSummary(t *testing.T) {
	svc := NewLedgerService(seedStorage(t))

	march, err := svc.GetMonthSummary(context.Background(), 2024, 3)
	require.NoError(t, err)
	assert.Equal(t, ledger.FormattedSummary{Income: "1000.00", Expenses: "200.00", Net: "800.00"}, march.Formatted())

	april, err := svc.GetMonthSummary(context.Background(), 2024, 4)
	require.NoError(t, err)
	assert.Equal(t, ledger.FormattedSummary{Income: "0.00", Expenses: "50.00", Net: "-50.00"}, april.Formatted())
}

func TestGetMonthSummary_EmptyStore(t *testing.T) {
	svc := NewLedgerService(storage.NewStorage())

	summary, err := svc.GetMonthSummary(context.Background(), 2024, 3)
	require.NoError(t, err)
	assert.True(t, summary.Net.IsZero())
}

func TestGetMonthSummary_InvalidMonth(t *testing.T) {
	svc := NewLedgerService(seedStorage(t))

	_, err := svc.GetMonthSummary(context.Background(), 2024, 13)
	assert.ErrorIs(t, err, ledger.ErrInvalidMonth)
}

// -- GetMonthGrid tests --

func TestGetMonthGrid(t *testing.T) {
	svc := NewLedgerService(storage.NewStorage())

	grid, err := svc.GetMonthGrid(context.Background(), 2024, 3)
	require.NoError(t, err)
	assert.Equal(t, 5, grid.LeadingBlanks())
	assert.Equal(t, 31, grid.DayCount())

	_, err = svc.GetMonthGrid(context.Background(), 2024, 0)
	assert.ErrorIs(t, err, ledger.ErrInvalidMonth)
}

func TestGetMonthGrid_SixWeeks(t *testing.T) {
	svc := NewLedgerService(storage.NewStorage(), ledger.WithSixWeeks())

	grid, err := svc.GetMonthGrid(context.Background(), 2015, 2)
	require.NoError(t, err)
	assert.Len(t, grid.Cells, 42)
}

// -- GetMonthView tests --

func TestGetMonthView(t *testing.T) {
	svc := NewLedgerService(seedStorage(t))
	key := ledger.MonthKey{Year: 2024, Month: time.March}

	view, err := svc.GetMonthView(context.Background(), key)
	require.NoError(t, err)
	assert.Equal(t, key, view.Key)
	assert.Equal(t, "800.00", view.Summary.Formatted().Net)
	assert.Equal(t, key, view.Grid.Key)
	assert.Len(t, view.Days, 2)
	assert.Equal(t, "1000.00", view.Days[5].Formatted().Income)
	assert.Equal(t, "200.00", view.Days[10].Formatted().Expenses)
}

func TestGetMonthView_InvalidKey(t *testing.T) {
	svc := NewLedgerService(seedStorage(t))

	_, err := svc.GetMonthView(context.Background(), ledger.MonthKey{Year: 2024, Month: 0})
	assert.ErrorIs(t, err, ledger.ErrInvalidMonth)
}

func TestGetMonthView_AccumulatesScanTiming(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logData := logging.NewLogData(logger)
	ctx := logging.WithLogData(context.Background(), logData)
	svc := NewLedgerService(seedStorage(t))

	_, err := svc.GetMonthView(ctx, ledger.MonthKey{Year: 2024, Month: time.March})
	require.NoError(t, err)

	logData.Log().Info("done")
	assert.Contains(t, hook.LastEntry().Data, "ledgerScanMs")
}
