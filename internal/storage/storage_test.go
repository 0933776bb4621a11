package storage

import (
	"context"
	"testing"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/budget-bloom/internal/storage/transaction"
)

func TestWrite_CommitAndRollback(t *testing.T) {
	store := NewStorage()
	create := &transaction.TransactionCreate{
		Date:     civil.Date{Year: 2024, Month: 3, Day: 5},
		Amount:   decimal.RequireFromString("5.00"),
		IsIncome: false,
	}

	writer, err := store.Write(context.Background())
	require.NoError(t, err)
	_, err = writer.Transaction.Insert(context.Background(), create)
	require.NoError(t, err)
	require.NoError(t, writer.Rollback())
	require.NoError(t, writer.Commit())

	rows, err := store.Transactions.List(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, rows)

	writer, err = store.Write(context.Background())
	require.NoError(t, err)
	id, err := writer.Transaction.Insert(context.Background(), create)
	require.NoError(t, err)
	require.NoError(t, writer.Commit())

	row, err := store.Transactions.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, row.ID)
}

func TestWrite_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	writer, err := NewStorage().Write(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, writer)
}
