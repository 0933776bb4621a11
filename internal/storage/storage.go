package storage

import (
	"context"

	"github.com/carson-networks/budget-bloom/internal/storage/transaction"
)

// Storage holds the process-lifetime tables. Nothing is persisted.
type Storage struct {
	Transactions transaction.ITransactionTable
}

func NewStorage() *Storage {
	return &Storage{
		Transactions: transaction.NewTransactionsTable(),
	}
}

// Write opens a unit of work against the tables.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return NewWriter(ctx, s), nil
}
