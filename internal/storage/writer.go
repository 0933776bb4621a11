package storage

import (
	"context"

	"github.com/carson-networks/budget-bloom/internal/storage/transaction"
)

type Writer struct {
	ctx         context.Context
	Transaction *transaction.Writer
}

func NewWriter(ctx context.Context, s *Storage) *Writer {
	return &Writer{
		ctx:         ctx,
		Transaction: transaction.NewWriter(s.Transactions),
	}
}

func (w *Writer) Commit() error {
	return w.Transaction.Commit(w.ctx)
}

func (w *Writer) Rollback() error {
	w.Transaction.Rollback()
	return nil
}
