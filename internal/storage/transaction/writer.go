package transaction

import (
	"context"

	"github.com/gofrs/uuid/v5"
)

// Writer stages inserts for one unit of work. Staged rows are invisible to
// readers until Commit.
type Writer struct {
	table  ITransactionTable
	staged []*Transaction
}

func NewWriter(table ITransactionTable) *Writer {
	return &Writer{table: table}
}

// Insert validates and stages a transaction, returning its ID.
func (w *Writer) Insert(_ context.Context, create *TransactionCreate) (uuid.UUID, error) {
	row, err := newRow(create)
	if err != nil {
		return uuid.Nil, err
	}
	w.staged = append(w.staged, row)
	return row.ID, nil
}

// Staged returns the number of rows waiting for Commit.
func (w *Writer) Staged() int {
	return len(w.staged)
}

func (w *Writer) Commit(ctx context.Context) error {
	if len(w.staged) == 0 {
		return nil
	}
	staged := w.staged
	w.staged = nil
	return w.table.Append(ctx, staged...)
}

func (w *Writer) Rollback() {
	w.staged = nil
}
