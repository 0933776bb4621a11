package transaction

import (
	"context"
	"fmt"
	"iter"
	"sync"
	"time"

	"github.com/gofrs/uuid/v5"
)

var _ ITransactionTable = (*TransactionsTable)(nil)

// TransactionsTable is the in-memory, append-only transaction store. It lives
// for the process lifetime.
type TransactionsTable struct {
	mu   sync.RWMutex
	rows []*Transaction
	byID map[uuid.UUID]int
	now  func() time.Time
}

// NewTransactionsTable creates an empty table.
func NewTransactionsTable() *TransactionsTable {
	return &TransactionsTable{
		byID: make(map[uuid.UUID]int),
		now:  time.Now,
	}
}

// FindByID retrieves a transaction by ID.
func (t *TransactionsTable) FindByID(_ context.Context, id uuid.UUID) (*Transaction, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	i, ok := t.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrTransactionNotFound, id)
	}
	row := *t.rows[i]
	return &row, nil
}

// Insert validates and appends a single transaction, returning its ID.
func (t *TransactionsTable) Insert(ctx context.Context, create *TransactionCreate) (uuid.UUID, error) {
	row, err := newRow(create)
	if err != nil {
		return uuid.Nil, err
	}
	if err := t.Append(ctx, row); err != nil {
		return uuid.Nil, err
	}
	return row.ID, nil
}

// Append adds rows in order under one lock, stamping CreatedAt. Either all
// rows are added or none.
func (t *TransactionsTable) Append(ctx context.Context, rows ...*Transaction) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	seen := make(map[uuid.UUID]struct{}, len(rows))
	for _, row := range rows {
		if _, exists := t.byID[row.ID]; exists {
			return fmt.Errorf("transaction %s already exists", row.ID)
		}
		if _, dup := seen[row.ID]; dup {
			return fmt.Errorf("transaction %s staged twice", row.ID)
		}
		seen[row.ID] = struct{}{}
	}

	createdAt := t.now()
	for _, row := range rows {
		stored := *row
		stored.CreatedAt = createdAt
		t.byID[stored.ID] = len(t.rows)
		t.rows = append(t.rows, &stored)
	}
	return nil
}

// List returns transactions newest first. Nil filter returns all. When a
// limit is set, up to Limit+1 rows are returned so callers can detect a
// further page.
func (t *TransactionsTable) List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	snapshot := t.snapshot()

	var result []*Transaction
	skipped := 0
	for i := len(snapshot) - 1; i >= 0; i-- {
		row := snapshot[i]
		if filter != nil {
			if filter.Month != nil && !row.Ledger().In(*filter.Month) {
				continue
			}
			if filter.MaxCreationTime != nil && row.CreatedAt.After(*filter.MaxCreationTime) {
				continue
			}
			if skipped < filter.Offset {
				skipped++
				continue
			}
			if filter.Limit > 0 && len(result) == filter.Limit+1 {
				break
			}
		}
		copied := *row
		result = append(result, &copied)
	}
	return result, nil
}

// All yields every transaction in insertion order. The sequence reads a
// snapshot taken when iteration starts and can be ranged over repeatedly.
func (t *TransactionsTable) All() iter.Seq[Transaction] {
	return func(yield func(Transaction) bool) {
		for _, row := range t.snapshot() {
			if !yield(*row) {
				return
			}
		}
	}
}

// Len returns the number of stored transactions.
func (t *TransactionsTable) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.rows)
}

// rows is append-only and stored rows are never modified, so a capped slice
// header is a consistent snapshot.
func (t *TransactionsTable) snapshot() []*Transaction {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.rows[:len(t.rows):len(t.rows)]
}
