package transaction

import (
	"context"
	"errors"
	"iter"
	"time"

	"cloud.google.com/go/civil"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-bloom/internal/ledger"
)

// ErrTransactionNotFound is returned by FindByID for an unknown ID.
var ErrTransactionNotFound = errors.New("transaction not found")

// Transaction represents a transaction record.
type Transaction struct {
	ID        uuid.UUID
	Date      civil.Date
	Amount    decimal.Decimal
	IsIncome  bool
	Note      string
	CreatedAt time.Time
}

// Ledger returns the value the month ledger aggregates.
func (t Transaction) Ledger() ledger.Transaction {
	return ledger.Transaction{Date: t.Date, Amount: t.Amount, IsIncome: t.IsIncome}
}

// TransactionCreate is the input for creating a new transaction.
type TransactionCreate struct {
	ID       uuid.UUID // generated if nil
	Date     civil.Date
	Amount   decimal.Decimal
	IsIncome bool
	Note     string
}

// TransactionFilter specifies filters for listing transactions.
type TransactionFilter struct {
	Month           *ledger.MonthKey
	Limit           int
	Offset          int
	MaxCreationTime *time.Time
}

// ITransactionTable defines the interface for transaction storage operations.
// Rows are append-only: nothing updates or deletes them.
type ITransactionTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error)
	Insert(ctx context.Context, create *TransactionCreate) (uuid.UUID, error)
	Append(ctx context.Context, rows ...*Transaction) error
	List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error)
	All() iter.Seq[Transaction]
}

// LedgerValues adapts a sequence of records to the ledger's input type.
func LedgerValues(rows iter.Seq[Transaction]) iter.Seq[ledger.Transaction] {
	return func(yield func(ledger.Transaction) bool) {
		for row := range rows {
			if !yield(row.Ledger()) {
				return
			}
		}
	}
}

func newRow(create *TransactionCreate) (*Transaction, error) {
	tx, err := ledger.NewTransaction(create.Date, create.Amount, create.IsIncome)
	if err != nil {
		return nil, err
	}

	id := create.ID
	if id == uuid.Nil {
		id, err = uuid.NewV4()
		if err != nil {
			return nil, err
		}
	}

	return &Transaction{
		ID:       id,
		Date:     tx.Date,
		Amount:   tx.Amount,
		IsIncome: tx.IsIncome,
		Note:     create.Note,
	}, nil
}
