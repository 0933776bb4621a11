package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-bloom/internal/ledger"
	"github.com/carson-networks/budget-bloom/internal/operator/actions"
	"github.com/carson-networks/budget-bloom/internal/storage"
	"github.com/carson-networks/budget-bloom/internal/storage/transaction"
)

const defaultLimit = 20

// actionProcessor runs a mutation on the operator queue.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// TransactionService handles transaction business logic.
type TransactionService struct {
	storage   *storage.Storage
	processor actionProcessor
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage, processor actionProcessor) *TransactionService {
	return &TransactionService{storage: store, processor: processor}
}

// CreateTransaction validates and logs a new transaction, returning its ID.
func (s *TransactionService) CreateTransaction(ctx context.Context, tx Transaction) (uuid.UUID, error) {
	if _, err := ledger.NewTransaction(tx.Date, tx.Amount, tx.IsIncome); err != nil {
		return uuid.Nil, err
	}

	id, err := uuid.NewV4()
	if err != nil {
		return uuid.Nil, err
	}

	action := &actions.CreateTransaction{
		ID:       id,
		Date:     tx.Date,
		Amount:   tx.Amount,
		IsIncome: tx.IsIncome,
		Note:     tx.Note,
	}
	if err := s.processor.Process(ctx, action); err != nil {
		return uuid.Nil, err
	}

	return id, nil
}

// ListTransactions returns a page of transactions, newest first, using
// cursor-based pagination. A non-nil month restricts the listing to that
// month; once a cursor is given its month wins so every page matches the first.
func (s *TransactionService) ListTransactions(ctx context.Context, month *ledger.MonthKey, cursor *TransactionCursor) ([]Transaction, *TransactionCursor, error) {
	limit := defaultLimit
	offset := 0
	var maxCreationTime *time.Time
	if cursor != nil {
		limit = cursor.Limit
		offset = cursor.Position
		maxCreationTime = &cursor.MaxCreationTime
		month = cursor.Month
	}

	filter := &transaction.TransactionFilter{
		Month:           month,
		Limit:           limit,
		Offset:          offset,
		MaxCreationTime: maxCreationTime,
	}

	rows, err := s.storage.Transactions.List(ctx, filter)
	if err != nil {
		return nil, nil, err
	}

	if len(rows) == 0 {
		return nil, nil, nil
	}

	var nextCursor *TransactionCursor
	if len(rows) > limit {
		rows = rows[:limit]

		cursorMaxCreationTime := rows[0].CreatedAt
		if maxCreationTime != nil {
			cursorMaxCreationTime = *maxCreationTime
		}

		nextCursor = &TransactionCursor{
			Position:        offset + limit,
			Limit:           limit,
			MaxCreationTime: cursorMaxCreationTime,
			Month:           month,
		}
	}

	convertedTransactions := make([]Transaction, len(rows))
	for i, row := range rows {
		convertedTransactions[i] = Transaction{
			ID:        row.ID,
			Date:      row.Date,
			Amount:    row.Amount,
			IsIncome:  row.IsIncome,
			Note:      row.Note,
			CreatedAt: row.CreatedAt,
		}
	}

	return convertedTransactions, nextCursor, nil
}
