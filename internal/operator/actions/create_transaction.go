package actions

import (
	"context"

	"cloud.google.com/go/civil"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-bloom/internal/storage"
	"github.com/carson-networks/budget-bloom/internal/storage/transaction"
)

type CreateTransaction struct {
	ID       uuid.UUID
	Date     civil.Date
	Amount   decimal.Decimal
	IsIncome bool
	Note     string
}

func (t *CreateTransaction) Name() string {
	return "CreateTransaction"
}

func (t *CreateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	storageCreate := &transaction.TransactionCreate{
		ID:       t.ID,
		Date:     t.Date,
		Amount:   t.Amount,
		IsIncome: t.IsIncome,
		Note:     t.Note,
	}
	_, err := writer.Transaction.Insert(ctx, storageCreate)
	if err != nil {
		return err
	}

	return nil
}
