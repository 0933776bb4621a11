package service

import (
	"time"

	"cloud.google.com/go/civil"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-bloom/internal/ledger"
)

// Transaction represents a transaction in the service layer.
type Transaction struct {
	ID        uuid.UUID
	Date      civil.Date
	Amount    decimal.Decimal
	IsIncome  bool
	Note      string
	CreatedAt time.Time
}

// TransactionCursor identifies a position in a paginated result set
// and carries the limit, maxCreationTime and month filter so subsequent pages
// are consistent.
type TransactionCursor struct {
	Position        int
	Limit           int
	MaxCreationTime time.Time
	Month           *ledger.MonthKey
}
