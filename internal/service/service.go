package service

import (
	"time"

	"github.com/carson-networks/budget-bloom/internal/ledger"
	"github.com/carson-networks/budget-bloom/internal/storage"
)

// Service holds all business logic services.
type Service struct {
	Transaction *TransactionService
	Ledger      *LedgerService
	Calendar    *Calendar
}

// NewService creates a new Service with the given storage. Mutations go
// through processor.
func NewService(store *storage.Storage, processor actionProcessor, now func() time.Time, layoutOpts ...ledger.LayoutOption) *Service {
	ledgerService := NewLedgerService(store, layoutOpts...)
	return &Service{
		Transaction: NewTransactionService(store, processor),
		Ledger:      ledgerService,
		Calendar:    NewCalendar(ledgerService, now),
	}
}
