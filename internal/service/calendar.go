package service

import (
	"context"
	"sync"
	"time"

	"github.com/carson-networks/budget-bloom/internal/ledger"
)

// Calendar is the application state behind the month view: which month is
// selected. It starts on the current month.
type Calendar struct {
	mu       sync.Mutex
	selected ledger.MonthKey
	ledger   *LedgerService
}

func NewCalendar(ledgerService *LedgerService, now func() time.Time) *Calendar {
	if now == nil {
		now = time.Now
	}
	return &Calendar{
		selected: ledger.MonthKeyOf(now().UTC()),
		ledger:   ledgerService,
	}
}

// Selected returns the selected month.
func (c *Calendar) Selected() ledger.MonthKey {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selected
}

// Select parses the year text and selects (year, month). On error the
// selection is left unchanged.
func (c *Calendar) Select(month int, yearText string) (ledger.MonthKey, error) {
	year, err := ledger.ParseYear(yearText)
	if err != nil {
		return ledger.MonthKey{}, err
	}
	key, err := ledger.NewMonthKey(year, month)
	if err != nil {
		return ledger.MonthKey{}, err
	}

	c.mu.Lock()
	c.selected = key
	c.mu.Unlock()
	return key, nil
}

// View returns the month view of the selected month.
func (c *Calendar) View(ctx context.Context) (MonthView, error) {
	return c.ledger.GetMonthView(ctx, c.Selected())
}

// SelectView selects (year, month) and returns that month's view. The view is
// built from the key this call selected, not from whatever is selected by the
// time it renders.
func (c *Calendar) SelectView(ctx context.Context, month int, yearText string) (MonthView, error) {
	key, err := c.Select(month, yearText)
	if err != nil {
		return MonthView{}, err
	}
	return c.ledger.GetMonthView(ctx, key)
}
