package ledger

import (
	"fmt"
	"strings"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

// Transaction is a single dated money movement. The sign lives in IsIncome,
// Amount is never negative.
type Transaction struct {
	Date     civil.Date
	Amount   decimal.Decimal
	IsIncome bool
}

// NewTransaction validates its inputs and returns an immutable Transaction.
func NewTransaction(date civil.Date, amount decimal.Decimal, isIncome bool) (Transaction, error) {
	if !date.IsValid() {
		return Transaction{}, fmt.Errorf("%w: %s", ErrInvalidDate, date)
	}
	if amount.IsNegative() {
		return Transaction{}, fmt.Errorf("%w: %s is negative", ErrInvalidAmount, amount)
	}
	return Transaction{Date: date, Amount: amount, IsIncome: isIncome}, nil
}

// In reports whether the transaction falls in the given month.
func (t Transaction) In(key MonthKey) bool {
	return t.Date.Year == key.Year && t.Date.Month == key.Month
}

// ParseAmount parses a non-negative decimal amount such as "12.50".
func ParseAmount(text string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(text))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, text)
	}
	if amount.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: %s is negative", ErrInvalidAmount, amount)
	}
	return amount, nil
}

// ParseDate parses an ISO calendar date (YYYY-MM-DD).
func ParseDate(text string) (civil.Date, error) {
	date, err := civil.ParseDate(strings.TrimSpace(text))
	if err != nil {
		return civil.Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, text)
	}
	return date, nil
}
