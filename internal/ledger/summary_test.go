package ledger

import (
	"slices"
	"testing"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTransaction(t *testing.T, date string, amount string, isIncome bool) Transaction {
	t.Helper()
	d, err := civil.ParseDate(date)
	require.NoError(t, err)
	tx, err := NewTransaction(d, decimal.RequireFromString(amount), isIncome)
	require.NoError(t, err)
	return tx
}

func scenarioTransactions(t *testing.T) []Transaction {
	return []Transaction{
		mustTransaction(t, "2024-03-05", "1000", true),
		mustTransaction(t, "2024-03-10", "200", false),
		mustTransaction(t, "2024-04-01", "50", false),
	}
}

func assertSummary(t *testing.T, s Summary, income, expenses, net string) {
	t.Helper()
	assert.True(t, s.Income.Equal(decimal.RequireFromString(income)), "income: got %s", s.Income)
	assert.True(t, s.Expenses.Equal(decimal.RequireFromString(expenses)), "expenses: got %s", s.Expenses)
	assert.True(t, s.Net.Equal(decimal.RequireFromString(net)), "net: got %s", s.Net)
}

// -- Aggregate tests --

func TestAggregate_Scenario(t *testing.T) {
	txs := scenarioTransactions(t)

	march, err := Aggregate(slices.Values(txs), 2024, 3)
	require.NoError(t, err)
	assertSummary(t, march, "1000", "200", "800")

	april, err := Aggregate(slices.Values(txs), 2024, 4)
	require.NoError(t, err)
	assertSummary(t, april, "0", "50", "-50")
}

func TestAggregate_OtherYearIgnored(t *testing.T) {
	txs := []Transaction{
		mustTransaction(t, "2023-03-05", "10", true),
		mustTransaction(t, "2024-03-05", "20", true),
	}

	s, err := Aggregate(slices.Values(txs), 2024, 3)
	require.NoError(t, err)
	assertSummary(t, s, "20", "0", "20")
}

func TestAggregate_Empty(t *testing.T) {
	for _, month := range []int{1, 2, 6, 12} {
		s, err := Aggregate(slices.Values([]Transaction{}), 1999, month)
		require.NoError(t, err)
		assert.True(t, s.Income.IsZero())
		assert.True(t, s.Expenses.IsZero())
		assert.True(t, s.Net.IsZero())
	}

	s, err := Aggregate(nil, 2024, 3)
	require.NoError(t, err)
	assert.True(t, s.Net.IsZero())
}

func TestAggregate_NetIsIncomeMinusExpenses(t *testing.T) {
	txs := []Transaction{
		mustTransaction(t, "2024-07-01", "12.34", true),
		mustTransaction(t, "2024-07-02", "99.99", false),
		mustTransaction(t, "2024-07-15", "0.01", true),
		mustTransaction(t, "2024-07-31", "45", false),
	}

	s, err := Aggregate(slices.Values(txs), 2024, 7)
	require.NoError(t, err)
	assert.True(t, s.Net.Equal(s.Income.Sub(s.Expenses)))
	assertSummary(t, s, "12.35", "144.99", "-132.64")
}

func TestAggregate_OrderIndependent(t *testing.T) {
	txs := append(scenarioTransactions(t),
		mustTransaction(t, "2024-03-20", "0.10", false),
		mustTransaction(t, "2024-03-21", "33.33", true),
	)
	forward, err := Aggregate(slices.Values(txs), 2024, 3)
	require.NoError(t, err)

	reversed := slices.Clone(txs)
	slices.Reverse(reversed)
	backward, err := Aggregate(slices.Values(reversed), 2024, 3)
	require.NoError(t, err)

	assert.True(t, forward.Income.Equal(backward.Income))
	assert.True(t, forward.Expenses.Equal(backward.Expenses))
	assert.True(t, forward.Net.Equal(backward.Net))
}

func TestAggregate_ExactAccumulation(t *testing.T) {
	txs := make([]Transaction, 0, 10)
	for range 10 {
		txs = append(txs, mustTransaction(t, "2024-01-15", "0.10", true))
	}

	s, err := Aggregate(slices.Values(txs), 2024, 1)
	require.NoError(t, err)
	assert.Equal(t, "1", s.Income.String())
}

func TestAggregate_InvalidMonth(t *testing.T) {
	txs := scenarioTransactions(t)
	for _, month := range []int{0, 13, -1} {
		_, err := Aggregate(slices.Values(txs), 2024, month)
		assert.ErrorIs(t, err, ErrInvalidMonth)
	}
}

// -- AggregateDays tests --

func TestAggregateDays_GroupsByDay(t *testing.T) {
	txs := append(scenarioTransactions(t),
		mustTransaction(t, "2024-03-05", "25", false),
	)

	days, err := AggregateDays(slices.Values(txs), 2024, 3)
	require.NoError(t, err)
	assert.Len(t, days, 2)
	assertSummary(t, days[5], "1000", "25", "975")
	assertSummary(t, days[10], "0", "200", "-200")
	_, ok := days[1]
	assert.False(t, ok)
}

func TestAggregateDays_InvalidMonth(t *testing.T) {
	_, err := AggregateDays(nil, 2024, 13)
	assert.ErrorIs(t, err, ErrInvalidMonth)
}

// -- Formatted tests --

func TestSummaryFormatted(t *testing.T) {
	s := Summary{
		Income:   decimal.RequireFromString("1000"),
		Expenses: decimal.RequireFromString("200.005"),
	}
	s.Net = s.Income.Sub(s.Expenses)

	f := s.Formatted()
	assert.Equal(t, "1000.00", f.Income)
	assert.Equal(t, "200.01", f.Expenses)
	assert.Equal(t, "800.00", f.Net)
}

func TestSummaryFormatted_Zero(t *testing.T) {
	f := Summary{}.Formatted()
	assert.Equal(t, FormattedSummary{Income: "0.00", Expenses: "0.00", Net: "0.00"}, f)
}
