package ledger

import (
	"iter"

	"github.com/shopspring/decimal"
)

// displayPlaces is the number of fraction digits shown for money values.
const displayPlaces = 2

// Summary is the month ledger: income, expenses and their difference.
type Summary struct {
	Income   decimal.Decimal
	Expenses decimal.Decimal
	Net      decimal.Decimal
}

// FormattedSummary holds a Summary rounded for display.
type FormattedSummary struct {
	Income   string `json:"income"`
	Expenses string `json:"expenses"`
	Net      string `json:"net"`
}

func (s *Summary) add(t Transaction) {
	if t.IsIncome {
		s.Income = s.Income.Add(t.Amount)
	} else {
		s.Expenses = s.Expenses.Add(t.Amount)
	}
	s.Net = s.Income.Sub(s.Expenses)
}

// Formatted rounds each value to two fraction digits. Accumulation is exact,
// rounding happens only here.
func (s Summary) Formatted() FormattedSummary {
	return FormattedSummary{
		Income:   s.Income.StringFixed(displayPlaces),
		Expenses: s.Expenses.StringFixed(displayPlaces),
		Net:      s.Net.StringFixed(displayPlaces),
	}
}

// Aggregate sums the transactions dated in (year, month) into a Summary.
// A nil sequence is treated as empty.
func Aggregate(txs iter.Seq[Transaction], year, month int) (Summary, error) {
	key, err := NewMonthKey(year, month)
	if err != nil {
		return Summary{}, err
	}
	return AggregateMonth(txs, key), nil
}

// AggregateMonth is Aggregate for an already validated key.
func AggregateMonth(txs iter.Seq[Transaction], key MonthKey) Summary {
	var summary Summary
	if txs == nil {
		return summary
	}
	for t := range txs {
		if t.In(key) {
			summary.add(t)
		}
	}
	return summary
}

// AggregateDays sums the transactions of (year, month) per day of month.
// Days without transactions are absent from the result.
func AggregateDays(txs iter.Seq[Transaction], year, month int) (map[int]Summary, error) {
	key, err := NewMonthKey(year, month)
	if err != nil {
		return nil, err
	}
	return AggregateMonthDays(txs, key), nil
}

// AggregateMonthDays is AggregateDays for an already validated key.
func AggregateMonthDays(txs iter.Seq[Transaction], key MonthKey) map[int]Summary {
	days := make(map[int]Summary)
	if txs == nil {
		return days
	}
	for t := range txs {
		if !t.In(key) {
			continue
		}
		day := days[t.Date.Day]
		day.add(t)
		days[t.Date.Day] = day
	}
	return days
}
