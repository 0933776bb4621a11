package ledger

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// MonthKey identifies one calendar month. It is built per query, never stored.
type MonthKey struct {
	Year  int
	Month time.Month
}

// NewMonthKey validates month and returns the key for (year, month).
func NewMonthKey(year, month int) (MonthKey, error) {
	if month < 1 || month > 12 {
		return MonthKey{}, fmt.Errorf("%w: %d", ErrInvalidMonth, month)
	}
	return MonthKey{Year: year, Month: time.Month(month)}, nil
}

// MonthKeyOf returns the month containing t.
func MonthKeyOf(t time.Time) MonthKey {
	return MonthKey{Year: t.Year(), Month: t.Month()}
}

func (k MonthKey) String() string {
	return fmt.Sprintf("%s %d", k.Month, k.Year)
}

// DaysInMonth returns the number of days in the key's month.
func (k MonthKey) DaysInMonth() int {
	switch k.Month {
	case time.February:
		if isLeapYear(k.Year) {
			return 29
		}
		return 28
	case time.April, time.June, time.September, time.November:
		return 30
	default:
		return 31
	}
}

// FirstWeekday returns the weekday of the first day of the month, Sunday = 0.
func (k MonthKey) FirstWeekday() time.Weekday {
	return time.Date(k.Year, k.Month, 1, 0, 0, 0, 0, time.UTC).Weekday()
}

// DaysInMonth returns the number of days in (year, month).
func DaysInMonth(year, month int) (int, error) {
	key, err := NewMonthKey(year, month)
	if err != nil {
		return 0, err
	}
	return key.DaysInMonth(), nil
}

// FirstWeekday returns the weekday of the first of (year, month), Sunday = 0.
func FirstWeekday(year, month int) (time.Weekday, error) {
	key, err := NewMonthKey(year, month)
	if err != nil {
		return 0, err
	}
	return key.FirstWeekday(), nil
}

// ParseYear parses user supplied year text. Surrounding whitespace is ignored.
func ParseYear(text string) (int, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidYearFormat)
	}
	year, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidYearFormat, text)
	}
	return year, nil
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
