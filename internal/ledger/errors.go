package ledger

import "errors"

var (
	// ErrInvalidYearFormat is returned when year text is not a well-formed integer.
	ErrInvalidYearFormat = errors.New("invalid year format")
	// ErrInvalidMonth is returned when a month is outside 1..12.
	ErrInvalidMonth = errors.New("invalid month")
	// ErrInvalidAmount is returned for negative or unparseable amounts.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrInvalidDate is returned for dates that do not exist on the calendar.
	ErrInvalidDate = errors.New("invalid date")
)
