package calendar

import (
	"context"

	"github.com/carson-networks/budget-bloom/internal/handlers/v1/month"
	"github.com/carson-networks/budget-bloom/internal/service"
)

// CalendarDay is one cell of the calendar view. Day is 0 for padding.
type CalendarDay struct {
	Day      int    `json:"day" doc:"Day of month, 0 for a padding cell"`
	Active   bool   `json:"active" doc:"True when a transaction was logged on this day"`
	Income   string `json:"income,omitempty" doc:"Income logged on this day"`
	Expenses string `json:"expenses,omitempty" doc:"Expenses logged on this day"`
}

// CalendarView is the API response model for the selected month.
type CalendarView struct {
	Summary month.MonthSummary `json:"summary" doc:"Totals of the selected month"`
	Header  []string           `json:"header" doc:"Weekday names, Sunday first"`
	Weeks   [][]CalendarDay    `json:"weeks" doc:"Rows of seven cells"`
}

// calendarState is the interface for the selected-month state.
type calendarState interface {
	SelectView(ctx context.Context, month int, yearText string) (service.MonthView, error)
	View(ctx context.Context) (service.MonthView, error)
}

// NewCalendarView converts a month view for the response.
func NewCalendarView(view service.MonthView) CalendarView {
	weeks := make([][]CalendarDay, 0, len(view.Grid.Cells)/len(view.Grid.Header))
	for _, week := range view.Grid.Weeks() {
		row := make([]CalendarDay, len(week))
		for i, cell := range week {
			row[i] = CalendarDay{Day: cell.Day}
			if day, ok := view.Days[cell.Day]; ok && !cell.IsEmpty() {
				formatted := day.Formatted()
				row[i].Active = true
				row[i].Income = formatted.Income
				row[i].Expenses = formatted.Expenses
			}
		}
		weeks = append(weeks, row)
	}

	return CalendarView{
		Summary: month.NewMonthSummary(view.Key, view.Summary),
		Header:  view.Grid.Header[:],
		Weeks:   weeks,
	}
}
