package month

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-bloom/internal/ledger"
)

// MonthPathInput carries the (year, month) path parameters. Year stays text
// until parseMonthPath so a malformed year is a 400, not a schema error.
type MonthPathInput struct {
	Year  string `path:"year" doc:"Year, e.g. 2024"`
	Month int    `path:"month" doc:"Month number, 1 to 12"`
}

// MonthSummary is the API response model for a month's totals.
type MonthSummary struct {
	Label    string `json:"label" doc:"Month name and year, e.g. March 2024"`
	Year     int    `json:"year" doc:"Year"`
	Month    int    `json:"month" doc:"Month number, 1 to 12"`
	Income   string `json:"income" doc:"Sum of income, two decimals"`
	Expenses string `json:"expenses" doc:"Sum of expenses, two decimals"`
	Net      string `json:"net" doc:"Income minus expenses, two decimals"`
}

// NewMonthSummary formats a summary for the response.
func NewMonthSummary(key ledger.MonthKey, summary ledger.Summary) MonthSummary {
	formatted := summary.Formatted()
	return MonthSummary{
		Label:    key.String(),
		Year:     key.Year,
		Month:    int(key.Month),
		Income:   formatted.Income,
		Expenses: formatted.Expenses,
		Net:      formatted.Net,
	}
}

// MonthGrid is the API response model for a month's calendar grid.
type MonthGrid struct {
	Label  string   `json:"label" doc:"Month name and year"`
	Year   int      `json:"year" doc:"Year"`
	Month  int      `json:"month" doc:"Month number, 1 to 12"`
	Header []string `json:"header" doc:"Weekday names, Sunday first"`
	Weeks  [][]int  `json:"weeks" doc:"Rows of seven day numbers, 0 marks a padding cell"`
}

// NewMonthGrid converts a grid for the response.
func NewMonthGrid(grid ledger.Grid) MonthGrid {
	weeks := make([][]int, 0, len(grid.Cells)/len(grid.Header))
	for _, week := range grid.Weeks() {
		row := make([]int, len(week))
		for i, cell := range week {
			row[i] = cell.Day
		}
		weeks = append(weeks, row)
	}

	return MonthGrid{
		Label:  grid.Key.String(),
		Year:   grid.Key.Year,
		Month:  int(grid.Key.Month),
		Header: grid.Header[:],
		Weeks:  weeks,
	}
}

// parseMonthPath validates the path parameters.
func parseMonthPath(input *MonthPathInput) (ledger.MonthKey, error) {
	year, err := ledger.ParseYear(input.Year)
	if err != nil {
		return ledger.MonthKey{}, huma.NewError(http.StatusBadRequest, "invalid year", err)
	}
	key, err := ledger.NewMonthKey(year, input.Month)
	if err != nil {
		return ledger.MonthKey{}, huma.NewError(http.StatusBadRequest, "invalid month", err)
	}
	return key, nil
}
