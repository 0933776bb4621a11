package ledger

import (
	"fmt"
	"strings"
)

const cellWidth = 5

// RenderText paints a month for a terminal: title, totals, weekday header
// and one line per week. Days with activity are marked with '*'.
func RenderText(grid Grid, summary Summary, days map[int]Summary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", grid.Key)
	totals := summary.Formatted()
	fmt.Fprintf(&b, "Income: %s  Expenses: %s  Total: %s\n", totals.Income, totals.Expenses, totals.Net)

	for _, name := range grid.Header {
		fmt.Fprintf(&b, "%*s", cellWidth, name)
	}
	b.WriteString("\n")

	for _, week := range grid.Weeks() {
		for _, cell := range week {
			b.WriteString(renderCell(cell, days))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func renderCell(cell Cell, days map[int]Summary) string {
	if cell.IsEmpty() {
		return strings.Repeat(" ", cellWidth)
	}
	label := fmt.Sprintf("%d", cell.Day)
	if _, ok := days[cell.Day]; ok {
		label += "*"
	} else {
		label += " "
	}
	return fmt.Sprintf("%*s", cellWidth, label)
}
