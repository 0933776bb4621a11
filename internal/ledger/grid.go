package ledger

const daysPerWeek = 7

// WeekdayHeader is the Sunday-first header row of a calendar grid.
var WeekdayHeader = [daysPerWeek]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// Cell is one slot of a calendar grid. Day is 0 for padding cells.
type Cell struct {
	Day int `json:"day"`
}

// IsEmpty reports whether the cell is padding.
func (c Cell) IsEmpty() bool {
	return c.Day == 0
}

// Grid is the weekday-aligned layout of one month.
type Grid struct {
	Key    MonthKey
	Header [daysPerWeek]string
	Cells  []Cell
}

type layoutOptions struct {
	sixWeeks bool
}

// LayoutOption changes how Layout pads the grid.
type LayoutOption func(*layoutOptions)

// WithSixWeeks pads the grid to a uniform six rows of seven cells.
func WithSixWeeks() LayoutOption {
	return func(o *layoutOptions) {
		o.sixWeeks = true
	}
}

// Layout builds the calendar grid for (year, month): FirstWeekday blank
// cells, one cell per day, then blanks up to the end of the last week.
func Layout(year, month int, opts ...LayoutOption) (Grid, error) {
	key, err := NewMonthKey(year, month)
	if err != nil {
		return Grid{}, err
	}
	return LayoutMonth(key, opts...), nil
}

// LayoutMonth is Layout for an already validated key.
func LayoutMonth(key MonthKey, opts ...LayoutOption) Grid {
	var options layoutOptions
	for _, opt := range opts {
		opt(&options)
	}

	leading := int(key.FirstWeekday())
	days := key.DaysInMonth()

	size := leading + days
	if rem := size % daysPerWeek; rem != 0 {
		size += daysPerWeek - rem
	}
	if options.sixWeeks && size < 6*daysPerWeek {
		size = 6 * daysPerWeek
	}

	cells := make([]Cell, size)
	for day := 1; day <= days; day++ {
		cells[leading+day-1] = Cell{Day: day}
	}

	return Grid{
		Key:    key,
		Header: WeekdayHeader,
		Cells:  cells,
	}
}

// Weeks splits the cells into rows of seven.
func (g Grid) Weeks() [][]Cell {
	weeks := make([][]Cell, 0, len(g.Cells)/daysPerWeek)
	for start := 0; start < len(g.Cells); start += daysPerWeek {
		end := min(start+daysPerWeek, len(g.Cells))
		weeks = append(weeks, g.Cells[start:end])
	}
	return weeks
}

// LeadingBlanks counts the padding cells before day 1.
func (g Grid) LeadingBlanks() int {
	for i, c := range g.Cells {
		if !c.IsEmpty() {
			return i
		}
	}
	return len(g.Cells)
}

// DayCount counts the non-padding cells.
func (g Grid) DayCount() int {
	n := 0
	for _, c := range g.Cells {
		if !c.IsEmpty() {
			n++
		}
	}
	return n
}
