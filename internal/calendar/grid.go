package calendar

import (
	"time"

	"datepick/internal/dates"
)

// Cell is one slot of a month grid. Day == 0 marks a leading padding cell:
// every other field is zero and it can never be selected.
type Cell struct {
	Day      int         `json:"day,omitempty"`
	Month    int         `json:"month,omitempty"`
	Year     int         `json:"year,omitempty"`
	Enabled  bool        `json:"enabled"`
	Today    bool        `json:"today"`
	Selected bool        `json:"selected"`
	Date     *dates.Date `json:"date,omitempty"`
}

func (c Cell) IsPadding() bool { return c.Day == 0 }

type BuildOptions struct {
	FirstWeekdaySunday bool
	Min                *dates.Date
	Max                *dates.Date
	Selected           *dates.Date
	// Now defaults to time.Now; only the Today flag reads it.
	Now func() time.Time
}

// Build returns the cells for ref's month: leading padding so day 1 lands under
// its weekday column, then one cell per day. The last week is not padded.
func Build(ref dates.Date, opts BuildOptions) []Cell {
	first := ref.FirstOfMonth()
	year, month := first.Year(), first.Month()

	// Days are numbered Monday-first internally. For a Sunday-first grid the
	// weekday of the 2nd is probed instead of the 1st, which shifts the padding
	// by exactly one column.
	probe := first
	if opts.FirstWeekdaySunday {
		probe = first.AddDays(1)
	}
	firstWeekday := int(probe.Weekday())

	n := 1
	if firstWeekday != int(time.Monday) {
		n -= (firstWeekday + 6) % 7
	}

	today := dates.Today(opts.Now)
	last := first.DaysInMonth()
	cells := make([]Cell, 0, last-n+1)
	for i := n; i <= last; i++ {
		if i <= 0 {
			cells = append(cells, Cell{})
			continue
		}
		d := dates.New(year, month, i)
		cells = append(cells, Cell{
			Day:      i,
			Month:    int(month),
			Year:     year,
			Enabled:  Enabled(d, opts.Min, opts.Max),
			Today:    d.SameDay(today),
			Selected: opts.Selected != nil && !opts.Selected.IsZero() && d.SameDay(*opts.Selected),
			Date:     &d,
		})
	}
	return cells
}

// Enabled applies the min/max bounds to d. Bounds are inclusive and a nil bound
// is open.
func Enabled(d dates.Date, min, max *dates.Date) bool {
	if min != nil && d.Before(*min) {
		return false
	}
	if max != nil && d.After(*max) {
		return false
	}
	return true
}

// LeadingBlanks counts the padding cells before day 1.
func LeadingBlanks(cells []Cell) int {
	n := 0
	for _, c := range cells {
		if !c.IsPadding() {
			break
		}
		n++
	}
	return n
}

// Weeks splits cells into rows of seven. The final row may be short.
func Weeks(cells []Cell) [][]Cell {
	var rows [][]Cell
	for len(cells) > 0 {
		k := min(7, len(cells))
		rows = append(rows, cells[:k])
		cells = cells[k:]
	}
	return rows
}

// IndexOfDay returns the position of day in cells, or -1.
func IndexOfDay(cells []Cell, day int) int {
	for i, c := range cells {
		if c.Day == day {
			return i
		}
	}
	return -1
}
