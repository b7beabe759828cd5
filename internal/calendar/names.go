package calendar

import (
	"time"

	"datepick/internal/dates"
)

// DayNames returns the short weekday names in column order.
func DayNames(locale string, firstWeekdaySunday bool) []string {
	start := time.Monday
	if firstWeekdaySunday {
		start = time.Sunday
	}
	out := make([]string, 0, 7)
	for i := 0; i < 7; i++ {
		out = append(out, dates.WeekdayShortName((start+time.Weekday(i))%7, locale))
	}
	return out
}

// MonthTitle is the grid heading, e.g. "December 2024".
func MonthTitle(ref dates.Date, locale string) string {
	return dates.Format(ref, "MMMM YYYY", locale)
}

// YearSpan is how far the year picker reaches on either side of now when no
// bound is configured.
const YearSpan = 40

// Years lists the selectable years for the year picker: the min bound's year
// (or now-40) through the max bound's year (or now+40).
func Years(min, max *dates.Date, now func() time.Time) []int {
	cur := dates.Today(now).Year()
	from, to := cur-YearSpan, cur+YearSpan
	if min != nil {
		from = min.Year()
	}
	if max != nil {
		to = max.Year()
	}
	if to < from {
		return []int{from}
	}
	out := make([]int, 0, to-from+1)
	for y := from; y <= to; y++ {
		out = append(out, y)
	}
	return out
}
