package calendar

import (
	"testing"
	"time"

	"datepick/internal/dates"

	"github.com/google/go-cmp/cmp"
)

func fixedNow(y int, m time.Month, d int) func() time.Time {
	return func() time.Time { return time.Date(y, m, d, 15, 4, 5, 0, time.UTC) }
}

func datePtr(d dates.Date) *dates.Date { return &d }

var sameDay = cmp.Comparer(func(a, b dates.Date) bool { return a.SameDay(b) })

func TestBuild_EveryMonthHasAllDaysAndAlignedPadding(t *testing.T) {
	now := fixedNow(2026, time.October, 18)
	for _, sunday := range []bool{false, true} {
		for y := 2023; y <= 2026; y++ {
			for m := time.January; m <= time.December; m++ {
				ref := dates.New(y, m, 17)
				cells := Build(ref, BuildOptions{FirstWeekdaySunday: sunday, Now: now})

				days := 0
				for _, c := range cells {
					if !c.IsPadding() {
						days++
					}
				}
				if want := dates.DaysInMonth(y, m); days != want {
					t.Fatalf("%d-%02d sunday=%v: expected %d real cells, got %d", y, m, sunday, want, days)
				}

				blanks := LeadingBlanks(cells)
				if blanks < 0 || blanks > 6 {
					t.Fatalf("%d-%02d sunday=%v: padding %d out of [0,6]", y, m, sunday, blanks)
				}
				wd := int(dates.New(y, m, 1).Weekday())
				want := (wd + 6) % 7
				if sunday {
					want = wd
				}
				if blanks != want {
					t.Fatalf("%d-%02d sunday=%v: expected %d leading blanks, got %d", y, m, sunday, want, blanks)
				}
				if cells[blanks].Day != 1 {
					t.Fatalf("%d-%02d: expected first real cell to be day 1, got %d", y, m, cells[blanks].Day)
				}
				if len(cells) != blanks+days {
					t.Fatalf("%d-%02d: expected no trailing padding, got %d cells", y, m, len(cells))
				}
			}
		}
	}
}

func TestBuild_KnownMonths(t *testing.T) {
	// July 2024 starts on a Monday: no padding Monday-first, one blank Sunday-first.
	july := dates.New(2024, time.July, 1)
	if got := LeadingBlanks(Build(july, BuildOptions{})); got != 0 {
		t.Fatalf("July 2024 monday-first: expected 0 blanks, got %d", got)
	}
	if got := LeadingBlanks(Build(july, BuildOptions{FirstWeekdaySunday: true})); got != 1 {
		t.Fatalf("July 2024 sunday-first: expected 1 blank, got %d", got)
	}

	// September 2024 starts on a Sunday: six blanks Monday-first, none Sunday-first.
	sep := dates.New(2024, time.September, 30)
	if got := LeadingBlanks(Build(sep, BuildOptions{})); got != 6 {
		t.Fatalf("September 2024 monday-first: expected 6 blanks, got %d", got)
	}
	if got := LeadingBlanks(Build(sep, BuildOptions{FirstWeekdaySunday: true})); got != 0 {
		t.Fatalf("September 2024 sunday-first: expected 0 blanks, got %d", got)
	}
}

func TestBuild_PaddingCellsAreEmpty(t *testing.T) {
	cells := Build(dates.New(2024, time.September, 1), BuildOptions{})
	for i := 0; i < LeadingBlanks(cells); i++ {
		if diff := cmp.Diff(Cell{}, cells[i], sameDay); diff != "" {
			t.Fatalf("padding cell %d not empty (-want +got):\n%s", i, diff)
		}
	}
}

func TestBuild_UsesReferenceMonthNotNow(t *testing.T) {
	cells := Build(dates.New(2024, time.February, 10), BuildOptions{Now: fixedNow(2026, time.October, 18)})
	last := cells[len(cells)-1]
	want := Cell{Day: 29, Month: 2, Year: 2024, Enabled: true, Date: datePtr(dates.New(2024, time.February, 29))}
	if diff := cmp.Diff(want, last, sameDay); diff != "" {
		t.Fatalf("unexpected last cell (-want +got):\n%s", diff)
	}
}

func TestBuild_EnabledBounds(t *testing.T) {
	ref := dates.New(2024, time.May, 1)
	min := dates.New(2024, time.May, 10)
	max := dates.New(2024, time.May, 20)

	check := func(name string, opts BuildOptions, enabled func(day int) bool) {
		t.Helper()
		for _, c := range Build(ref, opts) {
			if c.IsPadding() {
				if c.Enabled {
					t.Fatalf("%s: padding cell must never be enabled", name)
				}
				continue
			}
			if got, want := c.Enabled, enabled(c.Day); got != want {
				t.Fatalf("%s: day %d enabled=%v, expected %v", name, c.Day, got, want)
			}
		}
	}

	check("both", BuildOptions{Min: &min, Max: &max}, func(d int) bool { return d >= 10 && d <= 20 })
	check("min only", BuildOptions{Min: &min}, func(d int) bool { return d >= 10 })
	check("max only", BuildOptions{Max: &max}, func(d int) bool { return d <= 20 })
	check("none", BuildOptions{}, func(int) bool { return true })
}

func TestBuild_TodayOnlyInCurrentMonth(t *testing.T) {
	now := fixedNow(2026, time.October, 18)

	count := func(cells []Cell) (n int, day int) {
		for _, c := range cells {
			if c.Today {
				n++
				day = c.Day
			}
		}
		return
	}

	n, day := count(Build(dates.New(2026, time.October, 1), BuildOptions{Now: now}))
	if n != 1 || day != 18 {
		t.Fatalf("expected exactly day 18 flagged today, got n=%d day=%d", n, day)
	}
	// Same month, different year.
	if n, _ := count(Build(dates.New(2025, time.October, 1), BuildOptions{Now: now})); n != 0 {
		t.Fatalf("expected no today flag in October 2025, got %d", n)
	}
	if n, _ := count(Build(dates.New(2026, time.November, 1), BuildOptions{Now: now})); n != 0 {
		t.Fatalf("expected no today flag in November 2026, got %d", n)
	}
}

func TestBuild_Selected(t *testing.T) {
	sel := dates.New(2024, time.December, 25)
	cells := Build(dates.New(2024, time.December, 1), BuildOptions{Selected: &sel})
	var got []int
	for _, c := range cells {
		if c.Selected {
			got = append(got, c.Day)
		}
	}
	if diff := cmp.Diff([]int{25}, got); diff != "" {
		t.Fatalf("selected days (-want +got):\n%s", diff)
	}

	other := Build(dates.New(2025, time.December, 1), BuildOptions{Selected: &sel})
	for _, c := range other {
		if c.Selected {
			t.Fatalf("selection must not leak into another year; day %d flagged", c.Day)
		}
	}
}

func TestWeeks(t *testing.T) {
	cells := Build(dates.New(2024, time.September, 1), BuildOptions{})
	rows := Weeks(cells)
	// 6 blanks + 30 days = 36 cells -> 5 full rows and a 1-cell row.
	if len(rows) != 6 {
		t.Fatalf("expected 6 rows, got %d", len(rows))
	}
	if len(rows[5]) != 1 || rows[5][0].Day != 30 {
		t.Fatalf("expected short last row holding day 30, got %+v", rows[5])
	}
	if IndexOfDay(cells, 1) != 6 {
		t.Fatalf("expected day 1 at index 6, got %d", IndexOfDay(cells, 1))
	}
}

func TestDayNames(t *testing.T) {
	if diff := cmp.Diff([]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}, DayNames("en-US", false)); diff != "" {
		t.Fatalf("monday-first names (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}, DayNames("en-US", true)); diff != "" {
		t.Fatalf("sunday-first names (-want +got):\n%s", diff)
	}
}

func TestYears(t *testing.T) {
	now := fixedNow(2026, time.October, 18)
	ys := Years(nil, nil, now)
	if ys[0] != 1986 || ys[len(ys)-1] != 2066 {
		t.Fatalf("expected 1986..2066, got %d..%d", ys[0], ys[len(ys)-1])
	}
	min := dates.New(2020, time.March, 1)
	max := dates.New(2022, time.January, 1)
	if diff := cmp.Diff([]int{2020, 2021, 2022}, Years(&min, &max, now)); diff != "" {
		t.Fatalf("bounded years (-want +got):\n%s", diff)
	}
}

func TestMonthTitle(t *testing.T) {
	if got := MonthTitle(dates.New(2024, time.December, 5), "en-US"); got != "December 2024" {
		t.Fatalf("expected %q, got %q", "December 2024", got)
	}
}
