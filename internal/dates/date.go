package dates

import (
	"encoding/json"
	"strings"
	"time"

	"cloudeng.io/datetime"
)

// Date is a civil calendar date. It is the canonical value used for comparisons
// and as the form-bound value; display formatting is applied separately.
//
// The zero Date is "no date".
type Date struct {
	t time.Time
}

// New returns the date y-m-d. Out of range values normalize the way time.Date does.
func New(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// FromTime drops the clock and location of t, keeping its wall-clock date.
func FromTime(t time.Time) Date {
	if t.IsZero() {
		return Date{}
	}
	y, m, d := t.Date()
	return New(y, m, d)
}

// Today returns the civil date of now().
func Today(now func() time.Time) Date {
	if now == nil {
		now = time.Now
	}
	return FromTime(now())
}

func (d Date) IsZero() bool { return d.t.IsZero() }

func (d Date) Time() time.Time { return d.t }

func (d Date) Year() int { return d.t.Year() }

func (d Date) Month() time.Month { return d.t.Month() }

func (d Date) Day() int { return d.t.Day() }

func (d Date) Weekday() time.Weekday { return d.t.Weekday() }

// DaysInMonth returns the number of days in d's month.
func (d Date) DaysInMonth() int {
	return DaysInMonth(d.Year(), d.Month())
}

// DaysInMonth returns the number of days in month m of year y.
func DaysInMonth(y int, m time.Month) int {
	return int(datetime.DaysInMonth(y, datetime.Month(m)))
}

// FirstOfMonth returns day 1 of d's month.
func (d Date) FirstOfMonth() Date {
	return New(d.Year(), d.Month(), 1)
}

// WithDay returns d moved to the given day of its month, clamped to the month length.
func (d Date) WithDay(day int) Date {
	return New(d.Year(), d.Month(), clampDay(d.Year(), d.Month(), day))
}

func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

// AddMonths moves d by n months. The day is clamped to the target month so that
// Jan 31 + 1 month is the last day of February, not early March.
func (d Date) AddMonths(n int) Date {
	y, m := d.Year(), int(d.Month())-1+n
	y += m / 12
	m %= 12
	if m < 0 {
		m += 12
		y--
	}
	mo := time.Month(m + 1)
	return New(y, mo, clampDay(y, mo, d.Day()))
}

// AddYears moves d by n years, clamping Feb 29 to Feb 28 on non-leap years.
func (d Date) AddYears(n int) Date {
	y := d.Year() + n
	return New(y, d.Month(), clampDay(y, d.Month(), d.Day()))
}

// SameDay reports whether d and o are the same calendar day.
func (d Date) SameDay(o Date) bool {
	return d.Year() == o.Year() && d.Month() == o.Month() && d.Day() == o.Day()
}

// SameMonth reports whether d and o fall in the same month of the same year.
func (d Date) SameMonth(o Date) bool {
	return d.Year() == o.Year() && d.Month() == o.Month()
}

func (d Date) Before(o Date) bool { return d.t.Before(o.t) }

func (d Date) After(o Date) bool { return d.t.After(o.t) }

// Between reports whether lo <= d <= hi at day granularity.
func (d Date) Between(lo, hi Date) bool {
	return !d.Before(lo) && !d.After(hi)
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(isoLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*d = Date{}
		return nil
	}
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	parsed, err := ParseISO(raw)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

const isoLayout = "2006-01-02"

// ParseISO parses a YYYY-MM-DD date.
func ParseISO(s string) (Date, error) {
	t, err := time.Parse(isoLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, &ParseError{Value: s, Pattern: "YYYY-MM-DD", msg: "expected YYYY-MM-DD"}
	}
	return FromTime(t), nil
}

func clampDay(y int, m time.Month, d int) int {
	if d < 1 {
		return 1
	}
	if max := DaysInMonth(y, m); d > max {
		return max
	}
	return d
}
