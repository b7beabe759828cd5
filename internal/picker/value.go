package picker

import "datepick/internal/dates"

// Value is the date bound to the host form. It is replaced, never mutated.
type Value struct {
	Day       string     `json:"day"`
	Month     string     `json:"month"`
	Year      string     `json:"year"`
	Formatted string     `json:"formatted"`
	Date      dates.Date `json:"date"`
}

// NewValue builds the bound value for d, rendering Formatted with pattern.
func NewValue(d dates.Date, pattern, locale string) *Value {
	return &Value{
		Day:       dates.Format(d, "DD", locale),
		Month:     dates.Format(d, "MM", locale),
		Year:      dates.Format(d, "YYYY", locale),
		Formatted: dates.Format(d, pattern, locale),
		Date:      d,
	}
}
