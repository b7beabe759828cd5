package picker

import (
	"fmt"
	"strings"
	"time"

	"datepick/internal/dates"

	"cloudeng.io/errors"
)

const (
	DefaultLocale = "pt-BR"
	DefaultFormat = "YYYY-MM-DD"
)

// Options configure a Controller. Zero fields fall back to the defaults above.
type Options struct {
	// AutoApply closes the calendar after a day is picked.
	AutoApply bool   `json:"autoApply,omitempty"`
	Locale    string `json:"locale,omitempty"`

	MinDate     *time.Time `json:"minDate,omitempty"`
	MaxDate     *time.Time `json:"maxDate,omitempty"`
	InitialDate *time.Time `json:"initialDate,omitempty"`

	FirstWeekdaySunday bool `json:"firstWeekdaySunday,omitempty"`

	// Format is the output pattern for Value.Formatted. The field shows it
	// once a value is bound; while typing it always holds the DD/MM/YYYY mask.
	Format string `json:"format,omitempty"`

	// LegacyMask selects the older widget behavior: a picked day always closes
	// the calendar and the value is committed immediately instead of on the
	// next event-loop turn.
	LegacyMask bool `json:"legacyMask,omitempty"`

	// Static keeps the calendar open: it starts opened and Close is ignored.
	Static bool `json:"static,omitempty"`
}

// NewOptions fills defaults into a caller-supplied partial Options.
func NewOptions(partial Options) Options {
	o := partial
	if strings.TrimSpace(o.Locale) == "" {
		o.Locale = DefaultLocale
	}
	if strings.TrimSpace(o.Format) == "" {
		o.Format = DefaultFormat
	}
	return o
}

// Validate reports every problem with o at once.
func (o Options) Validate() error {
	errs := &errors.M{}
	if o.MinDate != nil && o.MaxDate != nil {
		lo, hi := dates.FromTime(*o.MinDate), dates.FromTime(*o.MaxDate)
		if hi.Before(lo) {
			errs.Append(fmt.Errorf("minDate %s is after maxDate %s", lo, hi))
		}
	}
	if err := dates.ValidatePattern(o.Format); err != nil {
		errs.Append(err)
	}
	if !dates.SupportedLocale(o.Locale) {
		errs.Append(fmt.Errorf("unsupported locale %q", o.Locale))
	}
	return errs.Err()
}

func (o Options) minDate() *dates.Date { return optDate(o.MinDate) }

func (o Options) maxDate() *dates.Date { return optDate(o.MaxDate) }

func optDate(t *time.Time) *dates.Date {
	if t == nil || t.IsZero() {
		return nil
	}
	d := dates.FromTime(*t)
	return &d
}
