package cli

import (
	"time"

	"datepick/internal/dates"

	"github.com/spf13/pflag"
)

// dateFlag is a YYYY-MM-DD flag value; unset means no date.
type dateFlag struct {
	d   dates.Date
	set bool
}

var _ pflag.Value = (*dateFlag)(nil)

func (f *dateFlag) String() string {
	if f == nil || !f.set {
		return ""
	}
	return f.d.String()
}

func (f *dateFlag) Set(s string) error {
	d, err := dates.ParseISO(s)
	if err != nil {
		return err
	}
	f.d, f.set = d, true
	return nil
}

func (f *dateFlag) Type() string { return "date" }

func (f *dateFlag) timePtr() *time.Time {
	if !f.set {
		return nil
	}
	t := f.d.Time()
	return &t
}
