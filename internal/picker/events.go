package picker

import (
	"fmt"
	"time"

	"datepick/internal/dates"
)

type EventType string

const (
	EventInit        EventType = "init"
	EventOpened      EventType = "opened"
	EventClosed      EventType = "closed"
	EventDateChanged EventType = "dateChanged"
)

// Event is an outbound notification. Value is nil for every type except
// dateChanged, where nil means the field was cleared.
type Event struct {
	Type  EventType
	Value *Value
}

type CommandType string

const (
	CommandSetDate CommandType = "setDate"
	CommandOpen    CommandType = "open"
	CommandClose   CommandType = "close"
	CommandToggle  CommandType = "toggle"
)

// Command is an inbound request from the host. Date is only read for setDate
// and must hold a time.Time (or a non-nil *time.Time, or a dates.Date).
type Command struct {
	Type CommandType
	Date any
}

// InvalidDateArgError is returned when setDate carries something that is not a date.
type InvalidDateArgError struct {
	Got any
}

func (e *InvalidDateArgError) Error() string {
	return fmt.Sprintf("setDate: input data must be a date (time.Time), got %T", e.Got)
}

type unknownCommandError struct {
	typ CommandType
}

func (e unknownCommandError) Error() string {
	return fmt.Sprintf("unknown command: %q", string(e.typ))
}

func dateArg(v any) (dates.Date, error) {
	switch t := v.(type) {
	case time.Time:
		if !t.IsZero() {
			return dates.FromTime(t), nil
		}
	case *time.Time:
		if t != nil && !t.IsZero() {
			return dates.FromTime(*t), nil
		}
	case dates.Date:
		if !t.IsZero() {
			return t, nil
		}
	}
	return dates.Date{}, &InvalidDateArgError{Got: v}
}
