package picker

import (
	"time"

	"datepick/internal/calendar"
	"datepick/internal/dates"
	"datepick/internal/mask"
)

// Controller owns the state of one date picker: whether the calendar is open,
// which month is displayed, the bound value and the text in the input field.
// It is driven from a single event loop and is not safe for concurrent use.
//
// Updates that must observe settled state (committing a picked day, switching
// year) are queued instead of applied; the host runs them with Flush on the
// next turn of its loop.
type Controller struct {
	opts Options
	now  func() time.Time

	min *dates.Date
	max *dates.Date

	opened     bool
	yearPicker bool
	current    dates.Date
	value      *Value
	view       string
	days       []calendar.Cell
	years      []int

	pending []func()

	onChange  func(*Value)
	onTouched func()
	listeners []func(Event)
}

type ControllerOption func(*Controller)

// WithClock replaces time.Now; tests use it to pin "today".
func WithClock(now func() time.Time) ControllerOption {
	return func(c *Controller) { c.now = now }
}

// WithSubscriber registers a listener before the init event is emitted.
func WithSubscriber(fn func(Event)) ControllerOption {
	return func(c *Controller) { c.Subscribe(fn) }
}

// New builds a Controller from partial options. Invalid options (min after max,
// a pattern without date fields, an unknown locale) are rejected.
func New(partial Options, opts ...ControllerOption) (*Controller, error) {
	o := NewOptions(partial)
	if err := o.Validate(); err != nil {
		return nil, err
	}
	c := &Controller{
		opts: o,
		now:  time.Now,
	}
	for _, fn := range opts {
		fn(c)
	}
	c.min = o.minDate()
	c.max = o.maxDate()
	c.current = dates.Today(c.now)
	if d := optDate(o.InitialDate); d != nil {
		c.current = *d
		c.setValue(c.newValue(*d))
	}
	c.years = calendar.Years(c.min, c.max, c.now)
	c.opened = o.Static
	c.generate()
	c.emit(Event{Type: EventInit})
	return c, nil
}

func (c *Controller) Options() Options { return c.opts }

func (c *Controller) Opened() bool { return c.opened }

func (c *Controller) YearPickerOpen() bool { return c.yearPicker }

// Current is the month on display (any day within it).
func (c *Controller) Current() dates.Date { return c.current }

// View is the text for the input field.
func (c *Controller) View() string { return c.view }

// Days returns the grid for the displayed month.
func (c *Controller) Days() []calendar.Cell {
	out := make([]calendar.Cell, len(c.days))
	copy(out, c.days)
	return out
}

func (c *Controller) Years() []int {
	out := make([]int, len(c.years))
	copy(out, c.years)
	return out
}

func (c *Controller) Title() string { return calendar.MonthTitle(c.current, c.opts.Locale) }

func (c *Controller) DayNames() []string {
	return calendar.DayNames(c.opts.Locale, c.opts.FirstWeekdaySunday)
}

// Subscribe adds a listener for outbound notifications.
func (c *Controller) Subscribe(fn func(Event)) {
	if fn != nil {
		c.listeners = append(c.listeners, fn)
	}
}

func (c *Controller) emit(ev Event) {
	for _, fn := range c.listeners {
		fn(ev)
	}
}

// Pending reports how many deferred updates wait for Flush.
func (c *Controller) Pending() int { return len(c.pending) }

// Flush runs deferred updates in order, including any they enqueue.
func (c *Controller) Flush() {
	for len(c.pending) > 0 {
		fn := c.pending[0]
		c.pending = c.pending[1:]
		fn()
	}
}

func (c *Controller) later(fn func()) {
	c.pending = append(c.pending, fn)
}

func (c *Controller) generate() {
	var sel *dates.Date
	if c.value != nil {
		d := c.value.Date
		sel = &d
	}
	c.days = calendar.Build(c.current, calendar.BuildOptions{
		FirstWeekdaySunday: c.opts.FirstWeekdaySunday,
		Min:                c.min,
		Max:                c.max,
		Selected:           sel,
		Now:                c.now,
	})
}

func (c *Controller) newValue(d dates.Date) *Value {
	return NewValue(d, c.opts.Format, c.opts.Locale)
}

// setValue stores v, shows it in the field and notifies the form.
func (c *Controller) setValue(v *Value) {
	c.value = v
	c.view = v.Formatted
	if c.onChange != nil {
		c.onChange(v)
	}
}

// Open shows the calendar.
func (c *Controller) Open() {
	c.opened = true
	c.yearPicker = false
	c.emit(Event{Type: EventOpened})
}

// Close hides the calendar. A static calendar stays open.
func (c *Controller) Close() {
	if c.opts.Static {
		return
	}
	c.opened = false
	c.emit(Event{Type: EventClosed})
}

func (c *Controller) Toggle() {
	if c.opened {
		c.Close()
		return
	}
	c.Open()
}

func (c *Controller) PrevMonth() { c.moveTo(c.current.AddMonths(-1)) }

func (c *Controller) NextMonth() { c.moveTo(c.current.AddMonths(1)) }

func (c *Controller) PrevYear() { c.moveTo(c.current.AddYears(-1)) }

func (c *Controller) NextYear() { c.moveTo(c.current.AddYears(1)) }

func (c *Controller) moveTo(d dates.Date) {
	c.current = d
	c.generate()
}

// SelectDay picks a grid cell. Padding and disabled cells are ignored and
// report false.
func (c *Controller) SelectDay(cell calendar.Cell) bool {
	if cell.IsPadding() || !cell.Enabled || cell.Date == nil {
		return false
	}
	c.selectDate(*cell.Date)
	return true
}

// selectDate commits d. The auto-close decision reads the open state before the
// commit lands; the commit itself is deferred so it observes settled state.
func (c *Controller) selectDate(d dates.Date) {
	commit := func() {
		c.current = d
		c.setValue(c.newValue(d))
		c.generate()
		c.emit(Event{Type: EventDateChanged, Value: c.value})
	}
	if c.opts.LegacyMask {
		if c.opened {
			c.Close()
		}
		commit()
		return
	}
	c.later(commit)
	if c.opts.AutoApply && c.opened {
		c.Close()
	}
}

// OpenYearPicker switches the calendar to year selection on the next turn.
func (c *Controller) OpenYearPicker() {
	c.later(func() { c.yearPicker = true })
}

// CloseYearPicker returns to the day grid.
func (c *Controller) CloseYearPicker() { c.yearPicker = false }

// SelectYear moves the displayed date to year and binds it, on the next turn.
func (c *Controller) SelectYear(year int) {
	c.later(func() {
		d := c.current.AddYears(year - c.current.Year())
		c.current = d
		c.setValue(c.newValue(d))
		c.yearPicker = false
		c.generate()
	})
}

// Today picks the wall-clock date.
func (c *Controller) Today() {
	c.selectDate(dates.Today(c.now))
}

// Clear empties the field, unbinds the value and closes the calendar.
// Queued updates are dropped so a pending pick cannot re-bind the value.
func (c *Controller) Clear() {
	c.pending = nil
	c.view = ""
	c.value = nil
	c.generate()
	if c.onChange != nil {
		c.onChange(nil)
	}
	c.emit(Event{Type: EventDateChanged})
	if c.opened {
		c.Close()
	}
}

// TypeText feeds the raw field contents through the mask. A complete date is
// bound immediately and the field switches to the output pattern; anything
// else stays in the field uncommitted.
func (c *Controller) TypeText(raw string) mask.Result {
	res := mask.Normalize(raw)
	if res.Clear {
		c.Clear()
		return res
	}
	c.view = res.View
	if res.Committed != nil {
		d := *res.Committed
		c.current = d
		c.setValue(c.newValue(d))
		c.generate()
		c.emit(Event{Type: EventDateChanged, Value: c.value})
	}
	return res
}

// EditText stores raw as-is, for deletions that must not be re-masked.
// An emptied field clears the value.
func (c *Controller) EditText(raw string) {
	if raw == "" {
		c.Clear()
		return
	}
	c.view = raw
}

// Handle applies an inbound host command. setDate with anything other than a
// date is a programming error and leaves the state untouched.
func (c *Controller) Handle(cmd Command) error {
	switch cmd.Type {
	case CommandSetDate:
		d, err := dateArg(cmd.Date)
		if err != nil {
			return err
		}
		c.SetValue(c.newValue(d))
		return nil
	case CommandOpen:
		c.Open()
	case CommandClose:
		c.Close()
	case CommandToggle:
		c.Toggle()
	default:
		return unknownCommandError{typ: cmd.Type}
	}
	return nil
}

// Value is the bound value, nil when empty.
func (c *Controller) Value() *Value { return c.value }

// SetValue binds v and notifies the form. nil is ignored.
func (c *Controller) SetValue(v *Value) {
	if v == nil {
		return
	}
	c.setValue(v)
	c.generate()
}

// WriteValue is the form-to-widget direction: it binds v without echoing a
// change back to the form. nil is ignored.
func (c *Controller) WriteValue(v *Value) {
	if v == nil {
		return
	}
	c.value = v
	c.view = v.Formatted
	c.generate()
}

func (c *Controller) RegisterOnChange(fn func(*Value)) { c.onChange = fn }

func (c *Controller) RegisterOnTouched(fn func()) { c.onTouched = fn }

// Touch reports that the user interacted with the field (e.g. it lost focus).
func (c *Controller) Touch() {
	if c.onTouched != nil {
		c.onTouched()
	}
}
