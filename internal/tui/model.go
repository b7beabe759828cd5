package tui

import (
	"errors"

	"datepick/internal/calendar"
	"datepick/internal/picker"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrCanceled is returned by Run when the user quits without accepting.
var ErrCanceled = errors.New("canceled")

// settleMsg runs the controller's deferred updates on the next loop turn.
type settleMsg struct{}

func settle() tea.Msg { return settleMsg{} }

// Model hosts a picker.Controller in a Bubble Tea program: a masked input line
// with a calendar (or year list) underneath.
type Model struct {
	ctrl  *picker.Controller
	keys  keyMap
	input textinput.Model
	years list.Model

	// cursor indexes ctrl.Days(); it always points at a real day.
	cursor int
	width  int

	notice   string
	showHelp bool
	accepted bool
	canceled bool
}

func NewModel(ctrl *picker.Controller) Model {
	in := textinput.New()
	in.Placeholder = "DD/MM/YYYY"
	in.Prompt = ""
	in.Width = 24
	in.SetValue(ctrl.View())
	in.CursorEnd()
	in.Focus()

	m := Model{
		ctrl:  ctrl,
		keys:  defaultKeyMap(),
		input: in,
		years: newYearList(ctrl.Years()),
		width: 80,
	}
	m.focusDay(m.anchorDay())
	return m
}

func (m Model) Init() tea.Cmd { return textinput.Blink }

// Value is the bound value once the program has exited.
func (m Model) Value() *picker.Value { return m.ctrl.Value() }

func (m Model) Accepted() bool { return m.accepted }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case settleMsg:
		m.ctrl.Flush()
		m.sync()
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.canceled = true
			return m, tea.Quit
		}
		if m.showHelp {
			// Any key dismisses the help page.
			m.showHelp = false
			return m, nil
		}
		if key.Matches(msg, m.keys.Help) {
			m.showHelp = true
			return m, nil
		}
		if m.ctrl.Opened() && m.ctrl.YearPickerOpen() {
			return m.updateYears(msg)
		}
		return m.updateKey(msg)
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateYears(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.ctrl.CloseYearPicker()
		m.ctrl.Close()
		return m, nil
	case key.Matches(msg, m.keys.Select):
		if it, ok := m.years.SelectedItem().(yearItem); ok {
			m.ctrl.SelectYear(int(it))
		}
		return m, m.settleCmd()
	}
	var cmd tea.Cmd
	m.years, cmd = m.years.Update(msg)
	return m, cmd
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	opened := m.ctrl.Opened()
	m.notice = ""
	switch {
	case isFieldKey(msg):
		return m.updateInput(msg)
	case key.Matches(msg, m.keys.Back):
		if opened && !m.ctrl.Options().Static {
			m.ctrl.Close()
			return m, nil
		}
		m.canceled = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Done):
		m.accepted = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Toggle):
		m.ctrl.Toggle()
		m.focusDay(m.anchorDay())
	case key.Matches(msg, m.keys.Today):
		m.ctrl.Today()
	case key.Matches(msg, m.keys.Clear):
		m.ctrl.Clear()
	case !opened && key.Matches(msg, m.keys.Accept):
		m.accepted = true
		return m, tea.Quit
	case !opened && key.Matches(msg, m.keys.Down):
		m.ctrl.Open()
		m.focusDay(m.anchorDay())
	case !opened:
		return m, nil
	case key.Matches(msg, m.keys.Select):
		days := m.ctrl.Days()
		if m.cursor >= 0 && m.cursor < len(days) {
			if !m.ctrl.SelectDay(days[m.cursor]) {
				m.notice = "date outside the allowed range"
			}
		}
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-7)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(7)
	case key.Matches(msg, m.keys.PrevMonth):
		m.ctrl.PrevMonth()
		m.focusDay(m.cursorDay())
	case key.Matches(msg, m.keys.NextMonth):
		m.ctrl.NextMonth()
		m.focusDay(m.cursorDay())
	case key.Matches(msg, m.keys.PrevYear):
		m.ctrl.PrevYear()
		m.focusDay(m.cursorDay())
	case key.Matches(msg, m.keys.NextYear):
		m.ctrl.NextYear()
		m.focusDay(m.cursorDay())
	case key.Matches(msg, m.keys.Years):
		m.ctrl.OpenYearPicker()
	default:
		return m, nil
	}
	m.syncInput()
	return m, m.settleCmd()
}

// isFieldKey reports keys that edit the text field: digits, separators and deletion.
func isFieldKey(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyDelete:
		return true
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			if (r < '0' || r > '9') && r != '/' {
				return false
			}
		}
		return len(msg.Runes) > 0
	}
	return false
}

// updateInput feeds the field through the controller: growth is masked,
// deletions are kept as typed.
func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	after := m.input.Value()
	if after == before {
		return m, cmd
	}
	if len(after) > len(before) {
		if res := m.ctrl.TypeText(after); res.Invalid {
			m.notice = "invalid date"
		}
	} else {
		m.ctrl.EditText(after)
	}
	m.syncInput()
	m.focusDay(m.anchorDay())
	return m, tea.Batch(cmd, m.settleCmd())
}

func (m Model) settleCmd() tea.Cmd {
	if m.ctrl.Pending() == 0 {
		return nil
	}
	return settle
}

// sync pulls controller state into the widgets after deferred updates ran.
func (m *Model) sync() {
	m.syncInput()
	if m.ctrl.YearPickerOpen() {
		selectYear(&m.years, m.ctrl.Current().Year())
	}
	m.focusDay(m.anchorDay())
}

func (m *Model) syncInput() {
	if v := m.ctrl.View(); v != m.input.Value() {
		m.input.SetValue(v)
		m.input.CursorEnd()
	}
}

// anchorDay is the day the cursor should land on in the displayed month:
// the bound value when it is shown, otherwise the current date's day.
func (m Model) anchorDay() int {
	cur := m.ctrl.Current()
	if v := m.ctrl.Value(); v != nil && v.Date.SameMonth(cur) {
		return v.Date.Day()
	}
	return cur.Day()
}

func (m Model) cursorDay() int {
	days := m.ctrl.Days()
	if m.cursor >= 0 && m.cursor < len(days) && !days[m.cursor].IsPadding() {
		return days[m.cursor].Day
	}
	return 1
}

// focusDay puts the cursor on day, clamped to the displayed month.
func (m *Model) focusDay(day int) {
	days := m.ctrl.Days()
	last := days[len(days)-1].Day
	day = max(1, min(day, last))
	m.cursor = calendar.IndexOfDay(days, day)
}

// moveCursor shifts by delta days, flipping the month at either edge.
func (m *Model) moveCursor(delta int) {
	days := m.ctrl.Days()
	day := m.cursorDay() + delta
	last := days[len(days)-1].Day
	switch {
	case day < 1:
		m.ctrl.PrevMonth()
		days = m.ctrl.Days()
		day += days[len(days)-1].Day
	case day > last:
		m.ctrl.NextMonth()
		day -= last
	}
	m.focusDay(day)
}
