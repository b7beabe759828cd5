package tui

import (
	"fmt"
	"strings"

	"datepick/internal/calendar"
	"datepick/internal/docs"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

type cellState struct {
	cursor   bool
	selected bool
	disabled bool
	today    bool
}

func (m Model) View() string {
	if m.showHelp {
		body, _ := docs.Get("keys")
		return RenderMarkdown(body, m.width) + "\n\n" + styleMuted().Render("press any key")
	}
	var b strings.Builder
	b.WriteString(styleInput().Render(m.input.View()))
	b.WriteString("\n")

	if m.ctrl.Opened() {
		b.WriteString("\n")
		if m.ctrl.YearPickerOpen() {
			b.WriteString(styleTitle().Render(m.ctrl.Title()))
			b.WriteString("\n")
			b.WriteString(m.years.View())
		} else {
			b.WriteString(m.renderMonth())
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.notice != "" {
		b.WriteString(styleError().Render(m.notice))
		b.WriteString("\n")
	}
	help := m.keys.helpLine(m.ctrl.Opened(), m.ctrl.YearPickerOpen())
	b.WriteString(styleMuted().Render(xansi.Truncate(help, max(m.width-1, 10), "…")))
	return b.String()
}

// renderMonth draws the title, weekday header and the weeks of the grid.
func (m Model) renderMonth() string {
	const colW = 3
	title := lipgloss.PlaceHorizontal(7*colW, lipgloss.Center, "‹ "+m.ctrl.Title()+" ›")

	var head strings.Builder
	for _, n := range m.ctrl.DayNames() {
		head.WriteString(fmt.Sprintf("%*s", colW, xansi.Truncate(n, colW-1, "")))
	}

	days := m.ctrl.Days()
	lines := []string{styleTitle().Render(title), styleMuted().Render(head.String())}
	i := 0
	for _, week := range calendar.Weeks(days) {
		var row strings.Builder
		for _, c := range week {
			if c.IsPadding() {
				row.WriteString(strings.Repeat(" ", colW))
				i++
				continue
			}
			st := styleDay(cellState{
				cursor:   i == m.cursor,
				selected: c.Selected,
				disabled: !c.Enabled,
				today:    c.Today,
			})
			row.WriteString(" " + st.Render(fmt.Sprintf("%2d", c.Day)))
			i++
		}
		lines = append(lines, row.String())
	}
	return strings.Join(lines, "\n")
}
