package tui

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

type yearItem int

func (y yearItem) FilterValue() string { return strconv.Itoa(int(y)) }
func (y yearItem) Title() string       { return strconv.Itoa(int(y)) }

// yearDelegate renders one year per line, highlighting the cursor row.
type yearDelegate struct{}

func (yearDelegate) Height() int                             { return 1 }
func (yearDelegate) Spacing() int                            { return 0 }
func (yearDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (yearDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	contentW := m.Width()
	if contentW < 4 {
		return
	}
	line := "  " + fmt.Sprint(item)
	st := lipgloss.NewStyle().Foreground(colorSurfaceFg)
	if index == m.Index() {
		line = "› " + fmt.Sprint(item)
		st = st.Foreground(colorSelectedFg).Background(colorSelectedBg).Bold(true)
	}
	if w := xansi.StringWidth(line); w < contentW {
		line += strings.Repeat(" ", contentW-w)
	} else if w > contentW {
		line = xansi.Cut(line, 0, contentW)
	}
	fmt.Fprint(w, st.Render(line))
}

func newYearList(years []int) list.Model {
	items := make([]list.Item, 0, len(years))
	for _, y := range years {
		items = append(items, yearItem(y))
	}
	l := list.New(items, yearDelegate{}, 20, 7)
	l.Title = "Year"
	// The picker draws its own heading and help line.
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(false)
	// The host owns quitting; ESC closes the calendar.
	l.KeyMap.Quit.SetEnabled(false)
	l.KeyMap.ForceQuit.SetEnabled(false)
	return l
}

// selectYear moves the list cursor to year if it is listed.
func selectYear(l *list.Model, year int) {
	for i, it := range l.Items() {
		if int(it.(yearItem)) == year {
			l.Select(i)
			return
		}
	}
}
