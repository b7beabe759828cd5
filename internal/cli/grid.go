package cli

import (
	"fmt"
	"strings"
	"time"

	"datepick/internal/calendar"
	"datepick/internal/config"
	"datepick/internal/dates"
	"datepick/internal/picker"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

type gridOut struct {
	Month         string          `json:"month"`
	Title         string          `json:"title"`
	DayNames      []string        `json:"dayNames"`
	LeadingBlanks int             `json:"leadingBlanks"`
	Cells         []calendar.Cell `json:"cells"`
}

func newGridCmd(app *App) *cobra.Command {
	var month string
	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Print the calendar grid for a month",
		Long: strings.TrimSpace(`
Prints the month as text, or as data when --format is given explicitly.
The --initial date is marked as selected; --min/--max disable days outside
the range.`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return writeErr(cmd, err)
			}
			o, err := app.options(cmd, cfg)
			if err != nil {
				return writeErr(cmd, err)
			}
			out, err := buildGrid(o, month, time.Now)
			if err != nil {
				return writeErr(cmd, err)
			}
			if cmd.Flags().Changed("format") {
				return writeOut(cmd, app, map[string]any{"data": out})
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), renderGrid(out))
			return err
		},
	}
	cmd.Flags().StringVar(&month, "month", "", "Month to show (YYYY-MM; default: the initial date's month, else today)")
	return cmd
}

func buildGrid(o picker.Options, month string, now func() time.Time) (gridOut, error) {
	ref := dates.Today(now)
	var selected *dates.Date
	if o.InitialDate != nil {
		d := dates.FromTime(*o.InitialDate)
		ref, selected = d, &d
	}
	if strings.TrimSpace(month) != "" {
		t, err := time.Parse("2006-01", strings.TrimSpace(month))
		if err != nil {
			return gridOut{}, badMonthError{value: month}
		}
		ref = dates.FromTime(t)
	}
	var lo, hi *dates.Date
	if o.MinDate != nil {
		d := dates.FromTime(*o.MinDate)
		lo = &d
	}
	if o.MaxDate != nil {
		d := dates.FromTime(*o.MaxDate)
		hi = &d
	}
	cells := calendar.Build(ref, calendar.BuildOptions{
		FirstWeekdaySunday: o.FirstWeekdaySunday,
		Min:                lo,
		Max:                hi,
		Selected:           selected,
		Now:                now,
	})
	return gridOut{
		Month:         dates.Format(ref, "YYYY-MM", o.Locale),
		Title:         calendar.MonthTitle(ref, o.Locale),
		DayNames:      calendar.DayNames(o.Locale, o.FirstWeekdaySunday),
		LeadingBlanks: calendar.LeadingBlanks(cells),
		Cells:         cells,
	}, nil
}

// renderGrid draws the month as text. Selected days are [bracketed] and today
// is (parenthesized); disabled days are dimmed when color is available.
func renderGrid(g gridOut) string {
	const colW = 4
	muted := lipgloss.NewStyle().Faint(true)

	var head strings.Builder
	for _, n := range g.DayNames {
		r := []rune(n)
		if len(r) > 2 {
			r = r[:2]
		}
		head.WriteString(fmt.Sprintf(" %2s ", string(r)))
	}

	lines := []string{
		lipgloss.NewStyle().Width(7 * colW).Align(lipgloss.Center).Bold(true).Render(g.Title),
		head.String(),
	}
	for _, week := range calendar.Weeks(g.Cells) {
		var row strings.Builder
		for _, c := range week {
			if c.IsPadding() {
				row.WriteString(strings.Repeat(" ", colW))
				continue
			}
			l, r := " ", " "
			switch {
			case c.Selected:
				l, r = "[", "]"
			case c.Today:
				l, r = "(", ")"
			}
			txt := fmt.Sprintf("%s%2d%s", l, c.Day, r)
			if !c.Enabled {
				txt = muted.Render(txt)
			}
			row.WriteString(txt)
		}
		lines = append(lines, strings.TrimRight(row.String(), " "))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
