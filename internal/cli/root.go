package cli

import (
	"fmt"
	"os"
	"strings"

	"datepick/internal/config"
	"datepick/internal/format"
	"datepick/internal/picker"
	"datepick/internal/tui"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type App struct {
	PrettyJSON bool
	Format     string

	// Picker flags. They override the config file only when set explicitly.
	Locale    string
	Pattern   string
	Sunday    bool
	AutoApply bool
	Legacy    bool
	Static    bool
	Min       dateFlag
	Max       dateFlag
	Initial   dateFlag
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "datepick",
		Short:        "Terminal date picker with a masked DD/MM/YYYY field",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Pick a date interactively and print it
  datepick --locale en-US --pattern "D MMMM YYYY"

  # Print a month grid
  datepick grid --month 2024-12 --sunday

  # See what the field shows while typing
  datepick mask --keys 13052024
`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive picker.
			return runPicker(cmd, app)
		},
	}

	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")
	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("DATEPICK_FORMAT", "json"), "Output format (json|edn)")
	cmd.PersistentFlags().StringVar(&app.Locale, "locale", picker.DefaultLocale, "Locale for month and weekday names (e.g. pt-BR, en-US)")
	cmd.PersistentFlags().StringVar(&app.Pattern, "pattern", picker.DefaultFormat, "Output pattern (YYYY, MM, DD, MMMM, Do, dddd, [literal], ...)")
	cmd.PersistentFlags().BoolVar(&app.Sunday, "sunday", false, "Start weeks on Sunday")
	cmd.PersistentFlags().BoolVar(&app.AutoApply, "auto-apply", false, "Close the calendar after a day is picked")
	cmd.PersistentFlags().BoolVar(&app.Legacy, "legacy", false, "Legacy behavior: picking a day always closes and commits immediately")
	cmd.PersistentFlags().BoolVar(&app.Static, "static", false, "Keep the calendar open")
	cmd.PersistentFlags().Var(&app.Min, "min", "Earliest selectable date (YYYY-MM-DD)")
	cmd.PersistentFlags().Var(&app.Max, "max", "Latest selectable date (YYYY-MM-DD)")
	cmd.PersistentFlags().Var(&app.Initial, "initial", "Initially bound date (YYYY-MM-DD)")

	cmd.AddCommand(newGridCmd(app))
	cmd.AddCommand(newMaskCmd(app))
	cmd.AddCommand(newFormatCmd(app))
	cmd.AddCommand(newParseCmd(app))
	cmd.AddCommand(newConfigCmd(app))
	cmd.AddCommand(newDocsCmd(app))

	return cmd
}

func runPicker(cmd *cobra.Command, app *App) error {
	cfg, err := config.Load()
	if err != nil {
		return writeErr(cmd, err)
	}
	o, err := app.options(cmd, cfg)
	if err != nil {
		return writeErr(cmd, err)
	}
	ctrl, err := picker.New(o)
	if err != nil {
		return writeErr(cmd, err)
	}
	theme := ""
	if cfg.TUI != nil {
		theme = cfg.TUI.Theme
	}
	v, err := tui.Run(ctrl, theme)
	if err != nil {
		return err
	}
	return writeOut(cmd, app, map[string]any{"data": v})
}

// options merges config defaults with the flags given on this invocation.
func (app *App) options(cmd *cobra.Command, cfg *config.Config) (picker.Options, error) {
	o, err := cfg.Options()
	if err != nil {
		return o, err
	}
	cmd.Flags().Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "locale":
			o.Locale = app.Locale
		case "pattern":
			o.Format = app.Pattern
		case "sunday":
			o.FirstWeekdaySunday = app.Sunday
		case "auto-apply":
			o.AutoApply = app.AutoApply
		case "legacy":
			o.LegacyMask = app.Legacy
		case "static":
			o.Static = app.Static
		case "min":
			o.MinDate = app.Min.timePtr()
		case "max":
			o.MaxDate = app.Max.timePtr()
		case "initial":
			o.InitialDate = app.Initial.timePtr()
		}
	})
	o = picker.NewOptions(o)
	return o, o.Validate()
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.Format, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
