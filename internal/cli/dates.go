package cli

import (
	"datepick/internal/config"
	"datepick/internal/dates"
	"datepick/internal/picker"

	"github.com/spf13/cobra"
)

func newFormatCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "format <YYYY-MM-DD>",
		Short: "Render a date with the output pattern and locale",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := loadOptions(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			d, err := dates.ParseISO(args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": picker.NewValue(d, o.Format, o.Locale)})
		},
	}
}

func newParseCmd(app *App) *cobra.Command {
	var strict bool
	cmd := &cobra.Command{
		Use:   "parse <text>",
		Short: "Parse text with the output pattern and locale",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := loadOptions(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			d, err := dates.Parse(args[0], o.Format, strict, o.Locale)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": picker.NewValue(d, o.Format, o.Locale)})
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "Require the exact pattern (literals and field widths)")
	return cmd
}

func loadOptions(cmd *cobra.Command, app *App) (picker.Options, error) {
	cfg, err := config.Load()
	if err != nil {
		return picker.Options{}, err
	}
	return app.options(cmd, cfg)
}
