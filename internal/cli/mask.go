package cli

import (
	"strings"

	"datepick/internal/dates"
	"datepick/internal/mask"

	"github.com/spf13/cobra"
)

type maskOut struct {
	Input     string      `json:"input"`
	View      string      `json:"view"`
	Committed *dates.Date `json:"committed,omitempty"`
	Invalid   bool        `json:"invalid"`
	Clear     bool        `json:"clear"`
}

func newMaskCmd(app *App) *cobra.Command {
	var keys bool
	var from string
	cmd := &cobra.Command{
		Use:   "mask <input>...",
		Short: "Run field contents through the DD/MM/YYYY mask",
		Long: strings.TrimSpace(`
Each argument is treated as one buffer state and normalized once.
With --keys each argument is typed one character at a time instead, starting
from --from; a literal \b deletes the last character.`),
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := make([]maskOut, 0, len(args))
			for _, in := range args {
				var res mask.Result
				if keys || from != "" {
					res = mask.Replay(from, strings.ReplaceAll(in, `\b`, "\b"))
				} else {
					res = mask.Normalize(in)
				}
				out = append(out, maskOut{
					Input:     in,
					View:      res.View,
					Committed: res.Committed,
					Invalid:   res.Invalid,
					Clear:     res.Clear,
				})
			}
			return writeOut(cmd, app, map[string]any{"data": out})
		},
	}
	cmd.Flags().BoolVar(&keys, "keys", false, "Replay each argument as keystrokes")
	cmd.Flags().StringVar(&from, "from", "", "Field contents before the keystrokes (implies --keys)")
	return cmd
}
