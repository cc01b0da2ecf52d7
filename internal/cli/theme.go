package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"taskboard/internal/prefs"
	"taskboard/internal/theme"
)

func newThemeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:       "theme [light|dark]",
		Short:     "Print or set the board theme",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"light", "dark"},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.settings()
			if err != nil {
				return err
			}
			store, err := prefs.Open(cmd.Context(), cfg.PrefsFile)
			if err != nil {
				return err
			}
			defer store.Close()

			sw, err := theme.Load(cmd.Context(), store, nil)
			if err != nil {
				return err
			}

			mode := sw.Mode()
			if len(args) == 1 {
				switch args[0] {
				case "light":
					mode = theme.Light
				case "dark":
					mode = theme.Dark
				default:
					return fmt.Errorf("unknown theme %q (want light or dark)", args[0])
				}
				if _, err := sw.Set(cmd.Context(), mode); err != nil {
					return fmt.Errorf("saving theme: %w", err)
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), mode)
			return nil
		},
	}
}
