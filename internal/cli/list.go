package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"taskboard/internal/backend/rest"
	"taskboard/internal/board"
)

func newListCmd(app *App) *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print tasks from the server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := board.ParseFilter(filter)
			if err != nil {
				return err
			}

			cfg, err := app.settings()
			if err != nil {
				return err
			}
			logger, closer, err := openLogger(cfg)
			if err != nil {
				return err
			}
			defer closer.Close()

			client, err := rest.New(cfg.APIURL, logger)
			if err != nil {
				return err
			}
			tasks, err := client.ListTasks(cmd.Context())
			if err != nil {
				logger.Error("error fetching tasks", "err", err)
				return err
			}

			out := cmd.OutOrStdout()
			for _, t := range board.Visible(tasks, f) {
				mark := "[ ]"
				if t.Completed {
					mark = "[x]"
				}
				fmt.Fprintf(out, "%s %s\n", mark, t.Title)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "all", "Which tasks to print (all|completed|pending)")
	return cmd
}
