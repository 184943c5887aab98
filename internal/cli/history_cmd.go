package cli

import (
	"fmt"

	"github.com/alexanderramin/telos/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newHistoryCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded analyses, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Logs == nil {
				return fmt.Errorf("history store is not configured")
			}
			logs, err := app.Logs.ListRecent(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("loading history: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatHistory(logs))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "maximum entries to show")
	return cmd
}
