package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/doeshing/devzap/internal/app"
	"github.com/doeshing/devzap/internal/domain"
)

func newHistoryCommand(container *app.Container) *cobra.Command {
	var (
		limit  int
		search string
	)

	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Show past invocations",
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := container.HistoryStore.Records(limit, search)
			if err != nil {
				return err
			}
			renderHistory(cmd.OutOrStdout(), records)
			return nil
		},
	}
	historyCmd.Flags().IntVar(&limit, "limit", 20, "Maximum entries to show (0 = all)")
	historyCmd.Flags().StringVar(&search, "search", "", "Filter by command or source substring")

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all history entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := container.HistoryStore.Clear(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "History cleared.")
			return nil
		},
	}

	historyCmd.AddCommand(clearCmd)
	return historyCmd
}

func renderHistory(out io.Writer, records []domain.HistoryRecord) {
	if len(records) == 0 {
		fmt.Fprintln(out, "No history yet.")
		return
	}
	fmt.Fprintf(out, "TIME\tKIND\tSOURCE\tDECISION\tEXIT\tCOMMAND\n")
	for _, rec := range records {
		fmt.Fprintf(out, "%s\t%s\t%s\t%s\t%d\t%s\n",
			rec.Timestamp.Format(time.RFC3339),
			rec.Kind,
			rec.Source,
			rec.Decision,
			rec.ExitCode,
			rec.Command,
		)
	}
}
