package cli

import (
	"context"
	"fmt"

	"github.com/avermeer/cadence/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newSummaryCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show the executive campaign summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.Summaries.BuildSummary(context.Background())
			if err != nil {
				return err
			}
			if len(s.Markets) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No markets planned yet. Try `cadence seed` or `cadence market add`.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSummary(s))
			return nil
		},
	}
}
