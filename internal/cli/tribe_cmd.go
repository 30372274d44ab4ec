package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/avermeer/cadence/internal/cli/formatter"
	"github.com/avermeer/cadence/internal/domain"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newTribeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tribe",
		Short: "Manage audience tribes",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "add NAME",
			Short: "Create a new tribe",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				now := time.Now().UTC()
				tr := &domain.Tribe{
					ID:        uuid.New().String(),
					Name:      args[0],
					CreatedAt: now,
					UpdatedAt: now,
				}
				if err := app.Tribes.Create(context.Background(), tr); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Created tribe %q\n", tr.Name)
				return nil
			},
		},
		&cobra.Command{
			Use:   "list",
			Short: "List tribes",
			RunE: func(cmd *cobra.Command, args []string) error {
				tribes, err := app.Tribes.List(context.Background())
				if err != nil {
					return err
				}
				if len(tribes) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No tribes found.")
					return nil
				}
				rows := make([][]string, 0, len(tribes))
				for _, tr := range tribes {
					rows = append(rows, []string{tr.Name, formatter.Dim(formatter.ShortID(tr.ID))})
				}
				fmt.Fprint(cmd.OutOrStdout(), formatter.RenderTable([]string{"NAME", "ID"}, rows))
				return nil
			},
		},
		&cobra.Command{
			Use:   "remove TRIBE",
			Short: "Delete a tribe",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx := context.Background()
				tr, err := resolveTribe(ctx, app, args[0])
				if err != nil {
					return err
				}
				if err := app.Tribes.Delete(ctx, tr.ID); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed tribe %q\n", tr.Name)
				return nil
			},
		},
	)

	return cmd
}
