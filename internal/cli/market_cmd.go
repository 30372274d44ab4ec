package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/avermeer/cadence/internal/cli/formatter"
	"github.com/avermeer/cadence/internal/domain"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newMarketCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "market",
		Short: "Manage markets",
	}

	cmd.AddCommand(
		newMarketAddCmd(app),
		newMarketListCmd(app),
		newMarketRemoveCmd(app),
	)

	return cmd
}

func newMarketAddCmd(app *App) *cobra.Command {
	var region string

	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Create a new market",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now().UTC()
			m := &domain.Market{
				ID:        uuid.New().String(),
				Name:      args[0],
				Region:    strings.ToUpper(region),
				CreatedAt: now,
				UpdatedAt: now,
			}

			if err := app.Markets.Create(context.Background(), m); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created market %s\n", m.DisplayName())
			return nil
		},
	}

	cmd.Flags().StringVar(&region, "region", "", "Region code, 2-5 letters (e.g. DE, EMEA)")

	return cmd
}

func newMarketListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List markets",
		RunE: func(cmd *cobra.Command, args []string) error {
			markets, err := app.Markets.List(context.Background())
			if err != nil {
				return err
			}

			if len(markets) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No markets found.")
				return nil
			}

			headers := []string{"NAME", "REGION", "ID"}
			rows := make([][]string, 0, len(markets))
			for _, m := range markets {
				rows = append(rows, []string{
					formatter.Bold(m.Name),
					m.Region,
					formatter.Dim(formatter.ShortID(m.ID)),
				})
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderTable(headers, rows))
			return nil
		},
	}
}

func newMarketRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove MARKET",
		Short: "Delete a market and its placements",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			m, err := resolveMarket(ctx, app, args[0])
			if err != nil {
				return err
			}

			if err := app.Markets.Delete(ctx, m.ID); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Removed market %s\n", m.DisplayName())
			return nil
		},
	}
}
