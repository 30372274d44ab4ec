package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newSeedCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Populate an empty database with the demo campaign",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Seeder.Seed(context.Background()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Seeded demo campaign. Try `cadence score` or `cadence board`.")
			return nil
		},
	}
}

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Replace all planning state from a JSON document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Imports.ImportState(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(),
				"Imported %d concepts, %d markets, %d tribes, %d placements\n",
				result.ConceptCount, result.MarketCount, result.TribeCount, result.PlacementCount)
			return nil
		},
	}
}

func newExportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "export FILE",
		Short: "Write all planning state to a JSON document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Imports.ExportState(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported planning state to %s\n", args[0])
			return nil
		},
	}
}
