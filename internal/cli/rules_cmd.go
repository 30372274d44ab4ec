package cli

import (
	"context"
	"fmt"

	"github.com/avermeer/cadence/internal/cli/formatter"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// thresholdFlags binds the four cohesion threshold flags onto a flag set.
func thresholdFlags(fs *pflag.FlagSet, maxHeroes, minRepeats, minMonths, maxConcepts *int) {
	fs.IntVar(maxHeroes, "max-heroes", 0, "Max hero concepts per market")
	fs.IntVar(minRepeats, "min-repeats", 0, "Min repeats per hero concept")
	fs.IntVar(minMonths, "min-months", 0, "Min months planned per market")
	fs.IntVar(maxConcepts, "max-concepts", 0, "Max total concepts per market")
}

func newRulesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Show or change cohesion thresholds",
	}

	cmd.AddCommand(newRulesShowCmd(app), newRulesSetCmd(app))

	return cmd
}

func newRulesShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the active cohesion thresholds",
		RunE: func(cmd *cobra.Command, args []string) error {
			rules, err := app.Rules.Get(context.Background())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatRules(rules))
			return nil
		},
	}
}

func newRulesSetCmd(app *App) *cobra.Command {
	var maxHeroes, minRepeats, minMonths, maxConcepts int

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change cohesion thresholds",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			rules, err := app.Rules.Get(ctx)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("max-heroes") {
				rules.MaxHeroConceptsPerMarket = maxHeroes
			}
			if cmd.Flags().Changed("min-repeats") {
				rules.MinRepeatsPerHero = minRepeats
			}
			if cmd.Flags().Changed("min-months") {
				rules.MinMonthsPlanned = minMonths
			}
			if cmd.Flags().Changed("max-concepts") {
				rules.MaxTotalConceptsPerMarket = maxConcepts
			}

			if err := app.Rules.Update(ctx, rules); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatRules(rules))
			return nil
		},
	}

	thresholdFlags(cmd.Flags(), &maxHeroes, &minRepeats, &minMonths, &maxConcepts)

	return cmd
}
