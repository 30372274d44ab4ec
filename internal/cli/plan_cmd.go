package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/avermeer/cadence/internal/cli/formatter"
	"github.com/avermeer/cadence/internal/domain"
	"github.com/spf13/cobra"
)

func newPlanCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Manage monthly placements",
	}

	cmd.AddCommand(
		newPlanSetCmd(app),
		newPlanShowCmd(app),
		newPlanClearCmd(app),
		newPlanCheckCmd(app),
		newPlanEditCmd(app),
	)

	return cmd
}

func newPlanSetCmd(app *App) *cobra.Command {
	var conceptArg, notes string
	var channels, tribeArgs, assets []string
	var budget float64

	cmd := &cobra.Command{
		Use:   "set MARKET MONTH",
		Short: "Assign a concept to a market's month slot",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			m, err := resolveMarket(ctx, app, args[0])
			if err != nil {
				return err
			}
			month, err := parseMonth(args[1])
			if err != nil {
				return err
			}

			// Start from the existing slot so unset flags keep their values.
			p, err := app.Plans.GetPlacement(ctx, m.ID, month)
			if err != nil {
				p = &domain.Placement{MarketID: m.ID, Month: month}
			}

			if cmd.Flags().Changed("concept") {
				c, err := resolveConcept(ctx, app, conceptArg)
				if err != nil {
					return err
				}
				p.ConceptID = &c.ID
			}
			if cmd.Flags().Changed("notes") {
				p.Notes = notes
			}
			if cmd.Flags().Changed("channel") {
				p.Channels = channels
			}
			if cmd.Flags().Changed("budget") {
				p.Budget = &budget
			}
			if cmd.Flags().Changed("tribe") {
				ids := make([]string, 0, len(tribeArgs))
				for _, arg := range tribeArgs {
					tr, err := resolveTribe(ctx, app, arg)
					if err != nil {
						return err
					}
					ids = append(ids, tr.ID)
				}
				p.TribeIDs = ids
			}
			if cmd.Flags().Changed("asset") {
				if p.Assets == nil {
					p.Assets = make(map[string]bool)
				}
				for _, a := range assets {
					if _, exists := p.Assets[a]; !exists {
						p.Assets[a] = false
					}
				}
			}

			if err := app.Plans.SetPlacement(ctx, p); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s %s\n", m.DisplayName(), formatter.MonthName(month))
			return nil
		},
	}

	cmd.Flags().StringVar(&conceptArg, "concept", "", "Concept name or id to place")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-text notes for the slot")
	cmd.Flags().StringSliceVar(&channels, "channel", nil, "Channel label (repeatable)")
	cmd.Flags().Float64Var(&budget, "budget", 0, "Budget for the slot")
	cmd.Flags().StringSliceVar(&tribeArgs, "tribe", nil, "Tribe name or id (repeatable)")
	cmd.Flags().StringSliceVar(&assets, "asset", nil, "Checklist asset to add (repeatable)")

	return cmd
}

func newPlanShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show MARKET",
		Short: "Show a market's year plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			m, err := resolveMarket(ctx, app, args[0])
			if err != nil {
				return err
			}
			plan, err := app.Plans.GetPlan(ctx, m.ID)
			if err != nil {
				return err
			}

			concepts, err := app.Concepts.List(ctx)
			if err != nil {
				return err
			}
			byID := make(map[string]*domain.Concept, len(concepts))
			for _, c := range concepts {
				byID[c.ID] = c
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatPlan(m, plan, byID))
			return nil
		},
	}
}

func newPlanClearCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "clear MARKET MONTH",
		Short: "Clear a market's month slot",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			m, err := resolveMarket(ctx, app, args[0])
			if err != nil {
				return err
			}
			month, err := parseMonth(args[1])
			if err != nil {
				return err
			}

			if err := app.Plans.ClearPlacement(ctx, m.ID, month); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Cleared %s %s\n", m.DisplayName(), formatter.MonthName(month))
			return nil
		},
	}
}

func newPlanCheckCmd(app *App) *cobra.Command {
	var undone bool

	cmd := &cobra.Command{
		Use:   "check MARKET MONTH ASSET",
		Short: "Mark a checklist asset done (or not done with --undo)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			m, err := resolveMarket(ctx, app, args[0])
			if err != nil {
				return err
			}
			month, err := parseMonth(args[1])
			if err != nil {
				return err
			}

			if err := app.Plans.CheckAsset(ctx, m.ID, month, args[2], !undone); err != nil {
				return err
			}

			state := "done"
			if undone {
				state = "not done"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Marked %q %s for %s %s\n",
				args[2], state, m.DisplayName(), formatter.MonthName(month))
			return nil
		},
	}

	cmd.Flags().BoolVar(&undone, "undo", false, "Mark the asset as not done")

	return cmd
}

// planSummaryLine is the one-line confirmation printed after an interactive edit.
func planSummaryLine(m *domain.Market, month int, p *domain.Placement, conceptName string) string {
	parts := []string{fmt.Sprintf("%s %s", m.DisplayName(), formatter.MonthName(month))}
	if conceptName != "" {
		parts = append(parts, conceptName)
	}
	if p.Budget != nil && *p.Budget > 0 {
		parts = append(parts, formatter.Money(*p.Budget))
	}
	if len(p.Channels) > 0 {
		parts = append(parts, strings.Join(p.Channels, ","))
	}
	return strings.Join(parts, " · ")
}
