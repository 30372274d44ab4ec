package cli

import (
	"github.com/avermeer/cadence/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Concepts  service.ConceptService
	Markets   service.MarketService
	Tribes    service.TribeService
	Plans     service.PlanService
	Rules     service.RulesService
	Scores    service.ScoreService
	Summaries service.SummaryService
	Imports   service.ImportService
	Seeder    service.SeedService

	// IsInteractive reports whether stdin is an interactive terminal.
	// Interactive-only surfaces (the board, plan edit forms) refuse to
	// start without it.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "cadence" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "cadence",
		Short: "Campaign concept planner and cohesion scorer",
	}

	root.AddCommand(
		newConceptCmd(app),
		newMarketCmd(app),
		newTribeCmd(app),
		newPlanCmd(app),
		newRulesCmd(app),
		newScoreCmd(app),
		newSummaryCmd(app),
		newSeedCmd(app),
		newImportCmd(app),
		newExportCmd(app),
		newBoardCmd(app),
	)

	return root
}
