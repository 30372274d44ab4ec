package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/avermeer/cadence/internal/cli"
	"github.com/avermeer/cadence/internal/db"
	"github.com/avermeer/cadence/internal/repository"
	"github.com/avermeer/cadence/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.cadence/cadence.db
	dbPath := os.Getenv("CADENCE_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".cadence", "cadence.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	conceptRepo := repository.NewSQLiteConceptRepo(database)
	marketRepo := repository.NewSQLiteMarketRepo(database)
	tribeRepo := repository.NewSQLiteTribeRepo(database)
	placementRepo := repository.NewSQLitePlacementRepo(database)
	rulesRepo := repository.NewSQLiteRulesRepo(database)

	// Unit of work for the transactional state import.
	uow := db.NewSQLiteUnitOfWork(database)

	scoreSvc := service.NewScoreService(conceptRepo, marketRepo, placementRepo, rulesRepo)
	importSvc := service.NewImportService(conceptRepo, marketRepo, tribeRepo, placementRepo, rulesRepo, uow)

	app := &cli.App{
		Concepts:  service.NewConceptService(conceptRepo),
		Markets:   service.NewMarketService(marketRepo),
		Tribes:    service.NewTribeService(tribeRepo),
		Plans:     service.NewPlanService(placementRepo, marketRepo),
		Rules:     service.NewRulesService(rulesRepo),
		Scores:    scoreSvc,
		Summaries: service.NewSummaryService(scoreSvc),
		Imports:   importSvc,
		Seeder:    service.NewSeedService(marketRepo, importSvc),
	}

	// Detect interactive terminal for the board and interactive forms.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
