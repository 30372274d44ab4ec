package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/avermeer/cadence/internal/repository"
	"github.com/avermeer/cadence/internal/service"
	"github.com/avermeer/cadence/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp wires a full App backed by an in-memory DB for CLI integration tests.
func testApp(t *testing.T) *App {
	t.Helper()
	db := testutil.NewTestDB(t)

	conceptRepo := repository.NewSQLiteConceptRepo(db)
	marketRepo := repository.NewSQLiteMarketRepo(db)
	tribeRepo := repository.NewSQLiteTribeRepo(db)
	placementRepo := repository.NewSQLitePlacementRepo(db)
	rulesRepo := repository.NewSQLiteRulesRepo(db)
	uow := testutil.NewTestUoW(db)

	scores := service.NewScoreService(conceptRepo, marketRepo, placementRepo, rulesRepo)
	imports := service.NewImportService(conceptRepo, marketRepo, tribeRepo, placementRepo, rulesRepo, uow)

	return &App{
		Concepts:  service.NewConceptService(conceptRepo),
		Markets:   service.NewMarketService(marketRepo),
		Tribes:    service.NewTribeService(tribeRepo),
		Plans:     service.NewPlanService(placementRepo, marketRepo),
		Rules:     service.NewRulesService(rulesRepo),
		Scores:    scores,
		Summaries: service.NewSummaryService(scores),
		Imports:   imports,
		Seeder:    service.NewSeedService(marketRepo, imports),
	}
}

// executeCmd runs a cobra command and captures its combined output.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	root.SilenceUsage = true
	err := root.Execute()
	return buf.String(), err
}

func TestConceptAddAndList(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "concept", "add", "Summer Joy", "--role", "hero", "--tag", "summer")
	require.NoError(t, err)
	assert.Contains(t, out, `Created hero concept "Summer Joy"`)

	out, err = executeCmd(t, app, "concept", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Summer Joy")
	assert.Contains(t, out, "hero")
	assert.Contains(t, out, "summer")
}

func TestConceptAdd_RejectsBadRole(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "concept", "add", "Oddball", "--role", "villain")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "role")
}

func TestMarketAddListRemove(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "market", "add", "Germany", "--region", "de")
	require.NoError(t, err)
	assert.Contains(t, out, "Created market Germany (DE)")

	out, err = executeCmd(t, app, "market", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Germany")

	_, err = executeCmd(t, app, "market", "remove", "germany")
	require.NoError(t, err)

	out, err = executeCmd(t, app, "market", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No markets found.")
}

func TestPlanSetShowClear(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()

	hero := testutil.NewTestConcept("Joy", testutil.WithRole("hero"))
	require.NoError(t, app.Concepts.Create(ctx, hero))
	market := testutil.NewTestMarket("Germany", testutil.WithRegion("DE"))
	require.NoError(t, app.Markets.Create(ctx, market))

	out, err := executeCmd(t, app, "plan", "set", "Germany", "mar",
		"--concept", "Joy", "--budget", "12500", "--channel", "social")
	require.NoError(t, err)
	assert.Contains(t, out, "Updated Germany (DE) March")

	out, err = executeCmd(t, app, "plan", "show", "Germany")
	require.NoError(t, err)
	assert.Contains(t, out, "Joy")
	assert.Contains(t, out, "12,500.00")

	_, err = executeCmd(t, app, "plan", "clear", "Germany", "2")
	require.NoError(t, err)

	p, err := app.Plans.GetPlan(ctx, market.ID)
	require.NoError(t, err)
	assert.Empty(t, p)
}

func TestPlanSet_PreservesUnsetFlags(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()

	hero := testutil.NewTestConcept("Joy", testutil.WithRole("hero"))
	require.NoError(t, app.Concepts.Create(ctx, hero))
	market := testutil.NewTestMarket("Germany")
	require.NoError(t, app.Markets.Create(ctx, market))

	_, err := executeCmd(t, app, "plan", "set", "Germany", "0", "--concept", "Joy", "--budget", "900")
	require.NoError(t, err)
	_, err = executeCmd(t, app, "plan", "set", "Germany", "0", "--notes", "kickoff")
	require.NoError(t, err)

	p, err := app.Plans.GetPlacement(ctx, market.ID, 0)
	require.NoError(t, err)
	require.NotNil(t, p.ConceptID)
	assert.Equal(t, hero.ID, *p.ConceptID)
	require.NotNil(t, p.Budget)
	assert.Equal(t, 900.0, *p.Budget)
	assert.Equal(t, "kickoff", p.Notes)
}

func TestPlanCheckAsset(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()

	market := testutil.NewTestMarket("Germany")
	require.NoError(t, app.Markets.Create(ctx, market))
	_, err := executeCmd(t, app, "plan", "set", "Germany", "jan", "--asset", "key-visual")
	require.NoError(t, err)

	_, err = executeCmd(t, app, "plan", "check", "Germany", "jan", "key-visual")
	require.NoError(t, err)

	p, err := app.Plans.GetPlacement(ctx, market.ID, 0)
	require.NoError(t, err)
	assert.True(t, p.Assets["key-visual"])
}

func TestRulesShowAndSet(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "rules", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Max hero concepts/market")
	assert.Contains(t, out, "4")

	out, err = executeCmd(t, app, "rules", "set", "--max-heroes", "2", "--min-months", "6")
	require.NoError(t, err)
	assert.Contains(t, out, "2")
	assert.Contains(t, out, "6")

	_, err = executeCmd(t, app, "rules", "set", "--min-months", "13")
	require.Error(t, err)
}

func TestScoreCommand_SeededState(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "seed")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "score")
	require.NoError(t, err)
	assert.Contains(t, out, "Overall cohesion")
	assert.Contains(t, out, "/100")
}

func TestScoreCommand_JSON(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "seed")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "score", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"overall"`)
	assert.Contains(t, out, `"months_planned"`)
}

func TestSummaryCommand(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "summary")
	require.NoError(t, err)
	assert.Contains(t, out, "No markets planned yet.")

	_, err = executeCmd(t, app, "seed")
	require.NoError(t, err)

	out, err = executeCmd(t, app, "summary")
	require.NoError(t, err)
	assert.Contains(t, out, "Overall cohesion")
	assert.Contains(t, out, "Thresholds")
}

func TestExportImportCommands(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "seed")
	require.NoError(t, err)

	path := t.TempDir() + "/state.json"
	out, err := executeCmd(t, app, "export", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Exported planning state")

	fresh := testApp(t)
	out, err = executeCmd(t, fresh, "import", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported")
}

func TestBoardCommand_RefusesNonInteractive(t *testing.T) {
	app := testApp(t)
	app.IsInteractive = func() bool { return false }

	_, err := executeCmd(t, app, "board")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "interactive terminal")
}
