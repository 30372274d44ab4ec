package cli

import (
	"context"
	"fmt"

	"github.com/avermeer/cadence/internal/cohesion"
	"github.com/avermeer/cadence/internal/domain"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newBoardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "board",
		Short: "Browse the campaign year grid interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("board needs an interactive terminal")
			}
			p := tea.NewProgram(newBoardModel(app), tea.WithAltScreen())
			_, err := p.Run()
			return err
		},
	}
}

type boardKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Assign key.Binding
	Clear  key.Binding
	Reload key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func defaultBoardKeyMap() boardKeyMap {
	return boardKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "previous market")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next market")),
		Left:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous month")),
		Right:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next month")),
		Assign: key.NewBinding(key.WithKeys("a", "enter"), key.WithHelp("a/enter", "cycle concept")),
		Clear:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear slot")),
		Reload: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle help")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k boardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Assign, k.Clear, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k boardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Assign, k.Clear, k.Reload, k.Quit},
	}
}

// boardStateMsg carries a fresh planning snapshot and its score into the model.
type boardStateMsg struct {
	state  *cohesion.State
	result cohesion.Result
}

type boardErrMsg struct{ err error }

func loadBoardState(app *App) tea.Cmd {
	return func() tea.Msg {
		state, err := app.Scores.Snapshot(context.Background())
		if err != nil {
			return boardErrMsg{err: err}
		}
		return boardStateMsg{state: state, result: cohesion.Score(*state)}
	}
}

type boardModel struct {
	app  *App
	keys boardKeyMap
	help help.Model

	state  *cohesion.State
	result cohesion.Result

	row, col int // cursor: market index, month index

	width, height int
	showHelp      bool
	err           error
	quitting      bool
}

func newBoardModel(app *App) boardModel {
	return boardModel{app: app, keys: defaultBoardKeyMap(), help: help.New()}
}

func (m boardModel) Init() tea.Cmd {
	return loadBoardState(m.app)
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case boardStateMsg:
		m.state = msg.state
		m.result = msg.result
		m.err = nil
		m.clampCursor()
		return m, nil

	case boardErrMsg:
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m boardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return m, nil

	case key.Matches(msg, m.keys.Reload):
		return m, loadBoardState(m.app)

	case key.Matches(msg, m.keys.Up):
		if m.row > 0 {
			m.row--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.state != nil && m.row < len(m.state.Markets)-1 {
			m.row++
		}
		return m, nil

	case key.Matches(msg, m.keys.Left):
		if m.col > 0 {
			m.col--
		}
		return m, nil

	case key.Matches(msg, m.keys.Right):
		if m.col < domain.MonthsPerYear-1 {
			m.col++
		}
		return m, nil

	case key.Matches(msg, m.keys.Assign):
		return m, m.cycleConcept()

	case key.Matches(msg, m.keys.Clear):
		return m, m.clearSlot()
	}

	return m, nil
}

func (m *boardModel) clampCursor() {
	if m.state == nil || len(m.state.Markets) == 0 {
		m.row = 0
		return
	}
	if m.row >= len(m.state.Markets) {
		m.row = len(m.state.Markets) - 1
	}
}

func (m boardModel) selectedMarket() *domain.Market {
	if m.state == nil || m.row >= len(m.state.Markets) {
		return nil
	}
	return &m.state.Markets[m.row]
}

func (m boardModel) selectedPlacement() (domain.Placement, bool) {
	mk := m.selectedMarket()
	if mk == nil {
		return domain.Placement{}, false
	}
	p, ok := m.state.Plans[mk.ID][m.col]
	return p, ok
}

// cycleConcept advances the selected slot through the catalog: empty, then
// each concept in list order, then back to empty. The write goes through the
// plan service and the full state is reloaded so the score stays honest.
func (m boardModel) cycleConcept() tea.Cmd {
	mk := m.selectedMarket()
	if mk == nil || len(m.state.Concepts) == 0 {
		return nil
	}

	next := 0
	if p, ok := m.selectedPlacement(); ok && p.Planned() {
		next = -1
		for i := range m.state.Concepts {
			if m.state.Concepts[i].ID == *p.ConceptID {
				next = i + 1
				break
			}
		}
		if next == -1 {
			// Dangling reference: restart the cycle.
			next = 0
		}
	}

	app, marketID, month := m.app, mk.ID, m.col
	if next >= len(m.state.Concepts) {
		return func() tea.Msg {
			if err := app.Plans.ClearPlacement(context.Background(), marketID, month); err != nil {
				return boardErrMsg{err: err}
			}
			return loadBoardState(app)()
		}
	}

	conceptID := m.state.Concepts[next].ID
	return func() tea.Msg {
		ctx := context.Background()
		p, err := app.Plans.GetPlacement(ctx, marketID, month)
		if err != nil {
			p = &domain.Placement{MarketID: marketID, Month: month}
		}
		p.ConceptID = &conceptID
		if err := app.Plans.SetPlacement(ctx, p); err != nil {
			return boardErrMsg{err: err}
		}
		return loadBoardState(app)()
	}
}

func (m boardModel) clearSlot() tea.Cmd {
	mk := m.selectedMarket()
	if mk == nil {
		return nil
	}
	app, marketID, month := m.app, mk.ID, m.col
	return func() tea.Msg {
		if err := app.Plans.ClearPlacement(context.Background(), marketID, month); err != nil {
			return boardErrMsg{err: err}
		}
		return loadBoardState(app)()
	}
}
