package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/avermeer/cadence/internal/cli/formatter"
	"github.com/avermeer/cadence/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

func newPlanEditCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "edit MARKET MONTH",
		Short: "Edit a month slot interactively",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("plan edit needs an interactive terminal; use `plan set` instead")
			}

			ctx := context.Background()
			m, err := resolveMarket(ctx, app, args[0])
			if err != nil {
				return err
			}
			month, err := parseMonth(args[1])
			if err != nil {
				return err
			}

			p, err := app.Plans.GetPlacement(ctx, m.ID, month)
			if err != nil {
				p = &domain.Placement{MarketID: m.ID, Month: month}
			}

			concepts, err := app.Concepts.List(ctx)
			if err != nil {
				return err
			}

			form, state := buildPlacementForm(m, month, p, concepts)
			if err := form.Run(); err != nil {
				return err
			}
			if !state.confirmed {
				fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
				return nil
			}
			if err := state.apply(p); err != nil {
				return err
			}

			if err := app.Plans.SetPlacement(ctx, p); err != nil {
				return err
			}

			conceptName := ""
			for _, c := range concepts {
				if p.ConceptID != nil && c.ID == *p.ConceptID {
					conceptName = c.Name
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s\n", planSummaryLine(m, month, p, conceptName))
			return nil
		},
	}
}

// placementFormState holds the string-valued form fields until apply()
// converts them onto the placement.
type placementFormState struct {
	conceptID string
	notes     string
	channels  []string
	budget    string
	confirmed bool
}

func (s *placementFormState) apply(p *domain.Placement) error {
	if s.conceptID == "" {
		p.ConceptID = nil
	} else {
		id := s.conceptID
		p.ConceptID = &id
	}
	p.Notes = s.notes
	p.Channels = s.channels

	if strings.TrimSpace(s.budget) == "" {
		p.Budget = nil
		return nil
	}
	amount, err := strconv.ParseFloat(strings.TrimSpace(s.budget), 64)
	if err != nil || amount < 0 {
		return fmt.Errorf("invalid budget %q", s.budget)
	}
	p.Budget = &amount
	return nil
}

func buildPlacementForm(m *domain.Market, month int, p *domain.Placement, concepts []*domain.Concept) (*huh.Form, *placementFormState) {
	state := &placementFormState{notes: p.Notes, channels: p.Channels}
	if p.ConceptID != nil {
		state.conceptID = *p.ConceptID
	}
	if p.Budget != nil {
		state.budget = strconv.FormatFloat(*p.Budget, 'f', -1, 64)
	}

	conceptOptions := []huh.Option[string]{huh.NewOption("(none)", "")}
	for _, c := range concepts {
		label := c.Name
		if c.IsHero() {
			label += " [hero]"
		}
		conceptOptions = append(conceptOptions, huh.NewOption(label, c.ID))
	}

	channelOptions := make([]huh.Option[string], 0, len(domain.DefaultChannels))
	for _, ch := range domain.DefaultChannels {
		channelOptions = append(channelOptions, huh.NewOption(ch, ch))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(fmt.Sprintf("Concept for %s %s", m.DisplayName(), formatter.MonthName(month))).
				Options(conceptOptions...).
				Value(&state.conceptID),
			huh.NewMultiSelect[string]().
				Title("Channels").
				Options(channelOptions...).
				Value(&state.channels),
			huh.NewInput().
				Title("Budget (blank for none)").
				Placeholder("12500").
				Value(&state.budget).
				Validate(validateOptionalAmount),
			huh.NewInput().
				Title("Notes").
				Value(&state.notes),
			huh.NewConfirm().
				Title("Save changes?").
				Affirmative("Save").
				Negative("Discard").
				Value(&state.confirmed),
		),
	).WithTheme(cadenceHuhTheme()).WithShowHelp(false)

	return form, state
}

func validateOptionalAmount(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	amount, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || amount < 0 {
		return fmt.Errorf("enter a non-negative amount")
	}
	return nil
}

func cadenceHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}
