package cli

import (
	"fmt"
	"strings"

	"github.com/avermeer/cadence/internal/cli/formatter"
	"github.com/avermeer/cadence/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const boardCellWidth = 4

const boardMarketColWidth = 18

var boardCursorStyle = lipgloss.NewStyle().
	Background(formatter.ColorHeader).
	Foreground(lipgloss.Color("#282828")).
	Bold(true)

func (m boardModel) View() string {
	if m.quitting {
		return ""
	}
	if m.err != nil {
		return formatter.StyleRed.Render(fmt.Sprintf("Error: %v", m.err)) + "\n" +
			formatter.Dim("Press r to retry, q to quit.") + "\n"
	}
	if m.state == nil {
		return formatter.Dim("Loading planning state...") + "\n"
	}
	if len(m.state.Markets) == 0 {
		return formatter.Dim("No markets yet. Quit and run `cadence seed` or `cadence market add`.") + "\n"
	}

	var b strings.Builder
	b.WriteString(formatter.Header("Campaign Board"))
	b.WriteString("\n\n")
	b.WriteString(m.renderGrid())
	b.WriteString("\n")
	b.WriteString(m.renderDetail())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}

func (m boardModel) renderGrid() string {
	var b strings.Builder

	// Month header row.
	b.WriteString(strings.Repeat(" ", boardMarketColWidth))
	for month := 0; month < domain.MonthsPerYear; month++ {
		label := fmt.Sprintf("%-*s", boardCellWidth, formatter.MonthShort(month))
		if month == m.col {
			b.WriteString(formatter.StyleHeader.Render(label))
		} else {
			b.WriteString(formatter.Dim(label))
		}
	}
	b.WriteString("  ")
	b.WriteString(formatter.Dim("SCORE"))
	b.WriteString("\n")

	for i := range m.state.Markets {
		mk := &m.state.Markets[i]

		name := truncate(mk.DisplayName(), boardMarketColWidth-2)
		label := fmt.Sprintf("%-*s", boardMarketColWidth, name)
		if i == m.row {
			b.WriteString(formatter.Bold(label))
		} else {
			b.WriteString(formatter.StyleFg.Render(label))
		}

		plan := m.state.Plans[mk.ID]
		for month := 0; month < domain.MonthsPerYear; month++ {
			b.WriteString(m.renderCell(plan, i, month))
		}

		if mr, ok := m.result.ByMarket[mk.ID]; ok {
			b.WriteString("  ")
			b.WriteString(formatter.ScoreBadge(mr.Score))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (m boardModel) renderCell(plan domain.Plan, row, month int) string {
	text := "··"
	style := formatter.StyleDim

	if p, ok := plan[month]; ok && p.Planned() {
		if c := m.conceptByID(*p.ConceptID); c != nil {
			text = truncate(c.Name, boardCellWidth-1)
			style = formatter.StyleFg
			if c.IsHero() {
				style = formatter.StylePurple
			}
		} else {
			text = "?"
			style = formatter.StyleRed
		}
	}

	cell := fmt.Sprintf("%-*s", boardCellWidth, text)
	if row == m.row && month == m.col {
		return boardCursorStyle.Render(cell)
	}
	return style.Render(cell)
}

func (m boardModel) renderDetail() string {
	mk := m.selectedMarket()
	if mk == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s · %s\n", formatter.Bold(mk.DisplayName()), formatter.MonthName(m.col)))

	if p, ok := m.selectedPlacement(); ok && p.Planned() {
		if c := m.conceptByID(*p.ConceptID); c != nil {
			role := formatter.Dim(fmt.Sprintf("(%s)", c.Role))
			b.WriteString(fmt.Sprintf("  %s %s\n", formatter.StyleFg.Render(c.Name), role))
		} else {
			b.WriteString(formatter.StyleRed.Render(fmt.Sprintf("  missing concept %s", *p.ConceptID)) + "\n")
		}
		if p.Budget != nil {
			b.WriteString(formatter.Dim("  budget "+formatter.Money(*p.Budget)) + "\n")
		}
		if len(p.Assets) > 0 {
			b.WriteString("  " + formatter.RenderReadiness(p.AssetReadiness(), 8) + "\n")
		}
	} else {
		b.WriteString(formatter.Dim("  unplanned") + "\n")
	}

	if mr, ok := m.result.ByMarket[mk.ID]; ok && len(mr.Issues) > 0 {
		b.WriteString("\n")
		for _, issue := range mr.Issues {
			b.WriteString(formatter.StyleYellow.Render("  ▸ "+issue) + "\n")
		}
	}

	return b.String()
}

func (m boardModel) conceptByID(id string) *domain.Concept {
	for i := range m.state.Concepts {
		if m.state.Concepts[i].ID == id {
			return &m.state.Concepts[i]
		}
	}
	return nil
}

func truncate(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	return s[:max]
}
