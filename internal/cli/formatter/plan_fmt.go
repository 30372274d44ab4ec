package formatter

import (
	"fmt"
	"strings"

	"github.com/avermeer/cadence/internal/domain"
)

// FormatPlan formats one market's year as a month-by-month table. The
// concepts map resolves concept ids to names; a placement whose concept id
// no longer resolves is shown as a dangling reference rather than hidden,
// matching how the scoring engine treats it.
func FormatPlan(market *domain.Market, plan domain.Plan, concepts map[string]*domain.Concept) string {
	var b strings.Builder

	headers := []string{"MONTH", "CONCEPT", "ROLE", "CHANNELS", "BUDGET", "ASSETS"}
	rows := make([][]string, 0, domain.MonthsPerYear)

	for month := 0; month < domain.MonthsPerYear; month++ {
		p, ok := plan[month]
		if !ok || !p.Planned() {
			rows = append(rows, []string{MonthShort(month), Dim("--"), "", "", "", ""})
			continue
		}

		name := Dim(fmt.Sprintf("missing concept %s", *p.ConceptID))
		role := ""
		if c, found := concepts[*p.ConceptID]; found {
			name = StyleFg.Render(c.Name)
			role = string(c.Role)
			if c.IsHero() {
				name = StylePurple.Render(c.Name)
			}
		}

		budget := ""
		if p.Budget != nil {
			budget = Money(*p.Budget)
		}
		assets := ""
		if len(p.Assets) > 0 {
			assets = RenderReadiness(p.AssetReadiness(), 6)
		}

		rows = append(rows, []string{
			MonthShort(month),
			name,
			role,
			strings.Join(p.Channels, ","),
			budget,
			assets,
		})
	}

	b.WriteString(RenderTable(headers, rows))
	return RenderBox(fmt.Sprintf("Plan: %s", market.DisplayName()), b.String())
}

// FormatRules formats the active cohesion thresholds.
func FormatRules(r domain.CohesionRules) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%-28s %d\n", "Max hero concepts/market", r.MaxHeroConceptsPerMarket))
	b.WriteString(fmt.Sprintf("%-28s %d\n", "Min repeats per hero", r.MinRepeatsPerHero))
	b.WriteString(fmt.Sprintf("%-28s %d\n", "Min months planned", r.MinMonthsPlanned))
	b.WriteString(fmt.Sprintf("%-28s %d\n", "Max concepts/market", r.MaxTotalConceptsPerMarket))
	return RenderBox("Cohesion Rules", b.String())
}
