package formatter

import (
	"fmt"
	"strings"

	"github.com/avermeer/cadence/internal/service"
)

// FormatSummary formats the executive one-pager: per-market scores, hero
// lineups, asset readiness and budget, closed with the overall verdict and
// the active cohesion thresholds.
func FormatSummary(s *service.Summary) string {
	var b strings.Builder

	headers := []string{"MARKET", "SCORE", "HERO LINEUP", "ASSETS", "BUDGET"}
	rows := make([][]string, 0, len(s.Markets))

	for _, ms := range s.Markets {
		lineup := Dim("none")
		if len(ms.HeroLineup) > 0 {
			lineup = strings.Join(ms.HeroLineup, ", ")
		}
		rows = append(rows, []string{
			Bold(ms.Market.DisplayName()),
			fmt.Sprintf("%s %s", ScoreBadge(ms.Result.Score), RatingIndicator(ms.Rating)),
			lineup,
			RenderReadiness(ms.AssetReadiness, 8),
			Money(ms.TotalBudget),
		})
	}

	b.WriteString(RenderTable(headers, rows))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Overall cohesion: %s %s\n",
		ScoreBadge(s.Overall), RatingIndicator(s.OverallRating)))

	issueCount := 0
	for _, ms := range s.Markets {
		issueCount += len(ms.Result.Issues)
	}
	if issueCount > 0 {
		b.WriteString(StyleYellow.Render(fmt.Sprintf("%d open cohesion issues. Run `cadence score` for details.", issueCount)) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(Dim(fmt.Sprintf("Thresholds: max %d heroes/market, min %d repeats/hero, min %d months planned",
		s.Rules.MaxHeroConceptsPerMarket, s.Rules.MinRepeatsPerHero, s.Rules.MinMonthsPlanned)) + "\n")

	return RenderBox("Campaign Summary", b.String())
}
