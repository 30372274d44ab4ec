package formatter

import (
	"fmt"
	"strings"

	"github.com/avermeer/cadence/internal/cohesion"
	"github.com/avermeer/cadence/internal/domain"
)

// FormatScore formats a full cohesion result as a per-market table followed
// by the issue list of every market that has issues. Markets are listed in
// the given order; markets without a result row are skipped.
func FormatScore(result *cohesion.Result, markets []*domain.Market) string {
	var b strings.Builder

	headers := []string{"MARKET", "SCORE", "RATING", "MONTHS", "HEROES", "ISSUES"}
	rows := make([][]string, 0, len(markets))

	for _, m := range markets {
		mr, ok := result.ByMarket[m.ID]
		if !ok {
			continue
		}
		rows = append(rows, []string{
			Bold(m.DisplayName()),
			ScoreBadge(mr.Score),
			RatingIndicator(domain.RatingForScore(mr.Score)),
			fmt.Sprintf("%d/12", mr.Stats.MonthsPlanned),
			fmt.Sprintf("%d", mr.Stats.HeroConceptsUsed),
			fmt.Sprintf("%d", len(mr.Issues)),
		})
	}

	b.WriteString(RenderTable(headers, rows))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Overall cohesion: %s %s\n",
		ScoreBadge(result.Overall), RatingIndicator(domain.RatingForScore(result.Overall))))

	issueBlock := formatIssues(result, markets)
	if issueBlock != "" {
		b.WriteString("\n")
		b.WriteString(issueBlock)
	}

	return RenderBox("Cohesion Score", b.String())
}

// FormatMarketScore formats one market's score with its full issue list.
func FormatMarketScore(mr cohesion.MarketResult, market *domain.Market) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s  %s %s\n", Bold(market.DisplayName()),
		ScoreBadge(mr.Score), RatingIndicator(domain.RatingForScore(mr.Score))))
	b.WriteString(Dim(fmt.Sprintf("%d/12 months planned, %d hero concepts, %d concepts in use",
		mr.Stats.MonthsPlanned, mr.Stats.HeroConceptsUsed, mr.Stats.TotalConceptsUsed)) + "\n")

	if len(mr.Issues) == 0 {
		b.WriteString("\n" + StyleGreen.Render("No cohesion issues.") + "\n")
	} else {
		b.WriteString("\n")
		for _, issue := range mr.Issues {
			b.WriteString(StyleYellow.Render("  ▸ "+issue) + "\n")
		}
	}

	return RenderBox("Cohesion Score", b.String())
}

func formatIssues(result *cohesion.Result, markets []*domain.Market) string {
	var b strings.Builder
	for _, m := range markets {
		mr, ok := result.ByMarket[m.ID]
		if !ok || len(mr.Issues) == 0 {
			continue
		}
		b.WriteString(Bold(m.DisplayName()) + "\n")
		for _, issue := range mr.Issues {
			b.WriteString(StyleYellow.Render("  ▸ "+issue) + "\n")
		}
	}
	return b.String()
}
