package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/avermeer/cadence/internal/cli/formatter"
	"github.com/avermeer/cadence/internal/cohesion"
	"github.com/avermeer/cadence/internal/domain"
	"github.com/spf13/cobra"
)

// scoreJSON is the machine-readable shape of `score --json`.
type scoreJSON struct {
	Overall int               `json:"overall"`
	Markets []marketScoreJSON `json:"markets"`
}

type marketScoreJSON struct {
	MarketID          string   `json:"market_id"`
	Market            string   `json:"market"`
	Score             int      `json:"score"`
	Rating            string   `json:"rating"`
	MonthsPlanned     int      `json:"months_planned"`
	HeroConceptsUsed  int      `json:"hero_concepts_used"`
	TotalConceptsUsed int      `json:"total_concepts_used"`
	Issues            []string `json:"issues"`
}

func newScoreCmd(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "score [MARKET]",
		Short: "Score plan cohesion for all markets or one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			result, err := app.Scores.Score(ctx)
			if err != nil {
				return err
			}
			markets, err := app.Markets.List(ctx)
			if err != nil {
				return err
			}

			if len(args) == 1 {
				m, err := resolveMarket(ctx, app, args[0])
				if err != nil {
					return err
				}
				mr, ok := result.ByMarket[m.ID]
				if !ok {
					return fmt.Errorf("no score for market %q", m.Name)
				}
				if asJSON {
					return writeScoreJSON(cmd, scoreForMarkets(result, markets, m.ID))
				}
				fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatMarketScore(mr, m))
				return nil
			}

			if asJSON {
				return writeScoreJSON(cmd, scoreForMarkets(result, markets, ""))
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatScore(result, markets))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit machine-readable JSON")

	return cmd
}

// scoreForMarkets flattens a result into the JSON shape, optionally scoped
// to a single market id.
func scoreForMarkets(result *cohesion.Result, markets []*domain.Market, onlyID string) scoreJSON {
	out := scoreJSON{Overall: result.Overall, Markets: []marketScoreJSON{}}
	for _, m := range markets {
		if onlyID != "" && m.ID != onlyID {
			continue
		}
		mr, ok := result.ByMarket[m.ID]
		if !ok {
			continue
		}
		issues := mr.Issues
		if issues == nil {
			issues = []string{}
		}
		out.Markets = append(out.Markets, marketScoreJSON{
			MarketID:          m.ID,
			Market:            m.DisplayName(),
			Score:             mr.Score,
			Rating:            string(domain.RatingForScore(mr.Score)),
			MonthsPlanned:     mr.Stats.MonthsPlanned,
			HeroConceptsUsed:  mr.Stats.HeroConceptsUsed,
			TotalConceptsUsed: mr.Stats.TotalConceptsUsed,
			Issues:            issues,
		})
	}
	return out
}

func writeScoreJSON(cmd *cobra.Command, payload scoreJSON) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}
