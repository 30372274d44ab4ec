package cohesion

import (
	"fmt"
	"math"
	"sort"

	"github.com/avermeer/cadence/internal/domain"
)

// State is the immutable planning snapshot the engine scores. Plans map a
// market id to that market's sparse month->placement plan; Concepts is the
// shared catalog and Rules the shared global thresholds.
type State struct {
	Concepts []domain.Concept
	Markets  []domain.Market
	Plans    map[string]domain.Plan
	Rules    domain.CohesionRules
}

// MarketStats summarizes a market's concept usage across the year.
type MarketStats struct {
	MonthsPlanned     int
	HeroConceptsUsed  int
	TotalConceptsUsed int
}

// MarketResult is one market's cohesion score, usage stats, and the
// human-readable issues behind any deducted points.
type MarketResult struct {
	Score  int
	Stats  MarketStats
	Issues []string
}

// Result holds the per-market results plus the rounded overall mean.
type Result struct {
	Overall  int
	ByMarket map[string]MarketResult
}

// Penalty points per unit of rule violation.
const (
	penaltyPerMissingMonth  = 2
	penaltyPerExtraHero     = 5
	penaltyPerMissingRepeat = 4
	penaltyQuarterNoHero    = 6
)

// Score evaluates every market in the state independently and averages the
// per-market scores. It is pure: it never mutates the state, performs no
// I/O, and returns identical results for identical inputs. Malformed data
// (dangling concept references, missing plans) degrades to "unplanned"
// rather than failing.
func Score(state State) Result {
	catalog := make(map[string]domain.Concept, len(state.Concepts))
	for _, c := range state.Concepts {
		catalog[c.ID] = c
	}

	byMarket := make(map[string]MarketResult, len(state.Markets))
	total := 0
	for _, m := range state.Markets {
		r := scoreMarket(state.Plans[m.ID], catalog, state.Rules)
		byMarket[m.ID] = r
		total += r.Score
	}

	// Denominator floored at 1 so an empty state scores 0, not NaN.
	n := len(state.Markets)
	if n < 1 {
		n = 1
	}
	overall := int(math.Round(float64(total) / float64(n)))

	return Result{Overall: overall, ByMarket: byMarket}
}

// conceptUsage tracks the distinct months a concept id appears in, plus its
// first month of appearance for stable issue ordering.
type conceptUsage struct {
	firstMonth int
	months     map[int]bool
}

func scoreMarket(plan domain.Plan, catalog map[string]domain.Concept, rules domain.CohesionRules) MarketResult {
	monthsPlanned := 0
	used := make(map[string]*conceptUsage)
	for month := 0; month < domain.MonthsPerYear; month++ {
		p, ok := plan[month]
		if !ok || !p.Planned() {
			continue
		}
		monthsPlanned++
		id := *p.ConceptID
		u, ok := used[id]
		if !ok {
			u = &conceptUsage{firstMonth: month, months: make(map[int]bool)}
			used[id] = u
		}
		u.months[month] = true
	}

	// Every used concept id counts toward the total, resolved or not; only
	// the hero rules require the reference to resolve in the catalog.
	totalConcepts := len(used)

	// Heroes ordered by first appearance (ties by id) so the issue list is
	// deterministic across runs.
	var heroIDs []string
	for id := range used {
		if c, ok := catalog[id]; ok && c.IsHero() {
			heroIDs = append(heroIDs, id)
		}
	}
	sort.Slice(heroIDs, func(i, j int) bool {
		a, b := used[heroIDs[i]], used[heroIDs[j]]
		if a.firstMonth != b.firstMonth {
			return a.firstMonth < b.firstMonth
		}
		return heroIDs[i] < heroIDs[j]
	})

	score := 100
	var issues []string

	// Rule A: yearly coverage.
	if monthsPlanned < rules.MinMonthsPlanned {
		issues = append(issues, fmt.Sprintf("Only %d/12 months planned (min %d).",
			monthsPlanned, rules.MinMonthsPlanned))
		score -= (rules.MinMonthsPlanned - monthsPlanned) * penaltyPerMissingMonth
	}

	// Rule B: hero concept ceiling.
	if len(heroIDs) > rules.MaxHeroConceptsPerMarket {
		issues = append(issues, fmt.Sprintf("Too many hero concepts: %d (max %d).",
			len(heroIDs), rules.MaxHeroConceptsPerMarket))
		score -= (len(heroIDs) - rules.MaxHeroConceptsPerMarket) * penaltyPerExtraHero
	}

	// Rule C: repetition floor, applied per hero.
	for _, id := range heroIDs {
		n := len(used[id].months)
		if n < rules.MinRepeatsPerHero {
			issues = append(issues, fmt.Sprintf("Hero %q repeats %d× (min %d).",
				catalog[id].Name, n, rules.MinRepeatsPerHero))
			score -= (rules.MinRepeatsPerHero - n) * penaltyPerMissingRepeat
		}
	}

	// Rule D: every quarter needs at least one hero placement.
	for q := 1; q <= 4; q++ {
		if !quarterHasHero(plan, catalog, q) {
			issues = append(issues, fmt.Sprintf("No hero presence in Q%d.", q))
			score -= penaltyQuarterNoHero
		}
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return MarketResult{
		Score: score,
		Stats: MarketStats{
			MonthsPlanned:     monthsPlanned,
			HeroConceptsUsed:  len(heroIDs),
			TotalConceptsUsed: totalConcepts,
		},
		Issues: issues,
	}
}

func quarterHasHero(plan domain.Plan, catalog map[string]domain.Concept, q int) bool {
	for _, month := range domain.QuarterMonths(q) {
		p, ok := plan[month]
		if !ok || !p.Planned() {
			continue
		}
		if c, ok := catalog[*p.ConceptID]; ok && c.IsHero() {
			return true
		}
	}
	return false
}
