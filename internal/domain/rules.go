package domain

// CohesionRules are the global thresholds that parameterize cohesion
// scoring. They are shared across all markets.
type CohesionRules struct {
	MaxHeroConceptsPerMarket  int
	MinRepeatsPerHero         int
	MinMonthsPlanned          int
	MaxTotalConceptsPerMarket int
}

// DefaultCohesionRules returns the thresholds seeded on first run and used
// whenever no rules row has been stored yet.
func DefaultCohesionRules() CohesionRules {
	return CohesionRules{
		MaxHeroConceptsPerMarket:  4,
		MinRepeatsPerHero:         3,
		MinMonthsPlanned:          10,
		MaxTotalConceptsPerMarket: 8,
	}
}
