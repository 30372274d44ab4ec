package domain

import "time"

// MonthsPerYear is the number of month slots in a market's plan.
const MonthsPerYear = 12

// ValidMonth reports whether m is a month index in [0,11].
func ValidMonth(m int) bool {
	return m >= 0 && m < MonthsPerYear
}

// QuarterOf returns the 1-based quarter (1..4) for a month index in [0,11].
func QuarterOf(month int) int {
	return month/3 + 1
}

// QuarterMonths returns the three month indexes spanned by quarter q (1..4).
func QuarterMonths(q int) [3]int {
	first := (q - 1) * 3
	return [3]int{first, first + 1, first + 2}
}

// Placement is the content assigned to one (market, month) slot. A placement
// without a concept reference is unplanned for cohesion purposes regardless
// of its other fields.
type Placement struct {
	ID        string
	MarketID  string
	Month     int
	ConceptID *string
	Notes     string
	Channels  []string
	Budget    *float64
	TribeIDs  []string
	Assets    map[string]bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Planned reports whether a concept is assigned to this slot.
func (p *Placement) Planned() bool {
	return p.ConceptID != nil && *p.ConceptID != ""
}

// AssetReadiness returns the percentage of checklist assets marked done,
// or 0 for an empty checklist.
func (p *Placement) AssetReadiness() float64 {
	if len(p.Assets) == 0 {
		return 0
	}
	done := 0
	for _, ok := range p.Assets {
		if ok {
			done++
		}
	}
	return float64(done) / float64(len(p.Assets)) * 100
}

// Plan is a sparse month-index to placement mapping for one market.
// Months absent from the map are unplanned.
type Plan map[int]Placement
