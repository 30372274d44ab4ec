package domain

type ConceptRole string

const (
	RoleHero    ConceptRole = "hero"
	RoleSupport ConceptRole = "support"
)

// ValidConceptRoles is the canonical set of accepted concept role strings.
var ValidConceptRoles = map[string]bool{
	"hero": true, "support": true,
}

type Rating string

const (
	RatingGreen Rating = "green"
	RatingAmber Rating = "amber"
	RatingRed   Rating = "red"
)

// RatingForScore maps a cohesion score to its traffic-light rating:
// green for 80 and above, amber for 60-79, red below 60.
func RatingForScore(score int) Rating {
	switch {
	case score >= 80:
		return RatingGreen
	case score >= 60:
		return RatingAmber
	default:
		return RatingRed
	}
}

// DefaultChannels is the channel label set offered by interactive forms.
// Placements accept arbitrary labels; this list is a convenience, not a
// constraint.
var DefaultChannels = []string{
	"social", "email", "web", "retail", "events", "paid",
}
