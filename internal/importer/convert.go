package importer

import (
	"sort"
	"strconv"
	"time"

	"github.com/avermeer/cadence/internal/domain"
	"github.com/google/uuid"
)

// ConvertedState holds the domain entities produced from a validated
// document, ready for persistence.
type ConvertedState struct {
	Concepts   []*domain.Concept
	Markets    []*domain.Market
	Tribes     []*domain.Tribe
	Placements []*domain.Placement
	Rules      domain.CohesionRules
}

// Convert maps a validated document to domain entities. Omitted concept and
// tribe ids are generated; omitted rule thresholds take the documented
// defaults. The document must have passed ValidateStateDocument.
func Convert(doc *StateDocument, now time.Time) *ConvertedState {
	state := &ConvertedState{
		Rules: convertRules(doc.Rules),
	}

	for _, ci := range doc.Concepts {
		state.Concepts = append(state.Concepts, &domain.Concept{
			ID:        domain.CoalesceStr(ci.ID, uuid.New().String()),
			Name:      ci.Name,
			Role:      domain.ConceptRole(domain.CoalesceStr(ci.Role, string(domain.RoleSupport))),
			Tags:      ci.Tags,
			Color:     ci.Color,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	for _, mi := range doc.Markets {
		state.Markets = append(state.Markets, &domain.Market{
			ID:        mi.ID,
			Name:      mi.Name,
			Region:    mi.Region,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	for _, ti := range doc.Tribes {
		state.Tribes = append(state.Tribes, &domain.Tribe{
			ID:        domain.CoalesceStr(ti.ID, uuid.New().String()),
			Name:      ti.Name,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	// Stable placement order keeps import deterministic for tests and
	// diffable exports.
	marketIDs := make([]string, 0, len(doc.Plans))
	for id := range doc.Plans {
		marketIDs = append(marketIDs, id)
	}
	sort.Strings(marketIDs)
	for _, marketID := range marketIDs {
		plan := doc.Plans[marketID]
		months := make([]int, 0, len(plan))
		byMonth := make(map[int]PlacementImport, len(plan))
		for key, pi := range plan {
			month, err := strconv.Atoi(key)
			if err != nil {
				continue
			}
			months = append(months, month)
			byMonth[month] = pi
		}
		sort.Ints(months)
		for _, month := range months {
			pi := byMonth[month]
			p := &domain.Placement{
				ID:        uuid.New().String(),
				MarketID:  marketID,
				Month:     month,
				Notes:     pi.Notes,
				Channels:  pi.Channels,
				Budget:    pi.Budget,
				TribeIDs:  pi.TribeIDs,
				Assets:    pi.Assets,
				CreatedAt: now,
				UpdatedAt: now,
			}
			if pi.ConceptID != "" {
				id := pi.ConceptID
				p.ConceptID = &id
			}
			state.Placements = append(state.Placements, p)
		}
	}

	return state
}

func convertRules(ri *RulesImport) domain.CohesionRules {
	defaults := domain.DefaultCohesionRules()
	if ri == nil {
		return defaults
	}
	return domain.CohesionRules{
		MaxHeroConceptsPerMarket:  domain.IntFromPtrWithDefault(defaults.MaxHeroConceptsPerMarket, ri.MaxHeroConceptsPerMarket),
		MinRepeatsPerHero:         domain.IntFromPtrWithDefault(defaults.MinRepeatsPerHero, ri.MinRepeatsPerHero),
		MinMonthsPlanned:          domain.IntFromPtrWithDefault(defaults.MinMonthsPlanned, ri.MinMonthsPlanned),
		MaxTotalConceptsPerMarket: domain.IntFromPtrWithDefault(defaults.MaxTotalConceptsPerMarket, ri.MaxTotalConceptsPerMarket),
	}
}

// ToDocument builds an exportable document from domain entities; the inverse
// of Convert.
func ToDocument(state *ConvertedState) *StateDocument {
	doc := &StateDocument{
		Version: 1,
		Plans:   make(map[string]map[string]PlacementImport),
	}

	rules := state.Rules
	doc.Rules = &RulesImport{
		MaxHeroConceptsPerMarket:  &rules.MaxHeroConceptsPerMarket,
		MinRepeatsPerHero:         &rules.MinRepeatsPerHero,
		MinMonthsPlanned:          &rules.MinMonthsPlanned,
		MaxTotalConceptsPerMarket: &rules.MaxTotalConceptsPerMarket,
	}

	for _, c := range state.Concepts {
		doc.Concepts = append(doc.Concepts, ConceptImport{
			ID:    c.ID,
			Name:  c.Name,
			Role:  string(c.Role),
			Tags:  c.Tags,
			Color: c.Color,
		})
	}
	for _, m := range state.Markets {
		doc.Markets = append(doc.Markets, MarketImport{ID: m.ID, Name: m.Name, Region: m.Region})
	}
	for _, t := range state.Tribes {
		doc.Tribes = append(doc.Tribes, TribeImport{ID: t.ID, Name: t.Name})
	}
	for _, p := range state.Placements {
		plan, ok := doc.Plans[p.MarketID]
		if !ok {
			plan = make(map[string]PlacementImport)
			doc.Plans[p.MarketID] = plan
		}
		pi := PlacementImport{
			Notes:    p.Notes,
			Channels: p.Channels,
			Budget:   p.Budget,
			TribeIDs: p.TribeIDs,
			Assets:   p.Assets,
		}
		if p.ConceptID != nil {
			pi.ConceptID = *p.ConceptID
		}
		doc.Plans[p.MarketID][strconv.Itoa(p.Month)] = pi
	}

	return doc
}
