package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// StateDocument is the top-level JSON structure for planning-state
// import/export. It mirrors the document shape the scoring engine's
// collaborating state store produces: a concept catalog, markets, tribes,
// global rules, and per-market sparse plans keyed by month index.
type StateDocument struct {
	Version  int                                   `json:"version"`
	Rules    *RulesImport                          `json:"rules,omitempty"`
	Concepts []ConceptImport                       `json:"concepts"`
	Markets  []MarketImport                        `json:"markets"`
	Tribes   []TribeImport                         `json:"tribes,omitempty"`
	Plans    map[string]map[string]PlacementImport `json:"plans,omitempty"`
}

// RulesImport carries the global cohesion thresholds. Missing fields fall
// back to the documented defaults.
type RulesImport struct {
	MaxHeroConceptsPerMarket  *int `json:"max_hero_concepts_per_market,omitempty"`
	MinRepeatsPerHero         *int `json:"min_repeats_per_hero,omitempty"`
	MinMonthsPlanned          *int `json:"min_months_planned,omitempty"`
	MaxTotalConceptsPerMarket *int `json:"max_total_concepts_per_market,omitempty"`
}

// ConceptImport defines one catalog entry. An omitted id is generated on
// import; an omitted role defaults to support.
type ConceptImport struct {
	ID    string   `json:"id,omitempty"`
	Name  string   `json:"name"`
	Role  string   `json:"role,omitempty"`
	Tags  []string `json:"tags,omitempty"`
	Color string   `json:"color,omitempty"`
}

// MarketImport defines one market. Plans reference markets by id.
type MarketImport struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Region string `json:"region,omitempty"`
}

// TribeImport defines one audience tribe.
type TribeImport struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}

// PlacementImport defines the content of one (market, month) slot. The month
// itself is the enclosing map key, serialized as a string ("0".."11").
type PlacementImport struct {
	ConceptID string          `json:"concept_id,omitempty"`
	Notes     string          `json:"notes,omitempty"`
	Channels  []string        `json:"channels,omitempty"`
	Budget    *float64        `json:"budget,omitempty"`
	TribeIDs  []string        `json:"tribe_ids,omitempty"`
	Assets    map[string]bool `json:"assets,omitempty"`
}

// LoadStateDocument reads and parses a planning-state JSON file.
func LoadStateDocument(path string) (*StateDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc StateDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing state document: %w", err)
	}
	return &doc, nil
}

// SaveStateDocument writes a planning-state JSON file with stable
// indentation.
func SaveStateDocument(path string, doc *StateDocument) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding state document: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("writing state document: %w", err)
	}
	return nil
}
