package importer

import (
	"testing"
	"time"

	"github.com/avermeer/cadence/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var convNow = time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)

func TestConvert_GeneratesMissingIDs(t *testing.T) {
	state := Convert(validDoc(), convNow)

	require.Len(t, state.Concepts, 2)
	assert.Equal(t, "c1", state.Concepts[0].ID)
	assert.NotEmpty(t, state.Concepts[1].ID, "omitted concept id should be generated")
	require.Len(t, state.Tribes, 1)
	assert.NotEmpty(t, state.Tribes[0].ID)
}

func TestConvert_RoleDefaultsToSupport(t *testing.T) {
	state := Convert(validDoc(), convNow)
	assert.Equal(t, domain.RoleHero, state.Concepts[0].Role)
	assert.Equal(t, domain.RoleSupport, state.Concepts[1].Role)
}

func TestConvert_RulesDefaulting(t *testing.T) {
	doc := validDoc()
	doc.Rules = nil
	assert.Equal(t, domain.DefaultCohesionRules(), Convert(doc, convNow).Rules)

	two := 2
	doc.Rules = &RulesImport{MinRepeatsPerHero: &two}
	rules := Convert(doc, convNow).Rules
	assert.Equal(t, 2, rules.MinRepeatsPerHero)
	assert.Equal(t, domain.DefaultCohesionRules().MinMonthsPlanned, rules.MinMonthsPlanned)
}

func TestConvert_PlacementsSortedAndTyped(t *testing.T) {
	state := Convert(validDoc(), convNow)

	require.Len(t, state.Placements, 2)
	assert.Equal(t, 0, state.Placements[0].Month)
	assert.Equal(t, 3, state.Placements[1].Month)
	require.NotNil(t, state.Placements[0].ConceptID)
	assert.Equal(t, "c1", *state.Placements[0].ConceptID)
	assert.Equal(t, []string{"social"}, state.Placements[0].Channels)
	assert.Equal(t, convNow, state.Placements[0].CreatedAt)
}

func TestConvert_EmptyConceptIDStaysNil(t *testing.T) {
	doc := validDoc()
	doc.Plans["m1"]["6"] = PlacementImport{Notes: "placeholder"}
	state := Convert(doc, convNow)

	var found *domain.Placement
	for _, p := range state.Placements {
		if p.Month == 6 {
			found = p
		}
	}
	require.NotNil(t, found)
	assert.Nil(t, found.ConceptID)
}

func TestToDocument_RoundTrip(t *testing.T) {
	original := Convert(validDoc(), convNow)
	doc := ToDocument(original)
	require.Empty(t, ValidateStateDocument(doc))

	back := Convert(doc, convNow)
	assert.Equal(t, original.Rules, back.Rules)
	require.Len(t, back.Concepts, len(original.Concepts))
	assert.Equal(t, original.Concepts[0].Name, back.Concepts[0].Name)
	require.Len(t, back.Placements, len(original.Placements))
	assert.Equal(t, original.Placements[1].Month, back.Placements[1].Month)
}
