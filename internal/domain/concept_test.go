package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConceptValidate_Valid(t *testing.T) {
	c := &Concept{Name: "Summer Stories", Role: RoleHero, Color: "#d65d0e"}
	assert.NoError(t, c.Validate())
}

func TestConceptValidate_NoColor(t *testing.T) {
	c := &Concept{Name: "Back to School", Role: RoleSupport}
	assert.NoError(t, c.Validate())
}

func TestConceptValidate_MissingName(t *testing.T) {
	c := &Concept{Role: RoleHero}
	err := c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required")
}

func TestConceptValidate_BadRole(t *testing.T) {
	c := &Concept{Name: "X", Role: ConceptRole("lead")}
	err := c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "role")
}

func TestConceptValidate_BadColor(t *testing.T) {
	cases := []string{"red", "#fff", "#12345g", "d65d0e"}
	for _, color := range cases {
		c := &Concept{Name: "X", Role: RoleHero, Color: color}
		assert.Error(t, c.Validate(), "should reject color %q", color)
	}
}

func TestConceptIsHero(t *testing.T) {
	assert.True(t, (&Concept{Role: RoleHero}).IsHero())
	assert.False(t, (&Concept{Role: RoleSupport}).IsHero())
}

func TestConceptHasTag(t *testing.T) {
	c := &Concept{Name: "X", Tags: []string{"seasonal", "family"}}
	assert.True(t, c.HasTag("family"))
	assert.False(t, c.HasTag("b2b"))
}

func TestMarketValidate(t *testing.T) {
	assert.NoError(t, (&Market{Name: "Germany", Region: "DE"}).Validate())
	assert.NoError(t, (&Market{Name: "Nordics"}).Validate())
	assert.Error(t, (&Market{Name: "", Region: "DE"}).Validate())
	assert.Error(t, (&Market{Name: "Germany", Region: "de"}).Validate())
	assert.Error(t, (&Market{Name: "Germany", Region: "GERMANY"}).Validate())
}

func TestMarketDisplayName(t *testing.T) {
	assert.Equal(t, "Germany (DE)", (&Market{Name: "Germany", Region: "DE"}).DisplayName())
	assert.Equal(t, "Nordics", (&Market{Name: "Nordics"}).DisplayName())
}
