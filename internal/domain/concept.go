package domain

import (
	"fmt"
	"regexp"
	"time"
)

var colorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

type Concept struct {
	ID        string
	Name      string
	Role      ConceptRole
	Tags      []string
	Color     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks that the concept has a name, a known role, and (if set)
// a hex display color such as #d65d0e.
func (c *Concept) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("concept name is required")
	}
	if !ValidConceptRoles[string(c.Role)] {
		return fmt.Errorf("concept role %q must be one of: hero, support", c.Role)
	}
	if c.Color != "" && !colorPattern.MatchString(c.Color) {
		return fmt.Errorf("concept color %q must be a hex color (e.g. #d65d0e)", c.Color)
	}
	return nil
}

// IsHero reports whether the concept carries the hero role.
func (c *Concept) IsHero() bool {
	return c.Role == RoleHero
}

// HasTag reports whether the concept carries the given free-text tag.
func (c *Concept) HasTag(tag string) bool {
	for _, t := range c.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
