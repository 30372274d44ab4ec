package domain

import (
	"fmt"
	"time"
)

// Tribe is an audience grouping that placements can reference.
type Tribe struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (t *Tribe) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("tribe name is required")
	}
	return nil
}
