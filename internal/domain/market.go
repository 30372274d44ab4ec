package domain

import (
	"fmt"
	"regexp"
	"time"
)

var regionPattern = regexp.MustCompile(`^[A-Z]{2,5}$`)

type Market struct {
	ID        string
	Name      string
	Region    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks that the market has a name and, if a region code is set,
// that it is 2-5 uppercase letters (e.g. DE, EMEA).
func (m *Market) Validate() error {
	if m.Name == "" {
		return fmt.Errorf("market name is required")
	}
	if m.Region != "" && !regionPattern.MatchString(m.Region) {
		return fmt.Errorf("market region %q must be 2-5 uppercase letters (e.g. DE, EMEA)", m.Region)
	}
	return nil
}

// DisplayName returns the market name with the region code appended when set.
func (m *Market) DisplayName() string {
	if m.Region == "" {
		return m.Name
	}
	return fmt.Sprintf("%s (%s)", m.Name, m.Region)
}
