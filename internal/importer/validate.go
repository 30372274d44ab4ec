package importer

import (
	"fmt"
	"strconv"

	"github.com/avermeer/cadence/internal/domain"
)

// ValidateStateDocument checks the document for errors before conversion.
// Returns a slice of all validation errors found.
func ValidateStateDocument(doc *StateDocument) []error {
	var errs []error

	if doc.Version < 0 || doc.Version > 1 {
		errs = append(errs, fmt.Errorf("unsupported document version %d", doc.Version))
	}

	conceptIDs := make(map[string]bool)
	for i, c := range doc.Concepts {
		if c.Name == "" {
			errs = append(errs, fmt.Errorf("concepts[%d]: name is required", i))
		}
		if c.Role != "" && !domain.ValidConceptRoles[c.Role] {
			errs = append(errs, fmt.Errorf("concepts[%d]: invalid role %q", i, c.Role))
		}
		if c.ID != "" {
			if conceptIDs[c.ID] {
				errs = append(errs, fmt.Errorf("concepts[%d]: duplicate id %q", i, c.ID))
			}
			conceptIDs[c.ID] = true
		}
	}

	marketIDs := make(map[string]bool)
	for i, m := range doc.Markets {
		if m.ID == "" {
			errs = append(errs, fmt.Errorf("markets[%d]: id is required", i))
		}
		if m.Name == "" {
			errs = append(errs, fmt.Errorf("markets[%d]: name is required", i))
		}
		if marketIDs[m.ID] {
			errs = append(errs, fmt.Errorf("markets[%d]: duplicate id %q", i, m.ID))
		}
		marketIDs[m.ID] = true
	}

	for i, t := range doc.Tribes {
		if t.Name == "" {
			errs = append(errs, fmt.Errorf("tribes[%d]: name is required", i))
		}
	}

	for marketID, plan := range doc.Plans {
		if !marketIDs[marketID] {
			errs = append(errs, fmt.Errorf("plans[%q]: unknown market id", marketID))
		}
		for monthKey, p := range plan {
			month, err := strconv.Atoi(monthKey)
			if err != nil || !domain.ValidMonth(month) {
				errs = append(errs, fmt.Errorf("plans[%q]: month key %q must be an integer in [0,11]", marketID, monthKey))
			}
			if p.Budget != nil && *p.Budget < 0 {
				errs = append(errs, fmt.Errorf("plans[%q][%s]: budget must not be negative", marketID, monthKey))
			}
		}
	}

	// Dangling concept references inside plans are allowed: the scoring
	// engine degrades them to unplanned-for-hero-purposes.

	return errs
}
