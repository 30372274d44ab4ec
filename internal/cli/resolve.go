package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/avermeer/cadence/internal/domain"
)

// resolveMarket accepts a market name (case-insensitive), a full id, or an
// id prefix, and returns the matching market.
func resolveMarket(ctx context.Context, app *App, input string) (*domain.Market, error) {
	if input == "" {
		return nil, fmt.Errorf("market is required")
	}

	markets, err := app.Markets.List(ctx)
	if err != nil {
		return nil, err
	}

	for _, m := range markets {
		if strings.EqualFold(m.Name, input) {
			return m, nil
		}
	}
	for _, m := range markets {
		if m.ID == input {
			return m, nil
		}
	}

	var matches []*domain.Market
	for _, m := range markets {
		if strings.HasPrefix(m.ID, input) {
			matches = append(matches, m)
		}
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("market not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("market %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolveConcept accepts a concept name (case-insensitive), a full id, or an
// id prefix, and returns the matching concept.
func resolveConcept(ctx context.Context, app *App, input string) (*domain.Concept, error) {
	if input == "" {
		return nil, fmt.Errorf("concept is required")
	}

	concepts, err := app.Concepts.List(ctx)
	if err != nil {
		return nil, err
	}

	for _, c := range concepts {
		if strings.EqualFold(c.Name, input) {
			return c, nil
		}
	}
	for _, c := range concepts {
		if c.ID == input {
			return c, nil
		}
	}

	var matches []*domain.Concept
	for _, c := range concepts {
		if strings.HasPrefix(c.ID, input) {
			matches = append(matches, c)
		}
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("concept not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("concept %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolveTribe accepts a tribe name (case-insensitive), a full id, or an id
// prefix, and returns the matching tribe.
func resolveTribe(ctx context.Context, app *App, input string) (*domain.Tribe, error) {
	if input == "" {
		return nil, fmt.Errorf("tribe is required")
	}

	tribes, err := app.Tribes.List(ctx)
	if err != nil {
		return nil, err
	}

	for _, tr := range tribes {
		if strings.EqualFold(tr.Name, input) || tr.ID == input {
			return tr, nil
		}
	}

	var matches []*domain.Tribe
	for _, tr := range tribes {
		if strings.HasPrefix(tr.ID, input) {
			matches = append(matches, tr)
		}
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("tribe not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("tribe %q is ambiguous (%d matches)", input, len(matches))
	}
}

// parseMonth parses a month argument: a 0-based index, a full month name,
// or a three-letter abbreviation (case-insensitive).
func parseMonth(input string) (int, error) {
	names := map[string]int{
		"january": 0, "february": 1, "march": 2, "april": 3,
		"may": 4, "june": 5, "july": 6, "august": 7,
		"september": 8, "october": 9, "november": 10, "december": 11,
		"jan": 0, "feb": 1, "mar": 2, "apr": 3, "jun": 5,
		"jul": 6, "aug": 7, "sep": 8, "oct": 9, "nov": 10, "dec": 11,
	}
	if m, ok := names[strings.ToLower(input)]; ok {
		return m, nil
	}

	var m int
	if _, err := fmt.Sscanf(input, "%d", &m); err != nil || !domain.ValidMonth(m) {
		return 0, fmt.Errorf("invalid month %q: use 0-11 or a month name", input)
	}
	return m, nil
}
