package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// encodeStrings marshals a string slice for a JSON TEXT column. A nil slice
// is stored as the empty array so reads never see NULL.
func encodeStrings(vals []string) (string, error) {
	if vals == nil {
		vals = []string{}
	}
	b, err := json.Marshal(vals)
	if err != nil {
		return "", fmt.Errorf("encoding string list: %w", err)
	}
	return string(b), nil
}

func decodeStrings(raw string) ([]string, error) {
	if raw == "" {
		return nil, nil
	}
	var vals []string
	if err := json.Unmarshal([]byte(raw), &vals); err != nil {
		return nil, fmt.Errorf("decoding string list: %w", err)
	}
	if len(vals) == 0 {
		return nil, nil
	}
	return vals, nil
}

// encodeAssets marshals the asset checklist for a JSON TEXT column.
func encodeAssets(assets map[string]bool) (string, error) {
	if assets == nil {
		assets = map[string]bool{}
	}
	b, err := json.Marshal(assets)
	if err != nil {
		return "", fmt.Errorf("encoding asset checklist: %w", err)
	}
	return string(b), nil
}

func decodeAssets(raw string) (map[string]bool, error) {
	if raw == "" {
		return nil, nil
	}
	var assets map[string]bool
	if err := json.Unmarshal([]byte(raw), &assets); err != nil {
		return nil, fmt.Errorf("decoding asset checklist: %w", err)
	}
	if len(assets) == 0 {
		return nil, nil
	}
	return assets, nil
}

// nullableStrToValue converts a *string to a value suitable for SQLite
// storage. Empty-string pointers are stored as NULL as well.
func nullableStrToValue(s *string) interface{} {
	if s == nil || *s == "" {
		return nil
	}
	return *s
}

func nullableStrFromColumn(s sql.NullString) *string {
	if !s.Valid || s.String == "" {
		return nil
	}
	v := s.String
	return &v
}

func nullableFloatToValue(f *float64) interface{} {
	if f == nil {
		return nil
	}
	return *f
}

func nullableFloatFromColumn(f sql.NullFloat64) *float64 {
	if !f.Valid {
		return nil
	}
	v := f.Float64
	return &v
}

// parseTime parses an RFC3339 timestamp column, returning the zero time on
// empty or malformed values.
func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
