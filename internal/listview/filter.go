package listview

import (
	"strings"
)

// Criteria narrows a record list. Query is matched case-insensitive as a
// substring against the searchable fields; Exact maps a field name to a
// value the record must carry verbatim. Empty criteria impose no constraint.
type Criteria struct {
	Query string
	Exact map[string]string
}

// Empty reports whether the criteria impose no constraint at all.
func (c Criteria) Empty() bool {
	if c.Query != "" {
		return false
	}

	for _, v := range c.Exact {
		if v != "" {
			return false
		}
	}

	return true
}

// Filter returns the records matching the criteria, preserving order.
// The value func maps a record and a field name to the field's string form;
// unknown field names must yield "". fields lists the names searched by the
// free-text query. The input slice is never modified, the result is always
// a fresh slice.
func Filter[T any](items []T, crit Criteria, fields []string, value func(item T, field string) string) []T {
	out := make([]T, 0, len(items))

	query := strings.ToLower(strings.TrimSpace(crit.Query))

	for _, item := range items {
		if !matchesQuery(item, query, fields, value) {
			continue
		}

		if !matchesExact(item, crit.Exact, value) {
			continue
		}

		out = append(out, item)
	}

	return out
}

// matchesQuery reports whether any searchable field contains the query.
// An empty query matches everything.
func matchesQuery[T any](item T, query string, fields []string, value func(item T, field string) string) bool {
	if query == "" {
		return true
	}

	for _, field := range fields {
		if strings.Contains(strings.ToLower(value(item, field)), query) {
			return true
		}
	}

	return false
}

// matchesExact reports whether the record carries every non-empty exact
// filter value verbatim.
func matchesExact[T any](item T, exact map[string]string, value func(item T, field string) string) bool {
	for field, want := range exact {
		if want == "" {
			continue
		}

		if value(item, field) != want {
			return false
		}
	}

	return true
}
