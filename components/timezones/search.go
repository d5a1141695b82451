package timezones

import (
	"sort"
	"strings"
)

// DefaultLimit caps search results when the caller passes limit <= 0.
const DefaultLimit = 20

// MaxLimit is the hard ceiling on search results.
const MaxLimit = 50

// Search filters zones by a case-insensitive substring query. Prefix matches
// sort ahead of interior matches; ties break alphabetically. An empty query
// returns the head of the list up to limit.
func Search(zones []string, query string, limit int) []string {
	limit = clampLimit(limit)

	query = strings.TrimSpace(query)
	if query == "" {
		if len(zones) <= limit {
			return append([]string{}, zones...)
		}
		return append([]string{}, zones[:limit]...)
	}

	q := strings.ToLower(query)
	matches := make([]matchedZone, 0, 32)
	for _, zone := range zones {
		lowerZone := strings.ToLower(zone)
		if !strings.Contains(lowerZone, q) {
			continue
		}
		matches = append(matches, matchedZone{
			name:     zone,
			isPrefix: strings.HasPrefix(lowerZone, q),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].isPrefix != matches[j].isPrefix {
			return matches[i].isPrefix
		}
		return matches[i].name < matches[j].name
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}

	out := make([]string, 0, len(matches))
	for _, match := range matches {
		out = append(out, match.name)
	}
	return out
}

type matchedZone struct {
	name     string
	isPrefix bool
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}
