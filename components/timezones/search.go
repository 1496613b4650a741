package timezones

import (
	"sort"
	"strings"
)

// Search returns zones containing query (case-insensitive), prefix matches
// first, capped at the clamped limit. An empty query yields nothing unless
// opts.EmptySearchMode is EmptySearchTop.
func Search(zones []string, query string, limit int, opts Options) []string {
	limit = clampLimit(limit, opts)
	if limit == 0 {
		return nil
	}

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		if opts.EmptySearchMode != EmptySearchTop {
			return nil
		}
		return append([]string{}, zones[:min(limit, len(zones))]...)
	}

	type hit struct {
		zone   string
		prefix bool
	}
	hits := make([]hit, 0, 32)
	for _, zone := range zones {
		lower := strings.ToLower(zone)
		if strings.Contains(lower, query) {
			hits = append(hits, hit{zone: zone, prefix: strings.HasPrefix(lower, query)})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].prefix != hits[j].prefix {
			return hits[i].prefix
		}
		return hits[i].zone < hits[j].zone
	})

	out := make([]string, 0, min(limit, len(hits)))
	for _, h := range hits[:min(limit, len(hits))] {
		out = append(out, h.zone)
	}
	return out
}

func SearchOptions(zones []string, query string, limit int, opts Options) []Option {
	results := Search(zones, query, limit, opts)
	if len(results) == 0 {
		return nil
	}
	out := make([]Option, 0, len(results))
	for _, zone := range results {
		out = append(out, Option{Value: zone, Label: zone})
	}
	return out
}
