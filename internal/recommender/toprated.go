package recommender

import "sort"

// TopRated returns up to limit items sorted descending by aggregate
// average rating. Items with no ratings sort with average 0. The sort is
// stable, so ties keep catalog order.
//
// This is the unconditional fallback whenever personalization is
// unavailable: no user identity, unverifiable identity, no liked ratings,
// or an empty personalized ranking.
func TopRated(items []Item, stats map[string]Stats, limit int) []Item {
	out := make([]Item, len(items))
	copy(out, items)

	sort.SliceStable(out, func(i, j int) bool {
		return stats[out[i].ID].Average > stats[out[j].ID].Average
	})

	if limit >= 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
