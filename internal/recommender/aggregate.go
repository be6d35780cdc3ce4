package recommender

import "math"

// Item is a scoring view of a catalog recipe.
type Item struct {
	// ID is the canonical recipe ID.
	ID string

	// Ingredients are the recipe's ingredient names (any case).
	Ingredients []string

	// Diet are the recipe's diet tags (any case).
	Diet []string
}

// Rating is a scoring view of one user's rating of an item.
type Rating struct {
	UserID string
	ItemID string
	Value  int
}

// Stats holds the aggregate rating for one item.
type Stats struct {
	// Average is the mean rating value, rounded to 2 decimal places.
	// Zero when the item has no ratings.
	Average float64 `json:"avg"`

	// Count is the number of ratings.
	Count int `json:"count"`
}

// Aggregate computes the mean and count of ratings for itemID.
// Unknown items yield the zero Stats value, never an error: callers must
// not special-case empty rating sets.
//
// Rounding happens once, at output, using round-half-away-from-zero.
func Aggregate(ratings []Rating, itemID string) Stats {
	sum, count := 0, 0
	for _, r := range ratings {
		if r.ItemID == itemID {
			sum += r.Value
			count++
		}
	}
	if count == 0 {
		return Stats{}
	}
	return Stats{
		Average: round2(float64(sum) / float64(count)),
		Count:   count,
	}
}

// BuildStats computes aggregate stats for every item in the catalog,
// keyed by canonical item ID. Items without ratings map to zero Stats.
func BuildStats(ratings []Rating, items []Item) map[string]Stats {
	sums := make(map[string]int, len(items))
	counts := make(map[string]int, len(items))
	for _, r := range ratings {
		sums[r.ItemID] += r.Value
		counts[r.ItemID]++
	}

	stats := make(map[string]Stats, len(items))
	for _, it := range items {
		if n := counts[it.ID]; n > 0 {
			stats[it.ID] = Stats{
				Average: round2(float64(sums[it.ID]) / float64(n)),
				Count:   n,
			}
		} else {
			stats[it.ID] = Stats{}
		}
	}
	return stats
}

// round2 rounds to 2 decimal places, half away from zero.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
