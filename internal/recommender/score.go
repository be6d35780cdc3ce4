package recommender

import "sort"

// Scoring weights. Ingredient overlap dominates, diet-tag overlap is a
// secondary signal, and the global average rating is a small quality boost
// so unrated overlapping items still outrank noise.
const (
	ingredientWeight = 2.0
	dietWeight       = 1.5
	ratingWeight     = 0.2
)

// MaxSuggestions is the maximum number of items a ranking returns.
const MaxSuggestions = 12

// Score ranks catalog items against the extracted preference signals plus
// a global quality term and returns the top MaxSuggestions items.
//
// Per item:
//
//	score = sum(ingredient weights) * 2 + sum(diet weights) * 1.5 + average * 0.2
//
// Items scoring <= 0 are excluded entirely, not ranked last: an item with
// no overlapping signal and no ratings contributes nothing. The sort is
// stable and descending, so ties keep catalog order; callers that need
// reproducible output rely on that tie-break.
//
// An empty result means personalization found nothing; callers must fall
// back to TopRated rather than returning an empty list.
func Score(items []Item, sig Signals, stats map[string]Stats) []Item {
	type scored struct {
		item  Item
		score float64
	}

	ranked := make([]scored, 0, len(items))
	for _, it := range items {
		score := 0.0
		for _, ing := range it.Ingredients {
			if w := sig.Ingredients[normalizeTerm(ing)]; w > 0 {
				score += float64(w) * ingredientWeight
			}
		}
		for _, tag := range it.Diet {
			if w := sig.Diet[normalizeTerm(tag)]; w > 0 {
				score += float64(w) * dietWeight
			}
		}
		score += stats[it.ID].Average * ratingWeight

		if score > 0 {
			ranked = append(ranked, scored{item: it, score: score})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	if len(ranked) > MaxSuggestions {
		ranked = ranked[:MaxSuggestions]
	}

	out := make([]Item, len(ranked))
	for i, s := range ranked {
		out[i] = s.item
	}
	return out
}
