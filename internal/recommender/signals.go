package recommender

import "strings"

// LikedThreshold is the minimum rating value that counts as a "liked"
// rating when deriving personalization signals. Fixed policy, not
// user-configurable.
const LikedThreshold = 4

// Signals holds the weighted preference signals extracted from a user's
// liked ratings. Keys are lower-cased, trimmed ingredient names and diet
// tags; values count occurrences across all liked items.
type Signals struct {
	Ingredients map[string]int
	Diet        map[string]int
}

// Empty reports whether no signal was extracted, meaning personalization
// is not possible and callers must fall back to TopRated.
func (s Signals) Empty() bool {
	return len(s.Ingredients) == 0 && len(s.Diet) == 0
}

// ExtractSignals derives ingredient and diet-tag weights from userID's
// liked ratings (value >= LikedThreshold).
//
// Ratings referencing items no longer in the catalog are skipped silently:
// a dangling reference is not an error. Repeats across multiple liked
// items accumulate.
func ExtractSignals(userID string, ratings []Rating, items []Item) Signals {
	sig := Signals{
		Ingredients: make(map[string]int),
		Diet:        make(map[string]int),
	}

	index := make(map[string]*Item, len(items))
	for i := range items {
		index[items[i].ID] = &items[i]
	}

	for _, r := range ratings {
		if r.UserID != userID || r.Value < LikedThreshold {
			continue
		}
		item, ok := index[r.ItemID]
		if !ok {
			continue
		}
		for _, ing := range item.Ingredients {
			if key := normalizeTerm(ing); key != "" {
				sig.Ingredients[key]++
			}
		}
		for _, tag := range item.Diet {
			if key := normalizeTerm(tag); key != "" {
				sig.Diet[key]++
			}
		}
	}
	return sig
}

// normalizeTerm lower-cases and trims an ingredient name or diet tag.
// Empty terms are discarded by callers.
func normalizeTerm(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
