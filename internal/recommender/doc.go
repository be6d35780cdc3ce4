// Package recommender implements the rating aggregation and recipe
// suggestion scoring for Dishcover.
//
// The package is pure computation: it borrows read-only snapshots of the
// catalog and the rating set per call and produces no side effects. All
// persistence and transport concerns live with the callers.
//
// Suggestion flow:
//
//	sig := recommender.ExtractSignals(userID, ratings, items)
//	stats := recommender.BuildStats(ratings, items)
//	ranked := recommender.Score(items, sig, stats)
//	if len(ranked) == 0 {
//	    ranked = recommender.TopRated(items, stats, recommender.MaxSuggestions)
//	}
//
// Determinism: all orderings use stable sorts, so ties keep catalog order
// and the same inputs always produce the same output.
package recommender
