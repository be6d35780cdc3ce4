package service

import (
	"context"
	"log/slog"

	"github.com/dishcover/dishcover/internal/catalog"
	"github.com/dishcover/dishcover/internal/metrics"
	"github.com/dishcover/dishcover/internal/models"
	"github.com/dishcover/dishcover/internal/recommender"
	"github.com/dishcover/dishcover/internal/storage"
)

// SuggestionService produces the ranked recipe list for the home feed.
// Signed-in users with liked recipes get a taste-based ranking; everyone
// else gets the top-rated fallback. Suggestions are a read path, so storage
// failures degrade the response instead of failing it.
type SuggestionService struct {
	store   storage.Store
	catalog *catalog.Catalog
	logger  *slog.Logger
}

func NewSuggestionService(store storage.Store, cat *catalog.Catalog, logger *slog.Logger) *SuggestionService {
	return &SuggestionService{
		store:   store,
		catalog: cat,
		logger:  logger.With("service", "suggestion"),
	}
}

// Suggest returns up to recommender.MaxSuggestions recipes for the given
// user. An empty userID requests the anonymous fallback ranking.
func (s *SuggestionService) Suggest(ctx context.Context, userID string) []models.Recipe {
	items := toRecommenderItems(s.catalog.Recipes())

	ratings, err := s.store.ListRatings(ctx)
	if err != nil {
		// Serve the catalog-order fallback rather than failing the feed.
		s.logger.Warn("failed to list ratings, serving fallback", "error", err)
		ratings = nil
	}

	recRatings := toRecommenderRatings(ratings)
	stats := recommender.BuildStats(recRatings, items)

	if userID != "" {
		signals := recommender.ExtractSignals(userID, recRatings, items)
		if !signals.Empty() {
			ranked := recommender.Score(items, signals, stats)
			if len(ranked) > 0 {
				metrics.SuggestionsServed.WithLabelValues("personalized").Inc()
				return s.resolveItems(ranked)
			}
		}
	}

	metrics.SuggestionsServed.WithLabelValues("fallback").Inc()
	top := recommender.TopRated(items, stats, recommender.MaxSuggestions)
	return s.resolveItems(top)
}

// TopRated returns the anonymous fallback ranking directly.
func (s *SuggestionService) TopRated(ctx context.Context, limit int) []models.Recipe {
	items := toRecommenderItems(s.catalog.Recipes())

	ratings, err := s.store.ListRatings(ctx)
	if err != nil {
		s.logger.Warn("failed to list ratings, ranking unrated catalog", "error", err)
		ratings = nil
	}

	stats := recommender.BuildStats(toRecommenderRatings(ratings), items)
	return s.resolveItems(recommender.TopRated(items, stats, limit))
}

func (s *SuggestionService) resolveItems(items []recommender.Item) []models.Recipe {
	out := make([]models.Recipe, 0, len(items))
	for _, it := range items {
		if recipe := s.catalog.Get(it.ID); recipe != nil {
			out = append(out, *recipe)
		}
	}
	return out
}

func toRecommenderItems(recipes []models.Recipe) []recommender.Item {
	items := make([]recommender.Item, 0, len(recipes))
	for _, r := range recipes {
		items = append(items, recommender.Item{
			ID:          r.ID,
			Ingredients: r.Ingredients,
			Diet:        r.Diet,
		})
	}
	return items
}
