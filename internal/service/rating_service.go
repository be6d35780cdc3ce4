package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/dishcover/dishcover/internal/metrics"
	"github.com/dishcover/dishcover/internal/models"
	"github.com/dishcover/dishcover/internal/recommender"
	"github.com/dishcover/dishcover/internal/storage"
)

// RatingService manages per-user recipe ratings. Submitting the same value
// twice removes the rating, so a second tap on the same star acts as an undo.
type RatingService struct {
	store  storage.Store
	logger *slog.Logger

	// mu serializes the read-modify-write cycle in SubmitRating so that
	// concurrent submissions from the same user cannot interleave between
	// the lookup and the mutation.
	mu sync.Mutex
}

func NewRatingService(store storage.Store, logger *slog.Logger) *RatingService {
	return &RatingService{
		store:  store,
		logger: logger.With("service", "rating"),
	}
}

// SubmitRating records, updates, or removes a rating and returns the recipe's
// aggregation after the mutation. Values outside [1, 5] are rejected without
// touching stored state.
func (s *RatingService) SubmitRating(ctx context.Context, userID, recipeID string, value int) (recommender.Stats, error) {
	if userID == "" {
		return recommender.Stats{}, ErrMissingUserID
	}
	if recipeID == "" {
		return recommender.Stats{}, ErrMissingRecipeID
	}
	if value < models.MinRating || value > models.MaxRating {
		metrics.RatingMutations.WithLabelValues("rejected").Inc()
		return recommender.Stats{}, ErrInvalidRating
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.store.GetRating(ctx, userID, recipeID)
	if err != nil {
		return recommender.Stats{}, fmt.Errorf("failed to load rating: %w", err)
	}

	now := time.Now().Unix()
	switch {
	case existing == nil:
		rating := &models.Rating{
			UserID:    userID,
			RecipeID:  recipeID,
			Value:     value,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := s.store.UpsertRating(ctx, rating); err != nil {
			return recommender.Stats{}, fmt.Errorf("failed to save rating: %w", err)
		}
		metrics.RatingMutations.WithLabelValues("created").Inc()
		s.logger.Debug("rating created", "user_id", userID, "recipe_id", recipeID, "value", value)

	case existing.Value == value:
		// Resubmitting the current value toggles the rating off.
		if err := s.store.DeleteRating(ctx, userID, recipeID); err != nil {
			return recommender.Stats{}, fmt.Errorf("failed to remove rating: %w", err)
		}
		metrics.RatingMutations.WithLabelValues("removed").Inc()
		s.logger.Debug("rating removed", "user_id", userID, "recipe_id", recipeID)

	default:
		rating := &models.Rating{
			UserID:    userID,
			RecipeID:  recipeID,
			Value:     value,
			CreatedAt: existing.CreatedAt,
			UpdatedAt: now,
		}
		if err := s.store.UpsertRating(ctx, rating); err != nil {
			return recommender.Stats{}, fmt.Errorf("failed to update rating: %w", err)
		}
		metrics.RatingMutations.WithLabelValues("updated").Inc()
		s.logger.Debug("rating updated", "user_id", userID, "recipe_id", recipeID, "value", value)
	}

	return s.RecipeStats(ctx, recipeID)
}

// RecipeStats returns the average and count for one recipe. Recipes nobody
// has rated yield the zero stats rather than an error.
func (s *RatingService) RecipeStats(ctx context.Context, recipeID string) (recommender.Stats, error) {
	if recipeID == "" {
		return recommender.Stats{}, ErrMissingRecipeID
	}

	ratings, err := s.store.ListRatingsForRecipe(ctx, recipeID)
	if err != nil {
		return recommender.Stats{}, fmt.Errorf("failed to list ratings: %w", err)
	}
	return recommender.Aggregate(toRecommenderRatings(ratings), recipeID), nil
}

func toRecommenderRatings(ratings []models.Rating) []recommender.Rating {
	out := make([]recommender.Rating, 0, len(ratings))
	for _, r := range ratings {
		out = append(out, recommender.Rating{
			UserID: r.UserID,
			ItemID: r.RecipeID,
			Value:  r.Value,
		})
	}
	return out
}
