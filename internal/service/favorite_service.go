package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/dishcover/dishcover/internal/models"
	"github.com/dishcover/dishcover/internal/storage"
)

// FavoriteService tracks the set of recipes a user has bookmarked.
type FavoriteService struct {
	store  storage.Store
	logger *slog.Logger

	// mu serializes Toggle's membership check and mutation.
	mu sync.Mutex
}

func NewFavoriteService(store storage.Store, logger *slog.Logger) *FavoriteService {
	return &FavoriteService{
		store:  store,
		logger: logger.With("service", "favorite"),
	}
}

// Toggle adds the recipe to the user's favorites if absent, removes it if
// present, and returns the resulting favorite list.
func (s *FavoriteService) Toggle(ctx context.Context, userID, recipeID string) ([]string, error) {
	if userID == "" {
		return nil, ErrMissingUserID
	}
	if recipeID == "" {
		return nil, ErrMissingRecipeID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	has, err := s.store.HasFavorite(ctx, userID, recipeID)
	if err != nil {
		return nil, fmt.Errorf("failed to check favorite: %w", err)
	}

	if has {
		if err := s.store.RemoveFavorite(ctx, userID, recipeID); err != nil {
			return nil, fmt.Errorf("failed to remove favorite: %w", err)
		}
		s.logger.Debug("favorite removed", "user_id", userID, "recipe_id", recipeID)
	} else {
		fav := &models.Favorite{
			UserID:    userID,
			RecipeID:  recipeID,
			CreatedAt: time.Now().Unix(),
		}
		if err := s.store.AddFavorite(ctx, fav); err != nil {
			return nil, fmt.Errorf("failed to add favorite: %w", err)
		}
		s.logger.Debug("favorite added", "user_id", userID, "recipe_id", recipeID)
	}

	return s.store.ListFavoriteIDs(ctx, userID)
}

// List returns the user's favorite recipe IDs in the order they were added.
func (s *FavoriteService) List(ctx context.Context, userID string) ([]string, error) {
	if userID == "" {
		return nil, ErrMissingUserID
	}
	return s.store.ListFavoriteIDs(ctx, userID)
}
