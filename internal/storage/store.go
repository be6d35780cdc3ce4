// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/dishcover/dishcover/internal/models"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// Store defines the interface for user, rating and favorite persistence.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL,
// etc.) without changing the service layer.
//
// The one-rating-per-(user,recipe) and one-favorite-per-(user,recipe)
// invariants are enforced by the store's keys; callers serialize their
// read-modify-write cycles so toggle decisions never race (see the
// service layer).
type Store interface {
	// CreateUser persists a new user. Fails if the normalized email is
	// already registered.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByEmail retrieves a user by normalized email.
	// Returns (nil, nil) when no such user exists.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByID retrieves a user by ID.
	// Returns (nil, nil) when no such user exists.
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	// GetRating retrieves the rating for a (user, recipe) pair.
	// Returns (nil, nil) when the pair has no rating.
	GetRating(ctx context.Context, userID, recipeID string) (*models.Rating, error)

	// UpsertRating inserts or replaces the rating for its (user, recipe)
	// pair, preserving at most one rating per pair.
	UpsertRating(ctx context.Context, rating *models.Rating) error

	// DeleteRating removes the rating for a (user, recipe) pair.
	// Deleting a nonexistent rating is not an error.
	DeleteRating(ctx context.Context, userID, recipeID string) error

	// ListRatingsForRecipe returns all ratings for one recipe.
	ListRatingsForRecipe(ctx context.Context, recipeID string) ([]models.Rating, error)

	// ListRatings returns the full rating set.
	ListRatings(ctx context.Context) ([]models.Rating, error)

	// HasFavorite reports whether the (user, recipe) pair is favorited.
	HasFavorite(ctx context.Context, userID, recipeID string) (bool, error)

	// AddFavorite inserts a favorite. Inserting an existing pair is a
	// no-op, preserving set semantics.
	AddFavorite(ctx context.Context, fav *models.Favorite) error

	// RemoveFavorite deletes a favorite. Removing a nonexistent pair is
	// not an error.
	RemoveFavorite(ctx context.Context, userID, recipeID string) error

	// ListFavoriteIDs returns the recipe IDs favorited by userID, in
	// insertion order.
	ListFavoriteIDs(ctx context.Context, userID string) ([]string, error)

	// Close releases any resources held by the store.
	Close() error
}
