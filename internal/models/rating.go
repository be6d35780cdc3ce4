package models

// Rating bounds for a star rating.
const (
	MinRating = 1
	MaxRating = 5
)

// Rating represents one user's star rating of a recipe.
//
// Invariant: at most one Rating exists per (UserID, RecipeID) pair.
// Submitting a different value overwrites the existing rating; submitting
// the same value deletes it (toggle-off).
type Rating struct {
	// UserID is the rating user's ID.
	UserID string

	// RecipeID is the canonical ID of the rated recipe.
	RecipeID string

	// Value is the star rating in [MinRating, MaxRating].
	Value int

	// CreatedAt is the Unix timestamp when the rating was first submitted.
	// It is preserved across value overwrites.
	CreatedAt int64

	// UpdatedAt is the Unix timestamp of the last value change.
	UpdatedAt int64
}

// Favorite represents a (user, recipe) bookmark.
type Favorite struct {
	// UserID is the bookmarking user's ID.
	UserID string

	// RecipeID is the canonical ID of the bookmarked recipe.
	RecipeID string

	// CreatedAt is the Unix timestamp when the favorite was added.
	CreatedAt int64
}
