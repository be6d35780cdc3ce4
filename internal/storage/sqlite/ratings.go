package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dishcover/dishcover/internal/models"
)

// GetRating retrieves the rating for a (user, recipe) pair.
func (s *SQLiteStore) GetRating(ctx context.Context, userID, recipeID string) (*models.Rating, error) {
	query := `
		SELECT user_id, recipe_id, value, created_at, updated_at
		FROM ratings
		WHERE user_id = ? AND recipe_id = ?
	`

	rating := &models.Rating{}
	err := s.db.QueryRowContext(ctx, query, userID, recipeID).Scan(
		&rating.UserID,
		&rating.RecipeID,
		&rating.Value,
		&rating.CreatedAt,
		&rating.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil // No rating for this pair
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get rating: %w", err)
	}

	return rating, nil
}

// UpsertRating inserts or replaces the rating for its (user, recipe) pair.
// The composite primary key guarantees at most one row per pair.
func (s *SQLiteStore) UpsertRating(ctx context.Context, rating *models.Rating) error {
	query := `
		INSERT INTO ratings (user_id, recipe_id, value, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (user_id, recipe_id) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at
	`

	_, err := s.db.ExecContext(ctx, query,
		rating.UserID,
		rating.RecipeID,
		rating.Value,
		rating.CreatedAt,
		rating.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to upsert rating: %w", err)
	}

	return nil
}

// DeleteRating removes the rating for a (user, recipe) pair.
func (s *SQLiteStore) DeleteRating(ctx context.Context, userID, recipeID string) error {
	query := `DELETE FROM ratings WHERE user_id = ? AND recipe_id = ?`

	if _, err := s.db.ExecContext(ctx, query, userID, recipeID); err != nil {
		return fmt.Errorf("failed to delete rating: %w", err)
	}

	return nil
}

// ListRatingsForRecipe returns all ratings for one recipe.
func (s *SQLiteStore) ListRatingsForRecipe(ctx context.Context, recipeID string) ([]models.Rating, error) {
	query := `
		SELECT user_id, recipe_id, value, created_at, updated_at
		FROM ratings
		WHERE recipe_id = ?
	`

	rows, err := s.db.QueryContext(ctx, query, recipeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list ratings for recipe: %w", err)
	}
	defer rows.Close()

	return scanRatings(rows)
}

// ListRatings returns the full rating set.
func (s *SQLiteStore) ListRatings(ctx context.Context) ([]models.Rating, error) {
	query := `
		SELECT user_id, recipe_id, value, created_at, updated_at
		FROM ratings
		ORDER BY created_at
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list ratings: %w", err)
	}
	defer rows.Close()

	return scanRatings(rows)
}

// scanRatings collects rating rows into a slice.
func scanRatings(rows *sql.Rows) ([]models.Rating, error) {
	var ratings []models.Rating
	for rows.Next() {
		var r models.Rating
		if err := rows.Scan(&r.UserID, &r.RecipeID, &r.Value, &r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan rating: %w", err)
		}
		ratings = append(ratings, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate ratings: %w", err)
	}
	return ratings, nil
}
