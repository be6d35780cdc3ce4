package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dishcover/dishcover/internal/models"
)

// HasFavorite reports whether the (user, recipe) pair is favorited.
func (s *SQLiteStore) HasFavorite(ctx context.Context, userID, recipeID string) (bool, error) {
	query := `SELECT 1 FROM favorites WHERE user_id = ? AND recipe_id = ?`

	var one int
	err := s.db.QueryRowContext(ctx, query, userID, recipeID).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check favorite: %w", err)
	}
	return true, nil
}

// AddFavorite inserts a favorite. The composite primary key plus
// ON CONFLICT DO NOTHING gives set semantics.
func (s *SQLiteStore) AddFavorite(ctx context.Context, fav *models.Favorite) error {
	query := `
		INSERT INTO favorites (user_id, recipe_id, created_at)
		VALUES (?, ?, ?)
		ON CONFLICT (user_id, recipe_id) DO NOTHING
	`

	_, err := s.db.ExecContext(ctx, query, fav.UserID, fav.RecipeID, fav.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to add favorite: %w", err)
	}

	return nil
}

// RemoveFavorite deletes a favorite.
func (s *SQLiteStore) RemoveFavorite(ctx context.Context, userID, recipeID string) error {
	query := `DELETE FROM favorites WHERE user_id = ? AND recipe_id = ?`

	if _, err := s.db.ExecContext(ctx, query, userID, recipeID); err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}

	return nil
}

// ListFavoriteIDs returns the recipe IDs favorited by userID, oldest first.
func (s *SQLiteStore) ListFavoriteIDs(ctx context.Context, userID string) ([]string, error) {
	query := `
		SELECT recipe_id FROM favorites
		WHERE user_id = ?
		ORDER BY created_at, recipe_id
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan favorite: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate favorites: %w", err)
	}

	return ids, nil
}
