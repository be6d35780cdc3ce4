package service

import (
	"context"
	"errors"
	"testing"
)

func TestFavoriteService(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects missing identifiers", func(t *testing.T) {
		svc := NewFavoriteService(setupTestStore(t), testLogger())

		if _, err := svc.Toggle(ctx, "", "pasta"); !errors.Is(err, ErrMissingUserID) {
			t.Errorf("expected ErrMissingUserID, got %v", err)
		}
		if _, err := svc.Toggle(ctx, "user-1", ""); !errors.Is(err, ErrMissingRecipeID) {
			t.Errorf("expected ErrMissingRecipeID, got %v", err)
		}
		if _, err := svc.List(ctx, ""); !errors.Is(err, ErrMissingUserID) {
			t.Errorf("expected ErrMissingUserID, got %v", err)
		}
	})

	t.Run("toggle adds then removes", func(t *testing.T) {
		store := setupTestStore(t)
		svc := NewFavoriteService(store, testLogger())
		user := createTestUser(t, store, "fav@example.com")

		favorites, err := svc.Toggle(ctx, user.ID, "pasta")
		if err != nil {
			t.Fatalf("failed to toggle favorite: %v", err)
		}
		if len(favorites) != 1 || favorites[0] != "pasta" {
			t.Errorf("expected [pasta], got %v", favorites)
		}

		favorites, err = svc.Toggle(ctx, user.ID, "pasta")
		if err != nil {
			t.Fatalf("failed to toggle favorite off: %v", err)
		}
		if len(favorites) != 0 {
			t.Errorf("expected empty favorites after second toggle, got %v", favorites)
		}
	})

	t.Run("double toggle restores original set", func(t *testing.T) {
		store := setupTestStore(t)
		svc := NewFavoriteService(store, testLogger())
		user := createTestUser(t, store, "set@example.com")

		if _, err := svc.Toggle(ctx, user.ID, "pasta"); err != nil {
			t.Fatalf("failed to toggle: %v", err)
		}
		if _, err := svc.Toggle(ctx, user.ID, "salad"); err != nil {
			t.Fatalf("failed to toggle: %v", err)
		}

		if _, err := svc.Toggle(ctx, user.ID, "curry"); err != nil {
			t.Fatalf("failed to toggle: %v", err)
		}
		favorites, err := svc.Toggle(ctx, user.ID, "curry")
		if err != nil {
			t.Fatalf("failed to toggle: %v", err)
		}

		if len(favorites) != 2 || favorites[0] != "pasta" || favorites[1] != "salad" {
			t.Errorf("expected [pasta salad], got %v", favorites)
		}
	})

	t.Run("list is empty but not nil for new user", func(t *testing.T) {
		store := setupTestStore(t)
		svc := NewFavoriteService(store, testLogger())
		user := createTestUser(t, store, "empty@example.com")

		favorites, err := svc.List(ctx, user.ID)
		if err != nil {
			t.Fatalf("failed to list favorites: %v", err)
		}
		if favorites == nil {
			t.Error("expected non-nil favorites slice")
		}
		if len(favorites) != 0 {
			t.Errorf("expected empty favorites, got %v", favorites)
		}
	})
}
