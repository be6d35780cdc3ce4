package service

import (
	"context"
	"testing"
)

const suggestionTestCatalog = `[
	{"id": "pasta", "title": "Tomato Basil Pasta", "ingredients": ["Tomato", "Basil"], "diet": ["Vegetarian"]},
	{"id": "salad", "title": "Garden Salad", "ingredients": ["Tomato", "Lettuce"], "diet": ["Vegan", "Vegetarian"]},
	{"id": "curry", "title": "Vegetable Curry", "ingredients": ["Rice", "Tomato"], "diet": ["Vegan"]},
	{"id": "steak", "title": "Pan Seared Steak", "ingredients": ["Beef"], "diet": []}
]`

func TestSuggestionService(t *testing.T) {
	ctx := context.Background()

	t.Run("anonymous user gets top rated fallback", func(t *testing.T) {
		store := setupTestStore(t)
		cat := loadTestCatalog(t, suggestionTestCatalog)
		svc := NewSuggestionService(store, cat, testLogger())

		rater := createTestUser(t, store, "rater@example.com")
		ratingSvc := NewRatingService(store, testLogger())
		if _, err := ratingSvc.SubmitRating(ctx, rater.ID, "steak", 5); err != nil {
			t.Fatalf("failed to submit rating: %v", err)
		}

		got := svc.Suggest(ctx, "")
		if len(got) != 4 {
			t.Fatalf("expected all 4 recipes, got %d", len(got))
		}
		if got[0].ID != "steak" {
			t.Errorf("expected top-rated steak first, got %s", got[0].ID)
		}
	})

	t.Run("fallback preserves catalog order without ratings", func(t *testing.T) {
		store := setupTestStore(t)
		cat := loadTestCatalog(t, suggestionTestCatalog)
		svc := NewSuggestionService(store, cat, testLogger())

		got := svc.Suggest(ctx, "")
		want := []string{"pasta", "salad", "curry", "steak"}
		if len(got) != len(want) {
			t.Fatalf("expected %d recipes, got %d", len(want), len(got))
		}
		for i, id := range want {
			if got[i].ID != id {
				t.Errorf("position %d: expected %s, got %s", i, id, got[i].ID)
			}
		}
	})

	t.Run("liked recipe drives personalized ranking", func(t *testing.T) {
		store := setupTestStore(t)
		cat := loadTestCatalog(t, suggestionTestCatalog)
		svc := NewSuggestionService(store, cat, testLogger())

		user := createTestUser(t, store, "taste@example.com")
		ratingSvc := NewRatingService(store, testLogger())
		if _, err := ratingSvc.SubmitRating(ctx, user.ID, "pasta", 5); err != nil {
			t.Fatalf("failed to submit rating: %v", err)
		}

		// pasta: 2 ingredient hits + diet + rating boost; salad: 1 hit + diet;
		// curry: 1 hit; steak: no overlap, excluded.
		got := svc.Suggest(ctx, user.ID)
		want := []string{"pasta", "salad", "curry"}
		if len(got) != len(want) {
			t.Fatalf("expected %d recipes, got %d", len(want), len(got))
		}
		for i, id := range want {
			if got[i].ID != id {
				t.Errorf("position %d: expected %s, got %s", i, id, got[i].ID)
			}
		}
	})

	t.Run("user with only low ratings falls back", func(t *testing.T) {
		store := setupTestStore(t)
		cat := loadTestCatalog(t, suggestionTestCatalog)
		svc := NewSuggestionService(store, cat, testLogger())

		user := createTestUser(t, store, "lukewarm@example.com")
		ratingSvc := NewRatingService(store, testLogger())
		if _, err := ratingSvc.SubmitRating(ctx, user.ID, "salad", 3); err != nil {
			t.Fatalf("failed to submit rating: %v", err)
		}

		got := svc.Suggest(ctx, user.ID)
		if len(got) != 4 {
			t.Fatalf("expected fallback over all 4 recipes, got %d", len(got))
		}
		if got[0].ID != "salad" {
			t.Errorf("expected highest-rated salad first in fallback, got %s", got[0].ID)
		}
	})

	t.Run("user with no ratings falls back", func(t *testing.T) {
		store := setupTestStore(t)
		cat := loadTestCatalog(t, suggestionTestCatalog)
		svc := NewSuggestionService(store, cat, testLogger())

		user := createTestUser(t, store, "fresh@example.com")
		got := svc.Suggest(ctx, user.ID)
		if len(got) != 4 {
			t.Fatalf("expected fallback over all 4 recipes, got %d", len(got))
		}
	})

	t.Run("empty catalog yields empty suggestions", func(t *testing.T) {
		store := setupTestStore(t)
		svc := NewSuggestionService(store, loadTestCatalog(t, `[]`), testLogger())

		if got := svc.Suggest(ctx, ""); len(got) != 0 {
			t.Errorf("expected no suggestions, got %d", len(got))
		}
	})
}
