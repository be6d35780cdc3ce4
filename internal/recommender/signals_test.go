package recommender

import (
	"reflect"
	"testing"
)

func TestExtractSignals(t *testing.T) {
	items := []Item{
		{ID: "a", Ingredients: []string{"tomato", "basil"}, Diet: []string{"vegetarian"}},
		{ID: "b", Ingredients: []string{"chicken"}, Diet: []string{"non-veg"}},
		{ID: "c", Ingredients: []string{"Tomato ", "rice"}, Diet: []string{"Vegetarian"}},
	}

	tests := []struct {
		name            string
		userID          string
		ratings         []Rating
		wantIngredients map[string]int
		wantDiet        map[string]int
	}{
		{
			name:   "only liked ratings count",
			userID: "u",
			ratings: []Rating{
				{UserID: "u", ItemID: "a", Value: 5},
				{UserID: "u", ItemID: "b", Value: 2},
			},
			wantIngredients: map[string]int{"tomato": 1, "basil": 1},
			wantDiet:        map[string]int{"vegetarian": 1},
		},
		{
			name:   "threshold is inclusive at 4",
			userID: "u",
			ratings: []Rating{
				{UserID: "u", ItemID: "b", Value: 4},
			},
			wantIngredients: map[string]int{"chicken": 1},
			wantDiet:        map[string]int{"non-veg": 1},
		},
		{
			name:   "repeats accumulate across liked items, case folded",
			userID: "u",
			ratings: []Rating{
				{UserID: "u", ItemID: "a", Value: 5},
				{UserID: "u", ItemID: "c", Value: 4},
			},
			wantIngredients: map[string]int{"tomato": 2, "basil": 1, "rice": 1},
			wantDiet:        map[string]int{"vegetarian": 2},
		},
		{
			name:   "other users ignored",
			userID: "u",
			ratings: []Rating{
				{UserID: "other", ItemID: "a", Value: 5},
			},
			wantIngredients: map[string]int{},
			wantDiet:        map[string]int{},
		},
		{
			name:   "dangling item reference skipped silently",
			userID: "u",
			ratings: []Rating{
				{UserID: "u", ItemID: "deleted", Value: 5},
			},
			wantIngredients: map[string]int{},
			wantDiet:        map[string]int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sig := ExtractSignals(tt.userID, tt.ratings, items)
			if !reflect.DeepEqual(sig.Ingredients, tt.wantIngredients) {
				t.Errorf("ingredients = %v, want %v", sig.Ingredients, tt.wantIngredients)
			}
			if !reflect.DeepEqual(sig.Diet, tt.wantDiet) {
				t.Errorf("diet = %v, want %v", sig.Diet, tt.wantDiet)
			}
		})
	}
}

func TestSignalsEmpty(t *testing.T) {
	if !(Signals{Ingredients: map[string]int{}, Diet: map[string]int{}}).Empty() {
		t.Error("expected empty signals to report Empty")
	}
	if (Signals{Ingredients: map[string]int{"rice": 1}, Diet: map[string]int{}}).Empty() {
		t.Error("ingredient signal should not report Empty")
	}
}
