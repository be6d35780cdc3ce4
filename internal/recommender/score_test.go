package recommender

import (
	"fmt"
	"testing"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name         string
		items        []Item
		sig          Signals
		stats        map[string]Stats
		wantIDs      []string
		validateFunc func(t *testing.T, got []Item)
	}{
		{
			name: "overlap scoring with rating boost",
			items: []Item{
				{ID: "a", Ingredients: []string{"tomato", "basil"}, Diet: []string{"vegetarian"}},
				{ID: "b", Ingredients: []string{"chicken"}, Diet: []string{"non-veg"}},
			},
			sig: Signals{
				Ingredients: map[string]int{"tomato": 1, "basil": 1},
				Diet:        map[string]int{"vegetarian": 1},
			},
			stats: map[string]Stats{
				"a": {Average: 5, Count: 1},
				"b": {Average: 2, Count: 1},
			},
			// a = (1+1)*2 + 1*1.5 + 5*0.2 = 6.5
			// b = 0 + 0 + 2*0.2 = 0.4, retained because score > 0
			wantIDs: []string{"a", "b"},
		},
		{
			name: "zero-score items excluded entirely",
			items: []Item{
				{ID: "a", Ingredients: []string{"tofu"}},
				{ID: "b", Ingredients: []string{"beef"}},
			},
			sig: Signals{
				Ingredients: map[string]int{"tofu": 2},
				Diet:        map[string]int{},
			},
			stats:   map[string]Stats{},
			wantIDs: []string{"a"},
		},
		{
			name: "no overlap and no ratings yields empty ranking",
			items: []Item{
				{ID: "a", Ingredients: []string{"rice"}},
			},
			sig: Signals{
				Ingredients: map[string]int{"noodles": 1},
				Diet:        map[string]int{},
			},
			stats:   map[string]Stats{},
			wantIDs: []string{},
		},
		{
			name: "ties keep catalog order",
			items: []Item{
				{ID: "first", Ingredients: []string{"egg"}},
				{ID: "second", Ingredients: []string{"egg"}},
			},
			sig: Signals{
				Ingredients: map[string]int{"egg": 1},
				Diet:        map[string]int{},
			},
			stats:   map[string]Stats{},
			wantIDs: []string{"first", "second"},
		},
		{
			name: "ingredient matching is case-insensitive",
			items: []Item{
				{ID: "a", Ingredients: []string{"Tomato"}},
			},
			sig: Signals{
				Ingredients: map[string]int{"tomato": 1},
				Diet:        map[string]int{},
			},
			stats:   map[string]Stats{},
			wantIDs: []string{"a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(tt.items, tt.sig, tt.stats)
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("Score() returned %d items, want %d", len(got), len(tt.wantIDs))
			}
			for i, want := range tt.wantIDs {
				if got[i].ID != want {
					t.Errorf("Score()[%d] = %s, want %s", i, got[i].ID, want)
				}
			}
			if tt.validateFunc != nil {
				tt.validateFunc(t, got)
			}
		})
	}
}

func TestScoreTruncatesToMaxSuggestions(t *testing.T) {
	var items []Item
	for i := 0; i < MaxSuggestions+8; i++ {
		items = append(items, Item{
			ID:          fmt.Sprintf("r%d", i),
			Ingredients: []string{"garlic"},
		})
	}
	sig := Signals{
		Ingredients: map[string]int{"garlic": 1},
		Diet:        map[string]int{},
	}

	got := Score(items, sig, map[string]Stats{})
	if len(got) != MaxSuggestions {
		t.Errorf("Score() returned %d items, want %d", len(got), MaxSuggestions)
	}
	// All tied, so the first MaxSuggestions catalog entries survive in order.
	for i, it := range got {
		if want := fmt.Sprintf("r%d", i); it.ID != want {
			t.Errorf("Score()[%d] = %s, want %s", i, it.ID, want)
		}
	}
}
