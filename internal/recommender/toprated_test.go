package recommender

import "testing"

func TestTopRated(t *testing.T) {
	items := []Item{
		{ID: "a"},
		{ID: "b"},
		{ID: "c"},
		{ID: "d"},
	}

	t.Run("orders by average descending", func(t *testing.T) {
		stats := map[string]Stats{
			"a": {Average: 3.5, Count: 2},
			"b": {Average: 5, Count: 1},
			"c": {Average: 4.2, Count: 5},
		}

		got := TopRated(items, stats, 12)
		want := []string{"b", "c", "a", "d"}
		for i, id := range want {
			if got[i].ID != id {
				t.Errorf("position %d: expected %s, got %s", i, id, got[i].ID)
			}
		}
	})

	t.Run("unrated items rank as zero in input order", func(t *testing.T) {
		got := TopRated(items, map[string]Stats{}, 12)
		for i, it := range items {
			if got[i].ID != it.ID {
				t.Errorf("position %d: expected %s, got %s", i, it.ID, got[i].ID)
			}
		}
	})

	t.Run("ties keep input order", func(t *testing.T) {
		stats := map[string]Stats{
			"b": {Average: 4, Count: 1},
			"d": {Average: 4, Count: 3},
		}

		got := TopRated(items, stats, 12)
		want := []string{"b", "d", "a", "c"}
		for i, id := range want {
			if got[i].ID != id {
				t.Errorf("position %d: expected %s, got %s", i, id, got[i].ID)
			}
		}
	})

	t.Run("applies the limit", func(t *testing.T) {
		if got := TopRated(items, map[string]Stats{}, 2); len(got) != 2 {
			t.Errorf("expected 2 items, got %d", len(got))
		}
	})

	t.Run("limit beyond catalog returns everything", func(t *testing.T) {
		if got := TopRated(items, map[string]Stats{}, 12); len(got) != len(items) {
			t.Errorf("expected %d items, got %d", len(items), len(got))
		}
	})

	t.Run("does not mutate the input slice", func(t *testing.T) {
		stats := map[string]Stats{"d": {Average: 5, Count: 1}}
		TopRated(items, stats, 12)
		if items[0].ID != "a" || items[3].ID != "d" {
			t.Errorf("input slice reordered: %v", items)
		}
	})
}
