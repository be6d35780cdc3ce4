// Package catalog loads the recipe catalog from a JSON file and resolves
// canonical recipe IDs.
//
// The catalog is read once per process and is immutable afterwards, so it
// is safe for concurrent readers without locking.
package catalog

import (
	"fmt"
	"log/slog"
	"os"

	json "github.com/goccy/go-json"

	"github.com/dishcover/dishcover/internal/models"
)

// Catalog holds the loaded recipe list with canonical IDs resolved.
// byID maps canonical IDs to indexes into recipes, so lookups stay valid
// regardless of how the slice's backing array moves.
type Catalog struct {
	recipes []models.Recipe
	byID    map[string]int
}

// Load reads and decodes the recipe catalog at path.
//
// Each entry's canonical ID is resolved here, exactly once: explicit id,
// falling back to title, then name; first non-empty wins. Entries with no
// resolvable identity are dropped with a warning — they could never be
// rated or favorited. Duplicate IDs keep the first occurrence.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var recipes []models.Recipe
	if err := json.Unmarshal(data, &recipes); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}

	c := &Catalog{
		recipes: make([]models.Recipe, 0, len(recipes)),
		byID:    make(map[string]int, len(recipes)),
	}
	for _, r := range recipes {
		if r.ID == "" {
			if r.ID = r.Title; r.ID == "" {
				r.ID = r.Name
			}
		}
		if r.ID == "" {
			slog.Warn("Dropping catalog entry with no id, title or name")
			continue
		}
		if _, exists := c.byID[r.ID]; exists {
			slog.Warn("Dropping catalog entry with duplicate id", "recipe_id", r.ID)
			continue
		}
		c.recipes = append(c.recipes, r)
		c.byID[r.ID] = len(c.recipes) - 1
	}

	slog.Info("Catalog loaded", "path", path, "recipes", len(c.recipes))
	return c, nil
}

// Empty returns a catalog with no recipes. Used when the catalog file is
// absent: the API stays up and serves empty lists.
func Empty() *Catalog {
	return &Catalog{byID: make(map[string]int)}
}

// Recipes returns the catalog in file order. Callers must not mutate the
// returned slice.
func (c *Catalog) Recipes() []models.Recipe {
	return c.recipes
}

// Get returns the recipe with the given canonical ID, or nil.
func (c *Catalog) Get(id string) *models.Recipe {
	i, ok := c.byID[id]
	if !ok {
		return nil
	}
	return &c.recipes[i]
}

// Len returns the number of recipes in the catalog.
func (c *Catalog) Len() int {
	return len(c.recipes)
}
