package models

import (
	"fmt"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

// Recipe represents a catalog entry.
//
// The catalog file is hand-maintained, so a few fields tolerate loose
// shapes: "id" may be a JSON string or number, "diet" may be a single tag
// or an array, and "ingredients" may be an array or a comma-separated
// string. All of these are normalized at decode time.
type Recipe struct {
	// ID is the canonical identifier, resolved at catalog load:
	// explicit id, falling back to title, then name. First non-empty wins.
	// Ratings and favorites reference recipes by this value.
	ID string `json:"id"`

	// Title is the display title. Some catalog entries use "name" instead.
	Title string `json:"title,omitempty"`

	// Name is an alternative display name used by older catalog entries.
	Name string `json:"name,omitempty"`

	// Ingredients is the list of ingredient names.
	Ingredients []string `json:"ingredients,omitempty"`

	// Diet holds zero or more diet tags (e.g. "vegetarian", "vegan").
	Diet []string `json:"diet,omitempty"`

	// Image is an optional image URL.
	Image string `json:"image,omitempty"`

	// Steps is the ordered list of preparation steps.
	Steps []string `json:"steps,omitempty"`

	// Servings is the number of servings the recipe yields.
	Servings int `json:"servings,omitempty"`

	// CookingTime is the preparation time in minutes.
	CookingTime int `json:"cookingTime,omitempty"`
}

// DisplayName returns the human-readable name of the recipe.
func (r *Recipe) DisplayName() string {
	if r.Title != "" {
		return r.Title
	}
	return r.Name
}

// rawRecipe mirrors Recipe with loosely-typed fields for decoding.
type rawRecipe struct {
	ID          json.RawMessage `json:"id"`
	Title       string          `json:"title"`
	Name        string          `json:"name"`
	Ingredients json.RawMessage `json:"ingredients"`
	Diet        json.RawMessage `json:"diet"`
	Image       string          `json:"image"`
	Img         string          `json:"img"`
	Steps       []string        `json:"steps"`
	Servings    int             `json:"servings"`
	CookingTime int             `json:"cookingTime"`
}

// UnmarshalJSON decodes a catalog entry, tolerating the loose field shapes
// described on Recipe.
func (r *Recipe) UnmarshalJSON(data []byte) error {
	var raw rawRecipe
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	id, err := decodeScalar(raw.ID)
	if err != nil {
		return fmt.Errorf("invalid recipe id: %w", err)
	}

	ingredients, err := decodeStringList(raw.Ingredients, true)
	if err != nil {
		return fmt.Errorf("invalid ingredients: %w", err)
	}

	diet, err := decodeStringList(raw.Diet, false)
	if err != nil {
		return fmt.Errorf("invalid diet: %w", err)
	}

	image := raw.Image
	if image == "" {
		image = raw.Img
	}

	*r = Recipe{
		ID:          id,
		Title:       raw.Title,
		Name:        raw.Name,
		Ingredients: ingredients,
		Diet:        diet,
		Image:       image,
		Steps:       raw.Steps,
		Servings:    raw.Servings,
		CookingTime: raw.CookingTime,
	}
	return nil
}

// decodeScalar decodes a JSON string or number into its string form.
func decodeScalar(data json.RawMessage) (string, error) {
	if len(data) == 0 || string(data) == "null" {
		return "", nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		return s, nil
	}
	var n float64
	if err := json.Unmarshal(data, &n); err != nil {
		return "", err
	}
	return strconv.FormatFloat(n, 'f', -1, 64), nil
}

// decodeStringList decodes a JSON array of strings or a single string.
// When splitCommas is set, a single string is split on commas.
func decodeStringList(data json.RawMessage, splitCommas bool) ([]string, error) {
	if len(data) == 0 || string(data) == "null" {
		return nil, nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		return list, nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	if s == "" {
		return nil, nil
	}
	if !splitCommas {
		return []string{s}, nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out, nil
}
