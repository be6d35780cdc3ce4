// Package models defines the core domain models for Dishcover.
//
// # Models
//
//   - Recipe: A catalog entry with ingredients and diet tags. The catalog
//     file is the source of truth; recipes are read-only at runtime.
//   - User: A registered account, created at signup.
//   - Rating: One user's 1-5 star rating of a recipe. At most one rating
//     exists per (user, recipe) pair at any time.
//   - Favorite: A (user, recipe) bookmark with set semantics.
//
// # Design Principles
//
//  1. Recipes are referenced everywhere by their canonical ID, computed
//     once at catalog load (explicit id, falling back to title, then name).
//     Ratings and favorites store that ID and never re-derive it.
//  2. Avoid circular references: models hold ID strings, not pointers.
//  3. Aggregates (average rating, rating counts) are derived values and
//     never stored on the models themselves.
package models
