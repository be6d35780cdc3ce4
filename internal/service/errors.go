package service

import "errors"

// Input validation errors. These are rejected before any state change and
// map to 400 responses at the HTTP layer. Storage failures pass through
// wrapped and map to 500.
var (
	ErrInvalidRating   = errors.New("rating must be an integer between 1 and 5")
	ErrMissingUserID   = errors.New("user id required")
	ErrMissingRecipeID = errors.New("recipe id required")
)
