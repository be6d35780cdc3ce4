package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"
	"github.com/go-playground/validator/v10"

	"github.com/dishcover/dishcover/internal/auth"
	"github.com/dishcover/dishcover/internal/catalog"
	"github.com/dishcover/dishcover/internal/middleware"
	"github.com/dishcover/dishcover/internal/service"
)

// Handlers holds the HTTP endpoints and their service dependencies.
type Handlers struct {
	authService       *service.AuthService
	ratingService     *service.RatingService
	favoriteService   *service.FavoriteService
	suggestionService *service.SuggestionService
	catalog           *catalog.Catalog
	validate          *validator.Validate
	logger            *slog.Logger
}

func NewHandlers(
	authService *service.AuthService,
	ratingService *service.RatingService,
	favoriteService *service.FavoriteService,
	suggestionService *service.SuggestionService,
	cat *catalog.Catalog,
	logger *slog.Logger,
) *Handlers {
	return &Handlers{
		authService:       authService,
		ratingService:     ratingService,
		favoriteService:   favoriteService,
		suggestionService: suggestionService,
		catalog:           cat,
		validate:          validator.New(validator.WithRequiredStructEnabled()),
		logger:            logger.With("component", "api"),
	}
}

type credentialsRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type toggleFavoriteRequest struct {
	RecipeID string `json:"recipeId" validate:"required"`
}

type rateRequest struct {
	RecipeID string `json:"recipeId" validate:"required"`
	// Range is checked by the rating service so out-of-range submissions
	// get a precise error.
	Rating int `json:"rating"`
}

// decode unmarshals and validates the request body, writing a 400 response
// itself when the body is unusable.
func (h *Handlers) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		writeError(w, http.StatusBadRequest, "missing or invalid fields")
		return false
	}
	return true
}

// Signup handles POST /api/signup.
func (h *Handlers) Signup(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if !h.decode(w, r, &req) {
		return
	}

	user, token, err := h.authService.Signup(r.Context(), req.Email, req.Password)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeOK(w, envelope{"token": token, "email": user.Email})
}

// Login handles POST /api/login.
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if !h.decode(w, r, &req) {
		return
	}

	user, token, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeOK(w, envelope{"token": token, "email": user.Email})
}

// Me handles GET /api/me.
func (h *Handlers) Me(w http.ResponseWriter, r *http.Request) {
	user, err := h.authService.Me(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeOK(w, envelope{"email": user.Email})
}

// Favorites handles GET /api/favorites.
func (h *Handlers) Favorites(w http.ResponseWriter, r *http.Request) {
	favorites, err := h.favoriteService.List(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeOK(w, envelope{"favorites": favorites})
}

// ToggleFavorite handles POST /api/favorites/toggle.
func (h *Handlers) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	var req toggleFavoriteRequest
	if !h.decode(w, r, &req) {
		return
	}

	favorites, err := h.favoriteService.Toggle(r.Context(), middleware.GetUserID(r.Context()), req.RecipeID)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeOK(w, envelope{"favorites": favorites})
}

// Rate handles POST /api/rate.
func (h *Handlers) Rate(w http.ResponseWriter, r *http.Request) {
	var req rateRequest
	if !h.decode(w, r, &req) {
		return
	}

	stats, err := h.ratingService.SubmitRating(r.Context(), middleware.GetUserID(r.Context()), req.RecipeID, req.Rating)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeOK(w, envelope{"stats": stats})
}

// RecipeRatings handles GET /api/ratings/recipe/{id}.
func (h *Handlers) RecipeRatings(w http.ResponseWriter, r *http.Request) {
	stats, err := h.ratingService.RecipeStats(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeOK(w, envelope{"stats": stats})
}

// Suggestions handles GET /api/suggestions. Anonymous and invalid-token
// requests get the fallback ranking rather than an error.
func (h *Handlers) Suggestions(w http.ResponseWriter, r *http.Request) {
	suggestions := h.suggestionService.Suggest(r.Context(), middleware.GetUserID(r.Context()))
	writeOK(w, envelope{"suggestions": suggestions})
}

// Recipes handles GET /api/recipes. A server running without a catalog
// file reports 404 so the client can tell "no catalog" from "empty".
func (h *Handlers) Recipes(w http.ResponseWriter, r *http.Request) {
	if h.catalog.Len() == 0 {
		writeError(w, http.StatusNotFound, "recipe catalog not available")
		return
	}
	writeOK(w, envelope{"recipes": h.catalog.Recipes()})
}

// Health handles GET /api/health.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeOK(w, envelope{})
}

// writeServiceError maps service and auth errors to HTTP responses.
// Validation failures are 400, credential failures 401, duplicate accounts
// 409; anything else is a storage or internal fault and stays opaque.
func (h *Handlers) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidRating),
		errors.Is(err, service.ErrMissingUserID),
		errors.Is(err, service.ErrMissingRecipeID),
		errors.Is(err, auth.ErrWeakPassword):
		writeError(w, http.StatusBadRequest, err.Error())

	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrMissingToken):
		writeError(w, http.StatusUnauthorized, err.Error())

	case errors.Is(err, auth.ErrEmailExists):
		writeError(w, http.StatusConflict, err.Error())

	default:
		h.logger.Error("request failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
