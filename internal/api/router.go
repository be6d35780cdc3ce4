package api

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dishcover/dishcover/internal/auth"
	"github.com/dishcover/dishcover/internal/middleware"
)

// credentialRateLimit caps signup/login attempts per client IP.
const (
	credentialRateLimit  = 10
	credentialRateWindow = time.Minute
)

// NewRouter assembles the full HTTP surface: the JSON API under /api,
// Prometheus metrics at /metrics, and the web client from staticDir.
func NewRouter(h *Handlers, jwtManager *auth.JWTManager, staticDir, corsOrigin string) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestLogger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{corsOrigin},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(httprate.LimitByIP(credentialRateLimit, credentialRateWindow))
			r.Post("/signup", h.Signup)
			r.Post("/login", h.Login)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth(jwtManager))
			r.Get("/me", h.Me)
			r.Get("/favorites", h.Favorites)
			r.Post("/favorites/toggle", h.ToggleFavorite)
			r.Post("/rate", h.Rate)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.OptionalAuth(jwtManager))
			r.Get("/suggestions", h.Suggestions)
		})

		r.Get("/ratings/recipe/{id}", h.RecipeRatings)
		r.Get("/recipes", h.Recipes)
		r.Get("/health", h.Health)
	})

	r.Handle("/metrics", promhttp.Handler())

	if staticDir != "" {
		r.NotFound(spaHandler(staticDir))
	}

	return r
}

// spaHandler serves files from dir and falls back to index.html for
// client-side routes. API paths never reach here because chi matches
// registered routes first.
func spaHandler(dir string) http.HandlerFunc {
	fileServer := http.FileServer(http.Dir(dir))

	return func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/") {
			writeError(w, http.StatusNotFound, "not found")
			return
		}

		path := filepath.Join(dir, filepath.Clean("/"+r.URL.Path))
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			fileServer.ServeHTTP(w, r)
			return
		}

		http.ServeFile(w, r, filepath.Join(dir, "index.html"))
	}
}
