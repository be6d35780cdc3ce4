package main

import (
	"errors"
	"log/slog"
	"net/http"
	"os"

	"github.com/dishcover/dishcover/internal/api"
	"github.com/dishcover/dishcover/internal/auth"
	"github.com/dishcover/dishcover/internal/catalog"
	"github.com/dishcover/dishcover/internal/config"
	"github.com/dishcover/dishcover/internal/service"
	"github.com/dishcover/dishcover/internal/storage/sqlite"
	"github.com/dishcover/dishcover/pkg/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := logging.Setup(cfg.Log.Level)

	store, err := sqlite.New(cfg.Storage.DBPath)
	if err != nil {
		logger.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	logger.Info("Storage initialized", "database", cfg.Storage.DBPath)

	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logger.Error("Failed to load recipe catalog", "error", err)
			os.Exit(1)
		}
		// A missing catalog is survivable: the API serves empty lists
		// until the file shows up and the server restarts.
		logger.Warn("Recipe catalog not found, starting with empty catalog", "path", cfg.Catalog.Path)
		cat = catalog.Empty()
	} else {
		logger.Info("Recipe catalog loaded", "path", cfg.Catalog.Path, "recipes", cat.Len())
	}

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	authenticator := auth.NewPasswordAuthenticator(store)

	handlers := api.NewHandlers(
		service.NewAuthService(authenticator, jwtManager, store, logger),
		service.NewRatingService(store, logger),
		service.NewFavoriteService(store, logger),
		service.NewSuggestionService(store, cat, logger),
		cat,
		logger,
	)

	router := api.NewRouter(handlers, jwtManager, cfg.Server.StaticDir, cfg.Server.CORSOrigin)

	logger.Info("Server starting", "address", cfg.Server.Addr)
	if err := http.ListenAndServe(cfg.Server.Addr, router); err != nil {
		logger.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
