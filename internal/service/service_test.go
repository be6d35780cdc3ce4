package service

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/dishcover/dishcover/internal/catalog"
	"github.com/dishcover/dishcover/internal/models"
	"github.com/dishcover/dishcover/internal/storage"
	"github.com/dishcover/dishcover/internal/storage/sqlite"
)

func setupTestStore(t *testing.T) storage.Store {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func createTestUser(t *testing.T, store storage.Store, email string) *models.User {
	t.Helper()

	user := models.NewUser(email, "not-a-real-hash")
	if err := store.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("failed to create user %s: %v", email, err)
	}
	return user
}

func loadTestCatalog(t *testing.T, recipesJSON string) *catalog.Catalog {
	t.Helper()

	path := filepath.Join(t.TempDir(), "recipes.json")
	if err := os.WriteFile(path, []byte(recipesJSON), 0o644); err != nil {
		t.Fatalf("failed to write catalog file: %v", err)
	}
	cat, err := catalog.Load(path)
	if err != nil {
		t.Fatalf("failed to load catalog: %v", err)
	}
	return cat
}
