// Package testutil provides shared fixtures for backend tests.
package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"yayayum/internal/config"
	"yayayum/internal/database"

	"gorm.io/gorm"
)

// TestConfig returns a config pointing at a SQLite file inside dir.
func TestConfig(dir string) *config.Config {
	return &config.Config{
		Port:                     "3000",
		Env:                      "test",
		DBDriver:                 config.DriverSQLite,
		SQLitePath:               filepath.Join(dir, "yayayum_test.db"),
		DBMaxOpenConns:           4,
		DBMaxIdleConns:           4,
		DBConnMaxLifetimeMinutes: 5,
		DBSchemaMode:             database.SchemaModeSQL,
		AllowedOrigins:           "http://localhost:5173",
		RateLimitPerMinute:       120,
		TracingSampleRatio:       1,
	}
}

// NewSQLiteDB opens a fresh SQLite database in a temp dir, applies the
// embedded migrations and closes the pool when the test ends.
func NewSQLiteDB(t testing.TB) *gorm.DB {
	t.Helper()

	cfg := TestConfig(t.TempDir())
	db, err := database.Connect(cfg)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = database.Close(db) })

	if err := database.ApplySchema(context.Background(), db, cfg); err != nil {
		t.Fatalf("apply schema: %v", err)
	}
	return db
}
