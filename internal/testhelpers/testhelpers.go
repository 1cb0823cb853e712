package testhelpers

import (
	"context"
	"testing"

	"gorm.io/gorm"

	"housemax/internal/core/database"
)

// NewTestDB returns a migrated in-memory SQLite store opened the same way as
// production. It is closed when the test completes.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.NewGorm(database.Opts{Driver: "sqlite", DSN: ":memory:", LogLevel: "silent"})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() {
		_ = database.Close(db)
	})

	if err := database.Migrate(context.Background(), db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return db
}
