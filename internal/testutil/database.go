// Package testutil provides shared fixtures for tests that need a real database.
package testutil

import (
	"context"
	"testing"

	"github.com/Veraticus/mathspeak/internal/model"
	"github.com/Veraticus/mathspeak/internal/pattern"
	"github.com/Veraticus/mathspeak/internal/storage"
)

// TestDB is a migrated in-memory database scoped to one test.
type TestDB struct {
	Storage *storage.SQLiteStorage
	t       *testing.T
}

// SetupTestDB creates a new in-memory test database.
// It automatically handles migrations and cleanup.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	store, err := storage.NewSQLiteStorage(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if err := store.Migrate(context.Background()); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	t.Cleanup(func() {
		_ = store.Close()
	})

	return &TestDB{Storage: store, t: t}
}

// SeedHistory translates and records each phrase in order, so the last
// phrase ends up first in the history.
func (db *TestDB) SeedHistory(phrases ...string) {
	db.t.Helper()
	ctx := context.Background()

	for _, phrase := range phrases {
		entry := model.NewHistoryEntry(phrase, pattern.Translate(phrase))
		if err := db.Storage.SaveTranslation(ctx, &entry); err != nil {
			db.t.Fatalf("failed to seed history %q: %v", phrase, err)
		}
	}
}

// SeedAttempts records the given attempts.
func (db *TestDB) SeedAttempts(attempts ...model.PracticeAttempt) {
	db.t.Helper()
	ctx := context.Background()

	for i := range attempts {
		if err := db.Storage.SavePracticeAttempt(ctx, &attempts[i]); err != nil {
			db.t.Fatalf("failed to seed attempt %q: %v", attempts[i].Phrase, err)
		}
	}
}
