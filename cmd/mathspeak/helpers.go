package main

import (
	"context"
	"fmt"

	"github.com/Veraticus/mathspeak/internal/config"
	"github.com/Veraticus/mathspeak/internal/engine"
	"github.com/Veraticus/mathspeak/internal/model"
	"github.com/Veraticus/mathspeak/internal/storage"
)

// initStorage opens the configured database and brings its schema up to date.
func initStorage(ctx context.Context) (*storage.SQLiteStorage, error) {
	dbPath := config.DefaultDatabasePath()
	if settings != nil && settings.Database.Path != "" {
		dbPath = settings.Database.Path
	}

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// engineConfig maps settings onto the engine's options.
func engineConfig(s *config.Settings) engine.Config {
	cfg := engine.DefaultConfig()
	if s == nil {
		return cfg
	}
	cfg.DefaultPattern = model.PatternID(s.Practice.DefaultPattern)
	cfg.PracticeCount = s.Practice.Count
	cfg.CacheSize = s.Cache.Size
	cfg.HistoryEnabled = s.History.Enabled
	return cfg
}

// initEngine opens storage and builds an engine over it. The returned cleanup
// closes the database.
func initEngine(ctx context.Context, adjust ...func(*engine.Config)) (*engine.Engine, func(), error) {
	store, err := initStorage(ctx)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() { _ = store.Close() }

	cfg := engineConfig(settings)
	for _, fn := range adjust {
		fn(&cfg)
	}

	eng, err := engine.New(store, cfg)
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to create engine: %w", err)
	}
	return eng, cleanup, nil
}
