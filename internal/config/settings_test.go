package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViper(t *testing.T, overrides map[string]any) *viper.Viper {
	t.Helper()
	v := viper.New()
	SetDefaults(v)
	for k, val := range overrides {
		v.Set(k, val)
	}
	return v
}

func TestLoad_Defaults(t *testing.T) {
	s, err := Load(newViper(t, nil))
	require.NoError(t, err)

	assert.Equal(t, DefaultDatabasePath(), s.Database.Path)
	assert.Equal(t, "info", s.Logging.Level)
	assert.Equal(t, "text", s.Logging.Format)
	assert.Empty(t, s.Logging.File)
	assert.True(t, s.History.Enabled)
	assert.Equal(t, DefaultPracticeCount, s.Practice.Count)
	assert.Equal(t, "sum", s.Practice.DefaultPattern)
	assert.Equal(t, "all", s.Examples.DefaultDifficulty)
	assert.True(t, s.UI.DarkMode)
	assert.Equal(t, DefaultCacheSize, s.Cache.Size)
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
database:
  path: /tmp/mathspeak-test.db
logging:
  level: DEBUG
  format: json
history:
  enabled: false
practice:
  count: 12
  default_pattern: less_than
examples:
  default_difficulty: algebra1
ui:
  dark_mode: false
cache:
  size: 0
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	v := viper.New()
	SetDefaults(v)
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	s, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/mathspeak-test.db", s.Database.Path)
	assert.Equal(t, "debug", s.Logging.Level)
	assert.Equal(t, "json", s.Logging.Format)
	assert.False(t, s.History.Enabled)
	assert.Equal(t, 12, s.Practice.Count)
	assert.Equal(t, "less_than", s.Practice.DefaultPattern)
	assert.Equal(t, "algebra1", s.Examples.DefaultDifficulty)
	assert.False(t, s.UI.DarkMode)
	assert.Zero(t, s.Cache.Size)
}

func TestLoad_ExpandsPaths(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	s, err := Load(newViper(t, map[string]any{
		"database.path": "~/data/ms.db",
		"logging.file":  "~/logs/ms.log",
	}))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "data", "ms.db"), s.Database.Path)
	assert.Equal(t, filepath.Join(home, "logs", "ms.log"), s.Logging.File)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		overrides map[string]any
		name      string
		wantField string
	}{
		{name: "empty database path", overrides: map[string]any{"database.path": ""}, wantField: "Database.Path"},
		{name: "unknown log level", overrides: map[string]any{"logging.level": "verbose"}, wantField: "Logging.Level"},
		{name: "unknown log format", overrides: map[string]any{"logging.format": "xml"}, wantField: "Logging.Format"},
		{name: "zero practice count", overrides: map[string]any{"practice.count": 0}, wantField: "Practice.Count"},
		{name: "huge practice count", overrides: map[string]any{"practice.count": 1000}, wantField: "Practice.Count"},
		{name: "pattern without drills", overrides: map[string]any{"practice.default_pattern": "derivative"}, wantField: "Practice.DefaultPattern"},
		{name: "unknown pattern", overrides: map[string]any{"practice.default_pattern": "modulo"}, wantField: "Practice.DefaultPattern"},
		{name: "unknown difficulty", overrides: map[string]any{"examples.default_difficulty": "graduate"}, wantField: "Examples.DefaultDifficulty"},
		{name: "negative cache", overrides: map[string]any{"cache.size": -1}, wantField: "Cache.Size"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(newViper(t, tt.overrides))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid settings")
			assert.Contains(t, err.Error(), tt.wantField)
		})
	}
}
