package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Veraticus/mathspeak/internal/model"
	"github.com/Veraticus/mathspeak/internal/practice"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Settings is the validated application configuration.
type Settings struct {
	Database DatabaseSettings `mapstructure:"database"`
	Logging  LoggingSettings  `mapstructure:"logging"`
	Practice PracticeSettings `mapstructure:"practice"`
	Examples ExamplesSettings `mapstructure:"examples"`
	Cache    CacheSettings    `mapstructure:"cache"`
	History  HistorySettings  `mapstructure:"history"`
	UI       UISettings       `mapstructure:"ui"`
}

// DatabaseSettings locates the SQLite database.
type DatabaseSettings struct {
	Path string `mapstructure:"path" validate:"required"`
}

// LoggingSettings configures the global slog logger.
type LoggingSettings struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn warning error"`
	Format string `mapstructure:"format" validate:"oneof=text console json"`
	File   string `mapstructure:"file"`
}

// HistorySettings controls whether translations are remembered.
type HistorySettings struct {
	Enabled bool `mapstructure:"enabled"`
}

// PracticeSettings holds drill session defaults.
type PracticeSettings struct {
	DefaultPattern string `mapstructure:"default_pattern" validate:"drillable"`
	Count          int    `mapstructure:"count" validate:"min=1,max=100"`
}

// ExamplesSettings holds corpus browsing defaults.
type ExamplesSettings struct {
	DefaultDifficulty string `mapstructure:"default_difficulty" validate:"difficulty"`
}

// UISettings selects the terminal theme.
type UISettings struct {
	DarkMode bool `mapstructure:"dark_mode"`
}

// CacheSettings sizes the translation cache. Zero disables caching.
type CacheSettings struct {
	Size int `mapstructure:"size" validate:"min=0,max=100000"`
}

// Default values for every key.
const (
	DefaultLogLevel       = "info"
	DefaultLogFormat      = "text"
	DefaultPracticeCount  = 5
	DefaultPracticeID     = string(model.PatternSum)
	DefaultCacheSize      = 256
	DefaultDifficultyName = string(model.DifficultyAll)
)

// DefaultDatabasePath returns the database location used when none is configured.
func DefaultDatabasePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "mathspeak.db")
	}
	return filepath.Join(home, ".local", "share", "mathspeak", "mathspeak.db")
}

// SetDefaults registers the default value of every settings key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("database.path", DefaultDatabasePath())
	v.SetDefault("logging.level", DefaultLogLevel)
	v.SetDefault("logging.format", DefaultLogFormat)
	v.SetDefault("logging.file", "")
	v.SetDefault("history.enabled", true)
	v.SetDefault("practice.count", DefaultPracticeCount)
	v.SetDefault("practice.default_pattern", DefaultPracticeID)
	v.SetDefault("examples.default_difficulty", DefaultDifficultyName)
	v.SetDefault("ui.dark_mode", true)
	v.SetDefault("cache.size", DefaultCacheSize)
}

// Load unmarshals v into Settings, expands paths and validates the result.
func Load(v *viper.Viper) (*Settings, error) {
	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to decode settings: %w", err)
	}

	s.Database.Path = ExpandPath(s.Database.Path)
	s.Logging.File = ExpandPath(s.Logging.File)
	s.Logging.Level = strings.ToLower(s.Logging.Level)

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks every field against its constraints.
func (s *Settings) Validate() error {
	if err := newValidator().Struct(s); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			msgs := make([]string, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				msgs = append(msgs, fmt.Sprintf("%s: failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value()))
			}
			return fmt.Errorf("invalid settings: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("invalid settings: %w", err)
	}
	return nil
}

func newValidator() *validator.Validate {
	validate := validator.New()
	_ = validate.RegisterValidation("drillable", func(fl validator.FieldLevel) bool {
		return practice.IsSupported(model.PatternID(fl.Field().String()))
	})
	_ = validate.RegisterValidation("difficulty", func(fl validator.FieldLevel) bool {
		return model.Difficulty(fl.Field().String()).IsValid()
	})
	return validate
}
