package tui

import (
	"context"
	"time"

	"github.com/Veraticus/mathspeak/internal/model"
	"github.com/Veraticus/mathspeak/internal/tui/themes"
)

// SubmitFunc grades and records one answer.
type SubmitFunc func(ctx context.Context, item model.PracticeItem, answer string) (model.PracticeAttempt, error)

// Config holds TUI configuration.
type Config struct {
	Theme         themes.Theme
	Submit        SubmitFunc
	Width         int
	Height        int
	SubmitTimeout time.Duration
	AltScreen     bool
	ShowHelp      bool
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Theme:         themes.Default,
		Width:         80,
		Height:        24,
		SubmitTimeout: 5 * time.Second,
		AltScreen:     true,
		ShowHelp:      true,
	}
}

// WithTheme sets the color theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithSubmit sets the function that grades and records answers.
func WithSubmit(submit SubmitFunc) Option {
	return func(c *Config) {
		c.Submit = submit
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

// WithAltScreen controls whether the session takes over the whole terminal.
func WithAltScreen(enabled bool) Option {
	return func(c *Config) {
		c.AltScreen = enabled
	}
}

// WithHelp toggles the full help view on start.
func WithHelp(show bool) Option {
	return func(c *Config) {
		c.ShowHelp = show
	}
}
