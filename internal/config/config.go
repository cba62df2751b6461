// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Load layers defaults, an optional YAML file, and LINEUP_ env vars.
// - Validation failures wrap ErrInvalidConfig.
package config

import (
	"fmt"
	"strings"
)

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects the log encoding: text or json.
	LogFormat string `koanf:"log_format"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// TeamSize is the number of players per team (a futsal lineup is 5).
	TeamSize int `koanf:"team_size"`

	// MaxTeams caps the num_teams accepted by POST /draws.
	MaxTeams int `koanf:"max_teams"`

	// DrawHistorySize bounds how many completed draws are kept for lookup.
	DrawHistorySize int `koanf:"draw_history_size"`

	// PhantomPrefix names the placeholder players added to short rosters.
	PhantomPrefix string `koanf:"phantom_prefix"`

	// CORSAllowedOrigins lists origins allowed to call the API from a browser.
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:           "info",
		LogFormat:          "text",
		Addr:               ":9080",
		TeamSize:           5,
		MaxTeams:           6,
		DrawHistorySize:    256,
		PhantomPrefix:      "Fill-in",
		CORSAllowedOrigins: []string{"*"},
	}
}

// Validate checks the invariants the service relies on.
func (c *Config) Validate() error {
	switch {
	case strings.TrimSpace(c.Addr) == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case c.TeamSize < 1:
		return fmt.Errorf("%w: team_size must be positive, got %d", ErrInvalidConfig, c.TeamSize)
	case c.MaxTeams < 2:
		return fmt.Errorf("%w: max_teams must be at least 2, got %d", ErrInvalidConfig, c.MaxTeams)
	case c.DrawHistorySize < 1:
		return fmt.Errorf("%w: draw_history_size must be positive, got %d", ErrInvalidConfig, c.DrawHistorySize)
	case strings.TrimSpace(c.PhantomPrefix) == "":
		return fmt.Errorf("%w: phantom_prefix must not be empty", ErrInvalidConfig)
	}
	return nil
}
