// Package config defines career configuration structures and loading hooks.
//
// Conventions:
// - Provide New(ctx) to build a Config with defaults.
// - Load layers a YAML file and environment variables over the defaults.
// - Validation failures wrap ErrInvalidConfig.
package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/okian/matchday/internal/domain/roster"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Seed drives every random draw of the career. Zero picks a seed from the clock.
	Seed int64 `koanf:"seed"`

	// DBPath is the SQLite save file.
	DBPath string `koanf:"db_path"`

	// SaveSlot names the save loaded on start and written on exit.
	SaveSlot string `koanf:"save_slot"`

	// TeamNames lists the league; UserTeamIndex picks the manager's club.
	TeamNames     []string `koanf:"team_names"`
	UserTeamIndex int      `koanf:"user_team_index"`

	// WeeksToPlay is the number of rounds advanced per run.
	WeeksToPlay int `koanf:"weeks_to_play"`

	// MarketSize is the number of players listed on each market refresh.
	MarketSize int `koanf:"market_size"`

	// WorkerCount sets the number of simulation workers. Zero uses the CPU count.
	WorkerCount int `koanf:"worker_count"`

	// MetricsFile receives a Prometheus text dump on exit when non-empty.
	MetricsFile string `koanf:"metrics_file"`

	// Balance probabilities.
	SubChance           float64 `koanf:"sub_chance"`
	StraightRedChance   float64 `koanf:"straight_red_chance"`
	FatigueInjuryChance float64 `koanf:"fatigue_injury_chance"`
}

// New creates a Config with defaults. Context is accepted first to satisfy
// the project-wide convention and is currently unused.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:            "info",
		DBPath:              "matchday.db",
		SaveSlot:            "career",
		TeamNames:           append([]string(nil), roster.DefaultLeague...),
		UserTeamIndex:       0,
		WeeksToPlay:         1,
		MarketSize:          20,
		WorkerCount:         0,
		SubChance:           0.05,
		StraightRedChance:   0.10,
		FatigueInjuryChance: 0.20,
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.DBPath) == "" {
		return fmt.Errorf("%w: db_path must not be empty", ErrInvalidConfig)
	}
	if strings.TrimSpace(c.SaveSlot) == "" {
		return fmt.Errorf("%w: save_slot must not be empty", ErrInvalidConfig)
	}
	if len(c.TeamNames) < 2 {
		return fmt.Errorf("%w: team_names needs at least two teams", ErrInvalidConfig)
	}
	if c.UserTeamIndex < 0 || c.UserTeamIndex >= len(c.TeamNames) {
		return fmt.Errorf("%w: user_team_index %d out of range", ErrInvalidConfig, c.UserTeamIndex)
	}
	if c.WeeksToPlay < 0 {
		return fmt.Errorf("%w: weeks_to_play must not be negative", ErrInvalidConfig)
	}
	if c.MarketSize < 0 {
		return fmt.Errorf("%w: market_size must not be negative", ErrInvalidConfig)
	}
	if c.WorkerCount < 0 {
		return fmt.Errorf("%w: worker_count must not be negative", ErrInvalidConfig)
	}
	probs := []struct {
		key string
		val float64
	}{
		{"sub_chance", c.SubChance},
		{"straight_red_chance", c.StraightRedChance},
		{"fatigue_injury_chance", c.FatigueInjuryChance},
	}
	for _, p := range probs {
		if p.val < 0 || p.val > 1 {
			return fmt.Errorf("%w: %s must be within [0,1], got %v", ErrInvalidConfig, p.key, p.val)
		}
	}
	return nil
}
