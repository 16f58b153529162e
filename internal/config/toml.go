// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Storage StorageConfig `toml:"storage"`
	Clock   ClockConfig   `toml:"clock"`
	Stats   StatsConfig   `toml:"stats"`
}

// StorageConfig maps database settings.
type StorageConfig struct {
	Path *string `toml:"path"`
}

// ClockConfig maps refresh cadences. Values are Go duration strings
// ("10s", "1m").
type ClockConfig struct {
	TickInterval     *string `toml:"tick-interval"`
	RolloverInterval *string `toml:"rollover-interval"`
}

// StatsConfig maps report settings.
type StatsConfig struct {
	RollingDays *int `toml:"rolling-days"`
	// LegacyRollingTotal restores the old rolling denominator of
	// active-days x (weekday + weekend task counts).
	LegacyRollingTotal *bool `toml:"legacy-rolling-total"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

// Settings is the resolved runtime configuration after defaults are
// applied over whatever the file provided.
type Settings struct {
	DBPath             string
	TickInterval       time.Duration
	RolloverInterval   time.Duration
	RollingDays        int
	LegacyRollingTotal bool
}

const defaultRollingDays = 30

// Resolve applies defaults over the file values. Unparseable durations
// fall back to their defaults rather than failing startup.
func Resolve(cfg FileConfig) Settings {
	s := Settings{
		DBPath:           DefaultDBPath(),
		TickInterval:     10 * time.Second,
		RolloverInterval: time.Minute,
		RollingDays:      defaultRollingDays,
	}
	if cfg.Storage.Path != nil && *cfg.Storage.Path != "" {
		s.DBPath = *cfg.Storage.Path
	}
	if d, ok := parseDuration(cfg.Clock.TickInterval); ok {
		s.TickInterval = d
	}
	if d, ok := parseDuration(cfg.Clock.RolloverInterval); ok {
		s.RolloverInterval = d
	}
	if cfg.Stats.RollingDays != nil && *cfg.Stats.RollingDays > 0 {
		s.RollingDays = *cfg.Stats.RollingDays
	}
	if cfg.Stats.LegacyRollingTotal != nil {
		s.LegacyRollingTotal = *cfg.Stats.LegacyRollingTotal
	}
	return s
}

func parseDuration(v *string) (time.Duration, bool) {
	if v == nil || *v == "" {
		return 0, false
	}
	d, err := time.ParseDuration(*v)
	if err != nil || d <= 0 {
		return 0, false
	}
	return d, true
}
