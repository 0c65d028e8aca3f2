// Package config provides YAML-based configuration loading for the quest:
// application settings and the embedded default level catalog.
package config

import "time"

// AppConfig contains all settings of the application.
type AppConfig struct {
	Leaderboard LeaderboardConfig `yaml:"leaderboard"`
	Timing      TimingConfig      `yaml:"timing"`
	History     HistoryConfig     `yaml:"history"`
	Log         LogConfig         `yaml:"log"`
}

// LeaderboardConfig defines where and how results are written.
type LeaderboardConfig struct {
	Path        string `yaml:"path"`
	UnitLabel   string `yaml:"unit_label"`
	RecentLimit int    `yaml:"recent_limit"` // Lines shown on the leaderboard screen
}

// TimingConfig defines frame rate and timed UI transitions.
type TimingConfig struct {
	TickRate     int `yaml:"tick_rate"`
	TransitionMs int `yaml:"transition_ms"` // Pause after a level is cleared
	BlinkMs      int `yaml:"blink_ms"`      // Cursor blink period in the name prompt
}

// HistoryConfig defines the SQLite archive of finished sessions.
type HistoryConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// LogConfig defines the operational log written while the TUI is running.
type LogConfig struct {
	Path  string `yaml:"path"`
	Level string `yaml:"level"` // debug, info, warn, error
}

// TransitionDelay returns the level transition pause as a duration.
func (t TimingConfig) TransitionDelay() time.Duration {
	return time.Duration(t.TransitionMs) * time.Millisecond
}

// BlinkInterval returns the cursor blink period as a duration.
func (t TimingConfig) BlinkInterval() time.Duration {
	return time.Duration(t.BlinkMs) * time.Millisecond
}

// fillDefaults replaces zero values with stock settings so a partial file
// still yields a usable config.
func (c *AppConfig) fillDefaults() {
	def := DefaultAppConfig()

	if c.Leaderboard.Path == "" {
		c.Leaderboard.Path = def.Leaderboard.Path
	}
	if c.Leaderboard.UnitLabel == "" {
		c.Leaderboard.UnitLabel = def.Leaderboard.UnitLabel
	}
	if c.Leaderboard.RecentLimit <= 0 {
		c.Leaderboard.RecentLimit = def.Leaderboard.RecentLimit
	}
	if c.Timing.TickRate <= 0 {
		c.Timing.TickRate = def.Timing.TickRate
	}
	if c.Timing.TransitionMs < 0 {
		c.Timing.TransitionMs = def.Timing.TransitionMs
	}
	if c.Timing.BlinkMs <= 0 {
		c.Timing.BlinkMs = def.Timing.BlinkMs
	}
	if c.History.Path == "" {
		c.History.Path = def.History.Path
	}
	if c.Log.Path == "" {
		c.Log.Path = def.Log.Path
	}
	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
}
