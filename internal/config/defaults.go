package config

import (
	_ "embed"
)

//go:embed defaults/quest.yaml
var defaultQuestYAML []byte

//go:embed defaults/levels.yaml
var defaultLevelsYAML []byte

// DefaultAppConfig returns the built-in settings.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		Leaderboard: LeaderboardConfig{
			Path:        "~/.pharmacy-quest/leaderboard.txt",
			UnitLabel:   "очков",
			RecentLimit: 10,
		},
		Timing: TimingConfig{
			TickRate:     60,
			TransitionMs: 500,
			BlinkMs:      500,
		},
		History: HistoryConfig{
			Enabled: true,
			Path:    "~/.pharmacy-quest/history.db",
		},
		Log: LogConfig{
			Path:  "~/.pharmacy-quest/quest.log",
			Level: "info",
		},
	}
}

// DefaultLevelsYAML returns the embedded level catalog.
func DefaultLevelsYAML() []byte {
	return defaultLevelsYAML
}

// DefaultConfigYAML returns the embedded settings file.
func DefaultConfigYAML() []byte {
	return defaultQuestYAML
}
