package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

//go:embed defaults/t2048.yaml
var defaultYAML []byte

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Game: GameConfig{
			Size:       t2048.DefaultSize,
			WinValue:   t2048.DefaultWinValue,
			Spawn2Prob: t2048.DefaultSpawn2Prob,
		},
		Storage: StorageConfig{
			DBPath: "~/.t2048/scores.db",
		},
		Log: LogConfig{
			Level: "warn",
			File:  "~/.t2048/t2048.log",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
