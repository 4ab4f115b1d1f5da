// Package config provides YAML-based configuration loading, environment
// overrides and the built-in game presets for t2048.
package config

import (
	"fmt"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

// Config contains all configuration for the 2048 host.
type Config struct {
	Game    GameConfig    `yaml:"game"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
}

// GameConfig defines the rules of a session.
type GameConfig struct {
	Size         int     `yaml:"size" env:"SIZE"`
	WinValue     int     `yaml:"win_value" env:"WIN_VALUE"`
	Spawn2Prob   float64 `yaml:"spawn_two_probability" env:"SPAWN_TWO_PROBABILITY"`
	HistoryLimit int     `yaml:"history_limit" env:"HISTORY_LIMIT"` // 0 = unbounded undo
}

// StorageConfig defines where scores are kept.
type StorageConfig struct {
	DBPath string `yaml:"db_path" env:"DB_PATH"`
}

// LogConfig defines logging output.
type LogConfig struct {
	Level string `yaml:"level" env:"LOG_LEVEL"` // debug, info, warn, error
	File  string `yaml:"file" env:"LOG_FILE"`   // Used while the TUI owns the terminal
}

// SessionConfig converts the game section into engine configuration.
func (g GameConfig) SessionConfig() t2048.Config {
	return t2048.Config{
		Size:         g.Size,
		WinValue:     g.WinValue,
		Spawn2Prob:   g.Spawn2Prob,
		HistoryLimit: g.HistoryLimit,
	}
}

// Variant returns the score table key for these rules, e.g. "4x4-2048"
// or "4x4-2048-p75" for a non-default spawn probability.
func (g GameConfig) Variant() string {
	return g.SessionConfig().Variant()
}

// Validate checks the configuration before a session is built.
func (c Config) Validate() error {
	if err := c.Game.SessionConfig().Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Storage.DBPath == "" {
		return fmt.Errorf("config: storage.db_path must not be empty")
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}
