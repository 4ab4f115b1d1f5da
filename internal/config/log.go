package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// ParseLevel parses a log level name. An empty name means warn.
func ParseLevel(name string) (log.Level, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return log.WarnLevel, nil
	}
	lvl, err := log.ParseLevel(name)
	if err != nil {
		return lvl, fmt.Errorf("config: invalid log level %q: %w", name, err)
	}
	return lvl, nil
}

// NewLogger creates a logger writing to w at the configured level.
func (l LogConfig) NewLogger(w io.Writer) (*log.Logger, error) {
	lvl, err := ParseLevel(l.Level)
	if err != nil {
		return nil, err
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "t2048",
		Level:           lvl,
	}), nil
}

// OpenFile opens the configured log file for appending, creating its
// directory. The TUI owns stdout and stderr while a game runs.
func (l LogConfig) OpenFile() (*os.File, error) {
	path := ExpandHome(l.File)
	if path == "" {
		return nil, fmt.Errorf("config: log.file must not be empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("config: failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("config: failed to open log file: %w", err)
	}
	return f, nil
}
