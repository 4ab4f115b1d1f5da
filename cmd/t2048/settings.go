package main

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
)

// loadConfig resolves the effective configuration.
// Precedence: file -> environment -> preset -> flags.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	if err := config.ApplyPreset(&cfg, flagPreset); err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("size") {
		cfg.Game.Size = flagSize
	}
	if flags.Changed("win") {
		cfg.Game.WinValue = flagWin
	}
	if flags.Changed("db") {
		cfg.Storage.DBPath = flagDBPath
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
	if flags.Changed("log-file") {
		cfg.Log.File = flagLogFile
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newLogger creates a logger for cfg. With toFile set, output goes to the
// configured log file, since the TUI owns the terminal. The returned
// function closes the file.
func newLogger(cfg config.Config, toFile bool) (*log.Logger, func()) {
	var w io.Writer = os.Stderr
	closeFn := func() {}

	if toFile {
		f, err := cfg.Log.OpenFile()
		if err != nil {
			// The TUI owns stderr
			w = io.Discard
		} else {
			w = f
			closeFn = func() { f.Close() }
		}
	}

	logger, err := cfg.Log.NewLogger(w)
	if err != nil {
		// Level was validated by loadConfig
		logger = log.New(w)
	}
	return logger, closeFn
}

// gameSeed returns the --seed flag, or a time-based seed when unset.
func gameSeed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}
