package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a variant from an interactive menu",
	Long: `Start t2048 in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to play the highlighted variant.
After a game ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play variant
  Tab          - High scores
  Q            - Quit

Examples:
  t2048 menu
  t2048 menu --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(cmd *cobra.Command, _ []string) {
	base, err := loadConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog := newLogger(base, true)
	defer closeLog()

	// Open score storage
	store, err := storage.Open(base.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	width, height, _ := checkTerminal(1)
	var notice string

	// Menu loop
	for {
		result, err := tui.RunMenu(store, width, height, notice)
		notice = ""
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		width, height = result.Width, result.Height

		if result.Quit {
			return
		}

		if result.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, width, height)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			return // User quit from scoreboard
		}

		cfg := base
		if err := config.ApplyPreset(&cfg, result.Preset.Name); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}

		if _, _, err := checkTerminal(cfg.Game.Size); err != nil {
			logger.Warn("variant does not fit the terminal", "preset", result.Preset.Name, "error", err)
			notice = fmt.Sprintf("%s: %v", result.Preset.Title, err)
			continue
		}

		if err := playGame(cfg, store, logger, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}

		// Loop back to menu
	}
}
