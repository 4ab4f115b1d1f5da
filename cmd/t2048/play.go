package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// hudLines is the vertical space used around the board by title, stats,
// banners and help.
const hudLines = 10

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of 2048.

Controls:
  Arrows/WASD/hjkl  - Slide tiles
  U                 - Undo
  R                 - Restart
  Ctrl+S            - Save a replay to ~/.t2048/replays
  ?                 - Toggle help
  Q/Ctrl+C          - Quit

The score is saved when the game ends, or when you quit or restart
with a non-zero score.

Examples:
  t2048 play
  t2048 play --preset large
  t2048 play --size 3 --win 512
  t2048 play --seed 42 --config ./my-t2048.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height, err := checkTerminal(cfg.Game.Size)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog := newLogger(cfg, true)

	// Open score storage
	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := playGame(cfg, store, logger, width, height)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// playGame runs one recorded session in the TUI.
func playGame(cfg config.Config, store *storage.Store, logger *log.Logger, width, height int) error {
	seed := gameSeed()
	rec, err := t2048.NewRecorder(cfg.Game.SessionConfig(), seed, t2048.WithLogger(logger))
	if err != nil {
		return err
	}
	logger.Debug("session started", "variant", cfg.Game.Variant(), "seed", seed)

	return tui.Run(rec, tui.Options{
		Store:   store,
		Logger:  logger,
		Variant: cfg.Game.Variant(),
		Width:   width,
		Height:  height,
	})
}

// checkTerminal returns the terminal size and fails when a board of the
// given size cannot fit. Non-terminals report a default 80x24.
func checkTerminal(size int) (width, height int, err error) {
	width, height = 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	needW := tui.BoardWidth(size)
	needH := tui.BoardHeight(size) + hudLines
	if width < needW || height < needH {
		return width, height, fmt.Errorf("terminal is %dx%d, a %dx%d board needs at least %dx%d",
			width, height, size, size, needW, needH)
	}
	return width, height, nil
}
