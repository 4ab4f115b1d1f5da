package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	flagLimit       int
	flagClear       bool
	flagInteractive bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show high scores",
	Long: `Display the top high scores for a variant such as 4x4-2048.
Without an argument the variant of the current configuration is shown.

Examples:
  t2048 scores
  t2048 scores 3x3-256 --limit 20
  t2048 scores --preset large
  t2048 scores --interactive
  t2048 scores 4x4-2048 --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagLimit, "limit", "n", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores of the variant")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in the TUI scoreboard")
}

func runScores(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	variant := cfg.Game.Variant()
	if len(args) == 1 {
		variant = args[0]
	}

	// Open score storage
	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagInteractive:
		width, height, _ := checkTerminal(1)
		if _, err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	case flagClear:
		if err := store.ClearScores(variant); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		fmt.Printf("Cleared scores for %s\n", variant)
	default:
		if err := printScores(store, variant, flagLimit); err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		}
	}
}

func printScores(store *storage.Store, variant string, limit int) error {
	scores, err := store.TopScores(variant, limit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", variant)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 't2048 play' to set the first high score!")
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %-3s  %s\n", "Rank", "Score", "Tile", "Moves", "Won", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %-3s  %s\n", "----", "-----", "----", "-----", "---", "----")

	for i, e := range scores {
		won := ""
		if e.Won {
			won = "yes"
		}
		dateStr := e.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-6d  %-6d  %-3s  %s\n", i+1, e.Score, e.MaxTile, e.Moves, won, dateStr)
	}

	stats, err := store.Stats(variant)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Best: %d  Games: %d  Wins: %d  Best tile: %d  Average: %.0f\n",
		stats.HighScore, stats.Games, stats.Wins, stats.BestTile, stats.AvgScore)
	return nil
}
