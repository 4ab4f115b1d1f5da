// t2048 is the 2048 sliding-tile puzzle for the terminal.
//
// Usage:
//
//	t2048 play               - Play a game
//	t2048 menu               - Pick a variant interactively
//	t2048 presets            - List built-in variants
//	t2048 scores [variant]   - Show high scores
//	t2048 replay <file>      - Re-run a saved replay and print the result
//
// Global flags:
//
//	--config <path>    - Config YAML (default: ~/.t2048/config.yaml)
//	--preset <name>    - Rule preset: classic, mini, large, huge, hard
//	--size <n>         - Grid side length
//	--win <value>      - Winning tile value
//	--seed <value>     - RNG seed for reproducible games
//	--db <path>        - Scores database path
//	--log-level <lvl>  - debug, info, warn, error
//	--log-file <path>  - Log file used while the TUI runs
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagPreset   string
	flagSize     int
	flagWin      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 - slide and merge tiles in your terminal",
	Long: `t2048 is the 2048 puzzle for the terminal: slide the tiles, merge
equal neighbours and reach the winning tile.

Available commands:
  play     - Play a game
  menu     - Interactive variant picker
  presets  - Show built-in variants
  scores   - View high scores
  replay   - Re-run a saved replay

Examples:
  t2048 play
  t2048 play --preset mini
  t2048 play --size 5 --win 4096 --seed 42
  t2048 scores 4x4-2048
  t2048 replay ~/.t2048/replays/4x4-2048_20260101_120000.yaml`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Path to config YAML")
	pf.StringVar(&flagPreset, "preset", "", "Rule preset (see 't2048 presets')")
	pf.IntVar(&flagSize, "size", 0, "Grid side length (overrides config)")
	pf.IntVar(&flagWin, "win", 0, "Winning tile value (overrides config)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "", "Path to scores database (overrides config)")
	pf.StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Log file used while the TUI runs")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(replayCmd)
}
