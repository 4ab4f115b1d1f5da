package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Re-run a saved replay",
	Long: `Replays a YAML file saved with Ctrl+S during play and prints the
final state. The same seed and actions always give the same result.

Examples:
  t2048 replay ~/.t2048/replays/4x4-2048_20260101_120000.yaml
  t2048 replay game.yaml --log-level debug`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

// replayResult is what the replay command prints.
type replayResult struct {
	State    t2048.GameStateType `yaml:"state"`
	Score    int                 `yaml:"score"`
	Best     int                 `yaml:"best"`
	MaxTile  int                 `yaml:"max_tile"`
	Actions  int                 `yaml:"actions"`
	Grid     t2048.Grid          `yaml:"grid,flow"`
	Variant  string              `yaml:"variant"`
	Replayed string              `yaml:"file"`
}

func runReplay(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger, closeLog := newLogger(cfg, false)
	defer closeLog()

	r, err := readReplay(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	snap, err := r.Run(t2048.WithLogger(logger))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	out, err := yaml.Marshal(replayResult{
		State:    snap.State(),
		Score:    snap.Score,
		Best:     snap.Best,
		MaxTile:  snap.MaxTile(),
		Actions:  len(r.Actions),
		Grid:     snap.Grid,
		Variant:  r.Config().Variant(),
		Replayed: args[0],
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(string(out))
}

// readReplay loads a replay file.
func readReplay(path string) (t2048.Replay, error) {
	var r t2048.Replay
	data, err := os.ReadFile(config.ExpandHome(path))
	if err != nil {
		return r, fmt.Errorf("replay: failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &r); err != nil {
		return r, fmt.Errorf("replay: failed to parse %s: %w", path, err)
	}
	return r, nil
}
