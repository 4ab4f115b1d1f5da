package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List built-in rule variants",
	Long:  `Shows the rule presets accepted by --preset.`,
	Args:  cobra.NoArgs,
	Run:   runPresets,
}

func runPresets(_ *cobra.Command, _ []string) {
	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, p := range config.Presets {
		if len(p.Name) > maxNameLen {
			maxNameLen = len(p.Name)
		}
	}

	fmt.Println("Available presets:")
	fmt.Println()

	// Print header
	fmt.Printf("  %-*s  %-5s  %-6s  %-6s  %s\n", maxNameLen, "Name", "Grid", "Target", "P(2)", "Title")
	fmt.Printf("  %-*s  %-5s  %-6s  %-6s  %s\n", maxNameLen, "----", "----", "------", "----", "-----")

	for _, p := range config.Presets {
		grid := fmt.Sprintf("%dx%d", p.Size, p.Size)
		fmt.Printf("  %-*s  %-5s  %-6d  %-6.2f  %s\n", maxNameLen, p.Name, grid, p.WinValue, p.Spawn2Prob, p.Title)
	}

	fmt.Println()
	fmt.Println("Run 't2048 play --preset <name>' to play a variant.")
}
