package config

import (
	"fmt"
	"strings"
)

// Preset is a named rule variant.
type Preset struct {
	Name       string
	Title      string
	Size       int
	WinValue   int
	Spawn2Prob float64 // Probability of spawning 2 instead of 4 (0.0-1.0)
}

// Presets lists the built-in variants. Targets are chosen to be reachable
// on their grid size; "hard" spawns more 4s.
var Presets = []Preset{
	{Name: "classic", Title: "Classic 2048", Size: 4, WinValue: 2048, Spawn2Prob: 0.9},
	{Name: "mini", Title: "Mini 3x3", Size: 3, WinValue: 256, Spawn2Prob: 0.9},
	{Name: "large", Title: "Large 5x5", Size: 5, WinValue: 4096, Spawn2Prob: 0.9},
	{Name: "huge", Title: "Huge 6x6", Size: 6, WinValue: 8192, Spawn2Prob: 0.9},
	{Name: "hard", Title: "Hard Spawns", Size: 4, WinValue: 2048, Spawn2Prob: 0.75},
}

// LookupPreset returns the preset with the given name (case-insensitive).
func LookupPreset(name string) (Preset, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, p := range Presets {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}

// PresetNames returns the names of all presets.
func PresetNames() []string {
	names := make([]string, len(Presets))
	for i, p := range Presets {
		names[i] = p.Name
	}
	return names
}

// ApplyPreset modifies the game rules based on a named preset.
// An empty name leaves cfg untouched.
func ApplyPreset(cfg *Config, name string) error {
	if name == "" {
		return nil
	}
	p, ok := LookupPreset(name)
	if !ok {
		return fmt.Errorf("config: unknown preset %q (available: %s)", name, strings.Join(PresetNames(), ", "))
	}
	cfg.Game.Size = p.Size
	cfg.Game.WinValue = p.WinValue
	cfg.Game.Spawn2Prob = p.Spawn2Prob
	return nil
}
