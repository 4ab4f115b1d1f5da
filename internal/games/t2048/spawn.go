package t2048

import (
	"math/rand"
	"time"
)

// DefaultSpawn2Prob is the probability that a spawned tile is a 2 rather
// than a 4.
const DefaultSpawn2Prob = 0.9

// Source yields uniform values in [0, 1). *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// SourceFunc adapts a plain function to Source.
type SourceFunc func() float64

// Float64 calls f.
func (f SourceFunc) Float64() float64 {
	return f()
}

// NewSource returns a deterministic source for the given seed.
func NewSource(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// DefaultSource returns a time-seeded source.
func DefaultSource() *rand.Rand {
	return NewSource(time.Now().UnixNano())
}

// Spawn describes a tile placed by a Spawner.
type Spawn struct {
	Cell  Cell
	Value int
}

// Spawner places new tiles into empty cells.
type Spawner struct {
	// Spawn2Prob is the chance of placing a 2; otherwise a 4 is placed.
	Spawn2Prob float64
}

// Place puts one tile into a random empty cell of g.
// The cell index is floor(rng*len(empty)) over the row-major empty list,
// then a second draw below Spawn2Prob picks 2, anything else picks 4.
// Returns false without touching g when the grid is full.
func (s Spawner) Place(g Grid, rng Source) (Spawn, bool) {
	cells := EmptyCells(g)
	if len(cells) == 0 {
		return Spawn{}, false
	}

	idx := int(rng.Float64() * float64(len(cells)))
	if idx >= len(cells) {
		// Guard against sources returning exactly 1.0
		idx = len(cells) - 1
	}
	cell := cells[idx]

	value := 2
	if rng.Float64() >= s.Spawn2Prob {
		value = 4
	}

	g[cell.Row][cell.Col] = value
	return Spawn{Cell: cell, Value: value}, true
}

// AddRandomTile places a 2 (90%) or a 4 (10%) into a random empty cell.
// It mutates and returns g. A full grid is returned unchanged.
func AddRandomTile(g Grid, rng Source) Grid {
	Spawner{Spawn2Prob: DefaultSpawn2Prob}.Place(g, rng)
	return g
}
