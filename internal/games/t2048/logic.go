package t2048

import (
	"fmt"
	"strings"
)

// Direction represents a move direction.
type Direction string

const (
	DirUp    Direction = "up"
	DirDown  Direction = "down"
	DirLeft  Direction = "left"
	DirRight Direction = "right"
)

// Directions lists every direction in a stable order.
var Directions = []Direction{DirUp, DirDown, DirLeft, DirRight}

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	switch d {
	case DirUp, DirDown, DirLeft, DirRight:
		return true
	}
	return false
}

// String returns the direction name.
func (d Direction) String() string {
	return string(d)
}

// ParseDirection converts a name ("up", "Left") or its first letter ("u",
// "L") into a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u":
		return DirUp, nil
	case "down", "d":
		return DirDown, nil
	case "left", "l":
		return DirLeft, nil
	case "right", "r":
		return DirRight, nil
	}
	return "", fmt.Errorf("t2048: unknown direction %q", s)
}

// MoveResult is the outcome of one move attempt.
type MoveResult struct {
	Grid        Grid
	ScoreGained int
	Moved       bool // Any cell changed
	Merged      bool // At least one pair merged
}

// Compress slides a line toward index 0 and merges equal neighbours.
// Each tile merges at most once, so [4 4 4 4] becomes [8 8 0 0].
// Returns the new line, whether a merge happened and the score gained.
func Compress(line []int) (out []int, merged bool, score int) {
	out = make([]int, len(line))
	writePos := 0
	canMerge := false // out[writePos-1] has not merged yet

	for _, v := range line {
		if v == 0 {
			continue
		}

		if canMerge && out[writePos-1] == v {
			// Merge with previous tile
			out[writePos-1] *= 2
			score += out[writePos-1]
			merged = true
			canMerge = false
		} else {
			// Move tile
			out[writePos] = v
			writePos++
			canMerge = true
		}
	}

	return out, merged, score
}

// Move performs a move in the given direction on a copy of g.
// The input grid is never modified. An unknown direction yields an
// unchanged copy with Moved false.
func Move(g Grid, dir Direction) MoveResult {
	work := g.Clone()
	if !dir.Valid() {
		return MoveResult{Grid: work}
	}

	// Reduce every direction to a slide toward column 0
	work = orient(work, dir)

	var result MoveResult
	for r, row := range work {
		line, merged, score := Compress(row)
		if !rowsEqual(row, line) {
			result.Moved = true
		}
		if merged {
			result.Merged = true
		}
		result.ScoreGained += score
		work[r] = line
	}

	result.Grid = restore(work, dir)
	return result
}

// CanMoveIn reports whether a move in dir would change the grid.
func CanMoveIn(g Grid, dir Direction) bool {
	return Move(g, dir).Moved
}
