// Package t2048 implements the rule engine for the 2048 sliding-tile puzzle
// on an N×N grid: moves and merges, random spawns, win/loss detection and a
// game session with undo and restart.
//
// The move algorithms are pure functions over Grid values. All mutable
// bookkeeping lives in Session.
package t2048

import "fmt"

// DefaultSize is the default grid dimension.
const DefaultSize = 4

// Grid is a square matrix of cells. 0 is an empty cell, any positive
// value is a tile holding a power of two.
type Grid [][]int

// Cell is a grid coordinate.
type Cell struct {
	Row int
	Col int
}

// NewGrid returns a size×size grid of empty cells.
// A size below 1 yields an empty grid that never has moves.
func NewGrid(size int) Grid {
	if size < 1 {
		return Grid{}
	}
	g := make(Grid, size)
	for r := range g {
		g[r] = make([]int, size)
	}
	return g
}

// Size returns the grid dimension.
func (g Grid) Size() int {
	return len(g)
}

// Clone returns a deep copy of the grid.
func (g Grid) Clone() Grid {
	if g == nil {
		return nil
	}
	out := make(Grid, len(g))
	for r, row := range g {
		out[r] = append([]int(nil), row...)
	}
	return out
}

// Equal reports whether both grids have the same shape and contents.
func (g Grid) Equal(other Grid) bool {
	if len(g) != len(other) {
		return false
	}
	for r := range g {
		if !rowsEqual(g[r], other[r]) {
			return false
		}
	}
	return true
}

// Validate checks that the grid is square and holds only empty cells or
// powers of two.
func (g Grid) Validate() error {
	size := len(g)
	for r, row := range g {
		if len(row) != size {
			return fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidGrid, r, len(row), size)
		}
		for c, v := range row {
			if v != 0 && !isPowerOfTwo(v) {
				return fmt.Errorf("%w: cell (%d,%d) holds %d", ErrInvalidGrid, r, c, v)
			}
		}
	}
	return nil
}

// Sum returns the total of all tile values.
func (g Grid) Sum() int {
	total := 0
	for _, row := range g {
		for _, v := range row {
			total += v
		}
	}
	return total
}

// EmptyCells returns the coordinates of all empty cells in row-major order.
// The order is relied on by the spawner for seeded reproducibility.
func EmptyCells(g Grid) []Cell {
	var cells []Cell
	for r, row := range g {
		for c, v := range row {
			if v == 0 {
				cells = append(cells, Cell{Row: r, Col: c})
			}
		}
	}
	return cells
}

// HasEmptyCell returns true if there's at least one empty cell.
func HasEmptyCell(g Grid) bool {
	for _, row := range g {
		for _, v := range row {
			if v == 0 {
				return true
			}
		}
	}
	return false
}

// HasPossibleMerge returns true if any horizontally or vertically adjacent
// tiles hold the same value.
func HasPossibleMerge(g Grid) bool {
	size := len(g)
	for r := range size {
		for c := range len(g[r]) {
			val := g[r][c]
			if val == 0 {
				continue
			}
			// Right neighbor
			if c+1 < len(g[r]) && g[r][c+1] == val {
				return true
			}
			// Bottom neighbor
			if r+1 < size && c < len(g[r+1]) && g[r+1][c] == val {
				return true
			}
		}
	}
	return false
}

// HasMoves reports whether any direction can change the grid.
// This is the only loss predicate used by Session.
func HasMoves(g Grid) bool {
	return HasEmptyCell(g) || HasPossibleMerge(g)
}

// MaxTile returns the maximum tile value on the grid, 0 when empty.
func MaxTile(g Grid) int {
	maxVal := 0
	for _, row := range g {
		for _, v := range row {
			if v > maxVal {
				maxVal = v
			}
		}
	}
	return maxVal
}

func rowsEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func isPowerOfTwo(v int) bool {
	return v > 0 && v&(v-1) == 0
}
