package t2048

// RotateRight returns the grid turned 90° clockwise.
// Cell (r, c) of a size-S grid lands at (c, S-1-r).
func RotateRight(g Grid) Grid {
	size := len(g)
	out := NewGrid(size)
	for r := range size {
		for c := range size {
			out[c][size-1-r] = g[r][c]
		}
	}
	return out
}

// RotateLeft returns the grid turned 90° counter-clockwise, the inverse of
// RotateRight.
func RotateLeft(g Grid) Grid {
	size := len(g)
	out := NewGrid(size)
	for r := range size {
		for c := range size {
			out[size-1-c][r] = g[r][c]
		}
	}
	return out
}

// ReverseRows returns a copy of the grid with every row reversed.
// Rows keep their index.
func ReverseRows(g Grid) Grid {
	out := make(Grid, len(g))
	for r, row := range g {
		out[r] = reverseRow(row)
	}
	return out
}

// reverseRow returns a reversed copy of a row.
func reverseRow(row []int) []int {
	n := len(row)
	out := make([]int, n)
	for i := range n {
		out[i] = row[n-1-i]
	}
	return out
}

// orient turns the grid so that travel in dir becomes travel toward
// column 0. restore undoes it.
func orient(g Grid, dir Direction) Grid {
	switch dir {
	case DirUp:
		return RotateLeft(g)
	case DirDown:
		return RotateRight(g)
	case DirRight:
		return ReverseRows(g)
	default:
		return g
	}
}

// restore is the inverse of orient.
func restore(g Grid, dir Direction) Grid {
	switch dir {
	case DirUp:
		return RotateRight(g)
	case DirDown:
		return RotateLeft(g)
	case DirRight:
		return ReverseRows(g)
	default:
		return g
	}
}
