package t2048

import (
	"slices"
	"testing"
)

func TestCompress(t *testing.T) {
	tests := []struct {
		name     string
		input    []int
		expected []int
		merged   bool
		score    int
	}{
		{
			name:     "simple merge",
			input:    []int{2, 2, 0, 0},
			expected: []int{4, 0, 0, 0},
			merged:   true,
			score:    4,
		},
		{
			name:     "merge with trailing tile",
			input:    []int{2, 2, 2, 0},
			expected: []int{4, 2, 0, 0},
			merged:   true,
			score:    4,
		},
		{
			name:     "double merge",
			input:    []int{2, 2, 2, 2},
			expected: []int{4, 4, 0, 0},
			merged:   true,
			score:    8,
		},
		{
			name:     "no merge possible",
			input:    []int{2, 4, 8, 16},
			expected: []int{2, 4, 8, 16},
		},
		{
			name:     "slide with gap",
			input:    []int{0, 0, 2, 2},
			expected: []int{4, 0, 0, 0},
			merged:   true,
			score:    4,
		},
		{
			name:     "slide with multiple gaps",
			input:    []int{2, 0, 0, 2},
			expected: []int{4, 0, 0, 0},
			merged:   true,
			score:    4,
		},
		{
			name:     "merged tile does not merge again",
			input:    []int{4, 4, 8, 0},
			expected: []int{8, 8, 0, 0},
			merged:   true,
			score:    8,
		},
		{
			name:     "no change needed",
			input:    []int{4, 2, 0, 0},
			expected: []int{4, 2, 0, 0},
		},
		{
			name:     "empty row",
			input:    []int{0, 0, 0, 0},
			expected: []int{0, 0, 0, 0},
		},
		{
			name:     "single tile",
			input:    []int{0, 4, 0, 0},
			expected: []int{4, 0, 0, 0},
		},
		{
			name:     "longer line",
			input:    []int{2, 2, 0, 4, 4, 8},
			expected: []int{4, 8, 8, 0, 0, 0},
			merged:   true,
			score:    12,
		},
		{
			name:     "single cell",
			input:    []int{2},
			expected: []int{2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := slices.Clone(tt.input)
			result, merged, score := Compress(tt.input)
			if !slices.Equal(result, tt.expected) {
				t.Errorf("Compress(%v) = %v, want %v", tt.input, result, tt.expected)
			}
			if merged != tt.merged {
				t.Errorf("Compress(%v) merged = %v, want %v", tt.input, merged, tt.merged)
			}
			if score != tt.score {
				t.Errorf("Compress(%v) score = %d, want %d", tt.input, score, tt.score)
			}
			if !slices.Equal(tt.input, before) {
				t.Errorf("Compress modified its input: %v, was %v", tt.input, before)
			}
		})
	}
}

func TestCompressConservesTileSum(t *testing.T) {
	lines := [][]int{
		{2, 2, 2, 2},
		{0, 4, 4, 4},
		{8, 0, 8, 16},
		{2, 4, 8, 16},
		{0, 0, 0, 0},
	}

	for _, line := range lines {
		before := Grid{line}.Sum()
		out, _, score := Compress(line)
		if after := (Grid{out}).Sum(); after != before {
			t.Errorf("Compress(%v) sum = %d, want %d", line, after, before)
		}

		// Merged tiles are at least 4, so any score is a multiple of 4
		if score%4 != 0 {
			t.Errorf("Compress(%v) score %d is not a sum of merged tiles", line, score)
		}
	}
}

func TestMoveLeft(t *testing.T) {
	board := Grid{
		{2, 2, 0, 0},
		{4, 0, 4, 0},
		{2, 2, 2, 2},
		{0, 0, 0, 2},
	}

	expected := Grid{
		{4, 0, 0, 0},
		{8, 0, 0, 0},
		{4, 4, 0, 0},
		{2, 0, 0, 0},
	}

	result := Move(board, DirLeft)

	if !result.Grid.Equal(expected) {
		t.Errorf("Move left: got\n%v\nwant\n%v", result.Grid, expected)
	}
	if !result.Moved {
		t.Error("Move left should indicate board changed")
	}
	if !result.Merged {
		t.Error("Move left should indicate a merge")
	}

	expectedScore := 4 + 8 + 8
	if result.ScoreGained != expectedScore {
		t.Errorf("Move left score = %d, want %d", result.ScoreGained, expectedScore)
	}
}

func TestMoveRight(t *testing.T) {
	board := Grid{
		{2, 2, 0, 0},
		{4, 0, 4, 0},
		{2, 2, 2, 2},
		{0, 0, 0, 2},
	}

	expected := Grid{
		{0, 0, 0, 4},
		{0, 0, 0, 8},
		{0, 0, 4, 4},
		{0, 0, 0, 2},
	}

	result := Move(board, DirRight)

	if !result.Grid.Equal(expected) {
		t.Errorf("Move right: got\n%v\nwant\n%v", result.Grid, expected)
	}
	if !result.Moved {
		t.Error("Move right should indicate board changed")
	}
}

func TestMoveUp(t *testing.T) {
	board := Grid{
		{2, 4, 2, 0},
		{2, 0, 2, 0},
		{0, 4, 2, 0},
		{0, 0, 2, 2},
	}

	expected := Grid{
		{4, 8, 4, 2},
		{0, 0, 4, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	result := Move(board, DirUp)

	if !result.Grid.Equal(expected) {
		t.Errorf("Move up: got\n%v\nwant\n%v", result.Grid, expected)
	}
	if !result.Moved {
		t.Error("Move up should indicate board changed")
	}
	if result.ScoreGained != 4+8+4+4 {
		t.Errorf("Move up score = %d, want 20", result.ScoreGained)
	}
}

func TestMoveDown(t *testing.T) {
	board := Grid{
		{2, 4, 2, 2},
		{2, 0, 2, 0},
		{0, 4, 2, 0},
		{0, 0, 2, 0},
	}

	expected := Grid{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 4, 0},
		{4, 8, 4, 2},
	}

	result := Move(board, DirDown)

	if !result.Grid.Equal(expected) {
		t.Errorf("Move down: got\n%v\nwant\n%v", result.Grid, expected)
	}
	if !result.Moved {
		t.Error("Move down should indicate board changed")
	}
}

func TestMoveTopRowScenario(t *testing.T) {
	board := Grid{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	result := Move(board, DirLeft)

	if !slices.Equal(result.Grid[0], []int{4, 0, 0, 0}) {
		t.Errorf("row 0 = %v, want [4 0 0 0]", result.Grid[0])
	}
	if result.ScoreGained != 4 || !result.Moved || !result.Merged {
		t.Errorf("result = %+v, want score 4, moved, merged", result)
	}
}

func TestMoveRightEdgeScenario(t *testing.T) {
	board := Grid{
		{2, 0, 0, 2},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	result := Move(board, DirRight)

	if !slices.Equal(result.Grid[0], []int{0, 0, 0, 4}) {
		t.Errorf("row 0 = %v, want [0 0 0 4]", result.Grid[0])
	}
	if result.ScoreGained != 4 {
		t.Errorf("score = %d, want 4", result.ScoreGained)
	}
}

func TestMoveDoesNotMutateInput(t *testing.T) {
	board := Grid{
		{2, 2, 0, 0},
		{0, 4, 0, 4},
		{0, 0, 0, 0},
		{8, 0, 8, 0},
	}
	orig := board.Clone()

	for _, dir := range Directions {
		Move(board, dir)
		if !board.Equal(orig) {
			t.Fatalf("Move(%s) mutated the input grid", dir)
		}
	}
}

func TestNoChangeIsIdempotent(t *testing.T) {
	board := Grid{
		{4, 2, 0, 0},
		{2, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	// Sliding left when tiles are already left-aligned
	result := Move(board, DirLeft)

	if result.Moved {
		t.Error("Move left should not change already left-aligned tiles")
	}
	if result.ScoreGained != 0 || result.Merged {
		t.Errorf("no-op move reported score %d merged %v", result.ScoreGained, result.Merged)
	}
	if !result.Grid.Equal(board) {
		t.Errorf("no-op move changed grid:\n%v", result.Grid)
	}
}

func TestMoveUnknownDirection(t *testing.T) {
	board := Grid{{2, 2}, {0, 0}}

	result := Move(board, Direction("sideways"))

	if result.Moved || !result.Grid.Equal(board) {
		t.Errorf("unknown direction changed the grid: %+v", result)
	}
}

func TestMoveThreeByThree(t *testing.T) {
	board := Grid{
		{2, 0, 2},
		{0, 4, 0},
		{2, 4, 0},
	}

	result := Move(board, DirUp)
	expected := Grid{
		{4, 8, 2},
		{0, 0, 0},
		{0, 0, 0},
	}
	if !result.Grid.Equal(expected) {
		t.Errorf("3x3 move up: got %v, want %v", result.Grid, expected)
	}
	if result.ScoreGained != 12 {
		t.Errorf("3x3 move up score = %d, want 12", result.ScoreGained)
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in      string
		want    Direction
		wantErr bool
	}{
		{in: "up", want: DirUp},
		{in: "Down", want: DirDown},
		{in: " l ", want: DirLeft},
		{in: "R", want: DirRight},
		{in: "north", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDirection(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseDirection(%q) = %v, want error", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDirection(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseDirection(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
