package t2048

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

// newTestSession builds a session and loads grid into it.
func newTestSession(t *testing.T, cfg Config, grid Grid, rng Source) *Session {
	t.Helper()
	s, err := NewSession(cfg, WithSource(rng))
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}
	if err := s.Load(Snapshot{Grid: grid}); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	return s
}

func countTiles(g Grid) int {
	n := 0
	for _, row := range g {
		for _, v := range row {
			if v != 0 {
				n++
			}
		}
	}
	return n
}

func TestNewSession(t *testing.T) {
	s, err := NewSession(DefaultConfig(), WithSource(NewSource(42)))
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}

	snap := s.Snapshot()
	if snap.Grid.Size() != 4 {
		t.Errorf("grid size = %d, want 4", snap.Grid.Size())
	}
	if n := countTiles(snap.Grid); n != 2 {
		t.Errorf("initial tiles = %d, want 2", n)
	}
	if snap.Score != 0 || snap.Best != 0 || snap.Over || snap.Won {
		t.Errorf("initial snapshot = %+v, want zero score and flags", snap)
	}
	if s.CanUndo() {
		t.Error("new session should have no undo history")
	}
	if snap.State() != StatePlaying {
		t.Errorf("State() = %s, want playing", snap.State())
	}
}

func TestNewSessionDefaults(t *testing.T) {
	s, err := NewSession(Config{Size: 3, WinValue: 256})
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}
	if got := s.Config().Spawn2Prob; got != DefaultSpawn2Prob {
		t.Errorf("Spawn2Prob = %v, want %v", got, DefaultSpawn2Prob)
	}
	if s.Size() != 3 || s.WinValue() != 256 {
		t.Errorf("Size/WinValue = %d/%d, want 3/256", s.Size(), s.WinValue())
	}
}

func TestConfigVariant(t *testing.T) {
	tests := []struct {
		cfg  Config
		want string
	}{
		{Config{Size: 4, WinValue: 2048}, "4x4-2048"},
		{Config{Size: 4, WinValue: 2048, Spawn2Prob: DefaultSpawn2Prob}, "4x4-2048"},
		{Config{Size: 4, WinValue: 2048, Spawn2Prob: 0.75}, "4x4-2048-p75"},
		{Config{Size: 3, WinValue: 256, Spawn2Prob: 1}, "3x3-256-p100"},
	}

	for _, tt := range tests {
		if got := tt.cfg.Variant(); got != tt.want {
			t.Errorf("%+v.Variant() = %q, want %q", tt.cfg, got, tt.want)
		}
	}
}

func TestNewSessionInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want error
	}{
		{name: "zero size", cfg: Config{Size: 0, WinValue: 2048}, want: ErrInvalidSize},
		{name: "negative size", cfg: Config{Size: -1, WinValue: 2048}, want: ErrInvalidSize},
		{name: "zero win value", cfg: Config{Size: 4}, want: ErrInvalidWinValue},
		{name: "win value not power of two", cfg: Config{Size: 4, WinValue: 1000}, want: ErrInvalidWinValue},
		{name: "win value one", cfg: Config{Size: 4, WinValue: 1}, want: ErrInvalidWinValue},
		{name: "spawn probability above one", cfg: Config{Size: 4, WinValue: 2048, Spawn2Prob: 1.5}, want: ErrInvalidSpawnProbability},
		{name: "negative spawn probability", cfg: Config{Size: 4, WinValue: 2048, Spawn2Prob: -0.1}, want: ErrInvalidSpawnProbability},
		{name: "negative history limit", cfg: Config{Size: 4, WinValue: 2048, HistoryLimit: -1}, want: ErrInvalidHistoryLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewSession(tt.cfg)
			if !errors.Is(err, tt.want) {
				t.Errorf("NewSession() error = %v, want %v", err, tt.want)
			}
			if s != nil {
				t.Error("NewSession() should not return a session on error")
			}
		})
	}
}

func TestDeterministicSpawn(t *testing.T) {
	// The same seed produces the same starting grid
	s1, err := NewSession(DefaultConfig(), WithSource(NewSource(12345)))
	if err != nil {
		t.Fatal(err)
	}
	s2, err := NewSession(DefaultConfig(), WithSource(NewSource(12345)))
	if err != nil {
		t.Fatal(err)
	}

	if !s1.Grid().Equal(s2.Grid()) {
		t.Errorf("Same seed should produce same initial board:\n%v\nvs\n%v", s1.Grid(), s2.Grid())
	}
}

func TestSessionMoveMergesAndSpawns(t *testing.T) {
	s := newTestSession(t, DefaultConfig(), Grid{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}, seq(nil, 0.0))

	result := s.Move(DirLeft)

	if !result.Moved || !result.Merged || result.ScoreGained != 4 {
		t.Fatalf("result = %+v, want moved, merged, score 4", result)
	}

	// Spawn goes to the first empty cell (0,1) with a 2
	expected := Grid{
		{4, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	if !s.Grid().Equal(expected) {
		t.Errorf("grid after move:\n%v\nwant\n%v", s.Grid(), expected)
	}
	if !result.Grid.Equal(expected) {
		t.Errorf("result grid should include the spawned tile:\n%v", result.Grid)
	}
	if s.Score() != 4 || s.Best() != 4 {
		t.Errorf("score/best = %d/%d, want 4/4", s.Score(), s.Best())
	}
	if s.HistoryLen() != 1 {
		t.Errorf("HistoryLen() = %d, want 1", s.HistoryLen())
	}
}

func TestSessionMoveResultIsCopy(t *testing.T) {
	s := newTestSession(t, DefaultConfig(), Grid{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}, seq(nil, 0.0))

	result := s.Move(DirLeft)
	result.Grid[3][3] = 1024

	if s.Grid()[3][3] != 0 {
		t.Error("mutating the returned grid changed the session")
	}

	snap := s.Snapshot()
	snap.Grid[3][2] = 512
	if s.Grid()[3][2] != 0 {
		t.Error("mutating a snapshot changed the session")
	}
}

func TestSessionNoopMoveLeavesNoUndoPoint(t *testing.T) {
	s := newTestSession(t, DefaultConfig(), Grid{
		{4, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}, seq(nil, 0.0))
	before := s.Snapshot()

	result := s.Move(DirLeft)

	if result.Moved {
		t.Fatal("move into an aligned row should not move")
	}
	if s.CanUndo() {
		t.Error("no-op move should not create an undo point")
	}
	if !s.Grid().Equal(before.Grid) || s.Score() != before.Score {
		t.Error("no-op move changed the session")
	}
	if !result.Grid.Equal(before.Grid) {
		t.Error("no-op move result should carry the current grid")
	}
}

func TestSessionUndoRestoresSnapshot(t *testing.T) {
	s, err := NewSession(DefaultConfig(), WithSource(NewSource(99)))
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 200 && !s.Over(); i++ {
		dir := Directions[i%len(Directions)]
		before := s.Snapshot()
		result := s.Move(dir)
		if !result.Moved {
			continue
		}
		after := s.Snapshot()

		if !s.Undo() {
			t.Fatalf("Undo() after move %d returned false", i)
		}
		restored := s.Snapshot()
		if !restored.Grid.Equal(before.Grid) || restored.Score != before.Score ||
			restored.Best != before.Best || restored.Over != before.Over || restored.Won != before.Won {
			t.Fatalf("Undo() after move %d restored %+v, want %+v", i, restored, before)
		}

		// Put the played state back to keep the game going
		if err := s.Load(after); err != nil {
			t.Fatal(err)
		}
	}
}

func TestSessionUndoEmptyHistory(t *testing.T) {
	s, err := NewSession(DefaultConfig(), WithSource(NewSource(1)))
	if err != nil {
		t.Fatal(err)
	}
	before := s.Snapshot()

	if s.Undo() {
		t.Error("Undo() with empty history should return false")
	}
	if !s.Grid().Equal(before.Grid) {
		t.Error("Undo() with empty history changed the grid")
	}
}

func TestSessionUndoIsPureStackPop(t *testing.T) {
	s := newTestSession(t, DefaultConfig(), Grid{
		{2, 2, 4, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}, seq(nil, 0.5))

	first := s.Snapshot()
	s.Move(DirLeft)
	second := s.Snapshot()
	s.Move(DirDown)

	if s.HistoryLen() != 2 {
		t.Fatalf("HistoryLen() = %d, want 2", s.HistoryLen())
	}

	s.Undo()
	if !s.Grid().Equal(second.Grid) {
		t.Errorf("first undo:\n%v\nwant\n%v", s.Grid(), second.Grid)
	}
	s.Undo()
	if !s.Grid().Equal(first.Grid) {
		t.Errorf("second undo:\n%v\nwant\n%v", s.Grid(), first.Grid)
	}
	if s.Undo() {
		t.Error("third undo should have nothing left")
	}
}

func TestSessionHistoryLimit(t *testing.T) {
	cfg := DefaultConfig()
	cfg.HistoryLimit = 2
	s, err := NewSession(cfg, WithSource(NewSource(5)))
	if err != nil {
		t.Fatal(err)
	}

	moved := 0
	for i := 0; moved < 5 && i < 100; i++ {
		if s.Move(Directions[i%len(Directions)]).Moved {
			moved++
		}
	}
	if moved < 5 {
		t.Skip("seed did not produce enough moves")
	}

	if s.HistoryLen() != 2 {
		t.Errorf("HistoryLen() = %d, want 2", s.HistoryLen())
	}
}

func TestSessionWinIsSticky(t *testing.T) {
	cfg := DefaultConfig()
	cfg.WinValue = 8
	s := newTestSession(t, cfg, Grid{
		{4, 4, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}, seq(nil, 0.0))

	s.Move(DirLeft)
	if !s.Won() {
		t.Fatal("reaching the win value should set won")
	}
	if s.Snapshot().State() != StateWin {
		t.Errorf("State() = %s, want win", s.Snapshot().State())
	}

	// Winning does not block play, and the flag stays set
	result := s.Move(DirRight)
	if !result.Moved {
		t.Error("moves should still be accepted after winning")
	}
	if !s.Won() {
		t.Error("won flag should be sticky")
	}
}

func TestSessionGameOver(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)

	cfg := DefaultConfig()
	cfg.Size = 2
	s, err := NewSession(cfg, WithSource(seq(nil, 0.0, 0.95)), WithLogger(logger))
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Load(Snapshot{Grid: Grid{
		{8, 0},
		{2, 4},
	}}); err != nil {
		t.Fatal(err)
	}

	// Right slides 8 over, the spawn fills (0,0) with a 4 and nothing can merge
	result := s.Move(DirRight)
	if !result.Moved {
		t.Fatal("move right should move")
	}

	expected := Grid{
		{4, 8},
		{2, 4},
	}
	if !s.Grid().Equal(expected) {
		t.Fatalf("grid:\n%v\nwant\n%v", s.Grid(), expected)
	}
	if !s.Over() {
		t.Fatal("full grid without merges should be game over")
	}
	if s.Snapshot().State() != StateGameOver {
		t.Errorf("State() = %s, want game_over", s.Snapshot().State())
	}
	if !strings.Contains(buf.String(), "game over") {
		t.Errorf("expected game over log line, got %q", buf.String())
	}

	// Terminal stability
	before := s.Snapshot()
	for range 3 {
		for _, dir := range Directions {
			r := s.Move(dir)
			if r.Moved || r.ScoreGained != 0 {
				t.Fatalf("move %s after game over returned %+v", dir, r)
			}
			if !r.Grid.Equal(before.Grid) {
				t.Fatalf("move %s after game over returned a different grid", dir)
			}
		}
	}
	after := s.Snapshot()
	if !after.Grid.Equal(before.Grid) || after.Score != before.Score || !after.Over {
		t.Error("moves after game over changed the session")
	}

	// Undo steps back out of the terminal state
	if !s.Undo() || s.Over() {
		t.Error("undo should restore the state before the final move")
	}
}

func TestSessionLoadDeadGridIsOver(t *testing.T) {
	s := newTestSession(t, DefaultConfig(), Grid{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 2},
	}, seq(nil, 0.0))

	if !s.Over() {
		t.Error("loading a grid without moves should mark the game over")
	}
	for _, dir := range Directions {
		if s.Move(dir).Moved {
			t.Errorf("checkerboard moved %s", dir)
		}
	}
}

func TestSessionLoadRejectsBadGrid(t *testing.T) {
	s, err := NewSession(DefaultConfig(), WithSource(NewSource(1)))
	if err != nil {
		t.Fatal(err)
	}

	if err := s.Load(Snapshot{Grid: NewGrid(3)}); !errors.Is(err, ErrInvalidGrid) {
		t.Errorf("Load(3x3) error = %v, want ErrInvalidGrid", err)
	}
	if err := s.Load(Snapshot{Grid: Grid{{3, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}}}); !errors.Is(err, ErrInvalidGrid) {
		t.Errorf("Load(bad value) error = %v, want ErrInvalidGrid", err)
	}
}

func TestSessionRestartKeepsBest(t *testing.T) {
	s := newTestSession(t, DefaultConfig(), Grid{
		{2, 2, 4, 4},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}, seq(nil, 0.3))

	s.Move(DirLeft)
	if s.Best() != 12 {
		t.Fatalf("Best() = %d, want 12", s.Best())
	}

	s.Restart()

	if s.Score() != 0 || s.Over() || s.Won() {
		t.Errorf("after restart: score %d over %v won %v", s.Score(), s.Over(), s.Won())
	}
	if s.Best() != 12 {
		t.Errorf("Best() after restart = %d, want 12", s.Best())
	}
	if s.CanUndo() {
		t.Error("restart should clear the undo history")
	}
	if n := countTiles(s.Grid()); n != 2 {
		t.Errorf("tiles after restart = %d, want 2", n)
	}
}

func TestSessionBestIsMonotonic(t *testing.T) {
	s, err := NewSession(DefaultConfig(), WithSource(NewSource(2024)))
	if err != nil {
		t.Fatal(err)
	}

	best := 0
	for i := 0; i < 2000; i++ {
		if s.Over() {
			s.Restart()
		}
		r := s.Move(Directions[(i*7)%len(Directions)])
		if r.ScoreGained < 0 {
			t.Fatalf("negative score gained: %d", r.ScoreGained)
		}
		if !r.Moved && (r.ScoreGained != 0 || r.Merged) {
			t.Fatalf("no-op move reported %+v", r)
		}
		if s.Best() < best {
			t.Fatalf("best decreased from %d to %d", best, s.Best())
		}
		if s.Best() < s.Score() {
			t.Fatalf("best %d below score %d", s.Best(), s.Score())
		}
		best = s.Best()
	}
}

func TestSessionMoveWithCustomSource(t *testing.T) {
	s := newTestSession(t, DefaultConfig(), Grid{
		{0, 0, 0, 2},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}, seq(nil, 0.0))

	// 15 empty cells after the move; 0.99 picks the last one (3,3)
	s.MoveWith(DirLeft, seq(nil, 0.99, 0.99))

	g := s.Grid()
	if g[0][0] != 2 || g[3][3] != 4 {
		t.Errorf("grid after MoveWith:\n%v", g)
	}
}
