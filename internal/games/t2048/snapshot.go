package t2048

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying  GameStateType = "playing"
	StateWin      GameStateType = "win"
	StateGameOver GameStateType = "game_over"
)

// Snapshot is an immutable capture of a session. Sessions copy grids into
// and out of snapshots, so a Snapshot never aliases live session memory.
type Snapshot struct {
	Grid  Grid `yaml:"grid" json:"grid"`
	Score int  `yaml:"score" json:"score"`
	Best  int  `yaml:"best" json:"best"`
	Over  bool `yaml:"over" json:"over"`
	Won   bool `yaml:"won" json:"won"`
}

// Clone returns a deep copy of the snapshot.
func (s Snapshot) Clone() Snapshot {
	s.Grid = s.Grid.Clone()
	return s
}

// State derives the display state. Game over wins over a reached target
// because no further moves are possible.
func (s Snapshot) State() GameStateType {
	switch {
	case s.Over:
		return StateGameOver
	case s.Won:
		return StateWin
	default:
		return StatePlaying
	}
}

// MaxTile returns the highest tile in the snapshot grid.
func (s Snapshot) MaxTile() int {
	return MaxTile(s.Grid)
}
