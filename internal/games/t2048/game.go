package t2048

import (
	"fmt"
	"io"
	"math"

	"github.com/charmbracelet/log"
)

// DefaultWinValue is the tile that marks a game as won.
const DefaultWinValue = 2048

// Config holds the session parameters.
type Config struct {
	Size         int     // Grid dimension, at least 1
	WinValue     int     // Tile that sets the won flag, a power of two
	Spawn2Prob   float64 // Chance a spawned tile is a 2; 0 means DefaultSpawn2Prob
	HistoryLimit int     // Max undo entries kept, 0 = unbounded
}

// DefaultConfig returns the classic 4x4 / 2048 configuration.
func DefaultConfig() Config {
	return Config{
		Size:       DefaultSize,
		WinValue:   DefaultWinValue,
		Spawn2Prob: DefaultSpawn2Prob,
	}
}

// Variant returns the score table key for these rules, e.g. "4x4-2048".
// A non-default spawn probability is appended in percent, e.g.
// "4x4-2048-p75".
func (c Config) Variant() string {
	c = c.withDefaults()
	key := fmt.Sprintf("%dx%d-%d", c.Size, c.Size, c.WinValue)
	if c.Spawn2Prob != DefaultSpawn2Prob {
		key += fmt.Sprintf("-p%d", int(math.Round(c.Spawn2Prob*100)))
	}
	return key
}

func (c Config) withDefaults() Config {
	if c.Spawn2Prob == 0 {
		c.Spawn2Prob = DefaultSpawn2Prob
	}
	return c
}

// Validate reports the first configuration error, if any.
func (c Config) Validate() error {
	c = c.withDefaults()
	if c.Size < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidSize, c.Size)
	}
	if c.WinValue < 2 || !isPowerOfTwo(c.WinValue) {
		return fmt.Errorf("%w: got %d", ErrInvalidWinValue, c.WinValue)
	}
	if c.Spawn2Prob < 0 || c.Spawn2Prob > 1 {
		return fmt.Errorf("%w: got %g", ErrInvalidSpawnProbability, c.Spawn2Prob)
	}
	if c.HistoryLimit < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidHistoryLimit, c.HistoryLimit)
	}
	return nil
}

// Option configures a Session.
type Option func(*Session)

// WithSource sets the random source used for spawns.
func WithSource(rng Source) Option {
	return func(s *Session) {
		if rng != nil {
			s.rng = rng
		}
	}
}

// WithLogger sets the logger for lifecycle events.
func WithLogger(logger *log.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Session is one ongoing game. It is not safe for concurrent use; a host
// must serialize calls to a single Session.
type Session struct {
	cfg     Config
	spawner Spawner
	rng     Source
	logger  *log.Logger

	grid    Grid
	score   int
	best    int
	over    bool
	won     bool
	history []Snapshot
}

// NewSession creates a session with two random tiles on an empty grid.
func NewSession(cfg Config, opts ...Option) (*Session, error) {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Session{
		cfg:     cfg,
		spawner: Spawner{Spawn2Prob: cfg.Spawn2Prob},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = DefaultSource()
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}

	s.grid = s.freshGrid()
	return s, nil
}

// freshGrid returns an empty grid with two spawned tiles.
func (s *Session) freshGrid() Grid {
	g := NewGrid(s.cfg.Size)
	s.spawner.Place(g, s.rng)
	s.spawner.Place(g, s.rng)
	return g
}

// Config returns the effective configuration.
func (s *Session) Config() Config { return s.cfg }

// Size returns the grid dimension.
func (s *Session) Size() int { return s.cfg.Size }

// WinValue returns the winning tile value.
func (s *Session) WinValue() int { return s.cfg.WinValue }

// Score returns the running score.
func (s *Session) Score() int { return s.score }

// Best returns the highest score reached in this session.
func (s *Session) Best() int { return s.best }

// Over reports whether the game has ended.
func (s *Session) Over() bool { return s.over }

// Won reports whether the win tile has been reached.
func (s *Session) Won() bool { return s.won }

// CanUndo reports whether Undo would restore anything.
func (s *Session) CanUndo() bool { return len(s.history) > 0 }

// HistoryLen returns the number of stored undo points.
func (s *Session) HistoryLen() int { return len(s.history) }

// Grid returns a copy of the current grid.
func (s *Session) Grid() Grid { return s.grid.Clone() }

// Snapshot captures the current state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Grid:  s.grid.Clone(),
		Score: s.score,
		Best:  s.best,
		Over:  s.over,
		Won:   s.won,
	}
}

// Load replaces the current state with snap. The undo history is kept.
// A grid without moves is marked over even if snap says otherwise.
func (s *Session) Load(snap Snapshot) error {
	if err := snap.Grid.Validate(); err != nil {
		return err
	}
	if snap.Grid.Size() != s.cfg.Size {
		return fmt.Errorf("%w: size %d, session size %d", ErrInvalidGrid, snap.Grid.Size(), s.cfg.Size)
	}
	s.restore(snap)
	if !HasMoves(s.grid) {
		s.over = true
	}
	return nil
}

func (s *Session) restore(snap Snapshot) {
	s.grid = snap.Grid.Clone()
	s.score = snap.Score
	s.best = snap.Best
	s.over = snap.Over
	s.won = snap.Won
}

// Move plays dir using the session's random source.
func (s *Session) Move(dir Direction) MoveResult {
	return s.MoveWith(dir, s.rng)
}

// MoveWith plays dir and spawns the follow-up tile from rng.
// A move after game over, or one that changes nothing, leaves the session
// untouched and returns Moved false. The returned grid is a copy.
func (s *Session) MoveWith(dir Direction, rng Source) MoveResult {
	if s.over {
		return MoveResult{Grid: s.grid.Clone()}
	}
	if rng == nil {
		rng = s.rng
	}

	result := Move(s.grid, dir)
	if !result.Moved {
		// No-op moves leave no undo point behind
		result.Grid = s.grid.Clone()
		return result
	}

	s.pushHistory(s.Snapshot())
	s.grid = result.Grid
	s.spawner.Place(s.grid, rng)
	s.score += result.ScoreGained
	if s.score > s.best {
		s.best = s.score
	}

	if !s.won && MaxTile(s.grid) >= s.cfg.WinValue {
		s.won = true
		s.logger.Info("win tile reached", "tile", MaxTile(s.grid), "score", s.score)
	}
	if !HasMoves(s.grid) {
		s.over = true
		s.logger.Info("game over", "score", s.score, "max_tile", MaxTile(s.grid))
	}

	result.Grid = s.grid.Clone()
	return result
}

func (s *Session) pushHistory(snap Snapshot) {
	s.history = append(s.history, snap)
	if limit := s.cfg.HistoryLimit; limit > 0 && len(s.history) > limit {
		drop := len(s.history) - limit
		s.history = append(s.history[:0], s.history[drop:]...)
	}
}

// Restart begins a new game. Best is kept.
func (s *Session) Restart() {
	s.grid = s.freshGrid()
	s.score = 0
	s.over = false
	s.won = false
	s.history = nil
	s.logger.Debug("session restarted", "best", s.best)
}

// Undo restores the state before the last effective move.
// Returns false when there is nothing to undo.
func (s *Session) Undo() bool {
	if len(s.history) == 0 {
		return false
	}
	last := s.history[len(s.history)-1]
	s.history = s.history[:len(s.history)-1]
	s.restore(last)
	s.logger.Debug("undo", "score", s.score, "remaining", len(s.history))
	return true
}
