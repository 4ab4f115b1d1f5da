package t2048

import "fmt"

// Action is one recorded player command: a direction name, "undo" or
// "restart".
type Action string

const (
	ActionUndo    Action = "undo"
	ActionRestart Action = "restart"
)

// Replay is a complete record of a seeded game. Undo and restart are part
// of the record because they do not rewind the random source.
type Replay struct {
	Seed         int64    `yaml:"seed" json:"seed"`
	Size         int      `yaml:"size" json:"size"`
	WinValue     int      `yaml:"win_value" json:"win_value"`
	Spawn2Prob   float64  `yaml:"spawn_two_probability,omitempty" json:"spawn_two_probability,omitempty"`
	HistoryLimit int      `yaml:"history_limit,omitempty" json:"history_limit,omitempty"`
	Actions      []Action `yaml:"actions" json:"actions"`
}

// Config returns the session configuration the replay was recorded with.
func (r Replay) Config() Config {
	return Config{
		Size:         r.Size,
		WinValue:     r.WinValue,
		Spawn2Prob:   r.Spawn2Prob,
		HistoryLimit: r.HistoryLimit,
	}
}

// Run plays the replay on a fresh session and returns the final state.
func (r Replay) Run(opts ...Option) (Snapshot, error) {
	opts = append(opts, WithSource(NewSource(r.Seed)))
	s, err := NewSession(r.Config(), opts...)
	if err != nil {
		return Snapshot{}, err
	}

	for i, a := range r.Actions {
		if err := apply(s, a); err != nil {
			return Snapshot{}, fmt.Errorf("t2048: replay action %d: %w", i, err)
		}
	}
	return s.Snapshot(), nil
}

func apply(s *Session, a Action) error {
	switch a {
	case ActionUndo:
		s.Undo()
	case ActionRestart:
		s.Restart()
	default:
		dir, err := ParseDirection(string(a))
		if err != nil {
			return err
		}
		s.Move(dir)
	}
	return nil
}

// Recorder forwards commands to a seeded session and records them.
type Recorder struct {
	session *Session
	replay  Replay
}

// NewRecorder starts a recorded session using a source seeded with seed.
func NewRecorder(cfg Config, seed int64, opts ...Option) (*Recorder, error) {
	opts = append(opts, WithSource(NewSource(seed)))
	s, err := NewSession(cfg, opts...)
	if err != nil {
		return nil, err
	}
	eff := s.Config()
	return &Recorder{
		session: s,
		replay: Replay{
			Seed:         seed,
			Size:         eff.Size,
			WinValue:     eff.WinValue,
			Spawn2Prob:   eff.Spawn2Prob,
			HistoryLimit: eff.HistoryLimit,
		},
	}, nil
}

// Session returns the recorded session. Commands issued on it directly
// are not recorded.
func (r *Recorder) Session() *Session { return r.session }

// Move plays and records a move. Moves that change nothing consume no
// randomness and are not recorded.
func (r *Recorder) Move(dir Direction) MoveResult {
	result := r.session.Move(dir)
	if result.Moved {
		r.replay.Actions = append(r.replay.Actions, Action(dir))
	}
	return result
}

// Undo undoes and records the last move.
func (r *Recorder) Undo() bool {
	ok := r.session.Undo()
	if ok {
		r.replay.Actions = append(r.replay.Actions, ActionUndo)
	}
	return ok
}

// Restart restarts and records it.
func (r *Recorder) Restart() {
	r.session.Restart()
	r.replay.Actions = append(r.replay.Actions, ActionRestart)
}

// Replay returns a copy of the record so far.
func (r *Recorder) Replay() Replay {
	out := r.replay
	out.Actions = append([]Action(nil), r.replay.Actions...)
	return out
}
