package t2048

import "errors"

// Configuration errors returned by NewSession and Session.Load.
var (
	ErrInvalidSize             = errors.New("t2048: grid size must be at least 1")
	ErrInvalidWinValue         = errors.New("t2048: win value must be a power of two >= 2")
	ErrInvalidSpawnProbability = errors.New("t2048: spawn probability must be within [0, 1]")
	ErrInvalidHistoryLimit     = errors.New("t2048: history limit must not be negative")
	ErrInvalidGrid             = errors.New("t2048: invalid grid")
)
