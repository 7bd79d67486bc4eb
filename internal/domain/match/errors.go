package match

import "errors"

// Sentinel errors for the simulator.
var (
	ErrEmptyRoster = errors.New("team has no players")
)
