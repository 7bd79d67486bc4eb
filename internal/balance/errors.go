package balance

import "errors"

var (
	// ErrInvariant marks a simulated result that breaks a match invariant.
	ErrInvariant = errors.New("match invariant violated")
	// ErrNoMatches is returned when a run is asked for no matches.
	ErrNoMatches = errors.New("no matches requested")
)
