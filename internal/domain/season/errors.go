package season

import "errors"

// Denials. State is unchanged whenever one of these is returned.
var (
	ErrTeamNotFound      = errors.New("team not found")
	ErrPlayerNotFound    = errors.New("player not found")
	ErrSquadFull         = errors.New("squad is full")
	ErrSquadTooSmall     = errors.New("squad cannot field a lineup without this player")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrUnknownDrill      = errors.New("unknown training drill")
)
