package model

// EventType classifies a match event.
type EventType string

// Event types.
const (
	EventGoal         EventType = "GOAL"
	EventMiss         EventType = "MISS"
	EventYellowCard   EventType = "YELLOW_CARD"
	EventRedCard      EventType = "RED_CARD"
	EventSubstitution EventType = "SUBSTITUTION"
	EventInjury       EventType = "INJURY"
)

// MatchMinutes is the regulation length of a match.
const MatchMinutes = 90

// MatchEvent is one entry of the match timeline.
type MatchEvent struct {
	Minute      int       `json:"minute"`
	Type        EventType `json:"type"`
	Description string    `json:"description"`
	TeamID      string    `json:"teamId"`
	PlayerID    string    `json:"playerId,omitempty"`
}

// MatchStats are the aggregate figures of a match.
type MatchStats struct {
	HomePossession int `json:"homePossession"`
	AwayPossession int `json:"awayPossession"`
	HomeShots      int `json:"homeShots"`
	AwayShots      int `json:"awayShots"`
}

// MatchResult is created once per match and never mutated afterwards.
type MatchResult struct {
	ID         string       `json:"id"`
	HomeTeamID string       `json:"homeTeamId"`
	AwayTeamID string       `json:"awayTeamId"`
	HomeScore  int          `json:"homeScore"`
	AwayScore  int          `json:"awayScore"`
	Events     []MatchEvent `json:"events"`
	Stats      MatchStats   `json:"stats"`

	// Starting eleven player ids, in selection order.
	HomeLineup []string `json:"homeLineup,omitempty"`
	AwayLineup []string `json:"awayLineup,omitempty"`
}

// WinnerID returns the winning team id, or "" for a draw.
func (r *MatchResult) WinnerID() string {
	switch {
	case r.HomeScore > r.AwayScore:
		return r.HomeTeamID
	case r.AwayScore > r.HomeScore:
		return r.AwayTeamID
	default:
		return ""
	}
}

// TotalGoals returns the combined score.
func (r *MatchResult) TotalGoals() int { return r.HomeScore + r.AwayScore }

// EventsOf returns the events of type typ in timeline order.
func (r *MatchResult) EventsOf(typ EventType) []MatchEvent {
	var out []MatchEvent
	for _, e := range r.Events {
		if e.Type == typ {
			out = append(out, e)
		}
	}
	return out
}
