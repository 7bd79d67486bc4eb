package model

// Formation is a team shape.
type Formation string

// Formations.
const (
	F433 Formation = "4-3-3"
	F442 Formation = "4-4-2"
	F352 Formation = "3-5-2"
	F532 Formation = "5-3-2"
)

// Intensity is the pressing level.
type Intensity string

// Intensities.
const (
	IntensityLow    Intensity = "Low"
	IntensityNormal Intensity = "Normal"
	IntensityHigh   Intensity = "High"
)

// Style is the play style.
type Style string

// Styles.
const (
	StylePossession Style = "Possession"
	StyleCounter    Style = "Counter"
	StyleLongBall   Style = "Long Ball"
)

// Tactics is a team's match plan.
type Tactics struct {
	Formation Formation `json:"formation"`
	Intensity Intensity `json:"intensity"`
	Style     Style     `json:"style"`
}

// DefaultTactics is what a freshly generated team plays.
func DefaultTactics() Tactics {
	return Tactics{Formation: F433, Intensity: IntensityNormal, Style: StylePossession}
}

// Squad limits.
const (
	MaxSquadSize = 30
	LineupSize   = 11
)

// Team is a club with its squad, finances and league record.
type Team struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	PrimaryColor   string    `json:"primaryColor"`
	SecondaryColor string    `json:"secondaryColor"`
	Players        []*Player `json:"players"`
	Tactics        Tactics   `json:"tactics"`
	Budget         int64     `json:"budget"`
	StadiumLevel   int       `json:"stadiumLevel"`

	Wins         int `json:"wins"`
	Draws        int `json:"draws"`
	Losses       int `json:"losses"`
	Points       int `json:"points"`
	GoalDiff     int `json:"goalDiff"`
	GoalsFor     int `json:"goalsFor"`
	GoalsAgainst int `json:"goalsAgainst"`
}

// Played returns the number of league matches recorded.
func (t *Team) Played() int { return t.Wins + t.Draws + t.Losses }

// FindPlayer returns the player with id, or nil.
func (t *Team) FindPlayer(id string) *Player {
	for _, p := range t.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// RemovePlayer drops the player with id and returns it, or nil.
func (t *Team) RemovePlayer(id string) *Player {
	for i, p := range t.Players {
		if p.ID == id {
			t.Players = append(t.Players[:i:i], t.Players[i+1:]...)
			return p
		}
	}
	return nil
}

// WageBill sums the weekly wages of the full squad.
func (t *Team) WageBill() int64 {
	var total int64
	for _, p := range t.Players {
		total += p.Wage
	}
	return total
}
