// Package model contains the plain data shapes exchanged between the
// simulation core and its collaborator. Everything here serializes verbatim.
package model

// Position is a player's role on the pitch.
type Position string

// Positions.
const (
	GK  Position = "GK"
	DEF Position = "DEF"
	MID Position = "MID"
	ATT Position = "ATT"
)

// Positions lists every position in squad order.
func Positions() []Position { return []Position{GK, DEF, MID, ATT} }

// Condition bounds shared by energy and morale.
const (
	MinCondition = 0
	MaxCondition = 100
	MaxRating    = 99
)

// SummaryStats are derived from DetailedStats by RecomputeStats.
type SummaryStats struct {
	Pace      float64 `json:"pace"`
	Shooting  float64 `json:"shooting"`
	Passing   float64 `json:"passing"`
	Dribbling float64 `json:"dribbling"`
	Defense   float64 `json:"defense"`
	Physical  float64 `json:"physical"`
}

// SeasonStats tracks a player's league contribution.
type SeasonStats struct {
	Matches     int `json:"matches"`
	Goals       int `json:"goals"`
	YellowCards int `json:"yellowCards"`
	RedCards    int `json:"redCards"`
}

// Player is the persistent player record.
type Player struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Age      int      `json:"age"`
	Position Position `json:"position"`

	Overall   int `json:"overall"`
	Potential int `json:"potential"`

	Energy         int  `json:"energy"`
	Morale         int  `json:"morale"`
	IsInjured      bool `json:"isInjured"`
	InjuryDuration int  `json:"injuryDuration"` // weeks remaining

	Value          int64 `json:"value"`
	Wage           int64 `json:"wage"`
	ContractLength int   `json:"contractLength"` // years remaining

	DetailedStats DetailedStats `json:"detailedStats"`
	Stats         SummaryStats  `json:"stats"`
	SeasonStats   SeasonStats   `json:"seasonStats"`
}

// summarySources lists the attributes averaged into each summary stat.
var summarySources = struct {
	pace, shooting, passing, dribbling, defense, physical []Attribute
}{
	pace:      []Attribute{Acceleration, SprintSpeed},
	shooting:  []Attribute{Finishing, ShotPower, LongShots},
	passing:   []Attribute{ShortPassing, LongPassing, Crossing, Vision},
	dribbling: []Attribute{Dribbling, BallControl, Agility},
	defense:   []Attribute{Marking, StandingTackle, Interceptions},
	physical:  []Attribute{Strength, Stamina, Balance},
}

// RecomputeStats rebuilds the summary stats from the detailed profile. It is
// the only writer of Stats.
func (p *Player) RecomputeStats() {
	avg := func(attrs []Attribute) float64 {
		sum := 0
		for _, a := range attrs {
			sum += p.DetailedStats[a]
		}
		return float64(sum) / float64(len(attrs))
	}
	p.Stats = SummaryStats{
		Pace:      avg(summarySources.pace),
		Shooting:  avg(summarySources.shooting),
		Passing:   avg(summarySources.passing),
		Dribbling: avg(summarySources.dribbling),
		Defense:   avg(summarySources.defense),
		Physical:  avg(summarySources.physical),
	}
}

// MarketValue computes overall²·100·(1 + 0.1·(potential − overall)).
// Integer arithmetic keeps the result exact: overall²·100 is a multiple of 10.
func MarketValue(overall, potential int) int64 {
	o := int64(overall)
	return o * o * 100 * int64(10+potential-overall) / 10
}

// ReferenceWage is the market wage for a player of the given value,
// floor(0.005·value).
func ReferenceWage(value int64) int64 {
	return value / 200
}

// Revalue recomputes Value after a rating change. Wage is contractual and
// stays as negotiated.
func (p *Player) Revalue() {
	p.Value = MarketValue(p.Overall, p.Potential)
}

// Available reports whether the player can be picked for a match.
func (p *Player) Available() bool { return !p.IsInjured }

// Injure marks the player injured for weeks.
func (p *Player) Injure(weeks int) {
	p.IsInjured = true
	if weeks > p.InjuryDuration {
		p.InjuryDuration = weeks
	}
}

// AdjustEnergy shifts energy by delta within [0, 100].
func (p *Player) AdjustEnergy(delta int) {
	p.Energy = ClampInt(p.Energy+delta, MinCondition, MaxCondition)
}

// AdjustMorale shifts morale by delta within [0, 100].
func (p *Player) AdjustMorale(delta int) {
	p.Morale = ClampInt(p.Morale+delta, MinCondition, MaxCondition)
}
