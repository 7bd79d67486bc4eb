package match

import (
	"sort"

	"github.com/okian/matchday/internal/domain/model"
)

// SelectSquad returns the starting eleven (highest overall, fit players
// only) and up to benchSize reserves. Squad order breaks ties.
func SelectSquad(t *model.Team, benchSize int) (starters, bench []*model.Player) {
	fit := make([]*model.Player, 0, len(t.Players))
	for _, p := range t.Players {
		if p.Available() {
			fit = append(fit, p)
		}
	}
	sort.SliceStable(fit, func(i, j int) bool { return fit[i].Overall > fit[j].Overall })

	n := min(model.LineupSize, len(fit))
	starters = fit[:n:n]
	rest := fit[n:]
	bench = rest[:min(max(benchSize, 0), len(rest))]
	return starters, bench
}

// Starters returns the eleven players who would start for t.
func Starters(t *model.Team) []*model.Player {
	s, _ := SelectSquad(t, 0)
	return s
}

// participant is the per-match view of a player. Its flags live only for
// one simulation and never touch the persistent record.
type participant struct {
	player    *model.Player
	energy    float64
	hasYellow bool
	hasRed    bool
	subbedOut bool
	injured   bool
}

func newParticipant(p *model.Player) *participant {
	return &participant{player: p, energy: float64(p.Energy)}
}

func (p *participant) active() bool {
	return !p.hasRed && !p.subbedOut && !p.injured
}

func (p *participant) rating() float64 {
	if !p.active() {
		return 0
	}
	return EffectiveRating(p.player.Overall, p.energy, p.player.Morale)
}

// side is one team's state for the duration of a match.
type side struct {
	team     *model.Team
	mods     Modifiers
	bonus    float64 // stadium multiplier, 1 for the away side
	onPitch  []*participant
	bench    []*participant
	subsUsed int
	score    int
}

func newSide(t *model.Team, home bool, tun Tunables) *side {
	starters, bench := SelectSquad(t, tun.BenchSize)
	s := &side{
		team:  t,
		mods:  TacticalModifiers(t.Tactics),
		bonus: 1,
	}
	if home {
		s.bonus = 1 + tun.StadiumBonus*float64(t.StadiumLevel)
	}
	for _, p := range starters {
		s.onPitch = append(s.onPitch, newParticipant(p))
	}
	for _, p := range bench {
		s.bench = append(s.bench, newParticipant(p))
	}
	return s
}

// strength returns attacking and defending strength of the active players.
func (s *side) strength() (attack, defense float64) {
	base := 0.0
	for _, p := range s.onPitch {
		base += p.rating()
	}
	base *= s.bonus
	return base * (1 + s.mods.Attack), base * (1 + s.mods.Defense)
}

func (s *side) lineup() []string {
	ids := make([]string, 0, len(s.onPitch))
	for _, p := range s.onPitch {
		ids = append(ids, p.player.ID)
	}
	return ids
}

func (s *side) active() []*participant {
	out := make([]*participant, 0, len(s.onPitch))
	for _, p := range s.onPitch {
		if p.active() {
			out = append(out, p)
		}
	}
	return out
}

// tired returns the active player with the lowest in-match energy.
func (s *side) tired() *participant {
	var low *participant
	for _, p := range s.onPitch {
		if p.active() && (low == nil || p.energy < low.energy) {
			low = p
		}
	}
	return low
}

func (s *side) canSubstitute(maxSubs int) bool {
	return s.subsUsed < maxSubs && len(s.bench) > 0
}

// bringOn takes the next reserve onto the pitch.
func (s *side) bringOn() *participant {
	in := s.bench[0]
	s.bench = s.bench[1:]
	s.onPitch = append(s.onPitch, in)
	s.subsUsed++
	return in
}

func (s *side) drain(perMinute float64) {
	loss := perMinute * s.mods.Fatigue
	for _, p := range s.onPitch {
		if p.active() {
			p.energy = max(0, p.energy-loss)
		}
	}
}
