// Package match resolves a fixture minute by minute into a score and an
// ordered event timeline.
package match

import (
	"fmt"
	"math"

	"github.com/okian/matchday/internal/domain/model"
	"github.com/okian/matchday/internal/domain/random"
)

const (
	basePossession       = 50
	stylePossessionSwing = 10
	minPossession        = 20
	maxPossession        = 80
	minExtraShots        = 2
	maxExtraShots        = 6
)

// Simulator runs matches from one random source. It is not safe for
// concurrent use; give each goroutine its own Simulator.
type Simulator struct {
	src random.Source
	tun Tunables
}

// New creates a Simulator drawing from src.
func New(src random.Source, opts ...Option) *Simulator {
	tun := DefaultTunables()
	for _, opt := range opts {
		opt(&tun)
	}
	return &Simulator{src: src, tun: tun}
}

// Tunables returns the balance the simulator runs with.
func (s *Simulator) Tunables() Tunables { return s.tun }

// run is the state of one match in progress.
type run struct {
	sim    *Simulator
	home   *side
	away   *side
	events []model.MatchEvent
}

// Simulate plays home against away and returns the final result. The teams
// are read, never modified.
func (s *Simulator) Simulate(home, away *model.Team) (*model.MatchResult, error) {
	if home == nil || len(home.Players) == 0 {
		return nil, fmt.Errorf("home: %w", ErrEmptyRoster)
	}
	if away == nil || len(away.Players) == 0 {
		return nil, fmt.Errorf("away: %w", ErrEmptyRoster)
	}

	id := random.ID(s.src)
	r := &run{
		sim:  s,
		home: newSide(home, true, s.tun),
		away: newSide(away, false, s.tun),
	}
	homeLineup, awayLineup := r.home.lineup(), r.away.lineup()
	for minute := 1; minute <= model.MatchMinutes; minute++ {
		r.minute(minute)
	}

	result := &model.MatchResult{
		ID:         id,
		HomeTeamID: home.ID,
		AwayTeamID: away.ID,
		HomeScore:  r.home.score,
		AwayScore:  r.away.score,
		Events:     r.events,
		Stats:      r.stats(),
		HomeLineup: homeLineup,
		AwayLineup: awayLineup,
	}
	if result.Events == nil {
		result.Events = []model.MatchEvent{}
	}
	return result, nil
}

func (r *run) minute(minute int) {
	defer func() {
		r.home.drain(r.sim.tun.MinuteFatigue)
		r.away.drain(r.sim.tun.MinuteFatigue)
	}()

	hAtt, hDef := r.home.strength()
	aAtt, aDef := r.away.strength()

	if r.goal(minute, r.sim.goalChance(hAtt, aDef), r.sim.goalChance(aAtt, hDef)) {
		return
	}
	r.cards(minute, r.home)
	r.cards(minute, r.away)
	r.injuries(minute, r.home)
	r.injuries(minute, r.away)
	if minute > r.sim.tun.SubWindowStart {
		r.substitution(minute, r.home)
		r.substitution(minute, r.away)
	}
	r.flavour(minute, hAtt, aAtt)
}

// goalChance converts attacking vs defending strength into a per-minute
// probability. A side with nobody left to defend still concedes at most
// MaxGoalChance a minute.
func (s *Simulator) goalChance(attack, defense float64) float64 {
	if attack <= 0 {
		return 0
	}
	ceiling := s.tun.MaxGoalChance
	if ceiling <= 0 || ceiling > 1 {
		ceiling = 1
	}
	defense = max(defense, 1)
	return math.Min(ceiling, s.tun.GoalBase*attack/defense)
}

func (r *run) goal(minute int, homeChance, awayChance float64) bool {
	total := homeChance + awayChance
	if total <= 0 {
		return false
	}
	roll := r.sim.src.Float64()
	if roll >= total {
		return false
	}
	scoring := r.away
	if roll < homeChance {
		scoring = r.home
	}
	scorer := r.pick(scoring)
	if scorer == nil {
		return false
	}
	scoring.score++
	r.add(minute, model.EventGoal, scoring, scorer.player,
		fmt.Sprintf("GOAL! %s scores for %s!", scorer.player.Name, scoring.team.Name))
	return true
}

func (r *run) cards(minute int, s *side) {
	if !random.Chance(r.sim.src, r.sim.tun.CardChance*s.mods.Cards) {
		return
	}
	p := r.pick(s)
	if p == nil {
		return
	}
	switch {
	case p.hasYellow:
		p.hasRed = true
		r.add(minute, model.EventRedCard, s, p.player,
			fmt.Sprintf("Second yellow! %s (%s) is sent off.", p.player.Name, s.team.Name))
	case random.Chance(r.sim.src, r.sim.tun.StraightRedChance):
		p.hasRed = true
		r.add(minute, model.EventRedCard, s, p.player,
			fmt.Sprintf("Straight red for %s (%s)!", p.player.Name, s.team.Name))
	default:
		p.hasYellow = true
		r.add(minute, model.EventYellowCard, s, p.player,
			fmt.Sprintf("Yellow card for %s (%s).", p.player.Name, s.team.Name))
	}
}

func (r *run) injuries(minute int, s *side) {
	if !random.Chance(r.sim.src, r.sim.tun.InjuryChance) {
		return
	}
	p := r.pick(s)
	if p == nil {
		return
	}
	p.injured = true
	r.add(minute, model.EventInjury, s, p.player,
		fmt.Sprintf("%s (%s) goes down injured.", p.player.Name, s.team.Name))
	if s.canSubstitute(r.sim.tun.MaxSubs) {
		r.replace(minute, s, p)
	}
}

func (r *run) substitution(minute int, s *side) {
	if !s.canSubstitute(r.sim.tun.MaxSubs) {
		return
	}
	if !random.Chance(r.sim.src, r.sim.tun.SubChance) {
		return
	}
	out := s.tired()
	if out == nil {
		return
	}
	out.subbedOut = true
	r.replace(minute, s, out)
}

func (r *run) replace(minute int, s *side, out *participant) {
	in := s.bringOn()
	r.add(minute, model.EventSubstitution, s, in.player,
		fmt.Sprintf("Substitution %s: %s replaces %s.", s.team.Name, in.player.Name, out.player.Name))
}

func (r *run) flavour(minute int, hAtt, aAtt float64) {
	if !random.Chance(r.sim.src, r.sim.tun.MissChance) {
		return
	}
	total := hAtt + aAtt
	if total <= 0 {
		return
	}
	s := r.away
	if r.sim.src.Float64() < hAtt/total {
		s = r.home
	}
	p := r.pick(s)
	if p == nil {
		return
	}
	r.add(minute, model.EventMiss, s, p.player,
		fmt.Sprintf("Close call for %s! %s hits the post.", s.team.Name, p.player.Name))
}

// pick returns a uniformly random active participant, or nil.
func (r *run) pick(s *side) *participant {
	active := s.active()
	if len(active) == 0 {
		return nil
	}
	return active[r.sim.src.Intn(len(active))]
}

func (r *run) add(minute int, typ model.EventType, s *side, p *model.Player, desc string) {
	r.events = append(r.events, model.MatchEvent{
		Minute:      minute,
		Type:        typ,
		Description: desc,
		TeamID:      s.team.ID,
		PlayerID:    p.ID,
	})
}

func (r *run) stats() model.MatchStats {
	homeShots := r.home.score + random.Between(r.sim.src, minExtraShots, maxExtraShots)
	awayShots := r.away.score + random.Between(r.sim.src, minExtraShots, maxExtraShots)

	possession := float64(basePossession)
	possession += styleSwing(r.home.team.Tactics.Style)
	possession -= styleSwing(r.away.team.Tactics.Style)
	hAtt, _ := r.home.strength()
	aAtt, _ := r.away.strength()
	if hAtt+aAtt > 0 {
		possession += (hAtt/(hAtt+aAtt) - 0.5) * r.sim.tun.PossessionSkew
	}
	home := model.ClampInt(int(math.Round(possession)), minPossession, maxPossession)

	return model.MatchStats{
		HomePossession: home,
		AwayPossession: 100 - home,
		HomeShots:      homeShots,
		AwayShots:      awayShots,
	}
}

func styleSwing(s model.Style) float64 {
	switch s {
	case model.StylePossession:
		return stylePossessionSwing
	case model.StyleCounter:
		return -stylePossessionSwing
	default:
		return 0
	}
}
