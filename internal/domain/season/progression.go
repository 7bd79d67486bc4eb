package season

import (
	"math"

	"github.com/okian/matchday/internal/domain/match"
	"github.com/okian/matchday/internal/domain/model"
	"github.com/okian/matchday/internal/domain/random"
)

const (
	pointsForWin  = 3
	pointsForDraw = 1

	attendancePerLevel = 10_000
	ticketPrice        = 50

	minMatchFatigue = 5
	maxMatchFatigue = 15
	restRecovery    = 15

	minInjuryWeeks = 1
	maxInjuryWeeks = 4

	marketRefreshInterval = 4
)

// Attendance is the home crowd for a stadium level.
func Attendance(stadiumLevel int) int { return attendancePerLevel * stadiumLevel }

// MatchdayIncome is the home side's gate receipts.
func MatchdayIncome(stadiumLevel int) int64 {
	return int64(Attendance(stadiumLevel)) * ticketPrice
}

// WeekReport summarises what AdvanceWeek changed.
type WeekReport struct {
	Week            int      // the week that was completed
	Applied         int      // results applied
	Healed          []string // players whose injury cleared
	Injured         []string // players injured during matches
	WageBill        int64    // deducted from the user team
	MarketRefreshed bool
}

// ApplyMatch records one result: standings for both sides, gate receipts for
// the home side, player season statistics and in-match injuries. It reports
// false, changing nothing, when either team is unknown.
func (s *Season) ApplyMatch(state *model.GameState, res *model.MatchResult) bool {
	_, ok := s.applyMatch(state, res)
	return ok
}

func (s *Season) applyMatch(state *model.GameState, res *model.MatchResult) (injured []string, ok bool) {
	if state == nil || res == nil {
		return nil, false
	}
	home, away := state.FindTeam(res.HomeTeamID), state.FindTeam(res.AwayTeamID)
	if home == nil || away == nil {
		return nil, false
	}

	record(home, res.HomeScore, res.AwayScore)
	record(away, res.AwayScore, res.HomeScore)
	home.Budget += MatchdayIncome(home.StadiumLevel)

	appear(home, res.HomeLineup)
	appear(away, res.AwayLineup)
	for _, e := range res.Events {
		team := home
		if e.TeamID == away.ID {
			team = away
		}
		p := team.FindPlayer(e.PlayerID)
		if p == nil {
			continue
		}
		switch e.Type {
		case model.EventGoal:
			p.SeasonStats.Goals++
		case model.EventYellowCard:
			p.SeasonStats.YellowCards++
		case model.EventRedCard:
			p.SeasonStats.RedCards++
		case model.EventSubstitution:
			p.SeasonStats.Matches++
		case model.EventInjury:
			p.Injure(random.Between(s.src, minInjuryWeeks, maxInjuryWeeks))
			injured = append(injured, p.ID)
		}
	}
	return injured, true
}

func record(t *model.Team, goalsFor, goalsAgainst int) {
	t.GoalsFor += goalsFor
	t.GoalsAgainst += goalsAgainst
	t.GoalDiff += goalsFor - goalsAgainst
	switch {
	case goalsFor > goalsAgainst:
		t.Wins++
	case goalsFor < goalsAgainst:
		t.Losses++
	default:
		t.Draws++
	}
	t.Points = pointsForWin*t.Wins + pointsForDraw*t.Draws
}

func appear(t *model.Team, lineup []string) {
	for _, id := range lineup {
		if p := t.FindPlayer(id); p != nil {
			p.SeasonStats.Matches++
		}
	}
}

// AdvanceWeek closes the current week: injuries count down, results are
// applied in order, squads tire or recover, the user team pays wages and
// the market refreshes every fourth week.
func (s *Season) AdvanceWeek(state *model.GameState, results []*model.MatchResult) WeekReport {
	rep := WeekReport{Week: state.CurrentWeek}
	rep.Healed = tickInjuries(state.Teams)

	played := make(map[string]bool, 2*len(results))
	for _, res := range results {
		injured, ok := s.applyMatch(state, res)
		if !ok {
			continue
		}
		rep.Applied++
		rep.Injured = append(rep.Injured, injured...)
		played[res.HomeTeamID] = true
		played[res.AwayTeamID] = true
	}

	for _, t := range state.Teams {
		s.condition(t, played[t.ID])
	}

	if user := state.UserTeam(); user != nil {
		rep.WageBill = user.WageBill()
		user.Budget -= rep.WageBill
	}

	state.CurrentWeek++
	if state.CurrentWeek%marketRefreshInterval == 0 {
		s.RefreshMarket(state)
		rep.MarketRefreshed = true
	}
	return rep
}

// tickInjuries counts every injury down one week and returns the healed.
func tickInjuries(teams []*model.Team) []string {
	var healed []string
	for _, t := range teams {
		for _, p := range t.Players {
			if !p.IsInjured {
				continue
			}
			p.InjuryDuration--
			if p.InjuryDuration <= 0 {
				p.IsInjured = false
				p.InjuryDuration = 0
				healed = append(healed, p.ID)
			}
		}
	}
	return healed
}

// condition applies post-match fatigue to the first eleven of a team that
// played and rest recovery to everybody else.
func (s *Season) condition(t *model.Team, played bool) {
	tired := map[string]bool{}
	if played {
		mult := match.FatigueMultiplier(t.Tactics.Intensity)
		for _, p := range match.Starters(t) {
			loss := int(math.Floor(random.Uniform(s.src, minMatchFatigue, maxMatchFatigue) * mult))
			p.AdjustEnergy(-loss)
			tired[p.ID] = true
		}
	}
	for _, p := range t.Players {
		if !tired[p.ID] {
			p.AdjustEnergy(restRecovery)
		}
	}
}
