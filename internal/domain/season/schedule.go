package season

import "github.com/okian/matchday/internal/domain/model"

// Fixture is one pairing of a round.
type Fixture struct {
	Home *model.Team
	Away *model.Team
}

// Fixtures returns the round-robin pairings for week (1-based) using the
// circle method: the first team stays put while the others rotate. With an
// odd number of teams one club rests each week. Venues flip every other
// cycle so a double round-robin gives each pairing a home and an away leg.
func Fixtures(teams []*model.Team, week int) []Fixture {
	if len(teams) < 2 {
		return nil
	}
	slots := append([]*model.Team(nil), teams...)
	if len(slots)%2 == 1 {
		slots = append(slots, nil)
	}
	n := len(slots)
	rounds := n - 1
	w := max(week, 1) - 1
	round := w % rounds
	secondLeg := (w/rounds)%2 == 1

	order := make([]*model.Team, n)
	order[0] = slots[0]
	for i := 1; i < n; i++ {
		order[i] = slots[1+(i-1+round)%rounds]
	}

	out := make([]Fixture, 0, n/2)
	for i := 0; i < n/2; i++ {
		home, away := order[i], order[n-1-i]
		if home == nil || away == nil {
			continue
		}
		flip := i == 0 && round%2 == 1
		if flip != secondLeg {
			home, away = away, home
		}
		out = append(out, Fixture{Home: home, Away: away})
	}
	return out
}
