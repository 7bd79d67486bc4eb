package balance

import (
	"errors"
	"fmt"

	"github.com/okian/matchday/internal/domain/model"
)

// Possession bounds every result must respect.
const (
	minPossession = 20
	maxPossession = 80
)

// Verify checks res against the match invariants and returns every
// violation joined, each wrapping ErrInvariant.
func Verify(res *model.MatchResult) error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvariant))
	}

	homeGoals, awayGoals := 0, 0
	last := 0
	for i, e := range res.Events {
		if e.Minute < 1 || e.Minute > model.MatchMinutes {
			fail("event %d at minute %d", i, e.Minute)
		}
		if e.Minute < last {
			fail("event %d at minute %d after minute %d", i, e.Minute, last)
		}
		last = e.Minute

		switch e.TeamID {
		case res.HomeTeamID:
			if e.Type == model.EventGoal {
				homeGoals++
			}
		case res.AwayTeamID:
			if e.Type == model.EventGoal {
				awayGoals++
			}
		default:
			fail("event %d belongs to unknown team %q", i, e.TeamID)
		}
	}
	if homeGoals != res.HomeScore || awayGoals != res.AwayScore {
		fail("score %d-%d but goal events %d-%d", res.HomeScore, res.AwayScore, homeGoals, awayGoals)
	}

	st := res.Stats
	if st.HomePossession+st.AwayPossession != 100 {
		fail("possession %d+%d does not sum to 100", st.HomePossession, st.AwayPossession)
	}
	if st.HomePossession < minPossession || st.HomePossession > maxPossession {
		fail("home possession %d outside [%d,%d]", st.HomePossession, minPossession, maxPossession)
	}
	if st.HomeShots < res.HomeScore || st.AwayShots < res.AwayScore {
		fail("shots %d-%d below score %d-%d", st.HomeShots, st.AwayShots, res.HomeScore, res.AwayScore)
	}
	return errors.Join(errs...)
}
