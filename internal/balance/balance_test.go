package balance_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/okian/matchday/internal/balance"
	"github.com/okian/matchday/internal/domain/model"
	"github.com/okian/matchday/internal/domain/random"
	"github.com/okian/matchday/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func validResult() *model.MatchResult {
	return &model.MatchResult{
		ID: "r", HomeTeamID: "h", AwayTeamID: "a", HomeScore: 2, AwayScore: 1,
		Events: []model.MatchEvent{
			{Minute: 10, Type: model.EventGoal, TeamID: "h"},
			{Minute: 30, Type: model.EventYellowCard, TeamID: "a"},
			{Minute: 55, Type: model.EventGoal, TeamID: "a"},
			{Minute: 88, Type: model.EventGoal, TeamID: "h"},
		},
		Stats: model.MatchStats{HomePossession: 55, AwayPossession: 45, HomeShots: 6, AwayShots: 4},
	}
}

func TestVerify(t *testing.T) {
	Convey("Given a consistent result", t, func() {
		res := validResult()

		Convey("Then it passes", func() {
			So(balance.Verify(res), ShouldBeNil)
		})

		Convey("Then a score that disagrees with the goals fails", func() {
			res.HomeScore = 3
			So(errors.Is(balance.Verify(res), balance.ErrInvariant), ShouldBeTrue)
		})

		Convey("Then an out of order timeline fails", func() {
			res.Events[1].Minute = 5
			So(errors.Is(balance.Verify(res), balance.ErrInvariant), ShouldBeTrue)
		})

		Convey("Then a minute past full time fails", func() {
			res.Events[3].Minute = 91
			So(balance.Verify(res), ShouldNotBeNil)
		})

		Convey("Then lopsided possession fails", func() {
			res.Stats.HomePossession, res.Stats.AwayPossession = 85, 15
			So(balance.Verify(res), ShouldNotBeNil)
		})

		Convey("Then fewer shots than goals fails", func() {
			res.Stats.HomeShots = 1
			So(balance.Verify(res), ShouldNotBeNil)
		})

		Convey("Then an event for a third team fails", func() {
			res.Events[1].TeamID = "x"
			So(balance.Verify(res), ShouldNotBeNil)
		})
	})
}

func TestEqualSquads(t *testing.T) {
	Convey("Given equal squads", t, func() {
		home, away := balance.EqualSquads(random.New(3))

		Convey("Then the players match but identities differ", func() {
			So(away.ID, ShouldNotEqual, home.ID)
			So(away.Players, ShouldHaveLength, len(home.Players))
			for i := range home.Players {
				So(away.Players[i].ID, ShouldNotEqual, home.Players[i].ID)
				So(away.Players[i].Overall, ShouldEqual, home.Players[i].Overall)
				So(away.Players[i].DetailedStats, ShouldResemble, home.Players[i].DetailedStats)
			}
		})
	})
}

func TestRun(t *testing.T) {
	Convey("Given a balance run", t, func() {
		So(logger.InitWithWriter(&bytes.Buffer{}), ShouldBeNil)
		ctx := context.Background()
		out := filepath.Join(t.TempDir(), "results", "balance.json")
		cfg := &balance.Config{Matches: 600, Workers: 3, Seed: 11, StadiumLevel: 1, OutputFile: out}

		Convey("When the matches are simulated", func() {
			stats, err := balance.Run(ctx, cfg)

			Convey("Then every result holds and the outcomes add up", func() {
				So(err, ShouldBeNil)
				So(stats.Violations, ShouldEqual, 0)
				So(stats.Matches, ShouldEqual, 600)
				So(stats.HomeWins+stats.Draws+stats.AwayWins, ShouldEqual, 600)
				So(stats.AverageGoals(), ShouldBeBetween, 1.0, 5.0)
				So(stats.HomeWinRate()+stats.DrawRate()+stats.AwayWinRate(), ShouldAlmostEqual, 100.0, 1e-9)
			})

			Convey("Then the results are written out", func() {
				info, err := os.Stat(out)
				So(err, ShouldBeNil)
				So(info.Size(), ShouldBeGreaterThan, 0)
			})

			Convey("Then the same seed gives the same tallies", func() {
				again, err := balance.Run(ctx, &balance.Config{Matches: 600, Workers: 1, Seed: 11, StadiumLevel: 1})
				So(err, ShouldBeNil)
				So(again.HomeWins, ShouldEqual, stats.HomeWins)
				So(again.Goals, ShouldEqual, stats.Goals)
				So(again.Cards, ShouldEqual, stats.Cards)
			})
		})

		Convey("When no matches are requested", func() {
			_, err := balance.Run(ctx, &balance.Config{})

			Convey("Then the run is refused", func() {
				So(errors.Is(err, balance.ErrNoMatches), ShouldBeTrue)
			})
		})
	})
}
