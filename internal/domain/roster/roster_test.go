package roster_test

import (
	"testing"

	"github.com/okian/matchday/internal/domain/model"
	"github.com/okian/matchday/internal/domain/random"
	"github.com/okian/matchday/internal/domain/roster"
	. "github.com/smartystreets/goconvey/convey"
)

func TestBuilderTeam(t *testing.T) {
	Convey("Given a seeded builder", t, func() {
		b := roster.New(random.New(5))

		Convey("When generating a team", func() {
			team := b.Team("Porto Blue")

			Convey("Then the squad follows the positional quotas", func() {
				counts := map[model.Position]int{}
				for _, p := range team.Players {
					counts[p.Position]++
				}
				So(counts[model.GK], ShouldEqual, 3)
				So(counts[model.DEF], ShouldEqual, 7)
				So(counts[model.MID], ShouldEqual, 7)
				So(counts[model.ATT], ShouldEqual, 5)
				So(len(team.Players), ShouldEqual, 22)
			})

			Convey("Then player ids are unique", func() {
				seen := map[string]bool{}
				for _, p := range team.Players {
					So(seen[p.ID], ShouldBeFalse)
					seen[p.ID] = true
				}
			})

			Convey("Then club defaults are applied", func() {
				So(team.Name, ShouldEqual, "Porto Blue")
				So(team.Budget, ShouldEqual, roster.DefaultBudget)
				So(team.StadiumLevel, ShouldEqual, 1)
				So(team.Tactics, ShouldResemble, model.DefaultTactics())
				So(team.Played(), ShouldEqual, 0)
				So(roster.CanField(team), ShouldBeTrue)
			})
		})

		Convey("When initializing a league without names", func() {
			teams := b.League(nil)

			Convey("Then the default clubs are created", func() {
				So(len(teams), ShouldEqual, len(roster.DefaultLeague))
				So(teams[0].Name, ShouldEqual, "London FC")
			})
		})

		Convey("When initializing a named league", func() {
			teams := b.League([]string{"A", "B"})

			Convey("Then one team per name is created", func() {
				So(len(teams), ShouldEqual, 2)
				So(teams[1].Name, ShouldEqual, "B")
				So(teams[0].ID, ShouldNotEqual, teams[1].ID)
			})
		})

		Convey("When generating a transfer market", func() {
			pool := b.TransferMarket(25)

			Convey("Then every player sits in the market band", func() {
				So(len(pool), ShouldEqual, 25)
				for _, p := range pool {
					So(p.Overall, ShouldBeBetweenOrEqual, 75, 92)
				}
			})
		})

		Convey("When the squad is decimated by injuries", func() {
			team := b.Team("Ajax White")
			for _, p := range team.Players[3:] {
				p.Injure(2)
			}

			Convey("Then it can no longer field a lineup", func() {
				So(roster.CanField(team), ShouldBeFalse)
			})
		})
	})
}
