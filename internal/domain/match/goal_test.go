package match

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/matchday/internal/domain/random"
)

func TestGoalChance(t *testing.T) {
	Convey("Given the default tunables", t, func() {
		sim := New(random.New(1))

		Convey("Then an attack without players never scores", func() {
			So(sim.goalChance(0, 500), ShouldEqual, 0)
		})

		Convey("Then balanced sides score at the base rate", func() {
			So(sim.goalChance(500, 500), ShouldAlmostEqual, DefaultTunables().GoalBase)
		})

		Convey("Then an empty defence concedes at most the ceiling", func() {
			So(sim.goalChance(800, 0), ShouldEqual, DefaultTunables().MaxGoalChance)
		})
	})

	Convey("Given tunables without a ceiling", t, func() {
		tun := DefaultTunables()
		tun.MaxGoalChance = 0
		sim := New(random.New(1), WithTunables(tun))

		Convey("Then the chance is only capped at certainty", func() {
			So(sim.goalChance(800, 0), ShouldEqual, 1)
		})
	})
}
