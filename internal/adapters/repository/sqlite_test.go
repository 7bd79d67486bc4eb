package repository

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/matchday/internal/domain/model"
)

func sampleState() *model.GameState {
	p := &model.Player{ID: "p1", Name: "Ada Keeper", Position: model.GK, Overall: 64, Potential: 70, Energy: 90, Morale: 75}
	return &model.GameState{
		Teams: []*model.Team{{
			ID: "t1", Name: "Harbour FC", Budget: 5_000_000, StadiumLevel: 2,
			Tactics: model.DefaultTactics(), Players: []*model.Player{p},
		}},
		UserTeamID:     "t1",
		CurrentWeek:    3,
		TransferMarket: []*model.Player{{ID: "m1", Name: "Free Agent", Position: model.ATT, Overall: 55}},
		News:           []model.NewsItem{{ID: "n1", Week: 2, Category: "win", Title: "Harbour edge it"}},
	}
}

func TestSQLiteStore(t *testing.T) {
	Convey("Given an empty save database", t, func() {
		ctx := context.Background()
		clock := time.Unix(1_700_000_000, 0)
		store, err := Open(ctx, filepath.Join(t.TempDir(), "saves.db"),
			WithClock(func() time.Time { return clock }))
		So(err, ShouldBeNil)
		defer store.Close()

		Convey("Loading a missing slot reports ErrNotFound", func() {
			_, err := store.Load(ctx, "career")
			So(errors.Is(err, ErrNotFound), ShouldBeTrue)
		})

		Convey("Deleting a missing slot reports ErrNotFound", func() {
			So(errors.Is(store.Delete(ctx, "career"), ErrNotFound), ShouldBeTrue)
		})

		Convey("Blank slot names and nil states are rejected", func() {
			So(store.Save(ctx, "  ", Snapshot{State: sampleState()}), ShouldEqual, ErrInvalidSlot)
			So(store.Save(ctx, "career", Snapshot{}), ShouldEqual, ErrNilState)
		})

		Convey("When a snapshot is saved", func() {
			want := sampleState()
			So(store.Save(ctx, "career", Snapshot{State: want, Applied: []string{"r1", "r2"}}), ShouldBeNil)

			Convey("Then it loads back unchanged", func() {
				got, err := store.Load(ctx, "career")
				So(err, ShouldBeNil)
				So(got.State, ShouldResemble, want)
				So(got.Applied, ShouldResemble, []string{"r1", "r2"})
			})

			Convey("Then saving again overwrites the slot", func() {
				want.CurrentWeek = 4
				clock = clock.Add(time.Hour)
				So(store.Save(ctx, "career", Snapshot{State: want}), ShouldBeNil)

				got, err := store.Load(ctx, "career")
				So(err, ShouldBeNil)
				So(got.State.CurrentWeek, ShouldEqual, 4)
				So(got.Applied, ShouldBeEmpty)

				slots, err := store.Slots(ctx)
				So(err, ShouldBeNil)
				So(slots, ShouldHaveLength, 1)
				So(slots[0].SavedAt.Equal(clock), ShouldBeTrue)
			})

			Convey("Then slots list the most recent save first", func() {
				clock = clock.Add(time.Minute)
				So(store.Save(ctx, "backup", Snapshot{State: sampleState()}), ShouldBeNil)

				slots, err := store.Slots(ctx)
				So(err, ShouldBeNil)
				So(slots, ShouldHaveLength, 2)
				So(slots[0].Name, ShouldEqual, "backup")
				So(slots[1].Name, ShouldEqual, "career")
				So(slots[1].UserTeamID, ShouldEqual, "t1")
				So(slots[1].CurrentWeek, ShouldEqual, 3)
			})

			Convey("Then it can be deleted", func() {
				So(store.Delete(ctx, "career"), ShouldBeNil)
				_, err := store.Load(ctx, "career")
				So(errors.Is(err, ErrNotFound), ShouldBeTrue)
			})
		})
	})

	Convey("Given a database reopened from disk", t, func() {
		ctx := context.Background()
		path := filepath.Join(t.TempDir(), "saves.db")

		first, err := Open(ctx, path)
		So(err, ShouldBeNil)
		So(first.Save(ctx, "career", Snapshot{State: sampleState(), Applied: []string{"r1"}}), ShouldBeNil)
		So(first.Close(), ShouldBeNil)

		second, err := Open(ctx, path)
		So(err, ShouldBeNil)
		defer second.Close()

		got, err := second.Load(ctx, "career")
		So(err, ShouldBeNil)
		So(got.State.UserTeam().Name, ShouldEqual, "Harbour FC")
		So(got.Applied, ShouldResemble, []string{"r1"})
	})
}
