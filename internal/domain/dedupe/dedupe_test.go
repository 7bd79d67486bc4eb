package dedupe_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	dedupe "github.com/okian/matchday/internal/domain/dedupe"
	. "github.com/smartystreets/goconvey/convey"
)

func TestInMemoryDeduper(t *testing.T) {
	ctx := context.Background()

	Convey("Given a new InMemoryDeduper", t, func() {
		d := dedupe.NewInMemoryDeduper()

		Convey("When a result id is new", func() {
			seen := d.SeenAndRecord(ctx, "match-1")

			Convey("Then it should return false and record the id", func() {
				So(seen, ShouldBeFalse)
				So(d.Size(), ShouldEqual, 1)
			})
		})

		Convey("When a result id is applied twice", func() {
			d.SeenAndRecord(ctx, "match-1")
			seen := d.SeenAndRecord(ctx, "match-1")

			Convey("Then the second application is reported", func() {
				So(seen, ShouldBeTrue)
				So(d.Size(), ShouldEqual, 1)
			})
		})

		Convey("When an id is unrecorded", func() {
			for _, id := range []string{"a", "b", "c"} {
				d.SeenAndRecord(ctx, id)
			}
			d.Unrecord(ctx, "b")
			d.Unrecord(ctx, "missing")

			Convey("Then it can be recorded again and order is kept", func() {
				So(d.Size(), ShouldEqual, 2)
				So(d.IDs(), ShouldResemble, []string{"a", "c"})
				So(d.SeenAndRecord(ctx, "b"), ShouldBeFalse)
				So(d.IDs(), ShouldResemble, []string{"a", "c", "b"})
			})
		})

		Convey("When ids are seeded from a save", func() {
			d.Seed(ctx, []string{"x", "y", "x"})

			Convey("Then they count as applied", func() {
				So(d.Size(), ShouldEqual, 2)
				So(d.SeenAndRecord(ctx, "y"), ShouldBeTrue)
			})
		})
	})

	Convey("Given a bounded deduper", t, func() {
		d := dedupe.NewInMemoryDeduper(dedupe.WithMaxSize(3))
		for _, id := range []string{"m1", "m2", "m3", "m4"} {
			So(d.SeenAndRecord(ctx, id), ShouldBeFalse)
		}

		Convey("Then the oldest id is evicted first", func() {
			So(d.Size(), ShouldEqual, 3)
			So(d.IDs(), ShouldResemble, []string{"m2", "m3", "m4"})
			So(d.SeenAndRecord(ctx, "m4"), ShouldBeTrue)
			So(d.SeenAndRecord(ctx, "m1"), ShouldBeFalse)
			So(d.IDs(), ShouldResemble, []string{"m3", "m4", "m1"})
		})

		Convey("Then unrecording inside a wrapped ring keeps order", func() {
			d.Unrecord(ctx, "m3")
			So(d.IDs(), ShouldResemble, []string{"m2", "m4"})
			So(d.SeenAndRecord(ctx, "m5"), ShouldBeFalse)
			So(d.SeenAndRecord(ctx, "m6"), ShouldBeFalse)
			So(d.IDs(), ShouldResemble, []string{"m4", "m5", "m6"})
		})
	})

	Convey("Given an unbounded deduper", t, func() {
		d := dedupe.NewInMemoryDeduper(dedupe.WithMaxSize(0))
		const n = 1000
		for i := 0; i < n; i++ {
			d.SeenAndRecord(ctx, fmt.Sprintf("match-%d", i))
		}

		Convey("Then nothing is evicted", func() {
			So(d.Size(), ShouldEqual, n)
			So(d.SeenAndRecord(ctx, "match-0"), ShouldBeTrue)
			d.Unrecord(ctx, "match-0")
			So(d.Size(), ShouldEqual, n-1)
		})
	})
}

func TestDedupeConcurrency(t *testing.T) {
	Convey("Given a deduper shared by goroutines", t, func() {
		d := dedupe.NewInMemoryDeduper(dedupe.WithMaxSize(1000))
		const workers = 10
		const perWorker = 100

		var wg sync.WaitGroup
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func(w int) {
				defer wg.Done()
				for j := 0; j < perWorker; j++ {
					d.SeenAndRecord(context.Background(), fmt.Sprintf("match-%d-%d", w, j))
				}
			}(i)
		}
		wg.Wait()

		Convey("Then every id is recorded once", func() {
			So(d.Size(), ShouldEqual, workers*perWorker)
		})
	})
}
