package logger

import (
	"bytes"
	"context"
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestLoggerInit(t *testing.T) {
	Convey("Given the global logger", t, func() {
		Convey("When it is initialized for stdout", func() {
			So(Init(), ShouldBeNil)

			Convey("Then Get returns a usable logger", func() {
				So(Get(), ShouldNotBeNil)
			})
		})

		Convey("When it is initialized with a nil writer", func() {
			err := InitWithWriter(nil)

			Convey("Then it should fail", func() {
				So(err, ShouldNotBeNil)
			})
		})
	})
}

func TestLoggerOutput(t *testing.T) {
	Convey("Given a logger writing to a buffer", t, func() {
		var buf bytes.Buffer
		So(InitWithWriter(&buf), ShouldBeNil)
		ctx := context.Background()

		Convey("When logging typed fields", func() {
			Get().Info(ctx, "match played",
				String("home", "London FC"),
				Int("goals", 3),
				Int64("income", 500000),
				Bool("user", true),
				Error(errors.New("boom")),
			)
			out := buf.String()

			Convey("Then every field and the caller are rendered", func() {
				So(out, ShouldContainSubstring, "match played")
				So(out, ShouldContainSubstring, "home=\"London FC\"")
				So(out, ShouldContainSubstring, "goals=3")
				So(out, ShouldContainSubstring, "income=500000")
				So(out, ShouldContainSubstring, "user=true")
				So(out, ShouldContainSubstring, "error=boom")
				So(out, ShouldContainSubstring, "logger_test.go")
			})
		})

		Convey("When logging through a named logger", func() {
			Named("season").Info(ctx, "week advanced", Int("week", 2))

			Convey("Then fields are grouped under the name", func() {
				So(buf.String(), ShouldContainSubstring, "season.week=2")
			})
		})

		Convey("When debug is below the configured level", func() {
			Get().Debug(ctx, "hidden")

			Convey("Then nothing is written", func() {
				So(buf.String(), ShouldBeEmpty)
			})
		})
	})
}

func TestSetLevelString(t *testing.T) {
	Convey("Given level names", t, func() {
		So(Init(), ShouldBeNil)

		Convey("Then known names are accepted", func() {
			for _, lvl := range []string{"debug", "INFO", " warn ", "warning", "error", ""} {
				So(SetLevelString(lvl), ShouldBeNil)
			}
		})

		Convey("Then unknown names are rejected", func() {
			So(SetLevelString("chatty"), ShouldNotBeNil)
		})
	})
}
