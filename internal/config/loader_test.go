package config_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/okian/matchday/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()

		convey.Convey("When loading config with defaults only", func() {
			clearConfigEnvVars(t)

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldResemble, config.New(ctx))
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			clearConfigEnvVars(t)
			t.Setenv("MATCHDAY_SEED", "12345")
			t.Setenv("MATCHDAY_DB_PATH", "/tmp/other.db")
			t.Setenv("MATCHDAY_WEEKS_TO_PLAY", "4")
			t.Setenv("MATCHDAY_WORKER_COUNT", "8")
			t.Setenv("MATCHDAY_SUB_CHANCE", "0.1")
			t.Setenv("MATCHDAY_TEAM_NAMES", "Alpha, Beta ,Gamma")
			t.Setenv("MATCHDAY_USER_TEAM_INDEX", "2")

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Seed, convey.ShouldEqual, int64(12345))
				convey.So(cfg.DBPath, convey.ShouldEqual, "/tmp/other.db")
				convey.So(cfg.WeeksToPlay, convey.ShouldEqual, 4)
				convey.So(cfg.WorkerCount, convey.ShouldEqual, 8)
				convey.So(cfg.SubChance, convey.ShouldEqual, 0.1)
				convey.So(cfg.TeamNames, convey.ShouldResemble, []string{"Alpha", "Beta", "Gamma"})
				convey.So(cfg.UserTeamIndex, convey.ShouldEqual, 2)
				convey.So(cfg.SaveSlot, convey.ShouldEqual, "career")
			})
		})

		convey.Convey("When loading config with a YAML file", func() {
			clearConfigEnvVars(t)
			path := writeConfigFile(t, `
save_slot: weekend
weeks_to_play: 3
market_size: 10
team_names:
  - Alpha
  - Beta
  - Gamma
  - Delta
straight_red_chance: 0.2
`)
			t.Setenv("MATCHDAY_CONFIG", path)

			cfg, err := config.Load(ctx)

			convey.Convey("Then file values replace defaults and the rest are kept", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.SaveSlot, convey.ShouldEqual, "weekend")
				convey.So(cfg.WeeksToPlay, convey.ShouldEqual, 3)
				convey.So(cfg.MarketSize, convey.ShouldEqual, 10)
				convey.So(cfg.TeamNames, convey.ShouldResemble, []string{"Alpha", "Beta", "Gamma", "Delta"})
				convey.So(cfg.StraightRedChance, convey.ShouldEqual, 0.2)
				convey.So(cfg.DBPath, convey.ShouldEqual, "matchday.db")
			})
		})

		convey.Convey("When both file and environment variables are set", func() {
			clearConfigEnvVars(t)
			path := writeConfigFile(t, "weeks_to_play: 3\nmarket_size: 10\n")
			t.Setenv("MATCHDAY_CONFIG", path)
			t.Setenv("MATCHDAY_WEEKS_TO_PLAY", "6")

			cfg, err := config.Load(ctx)

			convey.Convey("Then environment variables win", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.WeeksToPlay, convey.ShouldEqual, 6)
				convey.So(cfg.MarketSize, convey.ShouldEqual, 10)
			})
		})

		convey.Convey("When the YAML file is invalid", func() {
			clearConfigEnvVars(t)
			t.Setenv("MATCHDAY_CONFIG", writeConfigFile(t, "invalid: yaml: content: ["))

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a load error", func() {
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When the config file does not exist", func() {
			clearConfigEnvVars(t)
			t.Setenv("MATCHDAY_CONFIG", "/non/existent/file.yaml")

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a load error", func() {
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When a numeric variable does not parse", func() {
			clearConfigEnvVars(t)
			t.Setenv("MATCHDAY_WEEKS_TO_PLAY", "not_a_number")

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return an error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When a probability is out of range", func() {
			clearConfigEnvVars(t)
			t.Setenv("MATCHDAY_FATIGUE_INJURY_CHANCE", "1.5")

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a validation error", func() {
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
				convey.So(err.Error(), convey.ShouldContainSubstring, "fatigue_injury_chance")
				convey.So(cfg, convey.ShouldBeNil)
			})
		})
	})
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "matchday.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

// clearConfigEnvVars blanks every variable the loader reads. t.Setenv
// restores the previous values when the test ends.
func clearConfigEnvVars(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"MATCHDAY_CONFIG", "MATCHDAY_LOG_LEVEL", "MATCHDAY_SEED", "MATCHDAY_DB_PATH",
		"MATCHDAY_SAVE_SLOT", "MATCHDAY_TEAM_NAMES", "MATCHDAY_USER_TEAM_INDEX",
		"MATCHDAY_WEEKS_TO_PLAY", "MATCHDAY_MARKET_SIZE", "MATCHDAY_WORKER_COUNT",
		"MATCHDAY_METRICS_FILE", "MATCHDAY_SUB_CHANCE", "MATCHDAY_STRAIGHT_RED_CHANCE",
		"MATCHDAY_FATIGUE_INJURY_CHANCE",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}
