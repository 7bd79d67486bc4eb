package metrics

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"
)

func familyNames(g prometheus.Gatherer) map[string]bool {
	families, err := g.Gather()
	So(err, ShouldBeNil)
	names := make(map[string]bool, len(families))
	for _, f := range families {
		names[f.GetName()] = true
	}
	return names
}

func TestManagerCreation(t *testing.T) {
	Convey("Given a private registry", t, func() {
		registry := prometheus.NewRegistry()

		Convey("When a manager is created with custom options", func() {
			m := NewManager(
				WithNamespace("test"),
				WithSubsystem("sim"),
				WithHistogramBuckets([]float64{1, 10, 100}),
				WithPrometheusRegistry(registry),
			)
			m.matchesSimulated.Inc()
			m.cards.WithLabelValues("red").Inc()

			Convey("Then metrics are registered under the custom names", func() {
				names := familyNames(registry)
				So(names["test_sim_matches_simulated_total"], ShouldBeTrue)
				So(names["test_sim_cards_total"], ShouldBeTrue)
			})
		})

		Convey("When empty options are given", func() {
			m := NewManager(WithNamespace(""), WithSubsystem(""), WithHistogramBuckets(nil), WithPrometheusRegistry(registry))

			Convey("Then defaults are kept", func() {
				So(m.namespace, ShouldEqual, "matchday")
				So(m.subsystem, ShouldEqual, "career")
				So(m.histogramBuckets, ShouldResemble, prometheus.DefBuckets)
			})
		})
	})
}

func TestGlobalRecorders(t *testing.T) {
	Convey("Given the global manager", t, func() {
		Convey("When every recorder is called", func() {
			So(func() {
				RecordMatchSimulated(1.5)
				RecordGoals(3)
				RecordCard("yellow")
				RecordInjury("match")
				RecordSubstitutions(2)
				RecordDuplicateResult()
				RecordTraining("trained", 18)
				RecordContractOffer(true)
				RecordContractOffer(false)
				RecordTransfer("signed")
				UpdateCurrentWeek(4)
				RecordRepositoryLatency("save", 2)
				UpdateQueueSize(1)
				UpdateQueueCapacity(64)
				RecordQueueEnqueueError()
				UpdateWorkerActiveCount(4)
				RecordWorkerJob(0.3)
				RecordWorkerError()
				RecordErrorByComponent("app", "simulate")
			}, ShouldNotPanic)

			Convey("Then the registry exposes the game metrics", func() {
				names := familyNames(customRegistry)
				for _, n := range []string{
					"matchday_career_matches_simulated_total",
					"matchday_career_goals_total",
					"matchday_career_cards_total",
					"matchday_career_contract_offers_total",
					"matchday_career_current_week",
					"matchday_career_repository_latency_milliseconds",
					"matchday_career_worker_jobs_processed_total",
				} {
					So(names[n], ShouldBeTrue)
				}
			})
		})
	})
}

func TestWriteTextfile(t *testing.T) {
	Convey("Given a temporary directory", t, func() {
		path := filepath.Join(t.TempDir(), "matchday.prom")
		RecordGoals(1)

		Convey("When metrics are written", func() {
			err := WriteTextfile(path)

			Convey("Then the file holds the text exposition", func() {
				So(err, ShouldBeNil)
				body, readErr := os.ReadFile(path)
				So(readErr, ShouldBeNil)
				So(string(body), ShouldContainSubstring, "matchday_career_goals_total")
			})
		})

		Convey("When no path is configured", func() {
			err := WriteTextfile("")

			Convey("Then it is refused", func() {
				So(errors.Is(err, ErrNoPath), ShouldBeTrue)
			})
		})
	})
}
