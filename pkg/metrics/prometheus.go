// Package metrics provides Prometheus metrics for the matchday career engine.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the career engine.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Game Metrics - what happened on the pitch
	matchesSimulated  prometheus.Counter
	goals             prometheus.Counter
	cards             *prometheus.CounterVec
	injuries          *prometheus.CounterVec
	substitutions     prometheus.Counter
	simulationLatency prometheus.Histogram
	duplicateResults  prometheus.Counter

	// Club Business Metrics - decisions taken by the manager
	trainingSessions *prometheus.CounterVec
	contractOffers   *prometheus.CounterVec
	transfers        *prometheus.CounterVec
	currentWeek      prometheus.Gauge

	// Repository Metrics - save slot timings
	repositoryLatency *prometheus.HistogramVec

	// Queue Metrics
	queueSize          prometheus.Gauge
	queueCapacity      prometheus.Gauge
	queueEnqueueErrors prometheus.Counter

	// Worker Metrics
	workerActiveCount       prometheus.Gauge
	workerJobsProcessed     prometheus.Counter
	workerProcessingLatency prometheus.Histogram
	workerErrors            prometheus.Counter

	errorsByComponent *prometheus.CounterVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "matchday",
		subsystem:        "career",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) counter(name, help string) prometheus.Counter {
	return promauto.With(m.registry).NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      name,
		Help:      help,
	})
}

func (m *Manager) counterVec(name, help string, labels ...string) *prometheus.CounterVec {
	return promauto.With(m.registry).NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      name,
		Help:      help,
	}, labels)
}

func (m *Manager) gauge(name, help string) prometheus.Gauge {
	return promauto.With(m.registry).NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      name,
		Help:      help,
	})
}

func (m *Manager) histogram(name, help string) prometheus.Histogram {
	return promauto.With(m.registry).NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      name,
		Help:      help,
		Buckets:   m.histogramBuckets,
	})
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	m.matchesSimulated = m.counter("matches_simulated_total", "Total number of matches simulated")
	m.goals = m.counter("goals_total", "Total number of goals scored in simulated matches")
	m.cards = m.counterVec("cards_total", "Cards shown by colour", "colour")
	m.injuries = m.counterVec("injuries_total", "Injuries by source (match or training)", "source")
	m.substitutions = m.counter("substitutions_total", "Total number of substitutions made")
	m.simulationLatency = m.histogram("simulation_latency_milliseconds", "Histogram of single match simulation latency in milliseconds")
	m.duplicateResults = m.counter("duplicate_results_total", "Match results rejected because they were already applied")

	m.trainingSessions = m.counterVec("training_players_total", "Players processed by training sessions, by outcome", "outcome")
	m.contractOffers = m.counterVec("contract_offers_total", "Contract offers by outcome", "outcome")
	m.transfers = m.counterVec("transfers_total", "Transfers by kind (signed, sold, released)", "kind")
	m.currentWeek = m.gauge("current_week", "Current week of the active career")

	m.repositoryLatency = promauto.With(m.registry).NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "repository_latency_milliseconds",
		Help:      "Save store operation latency in milliseconds",
		Buckets:   m.histogramBuckets,
	}, []string{"operation"})

	m.queueSize = m.gauge("queue_size", "Current number of fixture jobs waiting in the queue")
	m.queueCapacity = m.gauge("queue_capacity", "Maximum number of fixture jobs the queue holds")
	m.queueEnqueueErrors = m.counter("queue_enqueue_errors_total", "Fixture jobs rejected by the queue")

	m.workerActiveCount = m.gauge("worker_active_count", "Number of simulation workers")
	m.workerJobsProcessed = m.counter("worker_jobs_processed_total", "Fixture jobs simulated by workers")
	m.workerProcessingLatency = m.histogram("worker_processing_latency_milliseconds", "Worker job latency in milliseconds")
	m.workerErrors = m.counter("worker_errors_total", "Fixture jobs that failed to simulate")

	m.errorsByComponent = m.counterVec("errors_total", "Errors by component and type", "component", "error_type")
}

// Game metrics.

// RecordMatchSimulated counts one simulated match and its latency.
func RecordMatchSimulated(latencyMs float64) {
	globalManager.matchesSimulated.Inc()
	globalManager.simulationLatency.Observe(latencyMs)
}

// RecordGoals adds n goals.
func RecordGoals(n int) {
	globalManager.goals.Add(float64(n))
}

// RecordCard counts a card of colour ("yellow" or "red").
func RecordCard(colour string) {
	globalManager.cards.WithLabelValues(colour).Inc()
}

// RecordInjury counts an injury from source ("match" or "training").
func RecordInjury(source string) {
	globalManager.injuries.WithLabelValues(source).Inc()
}

// RecordSubstitutions adds n substitutions.
func RecordSubstitutions(n int) {
	globalManager.substitutions.Add(float64(n))
}

// RecordDuplicateResult counts a result that was already applied.
func RecordDuplicateResult() {
	globalManager.duplicateResults.Inc()
}

// Club metrics.

// RecordTraining adds n players with the given training outcome.
func RecordTraining(outcome string, n int) {
	globalManager.trainingSessions.WithLabelValues(outcome).Add(float64(n))
}

// RecordContractOffer counts an offer by outcome.
func RecordContractOffer(accepted bool) {
	outcome := "rejected"
	if accepted {
		outcome = "accepted"
	}
	globalManager.contractOffers.WithLabelValues(outcome).Inc()
}

// RecordTransfer counts a transfer of kind.
func RecordTransfer(kind string) {
	globalManager.transfers.WithLabelValues(kind).Inc()
}

// UpdateCurrentWeek sets the current week gauge.
func UpdateCurrentWeek(week int) {
	globalManager.currentWeek.Set(float64(week))
}

// Repository metrics.

// RecordRepositoryLatency observes a save store operation.
func RecordRepositoryLatency(operation string, latencyMs float64) {
	globalManager.repositoryLatency.WithLabelValues(operation).Observe(latencyMs)
}

// Queue metrics.

// UpdateQueueSize sets the current queue size.
func UpdateQueueSize(size int) {
	globalManager.queueSize.Set(float64(size))
}

// UpdateQueueCapacity sets the queue capacity.
func UpdateQueueCapacity(capacity int) {
	globalManager.queueCapacity.Set(float64(capacity))
}

// RecordQueueEnqueueError counts a rejected job.
func RecordQueueEnqueueError() {
	globalManager.queueEnqueueErrors.Inc()
}

// Worker metrics.

// UpdateWorkerActiveCount sets the number of workers.
func UpdateWorkerActiveCount(count int) {
	globalManager.workerActiveCount.Set(float64(count))
}

// RecordWorkerJob counts a processed job and its latency.
func RecordWorkerJob(latencyMs float64) {
	globalManager.workerJobsProcessed.Inc()
	globalManager.workerProcessingLatency.Observe(latencyMs)
}

// RecordWorkerError counts a failed job.
func RecordWorkerError() {
	globalManager.workerErrors.Inc()
}

// RecordErrorByComponent records errors by component and type.
func RecordErrorByComponent(component, errorType string) {
	globalManager.errorsByComponent.WithLabelValues(component, errorType).Inc()
}

// WriteTextfile writes the current metrics to path in the Prometheus text
// format, for pickup by a node exporter textfile collector.
func WriteTextfile(path string) error {
	if path == "" {
		return ErrNoPath
	}
	if err := prometheus.WriteToTextfile(path, customRegistry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
