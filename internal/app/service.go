// Package service provides the career facade a front end drives: it owns
// the random source and the simulation workers, and applies every manager
// decision to an explicitly passed game state.
package service

import (
	"context"
	"sync"

	eventqueue "github.com/okian/matchday/internal/adapters/mq/queue"
	workerpool "github.com/okian/matchday/internal/adapters/mq/worker"
	"github.com/okian/matchday/internal/adapters/repository"
	"github.com/okian/matchday/internal/domain/dedupe"
	"github.com/okian/matchday/internal/domain/match"
	"github.com/okian/matchday/internal/domain/random"
	"github.com/okian/matchday/internal/domain/roster"
	"github.com/okian/matchday/internal/domain/season"
	"github.com/okian/matchday/pkg/logger"
)

const (
	defaultQueueSize  = 256
	defaultDedupeSize = 10_000
	defaultNewsLimit  = 100
)

// Service runs a career. All operations are serialised; the game state they
// receive must not be touched concurrently by the caller.
type Service struct {
	mu sync.Mutex

	// Core components
	src     random.Source
	season  *season.Season
	builder *roster.Builder
	deduper dedupe.Deduper
	store   repository.Store
	queue   eventqueue.Queue
	pool    *workerpool.Pool

	// Configuration
	workerCount int
	queueSize   int
	dedupeSize  int
	newsLimit   int
	matchOpts   []match.Option
	seasonOpts  []season.Option

	started bool

	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithWorkerCount sets the number of simulation workers.
func WithWorkerCount(count int) Option {
	return func(s *Service) {
		if count > 0 {
			s.workerCount = count
		}
	}
}

// WithQueueSize sets the capacity of the fixture queue.
func WithQueueSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.queueSize = size
		}
	}
}

// WithDedupeSize sets how many applied result ids are remembered.
func WithDedupeSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.dedupeSize = size
		}
	}
}

// WithNewsLimit caps the news feed kept in the game state.
func WithNewsLimit(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.newsLimit = n
		}
	}
}

// WithMatchOptions tunes every simulator the workers build.
func WithMatchOptions(opts ...match.Option) Option {
	return func(s *Service) {
		s.matchOpts = append(s.matchOpts, opts...)
	}
}

// WithSeasonOptions tunes progression, training and the market.
func WithSeasonOptions(opts ...season.Option) Option {
	return func(s *Service) {
		s.seasonOpts = append(s.seasonOpts, opts...)
	}
}

// WithStore sets the save store used by Save, Load and Slots.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		s.store = store
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New constructs a Service drawing every random decision from src.
func New(src random.Source, opts ...Option) *Service {
	s := &Service{
		src:        src,
		queueSize:  defaultQueueSize,
		dedupeSize: defaultDedupeSize,
		newsLimit:  defaultNewsLimit,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.season = season.New(src, s.seasonOpts...)
	s.builder = roster.New(src)
	s.deduper = dedupe.NewInMemoryDeduper(dedupe.WithMaxSize(s.dedupeSize))
	return s
}

// Start launches the simulation workers.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	s.queue = eventqueue.NewInMemoryQueue(eventqueue.WithCapacity(s.queueSize))
	s.pool = workerpool.NewPool(s.workerCount, s.queue, s.simulatorFor)
	s.pool.Start(ctx)

	s.started = true
	s.log().Info(ctx, "career service started",
		logger.Int("workers", s.pool.Size()),
		logger.Int("queueSize", s.queueSize),
		logger.Int("dedupeSize", s.dedupeSize),
	)
	return nil
}

// Stop drains the workers. The save store is left open for the caller.
func (s *Service) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return nil
	}
	s.started = false

	err := s.pool.Shutdown(ctx)
	if err != nil {
		s.log().Error(ctx, "worker pool shutdown failed", logger.Error(err))
	}
	s.log().Info(ctx, "career service stopped")
	return err
}

// log returns the service logger, falling back to the global one.
func (s *Service) log() logger.Logger {
	if s.logger == nil {
		s.logger = logger.Named("career")
	}
	return s.logger
}

// simulatorFor builds the simulator for one fixture job.
func (s *Service) simulatorFor(seed int64) workerpool.Simulator {
	return match.New(random.New(seed), s.matchOpts...)
}

// AppliedCount returns how many result ids are remembered as applied.
func (s *Service) AppliedCount() int64 {
	return s.deduper.Size()
}
