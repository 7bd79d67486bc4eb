package balance

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/okian/matchday/internal/adapters/mq/queue"
	"github.com/okian/matchday/internal/adapters/mq/worker"
	"github.com/okian/matchday/internal/domain/match"
	"github.com/okian/matchday/internal/domain/model"
	"github.com/okian/matchday/internal/domain/random"
	"github.com/okian/matchday/internal/domain/roster"
	"github.com/okian/matchday/pkg/logger"
)

const (
	directoryPermission = 0o750
	filePermission      = 0o600
)

// Run simulates cfg.Matches matches between two identical squads and
// verifies every result. It returns ErrInvariant when any result fails.
func Run(ctx context.Context, cfg *Config) (*Stats, error) {
	if cfg.Matches < 1 {
		return nil, ErrNoMatches
	}
	log := logger.Get().Named("balance")
	stats := &Stats{StartTime: time.Now()}

	log.Info(ctx, "starting balance run",
		logger.Int("matches", cfg.Matches),
		logger.Int("workers", cfg.Workers),
		logger.Int64("seed", cfg.Seed),
		logger.Int("stadiumLevel", cfg.StadiumLevel),
	)

	src := random.New(cfg.Seed)
	home, away := EqualSquads(src)
	if cfg.StadiumLevel > 0 {
		home.StadiumLevel = cfg.StadiumLevel
	}

	results, err := simulate(ctx, cfg, src, home, away)
	if err != nil {
		return nil, err
	}

	for i, res := range results {
		tally(stats, res)
		if err := Verify(res); err != nil {
			stats.Violations++
			if cfg.Verbose {
				log.Warn(ctx, "invariant violated", logger.Int("match", i), logger.Error(err))
			}
		}
	}

	if cfg.OutputFile != "" {
		if err := saveResults(cfg.OutputFile, results); err != nil {
			log.Warn(ctx, "failed to save results to file", logger.Error(err))
		} else {
			log.Info(ctx, "results saved to file", logger.String("filename", cfg.OutputFile))
		}
	}

	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)
	displayFinalStats(ctx, log, stats)

	if stats.Violations > 0 {
		return stats, fmt.Errorf("%d of %d results: %w", stats.Violations, stats.Matches, ErrInvariant)
	}
	return stats, nil
}

// EqualSquads generates one club and a copy of it under another identity,
// so neither side has a squad advantage.
func EqualSquads(src random.Source) (home, away *model.Team) {
	home = roster.New(src).Team("Home")
	away = &model.Team{}
	*away = *home
	away.ID = random.ID(src)
	away.Name = "Away"
	away.Players = make([]*model.Player, len(home.Players))
	for i, p := range home.Players {
		cp := *p
		cp.ID = random.ID(src)
		away.Players[i] = &cp
	}
	return home, away
}

// simulate runs the matches through the worker pool in batches no larger
// than the queue. Seeds are drawn up front so results are independent of
// scheduling.
func simulate(ctx context.Context, cfg *Config, src random.Source, home, away *model.Team) ([]*model.MatchResult, error) {
	seeds := make([]int64, cfg.Matches)
	for i := range seeds {
		seeds[i] = src.Int63()
	}

	batch := min(cfg.Matches, maxBatch)
	q := queue.NewInMemoryQueue(queue.WithCapacity(batch))
	pool := worker.NewPool(cfg.Workers, q, func(seed int64) worker.Simulator {
		return match.New(random.New(seed))
	})
	pool.Start(ctx)
	defer func() { _ = pool.Shutdown(context.Background()) }()

	results := make([]*model.MatchResult, cfg.Matches)
	for start := 0; start < cfg.Matches; start += batch {
		end := min(start+batch, cfg.Matches)
		reply := make(chan queue.Outcome, end-start)
		for i := start; i < end; i++ {
			if !q.Enqueue(ctx, queue.Job{Index: i, Home: home, Away: away, Seed: seeds[i], Reply: reply}) {
				return nil, fmt.Errorf("enqueue match %d: queue rejected job", i)
			}
		}
		for i := start; i < end; i++ {
			select {
			case out := <-reply:
				if out.Err != nil {
					return nil, out.Err
				}
				results[out.Index] = out.Result
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}
	return results, nil
}

func tally(stats *Stats, res *model.MatchResult) {
	stats.Matches++
	stats.Goals += res.TotalGoals()
	switch res.WinnerID() {
	case res.HomeTeamID:
		stats.HomeWins++
	case res.AwayTeamID:
		stats.AwayWins++
	default:
		stats.Draws++
	}
	for _, e := range res.Events {
		switch e.Type {
		case model.EventYellowCard, model.EventRedCard:
			stats.Cards++
		case model.EventInjury:
			stats.Injuries++
		case model.EventSubstitution:
			stats.Subs++
		}
	}
}

func saveResults(filename string, results []*model.MatchResult) error {
	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, directoryPermission); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	if err := os.WriteFile(filename, data, filePermission); err != nil {
		return fmt.Errorf("failed to write results: %w", err)
	}
	return nil
}

// displayFinalStats logs the run summary.
func displayFinalStats(ctx context.Context, log logger.Logger, stats *Stats) {
	var perSecond float64
	if stats.Duration > 0 {
		perSecond = float64(stats.Matches) / stats.Duration.Seconds()
	}
	log.Info(ctx, "final statistics",
		logger.String("matches", humanize.Comma(int64(stats.Matches))),
		logger.Float64("homeWinPct", stats.HomeWinRate()),
		logger.Float64("drawPct", stats.DrawRate()),
		logger.Float64("awayWinPct", stats.AwayWinRate()),
		logger.Float64("avgGoals", stats.AverageGoals()),
		logger.Int("cards", stats.Cards),
		logger.Int("injuries", stats.Injuries),
		logger.Int("substitutions", stats.Subs),
		logger.Int("violations", stats.Violations),
		logger.String("duration", stats.Duration.String()),
		logger.Float64("matchesPerSecond", perSecond),
	)
}
