package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/okian/matchday/internal/adapters/repository"
	app "github.com/okian/matchday/internal/app"
	"github.com/okian/matchday/internal/config"
	"github.com/okian/matchday/internal/domain/match"
	"github.com/okian/matchday/internal/domain/model"
	"github.com/okian/matchday/internal/domain/random"
	"github.com/okian/matchday/internal/domain/season"
	"github.com/okian/matchday/pkg/logger"
	"github.com/okian/matchday/pkg/metrics"
)

const shutdownTimeout = 30 * time.Second

func main() {
	// Initialize logging
	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	if err := run(ctx, cfg, os.Stdout); err != nil {
		logger.Get().Error(ctx, "career run failed", logger.Error(err))
		os.Exit(1)
	}
}

// run loads or starts the configured career, plays the configured weeks,
// prints the table and saves.
func run(ctx context.Context, cfg *config.Config, out io.Writer) error {
	log := logger.Get()

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Info(ctx, "career seed", logger.Int64("seed", seed))

	store, err := repository.Open(ctx, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open save store: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Error(ctx, "closing save store failed", logger.Error(err))
		}
	}()

	svc := app.New(random.New(seed),
		app.WithLogger(log.Named("career")),
		app.WithWorkerCount(cfg.WorkerCount),
		app.WithStore(store),
		app.WithMatchOptions(
			match.WithSubChance(cfg.SubChance),
			match.WithStraightRedChance(cfg.StraightRedChance),
		),
		app.WithSeasonOptions(
			season.WithMarketSize(cfg.MarketSize),
			season.WithFatigueInjuryChance(cfg.FatigueInjuryChance),
		),
	)
	if err := svc.Start(ctx); err != nil {
		return fmt.Errorf("start service: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = svc.Stop(shutdownCtx)
	}()

	state, err := svc.Load(ctx, cfg.SaveSlot)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		state, err = svc.NewCareer(ctx, cfg.TeamNames, cfg.UserTeamIndex)
		if err != nil {
			return fmt.Errorf("new career: %w", err)
		}
	case err != nil:
		return fmt.Errorf("load slot %q: %w", cfg.SaveSlot, err)
	}

	for i := 0; i < cfg.WeeksToPlay; i++ {
		sum, err := svc.PlayWeek(ctx, state)
		if err != nil {
			return fmt.Errorf("play week %d: %w", state.CurrentWeek, err)
		}
		printWeek(out, sum)
	}

	printTable(out, svc, state)

	if err := svc.Save(ctx, cfg.SaveSlot, state); err != nil {
		return fmt.Errorf("save slot %q: %w", cfg.SaveSlot, err)
	}

	if cfg.MetricsFile != "" {
		if err := metrics.WriteTextfile(cfg.MetricsFile); err != nil {
			log.Warn(ctx, "writing metrics failed", logger.String("path", cfg.MetricsFile), logger.Error(err))
		}
	}
	return nil
}

func printWeek(out io.Writer, sum *app.WeekSummary) {
	fmt.Fprintf(out, "Week %d\n", sum.Week)
	for i, f := range sum.Fixtures {
		res := sum.Results[i]
		fmt.Fprintf(out, "  %s %d - %d %s\n", f.Home.Name, res.HomeScore, res.AwayScore, f.Away.Name)
	}
	for _, item := range sum.News {
		fmt.Fprintf(out, "  * %s\n", item.Title)
	}
}

func printTable(out io.Writer, svc *app.Service, state *model.GameState) {
	user := state.UserTeam()
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tClub\tP\tW\tD\tL\tGF\tGD\tPts\t")
	for _, row := range svc.Table(state) {
		marker := ""
		if user != nil && row.TeamID == user.ID {
			marker = " *"
		}
		fmt.Fprintf(tw, "%d\t%s%s\t%d\t%d\t%d\t%d\t%d\t%+d\t%d\t\n",
			row.Rank, row.Name, marker, row.Played, row.Wins, row.Draws, row.Losses, row.GoalsFor, row.GoalDiff, row.Points)
	}
	_ = tw.Flush()
	if user != nil {
		fmt.Fprintf(out, "Budget: $%s  Week: %d\n", humanize.Comma(user.Budget), state.CurrentWeek)
	}
}
