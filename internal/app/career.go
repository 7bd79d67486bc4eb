package service

import (
	"context"
	"fmt"
	"strings"

	eventqueue "github.com/okian/matchday/internal/adapters/mq/queue"
	"github.com/okian/matchday/internal/adapters/repository"
	"github.com/okian/matchday/internal/domain/dedupe"
	"github.com/okian/matchday/internal/domain/model"
	"github.com/okian/matchday/internal/domain/news"
	"github.com/okian/matchday/internal/domain/roster"
	"github.com/okian/matchday/internal/domain/season"
	"github.com/okian/matchday/internal/domain/types"
	"github.com/okian/matchday/pkg/logger"
	"github.com/okian/matchday/pkg/metrics"
)

// WeekSummary is everything PlayWeek produced.
type WeekSummary struct {
	Week     int
	Fixtures []season.Fixture
	Results  []*model.MatchResult
	Report   season.WeekReport
	News     []model.NewsItem
}

// NewCareer generates a league from names, hands the manager the club at
// userIndex and lists the opening transfer market. The applied-results
// memory starts empty.
func (s *Service) NewCareer(ctx context.Context, names []string, userIndex int) (*model.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(names) < 2 {
		return nil, fmt.Errorf("%w: need at least two teams, got %d", ErrInvalidLeague, len(names))
	}
	if userIndex < 0 || userIndex >= len(names) {
		return nil, fmt.Errorf("%w: user index %d out of range", ErrInvalidLeague, userIndex)
	}
	for _, n := range names {
		if strings.TrimSpace(n) == "" {
			return nil, fmt.Errorf("%w: blank team name", ErrInvalidLeague)
		}
	}

	teams := s.builder.League(names)
	state := &model.GameState{
		Teams:       teams,
		UserTeamID:  teams[userIndex].ID,
		CurrentWeek: 1,
		News:        []model.NewsItem{},
	}
	s.season.RefreshMarket(state)
	s.deduper = dedupe.NewInMemoryDeduper(dedupe.WithMaxSize(s.dedupeSize))
	metrics.UpdateCurrentWeek(state.CurrentWeek)

	s.log().Info(ctx, "new career",
		logger.Int("teams", len(teams)),
		logger.String("userTeam", teams[userIndex].Name),
		logger.Int("market", len(state.TransferMarket)),
	)
	return state, nil
}

// PlayWeek simulates the current round on the worker pool, applies the
// results and closes the week. Each fixture is simulated from its own seed,
// drawn from the master source in fixture order, so the outcome does not
// depend on how jobs are scheduled. On error the state is left untouched.
func (s *Service) PlayWeek(ctx context.Context, state *model.GameState) (*WeekSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return nil, ErrNotStarted
	}

	fixtures := season.Fixtures(state.Teams, state.CurrentWeek)
	for _, f := range fixtures {
		for _, t := range []*model.Team{f.Home, f.Away} {
			if !roster.CanField(t) {
				metrics.RecordErrorByComponent("career", "short_squad")
				s.log().Warn(ctx, "club cannot field a full fit eleven",
					logger.String("team", t.Name),
					logger.Int("week", state.CurrentWeek),
				)
			}
		}
	}
	results, err := s.simulate(ctx, state, fixtures)
	if err != nil {
		return nil, err
	}

	rep, items, err := s.apply(ctx, state, results)
	if err != nil {
		return nil, err
	}
	return &WeekSummary{
		Week:     rep.Week,
		Fixtures: fixtures,
		Results:  results,
		Report:   rep,
		News:     items,
	}, nil
}

func (s *Service) simulate(ctx context.Context, state *model.GameState, fixtures []season.Fixture) ([]*model.MatchResult, error) {
	seeds := make([]int64, len(fixtures))
	for i := range fixtures {
		seeds[i] = s.src.Int63()
	}

	reply := make(chan eventqueue.Outcome, len(fixtures))
	for i, f := range fixtures {
		ok := s.queue.Enqueue(ctx, eventqueue.Job{
			Index: i,
			Home:  f.Home,
			Away:  f.Away,
			Seed:  seeds[i],
			Reply: reply,
		})
		if !ok {
			return nil, fmt.Errorf("week %d fixture %d: %w", state.CurrentWeek, i, ErrQueueFull)
		}
	}

	results := make([]*model.MatchResult, len(fixtures))
	for range fixtures {
		select {
		case out := <-reply:
			if out.Err != nil {
				s.log().Error(ctx, "fixture failed",
					logger.Int("week", state.CurrentWeek),
					logger.Int("fixture", out.Index),
					logger.Error(out.Err),
				)
				return nil, fmt.Errorf("week %d: %w", state.CurrentWeek, out.Err)
			}
			results[out.Index] = out.Result
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return results, nil
}

// ApplyResults closes the current week with results simulated elsewhere.
// Results whose id was already applied are skipped. Results without an id
// are always applied. If nothing is left to apply the week does not
// advance: ErrAlreadyApplied is returned when any result was a repeat,
// ErrUnknownTeam when every result named a club outside the league.
func (s *Service) ApplyResults(ctx context.Context, state *model.GameState, results []*model.MatchResult) (season.WeekReport, []model.NewsItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.apply(ctx, state, results)
}

func (s *Service) apply(ctx context.Context, state *model.GameState, results []*model.MatchResult) (season.WeekReport, []model.NewsItem, error) {
	fresh := make([]*model.MatchResult, 0, len(results))
	repeats := 0
	for _, res := range results {
		if res == nil || state.FindTeam(res.HomeTeamID) == nil || state.FindTeam(res.AwayTeamID) == nil {
			s.log().Warn(ctx, "skipping result for unknown team")
			continue
		}
		if res.ID != "" && s.deduper.SeenAndRecord(ctx, res.ID) {
			repeats++
			metrics.RecordDuplicateResult()
			s.log().Debug(ctx, "duplicate result skipped", logger.String("resultID", res.ID))
			continue
		}
		fresh = append(fresh, res)
	}
	if len(results) > 0 && len(fresh) == 0 {
		if repeats > 0 {
			return season.WeekReport{}, nil, fmt.Errorf("week %d: %w", state.CurrentWeek, ErrAlreadyApplied)
		}
		return season.WeekReport{}, nil, fmt.Errorf("week %d: %w", state.CurrentWeek, ErrUnknownTeam)
	}

	rep := s.season.AdvanceWeek(state, fresh)

	items := make([]model.NewsItem, 0, len(fresh)+len(rep.Injured))
	for _, res := range fresh {
		recordResult(res)
		items = append(items, news.MatchReport(res, rep.Week, state.FindTeam(res.HomeTeamID), state.FindTeam(res.AwayTeamID)))
	}
	for _, id := range rep.Injured {
		if team, p := findPlayer(state, id); p != nil && p.IsInjured {
			items = append(items, news.Injury(rep.Week, p, team))
		}
	}
	s.publish(state, items...)
	metrics.UpdateCurrentWeek(state.CurrentWeek)

	s.log().Info(ctx, "week completed",
		logger.Int("week", rep.Week),
		logger.Int("results", rep.Applied),
		logger.Int("injured", len(rep.Injured)),
		logger.Int("healed", len(rep.Healed)),
		logger.Int64("wageBill", rep.WageBill),
		logger.Bool("marketRefreshed", rep.MarketRefreshed),
	)
	return rep, items, nil
}

func recordResult(res *model.MatchResult) {
	metrics.RecordGoals(res.TotalGoals())
	subs := 0
	for _, e := range res.Events {
		switch e.Type {
		case model.EventYellowCard:
			metrics.RecordCard("yellow")
		case model.EventRedCard:
			metrics.RecordCard("red")
		case model.EventInjury:
			metrics.RecordInjury("match")
		case model.EventSubstitution:
			subs++
		}
	}
	metrics.RecordSubstitutions(subs)
}

// publish appends items to the feed, keeping the newest newsLimit.
func (s *Service) publish(state *model.GameState, items ...model.NewsItem) {
	state.News = append(state.News, items...)
	if over := len(state.News) - s.newsLimit; over > 0 {
		state.News = append([]model.NewsItem(nil), state.News[over:]...)
	}
}

func findPlayer(state *model.GameState, id string) (*model.Team, *model.Player) {
	for _, t := range state.Teams {
		if p := t.FindPlayer(id); p != nil {
			return t, p
		}
	}
	return nil, nil
}

func userTeam(state *model.GameState) (*model.Team, error) {
	team := state.UserTeam()
	if team == nil {
		return nil, fmt.Errorf("%q: %w", state.UserTeamID, ErrNoUserTeam)
	}
	return team, nil
}

// Train runs a drill for the whole user squad.
func (s *Service) Train(ctx context.Context, state *model.GameState, drill string) (season.TrainingReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := season.ParseDrill(drill)
	if err != nil {
		return season.TrainingReport{}, err
	}
	team, err := userTeam(state)
	if err != nil {
		return season.TrainingReport{}, err
	}
	rep, err := s.season.Train(team, d)
	if err != nil {
		return rep, err
	}

	metrics.RecordTraining(string(season.OutcomeTrained), len(rep.Trained))
	metrics.RecordTraining(string(season.OutcomeInjured), len(rep.Injured))
	metrics.RecordTraining(string(season.OutcomeSkipped), len(rep.Skipped))
	metrics.RecordTraining(string(season.OutcomeUnavailable), len(rep.Unavailable))
	for _, id := range rep.Injured {
		metrics.RecordInjury("training")
		if p := team.FindPlayer(id); p != nil {
			s.publish(state, news.Injury(state.CurrentWeek, p, team))
		}
	}

	s.log().Info(ctx, "training session",
		logger.String("drill", string(d)),
		logger.Int("trained", len(rep.Trained)),
		logger.Int("improved", len(rep.Improved)),
		logger.Int("injured", len(rep.Injured)),
		logger.Int("skipped", len(rep.Skipped)),
	)
	return rep, nil
}

// TrainPlayer runs a drill for one player of the user squad.
func (s *Service) TrainPlayer(ctx context.Context, state *model.GameState, playerID, drill string) (season.Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := season.ParseDrill(drill)
	if err != nil {
		return "", err
	}
	team, err := userTeam(state)
	if err != nil {
		return "", err
	}
	out, err := s.season.TrainPlayer(team, playerID, d)
	if err != nil {
		return "", err
	}
	metrics.RecordTraining(string(out), 1)
	if out == season.OutcomeInjured {
		metrics.RecordInjury("training")
		s.publish(state, news.Injury(state.CurrentWeek, team.FindPlayer(playerID), team))
	}
	s.log().Debug(ctx, "individual training",
		logger.String("playerID", playerID),
		logger.String("drill", string(d)),
		logger.String("outcome", string(out)),
	)
	return out, nil
}

// OfferContract offers a user squad player a new deal.
func (s *Service) OfferContract(ctx context.Context, state *model.GameState, playerID string, wage int64, years int) (season.ContractResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	team, err := userTeam(state)
	if err != nil {
		return season.ContractResult{}, err
	}
	res, err := s.season.OfferTeamContract(team, playerID, wage, years)
	if err != nil {
		return res, err
	}
	metrics.RecordContractOffer(res.Accepted)
	s.log().Info(ctx, "contract offer",
		logger.String("playerID", playerID),
		logger.Int64("wage", wage),
		logger.Int("years", years),
		logger.Float64("probability", res.Probability),
		logger.Bool("accepted", res.Accepted),
	)
	return res, nil
}

// Buy signs a market player for the user team.
func (s *Service) Buy(ctx context.Context, state *model.GameState, playerID string) (*model.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	team, err := userTeam(state)
	if err != nil {
		return nil, err
	}
	p, err := s.season.Buy(state, team.ID, playerID)
	if err != nil {
		s.log().Debug(ctx, "purchase denied", logger.String("playerID", playerID), logger.Error(err))
		return nil, err
	}
	metrics.RecordTransfer(news.Signed)
	s.publish(state, news.Transfer(state.CurrentWeek, news.Signed, p, team, p.Value))
	s.log().Info(ctx, "player signed",
		logger.String("player", p.Name),
		logger.Int64("fee", p.Value),
		logger.Int64("budget", team.Budget),
	)
	return p, nil
}

// Sell sells a user squad player and returns the fee received.
func (s *Service) Sell(ctx context.Context, state *model.GameState, playerID string) (int64, error) {
	return s.depart(ctx, state, playerID, news.Sold, season.Sell)
}

// Release terminates a user squad player's contract and returns the
// severance paid.
func (s *Service) Release(ctx context.Context, state *model.GameState, playerID string) (int64, error) {
	return s.depart(ctx, state, playerID, news.Released, season.Release)
}

func (s *Service) depart(ctx context.Context, state *model.GameState, playerID, kind string, op func(*model.Team, string) (int64, error)) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	team, err := userTeam(state)
	if err != nil {
		return 0, err
	}
	p := team.FindPlayer(playerID)
	amount, err := op(team, playerID)
	if err != nil {
		s.log().Debug(ctx, "departure denied",
			logger.String("kind", kind),
			logger.String("playerID", playerID),
			logger.Error(err),
		)
		return 0, err
	}
	metrics.RecordTransfer(kind)
	s.publish(state, news.Transfer(state.CurrentWeek, kind, p, team, amount))
	s.log().Info(ctx, "player left",
		logger.String("kind", kind),
		logger.String("player", p.Name),
		logger.Int64("amount", amount),
		logger.Int64("budget", team.Budget),
	)
	return amount, nil
}

// SetTactics replaces the user team's match plan.
func (s *Service) SetTactics(ctx context.Context, state *model.GameState, tactics model.Tactics) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	team, err := userTeam(state)
	if err != nil {
		return err
	}
	team.Tactics = tactics
	s.log().Debug(ctx, "tactics changed",
		logger.String("formation", string(tactics.Formation)),
		logger.String("intensity", string(tactics.Intensity)),
		logger.String("style", string(tactics.Style)),
	)
	return nil
}

// Table returns the league standings.
func (s *Service) Table(state *model.GameState) []types.Standing {
	return season.Table(state.Teams)
}

// Save writes state and the applied-results memory to slot.
func (s *Service) Save(ctx context.Context, slot string, state *model.GameState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.store == nil {
		return ErrNoStore
	}
	if err := s.store.Save(ctx, slot, repository.Snapshot{State: state, Applied: s.deduper.IDs()}); err != nil {
		return err
	}
	s.log().Info(ctx, "career saved", logger.String("slot", slot), logger.Int("week", state.CurrentWeek))
	return nil
}

// Load reads slot and restores the applied-results memory with it.
func (s *Service) Load(ctx context.Context, slot string) (*model.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.store == nil {
		return nil, ErrNoStore
	}
	snap, err := s.store.Load(ctx, slot)
	if err != nil {
		return nil, err
	}
	s.deduper = dedupe.NewInMemoryDeduper(dedupe.WithMaxSize(s.dedupeSize))
	s.deduper.Seed(ctx, snap.Applied)
	metrics.UpdateCurrentWeek(snap.State.CurrentWeek)

	s.log().Info(ctx, "career loaded",
		logger.String("slot", slot),
		logger.Int("week", snap.State.CurrentWeek),
		logger.Int("applied", len(snap.Applied)),
	)
	return snap.State, nil
}

// Slots lists the saves in the store.
func (s *Service) Slots(ctx context.Context) ([]repository.Slot, error) {
	if s.store == nil {
		return nil, ErrNoStore
	}
	return s.store.Slots(ctx)
}
