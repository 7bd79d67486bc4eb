package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/okian/matchday/internal/domain/model"
	"github.com/okian/matchday/pkg/metrics"
)

const defaultBusyTimeout = 5 * time.Second

const schema = `
CREATE TABLE IF NOT EXISTS saves (
	slot TEXT PRIMARY KEY,
	user_team_id TEXT NOT NULL,
	current_week INTEGER NOT NULL,
	teams_json TEXT NOT NULL,
	market_json TEXT NOT NULL,
	news_json TEXT NOT NULL,
	applied_json TEXT NOT NULL,
	saved_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_saves_saved_at ON saves(saved_at);
`

// saveRow is the stored form of a Snapshot. Nested data is kept as JSON so
// the collaborator's shapes round-trip verbatim.
type saveRow struct {
	Slot        string `db:"slot"`
	UserTeamID  string `db:"user_team_id"`
	CurrentWeek int    `db:"current_week"`
	TeamsJSON   string `db:"teams_json"`
	MarketJSON  string `db:"market_json"`
	NewsJSON    string `db:"news_json"`
	AppliedJSON string `db:"applied_json"`
	SavedAt     int64  `db:"saved_at"`
}

// SQLiteStore implements Store on a SQLite file.
type SQLiteStore struct {
	conn        *sqlx.DB
	now         func() time.Time
	busyTimeout time.Duration
}

// Open opens or creates the save database at path.
func Open(ctx context.Context, path string, opts ...Option) (*SQLiteStore, error) {
	s := &SQLiteStore{now: time.Now, busyTimeout: defaultBusyTimeout}
	for _, opt := range opts {
		opt(s)
	}

	dsn := fmt.Sprintf("%s?_pragma=busy_timeout(%d)&_pragma=journal_mode(WAL)", path, s.busyTimeout.Milliseconds())
	conn, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	// SQLite has a single writer; one connection also keeps :memory: databases whole.
	conn.SetMaxOpenConns(1)
	s.conn = conn

	if _, err := conn.ExecContext(ctx, schema); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.conn.Close()
}

func validSlot(slot string) error {
	if strings.TrimSpace(slot) == "" {
		return ErrInvalidSlot
	}
	return nil
}

func observe(op string, start time.Time) {
	metrics.RecordRepositoryLatency(op, float64(time.Since(start).Microseconds())/1000)
}

// Save writes snap to slot, replacing any previous save there.
func (s *SQLiteStore) Save(ctx context.Context, slot string, snap Snapshot) error {
	defer observe("save", time.Now())
	if err := validSlot(slot); err != nil {
		return err
	}
	if snap.State == nil {
		return ErrNilState
	}

	row := saveRow{
		Slot:        slot,
		UserTeamID:  snap.State.UserTeamID,
		CurrentWeek: snap.State.CurrentWeek,
		SavedAt:     s.now().Unix(),
	}
	fields := []struct {
		dst *string
		v   any
	}{
		{&row.TeamsJSON, nonNil(snap.State.Teams)},
		{&row.MarketJSON, nonNil(snap.State.TransferMarket)},
		{&row.NewsJSON, nonNil(snap.State.News)},
		{&row.AppliedJSON, nonNil(snap.Applied)},
	}
	for _, f := range fields {
		b, err := json.Marshal(f.v)
		if err != nil {
			return fmt.Errorf("encode slot %q: %w", slot, err)
		}
		*f.dst = string(b)
	}

	_, err := s.conn.NamedExecContext(ctx, `INSERT INTO saves
		(slot, user_team_id, current_week, teams_json, market_json, news_json, applied_json, saved_at)
		VALUES (:slot, :user_team_id, :current_week, :teams_json, :market_json, :news_json, :applied_json, :saved_at)
		ON CONFLICT(slot) DO UPDATE SET
			user_team_id = excluded.user_team_id,
			current_week = excluded.current_week,
			teams_json = excluded.teams_json,
			market_json = excluded.market_json,
			news_json = excluded.news_json,
			applied_json = excluded.applied_json,
			saved_at = excluded.saved_at`, row)
	if err != nil {
		metrics.RecordErrorByComponent("repository", "save")
		return fmt.Errorf("save slot %q: %w", slot, err)
	}
	return nil
}

// nonNil keeps empty collections as [] rather than null in the stored JSON.
func nonNil[T any](v []T) []T {
	if v == nil {
		return []T{}
	}
	return v
}

// Load reads slot.
func (s *SQLiteStore) Load(ctx context.Context, slot string) (Snapshot, error) {
	defer observe("load", time.Now())
	if err := validSlot(slot); err != nil {
		return Snapshot{}, err
	}

	var row saveRow
	err := s.conn.GetContext(ctx, &row, "SELECT * FROM saves WHERE slot = ?", slot)
	if errors.Is(err, sql.ErrNoRows) {
		return Snapshot{}, fmt.Errorf("slot %q: %w", slot, ErrNotFound)
	}
	if err != nil {
		metrics.RecordErrorByComponent("repository", "load")
		return Snapshot{}, fmt.Errorf("load slot %q: %w", slot, err)
	}

	state := &model.GameState{UserTeamID: row.UserTeamID, CurrentWeek: row.CurrentWeek}
	var applied []string
	decode := []struct {
		src string
		dst any
	}{
		{row.TeamsJSON, &state.Teams},
		{row.MarketJSON, &state.TransferMarket},
		{row.NewsJSON, &state.News},
		{row.AppliedJSON, &applied},
	}
	for _, d := range decode {
		if err := json.Unmarshal([]byte(d.src), d.dst); err != nil {
			return Snapshot{}, fmt.Errorf("decode slot %q: %w", slot, err)
		}
	}
	return Snapshot{State: state, Applied: applied}, nil
}

// Slots lists saves, most recent first.
func (s *SQLiteStore) Slots(ctx context.Context) ([]Slot, error) {
	defer observe("slots", time.Now())
	var rows []saveRow
	err := s.conn.SelectContext(ctx, &rows,
		"SELECT slot, user_team_id, current_week, saved_at FROM saves ORDER BY saved_at DESC, slot")
	if err != nil {
		return nil, fmt.Errorf("list slots: %w", err)
	}
	slots := make([]Slot, 0, len(rows))
	for _, r := range rows {
		slots = append(slots, Slot{
			Name:        r.Slot,
			UserTeamID:  r.UserTeamID,
			CurrentWeek: r.CurrentWeek,
			SavedAt:     time.Unix(r.SavedAt, 0),
		})
	}
	return slots, nil
}

// Delete removes slot.
func (s *SQLiteStore) Delete(ctx context.Context, slot string) error {
	defer observe("delete", time.Now())
	res, err := s.conn.ExecContext(ctx, "DELETE FROM saves WHERE slot = ?", slot)
	if err != nil {
		return fmt.Errorf("delete slot %q: %w", slot, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete slot %q: %w", slot, err)
	}
	if n == 0 {
		return fmt.Errorf("slot %q: %w", slot, ErrNotFound)
	}
	return nil
}
