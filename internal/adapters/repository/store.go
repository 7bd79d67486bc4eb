// Package repository persists career snapshots in named save slots.
package repository

import (
	"context"
	"time"

	"github.com/okian/matchday/internal/domain/model"
)

// Snapshot is everything needed to resume a career: the game state and the
// ids of match results already applied to it.
type Snapshot struct {
	State   *model.GameState
	Applied []string
}

// Slot describes a stored save.
type Slot struct {
	Name        string
	UserTeamID  string
	CurrentWeek int
	SavedAt     time.Time
}

// Store provides read/write access to save slots.
type Store interface {
	// Save writes snap to slot, replacing any previous save there.
	Save(ctx context.Context, slot string, snap Snapshot) error

	// Load reads slot. Returns ErrNotFound if the slot is empty.
	Load(ctx context.Context, slot string) (Snapshot, error)

	// Slots lists saves, most recent first.
	Slots(ctx context.Context) ([]Slot, error)

	// Delete removes slot. Returns ErrNotFound if the slot is empty.
	Delete(ctx context.Context, slot string) error

	Close() error
}
