// Package season applies match results and the manager's weekly decisions
// (training, contracts, transfers) to the career state.
package season

import (
	"github.com/okian/matchday/internal/domain/random"
	"github.com/okian/matchday/internal/domain/roster"
)

// Defaults.
const (
	DefaultMarketSize          = 20
	DefaultFatigueInjuryChance = 0.20
)

// Season owns the random source used by progression. Like the simulator it
// is not safe for concurrent use.
type Season struct {
	src                 random.Source
	builder             *roster.Builder
	marketSize          int
	fatigueInjuryChance float64
}

// Option configures a Season.
type Option func(*Season)

// WithMarketSize sets the number of players generated on a market refresh.
func WithMarketSize(n int) Option {
	return func(s *Season) {
		if n >= 0 {
			s.marketSize = n
		}
	}
}

// WithFatigueInjuryChance sets the probability that training a tired player
// injures them.
func WithFatigueInjuryChance(p float64) Option {
	return func(s *Season) {
		if p >= 0 && p <= 1 {
			s.fatigueInjuryChance = p
		}
	}
}

// New creates a Season drawing from src.
func New(src random.Source, opts ...Option) *Season {
	s := &Season{
		src:                 src,
		builder:             roster.New(src),
		marketSize:          DefaultMarketSize,
		fatigueInjuryChance: DefaultFatigueInjuryChance,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
