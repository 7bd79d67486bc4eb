package match

// Tunables holds every probability and weight the simulator uses. The
// defaults reproduce the game's established balance.
type Tunables struct {
	GoalBase          float64 // scales attack/defence ratio into a per-minute goal chance
	MaxGoalChance     float64 // ceiling on one side's per-minute goal chance
	CardChance        float64 // per side per minute, before the intensity multiplier
	StraightRedChance float64 // share of cards that are straight reds
	SubChance         float64 // per side per minute once the window opens
	MaxSubs           int
	SubWindowStart    int // substitutions happen strictly after this minute
	MissChance        float64
	InjuryChance      float64 // per side per minute
	BenchSize         int
	StadiumBonus      float64 // home strength bonus per stadium level
	MinuteFatigue     float64 // in-match energy lost per minute before the intensity multiplier
	PossessionSkew    float64 // possession points per unit of strength share above one half
}

// DefaultTunables returns the standard balance.
func DefaultTunables() Tunables {
	return Tunables{
		GoalBase:          0.015,
		MaxGoalChance:     0.1,
		CardChance:        0.003,
		StraightRedChance: 0.10,
		SubChance:         0.05,
		MaxSubs:           3,
		SubWindowStart:    60,
		MissChance:        0.02,
		InjuryChance:      0.001,
		BenchSize:         7,
		StadiumBonus:      0.02,
		MinuteFatigue:     0.1,
		PossessionSkew:    40,
	}
}

// Option adjusts the simulator's tunables.
type Option func(*Tunables)

// WithTunables replaces every tunable at once.
func WithTunables(t Tunables) Option {
	return func(dst *Tunables) { *dst = t }
}

// WithSubChance sets the per-minute substitution probability.
func WithSubChance(p float64) Option {
	return func(t *Tunables) {
		if p >= 0 && p <= 1 {
			t.SubChance = p
		}
	}
}

// WithStraightRedChance sets the share of cards that are straight reds.
func WithStraightRedChance(p float64) Option {
	return func(t *Tunables) {
		if p >= 0 && p <= 1 {
			t.StraightRedChance = p
		}
	}
}

// WithInjuryChance sets the per-minute in-match injury probability.
func WithInjuryChance(p float64) Option {
	return func(t *Tunables) {
		if p >= 0 && p <= 1 {
			t.InjuryChance = p
		}
	}
}

// WithCardChance sets the base per-minute card probability.
func WithCardChance(p float64) Option {
	return func(t *Tunables) {
		if p >= 0 && p <= 1 {
			t.CardChance = p
		}
	}
}
