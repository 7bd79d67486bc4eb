package match

import "github.com/okian/matchday/internal/domain/model"

// Modifiers are the tactical multipliers and offsets of one team.
type Modifiers struct {
	Fatigue float64 // multiplier on energy loss
	Attack  float64 // additive offset on attacking strength
	Defense float64 // additive offset on defending strength
	Cards   float64 // multiplier on card probability
}

// TacticalModifiers derives a team's modifiers from its tactics.
func TacticalModifiers(t model.Tactics) Modifiers {
	m := Modifiers{Fatigue: 1, Cards: 1}
	switch t.Intensity {
	case model.IntensityHigh:
		m.Fatigue, m.Attack, m.Cards = 1.5, 0.05, 1.5
	case model.IntensityLow:
		m.Fatigue, m.Attack, m.Cards = 0.7, -0.05, 0.5
	}
	switch t.Style {
	case model.StylePossession:
		m.Defense += 0.05
		m.Attack -= 0.02
	case model.StyleCounter:
		m.Defense -= 0.05
		m.Attack += 0.05
	}
	return m
}

// FatigueMultiplier returns the energy-loss multiplier for an intensity.
func FatigueMultiplier(i model.Intensity) float64 {
	return TacticalModifiers(model.Tactics{Intensity: i}).Fatigue
}

// EffectiveRating is overall adjusted for energy and morale.
func EffectiveRating(overall int, energy float64, morale int) float64 {
	energyFactor := 0.7
	if energy >= 50 {
		energyFactor = 0.5 + energy/200
	}
	moraleFactor := 0.9 + float64(morale)/500
	return float64(overall) * energyFactor * moraleFactor
}
