package season

import (
	"fmt"
	"strings"

	"github.com/okian/matchday/internal/domain/model"
	"github.com/okian/matchday/internal/domain/random"
)

// Drill is a training session type.
type Drill string

// Drills.
const (
	DrillPhysical  Drill = "Physical"
	DrillTechnical Drill = "Technical"
	DrillTactical  Drill = "Tactical"
)

const (
	TrainingCost     = 15
	fatigueThreshold = 30
	growthChance     = 0.30
)

var drillAttributes = map[Drill][]model.Attribute{
	DrillPhysical: {
		model.Acceleration, model.SprintSpeed, model.Stamina, model.Strength,
		model.Agility, model.Balance, model.Jumping,
	},
	DrillTechnical: {
		model.Finishing, model.ShotPower, model.ShortPassing, model.Dribbling,
		model.BallControl, model.Crossing, model.LongPassing, model.LongShots,
	},
	DrillTactical: {
		model.Positioning, model.Vision, model.Marking, model.Interceptions,
		model.StandingTackle, model.SlidingTackle, model.Heading,
	},
}

// Keepers also work on their hands in technical sessions.
var keeperTechnical = []model.Attribute{model.Reflexes, model.Handling}

// ParseDrill resolves a drill name case-insensitively.
func ParseDrill(name string) (Drill, error) {
	for d := range drillAttributes {
		if strings.EqualFold(string(d), strings.TrimSpace(name)) {
			return d, nil
		}
	}
	return "", fmt.Errorf("%q: %w", name, ErrUnknownDrill)
}

// Outcome is what a training session did to one player.
type Outcome string

// Training outcomes.
const (
	OutcomeTrained     Outcome = "trained"
	OutcomeInjured     Outcome = "injured"
	OutcomeSkipped     Outcome = "skipped"
	OutcomeUnavailable Outcome = "unavailable"
)

// TrainingReport lists player ids by outcome.
type TrainingReport struct {
	Drill       Drill
	Trained     []string
	Improved    []string // overall went up
	Injured     []string
	Skipped     []string
	Unavailable []string
}

// Train runs drill for every player of team.
func (s *Season) Train(team *model.Team, drill Drill) (TrainingReport, error) {
	rep := TrainingReport{Drill: drill}
	if _, ok := drillAttributes[drill]; !ok {
		return rep, fmt.Errorf("%q: %w", drill, ErrUnknownDrill)
	}
	for _, p := range team.Players {
		before := p.Overall
		switch s.train(p, drill) {
		case OutcomeTrained:
			rep.Trained = append(rep.Trained, p.ID)
			if p.Overall > before {
				rep.Improved = append(rep.Improved, p.ID)
			}
		case OutcomeInjured:
			rep.Injured = append(rep.Injured, p.ID)
		case OutcomeSkipped:
			rep.Skipped = append(rep.Skipped, p.ID)
		case OutcomeUnavailable:
			rep.Unavailable = append(rep.Unavailable, p.ID)
		}
	}
	return rep, nil
}

// TrainPlayer runs drill for a single player of team.
func (s *Season) TrainPlayer(team *model.Team, playerID string, drill Drill) (Outcome, error) {
	if _, ok := drillAttributes[drill]; !ok {
		return "", fmt.Errorf("%q: %w", drill, ErrUnknownDrill)
	}
	p := team.FindPlayer(playerID)
	if p == nil {
		return "", ErrPlayerNotFound
	}
	return s.train(p, drill), nil
}

func (s *Season) train(p *model.Player, drill Drill) Outcome {
	if p.IsInjured {
		return OutcomeUnavailable
	}
	if p.Energy < fatigueThreshold && random.Chance(s.src, s.fatigueInjuryChance) {
		p.Injure(random.Between(s.src, minInjuryWeeks, maxInjuryWeeks))
		return OutcomeInjured
	}
	if p.Energy < TrainingCost {
		return OutcomeSkipped
	}

	p.AdjustEnergy(-TrainingCost)
	if p.Potential > p.Overall {
		attrs := drillAttributes[drill]
		if drill == DrillTechnical && p.Position == model.GK {
			attrs = append(attrs[:len(attrs):len(attrs)], keeperTechnical...)
		}
		for _, a := range attrs {
			p.DetailedStats.Add(a, 1)
		}
		if random.Chance(s.src, growthChance) {
			p.Overall = min(p.Overall+1, p.Potential)
		}
	}
	p.RecomputeStats()
	p.Revalue()
	return OutcomeTrained
}
