package season

import (
	"github.com/okian/matchday/internal/domain/model"
	"github.com/okian/matchday/internal/domain/random"
)

const (
	baseAcceptance  = 0.5
	moraleNeutral   = 50
	moraleDivisor   = 200
	generousRatio   = 1.2
	generousBonus   = 0.4
	fairRatio       = 1.0
	fairBonus       = 0.2
	underpayRatio   = 0.8
	underpayPenalty = 0.5
	moraleSwing     = 10
	minContractYrs  = 1
	maxContractYrs  = 5
)

// AcceptanceProbability is the chance player signs for wage, in [0, 1].
func AcceptanceProbability(p *model.Player, wage int64) float64 {
	ref := float64(model.ReferenceWage(p.Value))
	offer := float64(wage)

	prob := baseAcceptance + float64(p.Morale-moraleNeutral)/moraleDivisor
	switch {
	case offer > generousRatio*ref:
		prob += generousBonus
	case offer > fairRatio*ref:
		prob += fairBonus
	}
	if offer < underpayRatio*ref {
		prob -= underpayPenalty
	}
	return min(1, max(0, prob))
}

// ContractResult is the outcome of an offer.
type ContractResult struct {
	Accepted    bool
	Probability float64
}

// OfferContract puts wage and years to p. On acceptance the contract is
// replaced and morale rises; on rejection only morale drops.
func (s *Season) OfferContract(p *model.Player, wage int64, years int) ContractResult {
	prob := AcceptanceProbability(p, wage)
	res := ContractResult{Probability: prob, Accepted: random.Chance(s.src, prob)}
	if !res.Accepted {
		p.AdjustMorale(-moraleSwing)
		return res
	}
	p.Wage = max(wage, 0)
	p.ContractLength = model.ClampInt(years, minContractYrs, maxContractYrs)
	p.AdjustMorale(moraleSwing)
	return res
}

// OfferTeamContract finds playerID in team and makes the offer.
func (s *Season) OfferTeamContract(team *model.Team, playerID string, wage int64, years int) (ContractResult, error) {
	p := team.FindPlayer(playerID)
	if p == nil {
		return ContractResult{}, ErrPlayerNotFound
	}
	return s.OfferContract(p, wage, years), nil
}
