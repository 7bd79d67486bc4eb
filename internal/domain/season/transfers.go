package season

import (
	"fmt"

	"github.com/okian/matchday/internal/domain/model"
	"github.com/okian/matchday/internal/domain/random"
)

const (
	signingContractYears = 3
	weeksPerYear         = 52
)

// SaleFee is what a club receives for selling p: 80% of value.
func SaleFee(p *model.Player) int64 { return p.Value * 8 / 10 }

// Severance is what a club pays to release p: half the remaining wages.
func Severance(p *model.Player) int64 {
	return p.Wage * weeksPerYear * int64(p.ContractLength) / 2
}

// Buy signs market player playerID for teamID. The player gets a fresh
// identity and a three-year contract and leaves the market.
func (s *Season) Buy(state *model.GameState, teamID, playerID string) (*model.Player, error) {
	team := state.FindTeam(teamID)
	if team == nil {
		return nil, ErrTeamNotFound
	}
	idx := state.FindMarketPlayer(playerID)
	if idx < 0 {
		return nil, ErrPlayerNotFound
	}
	p := state.TransferMarket[idx]
	if len(team.Players) >= model.MaxSquadSize {
		return nil, ErrSquadFull
	}
	if team.Budget < p.Value {
		return nil, fmt.Errorf("need %d, have %d: %w", p.Value, team.Budget, ErrInsufficientFunds)
	}

	team.Budget -= p.Value
	state.TransferMarket = append(state.TransferMarket[:idx:idx], state.TransferMarket[idx+1:]...)
	p.ID = random.ID(s.src)
	p.ContractLength = signingContractYears
	team.Players = append(team.Players, p)
	return p, nil
}

// Sell removes playerID from team and credits the sale fee. The squad must
// hold more than model.LineupSize players; otherwise ErrSquadTooSmall is
// returned and nothing changes.
func Sell(team *model.Team, playerID string) (int64, error) {
	p := team.FindPlayer(playerID)
	if p == nil {
		return 0, ErrPlayerNotFound
	}
	if len(team.Players) <= model.LineupSize {
		return 0, ErrSquadTooSmall
	}
	fee := SaleFee(p)
	team.RemovePlayer(playerID)
	team.Budget += fee
	return fee, nil
}

// Release terminates playerID's contract, paying severance. Like Sell it
// needs more than model.LineupSize players.
func Release(team *model.Team, playerID string) (int64, error) {
	p := team.FindPlayer(playerID)
	if p == nil {
		return 0, ErrPlayerNotFound
	}
	if len(team.Players) <= model.LineupSize {
		return 0, ErrSquadTooSmall
	}
	cost := Severance(p)
	if team.Budget < cost {
		return 0, fmt.Errorf("need %d, have %d: %w", cost, team.Budget, ErrInsufficientFunds)
	}
	team.RemovePlayer(playerID)
	team.Budget -= cost
	return cost, nil
}

// RefreshMarket replaces the transfer market with a fresh pool.
func (s *Season) RefreshMarket(state *model.GameState) {
	state.TransferMarket = s.builder.TransferMarket(s.marketSize)
}
