package model

// NewsItem is a derived, immutable piece of display text.
type NewsItem struct {
	ID       string `json:"id"`
	Week     int    `json:"week"`
	Category string `json:"category"`
	Title    string `json:"title"`
	Body     string `json:"body"`
}

// GameState is the complete career snapshot. The collaborator owns its
// persistence; every core operation receives it explicitly.
type GameState struct {
	Teams          []*Team    `json:"teams"`
	UserTeamID     string     `json:"userTeamId"`
	CurrentWeek    int        `json:"currentWeek"`
	TransferMarket []*Player  `json:"transferMarket"`
	News           []NewsItem `json:"news"`
}

// FindTeam returns the team with id, or nil.
func (s *GameState) FindTeam(id string) *Team {
	for _, t := range s.Teams {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// UserTeam returns the user-controlled team, or nil.
func (s *GameState) UserTeam() *Team { return s.FindTeam(s.UserTeamID) }

// FindMarketPlayer returns the index of the market player with id, or -1.
func (s *GameState) FindMarketPlayer(id string) int {
	for i, p := range s.TransferMarket {
		if p.ID == id {
			return i
		}
	}
	return -1
}
