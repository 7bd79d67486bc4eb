package season

import (
	"sort"

	"github.com/okian/matchday/internal/domain/model"
	"github.com/okian/matchday/internal/domain/types"
)

// Table ranks teams by points, goal difference, goals scored, then name.
func Table(teams []*model.Team) []types.Standing {
	rows := make([]types.Standing, 0, len(teams))
	for _, t := range teams {
		rows = append(rows, types.Standing{
			TeamID:   t.ID,
			Name:     t.Name,
			Played:   t.Played(),
			Wins:     t.Wins,
			Draws:    t.Draws,
			Losses:   t.Losses,
			GoalsFor: t.GoalsFor,
			GoalDiff: t.GoalDiff,
			Points:   t.Points,
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.GoalDiff != b.GoalDiff {
			return a.GoalDiff > b.GoalDiff
		}
		if a.GoalsFor != b.GoalsFor {
			return a.GoalsFor > b.GoalsFor
		}
		return a.Name < b.Name
	})
	for i := range rows {
		rows[i].Rank = i + 1
	}
	return rows
}
