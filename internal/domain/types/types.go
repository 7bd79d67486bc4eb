// Package types contains view rows shared across the application.
package types

// Standing is one row of the league table.
type Standing struct {
	Rank     int    `json:"rank"`
	TeamID   string `json:"teamId"`
	Name     string `json:"name"`
	Played   int    `json:"played"`
	Wins     int    `json:"wins"`
	Draws    int    `json:"draws"`
	Losses   int    `json:"losses"`
	GoalsFor int    `json:"goalsFor"`
	GoalDiff int    `json:"goalDiff"`
	Points   int    `json:"points"`
}
