// Package news turns results and club business into headline items. Every
// function is pure: the same input always yields the same item.
package news

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/okian/matchday/internal/domain/model"
	"github.com/okian/matchday/internal/domain/season"
)

// Categories.
const (
	CategoryRout     = "rout"
	CategoryGoalFest = "goal-fest"
	CategoryTightWin = "tight-win"
	CategoryWin      = "win"
	CategoryBoreDraw = "bore-draw"
	CategoryDraw     = "draw"
	CategoryTransfer = "transfer"
	CategoryInjury   = "injury"
)

const (
	routMargin     = 3
	goalFestTotal  = 4
	tightWinMargin = 1
)

// Categorize returns the headline category of a result.
func Categorize(res *model.MatchResult) string {
	diff := res.HomeScore - res.AwayScore
	if diff < 0 {
		diff = -diff
	}
	switch {
	case diff == 0 && res.TotalGoals() == 0:
		return CategoryBoreDraw
	case diff == 0:
		return CategoryDraw
	case diff >= routMargin:
		return CategoryRout
	case res.TotalGoals() > goalFestTotal:
		return CategoryGoalFest
	case diff == tightWinMargin:
		return CategoryTightWin
	default:
		return CategoryWin
	}
}

// MatchReport writes the news item for a completed match.
func MatchReport(res *model.MatchResult, week int, home, away *model.Team) model.NewsItem {
	category := Categorize(res)
	winner, loser := home, away
	winGoals, loseGoals := res.HomeScore, res.AwayScore
	if res.AwayScore > res.HomeScore {
		winner, loser = away, home
		winGoals, loseGoals = res.AwayScore, res.HomeScore
	}
	score := fmt.Sprintf("%d-%d", winGoals, loseGoals)

	var title, lead string
	switch category {
	case CategoryRout:
		title = fmt.Sprintf("%s demolish %s", winner.Name, loser.Name)
		lead = fmt.Sprintf("%s ran riot with a %s thrashing of %s.", winner.Name, score, loser.Name)
	case CategoryGoalFest:
		title = fmt.Sprintf("Goal-fest as %s edge %s", winner.Name, loser.Name)
		lead = fmt.Sprintf("Defences were optional as %s beat %s %s.", winner.Name, loser.Name, score)
	case CategoryTightWin:
		title = fmt.Sprintf("%s squeeze past %s", winner.Name, loser.Name)
		lead = fmt.Sprintf("A single goal separated the sides as %s won %s against %s.", winner.Name, score, loser.Name)
	case CategoryWin:
		title = fmt.Sprintf("%s beat %s", winner.Name, loser.Name)
		lead = fmt.Sprintf("%s took the points with a %s win over %s.", winner.Name, score, loser.Name)
	case CategoryBoreDraw:
		title = fmt.Sprintf("Stalemate between %s and %s", home.Name, away.Name)
		lead = fmt.Sprintf("Neither %s nor %s could find a way through in a goalless draw.", home.Name, away.Name)
	default:
		title = fmt.Sprintf("%s and %s share the spoils", home.Name, away.Name)
		lead = fmt.Sprintf("%s and %s drew %d-%d.", home.Name, away.Name, res.HomeScore, res.AwayScore)
	}

	var body strings.Builder
	body.WriteString(lead)
	if scorers := scorerLine(res, home, away); scorers != "" {
		body.WriteString(" Scorers: ")
		body.WriteString(scorers)
		body.WriteString(".")
	}
	fmt.Fprintf(&body, " Attendance: %s at %s.",
		humanize.Comma(int64(season.Attendance(home.StadiumLevel))), home.Name)

	key := res.ID
	if key == "" {
		key = res.HomeTeamID + "-" + res.AwayTeamID
	}
	return model.NewsItem{
		ID:       itemID(week, category, key),
		Week:     week,
		Category: category,
		Title:    title,
		Body:     body.String(),
	}
}

func scorerLine(res *model.MatchResult, home, away *model.Team) string {
	var parts []string
	for _, e := range res.EventsOf(model.EventGoal) {
		team := home
		if e.TeamID == away.ID {
			team = away
		}
		name := "Unknown"
		if p := team.FindPlayer(e.PlayerID); p != nil {
			name = p.Name
		}
		parts = append(parts, fmt.Sprintf("%s %d'", name, e.Minute))
	}
	return strings.Join(parts, ", ")
}

// Transfer kinds.
const (
	Signed   = "signed"
	Sold     = "sold"
	Released = "released"
)

// Transfer reports a signing, sale or release. amount is the fee or the
// severance.
func Transfer(week int, kind string, p *model.Player, team *model.Team, amount int64) model.NewsItem {
	var title, body string
	switch kind {
	case Signed:
		title = fmt.Sprintf("%s sign %s", team.Name, p.Name)
		body = fmt.Sprintf("%s (%s, %d) joins %s for $%s.", p.Name, p.Position, p.Overall, team.Name, humanize.Comma(amount))
	case Sold:
		title = fmt.Sprintf("%s leaves %s", p.Name, team.Name)
		body = fmt.Sprintf("%s cash in $%s on %s.", team.Name, humanize.Comma(amount), p.Name)
	default:
		title = fmt.Sprintf("%s released by %s", p.Name, team.Name)
		body = fmt.Sprintf("%s pay $%s to end %s's contract.", team.Name, humanize.Comma(amount), p.Name)
	}
	return model.NewsItem{
		ID:       itemID(week, CategoryTransfer, kind+":"+p.ID),
		Week:     week,
		Category: CategoryTransfer,
		Title:    title,
		Body:     body,
	}
}

// Injury reports a player ruled out for weeks.
func Injury(week int, p *model.Player, team *model.Team) model.NewsItem {
	weeks := p.InjuryDuration
	unit := "weeks"
	if weeks == 1 {
		unit = "week"
	}
	return model.NewsItem{
		ID:       itemID(week, CategoryInjury, p.ID),
		Week:     week,
		Category: CategoryInjury,
		Title:    fmt.Sprintf("Injury blow for %s", team.Name),
		Body:     fmt.Sprintf("%s will miss the next %d %s.", p.Name, weeks, unit),
	}
}

// itemID is a name-based UUID so that regenerating an item keeps its id.
func itemID(week int, category, key string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(fmt.Sprintf("%d/%s/%s", week, category, key))).String()
}
