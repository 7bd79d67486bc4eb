// Package roster assembles squads, leagues and transfer-market pools from
// the attribute generator.
package roster

import (
	"github.com/okian/matchday/internal/domain/attributes"
	"github.com/okian/matchday/internal/domain/model"
	"github.com/okian/matchday/internal/domain/random"
)

// Club defaults for a freshly generated team.
const (
	DefaultBudget       int64 = 50_000_000
	DefaultStadiumLevel       = 1

	marketMinOverall = 75
	marketMaxOverall = 92
)

// DefaultLeague is used when no club names are supplied.
var DefaultLeague = []string{
	"London FC", "Manchester Red", "Liverpool Mersey", "Madrid Royal",
	"Barcelona Blau", "Munich Red", "Paris Saint", "Milan Red",
	"Turin Zebra", "Dortmund Bee", "Ajax White", "Porto Blue",
}

// Quota is the number of players generated for a position and their band.
type Quota struct {
	Position   model.Position
	Count      int
	MinOverall int
	MaxOverall int
}

// SquadQuotas is the fixed make-up of a generated squad.
var SquadQuotas = []Quota{
	{model.GK, 3, 70, 85},
	{model.DEF, 7, 70, 88},
	{model.MID, 7, 70, 89},
	{model.ATT, 5, 70, 90},
}

var palette = [][2]string{
	{"#3b82f6", "#1e293b"},
	{"#ef4444", "#ffffff"},
	{"#dc2626", "#fbbf24"},
	{"#f8fafc", "#7c3aed"},
	{"#1d4ed8", "#b91c1c"},
	{"#b91c1c", "#f8fafc"},
	{"#1e3a8a", "#dc2626"},
	{"#000000", "#dc2626"},
	{"#f8fafc", "#000000"},
	{"#facc15", "#000000"},
	{"#f8fafc", "#dc2626"},
	{"#1e40af", "#f8fafc"},
}

// Builder creates teams and market pools.
type Builder struct {
	src random.Source
	gen *attributes.Generator
}

// New creates a Builder drawing from src.
func New(src random.Source) *Builder {
	return &Builder{src: src, gen: attributes.New(src)}
}

// Generator exposes the underlying attribute generator.
func (b *Builder) Generator() *attributes.Generator { return b.gen }

// Team generates a club named name with a full squad.
func (b *Builder) Team(name string) *model.Team {
	colors := palette[b.src.Intn(len(palette))]
	t := &model.Team{
		ID:             random.ID(b.src),
		Name:           name,
		PrimaryColor:   colors[0],
		SecondaryColor: colors[1],
		Tactics:        model.DefaultTactics(),
		Budget:         DefaultBudget,
		StadiumLevel:   DefaultStadiumLevel,
	}
	for _, q := range SquadQuotas {
		for i := 0; i < q.Count; i++ {
			t.Players = append(t.Players, b.gen.Player(q.MinOverall, q.MaxOverall, q.Position))
		}
	}
	return t
}

// League generates one team per name, or the default league when names is
// empty.
func (b *Builder) League(names []string) []*model.Team {
	if len(names) == 0 {
		names = DefaultLeague
	}
	teams := make([]*model.Team, 0, len(names))
	for _, n := range names {
		teams = append(teams, b.Team(n))
	}
	return teams
}

// TransferMarket generates count free players above the squad band.
func (b *Builder) TransferMarket(count int) []*model.Player {
	pool := make([]*model.Player, 0, max(count, 0))
	for i := 0; i < count; i++ {
		pool = append(pool, b.gen.AnyPlayer(marketMinOverall, marketMaxOverall))
	}
	return pool
}

// CanField reports whether a team has a goalkeeper and enough fit players
// for a full lineup.
func CanField(t *model.Team) bool {
	fit, keepers := 0, 0
	for _, p := range t.Players {
		if !p.Available() {
			continue
		}
		fit++
		if p.Position == model.GK {
			keepers++
		}
	}
	return keepers > 0 && fit >= model.LineupSize
}
