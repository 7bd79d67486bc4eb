// Package attributes generates players with a consistent detailed profile
// and derived summary ratings.
package attributes

import (
	"fmt"

	"github.com/okian/matchday/internal/domain/model"
	"github.com/okian/matchday/internal/domain/random"
)

// Generation parameters.
const (
	minAge            = 16
	maxAge            = 34
	maxPotentialBoost = 15
	attributeNoise    = 10

	gkOutfieldMin  = 10
	gkOutfieldMax  = 40
	gkSpecialBoost = 5

	minContractYears = 1
	maxContractYears = 4
	minMorale        = 70
	maxMorale        = 100
	minEnergy        = 90
	maxEnergy        = 100
)

var firstNames = []string{
	"James", "John", "Robert", "Michael", "William", "David", "Richard", "Joseph",
	"Thomas", "Charles", "Christopher", "Daniel", "Matthew", "Anthony", "Donald",
	"Lionel", "Cristiano", "Kylian", "Erling", "Kevin", "Luka", "Harry", "Jude",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis",
	"Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez", "Wilson", "Anderson",
	"Messi", "Ronaldo", "Mbappe", "Haaland", "De Bruyne", "Modric", "Kane", "Bellingham",
}

// positionWeights drives the position draw when none is requested.
var positionWeights = []struct {
	pos    model.Position
	weight float64
}{
	{model.GK, 0.10},
	{model.DEF, 0.35},
	{model.MID, 0.35},
	{model.ATT, 0.20},
}

// positionDeltas are the additive adjustments applied after the centred draw.
// GK is handled separately by goalkeeperProfile.
var positionDeltas = map[model.Position][]struct {
	attr  model.Attribute
	delta int
}{
	model.DEF: {
		{model.Marking, 8}, {model.StandingTackle, 8}, {model.SlidingTackle, 8}, {model.Interceptions, 6},
		{model.Strength, 5}, {model.Heading, 6},
		{model.Finishing, -10}, {model.Dribbling, -8},
	},
	model.MID: {
		{model.ShortPassing, 6}, {model.LongPassing, 6}, {model.Vision, 8}, {model.Stamina, 5},
	},
	model.ATT: {
		{model.Finishing, 10}, {model.Positioning, 8}, {model.ShotPower, 6},
		{model.StandingTackle, -10}, {model.SlidingTackle, -8}, {model.Marking, -10},
	},
}

// Generator draws players from a single random source.
type Generator struct {
	src random.Source
}

// New creates a Generator over src.
func New(src random.Source) *Generator {
	return &Generator{src: src}
}

// Player generates a player at pos with overall drawn from [minOverall,
// maxOverall]. Malformed ranges are programmer errors and panic.
func (g *Generator) Player(minOverall, maxOverall int, pos model.Position) *model.Player {
	if minOverall > maxOverall || minOverall < 1 || maxOverall > model.MaxRating {
		panic(fmt.Sprintf("attributes: invalid overall range [%d, %d]", minOverall, maxOverall))
	}

	overall := random.Between(g.src, minOverall, maxOverall)
	potential := min(model.MaxRating, overall+random.Between(g.src, 0, maxPotentialBoost))

	p := &model.Player{
		ID:        random.ID(g.src),
		Name:      g.name(),
		Age:       random.Between(g.src, minAge, maxAge),
		Position:  pos,
		Overall:   overall,
		Potential: potential,
	}

	if pos == model.GK {
		g.goalkeeperProfile(p)
	} else {
		g.outfieldProfile(p)
	}
	p.RecomputeStats()

	p.Value = model.MarketValue(overall, potential)
	p.Wage = model.ReferenceWage(p.Value)
	p.ContractLength = random.Between(g.src, minContractYears, maxContractYears)
	p.Morale = random.Between(g.src, minMorale, maxMorale)
	p.Energy = random.Between(g.src, minEnergy, maxEnergy)
	return p
}

// AnyPlayer generates a player at a weighted random position.
func (g *Generator) AnyPlayer(minOverall, maxOverall int) *model.Player {
	return g.Player(minOverall, maxOverall, g.position())
}

func (g *Generator) outfieldProfile(p *model.Player) {
	for _, a := range model.Attributes() {
		p.DetailedStats.Set(a, g.centred(p.Overall))
	}
	for _, d := range positionDeltas[p.Position] {
		p.DetailedStats.Add(d.attr, d.delta)
	}
}

// goalkeeperProfile redraws the outfield attributes low and centres the
// goalkeeping ones just above overall.
func (g *Generator) goalkeeperProfile(p *model.Player) {
	for _, a := range model.Attributes() {
		if a == model.Reflexes || a == model.Handling {
			p.DetailedStats.Set(a, g.centred(p.Overall+gkSpecialBoost))
			continue
		}
		p.DetailedStats.Set(a, random.Between(g.src, gkOutfieldMin, gkOutfieldMax))
	}
}

func (g *Generator) centred(center int) int {
	return center + random.Between(g.src, -attributeNoise, attributeNoise)
}

func (g *Generator) position() model.Position {
	r := g.src.Float64()
	acc := 0.0
	for _, w := range positionWeights {
		acc += w.weight
		if r < acc {
			return w.pos
		}
	}
	return positionWeights[len(positionWeights)-1].pos
}

func (g *Generator) name() string {
	return firstNames[g.src.Intn(len(firstNames))] + " " + lastNames[g.src.Intn(len(lastNames))]
}
