package model

import (
	"encoding/json"
	"fmt"
)

// Attribute names one detailed player skill.
type Attribute int

// Detailed attributes. Order is part of the storage contract only through
// the names below; never persist the numeric values.
const (
	Acceleration Attribute = iota
	SprintSpeed
	Finishing
	ShotPower
	LongShots
	Positioning
	ShortPassing
	LongPassing
	Crossing
	Vision
	Dribbling
	BallControl
	Agility
	Balance
	Marking
	StandingTackle
	SlidingTackle
	Interceptions
	Heading
	Strength
	Stamina
	Jumping
	Reflexes
	Handling

	AttributeCount = int(iota)
)

// Attribute bounds.
const (
	MinAttribute = 10
	MaxAttribute = 99
)

var attributeNames = [AttributeCount]string{
	"acceleration", "sprintSpeed", "finishing", "shotPower", "longShots",
	"positioning", "shortPassing", "longPassing", "crossing", "vision",
	"dribbling", "ballControl", "agility", "balance", "marking",
	"standingTackle", "slidingTackle", "interceptions", "heading", "strength",
	"stamina", "jumping", "reflexes", "handling",
}

func (a Attribute) String() string {
	if a < 0 || int(a) >= AttributeCount {
		return fmt.Sprintf("Attribute(%d)", int(a))
	}
	return attributeNames[a]
}

// Attributes returns every attribute in declaration order.
func Attributes() []Attribute {
	out := make([]Attribute, AttributeCount)
	for i := range out {
		out[i] = Attribute(i)
	}
	return out
}

// DetailedStats holds one value per Attribute.
type DetailedStats [AttributeCount]int

// Get returns the value of a.
func (d *DetailedStats) Get(a Attribute) int { return d[a] }

// Set stores v clamped to [MinAttribute, MaxAttribute].
func (d *DetailedStats) Set(a Attribute, v int) { d[a] = ClampInt(v, MinAttribute, MaxAttribute) }

// Add shifts a by delta, clamped.
func (d *DetailedStats) Add(a Attribute, delta int) { d.Set(a, d[a]+delta) }

// MarshalJSON encodes the stats as an object keyed by attribute name.
func (d DetailedStats) MarshalJSON() ([]byte, error) {
	m := make(map[string]int, AttributeCount)
	for i, v := range d {
		m[attributeNames[i]] = v
	}
	return json.Marshal(m)
}

// UnmarshalJSON decodes an object keyed by attribute name. Unknown keys are
// rejected so a stale save cannot silently zero a skill.
func (d *DetailedStats) UnmarshalJSON(b []byte) error {
	var m map[string]int
	if err := json.Unmarshal(b, &m); err != nil {
		return err
	}
	var out DetailedStats
	for k, v := range m {
		idx := -1
		for i, name := range attributeNames {
			if name == k {
				idx = i
				break
			}
		}
		if idx < 0 {
			return fmt.Errorf("unknown attribute %q", k)
		}
		out[idx] = v
	}
	*d = out
	return nil
}

// ClampInt bounds v to [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
