// Package skillbook holds the skill catalog model for one archetype and the
// serializable allocation state a build persists.
package skillbook

import (
	"strconv"
)

// LevelTagPrefix prefixes the level number in LevelProperties tags ("h10").
const LevelTagPrefix = "h"

// LevelTag returns the attribute record tag for a skill level
func LevelTag(level int) string {
	return LevelTagPrefix + strconv.Itoa(level)
}

// Attribute is one named value of a level record, kept as raw text.
// Numbers keep their catalog spelling ("-150", "0.5").
type Attribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// LevelProperties is the attribute record for a single skill level.
// Attribute meaning is skill specific; order follows the catalog.
type LevelProperties struct {
	Tag        string      `json:"hs"`
	Attributes []Attribute `json:"attributes"`
}

// Get returns the raw value for key
func (p *LevelProperties) Get(key string) (string, bool) {
	for _, attr := range p.Attributes {
		if attr.Key == key {
			return attr.Value, true
		}
	}
	return "", false
}

// Skill is an immutable skill definition loaded from a skillbook.
type Skill struct {
	ID              int               `json:"id"`
	MasterLevel     int               `json:"masterLevel"`
	Name            string            `json:"name"`
	LongDescription string            `json:"desc"`
	DetailTemplate  string            `json:"detail"`
	RequiredSkills  map[int]int       `json:"requiredSkillLevels,omitempty"`
	LevelProperties []LevelProperties `json:"levelProperties"`
	Icon            string            `json:"icon,omitempty"`
	IconMouseover   string            `json:"iconMouseover,omitempty"`
	Weapons         []string          `json:"weapons,omitempty"`
}

// PropertiesFor returns the attribute record for level, or nil
func (s *Skill) PropertiesFor(level int) *LevelProperties {
	tag := LevelTag(level)
	for i := range s.LevelProperties {
		if s.LevelProperties[i].Tag == tag {
			return &s.LevelProperties[i]
		}
	}
	return nil
}
