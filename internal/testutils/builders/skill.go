// Package builders provides test data builders for skill catalogs and builds
package builders

import (
	"github.com/KirkDiggler/skill-planner/internal/entities/skillbook"
)

// SkillBuilder provides a fluent interface for building test Skill instances
type SkillBuilder struct {
	skill *skillbook.Skill
}

// NewSkillBuilder creates a builder with a master level of 10
func NewSkillBuilder(id int) *SkillBuilder {
	return &SkillBuilder{
		skill: &skillbook.Skill{
			ID:          id,
			MasterLevel: 10,
		},
	}
}

// WithName sets the display name
func (b *SkillBuilder) WithName(name string) *SkillBuilder {
	b.skill.Name = name
	return b
}

// WithMasterLevel sets the maximum invested level
func (b *SkillBuilder) WithMasterLevel(level int) *SkillBuilder {
	b.skill.MasterLevel = level
	return b
}

// WithDescription sets the long description
func (b *SkillBuilder) WithDescription(desc string) *SkillBuilder {
	b.skill.LongDescription = desc
	return b
}

// WithDetail sets the level detail template
func (b *SkillBuilder) WithDetail(template string) *SkillBuilder {
	b.skill.DetailTemplate = template
	return b
}

// WithRequirement adds a prerequisite
func (b *SkillBuilder) WithRequirement(skillID, level int) *SkillBuilder {
	if b.skill.RequiredSkills == nil {
		b.skill.RequiredSkills = make(map[int]int)
	}
	b.skill.RequiredSkills[skillID] = level
	return b
}

// WithLevel appends an attribute record for level. kv alternates key, value.
func (b *SkillBuilder) WithLevel(level int, kv ...string) *SkillBuilder {
	props := skillbook.LevelProperties{Tag: skillbook.LevelTag(level)}
	for i := 0; i+1 < len(kv); i += 2 {
		props.Attributes = append(props.Attributes, skillbook.Attribute{Key: kv[i], Value: kv[i+1]})
	}
	b.skill.LevelProperties = append(b.skill.LevelProperties, props)
	return b
}

// Build returns the constructed skill
func (b *SkillBuilder) Build() *skillbook.Skill {
	return b.skill
}
