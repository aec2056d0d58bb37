package builders

import (
	"github.com/KirkDiggler/skill-planner/internal/engine/budget"
	"github.com/KirkDiggler/skill-planner/internal/entities/skillbook"
)

// ArchetypeBuilder provides a fluent interface for building test archetypes
type ArchetypeBuilder struct {
	archetype *skillbook.Archetype
}

// NewArchetypeBuilder creates a builder with the default base unlock level
// and no branches loaded
func NewArchetypeBuilder(id int) *ArchetypeBuilder {
	return &ArchetypeBuilder{
		archetype: &skillbook.Archetype{
			ID:              id,
			Name:            "Test Archetype",
			BaseUnlockLevel: budget.BaseUnlockLevelDefault,
		},
	}
}

// WithBaseUnlockLevel sets the base unlock level
func (b *ArchetypeBuilder) WithBaseUnlockLevel(level int) *ArchetypeBuilder {
	b.archetype.BaseUnlockLevel = level
	return b
}

// WithBranch sets a 1-based branch with the given skills
func (b *ArchetypeBuilder) WithBranch(index int, skills ...*skillbook.Skill) *ArchetypeBuilder {
	b.archetype.Branches[index-1] = &skillbook.Branch{
		Index:  index,
		JobID:  b.archetype.ID/10*10 + index,
		Skills: skills,
	}
	return b
}

// WithUnavailableBranch clears a branch and records why it failed to load
func (b *ArchetypeBuilder) WithUnavailableBranch(index int, reason string) *ArchetypeBuilder {
	b.archetype.Branches[index-1] = nil
	b.archetype.BranchErrors[index-1] = reason
	return b
}

// Build returns the constructed archetype
func (b *ArchetypeBuilder) Build() *skillbook.Archetype {
	return b.archetype
}

// StandardArchetype returns a small four-branch catalog used across tests.
//
//	branch 1: 1001 (20), 1002 (20), 1003 (20), 1004 (3, needs 1001@3), 1005 (10)
//	branch 2: 2001 (20), 2002 (30, needs 2001@5)
//	branch 3: 3001 (30)
//	branch 4: 4001 (30), 4002 (30, needs 4001@10)
func StandardArchetype() *skillbook.Archetype {
	return NewArchetypeBuilder(112).
		WithBranch(1,
			NewSkillBuilder(1001).WithName("파워 스트라이크").WithMasterLevel(20).Build(),
			NewSkillBuilder(1002).WithName("슬래시 블러스트").WithMasterLevel(20).Build(),
			NewSkillBuilder(1003).WithName("아이언 바디").WithMasterLevel(20).Build(),
			NewSkillBuilder(1004).WithName("HP 회복 속도 향상").WithMasterLevel(3).WithRequirement(1001, 3).Build(),
			NewSkillBuilder(1005).WithName("최대 HP 증가").WithMasterLevel(10).Build(),
		).
		WithBranch(2,
			NewSkillBuilder(2001).WithName("소드 마스터리").WithMasterLevel(20).Build(),
			NewSkillBuilder(2002).WithName("소드 부스터").WithMasterLevel(30).WithRequirement(2001, 5).Build(),
		).
		WithBranch(3,
			NewSkillBuilder(3001).WithName("어드밴스드 콤보").WithMasterLevel(30).Build(),
		).
		WithBranch(4,
			NewSkillBuilder(4001).WithName("브랜디쉬").WithMasterLevel(30).Build(),
			NewSkillBuilder(4002).WithName("블로킹").WithMasterLevel(30).WithRequirement(4001, 10).Build(),
		).
		Build()
}
