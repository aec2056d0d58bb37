package skillbook

import (
	"time"

	"github.com/KirkDiggler/rpg-toolkit/core"
)

// EntityTypeBuild is the rpg-toolkit entity type of a persisted build
const EntityTypeBuild = "skill_build"

// Snapshot is the flat, serializable allocation state of a build
type Snapshot struct {
	CharacterLevel int         `json:"characterLevel"`
	Levels         map[int]int `json:"levels"`
}

// Build is a persisted allocation for one archetype
type Build struct {
	ID          string    `json:"id"`
	ArchetypeID int       `json:"archetypeId"`
	FourthOnly  bool      `json:"fourthOnly"`
	Snapshot    Snapshot  `json:"snapshot"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// GetID returns the build ID
func (b *Build) GetID() string {
	return b.ID
}

// GetType returns the entity type for rpg-toolkit
func (b *Build) GetType() string {
	return EntityTypeBuild
}

var _ core.Entity = (*Build)(nil)
