// Package planner defines the interface for skill build planning
package planner

//go:generate mockgen -destination=mock/mock_service.go -package=plannermock github.com/KirkDiggler/skill-planner/internal/services/planner Service

import (
	"context"

	"github.com/KirkDiggler/skill-planner/internal/data/jobs"
	"github.com/KirkDiggler/skill-planner/internal/engine/allocation"
	"github.com/KirkDiggler/skill-planner/internal/engine/budget"
	"github.com/KirkDiggler/skill-planner/internal/engine/description"
	"github.com/KirkDiggler/skill-planner/internal/entities/skillbook"
)

// Service defines the interface for build planning operations
type Service interface {
	// Catalog
	ListArchetypes(ctx context.Context, input *ListArchetypesInput) (*ListArchetypesOutput, error)
	GetArchetype(ctx context.Context, input *GetArchetypeInput) (*GetArchetypeOutput, error)

	// Build lifecycle
	CreateBuild(ctx context.Context, input *CreateBuildInput) (*CreateBuildOutput, error)
	GetBuild(ctx context.Context, input *GetBuildInput) (*GetBuildOutput, error)
	DeleteBuild(ctx context.Context, input *DeleteBuildInput) (*DeleteBuildOutput, error)

	// Allocation
	Allocate(ctx context.Context, input *AllocateInput) (*AllocateOutput, error)
	ResetBuild(ctx context.Context, input *ResetBuildInput) (*ResetBuildOutput, error)
	SetCharacterLevel(ctx context.Context, input *SetCharacterLevelInput) (*SetCharacterLevelOutput, error)
	SetMode(ctx context.Context, input *SetModeInput) (*SetModeOutput, error)

	// Tooltips
	DescribeSkill(ctx context.Context, input *DescribeSkillInput) (*DescribeSkillOutput, error)
}

// Action is a single-skill allocation mutation
type Action string

// Allocation actions
const (
	ActionIncrease Action = "increase"
	ActionDecrease Action = "decrease"
	ActionZero     Action = "zero"
	ActionMaster   Action = "master"
)

// Valid reports whether the action is known
func (a Action) Valid() bool {
	switch a {
	case ActionIncrease, ActionDecrease, ActionZero, ActionMaster:
		return true
	default:
		return false
	}
}

// BuildView is everything a client renders for a build
type BuildView struct {
	Build        *skillbook.Build
	Archetype    *skillbook.Archetype
	Mode         budget.Mode
	Summary      allocation.Summary
	Branches     []allocation.BranchStatus
	Skills       []allocation.SkillStatus
	BranchErrors map[int]string
}

// Catalog types

// ListArchetypesInput defines the request for listing archetypes
type ListArchetypesInput struct{}

// ListArchetypesOutput defines the response for listing archetypes
type ListArchetypesOutput struct {
	Groups []*jobs.Group
}

// GetArchetypeInput defines the request for loading one archetype's catalog
type GetArchetypeInput struct {
	ArchetypeID int
}

// GetArchetypeOutput defines the response for loading an archetype
type GetArchetypeOutput struct {
	Archetype *skillbook.Archetype
}

// Build lifecycle types

// CreateBuildInput defines the request for creating a build
type CreateBuildInput struct {
	ArchetypeID int
	// CharacterLevel defaults to the archetype's base unlock level
	CharacterLevel int
	FourthOnly     bool
	// Snapshot optionally restores a saved allocation
	Snapshot *skillbook.Snapshot
}

// CreateBuildOutput defines the response for creating a build
type CreateBuildOutput struct {
	View *BuildView
}

// GetBuildInput defines the request for getting a build
type GetBuildInput struct {
	BuildID string
}

// GetBuildOutput defines the response for getting a build
type GetBuildOutput struct {
	View *BuildView
}

// DeleteBuildInput defines the request for deleting a build
type DeleteBuildInput struct {
	BuildID string
}

// DeleteBuildOutput defines the response for deleting a build
type DeleteBuildOutput struct{}

// Allocation types

// AllocateInput defines the request for changing one skill
type AllocateInput struct {
	BuildID string
	SkillID int
	Action  Action
}

// AllocateOutput defines the response for changing one skill. Applied is
// false when the rules rejected the change; the view is still current.
type AllocateOutput struct {
	View    *BuildView
	Applied bool
}

// ResetBuildInput defines the request for clearing every skill
type ResetBuildInput struct {
	BuildID string
}

// ResetBuildOutput defines the response for a reset
type ResetBuildOutput struct {
	View *BuildView
}

// SetCharacterLevelInput defines the request for changing the character level
type SetCharacterLevelInput struct {
	BuildID        string
	CharacterLevel int
}

// SetCharacterLevelOutput defines the response for a level change
type SetCharacterLevelOutput struct {
	View *BuildView
}

// SetModeInput defines the request for toggling fourth-stage-only planning
type SetModeInput struct {
	BuildID    string
	FourthOnly bool
}

// SetModeOutput defines the response for a mode change
type SetModeOutput struct {
	View *BuildView
}

// Tooltip types

// DescribeSkillInput defines the request for a skill tooltip
type DescribeSkillInput struct {
	BuildID string
	SkillID int
	// Level overrides the build's invested level when positive
	Level int
}

// DescribeSkillOutput defines the response for a skill tooltip
type DescribeSkillOutput struct {
	Tooltip *description.Tooltip
}
