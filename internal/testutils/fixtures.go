package testutils

import (
	"time"

	"github.com/KirkDiggler/skill-planner/internal/entities/skillbook"
)

// Build stages for testing. Skill ids refer to builders.StandardArchetype.
const (
	StageEmpty         = "empty"
	StageFirstMastered = "first_mastered"
	StageSecondOpen    = "second_open"
	StageOverBudget    = "over_budget"
)

// TestBuildTime is the creation time of every fixture build
var TestBuildTime = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

// CreateTestBuild creates an empty level 30 build
func CreateTestBuild(id string, archetypeID int) *skillbook.Build {
	return &skillbook.Build{
		ID:          id,
		ArchetypeID: archetypeID,
		Snapshot: skillbook.Snapshot{
			CharacterLevel: 30,
			Levels:         map[int]int{},
		},
		CreatedAt: TestBuildTime,
		UpdatedAt: TestBuildTime,
	}
}

// CreateTestBuildAtStage creates a build at a known allocation stage
func CreateTestBuildAtStage(id string, archetypeID int, stage string) *skillbook.Build {
	build := CreateTestBuild(id, archetypeID)

	switch stage {
	case StageFirstMastered:
		build.Snapshot.Levels = map[int]int{1001: 20}

	case StageSecondOpen:
		// 61 points in branch 1 reach the 2nd stage threshold at level 30
		build.Snapshot.Levels = map[int]int{1001: 20, 1002: 20, 1003: 20, 1005: 1}

	case StageOverBudget:
		// 60 points spent against a level 20 budget of 31
		build.Snapshot.CharacterLevel = 20
		build.Snapshot.Levels = map[int]int{1001: 20, 1002: 20, 1003: 20}
	}

	return build
}
