package client

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/KirkDiggler/skill-planner/internal/handlers/planner/v1alpha1"
)

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printBuild(build *v1alpha1.Build) {
	if build == nil {
		fmt.Println("(no build)")
		return
	}

	fmt.Printf("Build %s (archetype %d, mode %s)\n", build.ID, build.ArchetypeID, build.Mode)
	if s := build.Summary; s != nil {
		fmt.Printf("  Level %d: %d/%d points used, %d remaining",
			s.CharacterLevel, s.UsedPoints, s.TotalPoints, s.RemainingPoints)
		if s.OverBudget {
			fmt.Print(" (OVER BUDGET)")
		}
		fmt.Println()
	}

	for _, branch := range build.Branches {
		state := "locked"
		switch {
		case !branch.Available:
			state = "unavailable: " + branch.Error
		case branch.Unlocked:
			state = "unlocked"
		}
		fmt.Printf("  Branch %d [%s] invested %d, committed elsewhere %d/%d\n",
			branch.Index, state, branch.InvestedPoints, branch.CommittedPoints, branch.RequiredPoints)
	}

	for _, skill := range build.Skills {
		if skill.Level == 0 && !skill.CanIncrease {
			continue
		}
		marker := " "
		if skill.CanIncrease {
			marker = "+"
		}
		fmt.Printf("    %s %d (branch %d): %d/%d\n", marker, skill.SkillID, skill.Branch, skill.Level, skill.MasterLevel)
	}
}
