package v1alpha1

import (
	"github.com/KirkDiggler/skill-planner/internal/data/jobs"
	"github.com/KirkDiggler/skill-planner/internal/engine/description"
	"github.com/KirkDiggler/skill-planner/internal/entities/skillbook"
	"github.com/KirkDiggler/skill-planner/internal/services/planner"
)

func convertGroup(group *jobs.Group) *ArchetypeGroup {
	result := &ArchetypeGroup{
		Name:            group.Name,
		KoreanName:      group.KoreanName,
		BaseUnlockLevel: group.BaseUnlockLevel,
		Archetypes:      make([]*ArchetypeSummary, 0, len(group.Archetypes)),
	}
	for _, archetype := range group.Archetypes {
		result.Archetypes = append(result.Archetypes, &ArchetypeSummary{
			ID:         archetype.ID,
			Name:       archetype.Name,
			KoreanName: archetype.KoreanName,
			Line:       archetype.Line[:],
		})
	}
	return result
}

func convertArchetype(archetype *skillbook.Archetype) *Archetype {
	if archetype == nil {
		return nil
	}

	result := &Archetype{
		ID:              archetype.ID,
		Name:            archetype.Name,
		KoreanName:      archetype.KoreanName,
		BaseUnlockLevel: archetype.BaseUnlockLevel,
		Branches:        make([]*Branch, 0, skillbook.BranchCount),
	}

	for i, branch := range archetype.Branches {
		if branch == nil {
			result.Branches = append(result.Branches, &Branch{
				Index: i + 1,
				Error: archetype.BranchErrors[i],
			})
			continue
		}

		b := &Branch{
			Index:     branch.Index,
			JobID:     branch.JobID,
			BookName:  branch.BookName,
			JobName:   branch.JobName,
			Available: true,
			Skills:    make([]*Skill, 0, len(branch.Skills)),
		}
		for _, skill := range branch.Skills {
			b.Skills = append(b.Skills, &Skill{
				ID:             skill.ID,
				Name:           skill.Name,
				MasterLevel:    skill.MasterLevel,
				Description:    skill.LongDescription,
				RequiredSkills: skill.RequiredSkills,
				Icon:           skill.Icon,
			})
		}
		result.Branches = append(result.Branches, b)
	}

	return result
}

func convertBuildView(view *planner.BuildView) *Build {
	if view == nil || view.Build == nil {
		return nil
	}

	build := view.Build
	result := &Build{
		ID:          build.ID,
		ArchetypeID: build.ArchetypeID,
		FourthOnly:  build.FourthOnly,
		Mode:        view.Mode.String(),
		Snapshot: &Snapshot{
			CharacterLevel: build.Snapshot.CharacterLevel,
			Levels:         build.Snapshot.Levels,
		},
		Summary: &Summary{
			CharacterLevel:  view.Summary.CharacterLevel,
			TotalPoints:     view.Summary.TotalPoints,
			UsedPoints:      view.Summary.UsedPoints,
			RemainingPoints: view.Summary.RemainingPoints,
			OverBudget:      view.Summary.OverBudget,
		},
		Branches:  make([]*BranchStatus, 0, len(view.Branches)),
		Skills:    make([]*SkillStatus, 0, len(view.Skills)),
		CreatedAt: build.CreatedAt.Unix(),
		UpdatedAt: build.UpdatedAt.Unix(),
	}

	for _, branch := range view.Branches {
		result.Branches = append(result.Branches, &BranchStatus{
			Index:           branch.Index,
			Available:       branch.Available,
			Unlocked:        branch.Unlocked,
			RequiredPoints:  branch.RequiredPoints,
			CommittedPoints: branch.CommittedPoints,
			InvestedPoints:  branch.InvestedPoints,
			Error:           view.BranchErrors[branch.Index],
		})
	}

	for _, skill := range view.Skills {
		result.Skills = append(result.Skills, &SkillStatus{
			SkillID:     skill.SkillID,
			Branch:      skill.Branch,
			Level:       skill.Level,
			MasterLevel: skill.MasterLevel,
			Active:      skill.Active,
			CanIncrease: skill.CanIncrease,
			CanDecrease: skill.CanDecrease,
		})
	}

	return result
}

func convertTooltip(tooltip *description.Tooltip) *Tooltip {
	if tooltip == nil {
		return nil
	}

	result := &Tooltip{
		SkillID:     tooltip.SkillID,
		Name:        tooltip.Name,
		MasterLevel: tooltip.MasterLevel,
		MasterLabel: tooltip.MasterLabel,
		Description: tooltip.Description,
		Level:       tooltip.Level,
		Preview:     tooltip.Preview,
		LevelLabel:  tooltip.LevelLabel,
		Detail:      tooltip.Detail,
	}
	for _, req := range tooltip.Requirements {
		result.Requirements = append(result.Requirements, &Requirement{
			SkillID: req.SkillID,
			Name:    req.Name,
			Level:   req.Level,
			Text:    req.Text,
		})
	}

	return result
}
