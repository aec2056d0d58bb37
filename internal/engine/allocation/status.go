package allocation

import (
	"github.com/KirkDiggler/skill-planner/internal/entities/skillbook"
)

// Summary holds the build-wide counters the presentation layer shows
type Summary struct {
	CharacterLevel  int
	TotalPoints     int
	UsedPoints      int
	RemainingPoints int
	OverBudget      bool
}

// BranchStatus describes one progression stage
type BranchStatus struct {
	Index     int
	Available bool
	Unlocked  bool
	// RequiredPoints is the unlock threshold
	RequiredPoints int
	// CommittedPoints counts points spent outside this branch
	CommittedPoints int
	InvestedPoints  int
}

// SkillStatus describes the allocation controls of one skill
type SkillStatus struct {
	SkillID     int
	Branch      int
	Level       int
	MasterLevel int
	Active      bool
	CanIncrease bool
	CanDecrease bool
}

// Summary returns the current totals
func (e *Engine) Summary() Summary {
	remaining := e.RemainingPoints()
	return Summary{
		CharacterLevel:  e.characterLevel,
		TotalPoints:     e.TotalPoints(),
		UsedPoints:      e.used,
		RemainingPoints: remaining,
		OverBudget:      remaining < 0,
	}
}

// BranchStatus returns the status of a 1-based branch
func (e *Engine) BranchStatus(branch int) BranchStatus {
	return BranchStatus{
		Index:           branch,
		Available:       e.archetype.BranchAvailable(branch),
		Unlocked:        e.IsBranchUnlocked(branch),
		RequiredPoints:  e.BranchThreshold(branch),
		CommittedPoints: e.pointsCommittedOutside(branch),
		InvestedPoints:  e.BranchPoints(branch),
	}
}

// BranchStatuses returns the status of every branch in stage order
func (e *Engine) BranchStatuses() []BranchStatus {
	statuses := make([]BranchStatus, 0, skillbook.BranchCount)
	for b := 1; b <= skillbook.BranchCount; b++ {
		statuses = append(statuses, e.BranchStatus(b))
	}
	return statuses
}

// SkillStatus returns the status of one skill. The bool is false for
// unknown skills.
func (e *Engine) SkillStatus(skillID int) (SkillStatus, bool) {
	ent, ok := e.skills[skillID]
	if !ok {
		return SkillStatus{}, false
	}
	return SkillStatus{
		SkillID:     skillID,
		Branch:      ent.branch,
		Level:       e.invested[skillID],
		MasterLevel: ent.skill.MasterLevel,
		Active:      e.IsSkillActive(skillID),
		CanIncrease: e.CanIncrease(skillID),
		CanDecrease: e.CanDecrease(skillID),
	}, true
}

// SkillStatuses returns every skill's status in catalog order
func (e *Engine) SkillStatuses() []SkillStatus {
	statuses := make([]SkillStatus, 0, len(e.order))
	for _, id := range e.order {
		status, _ := e.SkillStatus(id)
		statuses = append(statuses, status)
	}
	return statuses
}
